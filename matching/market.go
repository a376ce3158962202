package matching

import "sort"

// Market is the universe of students, couples, and programs a matching is
// computed over. It is built once by NewMarket; its preference lists,
// capacities, and lookup maps are never mutated afterwards. The cursor
// (bestUnrejected) of each of its Students is advanced and reset by
// StableMatching during a run.
type Market struct {
	Singles  []*Student
	Couples  []*Couple
	Programs []*Program

	programIndex map[int]*Program
	partnerOf    map[int]int      // student id -> partner student id (symmetric)
	studentByID  map[int]*Student // every student, single or coupled
	coupleOfID   map[int]*Couple  // student id -> the original *Couple it belongs to
}

// NewMarket validates and assembles a Market. Every problem described in
// spec §7 ("Invalid input") is detected here and reported together via a
// *ValidationError, rather than one at a time:
//
//   - duplicate student ids (across singles and couple members)
//   - duplicate program ids
//   - a preference list referencing an unknown program id
//   - a program preference list referencing an unknown student id
//   - a couple whose two members have differently-sized preference lists
//   - a program constructed with non-positive capacity
//   - a student appearing in more than one applicant (single twice, or in
//     two couples, or both single and coupled)
//   - a student constructed with a negative id (proposal.go's pool1/pool2
//     reserve -1 internally as a "no second id" sentinel)
func NewMarket(singles []*Student, couples []*Couple, programs []*Program) (*Market, error) {
	verr := &ValidationError{}

	programIndex := make(map[int]*Program, len(programs))
	for _, p := range programs {
		if p.Capacity <= 0 {
			verr.add(wrapf(ErrNonPositiveCapacity, "program %d has capacity %d", p.ID, p.Capacity))
		}
		if _, dup := programIndex[p.ID]; dup {
			verr.add(wrapf(ErrDuplicateProgramID, "program id %d", p.ID))
			continue
		}
		programIndex[p.ID] = p
	}

	studentByID := make(map[int]*Student, len(singles)+2*len(couples))
	partnerOf := make(map[int]int, 2*len(couples))
	coupleOfID := make(map[int]*Couple, 2*len(couples))

	registerStudent := func(s *Student) {
		if s.ID < 0 {
			verr.add(wrapf(ErrNegativeStudentID, "student id %d", s.ID))
			return
		}
		if _, dup := studentByID[s.ID]; dup {
			verr.add(wrapf(ErrStudentInMultipleApplicants, "student id %d", s.ID))
			return
		}
		studentByID[s.ID] = s
	}

	for _, s := range singles {
		registerStudent(s)
	}
	for _, c := range couples {
		a, b := c.Members[0], c.Members[1]
		registerStudent(a)
		registerStudent(b)
		if len(a.Preferences) != len(b.Preferences) {
			verr.add(wrapf(ErrCoupleLengthMismatch, "couple (%d,%d): lengths %d and %d",
				a.ID, b.ID, len(a.Preferences), len(b.Preferences)))
		}
		partnerOf[a.ID] = b.ID
		partnerOf[b.ID] = a.ID
		coupleOfID[a.ID] = c
		coupleOfID[b.ID] = c
	}

	for _, s := range studentByID {
		for _, pid := range s.Preferences {
			if _, ok := programIndex[pid]; !ok {
				verr.add(wrapf(ErrUnknownProgram, "student %d lists program %d", s.ID, pid))
			}
		}
	}
	for _, p := range programs {
		for _, sid := range p.Preferences {
			if _, ok := studentByID[sid]; !ok {
				verr.add(wrapf(ErrUnknownStudent, "program %d lists student %d", p.ID, sid))
			}
		}
	}

	if err := verr.errorOrNil(); err != nil {
		return nil, err
	}

	m := &Market{
		Singles:      append([]*Student(nil), singles...),
		Couples:      append([]*Couple(nil), couples...),
		Programs:     append([]*Program(nil), programs...),
		programIndex: programIndex,
		partnerOf:    partnerOf,
		studentByID:  studentByID,
		coupleOfID:   coupleOfID,
	}
	return m, nil
}

// processingOrder returns every applicant in the deterministic order
// spec §4.8 requires: singles first (sorted by id for determinism across
// runs, §8 property 6), couples last (sorted by the smaller member id).
func (m *Market) processingOrder() []Applicant {
	singles := append([]*Student(nil), m.Singles...)
	sort.Slice(singles, func(i, j int) bool { return singles[i].ID < singles[j].ID })

	couples := append([]*Couple(nil), m.Couples...)
	sort.Slice(couples, func(i, j int) bool {
		ki, kj := couples[i].key(), couples[j].key()
		return ki.a < kj.a
	})

	order := make([]Applicant, 0, len(singles)+len(couples))
	for _, s := range singles {
		order = append(order, s)
	}
	for _, c := range couples {
		order = append(order, c)
	}
	return order
}

// partner returns the partner of studentID and whether it has one.
func (m *Market) partner(studentID int) (*Student, bool) {
	pid, ok := m.partnerOf[studentID]
	if !ok {
		return nil, false
	}
	return m.studentByID[pid], true
}

// applicantFor wraps a bumped student back into the Applicant it
// belongs to: its original *Couple (preserving member order, which
// determines which joint-preference coordinate is whose) if it has a
// partner, or itself otherwise. This is the couple-reconstitution step of
// §4.2 step 5 — it must reuse the original Couple, not a freshly built
// one, because NewCouple(a, b) and NewCouple(b, a) are not equivalent:
// member order fixes which of the two zipped preference coordinates each
// student is bound to.
func (m *Market) applicantFor(s *Student) Applicant {
	if c, ok := m.coupleOfID[s.ID]; ok {
		return c
	}
	return s
}

// allStudentIDs returns every student id in the market in ascending
// order, used by the stability checker (§4.7) and the repair loop (§4.4).
func (m *Market) allStudentIDs() []int {
	ids := make([]int, 0, len(m.studentByID))
	for id := range m.studentByID {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
