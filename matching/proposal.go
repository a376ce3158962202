package matching

import "sort"

// proposalResult is the outcome of one call to propose: either the
// applicant ran out of acceptable programs (accepted == false), or it was
// placed and propose reports who got displaced as a result (spec §4.2
// Outputs).
type proposalResult struct {
	displaced        []Applicant
	affectedPrograms []int
	accepted         bool
}

// propose performs one proposal attempt for applicant at its current
// cursor, per spec §4.2. Internally it retries while the applicant (or a
// couple member) is rejected, advancing the cursor each time — a bounded
// while loop, never recursion — and returns as soon as either the
// applicant is placed or its preference list is exhausted. It never
// chases a cascade of subsequent displacements itself; that is the outer
// driver's job (§4.3), which re-pushes displaced applicants onto its
// stack and calls propose again for each.
func propose(applicant Applicant, market *Market, m *Matching) proposalResult {
	switch a := applicant.(type) {
	case *Student:
		return proposeSingle(a, market, m)
	case *Couple:
		return proposeCouple(a, market, m)
	default:
		panic("matching: unreachable applicant variant")
	}
}

func proposeSingle(s *Student, market *Market, m *Matching) proposalResult {
	for !s.Exhausted() {
		pid := s.toApply()
		program := market.programIndex[pid]
		pool := pool1(s.ID, m.OccupantsOf(pid))
		rejected := selectRejected(program, pool)

		if containsInt(rejected, s.ID) {
			s.bestUnrejected++
			continue
		}

		bumped := withoutInt(rejected, s.ID)
		displaced, affected := settleBumped(bumped, market, m)
		m.assign(s.ID, pid)
		return proposalResult{displaced: displaced, affectedPrograms: affected, accepted: true}
	}
	return proposalResult{accepted: false}
}

func proposeCouple(c *Couple, market *Market, m *Matching) proposalResult {
	a, b := c.Members[0], c.Members[1]
	for !c.exhausted() {
		p, q := c.pair(c.cursor())

		var rejectedP, rejectedQ []int
		if p == q {
			program := market.programIndex[p]
			pool := pool2(a.ID, b.ID, m.OccupantsOf(p))
			rejectedP = selectRejected(program, pool)
		} else {
			progP := market.programIndex[p]
			rejectedP = selectRejected(progP, pool1(a.ID, m.OccupantsOf(p)))
			progQ := market.programIndex[q]
			rejectedQ = selectRejected(progQ, pool1(b.ID, m.OccupantsOf(q)))
		}

		aRejected := containsInt(rejectedP, a.ID) || containsInt(rejectedQ, a.ID)
		bRejected := containsInt(rejectedP, b.ID) || containsInt(rejectedQ, b.ID)
		if aRejected || bRejected {
			c.advance()
			continue
		}

		bumped := withoutInt(append(append([]int(nil), rejectedP...), rejectedQ...), a.ID, b.ID)
		displaced, affected := settleBumped(bumped, market, m)
		m.assign(a.ID, p)
		m.assign(b.ID, q)
		return proposalResult{displaced: displaced, affectedPrograms: affected, accepted: true}
	}
	return proposalResult{accepted: false}
}

// settleBumped processes the occupants bumped by a successful placement
// (spec §4.2 step 5). Each bumped student is removed from the matching.
// If it has a partner, the partner is forced to withdraw from its own
// current program (marking that program as affected — it lost a student
// through withdrawal, not rejection) and the pair is reconstituted into
// its original Couple for reprocessing. A bumped student with no partner
// is simply re-queued as itself.
//
// When both members of a couple are bumped together (the p==q==P case),
// the partner is already present in bumped and is not separately
// "withdrawn" from a third program — the pair is reconstituted once, not
// twice.
func settleBumped(bumped []int, market *Market, m *Matching) ([]Applicant, []int) {
	ids := append([]int(nil), bumped...)
	sort.Ints(ids) // deterministic processing order, spec §8 property 6

	inBumped := make(map[int]bool, len(ids))
	for _, id := range ids {
		inBumped[id] = true
	}

	processed := make(map[int]bool, len(ids))
	var displaced []Applicant
	var affected []int

	for _, sid := range ids {
		if processed[sid] {
			continue
		}
		processed[sid] = true
		m.unassign(sid)

		s := market.studentByID[sid]
		partner, hasPartner := market.partner(sid)
		if !hasPartner {
			displaced = append(displaced, s)
			continue
		}

		if !processed[partner.ID] {
			processed[partner.ID] = true
			if inBumped[partner.ID] {
				m.unassign(partner.ID)
			} else if pid2, ok := m.ProgramOf(partner.ID); ok {
				affected = append(affected, pid2)
				m.unassign(partner.ID)
			}
		}
		displaced = append(displaced, market.applicantFor(s))
	}

	return displaced, affected
}

// pool1 builds the candidate pool {studentID} ∪ occupants for a single
// target program, deduplicated.
func pool1(studentID int, occupants []int) []int {
	return pool2(studentID, -1, occupants)
}

// pool2 builds the candidate pool {id1, id2} ∪ occupants, deduplicated.
// id2 == -1 means only id1 is added. -1 is safe as a "no second id"
// sentinel because NewMarket rejects any student with a negative id
// (ErrNegativeStudentID) before a Market can ever be built.
func pool2(id1, id2 int, occupants []int) []int {
	seen := make(map[int]bool, len(occupants)+2)
	pool := make([]int, 0, len(occupants)+2)
	add := func(id int) {
		if id < 0 || seen[id] {
			return
		}
		seen[id] = true
		pool = append(pool, id)
	}
	add(id1)
	add(id2)
	for _, id := range occupants {
		add(id)
	}
	return pool
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

// withoutInt returns xs with every occurrence of each id in exclude
// removed.
func withoutInt(xs []int, exclude ...int) []int {
	out := make([]int, 0, len(xs))
	for _, x := range xs {
		skip := false
		for _, e := range exclude {
			if x == e {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, x)
		}
	}
	return out
}
