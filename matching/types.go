// Package matching implements stable matching in two-sided markets,
// including markets with couples whose preferences are joint rather than
// individual.
//
// See doc.go for the full overview, complexity notes, and API reference.
package matching

import "math"

// unranked is the priority rank assigned to a student that does not
// appear anywhere in a program's preference list. It must sort after
// every real rank so such a student is always rejected first by
// selectRejected (§4.1: "students not on the program's list may never be
// retained").
const unranked = math.MaxInt

// Student is a single applicant. Preferences lists program ids from
// most-preferred to least-preferred; a program absent from the list is
// not acceptable to the student. bestUnrejected is the cursor described
// in spec §3: the index of the most-preferred program the student has
// not yet been rejected by. It is mutated only by the engine during a
// run; Student itself never mutates it from outside package matching.
type Student struct {
	ID             int
	Preferences    []int
	bestUnrejected int
}

// NewStudent constructs a Student with its cursor at the head of its
// preference list.
func NewStudent(id int, preferences []int) *Student {
	return &Student{ID: id, Preferences: append([]int(nil), preferences...)}
}

// BestUnrejected returns the student's current cursor: the index into
// Preferences of the most-preferred program the student has not yet been
// rejected by. Equal to len(Preferences) once the student has exhausted
// every acceptable option.
func (s *Student) BestUnrejected() int { return s.bestUnrejected }

// Exhausted reports whether the student's cursor has run past the end of
// its preference list (spec §7: "Exhausted applicant ... a normal outcome").
func (s *Student) Exhausted() bool { return s.bestUnrejected >= len(s.Preferences) }

// toApply returns the program id at the student's current cursor. Callers
// must check Exhausted first.
func (s *Student) toApply() int { return s.Preferences[s.bestUnrejected] }

// applicantMarker implements the Applicant sum type (see applicant.go).
func (s *Student) applicantMarker() {}

func (s *Student) currentPrograms(m *Matching) []int {
	if pid, ok := m.ProgramOf(s.ID); ok {
		return []int{pid}
	}
	return nil
}

func (s *Student) resetCursorTo0() { s.bestUnrejected = 0 }

// Program is a residency-style program with a capacity and an ordered
// priority list over students (most-preferred first).
type Program struct {
	ID          int
	Preferences []int
	Capacity    int

	// rank maps a student id to its priority index in Preferences
	// (smaller is more preferred). A student absent from Preferences maps
	// to unranked. Built once by NewProgram so selectRejected (§4.1) can look
	// up priority in O(1) instead of re-scanning Preferences per student.
	rank map[int]int
}

// NewProgram constructs a Program and precomputes its priority ranking.
// Capacity must be positive; NewMarket validates this, not NewProgram,
// so callers composing programs outside of a Market still get a usable
// value to pass in for validation to reject with a clear message.
func NewProgram(id int, preferences []int, capacity int) *Program {
	p := &Program{ID: id, Preferences: append([]int(nil), preferences...), Capacity: capacity}
	p.buildRank()
	return p
}

func (p *Program) buildRank() {
	p.rank = make(map[int]int, len(p.Preferences))
	for i, sid := range p.Preferences {
		p.rank[sid] = i
	}
}

// rankOf returns the program's priority rank for a student id, or
// unranked if the student never appears in Preferences.
func (p *Program) rankOf(studentID int) int {
	if r, ok := p.rank[studentID]; ok {
		return r
	}
	return unranked
}

// StudentProgram is one (student id, program id) match, returned by
// Matching.Matches().
type StudentProgram struct {
	StudentID int
	ProgramID int
}

// UnstablePair is a certified instability witness returned by
// FindUnstablePairs: the Applicant and the Program it forms an unstable
// pair with, per §4.6.
type UnstablePair struct {
	Applicant Applicant
	ProgramID int
}
