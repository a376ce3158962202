package matching

import "sort"

// Matching is a partial mapping from student id to program id, maintained
// with an incrementally-updated reverse index (spec §9: "a more efficient
// implementation maintains a reverse index incrementally" — taken here
// over the on-demand-derived baseline). Valid is false only when the
// driver encountered a cycle while computing it (§4.5, §7); the partial
// assignment at the moment of detection is still returned.
type Matching struct {
	forward map[int]int         // student id -> program id
	reverse map[int]map[int]struct{} // program id -> set of student ids
	Valid   bool
}

// newMatching returns an empty, valid Matching.
func newMatching() *Matching {
	return &Matching{
		forward: make(map[int]int),
		reverse: make(map[int]map[int]struct{}),
		Valid:   true,
	}
}

// ProgramOf returns the program a student is currently matched to, and
// whether the student is matched at all.
func (m *Matching) ProgramOf(studentID int) (int, bool) {
	pid, ok := m.forward[studentID]
	return pid, ok
}

// OccupantsOf returns the student ids currently matched to a program, in
// no particular order.
func (m *Matching) OccupantsOf(programID int) []int {
	occ := m.reverse[programID]
	out := make([]int, 0, len(occ))
	for sid := range occ {
		out = append(out, sid)
	}
	return out
}

// assign records studentID -> programID, removing any prior assignment
// for studentID first so the reverse index never holds a stale entry.
func (m *Matching) assign(studentID, programID int) {
	m.unassign(studentID)
	m.forward[studentID] = programID
	if m.reverse[programID] == nil {
		m.reverse[programID] = make(map[int]struct{})
	}
	m.reverse[programID][studentID] = struct{}{}
}

// unassign removes studentID's current assignment, if any, updating both
// the forward map and the reverse index.
func (m *Matching) unassign(studentID int) {
	pid, ok := m.forward[studentID]
	if !ok {
		return
	}
	delete(m.forward, studentID)
	if occ := m.reverse[pid]; occ != nil {
		delete(occ, studentID)
		if len(occ) == 0 {
			delete(m.reverse, pid)
		}
	}
}

// Matches returns every (student id, program id) pair in the matching,
// sorted by student id for deterministic output (§8 property 6).
func (m *Matching) Matches() []StudentProgram {
	ids := make([]int, 0, len(m.forward))
	for sid := range m.forward {
		ids = append(ids, sid)
	}
	sort.Ints(ids)

	out := make([]StudentProgram, 0, len(ids))
	for _, sid := range ids {
		out = append(out, StudentProgram{StudentID: sid, ProgramID: m.forward[sid]})
	}
	return out
}

// snapshotKey builds a canonical string encoding of the matching's
// current forward assignments (sorted by student id, per §9) for use in
// cycle-detection snapshots (§4.5).
func (m *Matching) snapshotKey() string {
	ids := make([]int, 0, len(m.forward))
	for sid := range m.forward {
		ids = append(ids, sid)
	}
	sort.Ints(ids)

	var b []byte
	for _, sid := range ids {
		b = appendInt(b, sid)
		b = append(b, '-', '>')
		b = appendInt(b, m.forward[sid])
		b = append(b, ';')
	}
	return string(b)
}

// appendInt appends the base-10 decimal representation of n to dst,
// avoiding an allocation-per-call strconv.Itoa would cost in the
// cycle-detection hot path.
func appendInt(dst []byte, n int) []byte {
	if n == 0 {
		return append(dst, '0')
	}
	neg := n < 0
	if neg {
		n = -n
	}
	start := len(dst)
	for n > 0 {
		dst = append(dst, byte('0'+n%10))
		n /= 10
	}
	if neg {
		dst = append(dst, '-')
	}
	// reverse the digits just appended
	for i, j := start, len(dst)-1; i < j; i, j = i+1, j-1 {
		dst[i], dst[j] = dst[j], dst[i]
	}
	return dst
}
