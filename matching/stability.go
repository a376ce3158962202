package matching

import "sort"

// FindUnstablePairs enumerates every applicant×program pair and reports
// any unstable pairing (spec §4.7). An empty, non-nil result is the
// certificate that matching is stable. Programs are visited in ascending
// id order so the result is deterministic across runs (§8 property 6).
func FindUnstablePairs(market *Market, m *Matching) ([]UnstablePair, error) {
	if market == nil {
		return nil, ErrNilMarket
	}
	if m == nil {
		return nil, ErrNilMatching
	}

	programIDs := make([]int, 0, len(market.Programs))
	for _, p := range market.Programs {
		programIDs = append(programIDs, p.ID)
	}
	sort.Ints(programIDs)

	out := []UnstablePair{}
	for _, pid := range programIDs {
		for _, ap := range findUnstableApplicants(pid, market, m) {
			out = append(out, UnstablePair{Applicant: ap, ProgramID: pid})
		}
	}
	return out, nil
}

// findUnstableApplicants returns every applicant in the market that
// forms an unstable pair with programID under the current matching
// (spec §4.6), used both by the external stability checker and by the
// engine's repair loop (§4.4).
func findUnstableApplicants(programID int, market *Market, m *Matching) []Applicant {
	var out []Applicant
	seenCouple := make(map[applicantKey]bool)

	for _, sid := range market.allStudentIDs() {
		if c, ok := market.coupleOfID[sid]; ok {
			k := c.key()
			if seenCouple[k] {
				continue
			}
			seenCouple[k] = true
			if coupleUnstableWithProgram(c, programID, market, m) {
				out = append(out, c)
			}
			continue
		}

		s := market.studentByID[sid]
		if studentUnstableWithProgram(s, programID, market, m) {
			out = append(out, s)
		}
	}
	return out
}

// studentUnstableWithProgram implements spec §4.6's single case: A forms
// an unstable pair with P iff A strictly prefers P to its current match
// (or has no current match) and P strictly prefers A to at least one of
// its current occupants.
func studentUnstableWithProgram(s *Student, programID int, market *Market, m *Matching) bool {
	if pid, matched := m.ProgramOf(s.ID); matched && pid == programID {
		return false
	}
	if !studentPrefersProgram(s, programID) {
		return false
	}
	return programPrefersStudent(programID, s.ID, market, m)
}

// studentPrefersProgram reports whether s strictly prefers programID to
// its current match. A program absent from s's preference list is never
// preferred (§4.6: "treated as not preferred over anything already
// matched"). s.bestUnrejected doubles as the comparison point: it equals
// the index of s's current match while matched, and equals
// len(s.Preferences) — larger than any real index — once s has exhausted
// its list, so an unmatched student is correctly treated as preferring
// any acceptable program.
func studentPrefersProgram(s *Student, programID int) bool {
	idx, ok := indexOf(s.Preferences, programID)
	if !ok {
		return false
	}
	return idx < s.bestUnrejected
}

// programPrefersStudent reports whether program P strictly prefers
// studentID to at least one of its current occupants: equivalent to
// asking whether studentID would survive selection if added to P's
// current occupant pool (spec §4.6, §4.1).
func programPrefersStudent(programID, studentID int, market *Market, m *Matching) bool {
	program := market.programIndex[programID]
	rejected := selectRejected(program, pool1(studentID, m.OccupantsOf(programID)))
	return !containsInt(rejected, studentID)
}

// bothPreferred reports whether program P would retain both aID and bID
// simultaneously if both applied at once — the double-displacement test
// required when a couple's joint preference pair repeats the same
// program in both coordinates (spec §4.6: "If p = q = P, P must prefer
// both members simultaneously").
func bothPreferred(programID, aID, bID int, market *Market, m *Matching) bool {
	program := market.programIndex[programID]
	rejected := selectRejected(program, pool2(aID, bID, m.OccupantsOf(programID)))
	return !containsInt(rejected, aID) && !containsInt(rejected, bID)
}

// coupleUnstableWithProgram implements spec §4.6's couple case: there
// must exist a joint-preference pair (p, q) strictly earlier than the
// couple's current joint match such that one coordinate is P and, at the
// same time, P and the other coordinate's program each prefer the
// respective member over one of their current occupants.
func coupleUnstableWithProgram(c *Couple, programID int, market *Market, m *Matching) bool {
	a, b := c.Members[0], c.Members[1]

	matchedIndex := len(a.Preferences) // sentinel: couple unmatched/exhausted
	if _, matched := m.ProgramOf(a.ID); matched {
		matchedIndex = c.cursor()
	}

	for i := 0; i < matchedIndex; i++ {
		p, q := c.pair(i)
		switch {
		case p == programID && q == programID:
			if bothPreferred(programID, a.ID, b.ID, market, m) {
				return true
			}
		case p == programID:
			if programPrefersStudent(programID, a.ID, market, m) && programPrefersStudent(q, b.ID, market, m) {
				return true
			}
		case q == programID:
			if programPrefersStudent(programID, b.ID, market, m) && programPrefersStudent(p, a.ID, market, m) {
				return true
			}
		}
	}
	return false
}

// indexOf returns the index of the first occurrence of v in xs.
// Preference lists may repeat a program id within a single student's own
// list (exercised by the "repeating joint preferences" scenario), so the
// earliest, most-favorable occurrence is the one that counts.
func indexOf(xs []int, v int) (int, bool) {
	for i, x := range xs {
		if x == v {
			return i, true
		}
	}
	return 0, false
}
