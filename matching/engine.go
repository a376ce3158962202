package matching

// processOne drives one top-level applicant to quiescence (matched or
// exhausted) or until a cycle is detected, per spec §4.3–§4.5.
//
// It maintains an applicant stack and a program stack exactly as §4.3
// describes: pop an applicant, apply §4.2; any displaced applicants and
// affected programs go onto their respective stacks. Once the applicant
// stack drains, one affected program is popped and repaired (§4.4),
// which may push more applicants (and their vacated programs) back on.
// The loop ends when both stacks are empty, or when a canonical snapshot
// of (applicant stack, program stack, matching) repeats — the cycle
// signal of §4.5.
//
// Selection order within the stacks is LIFO, which §4.3's Design Note
// calls sufficient ("any order within the stacks yields a stable
// matching when couples are absent; ... a deterministic order ...
// suffices and simplifies testing").
func processOne(start Applicant, market *Market, m *Matching) {
	applicantStack := []Applicant{start}
	var programStack []int
	seen := make(map[string]struct{})

	recordSnapshot := func() bool {
		key := canonicalSnapshot(applicantStack, programStack, m)
		if _, dup := seen[key]; dup {
			m.Valid = false
			return true
		}
		seen[key] = struct{}{}
		return false
	}

	for len(applicantStack) > 0 || len(programStack) > 0 {
		for len(applicantStack) > 0 {
			n := len(applicantStack)
			applicant := applicantStack[n-1]
			applicantStack = applicantStack[:n-1]

			result := propose(applicant, market, m)
			if result.accepted {
				applicantStack = append(applicantStack, result.displaced...)
				programStack = append(programStack, result.affectedPrograms...)
			}

			if recordSnapshot() {
				return
			}
		}

		if len(programStack) == 0 {
			continue
		}

		n := len(programStack)
		programID := programStack[n-1]
		programStack = programStack[:n-1]

		for _, unstableApplicant := range findUnstableApplicants(programID, market, m) {
			programStack = append(programStack, unstableApplicant.currentPrograms(m)...)
			unstableApplicant.resetCursorTo0()
			applicantStack = append(applicantStack, unstableApplicant)
		}

		if recordSnapshot() {
			return
		}
	}
}

// canonicalSnapshot builds the canonical form spec §9 prescribes for
// cycle detection: "stacks hashed by content order, matching sorted by
// applicant id". Stack order matters (LIFO processing order is part of
// the state), so stack contents are encoded in their current order, not
// sorted; the matching itself is sorted internally by snapshotKey.
func canonicalSnapshot(applicantStack []Applicant, programStack []int, m *Matching) string {
	var b []byte
	b = append(b, 'A', ':')
	for _, ap := range applicantStack {
		k := ap.key()
		b = appendInt(b, k.a)
		if k.isCouple {
			b = append(b, ',')
			b = appendInt(b, k.b)
		}
		b = append(b, '|')
	}
	b = append(b, 'P', ':')
	for _, pid := range programStack {
		b = appendInt(b, pid)
		b = append(b, '|')
	}
	b = append(b, 'M', ':')
	b = append(b, m.snapshotKey()...)
	return string(b)
}
