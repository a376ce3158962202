package matching

import "math/rand"

// StableMatching computes a stable matching over market, implementing
// spec §4.8. Every applicant in market.processingOrder() is driven to
// quiescence in turn via processOne; a cycle detected while processing
// any one applicant (§4.5) stops the whole run immediately and the
// partial Matching accumulated so far is returned with Valid set false
// (§7: "Invalid/unstable outcome ... not an error").
//
// rng, if non-nil, is consulted to shuffle the applicant processing
// order (Design Note "Processing order heuristic": any order within the
// stacks yields a stable matching when couples are absent, and a
// deterministic order suffices otherwise). A nil rng keeps the default
// order — singles sorted by id, then couples sorted by smaller member
// id — which is itself fully deterministic and is what every scenario
// in spec.md §8 assumes.
func StableMatching(market *Market, rng *rand.Rand) (*Matching, error) {
	if market == nil {
		return nil, ErrNilMarket
	}

	order := market.processingOrder()
	if rng != nil {
		shuffleApplicantsInPlace(order, rng)
	}

	m := newMatching()
	for _, applicant := range order {
		if !m.Valid {
			break
		}
		if _, already := applicantAlreadySettled(applicant, m); already {
			continue
		}
		processOne(applicant, market, m)
	}
	return m, nil
}

// applicantAlreadySettled reports whether applicant has already been
// placed or exhausted as a side effect of processing an earlier
// applicant in order — true for an applicant that is already matched (a
// couple is checked through its first member), or whose cursor has
// already run past the end of its preference list from a non-zero start
// position. Re-running processOne on it would be
// redundant, not incorrect, but skipping keeps the driver's applicant
// count equal to market size rather than re-entering settled applicants.
func applicantAlreadySettled(applicant Applicant, m *Matching) (Applicant, bool) {
	switch a := applicant.(type) {
	case *Student:
		if _, matched := m.ProgramOf(a.ID); matched {
			return applicant, true
		}
		return applicant, a.Exhausted() && a.bestUnrejected > 0
	case *Couple:
		if _, matched := m.ProgramOf(a.Members[0].ID); matched {
			return applicant, true
		}
		return applicant, a.exhausted() && a.cursor() > 0
	default:
		return applicant, false
	}
}

// shuffleApplicantsInPlace performs an in-place Fisher-Yates shuffle of
// order using rng, the same deterministic-seed idiom used elsewhere in
// the corpus for reproducible randomized iteration order.
func shuffleApplicantsInPlace(order []Applicant, rng *rand.Rand) {
	for i := len(order) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		order[i], order[j] = order[j], order[i]
	}
}
