package matching

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestCursorMonotonicWithoutCouples exercises property 3 ("best_unrejected
// is non-decreasing for any applicant across a single run") in the one
// setting where it holds exactly as stated: a market with no couples.
// Without couples, settleBumped's "affected" list (the only source of
// program-stack entries, which is what the §4.4 repair branch — and its
// resetCursorTo0 — ever fires from) is always empty, since a bumped
// student only forces a partner withdrawal when it has a partner. The
// repair branch is therefore dead code on this input class, so propose's
// own per-rejection increment (§4.2) is the only thing that can move a
// cursor, and it only ever moves it forward.
//
// This test drives the same applicant-stack loop processOne uses, minus
// the (here, unreachable) program-stack/repair half, so it can record each
// student's bestUnrejected after every proposal attempt instead of only
// observing the final value.
func TestCursorMonotonicWithoutCouples(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 40; trial++ {
		market := randomSinglesOnlyMarket(rng)
		m := newMatching()
		history := make(map[int][]int)

		order := market.processingOrder()
		for _, start := range order {
			stack := []Applicant{start}
			for len(stack) > 0 {
				n := len(stack)
				a := stack[n-1]
				stack = stack[:n-1]

				s := a.(*Student)
				history[s.ID] = append(history[s.ID], s.bestUnrejected)

				result := propose(a, market, m)
				history[s.ID] = append(history[s.ID], s.bestUnrejected)
				if result.accepted {
					stack = append(stack, result.displaced...)
					require.Empty(t, result.affectedPrograms,
						"a singles-only market must never produce an affected program")
				}
			}
		}

		for sid, trace := range history {
			for i := 1; i < len(trace); i++ {
				require.GreaterOrEqual(t, trace[i], trace[i-1],
					"student %d cursor decreased: trace %v", sid, trace)
			}
		}
	}
}

// TestResetCursorToZeroOverridesAnyPriorValue pins down the explicit,
// spec-sanctioned exception to property 3: the §4.4 repair step rewinds a
// displaced applicant's cursor to 0 regardless of how far it had already
// advanced. This is the only place in the engine a cursor is allowed to
// move backward; outside of a reset, proposeSingle/proposeCouple only ever
// increment it (see TestCursorMonotonicWithoutCouples).
func TestResetCursorToZeroOverridesAnyPriorValue(t *testing.T) {
	s := NewStudent(0, []int{0, 1, 2, 3})
	s.bestUnrejected = 3
	s.resetCursorTo0()
	require.Equal(t, 0, s.bestUnrejected)

	a := NewStudent(1, []int{0, 1})
	b := NewStudent(2, []int{0, 1})
	c := NewCouple(a, b)
	a.bestUnrejected, b.bestUnrejected = 1, 1
	c.resetCursorTo0()
	require.Equal(t, 0, a.bestUnrejected)
	require.Equal(t, 0, b.bestUnrejected)
}

// randomSinglesOnlyMarket builds a small random market with no couples:
// every student is acceptable to every program and vice versa, in a
// random strict order, so propose has room to walk cursors forward
// through several rejections before any student settles.
func randomSinglesOnlyMarket(rng *rand.Rand) *Market {
	const numStudents = 5
	const numPrograms = 3

	programIDs := rng.Perm(numPrograms)
	singles := make([]*Student, numStudents)
	for i := 0; i < numStudents; i++ {
		prefs := append([]int(nil), programIDs...)
		rng.Shuffle(len(prefs), func(a, b int) { prefs[a], prefs[b] = prefs[b], prefs[a] })
		singles[i] = NewStudent(i, prefs)
	}

	studentIDs := make([]int, numStudents)
	for i := range studentIDs {
		studentIDs[i] = i
	}
	programs := make([]*Program, numPrograms)
	for i := 0; i < numPrograms; i++ {
		prefs := append([]int(nil), studentIDs...)
		rng.Shuffle(len(prefs), func(a, b int) { prefs[a], prefs[b] = prefs[b], prefs[a] })
		programs[i] = NewProgram(i, prefs, 1+rng.Intn(2))
	}

	market, err := NewMarket(singles, nil, programs)
	if err != nil {
		panic(err) // construction above is always valid; a failure is a test bug
	}
	return market
}
