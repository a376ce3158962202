package matching_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/instability/matching"
)

func TestStudentCursorLifecycle(t *testing.T) {
	s := matching.NewStudent(0, []int{2, 1, 0})
	require.Equal(t, 0, s.BestUnrejected())
	require.False(t, s.Exhausted())
}

func TestStudentExhaustedAtEndOfList(t *testing.T) {
	// Program 0 ranks only student 1, so student 0 is unranked there and
	// must always be rejected even though it is acceptable to student 0.
	singles := []*matching.Student{
		matching.NewStudent(0, []int{0}),
		matching.NewStudent(1, []int{0}),
	}
	programs := []*matching.Program{matching.NewProgram(0, []int{1}, 1)}
	mk, err := matching.NewMarket(singles, nil, programs)
	require.NoError(t, err)

	m, err := matching.StableMatching(mk, nil)
	require.NoError(t, err)
	_, matched := m.ProgramOf(0)
	require.False(t, matched, "student unranked by its only acceptable program must stay unmatched")
	pid, matched := m.ProgramOf(1)
	require.True(t, matched)
	require.Equal(t, 0, pid)
}

func TestNewMarketRejectsCoupleLengthMismatch(t *testing.T) {
	a := matching.NewStudent(0, []int{0, 1})
	b := matching.NewStudent(1, []int{0})
	couples := []*matching.Couple{matching.NewCouple(a, b)}
	programs := []*matching.Program{
		matching.NewProgram(0, []int{0, 1}, 2),
		matching.NewProgram(1, []int{0, 1}, 2),
	}

	_, err := matching.NewMarket(nil, couples, programs)
	require.ErrorIs(t, err, matching.ErrCoupleLengthMismatch)
}

func TestNewMarketRejectsStudentInMultipleApplicants(t *testing.T) {
	a := matching.NewStudent(0, []int{0})
	b := matching.NewStudent(1, []int{0})
	couples := []*matching.Couple{matching.NewCouple(a, b)}
	singles := []*matching.Student{a}
	programs := []*matching.Program{matching.NewProgram(0, []int{0, 1}, 2)}

	_, err := matching.NewMarket(singles, couples, programs)
	require.ErrorIs(t, err, matching.ErrStudentInMultipleApplicants)
}

func TestNewMarketRejectsUnknownProgramReference(t *testing.T) {
	singles := []*matching.Student{matching.NewStudent(0, []int{7})}
	programs := []*matching.Program{matching.NewProgram(0, []int{0}, 1)}

	_, err := matching.NewMarket(singles, nil, programs)
	require.ErrorIs(t, err, matching.ErrUnknownProgram)
}

func TestNewMarketRejectsNonPositiveCapacity(t *testing.T) {
	programs := []*matching.Program{matching.NewProgram(0, nil, 0)}
	_, err := matching.NewMarket(nil, nil, programs)
	require.ErrorIs(t, err, matching.ErrNonPositiveCapacity)
}

func TestNewMarketRejectsNegativeStudentID(t *testing.T) {
	singles := []*matching.Student{matching.NewStudent(-1, []int{0})}
	programs := []*matching.Program{matching.NewProgram(0, []int{-1}, 1)}

	_, err := matching.NewMarket(singles, nil, programs)
	require.ErrorIs(t, err, matching.ErrNegativeStudentID)
}
