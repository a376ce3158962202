package matching_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/instability/matching"
)

// buildRandomMarket constructs a market of n students and n/4+1 programs,
// each with capacity ceil(n/(n/4+1)), with uniformly random permutation
// preferences, optionally pairing roughly half of the students into
// couples (about n/4 couples).
func buildRandomMarket(n int, withCouples bool, seed int64) *matching.Market {
	r := rand.New(rand.NewSource(seed))
	numPrograms := n/4 + 1
	minCapacity := int(math.Ceil(float64(n) / float64(numPrograms)))

	perm := func(k int) []int {
		p := make([]int, k)
		for i := range p {
			p[i] = i
		}
		for i := k - 1; i > 0; i-- {
			j := r.Intn(i + 1)
			p[i], p[j] = p[j], p[i]
		}
		return p
	}

	students := make([]*matching.Student, n)
	for i := 0; i < n; i++ {
		students[i] = matching.NewStudent(i, perm(numPrograms))
	}

	programs := make([]*matching.Program, numPrograms)
	for i := 0; i < numPrograms; i++ {
		programs[i] = matching.NewProgram(i, perm(n), minCapacity)
	}

	var singles []*matching.Student
	var couples []*matching.Couple
	if withCouples {
		order := perm(n)
		for i := 0; i+1 < n/2; i += 2 {
			couples = append(couples, matching.NewCouple(students[order[i]], students[order[i+1]]))
		}
		paired := make(map[int]bool, 2*len(couples))
		for _, c := range couples {
			paired[c.Members[0].ID] = true
			paired[c.Members[1].ID] = true
		}
		for _, s := range students {
			if !paired[s.ID] {
				singles = append(singles, s)
			}
		}
	} else {
		singles = students
	}

	mk, err := matching.NewMarket(singles, couples, programs)
	if err != nil {
		panic(err)
	}
	return mk
}

// BenchmarkStableMatching measures StableMatching at increasing market
// sizes, with and without couples.
func BenchmarkStableMatching(b *testing.B) {
	cases := []struct {
		name        string
		students    int
		withCouples bool
	}{
		{"Small/NoCouples", 50, false},
		{"Medium/NoCouples", 200, false},
		{"Large/NoCouples", 500, false},
		{"Small/WithCouples", 50, true},
		{"Medium/WithCouples", 200, true},
	}

	for _, tc := range cases {
		tc := tc
		b.Run(tc.name, func(b *testing.B) {
			mk := buildRandomMarket(tc.students, tc.withCouples, 42)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = matching.StableMatching(mk, nil)
			}
		})
	}
}
