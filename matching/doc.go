// Package matching computes stable matchings in two-sided markets,
// including markets where some applicants are couples with joint
// preferences over pairs of programs.
//
// Overview:
//
//   - StableMatching implements the instability-chaining algorithm of
//     Roth & Vande Vate (1990): ordinary deferred acceptance (Gale-Shapley)
//     extended with a repair loop that reacts to withdrawals triggered by
//     couples being bumped from one program while still holding a seat at
//     another, and a cycle detector that reports an unstable result
//     instead of looping forever on the instances (known to exist whenever
//     couples are present) that admit no stable matching.
//   - With no couples in the market, the algorithm reduces to plain
//     Gale-Shapley and always terminates with a stable matching.
//
// When to use:
//
//   - Assigning applicants to capacity-limited programs by mutual
//     preference — residency placement, school choice, any two-sided
//     market where one side has unit demand and the other has capacity.
//   - Markets with couples that must be matched to the same program, or
//     to a specific pair of programs, as a unit.
//
// Key features:
//
//   - Zero tunables on the core algorithm: no weights, no ties, no
//     optimality selection among multiple stable matchings. A preference
//     list is a strict, truncated order; a program absent from it is
//     simply unacceptable.
//   - Deterministic by default: two runs on the same Market produce
//     bitwise-identical output. StableMatching accepts an optional
//     *rand.Rand purely to permute applicant processing order for testing;
//     a nil *rand.Rand keeps the default sorted-by-id order.
//   - FindUnstablePairs independently certifies a Matching: an empty
//     result is a proof of stability, not merely the absence of a
//     reported problem.
//
// Performance and complexity:
//
//   - Program selection (§ selectRejected): O(|pool|·log Capacity) per
//     proposal, via a bounded max-heap over priority rank.
//   - Without couples, StableMatching runs in the usual Gale-Shapley
//     O(S·P) worst case (S students, P programs). With couples, the
//     repair loop can revisit programs multiple times; the driver
//     terminates either at quiescence or at the first detected cycle, per
//     the corresponding instability-chaining bound.
//   - Space: O(S + P) for the matching and its reverse index, plus
//     O(stack depth) for the cycle-detection snapshot set, cleared after
//     every top-level applicant.
//
// Error handling (sentinel errors, see errors.go):
//
//   - ErrNilMarket: a nil *Market was passed to StableMatching or
//     FindUnstablePairs.
//   - ErrNilMatching: a nil *Matching was passed to FindUnstablePairs.
//   - ErrDuplicateProgramID: two programs share an id.
//   - ErrUnknownProgram, ErrUnknownStudent: a preference list references
//     an id that was never supplied to NewMarket.
//   - ErrCoupleLengthMismatch: a couple's two members have differently
//     sized preference lists.
//   - ErrNonPositiveCapacity: a Program was constructed with Capacity <= 0.
//   - ErrStudentInMultipleApplicants: a student appears as more than one
//     applicant (twice as a single, in two couples, or both).
//   - ErrNegativeStudentID: a Student was constructed with a negative id.
//
// NewMarket reports every one of the above it finds in a single pass, as
// a *ValidationError wrapping the full list, rather than stopping at the
// first problem.
//
// API reference:
//
//	func NewMarket(singles []*Student, couples []*Couple, programs []*Program) (*Market, error)
//	func StableMatching(market *Market, rng *rand.Rand) (*Matching, error)
//	func FindUnstablePairs(market *Market, m *Matching) ([]UnstablePair, error)
//
//	  - singles, couples, programs: the market's entities. A student must
//	    appear in exactly one of singles or couples.
//	  - rng: optional; nil keeps the deterministic default processing
//	    order.
//	  - m.Valid: false only if a cycle was detected mid-run; the partial
//	    matching accumulated up to that point is still returned, not
//	    discarded.
//
// Thread safety:
//
//   - A Market's preference lists and capacities are never mutated after
//     NewMarket, but StableMatching advances and resets the cursors of
//     the Market's Students, so a *Market is not safe to share across
//     concurrent StableMatching calls, nor across a StableMatching call
//     and a concurrent FindUnstablePairs call.
//   - A single *Matching is not safe for concurrent use: StableMatching
//     mutates it throughout a run.
package matching
