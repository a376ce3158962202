package matching

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by market construction and the driver.
var (
	// ErrNilMarket indicates a nil *Market was passed to StableMatching or FindUnstablePairs.
	ErrNilMarket = errors.New("matching: market is nil")

	// ErrNilMatching indicates a nil *Matching was passed to FindUnstablePairs.
	ErrNilMatching = errors.New("matching: matching is nil")

	// ErrDuplicateProgramID indicates two programs share an id.
	ErrDuplicateProgramID = errors.New("matching: duplicate program id")

	// ErrUnknownProgram indicates a student's preference list references an id
	// that does not correspond to any supplied Program.
	ErrUnknownProgram = errors.New("matching: preference references unknown program id")

	// ErrUnknownStudent indicates a program's preference list references an id
	// that does not correspond to any supplied Student (or couple member).
	ErrUnknownStudent = errors.New("matching: preference references unknown student id")

	// ErrCoupleLengthMismatch indicates a couple's two members have
	// differently-sized preference lists, violating the zip invariant of §3.
	ErrCoupleLengthMismatch = errors.New("matching: couple members have mismatched preference list lengths")

	// ErrNonPositiveCapacity indicates a program was constructed with capacity <= 0.
	ErrNonPositiveCapacity = errors.New("matching: program capacity must be positive")

	// ErrStudentInMultipleApplicants indicates a student appears both as a
	// single and as a couple member, or in two different couples.
	ErrStudentInMultipleApplicants = errors.New("matching: student assigned to more than one applicant role")

	// ErrNegativeStudentID indicates a student was constructed with a
	// negative id. proposal.go's candidate-pool dedup (pool1/pool2) uses
	// -1 internally as a "no second id" sentinel, so every real student id
	// must be non-negative; NewMarket enforces that here rather than
	// leaving it an unchecked assumption.
	ErrNegativeStudentID = errors.New("matching: student id must be non-negative")
)

// ValidationError aggregates every problem NewMarket found while checking
// its inputs, instead of stopping at the first one. Modeled on
// lvlath/matrix's validators, which report every shape mismatch found in a
// single pass rather than forcing callers through a fix-one-rerun cycle.
type ValidationError struct {
	Problems []error
}

// Error implements the error interface, joining every recorded problem.
func (e *ValidationError) Error() string {
	if len(e.Problems) == 1 {
		return e.Problems[0].Error()
	}
	msg := fmt.Sprintf("matching: %d validation problems:", len(e.Problems))
	for _, p := range e.Problems {
		msg += "\n  - " + p.Error()
	}
	return msg
}

// Unwrap exposes every recorded problem so errors.Is/As match against
// any of them, not only the first.
func (e *ValidationError) Unwrap() []error {
	return e.Problems
}

func (e *ValidationError) add(err error) {
	e.Problems = append(e.Problems, err)
}

// wrapf attaches contextual detail to a sentinel error, mirroring the
// fmt.Errorf("%w: ...") idiom lvlath/dijkstra and lvlath/flow use
// throughout instead of inventing bespoke error structs for every case.
func wrapf(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}

func (e *ValidationError) errorOrNil() error {
	if len(e.Problems) == 0 {
		return nil
	}
	return e
}
