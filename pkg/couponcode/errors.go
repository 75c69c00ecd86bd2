package couponcode

import (
	"errors"
	"fmt"
)

var (
	// Configuration errors, returned before any algorithmic work starts.
	ErrPartsOutOfRange      = errors.New("parts must be at least 1")
	ErrPartLengthOutOfRange = errors.New("part length must be between 2 and 20")
	ErrEmptySeed            = errors.New("seed must not be empty")
	ErrInvalidBadWord       = errors.New("invalid bad word entry")
	ErrFailedToGenerateSeed = errors.New("failed to draw a random seed")

	// Validation outcomes. These are ordinary results, not exceptional
	// signals: match them with errors.Is, and use errors.As with
	// *PartsCountMismatchError or *PartInvalidError to recover the offending
	// count or part index.
	ErrPartsCountMismatch = errors.New("wrong number of code parts")
	ErrPartInvalid        = errors.New("code part failed checkdigit verification")
)

// PartsCountMismatchError reports that the normalized input split into a
// different number of parts than expected.
type PartsCountMismatchError struct {
	Actual   int
	Expected int
}

func (e *PartsCountMismatchError) Error() string {
	return fmt.Sprintf("wrong number of code parts: got %d, want %d", e.Actual, e.Expected)
}

// Is makes the error match ErrPartsCountMismatch under errors.Is.
func (e *PartsCountMismatchError) Is(target error) bool {
	return target == ErrPartsCountMismatch
}

// PartInvalidError reports the first part whose checkdigit did not verify.
// PartIndex is zero-based.
type PartInvalidError struct {
	PartIndex int
}

func (e *PartInvalidError) Error() string {
	return fmt.Sprintf("code part %d failed checkdigit verification", e.PartIndex)
}

// Is makes the error match ErrPartInvalid under errors.Is.
func (e *PartInvalidError) Is(target error) bool {
	return target == ErrPartInvalid
}
