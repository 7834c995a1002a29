package math

import (
	"math/bits"

	"github.com/pkg/errors"
)

// Oracle responses, from the point of view of the candidate being judged.
const (
	// GuessTooHigh means the hidden value is lower than the candidate.
	GuessTooHigh = -1
	// GuessCorrect means the candidate is the hidden value.
	GuessCorrect = 0
	// GuessTooLow means the hidden value is higher than the candidate.
	GuessTooLow = 1
)

// Oracle compares a candidate against a hidden value.
type Oracle interface {
	// Guess returns GuessTooHigh, GuessCorrect or GuessTooLow.
	Guess(candidate int64) int
}

// OracleFunc adapts an ordinary function to the Oracle interface.
type OracleFunc func(candidate int64) int

// Guess calls f(candidate).
func (f OracleFunc) Guess(candidate int64) int {
	return f(candidate)
}

// SecretOracle returns an oracle that judges candidates against secret.
func SecretOracle(secret int64) Oracle {
	return OracleFunc(func(candidate int64) int {
		switch {
		case secret < candidate:
			return GuessTooHigh
		case secret > candidate:
			return GuessTooLow
		default:
			return GuessCorrect
		}
	})
}

// MaxOracleCalls returns the most oracle calls a search over [1, n] can take,
// floor(log2 n) + 1.
func MaxOracleCalls(n int64) int {
	if n < 1 {
		return 0
	}
	return bits.Len64(uint64(n))
}

// GuessNumber finds the hidden value in [1, n] known to oracle.
func GuessNumber(n int64, oracle Oracle) (int64, error) {
	if oracle == nil {
		return 0, ErrNilOracle
	}
	search, err := NewBinarySearch(n)
	if err != nil {
		return 0, err
	}
	for {
		found, err := search.Feed(oracle.Guess(search.Candidate()))
		if err != nil {
			return 0, err
		}
		if found {
			return search.Candidate(), nil
		}
	}
}

// BinarySearch is the step-by-step form of GuessNumber. Callers read
// Candidate, ask their oracle about it and Feed the answer back until Feed
// reports the value was found. It is not safe for concurrent use.
type BinarySearch struct {
	low       int64
	high      int64
	candidate int64
	calls     int
	found     bool
	exhausted bool
}

// NewBinarySearch starts a search over [1, n].
func NewBinarySearch(n int64) (*BinarySearch, error) {
	if n < 1 {
		return nil, errors.Wrapf(ErrEmptyRange, "n=%d", n)
	}
	if err := CheckInput(n); err != nil {
		return nil, err
	}
	b := &BinarySearch{low: 1, high: n}
	b.candidate = b.midpoint()
	return b, nil
}

// midpoint rounds up. Bounds never exceed MAX_INPUT so the int64 sum cannot overflow.
func (b *BinarySearch) midpoint() int64 {
	return (b.low + b.high + 1) / 2
}

// Candidate is the value the oracle should be asked about next, or the found
// value once Done reports true.
func (b *BinarySearch) Candidate() int64 {
	return b.candidate
}

// Bounds returns the inclusive range still being searched.
func (b *BinarySearch) Bounds() (low, high int64) {
	return b.low, b.high
}

// Calls returns the number of oracle responses accepted so far.
func (b *BinarySearch) Calls() int {
	return b.calls
}

// Done reports whether the hidden value has been found.
func (b *BinarySearch) Done() bool {
	return b.found
}

// Feed records the oracle's response for the current candidate and reports
// whether the search is over.
func (b *BinarySearch) Feed(response int) (bool, error) {
	if b.found {
		return true, ErrSearchComplete
	}
	if b.exhausted {
		return false, errors.Wrapf(ErrInconsistentOracle, "no values left after %d responses", b.calls)
	}
	switch response {
	case GuessCorrect:
		b.calls++
		b.found = true
		return true, nil
	case GuessTooLow:
		b.low = b.candidate + 1
	case GuessTooHigh:
		b.high = b.candidate - 1
	default:
		return false, errors.Wrapf(ErrInvalidOracleResponse, "got %d for candidate %d", response, b.candidate)
	}
	b.calls++
	if b.low > b.high {
		b.exhausted = true
		return false, errors.Wrapf(ErrInconsistentOracle, "no values left after %d responses", b.calls)
	}
	b.candidate = b.midpoint()
	return false, nil
}
