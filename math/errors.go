package math

import "github.com/pkg/errors"

var (
	// ErrNegativeInput is returned when an input is below zero.
	ErrNegativeInput = errors.New("input is negative")
	// ErrInputTooLarge is returned when an input exceeds the configured MAX_INPUT.
	ErrInputTooLarge = errors.New("input exceeds max input")
	// ErrEmptyRange is returned when a search is asked to look through fewer than one value.
	ErrEmptyRange = errors.New("search range is empty")
	// ErrNoConvergence is returned when the Newton loop hits MAX_SQRT_ITERATIONS.
	ErrNoConvergence = errors.New("square root did not converge")

	// ErrNilOracle is returned when no oracle is supplied to GuessNumber.
	ErrNilOracle = errors.New("nil oracle")
	// ErrInvalidOracleResponse is returned when an oracle answers with anything other than -1, 0 or 1.
	ErrInvalidOracleResponse = errors.New("invalid oracle response")
	// ErrInconsistentOracle is returned when the oracle answers exhaust the range without a match.
	ErrInconsistentOracle = errors.New("oracle responses are inconsistent")
	// ErrSearchComplete is returned when a response is fed to a search that already found its value.
	ErrSearchComplete = errors.New("search already complete")
)
