package math

import (
	"strings"

	"github.com/pkg/errors"
)

// Operation names one of the routines in this package.
type Operation string

const (
	// OpIntegerSquareRoot names IntegerSquareRoot.
	OpIntegerSquareRoot Operation = "sqrt"
	// OpArrangeCoins names ArrangeCoins.
	OpArrangeCoins Operation = "coins"
	// OpGuessNumber names GuessNumber.
	OpGuessNumber Operation = "guess"
)

// AllOperations lists every operation in a stable order.
var AllOperations = []Operation{OpIntegerSquareRoot, OpArrangeCoins, OpGuessNumber}

// ParseOperation converts a name such as "sqrt" into an Operation.
func ParseOperation(name string) (Operation, error) {
	for _, op := range AllOperations {
		if strings.EqualFold(name, string(op)) {
			return op, nil
		}
	}
	return "", errors.Errorf("unknown operation %q", name)
}

// ParseOperations converts a comma separated list of names into operations,
// dropping duplicates.
func ParseOperations(names string) ([]Operation, error) {
	seen := make(map[Operation]bool)
	ops := make([]Operation, 0, len(AllOperations))
	for _, name := range strings.Split(names, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		op, err := ParseOperation(name)
		if err != nil {
			return nil, err
		}
		if seen[op] {
			continue
		}
		seen[op] = true
		ops = append(ops, op)
	}
	if len(ops) == 0 {
		return nil, errors.Errorf("no operations in %q", names)
	}
	return ops, nil
}
