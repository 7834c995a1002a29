package math

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/numerics/config/params"
)

// IntegerSquareRoot returns floor(sqrt(x)) for 0 <= x <= MAX_INPUT.
//
// The root is found with Newton's method on float64, starting from 1 + x/2,
// until the iterate's square is within SQRT_EPSILON of x. The truncated
// iterate is then nudged so that r*r <= x < (r+1)*(r+1) holds exactly.
func IntegerSquareRoot(x int64) (int64, error) {
	if err := CheckInput(x); err != nil {
		return 0, err
	}
	if x < 2 {
		return x, nil
	}

	cfg := params.ActiveConfig()
	target := float64(x)
	a := float64(1 + x/2)
	for i := 0; a*a > target+cfg.SqrtEpsilon; i++ {
		if i >= cfg.MaxSqrtIterations {
			return 0, errors.Wrapf(ErrNoConvergence, "x=%d after %d iterations", x, i)
		}
		a = (a + target/a) / 2
	}

	r := int64(a)
	for r*r > x {
		r--
	}
	for (r+1)*(r+1) <= x {
		r++
	}
	return r, nil
}
