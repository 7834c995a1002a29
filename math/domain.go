// Package math includes the bounded integer routines served by numerics.
package math

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/numerics/config/params"
	"golang.org/x/exp/constraints"
)

// CheckInput returns an error unless 0 <= v <= MAX_INPUT.
func CheckInput[T constraints.Signed](v T) error {
	if v < 0 {
		return errors.Wrapf(ErrNegativeInput, "got %d", v)
	}
	if limit := params.ActiveConfig().MaxInput; int64(v) > limit {
		return errors.Wrapf(ErrInputTooLarge, "got %d, max %d", v, limit)
	}
	return nil
}
