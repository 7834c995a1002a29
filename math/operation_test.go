package math

import (
	"testing"

	"github.com/prysmaticlabs/numerics/testing/assert"
	"github.com/prysmaticlabs/numerics/testing/require"
)

func TestParseOperation(t *testing.T) {
	op, err := ParseOperation("SQRT")
	require.NoError(t, err)
	assert.Equal(t, OpIntegerSquareRoot, op)

	_, err = ParseOperation("cbrt")
	assert.ErrorContains(t, `unknown operation "cbrt"`, err)
}

func TestParseOperations(t *testing.T) {
	ops, err := ParseOperations("coins, sqrt,coins")
	require.NoError(t, err)
	assert.DeepEqual(t, []Operation{OpArrangeCoins, OpIntegerSquareRoot}, ops)

	_, err = ParseOperations(" , ")
	assert.ErrorContains(t, "no operations", err)

	_, err = ParseOperations("sqrt,log")
	assert.ErrorContains(t, "unknown operation", err)
}
