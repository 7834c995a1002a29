package math

import (
	"math"
)

// StaircaseCoins returns the number of coins needed to fill k complete
// staircase rows, 1 + 2 + ... + k.
func StaircaseCoins(k int64) int64 {
	return k * (k + 1) / 2
}

// ArrangeCoins returns the largest k such that k complete rows, row i holding
// i coins, can be built from n coins.
func ArrangeCoins(n int64) (int64, error) {
	if err := CheckInput(n); err != nil {
		return 0, err
	}
	// k*(k+1)/2 = n solved for k, rounded up by one so the correction below
	// only has to walk down in the common case.
	k := int64((math.Sqrt(float64(8*n+1))-1)/2) + 1
	for StaircaseCoins(k) > n {
		k--
	}
	for StaircaseCoins(k+1) <= n {
		k++
	}
	return k, nil
}
