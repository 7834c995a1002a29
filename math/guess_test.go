package math

import (
	"math/bits"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/prysmaticlabs/numerics/config/params"
	"github.com/prysmaticlabs/numerics/testing/assert"
	"github.com/prysmaticlabs/numerics/testing/require"
)

// countingOracle wraps SecretOracle and records how often it was consulted.
type countingOracle struct {
	secret int64
	calls  int
}

func (c *countingOracle) Guess(candidate int64) int {
	c.calls++
	return SecretOracle(c.secret).Guess(candidate)
}

// ceilLog2 returns ceil(log2 n) for n >= 1.
func ceilLog2(n int64) int {
	return bits.Len64(uint64(n - 1))
}

func TestGuessNumber_Exhaustive(t *testing.T) {
	for n := int64(1); n <= 128; n++ {
		for secret := int64(1); secret <= n; secret++ {
			oracle := &countingOracle{secret: secret}
			got, err := GuessNumber(n, oracle)
			require.NoError(t, err)
			require.Equal(t, secret, got, "Wrong guess for n=%d", n)
			require.Equal(t, true, oracle.calls <= ceilLog2(n)+1, "Too many oracle calls for n=%d secret=%d: %d", n, secret, oracle.calls)
			require.Equal(t, true, oracle.calls <= MaxOracleCalls(n), "Calls above MaxOracleCalls for n=%d secret=%d: %d", n, secret, oracle.calls)
		}
	}
}

func TestGuessNumber_Boundaries(t *testing.T) {
	n := params.MaxInputLimit
	for _, secret := range []int64{1, 2, n / 2, n/2 + 1, n - 1, n} {
		oracle := &countingOracle{secret: secret}
		got, err := GuessNumber(n, oracle)
		require.NoError(t, err)
		assert.Equal(t, secret, got)
		assert.Equal(t, true, oracle.calls <= ceilLog2(n)+1, "Too many oracle calls: %d", oracle.calls)
	}

	got, err := GuessNumber(1, SecretOracle(1))
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)
}

func TestGuessNumber_Fuzz(t *testing.T) {
	fuzzer := fuzz.NewWithSeed(0)
	var a, b int32
	for i := 0; i < 20000; i++ {
		fuzzer.Fuzz(&a)
		fuzzer.Fuzz(&b)
		n := int64(a)&params.MaxInputLimit | 1
		secret := int64(b)&params.MaxInputLimit%n + 1
		oracle := &countingOracle{secret: secret}
		got, err := GuessNumber(n, oracle)
		require.NoError(t, err)
		require.Equal(t, secret, got, "Wrong guess for n=%d", n)
		require.Equal(t, true, oracle.calls <= ceilLog2(n)+1, "Too many oracle calls for n=%d: %d", n, oracle.calls)
	}
}

func TestGuessNumber_InvalidInput(t *testing.T) {
	_, err := GuessNumber(0, SecretOracle(1))
	assert.ErrorIs(t, err, ErrEmptyRange)
	_, err = GuessNumber(-3, SecretOracle(1))
	assert.ErrorIs(t, err, ErrEmptyRange)
	_, err = GuessNumber(params.MaxInputLimit+1, SecretOracle(1))
	assert.ErrorIs(t, err, ErrInputTooLarge)
	_, err = GuessNumber(10, nil)
	assert.ErrorIs(t, err, ErrNilOracle)
}

func TestGuessNumber_MisbehavingOracle(t *testing.T) {
	_, err := GuessNumber(100, OracleFunc(func(int64) int { return 2 }))
	assert.ErrorIs(t, err, ErrInvalidOracleResponse)

	// Always claiming the hidden value is higher walks off the top of the range.
	_, err = GuessNumber(100, OracleFunc(func(int64) int { return GuessTooLow }))
	assert.ErrorIs(t, err, ErrInconsistentOracle)

	// A secret outside [1, n] is reported the same way.
	_, err = GuessNumber(10, SecretOracle(11))
	assert.ErrorIs(t, err, ErrInconsistentOracle)
}

func TestBinarySearch_Steps(t *testing.T) {
	search, err := NewBinarySearch(10)
	require.NoError(t, err)
	assert.Equal(t, int64(6), search.Candidate())

	found, err := search.Feed(GuessTooLow)
	require.NoError(t, err)
	assert.Equal(t, false, found)
	low, high := search.Bounds()
	assert.Equal(t, int64(7), low)
	assert.Equal(t, int64(10), high)
	assert.Equal(t, int64(9), search.Candidate())

	found, err = search.Feed(GuessTooHigh)
	require.NoError(t, err)
	assert.Equal(t, false, found)
	assert.Equal(t, int64(8), search.Candidate())

	_, err = search.Feed(7)
	assert.ErrorIs(t, err, ErrInvalidOracleResponse)
	assert.Equal(t, 2, search.Calls(), "Invalid responses must not count")

	found, err = search.Feed(GuessCorrect)
	require.NoError(t, err)
	assert.Equal(t, true, found)
	assert.Equal(t, true, search.Done())
	assert.Equal(t, int64(8), search.Candidate())
	assert.Equal(t, 3, search.Calls())

	found, err = search.Feed(GuessCorrect)
	assert.ErrorIs(t, err, ErrSearchComplete)
	assert.Equal(t, true, found)
}

func TestBinarySearch_Exhausted(t *testing.T) {
	search, err := NewBinarySearch(1)
	require.NoError(t, err)
	_, err = search.Feed(GuessTooHigh)
	assert.ErrorIs(t, err, ErrInconsistentOracle)
	_, err = search.Feed(GuessCorrect)
	assert.ErrorIs(t, err, ErrInconsistentOracle)
	assert.Equal(t, false, search.Done())
}

func TestMaxOracleCalls(t *testing.T) {
	assert.Equal(t, 0, MaxOracleCalls(0))
	assert.Equal(t, 1, MaxOracleCalls(1))
	assert.Equal(t, 2, MaxOracleCalls(2))
	assert.Equal(t, 2, MaxOracleCalls(3))
	assert.Equal(t, 4, MaxOracleCalls(10))
	assert.Equal(t, 31, MaxOracleCalls(params.MaxInputLimit))
}
