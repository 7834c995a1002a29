package math_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/prysmaticlabs/numerics/math"
	"github.com/prysmaticlabs/numerics/testing/mock"
	"github.com/prysmaticlabs/numerics/testing/require"
)

func TestGuessNumber_QueriesOracleInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	oracle := mock.NewMockOracle(ctrl)
	gomock.InOrder(
		oracle.EXPECT().Guess(int64(6)).Return(math.GuessTooLow),
		oracle.EXPECT().Guess(int64(9)).Return(math.GuessTooHigh),
		oracle.EXPECT().Guess(int64(8)).Return(math.GuessTooHigh),
		oracle.EXPECT().Guess(int64(7)).Return(math.GuessCorrect),
	)

	got, err := math.GuessNumber(10, oracle)
	require.NoError(t, err)
	require.Equal(t, int64(7), got)
}

func TestGuessNumber_StopsOnFirstMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	oracle := mock.NewMockOracle(ctrl)
	oracle.EXPECT().Guess(int64(1073741824)).Return(math.GuessCorrect).Times(1)

	got, err := math.GuessNumber(1<<31-1, oracle)
	require.NoError(t, err)
	require.Equal(t, int64(1073741824), got)
}
