package stats

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type StreakTestSuite struct {
	suite.Suite
}

func TestStreakSuite(t *testing.T) {
	suite.Run(t, new(StreakTestSuite))
}

func (suite *StreakTestSuite) TestEmptyInput() {
	suite.Equal(0, longestStreak(nil, true))
	suite.Equal(0, longestStreak(nil, false))
}

func (suite *StreakTestSuite) TestAlternatingSigns() {
	values := []float64{1, -1, 1, -1, 1}
	suite.Equal(1, longestStreak(values, true))
	suite.Equal(1, longestStreak(values, false))
}

func (suite *StreakTestSuite) TestLongestRunIsFound() {
	values := []float64{1, 2, -1, 3, 4, 5, -2, -3}
	suite.Equal(3, longestStreak(values, true))
	suite.Equal(2, longestStreak(values, false))
}

func (suite *StreakTestSuite) TestSingleSign() {
	values := []float64{-0.5, -1.5, -2.5}
	suite.Equal(0, longestStreak(values, true))
	suite.Equal(3, longestStreak(values, false))
}

func (suite *StreakTestSuite) TestZeroBreaksTheRun() {
	// Zeros are filtered out before streak counting, but a zero that slips
	// through matches neither sign and must only reset the counter.
	values := []float64{1, 1, 0, 1, 1, 1}
	suite.Equal(3, longestStreak(values, true))
	suite.Equal(0, longestStreak(values, false))
}
