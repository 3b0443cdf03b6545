package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ResampleTestSuite struct {
	suite.Suite
}

func TestResampleSuite(t *testing.T) {
	suite.Run(t, new(ResampleTestSuite))
}

func (suite *ResampleTestSuite) TestEmptyInput() {
	suite.Nil(resampleDaily(nil, nil))
}

func (suite *ResampleTestSuite) TestSingleEntry() {
	times := []time.Time{time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)}
	suite.Equal([]float64{2.5}, resampleDaily(times, []float64{2.5}))
}

func (suite *ResampleTestSuite) TestSameDayEntriesAreSummed() {
	times := []time.Time{
		time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 16, 0, 0, 0, time.UTC),
	}

	suite.Equal([]float64{6}, resampleDaily(times, []float64{1, 2, 3}))
}

func (suite *ResampleTestSuite) TestCalendarGapsAreZeroFilled() {
	times := []time.Time{
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
	}

	suite.Equal([]float64{1, 0, 0, -1}, resampleDaily(times, []float64{1, -1}))
}

func (suite *ResampleTestSuite) TestUnsortedInput() {
	times := []time.Time{
		time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	}

	suite.Equal([]float64{2, 3, 1}, resampleDaily(times, []float64{1, 2, 3}))
}

func (suite *ResampleTestSuite) TestMonthBoundary() {
	times := []time.Time{
		time.Date(2024, 1, 31, 23, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 1, 1, 0, 0, 0, time.UTC),
	}

	suite.Equal([]float64{1, -1}, resampleDaily(times, []float64{1, -1}))
}

func (suite *ResampleTestSuite) TestMixedTimezonesGroupByWallClockDate() {
	east := time.FixedZone("UTC+2", 2*60*60)

	// 2024-01-01 23:00 UTC and 2024-01-02 01:00 UTC+2 are one hour apart
	// on the absolute timeline but fall on different wall-clock dates.
	times := []time.Time{
		time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 2, 1, 0, 0, 0, east),
	}

	suite.Equal([]float64{1, 2}, resampleDaily(times, []float64{1, 2}))
}
