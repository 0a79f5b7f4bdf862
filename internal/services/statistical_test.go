package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// StatisticalTestSuite defines the test suite for the fallback estimator
type StatisticalTestSuite struct {
	suite.Suite
}

// TestStatisticalSuite runs the test suite
func TestStatisticalSuite(t *testing.T) {
	suite.Run(t, new(StatisticalTestSuite))
}

func (s *StatisticalTestSuite) TestConstantSeriesConvergesToConstant() {
	series := make([]float64, 24)
	for i := range series {
		series[i] = 500
	}

	for offset := 1; offset <= 12; offset++ {
		s.InDelta(500.0, statisticalEstimate(series, offset), 1e-6,
			"constant history should project the constant at offset %d", offset)
	}
}

func (s *StatisticalTestSuite) TestEmptySeriesReturnsOne() {
	s.Equal(1.0, statisticalEstimate(nil, 1))
	s.Equal(1.0, statisticalEstimate([]float64{}, 6))
}

func (s *StatisticalTestSuite) TestSingleValueSeries() {
	s.Equal(750.0, statisticalEstimate([]float64{750}, 3))
	s.Equal(1.0, statisticalEstimate([]float64{-50}, 3))
}

func (s *StatisticalTestSuite) TestResultAlwaysPositive() {
	declining := []float64{100, 80, 60, 40, 20, 5, 1, 0.5}

	for offset := 1; offset <= 12; offset++ {
		s.Greater(statisticalEstimate(declining, offset), 0.0)
	}
}

func (s *StatisticalTestSuite) TestShortHistoryStaysNearMean() {
	// With 3 points the confidence factor is 0.25, so the estimate leans
	// heavily toward the mean even when the tail trends upward.
	series := []float64{100, 200, 300}
	m := mean(series)

	result := statisticalEstimate(series, 1)

	s.InDelta(m, result, 100)
}

func (s *StatisticalTestSuite) TestGrowingSeriesProjectsAboveMean() {
	series := make([]float64, 18)
	for i := range series {
		series[i] = 100 + float64(i)*20
	}

	result := statisticalEstimate(series, 3)

	s.Greater(result, mean(series))
}
