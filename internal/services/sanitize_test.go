package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// SanitizeTestSuite defines the test suite for series sanitization
type SanitizeTestSuite struct {
	suite.Suite
}

// TestSanitizeSuite runs the test suite
func TestSanitizeSuite(t *testing.T) {
	suite.Run(t, new(SanitizeTestSuite))
}

func (s *SanitizeTestSuite) TestRemoveOutliers_ClipsExtremeValues() {
	series := []float64{100, 110, 95, 105, 98, 102, 5000}

	cleaned := removeOutliers(series)

	s.Len(cleaned, len(series))
	m := mean(series)
	sigma := stdDev(series)
	for _, v := range cleaned {
		s.GreaterOrEqual(v, m-outlierSigmaFactor*sigma)
		s.LessOrEqual(v, m+outlierSigmaFactor*sigma)
	}
	// Ordinary values survive untouched.
	s.Equal(100.0, cleaned[0])
	s.Less(cleaned[6], 5000.0)
}

func (s *SanitizeTestSuite) TestRemoveOutliers_ShortSeriesUnchanged() {
	series := []float64{10, 99999, 20}

	cleaned := removeOutliers(series)

	s.Equal(series, cleaned)
}

func (s *SanitizeTestSuite) TestRemoveOutliers_FlatSeriesUnchanged() {
	series := []float64{50, 50, 50, 50, 50}

	cleaned := removeOutliers(series)

	s.Equal(series, cleaned)
}

func (s *SanitizeTestSuite) TestRemoveOutliers_DoesNotMutateInput() {
	series := []float64{100, 110, 95, 105, 98, 102, 5000}
	original := make([]float64, len(series))
	copy(original, series)

	removeOutliers(series)

	s.Equal(original, series)
}

func (s *SanitizeTestSuite) TestNormalize_ScalesIntoUnitRange() {
	series := []float64{200, 400, 300, 600}

	normalized, bounds := normalize(series)

	s.Equal(200.0, bounds.Min)
	s.Equal(600.0, bounds.Max)
	for _, v := range normalized {
		s.GreaterOrEqual(v, 0.0)
		s.LessOrEqual(v, 1.0)
	}
	s.Equal(0.0, normalized[0])
	s.Equal(1.0, normalized[3])
}

func (s *SanitizeTestSuite) TestNormalize_FlatSeriesFallsBackToUnitRange() {
	series := []float64{75, 75, 75}

	normalized, bounds := normalize(series)

	// A zero range would divide by zero; the span falls back to 1 and the
	// flat series maps to all zeros.
	for _, v := range normalized {
		s.Equal(0.0, v)
	}
	s.Equal(75.0, bounds.denormalize(0))
}

func (s *SanitizeTestSuite) TestDenormalize_RoundTrips() {
	series := []float64{10, 90, 45, 70}

	normalized, bounds := normalize(series)

	for i, v := range normalized {
		s.InDelta(series[i], bounds.denormalize(v), 1e-9)
	}
}

func (s *SanitizeTestSuite) TestStdDev_PopulationFormula() {
	s.InDelta(2.0, stdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9}), 1e-9)
	s.Equal(0.0, stdDev([]float64{5, 5, 5}))
	s.Equal(0.0, stdDev(nil))
}
