package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// PredictorTestSuite defines the test suite for the regression model
type PredictorTestSuite struct {
	suite.Suite
}

// TestPredictorSuite runs the test suite
func TestPredictorSuite(t *testing.T) {
	suite.Run(t, new(PredictorTestSuite))
}

func (s *PredictorTestSuite) TestTrainingRequiresSixPoints() {
	_, err := trainRegressionModel([]float64{100, 200, 300, 400, 500})

	s.ErrorIs(err, ErrInsufficientTrainingData)
}

func (s *PredictorTestSuite) TestConstantSeriesPredictsNearConstant() {
	series := make([]float64, 12)
	for i := range series {
		series[i] = 2500
	}

	model, err := trainRegressionModel(series)
	s.Require().NoError(err)

	for offset := 1; offset <= 12; offset++ {
		value, ok := model.Predict(offset)
		s.True(ok)
		s.InDelta(2500.0, value, 300)
	}
}

func (s *PredictorTestSuite) TestTrainingIsDeterministic() {
	series := []float64{900, 950, 1020, 980, 1100, 1050, 1150, 1200}

	first, err := trainRegressionModel(series)
	s.Require().NoError(err)
	second, err := trainRegressionModel(series)
	s.Require().NoError(err)

	for offset := 1; offset <= 6; offset++ {
		v1, ok1 := first.Predict(offset)
		v2, ok2 := second.Predict(offset)
		s.Equal(ok1, ok2)
		s.Equal(v1, v2)
	}
}

func (s *PredictorTestSuite) TestPredictionsAreFiniteAndPositiveOrRejected() {
	series := []float64{400, 420, 380, 450, 410, 430, 440, 460, 455, 470}

	model, err := trainRegressionModel(series)
	s.Require().NoError(err)

	for offset := 1; offset <= 12; offset++ {
		value, ok := model.Predict(offset)
		if ok {
			s.True(isFinite(value))
			s.Greater(value, 0.0)
		}
	}
}
