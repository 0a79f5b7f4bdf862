package services

import (
	"errors"
	"math"
)

const (
	minTrainingPoints = 6
	hiddenNeurons     = 8
	trainingEpochs    = 500
	learningRate      = 0.05
)

// ErrInsufficientTrainingData is returned when a series is too short to
// train a regression model; callers fall back to the statistical estimator.
var ErrInsufficientTrainingData = errors.New("insufficient training data for regression model")

// regressionModel is a small feed-forward network mapping a normalized month
// index to a normalized metric value. It is trained per user and metric and
// cached between forecast runs. Initialization is deterministic so retraining
// on the same series reproduces the same model.
type regressionModel struct {
	hiddenWeights [hiddenNeurons]float64
	hiddenBiases  [hiddenNeurons]float64
	outputWeights [hiddenNeurons]float64
	outputBias    float64

	lastIndex int
	indexSpan float64
	bounds    seriesBounds
}

// trainRegressionModel sanitizes and normalizes the series, then fits the
// network with plain gradient descent. At least 6 points are required.
func trainRegressionModel(series []float64) (*regressionModel, error) {
	if len(series) < minTrainingPoints {
		return nil, ErrInsufficientTrainingData
	}

	cleaned := removeOutliers(series)
	normalized, bounds := normalize(cleaned)

	model := &regressionModel{
		lastIndex: len(normalized) - 1,
		indexSpan: float64(len(normalized) - 1),
		bounds:    bounds,
	}
	for j := 0; j < hiddenNeurons; j++ {
		model.hiddenWeights[j] = 0.5 * math.Sin(float64(j)+1)
		model.hiddenBiases[j] = 0.1 * math.Cos(float64(j)+1)
		model.outputWeights[j] = 0.5 * math.Cos(float64(j)+1)
	}

	for epoch := 0; epoch < trainingEpochs; epoch++ {
		for i, target := range normalized {
			x := float64(i) / model.indexSpan

			var hidden [hiddenNeurons]float64
			out := model.outputBias
			for j := 0; j < hiddenNeurons; j++ {
				hidden[j] = math.Tanh(model.hiddenWeights[j]*x + model.hiddenBiases[j])
				out += model.outputWeights[j] * hidden[j]
			}

			outErr := out - target
			model.outputBias -= learningRate * outErr
			for j := 0; j < hiddenNeurons; j++ {
				gradOut := outErr * hidden[j]
				gradHidden := outErr * model.outputWeights[j] * (1 - hidden[j]*hidden[j])
				model.outputWeights[j] -= learningRate * gradOut
				model.hiddenWeights[j] -= learningRate * gradHidden * x
				model.hiddenBiases[j] -= learningRate * gradHidden
			}
		}
	}

	return model, nil
}

// Predict projects the metric monthsAhead past the end of the training
// window, denormalized back to the original scale. The boolean reports
// whether the output is usable; non-finite or non-positive outputs are
// rejected so the caller can fall back to the statistical path.
func (m *regressionModel) Predict(monthsAhead int) (float64, bool) {
	x := float64(m.lastIndex+monthsAhead) / m.indexSpan

	out := m.outputBias
	for j := 0; j < hiddenNeurons; j++ {
		out += m.outputWeights[j] * math.Tanh(m.hiddenWeights[j]*x+m.hiddenBiases[j])
	}

	value := m.bounds.denormalize(out)
	if !isFinite(value) || value <= 0 {
		return 0, false
	}
	return value, true
}
