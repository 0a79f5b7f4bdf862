package services

import "math"

const outlierSigmaFactor = 2.5

// seriesBounds captures the min/max of a series before normalization so that
// model outputs can be mapped back to the original scale.
type seriesBounds struct {
	Min float64
	Max float64
}

// span returns the normalization range, falling back to 1 for flat series
// so normalize never divides by zero
func (b seriesBounds) span() float64 {
	if b.Max-b.Min == 0 {
		return 1
	}
	return b.Max - b.Min
}

func (b seriesBounds) denormalize(v float64) float64 {
	return v*b.span() + b.Min
}

func mean(series []float64) float64 {
	if len(series) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range series {
		sum += v
	}
	return sum / float64(len(series))
}

// stdDev returns the population standard deviation
func stdDev(series []float64) float64 {
	if len(series) == 0 {
		return 0
	}
	m := mean(series)
	sum := 0.0
	for _, v := range series {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(series)))
}

// removeOutliers clips values outside mean +/- 2.5 sigma to the boundary.
// Clipping preserves series length and month alignment, unlike dropping
// points. Series shorter than 4 points are returned unchanged because the
// sample is too small for a meaningful deviation estimate.
func removeOutliers(series []float64) []float64 {
	out := make([]float64, len(series))
	copy(out, series)
	if len(series) < 4 {
		return out
	}

	m := mean(series)
	sigma := stdDev(series)
	if sigma == 0 {
		return out
	}

	lower := m - outlierSigmaFactor*sigma
	upper := m + outlierSigmaFactor*sigma
	for i, v := range out {
		if v < lower {
			out[i] = lower
		} else if v > upper {
			out[i] = upper
		}
	}
	return out
}

// normalize min-max scales the series into [0,1] and returns the bounds used
func normalize(series []float64) ([]float64, seriesBounds) {
	if len(series) == 0 {
		return nil, seriesBounds{}
	}

	bounds := seriesBounds{Min: series[0], Max: series[0]}
	for _, v := range series {
		if v < bounds.Min {
			bounds.Min = v
		}
		if v > bounds.Max {
			bounds.Max = v
		}
	}

	out := make([]float64, len(series))
	for i, v := range series {
		out[i] = (v - bounds.Min) / bounds.span()
	}
	return out, bounds
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
