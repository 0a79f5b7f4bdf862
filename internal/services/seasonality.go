package services

import (
	"math"
	"strings"
	"time"
)

const maxTrendFactor = 0.3

// seasonalityFactor estimates how the target month deviates from the overall
// average, as a signed ratio. With at least a year of data it compares the
// average of matching calendar months against the overall average. Shorter
// histories fall back to a synthetic annual sine cycle scaled by how the
// recent average relates to the latest value.
func seasonalityFactor(values []float64, months []string, target time.Time, monthOffset int) float64 {
	if len(values) < 12 || len(values) != len(months) {
		return 0
	}

	monthSuffix := "-" + target.Format("01")
	monthSum := 0.0
	monthCount := 0
	for i, label := range months {
		if strings.HasSuffix(label, monthSuffix) {
			monthSum += values[i]
			monthCount++
		}
	}

	overall := mean(values)
	if monthCount > 0 {
		if overall == 0 {
			return 0
		}
		factor := monthSum/float64(monthCount)/overall - 1
		if !isFinite(factor) {
			return 0
		}
		return factor
	}

	last := values[len(values)-1]
	if last == 0 {
		return 0
	}
	recent := mean(values[len(values)-12:])
	factor := math.Sin(float64(monthOffset)*math.Pi/6) * (recent / last)
	if !isFinite(factor) {
		return 0
	}
	return factor
}

// trendFactor estimates the per-month growth rate as an exponentially
// weighted average of percent month-over-month changes, clamped to +/-30%
// so a single spike cannot dominate a projection.
func trendFactor(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}

	weightedSum := 0.0
	weightTotal := 0.0
	for i := 1; i < len(values); i++ {
		if values[i-1] == 0 {
			continue
		}
		change := (values[i] - values[i-1]) / values[i-1]
		if !isFinite(change) {
			continue
		}
		w := math.Exp(0.1 * float64(i-1))
		weightedSum += change * w
		weightTotal += w
	}
	if weightTotal == 0 {
		return 0
	}

	factor := weightedSum / weightTotal
	if !isFinite(factor) {
		return 0
	}
	return clampFloat(factor, -maxTrendFactor, maxTrendFactor)
}
