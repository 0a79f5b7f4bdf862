package services

import (
	"math"
	"time"

	"finsight/internal/models"
)

// monthVariation derives a deterministic per-month multiplier in [0.9, 1.1)
// from the projection distance and the target calendar month. It replaces a
// random jitter term so repeated runs over the same data stay bit-identical
// while consecutive months still differ.
func monthVariation(monthOffset int, monthNumber int, entryType string) float64 {
	cycle := float64((monthOffset*7+monthNumber*13)%100) / 100
	if entryType == models.EntryTypeIncome {
		cycle = math.Mod(cycle+0.2, 1.0)
	}
	return 0.9 + 0.2*cycle
}

// forecastCategories projects every category with history onto the target
// month. Each category runs the statistical estimator on its own monthly
// vector, adjusted by per-category seasonality and trend and the
// deterministic variation term. Amounts are floored at zero.
func forecastCategories(series *MonthlySeries, target time.Time, monthOffset int) map[string]models.CategoryPrediction {
	predictions := make(map[string]models.CategoryPrediction)

	for name, cat := range series.Categories {
		if !hasData(cat.Amounts) {
			continue
		}

		var base float64
		if countNonZero(cat.Amounts) < 3 {
			// Sparse categories get a plain recent average instead of the
			// autoregressive path, which would overreact to single entries.
			base = recentAverage(cat.Amounts, 3)
		} else {
			base = statisticalEstimate(cat.Amounts, monthOffset)
			seasonal := seasonalityFactor(cat.Amounts, series.Months, target, monthOffset)
			trend := trendFactor(cat.Amounts)
			base *= 1 + seasonal + trend
		}

		amount := base * monthVariation(monthOffset, int(target.Month()), cat.EntryType)
		if !isFinite(amount) || amount < 0 {
			amount = 0
		}

		predictions[name] = models.CategoryPrediction{
			Amount: amount,
			Type:   cat.EntryType,
		}
	}

	return predictions
}

func hasData(values []float64) bool {
	for _, v := range values {
		if v != 0 {
			return true
		}
	}
	return false
}

func countNonZero(values []float64) int {
	count := 0
	for _, v := range values {
		if v != 0 {
			count++
		}
	}
	return count
}

// recentAverage averages the non-zero tail of the series over the last
// window months with data
func recentAverage(values []float64, window int) float64 {
	sum := 0.0
	count := 0
	for i := len(values) - 1; i >= 0 && count < window; i-- {
		if values[i] != 0 {
			sum += values[i]
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
