package services

import (
	"fmt"
	"math"
	"sort"
	"time"

	"finsight/internal/models"
)

const (
	goalRecencyDecay   = 0.4
	maxGoalMonths      = 120
	minWorstCaseCap    = 60
	worstCapRelaxation = 10
)

// goalSavingsStats holds the per-month savings statistics feeding both the
// month estimates and the probability score.
type goalSavingsStats struct {
	values         []float64
	weightedAvg    float64
	variability    float64
	positiveMonths int
	negativeMonths int
	recentHalf     float64
	priorHalf      float64
}

func newGoalSavingsStats(savings []float64) goalSavingsStats {
	stats := goalSavingsStats{values: savings}
	if len(savings) == 0 {
		return stats
	}

	// Recency weighted average: the latest month carries full weight and
	// each older month decays by e^-0.4.
	weightedSum := 0.0
	weightTotal := 0.0
	for back := 0; back < len(savings); back++ {
		w := math.Exp(-goalRecencyDecay * float64(back))
		weightedSum += savings[len(savings)-1-back] * w
		weightTotal += w
	}
	stats.weightedAvg = weightedSum / weightTotal
	stats.variability = stdDev(savings)

	for _, v := range savings {
		if v > 0 {
			stats.positiveMonths++
		} else if v < 0 {
			stats.negativeMonths++
		}
	}

	half := len(savings) / 2
	if half > 0 {
		stats.recentHalf = mean(savings[len(savings)-half:])
		stats.priorHalf = mean(savings[:len(savings)-half])
	}

	return stats
}

// computeGoalProjection estimates months-to-goal for the active goal from the
// recent monthly net savings window. It never fails: degenerate inputs
// produce capped pessimistic estimates rather than errors.
func computeGoalProjection(goal *models.Goal, savings []float64, now time.Time) *models.GoalProjection {
	stats := newGoalSavingsStats(savings)
	remaining := goal.RemainingAmount().InexactFloat64()

	projection := &models.GoalProjection{
		GoalID:             goal.ID,
		MonthlySavings:     math.Max(0, stats.weightedAvg),
		SavingsVariability: stats.variability,
	}

	if remaining <= 0 {
		projection.ExpectedMonths = 1
		projection.BestCaseMonths = 1
		projection.WorstCaseMonths = 1
		projection.ProjectedDate = now.AddDate(0, 1, 0)
		projection.Probability = 100
		return projection
	}

	optimistic := math.Max(stats.weightedAvg, stats.weightedAvg+0.5*stats.variability)
	pessimistic := pessimisticRate(stats)

	// More historically positive months loosen the worst-case cap downward,
	// since a consistent saver rarely needs the full horizon.
	worstCap := maxGoalMonths - worstCapRelaxation*stats.positiveMonths
	if worstCap < minWorstCaseCap {
		worstCap = minWorstCaseCap
	}

	best := monthsToTarget(remaining, optimistic, maxGoalMonths)
	expected := monthsToTarget(remaining, stats.weightedAvg, maxGoalMonths)
	worst := monthsToTarget(remaining, pessimistic, maxGoalMonths)

	if expected < best {
		expected = best
	}
	if worst < expected {
		worst = expected
	}
	if worst > worstCap {
		worst = worstCap
	}

	projection.BestCaseMonths = best
	projection.ExpectedMonths = expected
	projection.WorstCaseMonths = worst
	projection.ProjectedDate = now.AddDate(0, expected, 0)
	projection.Probability = goalProbability(goal, stats)
	projection.RiskFactors = goalRiskFactors(stats, expected)

	return projection
}

// pessimisticRate picks the most defensible conservative savings rate. With
// repeated negative months every candidate is on the table; otherwise high
// variability widens the estimate and stable histories just subtract one
// deviation.
func pessimisticRate(stats goalSavingsStats) float64 {
	varAdjusted := stats.weightedAvg - stats.variability

	candidates := []float64{varAdjusted}
	if len(stats.values) >= 4 {
		sorted := make([]float64, len(stats.values))
		copy(sorted, stats.values)
		sort.Float64s(sorted)
		worstQuartile := sorted[len(sorted)/4]

		declineProjection := stats.weightedAvg + (stats.recentHalf - stats.priorHalf)

		if stats.negativeMonths >= 2 {
			candidates = append(candidates, worstQuartile, declineProjection)
		} else if stats.weightedAvg > 0 && stats.variability > stats.weightedAvg {
			candidates = append(candidates, worstQuartile)
		}
	}

	rate := candidates[0]
	for _, c := range candidates[1:] {
		if c < rate {
			rate = c
		}
	}
	return rate
}

// monthsToTarget converts a savings rate into whole months, clamped to
// [1, cap]. Non-positive rates mean the target is unreachable at that rate
// and return the cap.
func monthsToTarget(remaining, rate float64, cap int) int {
	if rate <= 0 || !isFinite(rate) {
		return cap
	}
	// The epsilon absorbs float noise from the weighted average so an exact
	// multiple of the rate does not round up an extra month.
	months := int(math.Ceil(remaining/rate - 1e-9))
	if months < 1 {
		return 1
	}
	if months > cap {
		return cap
	}
	return months
}

// goalProbability scores the chance of reaching the goal on a 0-100 scale.
// The score starts from a neutral base and moves with progress already made,
// savings stability, month-over-month consistency, and recent momentum.
func goalProbability(goal *models.Goal, stats goalSavingsStats) float64 {
	score := 40.0

	target := goal.TargetAmount.InexactFloat64()
	if target > 0 {
		progress := goal.CurrentAmount.InexactFloat64() / target
		score += 20 * clampFloat(progress, 0, 1)
	}

	if stats.weightedAvg > 0 {
		stability := 1 - math.Min(1, stats.variability/stats.weightedAvg)
		score += 15 * stability
	}

	if len(stats.values) > 0 {
		score += 15 * float64(stats.positiveMonths) / float64(len(stats.values))
	}

	if stats.recentHalf > stats.priorHalf {
		score += 10
	}

	score -= 8 * float64(stats.negativeMonths)

	if stats.weightedAvg > 0 && score < 5 {
		score = 5
	}
	return clampFloat(score, 0, 100)
}

func goalRiskFactors(stats goalSavingsStats, expectedMonths int) []models.RiskFactor {
	var factors []models.RiskFactor

	if stats.weightedAvg > 0 {
		ratio := stats.variability / stats.weightedAvg
		if ratio > 0.5 {
			factors = append(factors, models.RiskFactor{
				Type:        models.RiskHighVariability,
				Severity:    math.Min(100, ratio*100),
				Description: "monthly savings swing widely relative to the average",
			})
		}
	}

	if stats.recentHalf < stats.priorHalf {
		drop := stats.priorHalf - stats.recentHalf
		scale := math.Max(math.Abs(stats.priorHalf), 1)
		factors = append(factors, models.RiskFactor{
			Type:        models.RiskDecliningTrend,
			Severity:    math.Min(100, drop/scale*100),
			Description: "recent savings are below the earlier trend",
		})
	}

	if expectedMonths > 36 {
		factors = append(factors, models.RiskFactor{
			Type:        models.RiskAmbitiousTimeline,
			Severity:    math.Min(100, float64(expectedMonths)/float64(maxGoalMonths)*100),
			Description: fmt.Sprintf("goal needs roughly %d months at the current rate", expectedMonths),
		})
	}

	if stats.negativeMonths > 0 && len(stats.values) > 0 {
		factors = append(factors, models.RiskFactor{
			Type:        models.RiskNegativeMonths,
			Severity:    float64(stats.negativeMonths) / float64(len(stats.values)) * 100,
			Description: fmt.Sprintf("%d of the last %d months ended with negative savings", stats.negativeMonths, len(stats.values)),
		})
	}

	return factors
}
