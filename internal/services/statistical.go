package services

// statisticalEstimate projects a monthly series monthOffset months ahead
// using an autoregressive heuristic. It is the fallback path when no trained
// model is available and must always return a usable positive value.
//
// Three components are combined:
//   - AR: weighted average of the last min(6, n/3) values, recency weighted
//   - I: mean first difference, scaled by the projection distance
//   - MA: mean one-step error against a trailing average of order min(3, n/4)
//
// The combined projection is then blended toward the series mean by a
// confidence factor min(1, n/12), so short histories stay close to the mean.
func statisticalEstimate(series []float64, monthOffset int) float64 {
	n := len(series)
	if n == 0 {
		return 1
	}

	m := mean(series)
	if n == 1 {
		if isFinite(series[0]) && series[0] > 0 {
			return series[0]
		}
		return 1
	}

	arOrder := n / 3
	if arOrder > 6 {
		arOrder = 6
	}
	if arOrder < 1 {
		arOrder = 1
	}

	weightedSum := 0.0
	weightTotal := 0.0
	for i := 0; i < arOrder; i++ {
		w := 1 - float64(i)/float64(arOrder)
		weightedSum += series[n-1-i] * w
		weightTotal += w
	}
	ar := weightedSum / weightTotal

	drift := 0.0
	for i := 1; i < n; i++ {
		drift += series[i] - series[i-1]
	}
	drift /= float64(n - 1)

	maOrder := n / 4
	if maOrder > 3 {
		maOrder = 3
	}
	maTerm := 0.0
	if maOrder >= 1 {
		errSum := 0.0
		errCount := 0
		for t := maOrder; t < n; t++ {
			errSum += series[t] - mean(series[t-maOrder:t])
			errCount++
		}
		if errCount > 0 {
			maTerm = errSum / float64(errCount)
		}
	}

	prediction := ar + drift*float64(monthOffset) + maTerm

	confidence := float64(n) / 12
	if confidence > 1 {
		confidence = 1
	}
	result := prediction*confidence + m*(1-confidence)

	if !isFinite(result) || result <= 0 {
		if isFinite(m) && m > 0 {
			return m
		}
		return 1
	}
	return result
}
