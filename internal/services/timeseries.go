package services

import (
	"sort"
	"time"

	"finsight/internal/models"
)

// CategorySeries is one category's monthly amount vector, aligned with the
// owning MonthlySeries by index. Months where the category had no entries
// contribute 0.
type CategorySeries struct {
	EntryType string
	Amounts   []float64
}

// MonthlySeries is the per-calendar-month aggregate of a user's ledger
// window. It is derived, never persisted. Only months with at least one
// entry appear; gaps are not interpolated. All slices are index-aligned and
// chronologically ascending.
type MonthlySeries struct {
	Months     []string
	Dates      []time.Time
	Expenses   []float64
	Incomes    []float64
	Counts     []int
	Categories map[string]*CategorySeries
}

// Len returns the number of months with data
func (s *MonthlySeries) Len() int {
	return len(s.Months)
}

// TransactionCount returns the total entry count across the window
func (s *MonthlySeries) TransactionCount() int {
	total := 0
	for _, c := range s.Counts {
		total += c
	}
	return total
}

// NetSavings returns income minus expense per month
func (s *MonthlySeries) NetSavings() []float64 {
	savings := make([]float64, s.Len())
	for i := range savings {
		savings[i] = s.Incomes[i] - s.Expenses[i]
	}
	return savings
}

type monthBucket struct {
	date       time.Time
	expense    float64
	income     float64
	count      int
	categories map[string]*categoryBucket
}

type categoryBucket struct {
	entryType string
	amount    float64
}

// buildMonthlySeries groups ledger entries by calendar month. An empty input
// produces an empty series, which signals "insufficient data" to callers
// rather than an error.
func buildMonthlySeries(entries []models.LedgerEntry) *MonthlySeries {
	buckets := make(map[string]*monthBucket)

	for i := range entries {
		entry := &entries[i]
		key := entry.MonthKey()

		bucket, ok := buckets[key]
		if !ok {
			bucket = &monthBucket{
				date:       time.Date(entry.OccurredAt.Year(), entry.OccurredAt.Month(), 1, 0, 0, 0, 0, time.UTC),
				categories: make(map[string]*categoryBucket),
			}
			buckets[key] = bucket
		}

		amount := entry.Amount.InexactFloat64()
		if entry.IsExpense() {
			bucket.expense += amount
		} else {
			bucket.income += amount
		}
		bucket.count++

		cat, ok := bucket.categories[entry.Category]
		if !ok {
			cat = &categoryBucket{}
			bucket.categories[entry.Category] = cat
		}
		cat.amount += amount
		// Last-seen type wins when a category carries both entry types.
		cat.entryType = entry.EntryType
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	series := &MonthlySeries{
		Months:     make([]string, 0, len(keys)),
		Dates:      make([]time.Time, 0, len(keys)),
		Expenses:   make([]float64, 0, len(keys)),
		Incomes:    make([]float64, 0, len(keys)),
		Counts:     make([]int, 0, len(keys)),
		Categories: make(map[string]*CategorySeries),
	}

	allCategories := make(map[string]string)
	for _, key := range keys {
		for name, cat := range buckets[key].categories {
			allCategories[name] = cat.entryType
		}
	}

	for idx, key := range keys {
		bucket := buckets[key]
		series.Months = append(series.Months, key)
		series.Dates = append(series.Dates, bucket.date)
		series.Expenses = append(series.Expenses, bucket.expense)
		series.Incomes = append(series.Incomes, bucket.income)
		series.Counts = append(series.Counts, bucket.count)

		for name, entryType := range allCategories {
			cs, ok := series.Categories[name]
			if !ok {
				cs = &CategorySeries{
					EntryType: entryType,
					Amounts:   make([]float64, len(keys)),
				}
				series.Categories[name] = cs
			}
			if cat, ok := bucket.categories[name]; ok {
				cs.Amounts[idx] = cat.amount
				cs.EntryType = cat.entryType
			}
		}
	}

	return series
}

// windowStart returns the ledger read horizon for a month window ending now
func windowStart(now time.Time, months int) time.Time {
	return now.AddDate(0, -months, 0)
}
