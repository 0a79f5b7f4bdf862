package services

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"sync"
	"time"

	"finsight/internal/config"
	"finsight/internal/models"
	"finsight/internal/repositories"

	"github.com/google/uuid"
)

// Progress checkpoints persisted while a run executes, so clients polling
// the record can render meaningful progress.
const (
	progressAggregated   = 20
	progressSanitized    = 30
	progressExpenseModel = 40
	progressIncomeModel  = 50
	progressHalfHorizon  = 60
	progressFullHorizon  = 70
	progressGoalResolved = 90
)

const (
	metricExpense = "expense"
	metricIncome  = "income"

	forecastMethodRegression  = "regression"
	forecastMethodStatistical = "statistical"
	forecastMethodDefault     = "default"

	// Fallback amounts for users with no usable history and for scrubbing
	// non-finite projection values.
	defaultMonthlyExpense = 1000.0
	defaultMonthlyIncome  = 3000.0
	defaultConfidence     = 50.0
	failedRunConfidence   = 30.0
)

// ErrCategoryNotFound is returned when a category filter matches nothing in
// the stored horizon.
var ErrCategoryNotFound = errors.New("no forecast data for category")

// forecastService orchestrates the forecasting pipeline: ledger aggregation,
// sanitization, model training, the 12-month projection loop, the goal
// projection, and persistence of the resulting record.
type forecastService struct {
	ledgerRepo   repositories.LedgerRepositoryInterface
	goalRepo     repositories.GoalRepositoryInterface
	forecastRepo repositories.ForecastRepositoryInterface
	metrics      MetricsRecorderInterface
	cfg          config.ForecastConfig
	logger       *slog.Logger

	modelCache  *ttlCache[*regressionModel]
	budgetCache *ttlCache[models.MonthProjectionList]
	goalCache   *ttlCache[*models.GoalProjection]

	mu       sync.Mutex
	runLocks map[uuid.UUID]*sync.Mutex
}

// NewForecastService creates the forecasting engine
func NewForecastService(
	ledgerRepo repositories.LedgerRepositoryInterface,
	goalRepo repositories.GoalRepositoryInterface,
	forecastRepo repositories.ForecastRepositoryInterface,
	metrics MetricsRecorderInterface,
	cfg config.ForecastConfig,
) ForecastServiceInterface {
	return &forecastService{
		ledgerRepo:   ledgerRepo,
		goalRepo:     goalRepo,
		forecastRepo: forecastRepo,
		metrics:      metrics,
		cfg:          cfg,
		logger:       slog.Default().With("component", "forecast_service"),
		modelCache:   newTTLCache[*regressionModel](cfg.ModelCacheTTL),
		budgetCache:  newTTLCache[models.MonthProjectionList](cfg.BudgetCacheTTL),
		goalCache:    newTTLCache[*models.GoalProjection](cfg.GoalCacheTTL),
		runLocks:     make(map[uuid.UUID]*sync.Mutex),
	}
}

// UpdateForecasts recomputes the user's forecast end to end. It returns an
// error only for invalid input; computation failures degrade to a persisted
// default record marked failed.
func (s *forecastService) UpdateForecasts(userID uuid.UUID) (*models.Forecast, error) {
	if userID == uuid.Nil {
		return nil, errors.New("user ID is required")
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	start := time.Now()
	s.metrics.IncrementCounter("forecast.run.started", nil)
	defer func() {
		s.metrics.IncrementCounter("forecast.run.finished", nil)
		s.metrics.RecordProcessingTime("forecast.run", time.Since(start))
	}()

	// Stale projections must never outlive the data that produced them.
	s.InvalidateUserCaches(userID)

	forecast, err := s.computeForecast(userID)
	if err != nil {
		s.logger.Error("forecast run failed, persisting default record",
			"user_id", userID, "error", err)
		s.metrics.IncrementCounter("forecast.run", map[string]string{"status": "failed"})
		return s.persistFailureRecord(userID), nil
	}

	s.metrics.IncrementCounter("forecast.run", map[string]string{"status": "success"})
	return forecast, nil
}

func (s *forecastService) computeForecast(userID uuid.UUID) (forecast *models.Forecast, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("forecast computation panicked: %v", r)
		}
	}()

	now := time.Now()

	if resetErr := s.forecastRepo.ResetProgress(userID); resetErr != nil {
		s.logger.Warn("failed to reset forecast progress", "user_id", userID, "error", resetErr)
	}

	entries, err := s.ledgerRepo.GetByUserSince(userID, windowStart(now, s.cfg.HistoryMonths))
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger window: %w", err)
	}
	s.metrics.RecordGauge("forecast.ledger.entries", float64(len(entries)), nil)

	series := buildMonthlySeries(entries)
	s.checkpoint(userID, progressAggregated)

	if series.Len() == 0 {
		// Nothing to learn from. Persist a plausible default forecast so
		// new users still get a complete record.
		return s.persistRecord(userID, defaultProjections(now, defaultConfidence), nil,
			models.CalculationStatusCompleted, defaultConfidence, forecastMethodDefault, series, now)
	}

	cleanExpenses := removeOutliers(series.Expenses)
	cleanIncomes := removeOutliers(series.Incomes)
	s.checkpoint(userID, progressSanitized)

	expenseModel := s.metricModel(userID, metricExpense, cleanExpenses)
	s.checkpoint(userID, progressExpenseModel)
	incomeModel := s.metricModel(userID, metricIncome, cleanIncomes)
	s.checkpoint(userID, progressIncomeModel)

	projections := make(models.MonthProjectionList, 0, models.ForecastHorizonMonths)
	for offset := 1; offset <= models.ForecastHorizonMonths; offset++ {
		target := now.AddDate(0, offset, 0)
		projections = append(projections,
			s.projectMonth(series, cleanExpenses, cleanIncomes, expenseModel, incomeModel, target, offset))
		if offset == models.ForecastHorizonMonths/2 {
			s.checkpoint(userID, progressHalfHorizon)
		}
	}
	s.checkpoint(userID, progressFullHorizon)

	goalProjection := s.computeGoalSection(userID, series, now)

	for i := range projections {
		scrubProjection(&projections[i])
	}
	s.checkpoint(userID, progressGoalResolved)

	method := forecastMethodStatistical
	if expenseModel != nil || incomeModel != nil {
		method = forecastMethodRegression
	}

	return s.persistRecord(userID, projections, goalProjection,
		models.CalculationStatusCompleted, overallConfidence(series), method, series, now)
}

func (s *forecastService) persistRecord(
	userID uuid.UUID,
	projections models.MonthProjectionList,
	goalProjection *models.GoalProjection,
	status string,
	confidence float64,
	method string,
	series *MonthlySeries,
	now time.Time,
) (*models.Forecast, error) {
	forecast := &models.Forecast{
		UserID:              userID,
		BudgetForecasts:     projections,
		CalculationStatus:   status,
		CalculationProgress: 100,
		ConfidenceScore:     confidence,
		ForecastMethod:      method,
		LastUpdated:         now,
	}
	if goalProjection != nil {
		stored := models.GoalProjectionJSON(*goalProjection)
		forecast.GoalForecast = &stored
	}
	if series != nil {
		months := series.Len()
		forecast.DataQuality = models.DataQualityJSON{
			TransactionCount: series.TransactionCount(),
			MonthsOfData:     months,
			Completeness:     math.Min(1, float64(months)/float64(s.cfg.HistoryMonths)),
		}
	}

	if err := s.forecastRepo.Upsert(forecast); err != nil {
		return nil, fmt.Errorf("failed to persist forecast: %w", err)
	}

	s.budgetCache.Set(userID.String(), projections)
	return forecast, nil
}

// persistFailureRecord writes the degraded default record. Persistence
// failures here are logged and swallowed: the caller still receives a
// complete in-memory record.
func (s *forecastService) persistFailureRecord(userID uuid.UUID) *models.Forecast {
	now := time.Now()
	forecast := &models.Forecast{
		UserID:              userID,
		BudgetForecasts:     defaultProjections(now, failedRunConfidence),
		CalculationStatus:   models.CalculationStatusFailed,
		CalculationProgress: 100,
		ConfidenceScore:     failedRunConfidence,
		ForecastMethod:      forecastMethodDefault,
		LastUpdated:         now,
	}
	if err := s.forecastRepo.Upsert(forecast); err != nil {
		s.logger.Error("failed to persist default forecast record",
			"user_id", userID, "error", err)
	}
	return forecast
}

// GetForecast returns the persisted record, running the engine on demand for
// users that have never been forecast.
func (s *forecastService) GetForecast(userID uuid.UUID) (*models.Forecast, error) {
	forecast, err := s.forecastRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrForecastNotFound) {
			return s.UpdateForecasts(userID)
		}
		return nil, err
	}
	return forecast, nil
}

// GetGoalForecast serves the cached goal projection when fresh and
// recomputes it from the recent savings window otherwise.
func (s *forecastService) GetGoalForecast(userID uuid.UUID) (*models.GoalProjection, time.Time, error) {
	if cached, storedAt, ok := s.goalCache.Get(userID.String()); ok {
		s.metrics.IncrementCounter("forecast.cache", map[string]string{"cache": "goal", "result": "hit"})
		return cached, storedAt, nil
	}
	s.metrics.IncrementCounter("forecast.cache", map[string]string{"cache": "goal", "result": "miss"})

	goal, err := s.goalRepo.GetActiveByUserID(userID)
	if err != nil {
		return nil, time.Time{}, err
	}

	now := time.Now()
	entries, err := s.ledgerRepo.GetByUserSince(userID, windowStart(now, s.cfg.GoalWindowMonths))
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to load savings window: %w", err)
	}

	projection := computeGoalProjection(goal, buildMonthlySeries(entries).NetSavings(), now)
	s.goalCache.Set(userID.String(), projection)
	s.metrics.IncrementCounter("goal.projection", map[string]string{"status": "success"})
	return projection, now, nil
}

// GetCategoryForecast derives per-category series from the stored horizon,
// serving the in-process cache when fresh.
func (s *forecastService) GetCategoryForecast(userID uuid.UUID, category string) ([]models.CategoryForecastSeries, time.Time, error) {
	projections, computedAt, ok := s.budgetCache.Get(userID.String())
	if ok {
		s.metrics.IncrementCounter("forecast.cache", map[string]string{"cache": "budget", "result": "hit"})
	} else {
		s.metrics.IncrementCounter("forecast.cache", map[string]string{"cache": "budget", "result": "miss"})
		forecast, err := s.GetForecast(userID)
		if err != nil {
			return nil, time.Time{}, err
		}
		projections = forecast.BudgetForecasts
		computedAt = forecast.LastUpdated
		s.budgetCache.Set(userID.String(), projections)
	}

	series := categorySeriesFromProjections(projections, category)
	if category != "" && len(series) == 0 {
		return nil, time.Time{}, ErrCategoryNotFound
	}
	return series, computedAt, nil
}

// InvalidateUserCaches drops the user's cached projections. Trained models
// survive invalidation: they age out on their own TTL since a handful of new
// entries rarely shifts the fitted curve.
func (s *forecastService) InvalidateUserCaches(userID uuid.UUID) {
	key := userID.String()
	s.budgetCache.Invalidate(key)
	s.goalCache.Invalidate(key)
}

func (s *forecastService) userLock(userID uuid.UUID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.runLocks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.runLocks[userID] = lock
	}
	return lock
}

// checkpoint persists a progress marker. Checkpoint failures never abort a
// run; the forecast itself matters more than the progress display.
func (s *forecastService) checkpoint(userID uuid.UUID, progress int) {
	if err := s.forecastRepo.UpdateProgress(userID, models.CalculationStatusInProgress, progress); err != nil {
		s.logger.Warn("failed to persist forecast progress",
			"user_id", userID, "progress", progress, "error", err)
	}
}

// metricModel returns the cached regression model for the metric, training
// one when the cache is cold. A nil return means the series is too short and
// the statistical path should be used.
func (s *forecastService) metricModel(userID uuid.UUID, metric string, series []float64) *regressionModel {
	key := userID.String() + ":" + metric
	if model, _, ok := s.modelCache.Get(key); ok {
		s.metrics.IncrementCounter("forecast.cache", map[string]string{"cache": "model", "result": "hit"})
		return model
	}
	s.metrics.IncrementCounter("forecast.cache", map[string]string{"cache": "model", "result": "miss"})

	start := time.Now()
	model, err := trainRegressionModel(series)
	if err != nil {
		s.metrics.IncrementCounter("forecast.model.fallback", map[string]string{"metric": metric})
		return nil
	}
	s.metrics.RecordProcessingTime("forecast.model.training", time.Since(start))
	s.metrics.IncrementCounter("forecast.model.trained", map[string]string{"metric": metric})
	s.modelCache.Set(key, model)
	return model
}

func (s *forecastService) projectMonth(
	series *MonthlySeries,
	cleanExpenses, cleanIncomes []float64,
	expenseModel, incomeModel *regressionModel,
	target time.Time,
	offset int,
) models.MonthProjection {
	expense := predictMetric(expenseModel, cleanExpenses, offset)
	income := predictMetric(incomeModel, cleanIncomes, offset)

	expense *= 1 + seasonalityFactor(cleanExpenses, series.Months, target, offset) + trendFactor(cleanExpenses)
	income *= 1 + seasonalityFactor(cleanIncomes, series.Months, target, offset) + trendFactor(cleanIncomes)

	expense *= monthVariation(offset, int(target.Month()), models.EntryTypeExpense)
	income *= monthVariation(offset, int(target.Month()), models.EntryTypeIncome)

	expense = math.Max(0, expense)
	income = math.Max(0, income)

	confidence := monthConfidence(series.Len(), offset)

	return models.MonthProjection{
		Date:                time.Date(target.Year(), target.Month(), 1, 0, 0, 0, 0, time.UTC),
		Month:               target.Format("2006-01"),
		ProjectedExpense:    expense,
		ProjectedIncome:     income,
		ProjectedBalance:    math.Max(0, income-expense),
		CategoryPredictions: forecastCategories(series, target, offset),
		Confidence: models.ConfidenceBands{
			Expense: confidence,
			Income:  confidence,
			Balance: math.Max(10, confidence-5),
		},
		RiskAssessment: clampFloat(100-confidence, 0, 100),
	}
}

// computeGoalSection resolves the active goal and attaches its projection.
// Goal errors degrade to a forecast without a goal section rather than
// failing the whole run.
func (s *forecastService) computeGoalSection(userID uuid.UUID, series *MonthlySeries, now time.Time) *models.GoalProjection {
	goal, err := s.goalRepo.GetActiveByUserID(userID)
	if err != nil {
		if !errors.Is(err, repositories.ErrGoalNotFound) {
			s.logger.Warn("failed to load active goal", "user_id", userID, "error", err)
			s.metrics.IncrementCounter("goal.projection", map[string]string{"status": "failed"})
		}
		return nil
	}

	savings := series.NetSavings()
	if len(savings) > s.cfg.GoalWindowMonths {
		savings = savings[len(savings)-s.cfg.GoalWindowMonths:]
	}

	projection := computeGoalProjection(goal, savings, now)
	s.goalCache.Set(userID.String(), projection)
	s.metrics.IncrementCounter("goal.projection", map[string]string{"status": "success"})
	return projection
}

func predictMetric(model *regressionModel, series []float64, offset int) float64 {
	if model != nil {
		if value, ok := model.Predict(offset); ok {
			return value
		}
	}
	return statisticalEstimate(series, offset)
}

// monthConfidence derives a 0-100 score from the amount of history, decaying
// with projection distance so later months never score above earlier ones.
func monthConfidence(monthsOfData, offset int) float64 {
	base := 50 + 2.5*float64(monthsOfData)
	if base > 95 {
		base = 95
	}
	return clampFloat(base-3*float64(offset-1), 10, 100)
}

func overallConfidence(series *MonthlySeries) float64 {
	return monthConfidence(series.Len(), 1)
}

// scrubProjection replaces any non-finite field with a safe default and
// re-derives the balance so the stored record is always valid JSON with
// sane numbers.
func scrubProjection(p *models.MonthProjection) {
	if !isFinite(p.ProjectedExpense) || p.ProjectedExpense < 0 {
		p.ProjectedExpense = defaultMonthlyExpense
	}
	if !isFinite(p.ProjectedIncome) || p.ProjectedIncome < 0 {
		p.ProjectedIncome = defaultMonthlyIncome
	}
	p.ProjectedBalance = math.Max(0, p.ProjectedIncome-p.ProjectedExpense)

	if !isFinite(p.Confidence.Expense) {
		p.Confidence.Expense = defaultConfidence
	}
	if !isFinite(p.Confidence.Income) {
		p.Confidence.Income = defaultConfidence
	}
	if !isFinite(p.Confidence.Balance) {
		p.Confidence.Balance = defaultConfidence
	}
	if !isFinite(p.RiskAssessment) {
		p.RiskAssessment = 100 - p.Confidence.Expense
	}

	for name, prediction := range p.CategoryPredictions {
		if !isFinite(prediction.Amount) || prediction.Amount < 0 {
			prediction.Amount = 0
			p.CategoryPredictions[name] = prediction
		}
	}
}

// defaultProjections builds a plausible varied 12-month forecast for users
// with no usable history and for failed runs. The deterministic variation
// keeps consecutive months distinct without randomness.
func defaultProjections(now time.Time, confidence float64) models.MonthProjectionList {
	projections := make(models.MonthProjectionList, 0, models.ForecastHorizonMonths)
	for offset := 1; offset <= models.ForecastHorizonMonths; offset++ {
		target := now.AddDate(0, offset, 0)
		expense := defaultMonthlyExpense * monthVariation(offset, int(target.Month()), models.EntryTypeExpense)
		income := defaultMonthlyIncome * monthVariation(offset, int(target.Month()), models.EntryTypeIncome)
		projections = append(projections, models.MonthProjection{
			Date:             time.Date(target.Year(), target.Month(), 1, 0, 0, 0, 0, time.UTC),
			Month:            target.Format("2006-01"),
			ProjectedExpense: expense,
			ProjectedIncome:  income,
			ProjectedBalance: math.Max(0, income-expense),
			Confidence: models.ConfidenceBands{
				Expense: confidence,
				Income:  confidence,
				Balance: confidence,
			},
			RiskAssessment: 100 - confidence,
		})
	}
	return projections
}

// categorySeriesFromProjections pivots the per-month category maps into
// per-category vectors across the horizon
func categorySeriesFromProjections(projections models.MonthProjectionList, filter string) []models.CategoryForecastSeries {
	months := make([]string, len(projections))
	for i, p := range projections {
		months[i] = p.Month
	}

	byCategory := make(map[string]*models.CategoryForecastSeries)
	for i, p := range projections {
		for name, prediction := range p.CategoryPredictions {
			if filter != "" && name != filter {
				continue
			}
			cs, ok := byCategory[name]
			if !ok {
				cs = &models.CategoryForecastSeries{
					Category: name,
					Type:     prediction.Type,
					Months:   months,
					Amounts:  make([]float64, len(projections)),
				}
				byCategory[name] = cs
			}
			cs.Amounts[i] = prediction.Amount
		}
	}

	names := make([]string, 0, len(byCategory))
	for name := range byCategory {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]models.CategoryForecastSeries, 0, len(names))
	for _, name := range names {
		out = append(out, *byCategory[name])
	}
	return out
}
