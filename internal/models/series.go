package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/okane-app/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Frequency is the recurrence frequency of a budget series.
type Frequency string

const (
	FrequencyWeekly  Frequency = "WEEKLY"
	FrequencyMonthly Frequency = "MONTHLY"
)

// Valid reports whether the frequency is one of the supported values.
func (f Frequency) Valid() bool {
	return f == FrequencyWeekly || f == FrequencyMonthly
}

// BudgetSeries is a recurrence definition that generates Budget rows
// over time.
//
// Count and Until are both optional stop conditions, whichever is
// reached first wins. Count includes occurrences that were explicitly
// skipped via exceptions, not just materialized ones.
type BudgetSeries struct {
	DefaultModel
	User        User `json:"-"`
	UserID      uuid.UUID
	Workspace   Workspace `json:"-"`
	WorkspaceID uuid.UUID
	Title       string
	Category    Category `json:"-"`
	CategoryID  uuid.UUID
	Currency    Currency `json:"-"`
	CurrencyID  uuid.UUID
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	StartDate   types.Date
	Frequency   Frequency
	Interval    uint
	Count       *uint
	Until       *types.Date
}

// BeforeSave validates the recurrence definition.
func (s *BudgetSeries) BeforeSave(_ *gorm.DB) error {
	s.Title = strings.TrimSpace(s.Title)

	if !s.Frequency.Valid() {
		return ErrSeriesFrequencyInvalid
	}

	if s.Interval < 1 {
		return ErrSeriesIntervalInvalid
	}

	if s.Until != nil && s.Until.Before(s.StartDate) {
		return ErrSeriesUntilBeforeStart
	}

	return nil
}

// SkippedDates returns the dates of all skip exceptions of the series.
func (s BudgetSeries) SkippedDates(db *gorm.DB) (map[types.Date]bool, error) {
	var exceptions []BudgetSeriesException
	err := db.Where(&BudgetSeriesException{SeriesID: s.ID, Skipped: true}).Find(&exceptions).Error
	if err != nil {
		return nil, err
	}

	dates := make(map[types.Date]bool, len(exceptions))
	for _, exception := range exceptions {
		dates[exception.Date] = true
	}

	return dates, nil
}

// Budgets returns all budgets linked to the series.
func (s BudgetSeries) Budgets(db *gorm.DB) ([]Budget, error) {
	var budgets []Budget
	err := db.Where("series_id = ?", s.ID).Order("budget_date ASC").Find(&budgets).Error
	return budgets, err
}

// BudgetSeriesException records a single skipped occurrence of a series.
// The materializer never (re)creates a budget for a skipped date.
type BudgetSeriesException struct {
	DefaultModel
	Series   BudgetSeries `json:"-"`
	SeriesID uuid.UUID    `gorm:"uniqueIndex:exception_series_date"`
	Date     types.Date   `gorm:"uniqueIndex:exception_series_date"`
	Skipped  bool
}
