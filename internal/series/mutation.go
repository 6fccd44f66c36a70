package series

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/okane-app/backend/internal/models"
	"github.com/okane-app/backend/internal/types"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Change is the set of fields of a budget edit that can affect its
// series. A nil pointer means the field was not part of the edit.
//
// Recurrence pointing at the empty string means the budget was
// converted to non-recurring.
type Change struct {
	Recurrence *models.Frequency
	Title      *string
	Amount     *decimal.Decimal
	CategoryID *uuid.UUID
	CurrencyID *uuid.UUID
	Date       *types.Date
	Count      *uint
}

func (c Change) requestsRecurrence() bool {
	return c.Recurrence != nil && *c.Recurrence != ""
}

// UpdateResult is the outcome of a series-aware budget edit.
type UpdateResult struct {
	// The series the budget belongs to after the edit. Nil when the
	// budget is standalone now.
	Series *models.BudgetSeries
	// Budgets that were rewritten by series-wide propagation, not
	// including the edited budget itself.
	UpdatedBudgets []uuid.UUID
}

// editIntent is what a budget edit means for the budget's series.
// Classification happens once, up front, on immutable inputs; the
// apply functions below only execute the decided intent. The order of
// the classification branches is load-bearing: the count-only check
// runs strictly before the generic attribute check.
type editIntent int

const (
	intentNone editIntent = iota
	intentCreateSeries
	intentConvertToStandalone
	intentChangeFrequency
	intentChangeDate
	intentChangeCount
	intentChangeAttributes
)

// Update applies a budget edit's consequences for its series: creating
// a series, updating it in place, splitting it, or stopping it. The
// whole operation runs in one transaction, including the update of the
// edited budget row's own series-relevant fields.
//
// Budgets without a date never take part in series logic.
func (s *Service) Update(budget models.Budget, change Change) (UpdateResult, error) {
	if budget.Date == nil {
		return UpdateResult{}, nil
	}

	var sr *models.BudgetSeries
	if budget.SeriesID != nil {
		sr = &models.BudgetSeries{}
		err := s.db.First(sr, *budget.SeriesID).Error
		if err != nil {
			return UpdateResult{}, err
		}
	}

	intent := classify(budget, sr, change)

	var result UpdateResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error

		switch intent {
		case intentNone:
			result, err = s.applyPlainEdit(tx, budget, sr, change)
		case intentCreateSeries:
			result, err = s.applyCreateSeries(tx, budget, change)
		case intentConvertToStandalone:
			result, err = s.applyConvertToStandalone(tx, budget, *sr)
		case intentChangeFrequency, intentChangeDate:
			result, err = s.applySplit(tx, budget, *sr, change)
		case intentChangeCount:
			result, err = s.applyChangeCount(tx, budget, *sr, change)
		case intentChangeAttributes:
			result, err = s.applyChangeAttributes(tx, budget, *sr, change)
		}

		return err
	})

	return result, err
}

// classify decides the intent of an edit. The first matching branch
// wins, later branches are unreachable once an earlier one fires.
func classify(budget models.Budget, sr *models.BudgetSeries, change Change) editIntent {
	if sr == nil {
		if change.requestsRecurrence() {
			return intentCreateSeries
		}

		return intentNone
	}

	// Converted to non-recurrent
	if change.Recurrence != nil && *change.Recurrence == "" {
		return intentConvertToStandalone
	}

	// Frequency changed
	if change.Recurrence != nil && *change.Recurrence != sr.Frequency {
		return intentChangeFrequency
	}

	// Date moved off the series pattern
	if change.Date != nil && !change.Date.Equal(*budget.Date) && !matchesPattern(*sr, *change.Date) {
		return intentChangeDate
	}

	countChanged := change.Count != nil && !equalCount(change.Count, sr.Count)
	attributesChanged := change.attributesChanged(budget)

	// Count-only change, checked strictly before the attribute branch
	if countChanged && !attributesChanged {
		return intentChangeCount
	}

	if attributesChanged {
		return intentChangeAttributes
	}

	return intentNone
}

// attributesChanged reports whether the edit touches a field that is
// significant for the series: amount, currency, category, title, or
// the date (within the same pattern, pattern breaks are classified
// earlier).
func (c Change) attributesChanged(budget models.Budget) bool {
	switch {
	case c.Title != nil && *c.Title != budget.Title:
		return true
	case c.Amount != nil && !c.Amount.Equal(budget.Amount):
		return true
	case c.CategoryID != nil && *c.CategoryID != budget.CategoryID:
		return true
	case c.CurrencyID != nil && *c.CurrencyID != budget.CurrencyID:
		return true
	case c.Date != nil && budget.Date != nil && !c.Date.Equal(*budget.Date):
		return true
	}

	return false
}

func equalCount(a, b *uint) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}

// applyPlainEdit updates the edited budget row itself without touching
// any series. Used when the edit has no series consequences.
func (s *Service) applyPlainEdit(tx *gorm.DB, budget models.Budget, sr *models.BudgetSeries, change Change) (UpdateResult, error) {
	err := s.saveBudgetChange(tx, &budget, change)
	if err != nil {
		return UpdateResult{}, err
	}

	return UpdateResult{Series: sr}, nil
}

// applyCreateSeries creates a brand-new series anchored at the edited
// budget's date and attaches the budget to it.
func (s *Service) applyCreateSeries(tx *gorm.DB, budget models.Budget, change Change) (UpdateResult, error) {
	err := s.saveBudgetChange(tx, &budget, change)
	if err != nil {
		return UpdateResult{}, err
	}

	sr := models.BudgetSeries{
		UserID:      budget.UserID,
		WorkspaceID: budget.WorkspaceID,
		Title:       budget.Title,
		CategoryID:  budget.CategoryID,
		CurrencyID:  budget.CurrencyID,
		Amount:      budget.Amount,
		StartDate:   *budget.Date,
		Frequency:   *change.Recurrence,
		Interval:    1,
		Count:       change.Count,
	}

	err = tx.Create(&sr).Error
	if err != nil {
		return UpdateResult{}, fmt.Errorf("failed to create series: %w", err)
	}

	err = tx.Model(&budget).Update("series_id", sr.ID).Error
	if err != nil {
		return UpdateResult{}, err
	}

	log.Debug().
		Str("series", sr.ID.String()).
		Stringer("start", sr.StartDate).
		Msg("created series for budget")

	return UpdateResult{Series: &sr}, nil
}

// applyConvertToStandalone detaches the edited budget and stops its
// series one period before the budget's date, so the budget itself and
// everything after it leave the series while earlier history stays.
func (s *Service) applyConvertToStandalone(tx *gorm.DB, budget models.Budget, sr models.BudgetSeries) (UpdateResult, error) {
	// Detach first: the stop cleanup below removes everything dated
	// after the boundary and must not touch the edited budget.
	err := tx.Model(&budget).Update("series_id", nil).Error
	if err != nil {
		return UpdateResult{}, err
	}

	_, err = s.stop(tx, sr, previousOccurrence(sr, *budget.Date))
	if err != nil {
		return UpdateResult{}, err
	}

	return UpdateResult{}, nil
}

// applySplit stops the old series one period before the edited
// budget's current date and starts a new series at the budget's
// (possibly changed) date. Used when the frequency changes or the date
// moves off the old pattern.
func (s *Service) applySplit(tx *gorm.DB, budget models.Budget, sr models.BudgetSeries, change Change) (UpdateResult, error) {
	// The boundary and the number of count slots the old series keeps
	// are computed from the date the budget occupied in the old series,
	// before any date change is applied.
	boundary := previousOccurrence(sr, *budget.Date)
	consumed := occurrencesBefore(sr, *budget.Date)

	err := tx.Model(&budget).Update("series_id", nil).Error
	if err != nil {
		return UpdateResult{}, err
	}

	_, err = s.stop(tx, sr, boundary)
	if err != nil {
		return UpdateResult{}, err
	}

	err = s.saveBudgetChange(tx, &budget, change)
	if err != nil {
		return UpdateResult{}, err
	}

	frequency := sr.Frequency
	if change.Recurrence != nil {
		frequency = *change.Recurrence
	}

	// The new series takes over the count slots the old one no longer
	// uses, so a split does not extend the total number of occurrences.
	count := sr.Count
	if count != nil {
		remaining := int(*count) - consumed
		if remaining > 0 {
			r := uint(remaining)
			count = &r
		} else {
			count = nil
		}
	}

	if change.Count != nil {
		count = change.Count
		if *count == 0 {
			count = nil
		}
	}

	newSeries := models.BudgetSeries{
		UserID:      budget.UserID,
		WorkspaceID: budget.WorkspaceID,
		Title:       budget.Title,
		CategoryID:  budget.CategoryID,
		CurrencyID:  budget.CurrencyID,
		Amount:      budget.Amount,
		StartDate:   *budget.Date,
		Frequency:   frequency,
		Interval:    sr.Interval,
		Count:       count,
	}

	err = tx.Create(&newSeries).Error
	if err != nil {
		return UpdateResult{}, fmt.Errorf("failed to create replacement series: %w", err)
	}

	err = tx.Model(&budget).Update("series_id", newSeries.ID).Error
	if err != nil {
		return UpdateResult{}, err
	}

	log.Debug().
		Str("old", sr.ID.String()).
		Str("new", newSeries.ID.String()).
		Msg("split series")

	return UpdateResult{Series: &newSeries}, nil
}

// applyChangeCount updates the series count in place. When the count
// shrinks, budgets beyond the new last allowed occurrence are cleaned
// up with the usual transaction protection. No split happens.
func (s *Service) applyChangeCount(tx *gorm.DB, budget models.Budget, sr models.BudgetSeries, change Change) (UpdateResult, error) {
	newCount := change.Count
	if newCount != nil && *newCount == 0 {
		newCount = nil
	}

	if newCount != nil {
		lastAllowed := occurrenceAt(sr, int(*newCount)-1)

		_, _, err := s.cleanupAfter(tx, sr.ID, lastAllowed)
		if err != nil {
			return UpdateResult{}, err
		}
	}

	err := tx.Model(&sr).Update("count", newCount).Error
	if err != nil {
		return UpdateResult{}, err
	}

	sr.Count = newCount
	return UpdateResult{Series: &sr}, nil
}

// applyChangeAttributes updates the series in place and propagates the
// changed fields to every series budget dated on or after the edited
// budget. Rows with transactions keep their historical values, they
// stay in the series but are not rewritten.
func (s *Service) applyChangeAttributes(tx *gorm.DB, budget models.Budget, sr models.BudgetSeries, change Change) (UpdateResult, error) {
	fromDate := *budget.Date
	if change.Date != nil {
		fromDate = types.Min(fromDate, *change.Date)
	}

	err := s.saveBudgetChange(tx, &budget, change)
	if err != nil {
		return UpdateResult{}, err
	}

	seriesUpdates := map[string]any{}
	propagated := map[string]any{}
	if change.Title != nil {
		seriesUpdates["title"] = *change.Title
		propagated["title"] = *change.Title
	}

	if change.Amount != nil {
		seriesUpdates["amount"] = *change.Amount
		propagated["amount"] = *change.Amount
	}

	if change.CategoryID != nil {
		seriesUpdates["category_id"] = *change.CategoryID
		propagated["category_id"] = *change.CategoryID
	}

	if change.CurrencyID != nil {
		seriesUpdates["currency_id"] = *change.CurrencyID
		propagated["currency_id"] = *change.CurrencyID
	}

	// A count change arriving together with attribute changes is
	// folded into the in-place update instead of being dropped.
	if change.Count != nil {
		count := change.Count
		if *count == 0 {
			count = nil
		}

		seriesUpdates["count"] = count
	}

	if len(seriesUpdates) > 0 {
		err = tx.Model(&sr).Updates(seriesUpdates).Error
		if err != nil {
			return UpdateResult{}, err
		}
	}

	var updated []uuid.UUID
	if len(propagated) > 0 {
		updated, err = s.propagate(tx, sr, fromDate, budget.ID, propagated)
		if err != nil {
			return UpdateResult{}, err
		}
	}

	// Amount or currency changes invalidate the converted-amount maps
	// of every row that was actually rewritten.
	if change.Amount != nil || change.CurrencyID != nil {
		ids := append([]uuid.UUID{budget.ID}, updated...)
		err = s.converter.ConvertBudgets(tx, ids, budget.WorkspaceID)
		if err != nil {
			log.Warn().Err(err).Msg("could not convert amounts for propagated budgets")
		}
	}

	err = tx.First(&sr, sr.ID).Error
	if err != nil {
		return UpdateResult{}, err
	}

	return UpdateResult{Series: &sr, UpdatedBudgets: updated}, nil
}

// propagate rewrites the given fields on all series budgets dated on
// or after fromDate that have no transactions. The edited budget
// itself is excluded, it was already updated directly.
func (s *Service) propagate(tx *gorm.DB, sr models.BudgetSeries, fromDate types.Date, exclude uuid.UUID, fields map[string]any) ([]uuid.UUID, error) {
	var budgets []models.Budget
	err := tx.
		Where("series_id = ? AND date(budget_date) >= date(?) AND id <> ?", sr.ID, fromDate, exclude).
		Find(&budgets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets for propagation: %w", err)
	}

	if len(budgets) == 0 {
		return nil, nil
	}

	withTransactions, err := budgetsWithTransactions(tx, budgetIDs(budgets))
	if err != nil {
		return nil, err
	}

	var rewrite []uuid.UUID
	for _, budget := range budgets {
		if withTransactions[budget.ID] {
			continue
		}

		rewrite = append(rewrite, budget.ID)
	}

	if len(rewrite) == 0 {
		return nil, nil
	}

	err = tx.Model(&models.Budget{}).Where("id IN ?", rewrite).Updates(fields).Error
	if err != nil {
		return nil, fmt.Errorf("failed to propagate changes: %w", err)
	}

	return rewrite, nil
}

// saveBudgetChange persists the series-relevant fields of the edit on
// the edited budget row itself. The direct edit always wins, even when
// the budget has transactions: transaction protection applies to
// propagation onto sibling rows, not to the row the user edited.
func (s *Service) saveBudgetChange(tx *gorm.DB, budget *models.Budget, change Change) error {
	updates := map[string]any{}
	if change.Title != nil {
		updates["title"] = *change.Title
		budget.Title = *change.Title
	}

	if change.Amount != nil {
		updates["amount"] = *change.Amount
		budget.Amount = *change.Amount
	}

	if change.CategoryID != nil {
		updates["category_id"] = *change.CategoryID
		budget.CategoryID = *change.CategoryID
	}

	if change.CurrencyID != nil {
		updates["currency_id"] = *change.CurrencyID
		budget.CurrencyID = *change.CurrencyID
	}

	if change.Date != nil {
		updates["budget_date"] = *change.Date
		budget.Date = change.Date
	}

	if len(updates) == 0 {
		return nil
	}

	return tx.Model(budget).Updates(updates).Error
}
