package series

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/okane-app/backend/internal/models"
	"github.com/okane-app/backend/internal/types"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// StopResult describes what a stop operation did.
type StopResult struct {
	Deleted           int64 `json:"deleted"`           // Budgets deleted (they had no transactions)
	Unlinked          int64 `json:"unlinked"`          // Budgets detached from the series but kept (they had transactions)
	DeletedExceptions int64 `json:"deletedExceptions"` // Skip exceptions removed because they lie after the stop date
	SeriesDeleted     bool  `json:"seriesDeleted"`     // Whether the series itself was removed
}

// Stop stops a series at the given date on behalf of a user request.
// An until date before the series start is a validation error, it is
// never silently clamped: only internally computed stop boundaries are.
func (s *Service) Stop(sr models.BudgetSeries, until types.Date) (StopResult, error) {
	if until.Before(sr.StartDate) {
		return StopResult{}, models.ErrSeriesUntilBeforeStart
	}

	var result StopResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		result, err = s.stop(tx, sr, until)
		return err
	})

	return result, err
}

// stop ends a series at the until date: budgets after the date are
// cleaned up, exceptions after the date are dropped, and a series that
// retroactively covers no valid occurrence is deleted outright instead
// of being left as a phantom.
func (s *Service) stop(tx *gorm.DB, sr models.BudgetSeries, until types.Date) (StopResult, error) {
	// Internally computed boundaries may precede the start date, clamp
	// them so the comparison below decides deletion consistently.
	if until.Before(sr.StartDate) {
		until = sr.StartDate
	}

	deleted, unlinked, err := s.cleanupAfter(tx, sr.ID, until)
	if err != nil {
		return StopResult{}, err
	}

	// Exceptions after the stop date are moot
	exceptions := tx.Where("series_id = ? AND date(date) > date(?)", sr.ID, until).
		Delete(&models.BudgetSeriesException{})
	if exceptions.Error != nil {
		return StopResult{}, fmt.Errorf("failed to delete exceptions: %w", exceptions.Error)
	}

	result := StopResult{
		Deleted:           deleted,
		Unlinked:          unlinked,
		DeletedExceptions: exceptions.RowsAffected,
	}

	var remaining int64
	err = tx.Model(&models.Budget{}).Where("series_id = ?", sr.ID).Count(&remaining).Error
	if err != nil {
		return StopResult{}, err
	}

	if remaining == 0 || !until.After(sr.StartDate) {
		// The series never produced valid history, remove it entirely.
		// Budgets that survived the cleanup become standalone.
		err = tx.Model(&models.Budget{}).Where("series_id = ?", sr.ID).Update("series_id", nil).Error
		if err != nil {
			return StopResult{}, err
		}

		err = tx.Where("series_id = ?", sr.ID).Delete(&models.BudgetSeriesException{}).Error
		if err != nil {
			return StopResult{}, err
		}

		err = tx.Delete(&sr).Error
		if err != nil {
			return StopResult{}, err
		}

		result.SeriesDeleted = true

		log.Debug().
			Str("series", sr.ID.String()).
			Msg("deleted series without valid occurrences")

		return result, nil
	}

	err = tx.Model(&sr).Update("until", until).Error
	if err != nil {
		return StopResult{}, err
	}

	return result, nil
}

// cleanupAfter handles the budgets of a series dated strictly after
// the given date: budgets without transactions are deleted, budgets
// with transactions are detached from the series and kept. Financial
// history is never destroyed.
func (s *Service) cleanupAfter(tx *gorm.DB, seriesID uuid.UUID, after types.Date) (deleted, unlinked int64, err error) {
	var budgets []models.Budget
	// The column is stored as datetime text, so both sides have to be
	// reduced to dates or the boundary row compares as strictly after.
	err = tx.Where("series_id = ? AND date(budget_date) > date(?)", seriesID, after).Find(&budgets).Error
	if err != nil {
		return 0, 0, fmt.Errorf("failed to load budgets for cleanup: %w", err)
	}

	if len(budgets) == 0 {
		return 0, 0, nil
	}

	withTransactions, err := budgetsWithTransactions(tx, budgetIDs(budgets))
	if err != nil {
		return 0, 0, err
	}

	var toDelete, toUnlink []uuid.UUID
	for _, budget := range budgets {
		if withTransactions[budget.ID] {
			toUnlink = append(toUnlink, budget.ID)
		} else {
			toDelete = append(toDelete, budget.ID)
		}
	}

	if len(toDelete) > 0 {
		res := tx.Where("id IN ?", toDelete).Delete(&models.Budget{})
		if res.Error != nil {
			return 0, 0, fmt.Errorf("failed to delete budgets: %w", res.Error)
		}

		deleted = res.RowsAffected
	}

	if len(toUnlink) > 0 {
		res := tx.Model(&models.Budget{}).Where("id IN ?", toUnlink).Update("series_id", nil)
		if res.Error != nil {
			return 0, 0, fmt.Errorf("failed to unlink budgets: %w", res.Error)
		}

		unlinked = res.RowsAffected
	}

	return deleted, unlinked, nil
}

// TrackDeletion records a skip exception when a materialized budget
// instance is deleted directly, so that the next materialization run
// does not resurrect it. Budgets without a series or without a date
// are no-ops. The call is idempotent.
func (s *Service) TrackDeletion(budget models.Budget) error {
	if budget.SeriesID == nil || budget.Date == nil {
		return nil
	}

	exception := models.BudgetSeriesException{
		SeriesID: *budget.SeriesID,
		Date:     *budget.Date,
		Skipped:  true,
	}

	return s.db.
		Where(&models.BudgetSeriesException{SeriesID: *budget.SeriesID, Date: *budget.Date}).
		FirstOrCreate(&exception).Error
}

// budgetsWithTransactions returns the set of budget IDs that have at
// least one transaction recorded against them.
func budgetsWithTransactions(tx *gorm.DB, ids []uuid.UUID) (map[uuid.UUID]bool, error) {
	var linked []uuid.UUID
	err := tx.Model(&models.Transaction{}).
		Where("budget_id IN ?", ids).
		Distinct().
		Pluck("budget_id", &linked).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction links: %w", err)
	}

	result := make(map[uuid.UUID]bool, len(linked))
	for _, id := range linked {
		result[id] = true
	}

	return result, nil
}

func budgetIDs(budgets []models.Budget) []uuid.UUID {
	ids := make([]uuid.UUID, len(budgets))
	for i, budget := range budgets {
		ids[i] = budget.ID
	}

	return ids
}
