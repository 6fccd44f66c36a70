package series

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/okane-app/backend/internal/models"
	"github.com/okane-app/backend/internal/types"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm/clause"
)

// budgetKey is the idempotence key for materialized budgets. It matches
// the unique constraint on the budgets table.
type budgetKey struct {
	Title  string
	Date   string
	UserID uuid.UUID
}

// Materialize synchronizes all active series of a workspace with real
// budget rows up to the horizon date.
//
// The call is idempotent: budgets that already exist are left alone,
// existing budgets without a series that match a series occurrence are
// linked to it, and concurrent materialization runs are tolerated by
// inserting with conflict-skip semantics and re-querying to find out
// which rows actually landed.
//
// Materialization runs synchronously inside read paths, so it uses one
// series query, one global budget lookup, one bulk insert, one
// verification query and one linkage update per series.
func (s *Service) Materialize(workspaceID uuid.UUID, horizon types.Date) error {
	log.Debug().
		Str("workspace", workspaceID.String()).
		Stringer("horizon", horizon).
		Msg("materializing budget series")

	// Stopped series are loaded too: their occurrences up to the until
	// date may not have been materialized yet. Occurrences caps at the
	// earlier of until and horizon.
	var seriesList []models.BudgetSeries
	err := s.db.
		Where("workspace_id = ?", workspaceID).
		Find(&seriesList).Error
	if err != nil {
		return fmt.Errorf("failed to load series: %w", err)
	}

	if len(seriesList) == 0 {
		return nil
	}

	// Compute the valid occurrence dates per series and collect the
	// lookup keys for one global fetch of existing budgets.
	seriesDates := make(map[uuid.UUID][]types.Date, len(seriesList))
	var titles []string
	var dates []string
	var userIDs []uuid.UUID

	for _, sr := range seriesList {
		skipped, err := sr.SkippedDates(s.db)
		if err != nil {
			return fmt.Errorf("failed to load exceptions: %w", err)
		}

		occurrences, err := Occurrences(sr, len(skipped), horizon)
		if err != nil {
			return err
		}

		valid := make([]types.Date, 0, len(occurrences))
		for _, date := range occurrences {
			if skipped[date] {
				continue
			}

			valid = append(valid, date)
			titles = append(titles, sr.Title)
			dates = append(dates, date.String())
			userIDs = append(userIDs, sr.UserID)
		}

		seriesDates[sr.ID] = valid
	}

	existing := make(map[budgetKey]models.Budget)
	if len(titles) > 0 {
		var budgets []models.Budget
		err = s.db.
			Where("title IN ?", titles).
			Where("date(budget_date) IN ?", dates).
			Where("user_id IN ?", userIDs).
			Find(&budgets).Error
		if err != nil {
			return fmt.Errorf("failed to load existing budgets: %w", err)
		}

		for _, budget := range budgets {
			if budget.Date == nil {
				continue
			}

			existing[budgetKey{budget.Title, budget.Date.String(), budget.UserID}] = budget
		}
	}

	// Stage creations and linkage updates
	var toCreate []models.Budget
	toLink := make(map[uuid.UUID][]uuid.UUID)

	for _, sr := range seriesList {
		for _, date := range seriesDates[sr.ID] {
			date := date
			key := budgetKey{sr.Title, date.String(), sr.UserID}

			budget, ok := existing[key]
			if !ok {
				// The series amount is used directly: the smart amount
				// computation needs per-budget transaction queries and
				// is too expensive for bulk runs, see SmartAmount.
				seriesID := sr.ID
				toCreate = append(toCreate, models.Budget{
					DefaultModel: models.DefaultModel{ID: uuid.New()},
					Title:        sr.Title,
					Date:         &date,
					UserID:       sr.UserID,
					WorkspaceID:  sr.WorkspaceID,
					Amount:       sr.Amount,
					CategoryID:   sr.CategoryID,
					CurrencyID:   sr.CurrencyID,
					SeriesID:     &seriesID,
				})
				continue
			}

			if budget.SeriesID == nil {
				// The user pre-created a budget that matches the
				// recurring pattern, adopt it into the series.
				toLink[sr.ID] = append(toLink[sr.ID], budget.ID)
			}
		}
	}

	// Bulk insert, skipping rows that a concurrent run created first.
	// The insert result cannot be trusted with conflict-skipping, so
	// the staged IDs are re-queried to find the rows that landed.
	var created []uuid.UUID
	if len(toCreate) > 0 {
		pending := make([]uuid.UUID, len(toCreate))
		for i, budget := range toCreate {
			pending[i] = budget.ID
		}

		err = s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&toCreate).Error
		if err != nil {
			return fmt.Errorf("failed to create budgets: %w", err)
		}

		err = s.db.Model(&models.Budget{}).Where("id IN ?", pending).Pluck("id", &created).Error
		if err != nil {
			return fmt.Errorf("failed to verify created budgets: %w", err)
		}

		if len(created) < len(toCreate) {
			log.Debug().
				Int("conflicts", len(toCreate)-len(created)).
				Msg("skipped budgets created by a concurrent materialization")
		}
	}

	for seriesID, budgetIDs := range toLink {
		err = s.db.Model(&models.Budget{}).
			Where("id IN ?", budgetIDs).
			Update("series_id", seriesID).Error
		if err != nil {
			return fmt.Errorf("failed to link budgets to series: %w", err)
		}
	}

	// Conversion failures are non-fatal: the budget row is the source
	// of truth, reporting treats a missing amount map as zero.
	if len(created) > 0 {
		err = s.converter.ConvertBudgets(s.db, created, workspaceID)
		if err != nil {
			log.Warn().Err(err).Msg("could not convert amounts for materialized budgets")
		}
	}

	log.Debug().
		Int("series", len(seriesList)).
		Int("created", len(created)).
		Int("linked", len(toLink)).
		Msg("materialization complete")

	return nil
}
