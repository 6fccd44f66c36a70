package series

import (
	"fmt"

	"github.com/okane-app/backend/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// SmartAmount suggests an amount for the next budget of a series based
// on actual spending. With at least six previous budgets it returns the
// average spending of the last six, in the series currency. With fewer
// budgets, or when none of them saw any spending, it returns the
// configured series amount.
//
// When enabled is false the configured amount is returned without any
// queries. Materialization never uses this, the suggestion is for
// interactive editing only.
func (s *Service) SmartAmount(sr models.BudgetSeries, enabled bool) (decimal.Decimal, error) {
	if !enabled {
		return sr.Amount, nil
	}

	var currency models.Currency
	err := s.db.First(&currency, sr.CurrencyID).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load series currency: %w", err)
	}

	var budgets []models.Budget
	err = s.db.
		Where("series_id = ?", sr.ID).
		Order("budget_date DESC").
		Limit(6).
		Find(&budgets).Error
	if err != nil {
		return decimal.Zero, err
	}

	if len(budgets) < 6 {
		return sr.Amount, nil
	}

	total := decimal.Zero
	withSpending := 0

	for _, budget := range budgets {
		var transactions []models.Transaction
		err = s.db.Where("budget_id = ?", budget.ID).Find(&transactions).Error
		if err != nil {
			return decimal.Zero, err
		}

		spending := decimal.Zero
		for _, t := range transactions {
			if len(t.AmountMap) > 0 {
				spending = spending.Add(t.AmountMap.Get(currency.Code))
			} else if t.CurrencyID == sr.CurrencyID {
				// No converted amounts recorded, only same-currency
				// transactions can be counted.
				spending = spending.Add(t.Amount)
			}
		}

		if spending.IsPositive() {
			total = total.Add(spending)
			withSpending++
		}
	}

	if withSpending == 0 {
		return sr.Amount, nil
	}

	average := total.Div(decimal.NewFromInt(int64(withSpending)))

	log.Debug().
		Str("series", sr.ID.String()).
		Str("average", average.String()).
		Int("budgetsWithSpending", withSpending).
		Str("currency", currency.Code).
		Msg("calculated smart amount")

	return average, nil
}
