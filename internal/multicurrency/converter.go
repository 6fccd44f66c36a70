// Package multicurrency maintains converted-amount maps on budgets so
// that reports can aggregate across currencies without per-row rate
// lookups.
package multicurrency

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/okane-app/backend/internal/models"
	"github.com/okane-app/backend/internal/types"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RateConverter converts budget amounts into every workspace currency
// using the rate table. It satisfies the converter interface consumed
// by the series service.
type RateConverter struct{}

// NewRateConverter returns a converter backed by the Rate table.
func NewRateConverter() *RateConverter {
	return &RateConverter{}
}

// ConvertBudgets recomputes the amount map of every listed budget. A
// budget with no date, or a currency without a usable rate, is skipped
// with a warning so one gap never blocks the batch.
func (c *RateConverter) ConvertBudgets(db *gorm.DB, budgetIDs []uuid.UUID, workspaceID uuid.UUID) error {
	if len(budgetIDs) == 0 {
		return nil
	}

	var currencies []models.Currency
	err := db.Where("workspace_id = ?", workspaceID).Find(&currencies).Error
	if err != nil {
		return fmt.Errorf("failed to load workspace currencies: %w", err)
	}

	var budgets []models.Budget
	err = db.Where("id IN ?", budgetIDs).Find(&budgets).Error
	if err != nil {
		return fmt.Errorf("failed to load budgets for conversion: %w", err)
	}

	for _, budget := range budgets {
		if budget.Date == nil {
			continue
		}

		amountMap, err := c.amountMap(db, budget.Amount, budget.CurrencyID, *budget.Date, currencies)
		if err != nil {
			log.Warn().
				Err(err).
				Str("budget", budget.ID.String()).
				Msg("could not convert budget amount")
			continue
		}

		// A typed update keeps the gorm JSON serializer in the loop, a
		// plain column update would hand the raw map to the sql driver.
		err = db.Model(&budget).Select("amount_map").Updates(models.Budget{AmountMap: amountMap}).Error
		if err != nil {
			return err
		}
	}

	return nil
}

// ConvertTransactions recomputes the amount map of every listed
// transaction, with the same per-item failure tolerance as budgets.
func (c *RateConverter) ConvertTransactions(db *gorm.DB, transactionIDs []uuid.UUID, workspaceID uuid.UUID) error {
	if len(transactionIDs) == 0 {
		return nil
	}

	var currencies []models.Currency
	err := db.Where("workspace_id = ?", workspaceID).Find(&currencies).Error
	if err != nil {
		return fmt.Errorf("failed to load workspace currencies: %w", err)
	}

	var transactions []models.Transaction
	err = db.Where("id IN ?", transactionIDs).Find(&transactions).Error
	if err != nil {
		return fmt.Errorf("failed to load transactions for conversion: %w", err)
	}

	for _, transaction := range transactions {
		amountMap, err := c.amountMap(db, transaction.Amount, transaction.CurrencyID, transaction.Date, currencies)
		if err != nil {
			log.Warn().
				Err(err).
				Str("transaction", transaction.ID.String()).
				Msg("could not convert transaction amount")
			continue
		}

		err = db.Model(&transaction).Select("amount_map").Updates(models.Transaction{AmountMap: amountMap}).Error
		if err != nil {
			return err
		}
	}

	return nil
}

// amountMap builds the converted amounts for all workspace currencies.
// Rates are read as base units per currency unit, so converting from
// currency a to currency b is amount * rate(a) / rate(b), with the
// base currency carrying an implicit rate of one.
func (c *RateConverter) amountMap(db *gorm.DB, amount decimal.Decimal, currencyID uuid.UUID, date types.Date, currencies []models.Currency) (models.AmountMap, error) {
	rates := make(map[uuid.UUID]decimal.Decimal, len(currencies))
	for _, cur := range currencies {
		if cur.IsBase {
			rates[cur.ID] = decimal.NewFromInt(1)
			continue
		}

		rate, err := rateAt(db, cur.ID, date)
		if err != nil {
			// Currencies without a rate are left out of the map,
			// consumers treat a missing code as zero.
			log.Debug().
				Str("currency", cur.Code).
				Stringer("date", date).
				Msg("no rate available")
			continue
		}

		rates[cur.ID] = rate
	}

	sourceRate, ok := rates[currencyID]
	if !ok {
		return nil, fmt.Errorf("no rate for source currency on %s", date)
	}

	inBase := amount.Mul(sourceRate)

	amountMap := make(models.AmountMap, len(currencies))
	for _, cur := range currencies {
		rate, ok := rates[cur.ID]
		if !ok || rate.IsZero() {
			continue
		}

		amountMap[cur.Code] = inBase.DivRound(rate, 8)
	}

	return amountMap, nil
}

// rateAt returns the rate of a currency on the given date, falling
// back to the most recent earlier rate.
func rateAt(db *gorm.DB, currencyID uuid.UUID, date types.Date) (decimal.Decimal, error) {
	var rate models.Rate
	err := db.
		Where("currency_id = ? AND date(rate_date) <= date(?)", currencyID, date).
		Order("rate_date DESC").
		First(&rate).Error
	if err != nil {
		return decimal.Zero, err
	}

	return rate.Rate, nil
}
