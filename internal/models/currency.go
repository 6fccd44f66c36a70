package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/okane-app/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"gorm.io/gorm"
)

// Currency is a currency available in a workspace. Exactly one currency
// per workspace should be the base currency, all converted-amount maps
// contain one entry per workspace currency.
type Currency struct {
	DefaultModel
	Code        string `gorm:"uniqueIndex:currency_workspace_code"`
	Sign        string
	IsBase      bool
	Workspace   Workspace `json:"-"`
	WorkspaceID uuid.UUID `gorm:"uniqueIndex:currency_workspace_code"`
}

// BeforeSave normalizes and validates the currency code.
func (c *Currency) BeforeSave(_ *gorm.DB) error {
	c.Code = strings.ToUpper(strings.TrimSpace(c.Code))

	_, err := currency.ParseISO(c.Code)
	if err != nil {
		return ErrCurrencyCodeInvalid
	}

	return nil
}

// Rate is the exchange rate of a currency against the workspace base
// currency on a specific date, expressed as base units per currency unit.
type Rate struct {
	DefaultModel
	Currency   Currency        `json:"-"`
	CurrencyID uuid.UUID       `gorm:"uniqueIndex:rate_currency_date"`
	Rate       decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	RateDate   types.Date      `gorm:"uniqueIndex:rate_currency_date"`
}
