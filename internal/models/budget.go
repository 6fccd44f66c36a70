package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/okane-app/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AmountMap holds an amount converted into every workspace currency,
// keyed by currency code. It is maintained by the multicurrency
// converter and may be empty when conversion failed, consumers treat
// a missing currency as zero.
type AmountMap map[string]decimal.Decimal

// Get returns the amount for a currency code, defaulting to zero.
func (m AmountMap) Get(code string) decimal.Decimal {
	if m == nil {
		return decimal.Zero
	}

	return m[code]
}

// Budget is one concrete budget instance. It is either created manually
// by a user or materialized from a BudgetSeries.
//
// A budget without a date is pending: it has not been scheduled yet and
// never takes part in series logic.
type Budget struct {
	DefaultModel
	User        User      `json:"-"`
	UserID      uuid.UUID `gorm:"uniqueIndex:budget_user_title_date"`
	Workspace   Workspace `json:"-"`
	WorkspaceID uuid.UUID
	Category    Category `json:"-"`
	CategoryID  uuid.UUID
	Currency    Currency `json:"-"`
	CurrencyID  uuid.UUID
	Title       string          `gorm:"uniqueIndex:budget_user_title_date"`
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Date        *types.Date     `gorm:"column:budget_date;uniqueIndex:budget_user_title_date"`
	Note        string
	Completed   bool
	Series      *BudgetSeries `json:"-"`
	SeriesID    *uuid.UUID
	AmountMap   AmountMap `gorm:"serializer:json"`
}

func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Title = strings.TrimSpace(b.Title)
	b.Note = strings.TrimSpace(b.Note)

	if b.Amount.IsNegative() {
		return ErrBudgetAmountNotPositive
	}

	return nil
}

// Transactions returns all transactions recorded against the budget.
func (b Budget) Transactions(db *gorm.DB) ([]Transaction, error) {
	var transactions []Transaction
	err := db.Where("budget_id = ?", b.ID).Find(&transactions).Error
	return transactions, err
}

// Transaction is money actually spent. A transaction optionally
// references the budget it counts against. Its existence is the sole
// signal protecting a budget from destructive series operations.
type Transaction struct {
	DefaultModel
	User        User `json:"-"`
	UserID      uuid.UUID
	Workspace   Workspace `json:"-"`
	WorkspaceID uuid.UUID
	Category    Category `json:"-"`
	CategoryID  uuid.UUID
	Currency    Currency `json:"-"`
	CurrencyID  uuid.UUID
	Budget      *Budget `json:"-"`
	BudgetID    *uuid.UUID
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Date        types.Date      `gorm:"column:transaction_date"`
	Note        string
	AmountMap   AmountMap `gorm:"serializer:json"`
}

func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Note = strings.TrimSpace(t.Note)
	return nil
}
