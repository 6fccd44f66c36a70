package report

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/okane-app/backend/internal/models"
	"github.com/okane-app/backend/internal/types"
	"github.com/shopspring/decimal"
)

// MonthUsage is the spending of one calendar month in one currency.
type MonthUsage struct {
	Month  types.Date      `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

// History returns per-month spending for a top-level category over the
// six months before the given month, in the given currency. Months
// without spending appear with a zero amount so charts always get six
// points.
func (s *Service) History(workspaceID, categoryID uuid.UUID, month types.Date, currencyCode string, userID *uuid.UUID) ([]MonthUsage, error) {
	index, err := loadCategoryIndex(s.db, workspaceID)
	if err != nil {
		return nil, err
	}

	categoryIDs := index.children(categoryID)

	firstOfMonth := month.StartOfMonth()
	rangeStart := firstOfMonth.AddMonths(-6)

	query := s.db.
		Where("workspace_id = ?", workspaceID).
		Where("category_id IN ?", categoryIDs).
		Where("date(transaction_date) >= date(?) AND date(transaction_date) < date(?)", rangeStart, firstOfMonth)

	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}

	var transactions []models.Transaction
	err = query.Find(&transactions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for history: %w", err)
	}

	byMonth := map[string]decimal.Decimal{}
	for _, transaction := range transactions {
		key := transaction.Date.YearMonth()
		byMonth[key] = byMonth[key].Add(transaction.AmountMap.Get(currencyCode))
	}

	usage := make([]MonthUsage, 0, 6)
	for current := rangeStart; current.Before(firstOfMonth); current = current.AddMonths(1) {
		usage = append(usage, MonthUsage{
			Month:  current,
			Amount: byMonth[current.YearMonth()],
		})
	}

	return usage, nil
}
