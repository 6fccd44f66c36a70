package report

import (
	"sort"

	"github.com/google/uuid"
	"github.com/okane-app/backend/internal/types"
)

// Weekly builds a flat list of budget items for a week range, without
// the category and group nesting of the monthly report. Series are
// materialized up to the end of the week first.
func (s *Service) Weekly(workspaceID uuid.UUID, from, to types.Date, userID *uuid.UUID) ([]*Item, error) {
	err := s.series.Materialize(workspaceID, to.EndOfWeek())
	if err != nil {
		return nil, err
	}

	codes, err := currencyCodes(s.db, workspaceID)
	if err != nil {
		return nil, err
	}

	budgets, err := s.budgetsInRange(workspaceID, from, to, userID)
	if err != nil {
		return nil, err
	}

	items := make([]*Item, 0, len(budgets))
	for _, budget := range budgets {
		item := newItem(budget, codes)

		transactions, err := budget.Transactions(s.db)
		if err != nil {
			return nil, err
		}

		for _, transaction := range transactions {
			item.Spent = item.Spent.Add(transaction.Amount)
			addAmounts(item.SpentIn, transaction.AmountMap, codes)
			item.Transactions = append(item.Transactions, newTransactionModel(transaction))
		}

		items = append(items, item)
	}

	sort.Slice(items, func(i, j int) bool {
		a, b := items[i].Date, items[j].Date
		if a == nil || b == nil {
			return b == nil && a != nil
		}

		return a.Before(*b)
	})

	return items, nil
}
