package report

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/okane-app/backend/internal/models"
	"github.com/okane-app/backend/internal/types"
)

// Monthly builds the monthly report for a date range. It materializes
// the workspace's series up to the end of the week containing the range
// end first, then aggregates budgets and transactions into categories,
// budget groups, and items.
//
// A transaction whose category differs from its budget's category is
// counted twice on purpose: as spending under its own category, and as
// "spent overall" under the budget's category. The first answers where
// the money was categorized, the second which budget absorbed it.
func (s *Service) Monthly(workspaceID uuid.UUID, from, to types.Date, userID *uuid.UUID) ([]*Category, error) {
	err := s.series.Materialize(workspaceID, to.EndOfWeek())
	if err != nil {
		return nil, err
	}

	codes, err := currencyCodes(s.db, workspaceID)
	if err != nil {
		return nil, err
	}

	index, err := loadCategoryIndex(s.db, workspaceID)
	if err != nil {
		return nil, err
	}

	categories := initCategories(index, codes)

	budgets, err := s.budgetsInRange(workspaceID, from, to, userID)
	if err != nil {
		return nil, err
	}

	err = populatePlanned(categories, index, budgets, codes)
	if err != nil {
		return nil, err
	}

	transactions, err := s.transactionsInRange(workspaceID, from, to, userID)
	if err != nil {
		return nil, err
	}

	budgetsByID := make(map[uuid.UUID]models.Budget, len(budgets))
	for _, budget := range budgets {
		budgetsByID[budget.ID] = budget
	}

	err = s.populateSpent(categories, index, transactions, budgetsByID, codes)
	if err != nil {
		return nil, err
	}

	return finalize(categories), nil
}

func initCategories(index categoryIndex, codes []string) map[uuid.UUID]*Category {
	categories := map[uuid.UUID]*Category{}
	for _, category := range index.byID {
		if category.ParentID != nil {
			continue
		}

		categories[category.ID] = &Category{
			ID:        category.ID,
			Name:      category.Name,
			PlannedIn: emptyAmounts(codes),
			SpentIn:   emptyAmounts(codes),
			groups:    map[groupKey]*Group{},
		}
	}

	return categories
}

func (s *Service) budgetsInRange(workspaceID uuid.UUID, from, to types.Date, userID *uuid.UUID) ([]models.Budget, error) {
	query := s.db.
		Where("workspace_id = ?", workspaceID).
		Where("date(budget_date) >= date(?) AND date(budget_date) <= date(?)", from, to).
		Order("budget_date")

	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}

	var budgets []models.Budget
	err := query.Find(&budgets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets for report: %w", err)
	}

	return budgets, nil
}

func (s *Service) transactionsInRange(workspaceID uuid.UUID, from, to types.Date, userID *uuid.UUID) ([]models.Transaction, error) {
	query := s.db.
		Where("workspace_id = ?", workspaceID).
		Where("date(transaction_date) >= date(?) AND date(transaction_date) <= date(?)", from, to).
		Order("transaction_date")

	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}

	var transactions []models.Transaction
	err := query.Find(&transactions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for report: %w", err)
	}

	return transactions, nil
}

// populatePlanned creates the budget groups and items and accumulates
// planned totals on categories and groups.
func populatePlanned(categories map[uuid.UUID]*Category, index categoryIndex, budgets []models.Budget, codes []string) error {
	for _, budget := range budgets {
		top, err := index.topLevel(budget.CategoryID)
		if err != nil {
			return err
		}

		category, ok := categories[top.ID]
		if !ok {
			continue
		}

		group := findOrCreateGroup(category, budget, codes)
		group.items[budget.ID] = newItem(budget, codes)

		group.Planned = group.Planned.Add(budget.Amount)
		category.Planned = category.Planned.Add(budget.Amount)
		addAmounts(group.PlannedIn, budget.AmountMap, codes)
		addAmounts(category.PlannedIn, budget.AmountMap, codes)
	}

	return nil
}

// populateSpent adds transaction spending to the report, applying the
// dual attribution for transactions recategorized away from their
// budget.
func (s *Service) populateSpent(categories map[uuid.UUID]*Category, index categoryIndex, transactions []models.Transaction, budgets map[uuid.UUID]models.Budget, codes []string) error {
	for _, transaction := range transactions {
		if transaction.BudgetID == nil {
			continue
		}

		budget, ok := budgets[*transaction.BudgetID]
		if !ok {
			// The budget may sit outside the report range, e.g. a
			// pending budget with no date yet.
			err := s.db.First(&budget, *transaction.BudgetID).Error
			if err != nil {
				return fmt.Errorf("failed to load budget of transaction %s: %w", transaction.ID, err)
			}

			budgets[budget.ID] = budget
		}

		transactionTop, err := index.topLevel(transaction.CategoryID)
		if err != nil {
			return err
		}

		budgetTop, err := index.topLevel(budget.CategoryID)
		if err != nil {
			return err
		}

		category, ok := categories[transactionTop.ID]
		if !ok {
			continue
		}

		category.Spent = category.Spent.Add(transaction.Amount)
		addAmounts(category.SpentIn, transaction.AmountMap, codes)

		group := findOrCreateGroup(category, budget, codes)
		group.Spent = group.Spent.Add(transaction.Amount)
		addAmounts(group.SpentIn, transaction.AmountMap, codes)
		addAmounts(group.SpentOverallIn, transaction.AmountMap, codes)

		item, ok := group.items[budget.ID]
		if !ok {
			item = newItem(budget, codes)
			group.items[budget.ID] = item
		}

		item.Spent = item.Spent.Add(transaction.Amount)
		addAmounts(item.SpentIn, transaction.AmountMap, codes)
		item.Transactions = append(item.Transactions, newTransactionModel(transaction))

		// Dual attribution: the budget's own category keeps track of
		// the spending it absorbed even though the transaction was
		// categorized elsewhere.
		if transactionTop.ID != budgetTop.ID {
			budgetCategory, ok := categories[budgetTop.ID]
			if !ok {
				continue
			}

			overallGroup := findOrCreateGroup(budgetCategory, budget, codes)
			addAmounts(overallGroup.SpentOverallIn, transaction.AmountMap, codes)

			overallItem, ok := overallGroup.items[budget.ID]
			if !ok {
				overallItem = newItem(budget, codes)
				overallGroup.items[budget.ID] = overallItem
			}

			overallItem.Transactions = append(overallItem.Transactions, newTransactionModel(transaction))
		}
	}

	return nil
}

func findOrCreateGroup(category *Category, budget models.Budget, codes []string) *Group {
	key := keyFor(budget, budget.CategoryID)
	group, ok := category.groups[key]
	if !ok {
		group = &Group{
			Title:          budget.Title,
			CategoryID:     budget.CategoryID,
			Month:          key.Month,
			PlannedIn:      emptyAmounts(codes),
			SpentIn:        emptyAmounts(codes),
			SpentOverallIn: emptyAmounts(codes),
			items:          map[uuid.UUID]*Item{},
		}
		category.groups[key] = group
	}

	return group
}

func newItem(budget models.Budget, codes []string) *Item {
	amountIn := emptyAmounts(codes)
	addAmounts(amountIn, budget.AmountMap, codes)

	return &Item{
		ID:         budget.ID,
		Title:      budget.Title,
		Date:       budget.Date,
		UserID:     budget.UserID,
		CurrencyID: budget.CurrencyID,
		SeriesID:   budget.SeriesID,
		Completed:  budget.Completed,
		Amount:     budget.Amount,
		AmountIn:   amountIn,
		SpentIn:    emptyAmounts(codes),
	}
}

func newTransactionModel(transaction models.Transaction) TransactionModel {
	return TransactionModel{
		ID:         transaction.ID,
		Amount:     transaction.Amount,
		AmountIn:   transaction.AmountMap,
		CurrencyID: transaction.CurrencyID,
		Date:       transaction.Date,
		Note:       transaction.Note,
	}
}

// finalize turns the accumulator maps into stable, sorted slices.
func finalize(categories map[uuid.UUID]*Category) []*Category {
	out := make([]*Category, 0, len(categories))
	for _, category := range categories {
		category.Groups = make([]*Group, 0, len(category.groups))
		for _, group := range category.groups {
			group.Items = make([]*Item, 0, len(group.items))
			for _, item := range group.items {
				group.Items = append(group.Items, item)
			}

			sort.Slice(group.Items, func(i, j int) bool {
				a, b := group.Items[i].Date, group.Items[j].Date
				if a == nil || b == nil {
					return b == nil && a != nil
				}

				return a.Before(*b)
			})

			category.Groups = append(category.Groups, group)
		}

		sort.Slice(category.Groups, func(i, j int) bool {
			if category.Groups[i].Month != category.Groups[j].Month {
				return category.Groups[i].Month < category.Groups[j].Month
			}

			return category.Groups[i].Title < category.Groups[j].Title
		})

		out = append(out, category)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}
