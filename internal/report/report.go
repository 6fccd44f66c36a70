// Package report aggregates materialized budgets and their transactions
// into the nested structures the frontend renders: category, budget
// group, budget item. All monetary totals are per-currency maps built
// from the precomputed converted amounts, the aggregator never converts
// anything itself.
package report

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/okane-app/backend/internal/models"
	"github.com/okane-app/backend/internal/series"
	"github.com/okane-app/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Service builds reports. It is read-only except for triggering
// materialization before each report, which keeps projections
// self-healing without a scheduler.
type Service struct {
	db     *gorm.DB
	series *series.Service
}

func NewService(db *gorm.DB, series *series.Service) *Service {
	return &Service{db: db, series: series}
}

// Category is the top level of the monthly report.
type Category struct {
	ID        uuid.UUID        `json:"id"`
	Name      string           `json:"name"`
	Planned   decimal.Decimal  `json:"planned"`
	Spent     decimal.Decimal  `json:"spent"`
	PlannedIn models.AmountMap `json:"plannedIn"`
	SpentIn   models.AmountMap `json:"spentIn"`
	Groups    []*Group         `json:"budgets"`

	groups map[groupKey]*Group
}

// Group collects budget instances sharing title, category, and month.
// A weekly series produces several items per group.
type Group struct {
	Title          string           `json:"title"`
	CategoryID     uuid.UUID        `json:"categoryId"`
	Month          string           `json:"month"`
	Planned        decimal.Decimal  `json:"planned"`
	Spent          decimal.Decimal  `json:"spent"`
	PlannedIn      models.AmountMap `json:"plannedIn"`
	SpentIn        models.AmountMap `json:"spentIn"`
	SpentOverallIn models.AmountMap `json:"spentOverallIn"`
	Items          []*Item          `json:"items"`

	items map[uuid.UUID]*Item
}

// Item is one concrete budget with its transactions.
type Item struct {
	ID           uuid.UUID          `json:"id"`
	Title        string             `json:"title"`
	Date         *types.Date        `json:"date"`
	UserID       uuid.UUID          `json:"userId"`
	CurrencyID   uuid.UUID          `json:"currencyId"`
	SeriesID     *uuid.UUID         `json:"seriesId"`
	Completed    bool               `json:"completed"`
	Amount       decimal.Decimal    `json:"amount"`
	AmountIn     models.AmountMap   `json:"amountIn"`
	Spent        decimal.Decimal    `json:"spent"`
	SpentIn      models.AmountMap   `json:"spentIn"`
	Transactions []TransactionModel `json:"transactions"`
}

// TransactionModel is the transaction representation embedded in
// report items.
type TransactionModel struct {
	ID         uuid.UUID        `json:"id"`
	Amount     decimal.Decimal  `json:"amount"`
	AmountIn   models.AmountMap `json:"amountIn"`
	CurrencyID uuid.UUID        `json:"currencyId"`
	Date       types.Date       `json:"date"`
	Note       string           `json:"note"`
}

// groupKey identifies a budget group: same title, same category, same
// calendar month.
type groupKey struct {
	Title      string
	CategoryID uuid.UUID
	Month      string
}

func keyFor(budget models.Budget, categoryID uuid.UUID) groupKey {
	month := ""
	if budget.Date != nil {
		month = budget.Date.YearMonth()
	}

	return groupKey{Title: budget.Title, CategoryID: categoryID, Month: month}
}

// categoryIndex resolves any category of a workspace to its top-level
// parent without further queries.
type categoryIndex struct {
	byID map[uuid.UUID]models.Category
}

func loadCategoryIndex(db *gorm.DB, workspaceID uuid.UUID) (categoryIndex, error) {
	var categories []models.Category
	err := db.Where("workspace_id = ?", workspaceID).Find(&categories).Error
	if err != nil {
		return categoryIndex{}, fmt.Errorf("failed to load categories: %w", err)
	}

	index := categoryIndex{byID: make(map[uuid.UUID]models.Category, len(categories))}
	for _, category := range categories {
		index.byID[category.ID] = category
	}

	return index, nil
}

func (i categoryIndex) topLevel(id uuid.UUID) (models.Category, error) {
	category, ok := i.byID[id]
	if !ok {
		return models.Category{}, fmt.Errorf("unknown category %s", id)
	}

	if category.ParentID == nil {
		return category, nil
	}

	parent, ok := i.byID[*category.ParentID]
	if !ok {
		return models.Category{}, fmt.Errorf("unknown parent category %s", *category.ParentID)
	}

	return parent, nil
}

// children returns the ids of a category and all its direct children.
func (i categoryIndex) children(id uuid.UUID) []uuid.UUID {
	ids := []uuid.UUID{id}
	for _, category := range i.byID {
		if category.ParentID != nil && *category.ParentID == id {
			ids = append(ids, category.ID)
		}
	}

	return ids
}

// currencyCodes returns the codes of all workspace currencies.
func currencyCodes(db *gorm.DB, workspaceID uuid.UUID) ([]string, error) {
	var codes []string
	err := db.Model(&models.Currency{}).
		Where("workspace_id = ?", workspaceID).
		Order("code").
		Pluck("code", &codes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load workspace currencies: %w", err)
	}

	return codes, nil
}

// addAmounts accumulates src into dst for the given currency codes.
// Codes missing from src count as zero, a partial conversion never
// breaks aggregation.
func addAmounts(dst models.AmountMap, src models.AmountMap, codes []string) {
	for _, code := range codes {
		dst[code] = dst[code].Add(src.Get(code))
	}
}

func emptyAmounts(codes []string) models.AmountMap {
	amounts := make(models.AmountMap, len(codes))
	for _, code := range codes {
		amounts[code] = decimal.Zero
	}

	return amounts
}
