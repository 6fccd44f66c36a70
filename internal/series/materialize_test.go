package series_test

import (
	"github.com/okane-app/backend/internal/models"
	"github.com/okane-app/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestMaterializeCreatesBudgets() {
	sr := suite.createTestSeries(models.BudgetSeries{
		Title:     "Rent",
		Amount:    decimal.NewFromInt(1200),
		StartDate: types.NewDate(2024, 1, 1),
	})

	err := suite.service.Materialize(suite.workspace.ID, types.NewDate(2024, 3, 31))
	suite.Require().Nil(err)

	budgets := suite.seriesBudgets(sr)
	suite.Require().Len(budgets, 3)
	suite.Assert().Equal(types.NewDate(2024, 1, 1), *budgets[0].Date)
	suite.Assert().Equal(types.NewDate(2024, 3, 1), *budgets[2].Date)
	suite.Assert().Equal("Rent", budgets[0].Title)
	suite.Assert().True(budgets[0].Amount.Equal(decimal.NewFromInt(1200)))
	suite.Assert().Equal(sr.ID, *budgets[0].SeriesID)
}

func (suite *TestSuiteStandard) TestMaterializeIsIdempotent() {
	sr := suite.createTestSeries(models.BudgetSeries{
		Title:     "Rent",
		Amount:    decimal.NewFromInt(1200),
		StartDate: types.NewDate(2024, 1, 1),
	})

	suite.Require().Nil(suite.service.Materialize(suite.workspace.ID, types.NewDate(2024, 3, 31)))
	first := suite.seriesBudgets(sr)

	suite.Require().Nil(suite.service.Materialize(suite.workspace.ID, types.NewDate(2024, 3, 31)))
	second := suite.seriesBudgets(sr)

	suite.Require().Len(second, len(first))
	for i := range first {
		suite.Assert().Equal(first[i].ID, second[i].ID)
	}
}

func (suite *TestSuiteStandard) TestMaterializeExtendsHorizon() {
	sr := suite.createTestSeries(models.BudgetSeries{
		Title:     "Rent",
		Amount:    decimal.NewFromInt(1200),
		StartDate: types.NewDate(2024, 1, 1),
	})

	suite.Require().Nil(suite.service.Materialize(suite.workspace.ID, types.NewDate(2024, 2, 29)))
	suite.Assert().Len(suite.seriesBudgets(sr), 2)

	suite.Require().Nil(suite.service.Materialize(suite.workspace.ID, types.NewDate(2024, 4, 30)))
	suite.Assert().Len(suite.seriesBudgets(sr), 4)
}

func (suite *TestSuiteStandard) TestMaterializeSkipsExceptions() {
	sr := suite.createTestSeries(models.BudgetSeries{
		Title:     "Gym",
		Amount:    decimal.NewFromInt(50),
		StartDate: types.NewDate(2024, 1, 1),
	})

	exception := models.BudgetSeriesException{SeriesID: sr.ID, Date: types.NewDate(2024, 2, 1), Skipped: true}
	suite.Require().Nil(models.DB.Create(&exception).Error)

	suite.Require().Nil(suite.service.Materialize(suite.workspace.ID, types.NewDate(2024, 3, 31)))

	budgets := suite.seriesBudgets(sr)
	suite.Require().Len(budgets, 2)
	suite.Assert().Equal(types.NewDate(2024, 1, 1), *budgets[0].Date)
	suite.Assert().Equal(types.NewDate(2024, 3, 1), *budgets[1].Date)
}

func (suite *TestSuiteStandard) TestMaterializeSkippedOccurrencesConsumeCount() {
	// With count 3 and one skip, the last produced occurrence moves one
	// period later, the skip still uses up a count slot.
	sr := suite.createTestSeries(models.BudgetSeries{
		Title:     "Savings",
		Amount:    decimal.NewFromInt(200),
		StartDate: types.NewDate(2024, 1, 1),
		Count:     countPtr(3),
	})

	exception := models.BudgetSeriesException{SeriesID: sr.ID, Date: types.NewDate(2024, 2, 1), Skipped: true}
	suite.Require().Nil(models.DB.Create(&exception).Error)

	suite.Require().Nil(suite.service.Materialize(suite.workspace.ID, types.NewDate(2024, 12, 31)))

	budgets := suite.seriesBudgets(sr)
	suite.Require().Len(budgets, 3)
	suite.Assert().Equal(types.NewDate(2024, 4, 1), *budgets[2].Date)
}

func (suite *TestSuiteStandard) TestMaterializeAdoptsMatchingBudget() {
	// A budget that the user created manually on an occurrence date with
	// the series title is linked instead of duplicated.
	manual := suite.createTestBudget(models.Budget{
		Title:  "Rent",
		Amount: decimal.NewFromInt(1100),
		Date:   datePtr(types.NewDate(2024, 2, 1)),
	})

	sr := suite.createTestSeries(models.BudgetSeries{
		Title:     "Rent",
		Amount:    decimal.NewFromInt(1200),
		StartDate: types.NewDate(2024, 1, 1),
	})

	suite.Require().Nil(suite.service.Materialize(suite.workspace.ID, types.NewDate(2024, 3, 31)))

	budgets := suite.seriesBudgets(sr)
	suite.Require().Len(budgets, 3)

	var adopted models.Budget
	suite.Require().Nil(models.DB.First(&adopted, manual.ID).Error)
	suite.Require().NotNil(adopted.SeriesID)
	suite.Assert().Equal(sr.ID, *adopted.SeriesID)
	// The adopted budget keeps its own amount
	suite.Assert().True(adopted.Amount.Equal(decimal.NewFromInt(1100)))
}

func (suite *TestSuiteStandard) TestMaterializeHonorsUntil() {
	until := types.NewDate(2024, 2, 15)
	sr := suite.createTestSeries(models.BudgetSeries{
		Title:     "Rent",
		Amount:    decimal.NewFromInt(1200),
		StartDate: types.NewDate(2024, 1, 1),
		Until:     &until,
	})

	suite.Require().Nil(suite.service.Materialize(suite.workspace.ID, types.NewDate(2024, 6, 30)))
	suite.Assert().Len(suite.seriesBudgets(sr), 2)
}

func (suite *TestSuiteStandard) TestMaterializeIgnoresOtherWorkspaces() {
	other := models.Workspace{Name: "Side project"}
	suite.Require().Nil(models.DB.Create(&other).Error)

	sr := suite.createTestSeries(models.BudgetSeries{
		Title:     "Rent",
		Amount:    decimal.NewFromInt(1200),
		StartDate: types.NewDate(2024, 1, 1),
	})

	suite.Require().Nil(suite.service.Materialize(other.ID, types.NewDate(2024, 3, 31)))
	suite.Assert().Empty(suite.seriesBudgets(sr))
}

func (suite *TestSuiteStandard) TestMaterializePopulatesAmountMap() {
	sr := suite.createTestSeries(models.BudgetSeries{
		Title:     "Rent",
		Amount:    decimal.NewFromInt(1200),
		StartDate: types.NewDate(2024, 1, 1),
	})

	suite.Require().Nil(suite.service.Materialize(suite.workspace.ID, types.NewDate(2024, 1, 31)))

	budgets := suite.seriesBudgets(sr)
	suite.Require().Len(budgets, 1)
	suite.Assert().True(budgets[0].AmountMap.Get("EUR").Equal(decimal.NewFromInt(1200)))
}
