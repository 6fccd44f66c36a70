package series_test

import (
	"github.com/okane-app/backend/internal/models"
	"github.com/okane-app/backend/internal/series"
	"github.com/okane-app/backend/internal/types"
	"github.com/shopspring/decimal"
)

func frequencyPtr(f models.Frequency) *models.Frequency {
	return &f
}

func amountPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func (suite *TestSuiteStandard) TestUpdateCreatesSeries() {
	budget := suite.createTestBudget(models.Budget{
		Title:  "Rent",
		Amount: decimal.NewFromInt(1200),
		Date:   datePtr(types.NewDate(2024, 1, 1)),
	})

	result, err := suite.service.Update(budget, series.Change{
		Recurrence: frequencyPtr(models.FrequencyMonthly),
	})
	suite.Require().Nil(err)
	suite.Require().NotNil(result.Series)

	suite.Assert().Equal(models.FrequencyMonthly, result.Series.Frequency)
	suite.Assert().Equal(types.NewDate(2024, 1, 1), result.Series.StartDate)
	suite.Assert().EqualValues(1, result.Series.Interval)

	var dbBudget models.Budget
	suite.Require().Nil(models.DB.First(&dbBudget, budget.ID).Error)
	suite.Require().NotNil(dbBudget.SeriesID)
	suite.Assert().Equal(result.Series.ID, *dbBudget.SeriesID)
}

func (suite *TestSuiteStandard) TestUpdateDatelessBudgetIsNoOp() {
	budget := suite.createTestBudget(models.Budget{
		Title:  "Someday",
		Amount: decimal.NewFromInt(100),
	})

	// A budget without a date never takes part in series logic, even
	// when the edit requests a recurrence
	result, err := suite.service.Update(budget, series.Change{
		Recurrence: frequencyPtr(models.FrequencyWeekly),
	})
	suite.Require().Nil(err)
	suite.Assert().Nil(result.Series)

	var count int64
	suite.Require().Nil(models.DB.Model(&models.BudgetSeries{}).Count(&count).Error)
	suite.Assert().EqualValues(0, count)
}

func (suite *TestSuiteStandard) TestUpdateConvertToStandalone() {
	sr := suite.materializedSeries(types.NewDate(2024, 1, 1), types.NewDate(2024, 4, 30))
	budgets := suite.seriesBudgets(sr)
	suite.Require().Len(budgets, 4)

	// Converting the March instance detaches it and ends the series at
	// the February occurrence
	empty := models.Frequency("")
	result, err := suite.service.Update(budgets[2], series.Change{Recurrence: &empty})
	suite.Require().Nil(err)
	suite.Assert().Nil(result.Series)

	var edited models.Budget
	suite.Require().Nil(models.DB.First(&edited, budgets[2].ID).Error)
	suite.Assert().Nil(edited.SeriesID)

	var dbSeries models.BudgetSeries
	suite.Require().Nil(models.DB.First(&dbSeries, sr.ID).Error)
	suite.Require().NotNil(dbSeries.Until)
	suite.Assert().Equal(types.NewDate(2024, 2, 1), *dbSeries.Until)

	// The April budget is cleaned up, January and February remain
	suite.Assert().Len(suite.seriesBudgets(dbSeries), 2)
}

func (suite *TestSuiteStandard) TestUpdateAmountPropagates() {
	sr := suite.materializedSeries(types.NewDate(2024, 1, 1), types.NewDate(2024, 4, 30))
	budgets := suite.seriesBudgets(sr)

	// January has spending, so a series-wide change starting at February
	// must not rewrite it anyway; April has spending and keeps its value
	suite.createTestTransaction(budgets[3], decimal.NewFromInt(1100))

	result, err := suite.service.Update(budgets[1], series.Change{
		Amount: amountPtr(decimal.NewFromInt(1300)),
	})
	suite.Require().Nil(err)
	suite.Require().NotNil(result.Series)
	suite.Assert().Equal(sr.ID, result.Series.ID, "series must be updated in place, not split")
	suite.Assert().True(result.Series.Amount.Equal(decimal.NewFromInt(1300)))

	// March was rewritten, April was protected by its transaction
	suite.Assert().Len(result.UpdatedBudgets, 1)

	var march, april, january models.Budget
	suite.Require().Nil(models.DB.First(&march, budgets[2].ID).Error)
	suite.Require().Nil(models.DB.First(&april, budgets[3].ID).Error)
	suite.Require().Nil(models.DB.First(&january, budgets[0].ID).Error)

	suite.Assert().True(march.Amount.Equal(decimal.NewFromInt(1300)))
	suite.Assert().True(april.Amount.Equal(decimal.NewFromInt(1200)))
	suite.Assert().True(january.Amount.Equal(decimal.NewFromInt(1200)), "budgets before the edited one keep their value")

	// A protected budget stays in the series
	suite.Require().NotNil(april.SeriesID)
	suite.Assert().Equal(sr.ID, *april.SeriesID)
}

func (suite *TestSuiteStandard) TestUpdateDirectEditWinsDespiteTransactions() {
	sr := suite.materializedSeries(types.NewDate(2024, 1, 1), types.NewDate(2024, 2, 29))
	budgets := suite.seriesBudgets(sr)

	// The edited budget itself has spending; the direct edit still lands
	suite.createTestTransaction(budgets[0], decimal.NewFromInt(500))

	_, err := suite.service.Update(budgets[0], series.Change{
		Amount: amountPtr(decimal.NewFromInt(999)),
	})
	suite.Require().Nil(err)

	var edited models.Budget
	suite.Require().Nil(models.DB.First(&edited, budgets[0].ID).Error)
	suite.Assert().True(edited.Amount.Equal(decimal.NewFromInt(999)))
}

func (suite *TestSuiteStandard) TestUpdateFrequencyChangeSplitsSeries() {
	sr := suite.materializedSeries(types.NewDate(2024, 1, 1), types.NewDate(2024, 4, 30))
	budgets := suite.seriesBudgets(sr)

	result, err := suite.service.Update(budgets[2], series.Change{
		Recurrence: frequencyPtr(models.FrequencyWeekly),
	})
	suite.Require().Nil(err)
	suite.Require().NotNil(result.Series)

	// A new series starts at the edited budget's date
	suite.Assert().NotEqual(sr.ID, result.Series.ID)
	suite.Assert().Equal(models.FrequencyWeekly, result.Series.Frequency)
	suite.Assert().Equal(types.NewDate(2024, 3, 1), result.Series.StartDate)

	// The old series ends one period before the edited budget
	var old models.BudgetSeries
	suite.Require().Nil(models.DB.First(&old, sr.ID).Error)
	suite.Require().NotNil(old.Until)
	suite.Assert().Equal(types.NewDate(2024, 2, 1), *old.Until)

	// The edited budget moved to the new series
	var edited models.Budget
	suite.Require().Nil(models.DB.First(&edited, budgets[2].ID).Error)
	suite.Require().NotNil(edited.SeriesID)
	suite.Assert().Equal(result.Series.ID, *edited.SeriesID)
}

func (suite *TestSuiteStandard) TestUpdateSplitCarriesRemainingCount() {
	count := uint(6)
	sr := suite.createTestSeries(models.BudgetSeries{
		Title:     "Rent",
		Amount:    decimal.NewFromInt(1200),
		StartDate: types.NewDate(2024, 1, 1),
		Count:     &count,
	})
	suite.Require().Nil(suite.service.Materialize(suite.workspace.ID, types.NewDate(2024, 4, 30)))
	budgets := suite.seriesBudgets(sr)
	suite.Require().Len(budgets, 4)

	// Splitting at the third occurrence leaves two slots with the old
	// series, the replacement gets the remaining four
	result, err := suite.service.Update(budgets[2], series.Change{
		Recurrence: frequencyPtr(models.FrequencyWeekly),
	})
	suite.Require().Nil(err)
	suite.Require().NotNil(result.Series)
	suite.Require().NotNil(result.Series.Count)
	suite.Assert().EqualValues(4, *result.Series.Count)
}

func (suite *TestSuiteStandard) TestUpdateDateOffPatternSplitsSeries() {
	sr := suite.materializedSeries(types.NewDate(2024, 1, 1), types.NewDate(2024, 3, 31))
	budgets := suite.seriesBudgets(sr)

	result, err := suite.service.Update(budgets[1], series.Change{
		Date: datePtr(types.NewDate(2024, 2, 10)),
	})
	suite.Require().Nil(err)
	suite.Require().NotNil(result.Series)
	suite.Assert().NotEqual(sr.ID, result.Series.ID)
	suite.Assert().Equal(types.NewDate(2024, 2, 10), result.Series.StartDate)

	var edited models.Budget
	suite.Require().Nil(models.DB.First(&edited, budgets[1].ID).Error)
	suite.Assert().Equal(types.NewDate(2024, 2, 10), *edited.Date)
}

func (suite *TestSuiteStandard) TestUpdateDateOnPatternDoesNotSplit() {
	// Moving a budget to another occurrence date that still matches the
	// recurrence rule is an attribute change, not a split
	sr := suite.materializedSeries(types.NewDate(2024, 1, 1), types.NewDate(2024, 2, 29))
	budgets := suite.seriesBudgets(sr)
	suite.Require().Len(budgets, 2)

	result, err := suite.service.Update(budgets[1], series.Change{
		Date: datePtr(types.NewDate(2024, 3, 1)),
	})
	suite.Require().Nil(err)
	suite.Require().NotNil(result.Series)
	suite.Assert().Equal(sr.ID, result.Series.ID)

	var edited models.Budget
	suite.Require().Nil(models.DB.First(&edited, budgets[1].ID).Error)
	suite.Assert().Equal(types.NewDate(2024, 3, 1), *edited.Date)
}

func (suite *TestSuiteStandard) TestUpdateCountShrinkCleansUp() {
	sr := suite.materializedSeries(types.NewDate(2024, 1, 1), types.NewDate(2024, 4, 30))
	suite.Require().Len(suite.seriesBudgets(sr), 4)

	result, err := suite.service.Update(suite.seriesBudgets(sr)[0], series.Change{
		Count: countPtr(2),
	})
	suite.Require().Nil(err)
	suite.Require().NotNil(result.Series)
	suite.Assert().Equal(sr.ID, result.Series.ID, "count changes update the series in place")
	suite.Require().NotNil(result.Series.Count)
	suite.Assert().EqualValues(2, *result.Series.Count)

	// March and April are beyond the new count
	suite.Assert().Len(suite.seriesBudgets(sr), 2)
}

func (suite *TestSuiteStandard) TestUpdateCountZeroRemovesLimit() {
	sr := suite.createTestSeries(models.BudgetSeries{
		Title:     "Rent",
		Amount:    decimal.NewFromInt(1200),
		StartDate: types.NewDate(2024, 1, 1),
		Count:     countPtr(3),
	})
	suite.Require().Nil(suite.service.Materialize(suite.workspace.ID, types.NewDate(2024, 6, 30)))
	suite.Require().Len(suite.seriesBudgets(sr), 3)

	result, err := suite.service.Update(suite.seriesBudgets(sr)[0], series.Change{
		Count: countPtr(0),
	})
	suite.Require().Nil(err)
	suite.Assert().Nil(result.Series.Count)

	suite.Require().Nil(suite.service.Materialize(suite.workspace.ID, types.NewDate(2024, 6, 30)))
	suite.Assert().Len(suite.seriesBudgets(sr), 6)
}

func (suite *TestSuiteStandard) TestUpdateTitlePropagates() {
	sr := suite.materializedSeries(types.NewDate(2024, 1, 1), types.NewDate(2024, 3, 31))
	budgets := suite.seriesBudgets(sr)

	title := "Cold rent"
	result, err := suite.service.Update(budgets[0], series.Change{Title: &title})
	suite.Require().Nil(err)

	suite.Assert().Equal("Cold rent", result.Series.Title)
	suite.Assert().Len(result.UpdatedBudgets, 2)

	for _, budget := range suite.seriesBudgets(*result.Series) {
		suite.Assert().Equal("Cold rent", budget.Title)
	}
}

func (suite *TestSuiteStandard) TestUpdateNoSeriesNoChange() {
	budget := suite.createTestBudget(models.Budget{
		Title:  "One-off",
		Amount: decimal.NewFromInt(10),
		Date:   datePtr(types.NewDate(2024, 5, 1)),
	})

	result, err := suite.service.Update(budget, series.Change{})
	suite.Require().Nil(err)
	suite.Assert().Nil(result.Series)
	suite.Assert().Empty(result.UpdatedBudgets)
}
