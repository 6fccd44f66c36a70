package models_test

import (
	"github.com/google/uuid"
	"github.com/okane-app/backend/internal/models"
	"github.com/okane-app/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) defaultSeries() models.BudgetSeries {
	workspace := suite.createTestWorkspace("Family")
	user := suite.createTestUser(workspace, "Alex")
	category := suite.createTestCategory(models.Category{Name: "Housing", WorkspaceID: workspace.ID})
	currency := suite.createTestCurrency(models.Currency{Code: "EUR", IsBase: true, WorkspaceID: workspace.ID})

	return models.BudgetSeries{
		UserID:      user.ID,
		WorkspaceID: workspace.ID,
		CategoryID:  category.ID,
		CurrencyID:  currency.ID,
		Title:       "Rent",
		Amount:      decimal.NewFromInt(1200),
		StartDate:   types.NewDate(2024, 1, 1),
		Frequency:   models.FrequencyMonthly,
		Interval:    1,
	}
}

func (suite *TestSuiteStandard) TestSeriesCreate() {
	series := suite.defaultSeries()
	suite.Assert().Nil(models.DB.Create(&series).Error)
}

func (suite *TestSuiteStandard) TestSeriesInvalidFrequency() {
	series := suite.defaultSeries()
	series.Frequency = "DAILY"

	err := models.DB.Create(&series).Error
	suite.Assert().ErrorIs(err, models.ErrSeriesFrequencyInvalid)
}

func (suite *TestSuiteStandard) TestSeriesInvalidInterval() {
	series := suite.defaultSeries()
	series.Interval = 0

	err := models.DB.Create(&series).Error
	suite.Assert().ErrorIs(err, models.ErrSeriesIntervalInvalid)
}

func (suite *TestSuiteStandard) TestSeriesUntilBeforeStart() {
	series := suite.defaultSeries()
	until := series.StartDate.AddDays(-1)
	series.Until = &until

	err := models.DB.Create(&series).Error
	suite.Assert().ErrorIs(err, models.ErrSeriesUntilBeforeStart)
}

func (suite *TestSuiteStandard) TestSeriesSkippedDates() {
	series := suite.defaultSeries()
	suite.Require().Nil(models.DB.Create(&series).Error)

	skipped := models.BudgetSeriesException{SeriesID: series.ID, Date: types.NewDate(2024, 2, 1), Skipped: true}
	suite.Require().Nil(models.DB.Create(&skipped).Error)

	// Non-skip exceptions must not appear in the skip set.
	detached := models.BudgetSeriesException{SeriesID: series.ID, Date: types.NewDate(2024, 3, 1), Skipped: false}
	suite.Require().Nil(models.DB.Create(&detached).Error)

	dates, err := series.SkippedDates(models.DB)
	suite.Require().Nil(err)
	suite.Assert().Len(dates, 1)
	suite.Assert().True(dates[types.NewDate(2024, 2, 1)])
}

func (suite *TestSuiteStandard) TestSeriesExceptionDuplicate() {
	series := suite.defaultSeries()
	suite.Require().Nil(models.DB.Create(&series).Error)

	exception := models.BudgetSeriesException{SeriesID: series.ID, Date: types.NewDate(2024, 2, 1), Skipped: true}
	suite.Require().Nil(models.DB.Create(&exception).Error)

	duplicate := models.BudgetSeriesException{SeriesID: series.ID, Date: types.NewDate(2024, 2, 1), Skipped: true}
	err := models.DB.Create(&duplicate).Error
	suite.Assert().ErrorIs(err, models.ErrExceptionNotUnique)
}

func (suite *TestSuiteStandard) TestSeriesBudgetsOrdered() {
	series := suite.defaultSeries()
	suite.Require().Nil(models.DB.Create(&series).Error)

	for _, day := range []int{15, 1, 8} {
		date := types.NewDate(2024, 1, day)
		budget := models.Budget{
			UserID:      series.UserID,
			WorkspaceID: series.WorkspaceID,
			CategoryID:  series.CategoryID,
			CurrencyID:  series.CurrencyID,
			Title:       series.Title,
			Amount:      series.Amount,
			Date:        &date,
			SeriesID:    &series.ID,
		}
		suite.Require().Nil(models.DB.Create(&budget).Error)
	}

	budgets, err := series.Budgets(models.DB)
	suite.Require().Nil(err)
	suite.Require().Len(budgets, 3)
	suite.Assert().Equal(types.NewDate(2024, 1, 1), *budgets[0].Date)
	suite.Assert().Equal(types.NewDate(2024, 1, 15), *budgets[2].Date)
}

func (suite *TestSuiteStandard) TestSeriesNotFound() {
	var series models.BudgetSeries
	err := models.DB.First(&series, uuid.New()).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}
