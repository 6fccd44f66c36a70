package series_test

import (
	"github.com/okane-app/backend/internal/models"
	"github.com/okane-app/backend/internal/types"
	"github.com/shopspring/decimal"
)

// materializedSeries creates a monthly series and materializes it up to
// the given horizon.
func (suite *TestSuiteStandard) materializedSeries(start, horizon types.Date) models.BudgetSeries {
	sr := suite.createTestSeries(models.BudgetSeries{
		Title:     "Rent",
		Amount:    decimal.NewFromInt(1200),
		StartDate: start,
	})

	suite.Require().Nil(suite.service.Materialize(suite.workspace.ID, horizon))
	return sr
}

func (suite *TestSuiteStandard) TestStopDeletesFutureBudgets() {
	sr := suite.materializedSeries(types.NewDate(2024, 1, 1), types.NewDate(2024, 6, 30))
	suite.Require().Len(suite.seriesBudgets(sr), 6)

	result, err := suite.service.Stop(sr, types.NewDate(2024, 3, 15))
	suite.Require().Nil(err)

	suite.Assert().EqualValues(3, result.Deleted)
	suite.Assert().EqualValues(0, result.Unlinked)
	suite.Assert().False(result.SeriesDeleted)
	suite.Assert().Len(suite.seriesBudgets(sr), 3)

	var dbSeries models.BudgetSeries
	suite.Require().Nil(models.DB.First(&dbSeries, sr.ID).Error)
	suite.Require().NotNil(dbSeries.Until)
	suite.Assert().Equal(types.NewDate(2024, 3, 15), *dbSeries.Until)
}

func (suite *TestSuiteStandard) TestStopKeepsBudgetOnStopDate() {
	sr := suite.materializedSeries(types.NewDate(2024, 1, 1), types.NewDate(2024, 3, 31))
	suite.Require().Len(suite.seriesBudgets(sr), 3)

	// Stopping exactly on an occurrence date keeps that occurrence
	result, err := suite.service.Stop(sr, types.NewDate(2024, 2, 1))
	suite.Require().Nil(err)

	suite.Assert().EqualValues(1, result.Deleted)
	suite.Assert().False(result.SeriesDeleted)

	budgets := suite.seriesBudgets(sr)
	suite.Require().Len(budgets, 2)
	suite.Assert().Equal(types.NewDate(2024, 2, 1), *budgets[1].Date)
}

func (suite *TestSuiteStandard) TestStopKeepsBudgetsWithTransactions() {
	sr := suite.materializedSeries(types.NewDate(2024, 1, 1), types.NewDate(2024, 4, 30))
	budgets := suite.seriesBudgets(sr)
	suite.Require().Len(budgets, 4)

	// The March budget has spending recorded against it
	suite.createTestTransaction(budgets[2], decimal.NewFromInt(900))

	result, err := suite.service.Stop(sr, types.NewDate(2024, 2, 15))
	suite.Require().Nil(err)

	suite.Assert().EqualValues(1, result.Deleted)
	suite.Assert().EqualValues(1, result.Unlinked)

	// The March budget survives, detached from the series
	var march models.Budget
	suite.Require().Nil(models.DB.First(&march, budgets[2].ID).Error)
	suite.Assert().Nil(march.SeriesID)

	// The April budget is gone
	var april models.Budget
	err = models.DB.First(&april, budgets[3].ID).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestStopBeforeStartIsRejected() {
	sr := suite.materializedSeries(types.NewDate(2024, 3, 1), types.NewDate(2024, 6, 30))

	_, err := suite.service.Stop(sr, types.NewDate(2024, 2, 29))
	suite.Assert().ErrorIs(err, models.ErrSeriesUntilBeforeStart)

	// Nothing was touched
	suite.Assert().Len(suite.seriesBudgets(sr), 4)
}

func (suite *TestSuiteStandard) TestStopAtStartDeletesSeries() {
	// Stopping at the start date leaves no valid occurrence except the
	// first one; per the boundary rule the series itself is removed when
	// until does not lie after the start.
	sr := suite.materializedSeries(types.NewDate(2024, 1, 1), types.NewDate(2024, 3, 31))

	result, err := suite.service.Stop(sr, types.NewDate(2024, 1, 1))
	suite.Require().Nil(err)

	suite.Assert().True(result.SeriesDeleted)

	var dbSeries models.BudgetSeries
	err = models.DB.First(&dbSeries, sr.ID).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	// The start occurrence budget became standalone
	var remaining []models.Budget
	suite.Require().Nil(models.DB.Where("workspace_id = ?", suite.workspace.ID).Find(&remaining).Error)
	suite.Require().Len(remaining, 1)
	suite.Assert().Nil(remaining[0].SeriesID)
}

func (suite *TestSuiteStandard) TestStopDropsLaterExceptions() {
	sr := suite.materializedSeries(types.NewDate(2024, 1, 1), types.NewDate(2024, 4, 30))

	exception := models.BudgetSeriesException{SeriesID: sr.ID, Date: types.NewDate(2024, 6, 1), Skipped: true}
	suite.Require().Nil(models.DB.Create(&exception).Error)

	// The exception dated exactly on the stop date stays
	boundary := models.BudgetSeriesException{SeriesID: sr.ID, Date: types.NewDate(2024, 2, 15), Skipped: true}
	suite.Require().Nil(models.DB.Create(&boundary).Error)

	result, err := suite.service.Stop(sr, types.NewDate(2024, 2, 15))
	suite.Require().Nil(err)
	suite.Assert().EqualValues(1, result.DeletedExceptions)

	var remaining []models.BudgetSeriesException
	suite.Require().Nil(models.DB.Where("series_id = ?", sr.ID).Find(&remaining).Error)
	suite.Require().Len(remaining, 1)
	suite.Assert().Equal(types.NewDate(2024, 2, 15), remaining[0].Date)
}

func (suite *TestSuiteStandard) TestTrackDeletionCreatesException() {
	sr := suite.materializedSeries(types.NewDate(2024, 1, 1), types.NewDate(2024, 3, 31))
	budgets := suite.seriesBudgets(sr)

	suite.Require().Nil(suite.service.TrackDeletion(budgets[1]))

	skipped, err := sr.SkippedDates(models.DB)
	suite.Require().Nil(err)
	suite.Assert().True(skipped[types.NewDate(2024, 2, 1)])

	// Idempotent: tracking the same deletion again is a no-op
	suite.Require().Nil(suite.service.TrackDeletion(budgets[1]))

	var count int64
	suite.Require().Nil(models.DB.Model(&models.BudgetSeriesException{}).Where("series_id = ?", sr.ID).Count(&count).Error)
	suite.Assert().EqualValues(1, count)
}

func (suite *TestSuiteStandard) TestTrackDeletionIgnoresStandaloneBudgets() {
	budget := suite.createTestBudget(models.Budget{
		Title:  "One-off",
		Amount: decimal.NewFromInt(10),
		Date:   datePtr(types.NewDate(2024, 5, 1)),
	})

	suite.Assert().Nil(suite.service.TrackDeletion(budget))

	var count int64
	suite.Require().Nil(models.DB.Model(&models.BudgetSeriesException{}).Count(&count).Error)
	suite.Assert().EqualValues(0, count)
}

func (suite *TestSuiteStandard) TestDeletionTrackedBudgetStaysDeleted() {
	sr := suite.materializedSeries(types.NewDate(2024, 1, 1), types.NewDate(2024, 3, 31))
	budgets := suite.seriesBudgets(sr)

	suite.Require().Nil(suite.service.TrackDeletion(budgets[1]))
	suite.Require().Nil(models.DB.Delete(&budgets[1]).Error)

	suite.Require().Nil(suite.service.Materialize(suite.workspace.ID, types.NewDate(2024, 3, 31)))

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Budget{}).Where("series_id = ?", sr.ID).Count(&count).Error)
	suite.Assert().EqualValues(2, count)
}
