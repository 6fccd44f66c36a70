package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/okane-app/backend/internal/controllers/v1"
	"github.com/okane-app/backend/internal/models"
	"github.com/okane-app/backend/internal/types"
	"github.com/okane-app/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestOptionsBudget() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("GET, POST", r.Header().Get("allow"))

	budget := suite.createTestBudget(models.Budget{Title: "Rent", Amount: decimal.NewFromInt(1200), Date: datePtr(types.NewDate(2024, 1, 1))})

	r = test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("http://example.com/v1/budgets/%s", budget.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("GET, PATCH, DELETE", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCreateBudget() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/budgets", map[string]any{
		"userId":      suite.user.ID,
		"workspaceId": suite.workspace.ID,
		"categoryId":  suite.category.ID,
		"currencyId":  suite.currency.ID,
		"title":       "Rent",
		"amount":      "1200",
		"date":        "2024-01-01",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.BudgetUpdateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("Rent", response.Data.Title)
	suite.Assert().Nil(response.Series)
	suite.Assert().True(response.Data.AmountMap.Get("EUR").Equal(decimal.NewFromInt(1200)))
}

func (suite *TestSuiteStandard) TestCreateRecurringBudget() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/budgets", map[string]any{
		"userId":      suite.user.ID,
		"workspaceId": suite.workspace.ID,
		"categoryId":  suite.category.ID,
		"currencyId":  suite.currency.ID,
		"title":       "Rent",
		"amount":      "1200",
		"date":        "2024-01-01",
		"recurrence":  "MONTHLY",
		"count":       12,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.BudgetUpdateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Series)
	suite.Assert().Equal(models.FrequencyMonthly, response.Series.Frequency)
	suite.Require().NotNil(response.Series.Count)
	suite.Assert().EqualValues(12, *response.Series.Count)

	suite.Require().NotNil(response.Data)
	suite.Require().NotNil(response.Data.SeriesID)
	suite.Assert().Equal(response.Series.ID, *response.Data.SeriesID)
}

func (suite *TestSuiteStandard) TestCreateRecurringBudgetWithoutDate() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/budgets", map[string]any{
		"userId":      suite.user.ID,
		"workspaceId": suite.workspace.ID,
		"categoryId":  suite.category.ID,
		"currencyId":  suite.currency.ID,
		"title":       "Someday",
		"amount":      "100",
		"recurrence":  "MONTHLY",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	// Without a date, the recurrence request has nothing to anchor on:
	// the budget is created, no series is
	var response v1.BudgetUpdateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Nil(response.Data.SeriesID)
	suite.Assert().Nil(response.Series)

	var count int64
	suite.Require().Nil(models.DB.Model(&models.BudgetSeries{}).Count(&count).Error)
	suite.Assert().EqualValues(0, count)
}

func (suite *TestSuiteStandard) TestCreateBudgetInvalidBody() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/budgets", `{ "title": `)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetBudgetsFilters() {
	suite.createTestBudget(models.Budget{Title: "Rent", Amount: decimal.NewFromInt(1200), Date: datePtr(types.NewDate(2024, 1, 1))})
	suite.createTestBudget(models.Budget{Title: "Groceries", Amount: decimal.NewFromInt(400), Date: datePtr(types.NewDate(2024, 2, 1))})

	tests := []struct {
		query string
		count int
	}{
		{"workspace=" + suite.workspace.ID.String(), 2},
		{"title=G*", 1},
		{"from=2024-01-15", 1},
		{"to=2024-01-15", 1},
		{"from=2024-03-01", 0},
		// Budgets dated exactly on the range ends are included
		{"from=2024-02-01", 1},
		{"to=2024-01-01", 1},
	}

	for _, tt := range tests {
		suite.Run(tt.query, func() {
			r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets?"+tt.query, "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

			var response v1.BudgetListResponse
			test.DecodeResponse(suite.T(), &r, &response)
			suite.Assert().Len(response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestGetBudgetNotFound() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets/cf51655e-0f44-4d61-aa92-75e65d7c15b1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUpdateBudgetAmountPropagates() {
	sr := suite.createTestSeries(models.BudgetSeries{Title: "Rent", Amount: decimal.NewFromInt(1200), StartDate: types.NewDate(2024, 1, 1)})

	january := suite.createTestBudget(models.Budget{Title: "Rent", Amount: decimal.NewFromInt(1200), Date: datePtr(types.NewDate(2024, 1, 1)), SeriesID: &sr.ID})
	february := suite.createTestBudget(models.Budget{Title: "Rent", Amount: decimal.NewFromInt(1200), Date: datePtr(types.NewDate(2024, 2, 1)), SeriesID: &sr.ID})

	r := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/budgets/%s", january.ID), map[string]any{
		"amount": "1300",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetUpdateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Series)
	suite.Assert().Equal(sr.ID, response.Series.ID)
	suite.Assert().True(response.Series.Amount.Equal(decimal.NewFromInt(1300)))
	suite.Require().Len(response.UpdatedBudgets, 1)
	suite.Assert().Equal(february.ID, response.UpdatedBudgets[0])
}

func (suite *TestSuiteStandard) TestUpdateBudgetFrequencySplits() {
	sr := suite.createTestSeries(models.BudgetSeries{Title: "Rent", Amount: decimal.NewFromInt(1200), StartDate: types.NewDate(2024, 1, 1)})

	suite.createTestBudget(models.Budget{Title: "Rent", Amount: decimal.NewFromInt(1200), Date: datePtr(types.NewDate(2024, 1, 1)), SeriesID: &sr.ID})
	february := suite.createTestBudget(models.Budget{Title: "Rent", Amount: decimal.NewFromInt(1200), Date: datePtr(types.NewDate(2024, 2, 1)), SeriesID: &sr.ID})

	r := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/budgets/%s", february.ID), map[string]any{
		"recurrence": "WEEKLY",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetUpdateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Series)
	suite.Assert().NotEqual(sr.ID, response.Series.ID)
	suite.Assert().Equal(models.FrequencyWeekly, response.Series.Frequency)
}

func (suite *TestSuiteStandard) TestUpdateBudgetNote() {
	budget := suite.createTestBudget(models.Budget{Title: "Rent", Amount: decimal.NewFromInt(1200), Date: datePtr(types.NewDate(2024, 1, 1))})

	r := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/budgets/%s", budget.ID), map[string]any{
		"note":      "pay early",
		"completed": true,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetUpdateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("pay early", response.Data.Note)
	suite.Assert().True(response.Data.Completed)
}

func (suite *TestSuiteStandard) TestDeleteBudgetLeavesException() {
	sr := suite.createTestSeries(models.BudgetSeries{Title: "Rent", Amount: decimal.NewFromInt(1200), StartDate: types.NewDate(2024, 1, 1)})
	budget := suite.createTestBudget(models.Budget{Title: "Rent", Amount: decimal.NewFromInt(1200), Date: datePtr(types.NewDate(2024, 2, 1)), SeriesID: &sr.ID})

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/budgets/%s", budget.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	skipped, err := sr.SkippedDates(models.DB)
	suite.Require().Nil(err)
	suite.Assert().True(skipped[types.NewDate(2024, 2, 1)])
}
