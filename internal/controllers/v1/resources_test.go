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

func (suite *TestSuiteStandard) TestCreateUser() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/users", map[string]any{
		"name":        "Sam",
		"workspaceId": suite.workspace.ID,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.UserResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("Sam", response.Data.Name)
}

func (suite *TestSuiteStandard) TestGetUsersFiltersWorkspace() {
	other := models.Workspace{Name: "Side project"}
	suite.Require().Nil(models.DB.Create(&other).Error)
	suite.Require().Nil(models.DB.Create(&models.User{Name: "Sam", WorkspaceID: other.ID}).Error)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/users?workspace="+suite.workspace.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.UserListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("Alex", response.Data[0].Name)
}

func (suite *TestSuiteStandard) TestCreateCategoryWithParent() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categories", map[string]any{
		"name":        "Snacks",
		"workspaceId": suite.workspace.ID,
		"parentId":    suite.category.ID,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Require().NotNil(response.Data.ParentID)
	suite.Assert().Equal(suite.category.ID, *response.Data.ParentID)
}

func (suite *TestSuiteStandard) TestCreateCurrencyInvalidCode() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/currencies", map[string]any{
		"code":        "NOPE",
		"workspaceId": suite.workspace.ID,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.CurrencyResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Error)
	suite.Assert().Equal(models.ErrCurrencyCodeInvalid.Error(), *response.Error)
}

func (suite *TestSuiteStandard) TestCreateAndListRates() {
	usd := models.Currency{Code: "USD", WorkspaceID: suite.workspace.ID}
	suite.Require().Nil(models.DB.Create(&usd).Error)

	r := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/currencies/%s/rates", usd.ID), map[string]any{
		"rate": "0.92",
		"date": "2024-03-01",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	// A second rate for the same date is rejected
	r = test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/currencies/%s/rates", usd.ID), map[string]any{
		"rate": "0.93",
		"date": "2024-03-01",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/currencies/%s/rates", usd.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.RateListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().True(response.Data[0].Rate.Equal(decimal.NewFromFloat(0.92)))
}

func (suite *TestSuiteStandard) TestCreateTransactionConverts() {
	budget := suite.createTestBudget(models.Budget{Title: "Groceries", Amount: decimal.NewFromInt(400), Date: datePtr(types.NewDate(2024, 3, 1))})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transactions", map[string]any{
		"userId":      suite.user.ID,
		"workspaceId": suite.workspace.ID,
		"categoryId":  suite.category.ID,
		"currencyId":  suite.currency.ID,
		"budgetId":    budget.ID,
		"amount":      "21.70",
		"date":        "2024-03-12",
		"note":        "Weekly shop",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().True(response.Data.AmountMap.Get("EUR").Equal(decimal.NewFromFloat(21.70)))
	suite.Require().NotNil(response.Data.BudgetID)
	suite.Assert().Equal(budget.ID, *response.Data.BudgetID)
}

func (suite *TestSuiteStandard) TestDeleteTransaction() {
	budget := suite.createTestBudget(models.Budget{Title: "Groceries", Amount: decimal.NewFromInt(400), Date: datePtr(types.NewDate(2024, 3, 1))})
	transaction := suite.createTestTransaction(budget, decimal.NewFromInt(30))

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	var dbTransaction models.Transaction
	err := models.DB.First(&dbTransaction, transaction.ID).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}
