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

func (suite *TestSuiteStandard) TestCreateWorkspace() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/workspaces", map[string]any{
		"name": "Our household",
		"note": "Shared with Ali",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.WorkspaceResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("Our household", response.Data.Name)
}

func (suite *TestSuiteStandard) TestGetWorkspaces() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/workspaces", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.WorkspaceListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Data, 1)
}

func (suite *TestSuiteStandard) TestDeleteWorkspace() {
	workspace := models.Workspace{Name: "Temporary"}
	suite.Require().Nil(models.DB.Create(&workspace).Error)

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/workspaces/%s", workspace.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	var dbWorkspace models.Workspace
	err := models.DB.First(&dbWorkspace, workspace.ID).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestMaterializeWorkspace() {
	sr := suite.createTestSeries(models.BudgetSeries{Title: "Rent", Amount: decimal.NewFromInt(1200), StartDate: types.NewDate(2024, 1, 1)})

	r := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/workspaces/%s/materialize?horizon=2024-03-31", suite.workspace.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	budgets, err := sr.Budgets(models.DB)
	suite.Require().Nil(err)
	suite.Assert().Len(budgets, 3)
}

func (suite *TestSuiteStandard) TestMaterializeWorkspaceInvalidHorizon() {
	r := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/workspaces/%s/materialize?horizon=whenever", suite.workspace.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
