package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/okane-app/backend/internal/httputil"
	"github.com/okane-app/backend/internal/models"
	"github.com/okane-app/backend/internal/multicurrency"
	"github.com/okane-app/backend/internal/series"
	"github.com/okane-app/backend/internal/types"
	"github.com/rs/zerolog/log"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
)

// RegisterBudgetRoutes registers the routes for budgets with the
// RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsBudgetList)
		r.GET("", GetBudgets)
		r.POST("", CreateBudget)
	}

	{
		r.OPTIONS("/:id", OptionsBudgetDetail)
		r.GET("/:id", GetBudget)
		r.PATCH("/:id", UpdateBudget)
		r.DELETE("/:id", DeleteBudget)
	}
}

type BudgetEditable struct {
	UserID      uuid.UUID         `json:"userId"`
	WorkspaceID uuid.UUID         `json:"workspaceId"`
	CategoryID  uuid.UUID         `json:"categoryId"`
	CurrencyID  uuid.UUID         `json:"currencyId"`
	Title       string            `json:"title" example:"Groceries"`
	Amount      decimal.Decimal   `json:"amount" example:"250"`
	Date        *types.Date       `json:"date" example:"2024-03-01"`
	Note        string            `json:"note"`
	Completed   bool              `json:"completed" example:"false"`
	Recurrence  *models.Frequency `json:"recurrence" example:"MONTHLY"`
	Count       *uint             `json:"count" example:"12"`
}

// BudgetPatch carries a partial budget edit. Nil fields stay untouched.
// Changes to series-relevant fields run through the series engine and
// may split, stop, or create a series.
type BudgetPatch struct {
	CategoryID *uuid.UUID        `json:"categoryId"`
	CurrencyID *uuid.UUID        `json:"currencyId"`
	Title      *string           `json:"title"`
	Amount     *decimal.Decimal  `json:"amount"`
	Date       *types.Date       `json:"date"`
	Note       *string           `json:"note"`
	Completed  *bool             `json:"completed"`
	Recurrence *models.Frequency `json:"recurrence"`
	Count      *uint             `json:"count"`
}

type BudgetResponse struct {
	Data  *models.Budget `json:"data"`
	Error *string        `json:"error"`
}

type BudgetListResponse struct {
	Data  []models.Budget `json:"data"`
	Error *string         `json:"error"`
}

// BudgetUpdateResponse is the response of a budget patch. Series is the
// series the budget belongs to after the edit, UpdatedBudgets lists the
// sibling budgets rewritten by propagation.
type BudgetUpdateResponse struct {
	Data           *models.Budget       `json:"data"`
	Series         *models.BudgetSeries `json:"series"`
	UpdatedBudgets []uuid.UUID          `json:"updatedBudgets"`
	Error          *string              `json:"error"`
}

// @Summary		Allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [options]
func OptionsBudgetDetail(c *gin.Context) {
	resourceOptionsDetail[models.Budget](c)
}

// @Summary		Create budget
// @Description	Creates a new budget. With a recurrence, a series starting at the budget date is created along with it.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		201		{object}	BudgetUpdateResponse
// @Failure		400		{object}	BudgetUpdateResponse
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets [post]
func CreateBudget(c *gin.Context) {
	var editable BudgetEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetUpdateResponse{Error: &e})
		return
	}

	budget := models.Budget{
		UserID:      editable.UserID,
		WorkspaceID: editable.WorkspaceID,
		CategoryID:  editable.CategoryID,
		CurrencyID:  editable.CurrencyID,
		Title:       editable.Title,
		Amount:      editable.Amount,
		Date:        editable.Date,
		Note:        editable.Note,
		Completed:   editable.Completed,
	}

	err = models.DB.Create(&budget).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetUpdateResponse{Error: &e})
		return
	}

	result := series.UpdateResult{}
	if editable.Recurrence != nil && *editable.Recurrence != "" {
		result, err = seriesService().Update(budget, series.Change{
			Recurrence: editable.Recurrence,
			Count:      editable.Count,
		})
		if err != nil {
			e := err.Error()
			c.JSON(status(err), BudgetUpdateResponse{Error: &e})
			return
		}
	}

	converter := multicurrency.NewRateConverter()
	err = converter.ConvertBudgets(models.DB, []uuid.UUID{budget.ID}, budget.WorkspaceID)
	if err != nil {
		log.Warn().Err(err).Str("budget", budget.ID.String()).Msg("could not convert budget amount")
	}

	err = models.DB.First(&budget, budget.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetUpdateResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, BudgetUpdateResponse{Data: &budget, Series: result.Series})
}

// @Summary		List budgets
// @Tags			Budgets
// @Produce		json
// @Success		200			{object}	BudgetListResponse
// @Param			workspace	query		string	false	"Filter by workspace ID"
// @Param			user		query		string	false	"Filter by user ID"
// @Param			series		query		string	false	"Filter by series ID"
// @Param			title		query		string	false	"Filter by title, supports * wildcards"
// @Param			from		query		string	false	"Only budgets on or after this date"
// @Param			to			query		string	false	"Only budgets on or before this date"
// @Router			/v1/budgets [get]
func GetBudgets(c *gin.Context) {
	q := models.DB.Order("budget_date ASC")
	if workspace := c.Query("workspace"); workspace != "" {
		q = q.Where("workspace_id = ?", workspace)
	}

	if user := c.Query("user"); user != "" {
		q = q.Where("user_id = ?", user)
	}

	if seriesID := c.Query("series"); seriesID != "" {
		q = q.Where("series_id = ?", seriesID)
	}

	if from := c.Query("from"); from != "" {
		date, err := types.ParseDate(from)
		if err != nil {
			e := httputil.ErrInvalidQuery.Error()
			c.JSON(http.StatusBadRequest, BudgetListResponse{Error: &e})
			return
		}

		q = q.Where("date(budget_date) >= date(?)", date)
	}

	if to := c.Query("to"); to != "" {
		date, err := types.ParseDate(to)
		if err != nil {
			e := httputil.ErrInvalidQuery.Error()
			c.JSON(http.StatusBadRequest, BudgetListResponse{Error: &e})
			return
		}

		q = q.Where("date(budget_date) <= date(?)", date)
	}

	var budgets []models.Budget
	err := q.Find(&budgets).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetListResponse{Error: &e})
		return
	}

	// Title filtering happens in memory so users get glob semantics
	// instead of SQL LIKE escaping rules.
	if pattern := c.Query("title"); pattern != "" {
		filtered := make([]models.Budget, 0, len(budgets))
		for _, budget := range budgets {
			if glob.Glob(pattern, budget.Title) {
				filtered = append(filtered, budget)
			}
		}

		budgets = filtered
	}

	c.JSON(http.StatusOK, BudgetListResponse{Data: budgets})
}

// @Summary		Get budget
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		404	{object}	BudgetResponse
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [get]
func GetBudget(c *gin.Context) {
	budget, ok := getResource[models.Budget](c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: &budget})
}

// @Summary		Update budget
// @Description	Updates a budget. Changes to series-relevant fields are applied through the series engine: they can create, split, stop, or update the budget's series.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetUpdateResponse
// @Failure		400		{object}	BudgetUpdateResponse
// @Failure		404		{object}	BudgetUpdateResponse
// @Param			id		path	URIID		true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			budget	body	BudgetPatch	true	"Fields to update"
// @Router			/v1/budgets/{id} [patch]
func UpdateBudget(c *gin.Context) {
	budget, ok := getResource[models.Budget](c)
	if !ok {
		return
	}

	var patch BudgetPatch
	err := httputil.BindData(c, &patch)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetUpdateResponse{Error: &e})
		return
	}

	// Fields with no series relevance are updated directly.
	plain := map[string]any{}
	if patch.Note != nil {
		plain["note"] = *patch.Note
	}

	if patch.Completed != nil {
		plain["completed"] = *patch.Completed
	}

	if len(plain) > 0 {
		err = models.DB.Model(&budget).Updates(plain).Error
		if err != nil {
			e := err.Error()
			c.JSON(status(err), BudgetUpdateResponse{Error: &e})
			return
		}
	}

	result, err := seriesService().Update(budget, series.Change{
		Recurrence: patch.Recurrence,
		Title:      patch.Title,
		Amount:     patch.Amount,
		CategoryID: patch.CategoryID,
		CurrencyID: patch.CurrencyID,
		Date:       patch.Date,
		Count:      patch.Count,
	})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetUpdateResponse{Error: &e})
		return
	}

	err = models.DB.First(&budget, budget.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetUpdateResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, BudgetUpdateResponse{
		Data:           &budget,
		Series:         result.Series,
		UpdatedBudgets: result.UpdatedBudgets,
	})
}

// @Summary		Delete budget
// @Description	Deletes a budget. A budget that belongs to a series leaves a skip exception behind so it is not recreated by the next materialization.
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [delete]
func DeleteBudget(c *gin.Context) {
	budget, ok := getResource[models.Budget](c)
	if !ok {
		return
	}

	err := seriesService().TrackDeletion(budget)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&budget).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
