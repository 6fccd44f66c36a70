package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/okane-app/backend/internal/httputil"
	"github.com/okane-app/backend/internal/models"
	"github.com/okane-app/backend/internal/multicurrency"
	"github.com/okane-app/backend/internal/types"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsTransactionList)
		r.GET("", GetTransactions)
		r.POST("", CreateTransaction)
	}

	{
		r.OPTIONS("/:id", OptionsTransactionDetail)
		r.GET("/:id", GetTransaction)
		r.DELETE("/:id", DeleteTransaction)
	}
}

type TransactionEditable struct {
	UserID      uuid.UUID       `json:"userId"`
	WorkspaceID uuid.UUID       `json:"workspaceId"`
	CategoryID  uuid.UUID       `json:"categoryId"`
	CurrencyID  uuid.UUID       `json:"currencyId"`
	BudgetID    *uuid.UUID      `json:"budgetId"`
	Amount      decimal.Decimal `json:"amount" example:"21.70"`
	Date        types.Date      `json:"date" example:"2024-03-12"`
	Note        string          `json:"note" example:"Weekly shop"`
}

type TransactionResponse struct {
	Data  *models.Transaction `json:"data"`
	Error *string             `json:"error"`
}

type TransactionListResponse struct {
	Data  []models.Transaction `json:"data"`
	Error *string              `json:"error"`
}

// @Summary		Allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [options]
func OptionsTransactionDetail(c *gin.Context) {
	resourceOptionsDetail[models.Transaction](c)
}

// @Summary		Create transaction
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		201			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions [post]
func CreateTransaction(c *gin.Context) {
	var editable TransactionEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	transaction := models.Transaction{
		UserID:      editable.UserID,
		WorkspaceID: editable.WorkspaceID,
		CategoryID:  editable.CategoryID,
		CurrencyID:  editable.CurrencyID,
		BudgetID:    editable.BudgetID,
		Amount:      editable.Amount,
		Date:        editable.Date,
		Note:        editable.Note,
	}

	err = models.DB.Create(&transaction).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	// Conversion gaps are not fatal, the transaction is stored either
	// way and can be converted once rates exist.
	converter := multicurrency.NewRateConverter()
	err = converter.ConvertTransactions(models.DB, []uuid.UUID{transaction.ID}, transaction.WorkspaceID)
	if err != nil {
		log.Warn().Err(err).Str("transaction", transaction.ID.String()).Msg("could not convert transaction amount")
	}

	err = models.DB.First(&transaction, transaction.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, TransactionResponse{Data: &transaction})
}

// @Summary		List transactions
// @Tags			Transactions
// @Produce		json
// @Success		200			{object}	TransactionListResponse
// @Param			workspace	query		string	false	"Filter by workspace ID"
// @Param			budget		query		string	false	"Filter by budget ID"
// @Param			user		query		string	false	"Filter by user ID"
// @Router			/v1/transactions [get]
func GetTransactions(c *gin.Context) {
	q := models.DB.Order("transaction_date ASC")
	if workspace := c.Query("workspace"); workspace != "" {
		q = q.Where("workspace_id = ?", workspace)
	}

	if budget := c.Query("budget"); budget != "" {
		q = q.Where("budget_id = ?", budget)
	}

	if user := c.Query("user"); user != "" {
		q = q.Where("user_id = ?", user)
	}

	var transactions []models.Transaction
	err := q.Find(&transactions).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, TransactionListResponse{Data: transactions})
}

// @Summary		Get transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		404	{object}	TransactionResponse
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [get]
func GetTransaction(c *gin.Context) {
	transaction, ok := getResource[models.Transaction](c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: &transaction})
}

// @Summary		Delete transaction
// @Tags			Transactions
// @Success		204
// @Failure		404	{object}	httpError
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [delete]
func DeleteTransaction(c *gin.Context) {
	deleteResource[models.Transaction](c)
}
