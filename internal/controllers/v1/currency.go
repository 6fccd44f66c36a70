package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/okane-app/backend/internal/httputil"
	"github.com/okane-app/backend/internal/models"
	"github.com/okane-app/backend/internal/types"
	"github.com/shopspring/decimal"
)

// RegisterCurrencyRoutes registers the routes for currencies and their
// exchange rates with the RouterGroup that is passed.
func RegisterCurrencyRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsCurrencyList)
		r.GET("", GetCurrencies)
		r.POST("", CreateCurrency)
	}

	{
		r.OPTIONS("/:id", OptionsCurrencyDetail)
		r.GET("/:id", GetCurrency)
		r.DELETE("/:id", DeleteCurrency)
	}

	{
		r.OPTIONS("/:id/rates", OptionsRates)
		r.GET("/:id/rates", GetRates)
		r.POST("/:id/rates", CreateRate)
	}
}

type CurrencyEditable struct {
	Code        string    `json:"code" example:"EUR"`
	Sign        string    `json:"sign" example:"€"`
	IsBase      bool      `json:"isBase" example:"true"`
	WorkspaceID uuid.UUID `json:"workspaceId"`
}

type RateEditable struct {
	Rate decimal.Decimal `json:"rate" example:"1.0823"`
	Date types.Date      `json:"date" example:"2024-03-01"`
}

type CurrencyResponse struct {
	Data  *models.Currency `json:"data"`
	Error *string          `json:"error"`
}

type CurrencyListResponse struct {
	Data  []models.Currency `json:"data"`
	Error *string           `json:"error"`
}

type RateResponse struct {
	Data  *models.Rate `json:"data"`
	Error *string      `json:"error"`
}

type RateListResponse struct {
	Data  []models.Rate `json:"data"`
	Error *string       `json:"error"`
}

// @Summary		Allowed HTTP verbs
// @Tags			Currencies
// @Success		204
// @Router			/v1/currencies [options]
func OptionsCurrencyList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Tags			Currencies
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/currencies/{id} [options]
func OptionsCurrencyDetail(c *gin.Context) {
	resourceOptionsDetail[models.Currency](c)
}

// @Summary		Allowed HTTP verbs
// @Tags			Currencies
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/currencies/{id}/rates [options]
func OptionsRates(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Create currency
// @Tags			Currencies
// @Accept			json
// @Produce		json
// @Success		201			{object}	CurrencyResponse
// @Failure		400			{object}	CurrencyResponse
// @Param			currency	body		CurrencyEditable	true	"Currency"
// @Router			/v1/currencies [post]
func CreateCurrency(c *gin.Context) {
	var editable CurrencyEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CurrencyResponse{Error: &e})
		return
	}

	currency := models.Currency{
		Code:        editable.Code,
		Sign:        editable.Sign,
		IsBase:      editable.IsBase,
		WorkspaceID: editable.WorkspaceID,
	}

	err = models.DB.Create(&currency).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CurrencyResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, CurrencyResponse{Data: &currency})
}

// @Summary		List currencies
// @Tags			Currencies
// @Produce		json
// @Success		200			{object}	CurrencyListResponse
// @Param			workspace	query		string	false	"Filter by workspace ID"
// @Router			/v1/currencies [get]
func GetCurrencies(c *gin.Context) {
	q := models.DB.Order("code ASC")
	if workspace := c.Query("workspace"); workspace != "" {
		q = q.Where("workspace_id = ?", workspace)
	}

	var currencies []models.Currency
	err := q.Find(&currencies).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CurrencyListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, CurrencyListResponse{Data: currencies})
}

// @Summary		Get currency
// @Tags			Currencies
// @Produce		json
// @Success		200	{object}	CurrencyResponse
// @Failure		404	{object}	CurrencyResponse
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/currencies/{id} [get]
func GetCurrency(c *gin.Context) {
	currency, ok := getResource[models.Currency](c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, CurrencyResponse{Data: &currency})
}

// @Summary		Delete currency
// @Tags			Currencies
// @Success		204
// @Failure		404	{object}	httpError
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/currencies/{id} [delete]
func DeleteCurrency(c *gin.Context) {
	deleteResource[models.Currency](c)
}

// @Summary		Create exchange rate
// @Description	Records the exchange rate of the currency against the workspace base currency for a date
// @Tags			Currencies
// @Accept			json
// @Produce		json
// @Success		201		{object}	RateResponse
// @Failure		400		{object}	RateResponse
// @Failure		404		{object}	RateResponse
// @Param			id		path	URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			rate	body	RateEditable	true	"Rate"
// @Router			/v1/currencies/{id}/rates [post]
func CreateRate(c *gin.Context) {
	currency, ok := getResource[models.Currency](c)
	if !ok {
		return
	}

	var editable RateEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RateResponse{Error: &e})
		return
	}

	rate := models.Rate{
		CurrencyID: currency.ID,
		Rate:       editable.Rate,
		RateDate:   editable.Date,
	}

	err = models.DB.Create(&rate).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RateResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, RateResponse{Data: &rate})
}

// @Summary		List exchange rates
// @Tags			Currencies
// @Produce		json
// @Success		200	{object}	RateListResponse
// @Failure		404	{object}	RateListResponse
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/currencies/{id}/rates [get]
func GetRates(c *gin.Context) {
	currency, ok := getResource[models.Currency](c)
	if !ok {
		return
	}

	var rates []models.Rate
	err := models.DB.
		Where("currency_id = ?", currency.ID).
		Order("rate_date ASC").
		Find(&rates).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RateListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, RateListResponse{Data: rates})
}
