package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/okane-app/backend/internal/httputil"
	"github.com/okane-app/backend/internal/models"
	"github.com/okane-app/backend/internal/series"
	"github.com/okane-app/backend/internal/types"
	"github.com/shopspring/decimal"
)

// RegisterSeriesRoutes registers the routes for budget series with the
// RouterGroup that is passed.
func RegisterSeriesRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsSeriesList)
		r.GET("", GetSeriesList)
	}

	{
		r.OPTIONS("/:id", OptionsSeriesDetail)
		r.GET("/:id", GetSeries)
		r.DELETE("/:id", DeleteSeries)
	}

	{
		r.OPTIONS("/:id/stop", OptionsSeriesStop)
		r.POST("/:id/stop", StopSeries)
	}

	r.GET("/:id/occurrences", GetSeriesOccurrences)
	r.GET("/:id/smart-amount", GetSeriesSmartAmount)
}

type SeriesStopEditable struct {
	Until types.Date `json:"until" binding:"required" example:"2024-06-30"`
}

type SeriesResponse struct {
	Data  *models.BudgetSeries `json:"data"`
	Error *string              `json:"error"`
}

type SeriesListResponse struct {
	Data  []models.BudgetSeries `json:"data"`
	Error *string               `json:"error"`
}

type SeriesStopResponse struct {
	Data  *series.StopResult `json:"data"`
	Error *string            `json:"error"`
}

type OccurrencesResponse struct {
	Data  []types.Date `json:"data"`
	Error *string      `json:"error"`
}

type SmartAmountResponse struct {
	Data  *decimal.Decimal `json:"data"`
	Error *string          `json:"error"`
}

// @Summary		Allowed HTTP verbs
// @Tags			Series
// @Success		204
// @Router			/v1/series [options]
func OptionsSeriesList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Tags			Series
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/series/{id} [options]
func OptionsSeriesDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	var sr models.BudgetSeries
	err = models.DB.First(&sr, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Header("allow", "GET, DELETE")
	c.Status(http.StatusNoContent)
}

// @Summary		Allowed HTTP verbs
// @Tags			Series
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/series/{id}/stop [options]
func OptionsSeriesStop(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		List series
// @Tags			Series
// @Produce		json
// @Success		200			{object}	SeriesListResponse
// @Param			workspace	query		string	false	"Filter by workspace ID"
// @Param			user		query		string	false	"Filter by user ID"
// @Router			/v1/series [get]
func GetSeriesList(c *gin.Context) {
	q := models.DB.Order("start_date ASC")
	if workspace := c.Query("workspace"); workspace != "" {
		q = q.Where("workspace_id = ?", workspace)
	}

	if user := c.Query("user"); user != "" {
		q = q.Where("user_id = ?", user)
	}

	var list []models.BudgetSeries
	err := q.Find(&list).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SeriesListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, SeriesListResponse{Data: list})
}

// @Summary		Get series
// @Tags			Series
// @Produce		json
// @Success		200	{object}	SeriesResponse
// @Failure		404	{object}	SeriesResponse
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/series/{id} [get]
func GetSeries(c *gin.Context) {
	sr, ok := getResource[models.BudgetSeries](c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, SeriesResponse{Data: &sr})
}

// @Summary		Delete series
// @Description	Stops the series at its start date, which removes it entirely. Budgets with transactions are kept but detached.
// @Tags			Series
// @Produce		json
// @Success		200	{object}	SeriesStopResponse
// @Failure		404	{object}	SeriesStopResponse
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/series/{id} [delete]
func DeleteSeries(c *gin.Context) {
	sr, ok := getResource[models.BudgetSeries](c)
	if !ok {
		return
	}

	result, err := seriesService().Stop(sr, sr.StartDate)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SeriesStopResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, SeriesStopResponse{Data: &result})
}

// @Summary		Stop series
// @Description	Ends the series at the given date. Budgets after the date are deleted, or detached when they have transactions. An until date before the series start is rejected.
// @Tags			Series
// @Accept			json
// @Produce		json
// @Success		200		{object}	SeriesStopResponse
// @Failure		400		{object}	SeriesStopResponse
// @Failure		404		{object}	SeriesStopResponse
// @Param			id		path	URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			stop	body	SeriesStopEditable	true	"Stop date"
// @Router			/v1/series/{id}/stop [post]
func StopSeries(c *gin.Context) {
	sr, ok := getResource[models.BudgetSeries](c)
	if !ok {
		return
	}

	var editable SeriesStopEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SeriesStopResponse{Error: &e})
		return
	}

	result, err := seriesService().Stop(sr, editable.Until)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SeriesStopResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, SeriesStopResponse{Data: &result})
}

// @Summary		List occurrences
// @Description	Returns the dates the series is due on, up to the horizon date. Skipped dates are included, this is the raw recurrence pattern.
// @Tags			Series
// @Produce		json
// @Success		200		{object}	OccurrencesResponse
// @Failure		400		{object}	OccurrencesResponse
// @Failure		404		{object}	OccurrencesResponse
// @Param			id		path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			horizon	query	string	true	"Horizon date (YYYY-MM-DD)"
// @Router			/v1/series/{id}/occurrences [get]
func GetSeriesOccurrences(c *gin.Context) {
	sr, ok := getResource[models.BudgetSeries](c)
	if !ok {
		return
	}

	horizon, err := types.ParseDate(c.Query("horizon"))
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, OccurrencesResponse{Error: &e})
		return
	}

	occurrences, err := series.Occurrences(sr, 0, horizon)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OccurrencesResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, OccurrencesResponse{Data: occurrences})
}

// @Summary		Get smart amount
// @Description	Suggests an amount for the next budget of the series based on the spending of the last six budgets.
// @Tags			Series
// @Produce		json
// @Success		200	{object}	SmartAmountResponse
// @Failure		404	{object}	SmartAmountResponse
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/series/{id}/smart-amount [get]
func GetSeriesSmartAmount(c *gin.Context) {
	sr, ok := getResource[models.BudgetSeries](c)
	if !ok {
		return
	}

	amount, err := seriesService().SmartAmount(sr, true)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SmartAmountResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, SmartAmountResponse{Data: &amount})
}
