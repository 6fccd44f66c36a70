package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/okane-app/backend/internal/httputil"
	"github.com/okane-app/backend/internal/report"
	"github.com/okane-app/backend/internal/types"
	ok_uuid "github.com/okane-app/backend/internal/uuid"
)

// RegisterReportRoutes registers the routes for reports with the
// RouterGroup that is passed.
func RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/monthly", OptionsReport)
	r.GET("/monthly", GetMonthlyReport)

	r.OPTIONS("/weekly", OptionsReport)
	r.GET("/weekly", GetWeeklyReport)

	r.OPTIONS("/history", OptionsReport)
	r.GET("/history", GetHistoryReport)
}

// ReportQuery is the shared query of the monthly and weekly reports.
type ReportQuery struct {
	Workspace ok_uuid.UUID `form:"workspace" binding:"required"`
	From      types.Date   `form:"from"`
	To        types.Date   `form:"to"`
	User      ok_uuid.UUID `form:"user"`
}

type HistoryQuery struct {
	Workspace ok_uuid.UUID `form:"workspace" binding:"required"`
	Category  ok_uuid.UUID `form:"category" binding:"required"`
	Month     types.Date   `form:"month"`
	Currency  string       `form:"currency" binding:"required"`
	User      ok_uuid.UUID `form:"user"`
}

type MonthlyReportResponse struct {
	Data  []*report.Category `json:"data"`
	Error *string            `json:"error"`
}

type WeeklyReportResponse struct {
	Data  []*report.Item `json:"data"`
	Error *string        `json:"error"`
}

type HistoryResponse struct {
	Data  []report.MonthUsage `json:"data"`
	Error *string             `json:"error"`
}

// @Summary		Allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/v1/reports/monthly [options]
func OptionsReport(c *gin.Context) {
	httputil.OptionsGet(c)
}

func optionalUser(id ok_uuid.UUID) *uuid.UUID {
	if id == ok_uuid.Nil {
		return nil
	}

	return &id.UUID
}

// @Summary		Monthly report
// @Description	Returns planned and spent amounts for a date range, nested by category, budget group, and budget. Materializes the workspace's series first.
// @Tags			Reports
// @Produce		json
// @Success		200			{object}	MonthlyReportResponse
// @Failure		400			{object}	MonthlyReportResponse
// @Param			workspace	query		string	true	"Workspace ID"
// @Param			from		query		string	true	"Range start (YYYY-MM-DD)"
// @Param			to			query		string	true	"Range end (YYYY-MM-DD)"
// @Param			user		query		string	false	"Only include this user's budgets"
// @Router			/v1/reports/monthly [get]
func GetMonthlyReport(c *gin.Context) {
	var query ReportQuery
	err := c.ShouldBind(&query)
	// The binding does not treat an absent workspace parameter as a
	// violation of "required", so check for the zero UUID explicitly
	if err != nil || query.Workspace == ok_uuid.Nil {
		e := httputil.ErrInvalidQuery.Error()
		c.JSON(http.StatusBadRequest, MonthlyReportResponse{Error: &e})
		return
	}

	data, err := reportService().Monthly(query.Workspace.UUID, query.From, query.To, optionalUser(query.User))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthlyReportResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, MonthlyReportResponse{Data: data})
}

// @Summary		Weekly report
// @Description	Returns a flat list of budgets with their transactions for a week range. Materializes the workspace's series first.
// @Tags			Reports
// @Produce		json
// @Success		200			{object}	WeeklyReportResponse
// @Failure		400			{object}	WeeklyReportResponse
// @Param			workspace	query		string	true	"Workspace ID"
// @Param			from		query		string	true	"Range start (YYYY-MM-DD)"
// @Param			to			query		string	true	"Range end (YYYY-MM-DD)"
// @Param			user		query		string	false	"Only include this user's budgets"
// @Router			/v1/reports/weekly [get]
func GetWeeklyReport(c *gin.Context) {
	var query ReportQuery
	err := c.ShouldBind(&query)
	if err != nil || query.Workspace == ok_uuid.Nil {
		e := httputil.ErrInvalidQuery.Error()
		c.JSON(http.StatusBadRequest, WeeklyReportResponse{Error: &e})
		return
	}

	data, err := reportService().Weekly(query.Workspace.UUID, query.From, query.To, optionalUser(query.User))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WeeklyReportResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, WeeklyReportResponse{Data: data})
}

// @Summary		Historical usage
// @Description	Returns per-month spending for a category over the six months before the given month, zero-filled.
// @Tags			Reports
// @Produce		json
// @Success		200			{object}	HistoryResponse
// @Failure		400			{object}	HistoryResponse
// @Param			workspace	query		string	true	"Workspace ID"
// @Param			category	query		string	true	"Top-level category ID"
// @Param			month		query		string	true	"Reference month (YYYY-MM-DD, any day of the month)"
// @Param			currency	query		string	true	"Currency code for the amounts"
// @Param			user		query		string	false	"Only include this user's transactions"
// @Router			/v1/reports/history [get]
func GetHistoryReport(c *gin.Context) {
	var query HistoryQuery
	err := c.ShouldBind(&query)
	if err != nil || query.Workspace == ok_uuid.Nil || query.Category == ok_uuid.Nil || query.Currency == "" {
		e := httputil.ErrInvalidQuery.Error()
		c.JSON(http.StatusBadRequest, HistoryResponse{Error: &e})
		return
	}

	data, err := reportService().History(query.Workspace.UUID, query.Category.UUID, query.Month, query.Currency, optionalUser(query.User))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HistoryResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, HistoryResponse{Data: data})
}
