package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/okane-app/backend/internal/httputil"
	"github.com/okane-app/backend/internal/models"
	"github.com/okane-app/backend/internal/types"
)

// RegisterWorkspaceRoutes registers the routes for workspaces with the
// RouterGroup that is passed.
func RegisterWorkspaceRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsWorkspaceList)
		r.GET("", GetWorkspaces)
		r.POST("", CreateWorkspace)
	}

	{
		r.OPTIONS("/:id", OptionsWorkspaceDetail)
		r.GET("/:id", GetWorkspace)
		r.DELETE("/:id", DeleteWorkspace)
	}

	r.POST("/:id/materialize", MaterializeWorkspace)
}

type WorkspaceEditable struct {
	Name string `json:"name" example:"Our household"`
	Note string `json:"note" example:"Shared with Ali"`
}

type WorkspaceResponse struct {
	Data  *models.Workspace `json:"data"`
	Error *string           `json:"error"`
}

type WorkspaceListResponse struct {
	Data  []models.Workspace `json:"data"`
	Error *string            `json:"error"`
}

// @Summary		Allowed HTTP verbs
// @Tags			Workspaces
// @Success		204
// @Router			/v1/workspaces [options]
func OptionsWorkspaceList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Tags			Workspaces
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/workspaces/{id} [options]
func OptionsWorkspaceDetail(c *gin.Context) {
	resourceOptionsDetail[models.Workspace](c)
}

// @Summary		Create workspace
// @Tags			Workspaces
// @Accept			json
// @Produce		json
// @Success		201			{object}	WorkspaceResponse
// @Failure		400			{object}	WorkspaceResponse
// @Param			workspace	body		WorkspaceEditable	true	"Workspace"
// @Router			/v1/workspaces [post]
func CreateWorkspace(c *gin.Context) {
	var editable WorkspaceEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WorkspaceResponse{Error: &e})
		return
	}

	workspace := models.Workspace{Name: editable.Name, Note: editable.Note}
	err = models.DB.Create(&workspace).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WorkspaceResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, WorkspaceResponse{Data: &workspace})
}

// @Summary		List workspaces
// @Tags			Workspaces
// @Produce		json
// @Success		200	{object}	WorkspaceListResponse
// @Router			/v1/workspaces [get]
func GetWorkspaces(c *gin.Context) {
	var workspaces []models.Workspace
	err := models.DB.Order("name ASC").Find(&workspaces).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WorkspaceListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, WorkspaceListResponse{Data: workspaces})
}

// @Summary		Get workspace
// @Tags			Workspaces
// @Produce		json
// @Success		200	{object}	WorkspaceResponse
// @Failure		404	{object}	WorkspaceResponse
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/workspaces/{id} [get]
func GetWorkspace(c *gin.Context) {
	workspace, ok := getResource[models.Workspace](c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, WorkspaceResponse{Data: &workspace})
}

// @Summary		Delete workspace
// @Tags			Workspaces
// @Success		204
// @Failure		404	{object}	httpError
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/workspaces/{id} [delete]
func DeleteWorkspace(c *gin.Context) {
	deleteResource[models.Workspace](c)
}

// @Summary		Materialize budget series
// @Description	Creates the missing budgets of all workspace series up to the horizon date. Safe to call repeatedly.
// @Tags			Workspaces
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Param			id		path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			horizon	query	string	true	"Horizon date (YYYY-MM-DD)"
// @Router			/v1/workspaces/{id}/materialize [post]
func MaterializeWorkspace(c *gin.Context) {
	workspace, ok := getResource[models.Workspace](c)
	if !ok {
		return
	}

	horizon, err := types.ParseDate(c.Query("horizon"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	err = seriesService().Materialize(workspace.ID, horizon)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
