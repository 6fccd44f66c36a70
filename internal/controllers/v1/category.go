package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/okane-app/backend/internal/httputil"
	"github.com/okane-app/backend/internal/models"
)

// RegisterCategoryRoutes registers the routes for categories with the
// RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsCategoryList)
		r.GET("", GetCategories)
		r.POST("", CreateCategory)
	}

	{
		r.OPTIONS("/:id", OptionsCategoryDetail)
		r.GET("/:id", GetCategory)
		r.DELETE("/:id", DeleteCategory)
	}
}

type CategoryEditable struct {
	Name        string     `json:"name" example:"Groceries"`
	WorkspaceID uuid.UUID  `json:"workspaceId"`
	ParentID    *uuid.UUID `json:"parentId"`
}

type CategoryResponse struct {
	Data  *models.Category `json:"data"`
	Error *string          `json:"error"`
}

type CategoryListResponse struct {
	Data  []models.Category `json:"data"`
	Error *string           `json:"error"`
}

// @Summary		Allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [options]
func OptionsCategoryDetail(c *gin.Context) {
	resourceOptionsDetail[models.Category](c)
}

// @Summary		Create category
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		201			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories [post]
func CreateCategory(c *gin.Context) {
	var editable CategoryEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	category := models.Category{
		Name:        editable.Name,
		WorkspaceID: editable.WorkspaceID,
		ParentID:    editable.ParentID,
	}

	err = models.DB.Create(&category).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, CategoryResponse{Data: &category})
}

// @Summary		List categories
// @Tags			Categories
// @Produce		json
// @Success		200			{object}	CategoryListResponse
// @Param			workspace	query		string	false	"Filter by workspace ID"
// @Param			parent		query		string	false	"Filter by parent category ID"
// @Router			/v1/categories [get]
func GetCategories(c *gin.Context) {
	q := models.DB.Order("name ASC")
	if workspace := c.Query("workspace"); workspace != "" {
		q = q.Where("workspace_id = ?", workspace)
	}

	if parent := c.Query("parent"); parent != "" {
		q = q.Where("parent_id = ?", parent)
	}

	var categories []models.Category
	err := q.Find(&categories).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: categories})
}

// @Summary		Get category
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryResponse
// @Failure		404	{object}	CategoryResponse
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [get]
func GetCategory(c *gin.Context) {
	category, ok := getResource[models.Category](c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, CategoryResponse{Data: &category})
}

// @Summary		Delete category
// @Tags			Categories
// @Success		204
// @Failure		404	{object}	httpError
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	deleteResource[models.Category](c)
}
