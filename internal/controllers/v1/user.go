package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/okane-app/backend/internal/httputil"
	"github.com/okane-app/backend/internal/models"
)

// RegisterUserRoutes registers the routes for users with the
// RouterGroup that is passed.
func RegisterUserRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsUserList)
		r.GET("", GetUsers)
		r.POST("", CreateUser)
	}

	{
		r.OPTIONS("/:id", OptionsUserDetail)
		r.GET("/:id", GetUser)
		r.DELETE("/:id", DeleteUser)
	}
}

type UserEditable struct {
	Name        string    `json:"name" example:"Sam"`
	WorkspaceID uuid.UUID `json:"workspaceId"`
}

type UserResponse struct {
	Data  *models.User `json:"data"`
	Error *string      `json:"error"`
}

type UserListResponse struct {
	Data  []models.User `json:"data"`
	Error *string       `json:"error"`
}

// @Summary		Allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Router			/v1/users [options]
func OptionsUserList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/users/{id} [options]
func OptionsUserDetail(c *gin.Context) {
	resourceOptionsDetail[models.User](c)
}

// @Summary		Create user
// @Tags			Users
// @Accept			json
// @Produce		json
// @Success		201		{object}	UserResponse
// @Failure		400		{object}	UserResponse
// @Param			user	body		UserEditable	true	"User"
// @Router			/v1/users [post]
func CreateUser(c *gin.Context) {
	var editable UserEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{Error: &e})
		return
	}

	user := models.User{Name: editable.Name, WorkspaceID: editable.WorkspaceID}
	err = models.DB.Create(&user).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, UserResponse{Data: &user})
}

// @Summary		List users
// @Tags			Users
// @Produce		json
// @Success		200			{object}	UserListResponse
// @Param			workspace	query		string	false	"Filter by workspace ID"
// @Router			/v1/users [get]
func GetUsers(c *gin.Context) {
	q := models.DB.Order("name ASC")
	if workspace := c.Query("workspace"); workspace != "" {
		q = q.Where("workspace_id = ?", workspace)
	}

	var users []models.User
	err := q.Find(&users).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, UserListResponse{Data: users})
}

// @Summary		Get user
// @Tags			Users
// @Produce		json
// @Success		200	{object}	UserResponse
// @Failure		404	{object}	UserResponse
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/users/{id} [get]
func GetUser(c *gin.Context) {
	user, ok := getResource[models.User](c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, UserResponse{Data: &user})
}

// @Summary		Delete user
// @Tags			Users
// @Success		204
// @Failure		404	{object}	httpError
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/users/{id} [delete]
func DeleteUser(c *gin.Context) {
	deleteResource[models.User](c)
}
