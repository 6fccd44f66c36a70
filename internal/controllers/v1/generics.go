package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/okane-app/backend/internal/httputil"
	"github.com/okane-app/backend/internal/models"
	"github.com/okane-app/backend/internal/multicurrency"
	"github.com/okane-app/backend/internal/report"
	"github.com/okane-app/backend/internal/series"
)

// seriesService wires the series engine against the global database
// connection and the rate backed converter.
func seriesService() *series.Service {
	return series.NewService(models.DB, multicurrency.NewRateConverter())
}

func reportService() *report.Service {
	return report.NewService(models.DB, seriesService())
}

// getResource binds the id URI parameter and loads the resource. On
// failure the error response has already been written.
func getResource[R any](c *gin.Context) (R, bool) {
	var resource R

	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return resource, false
	}

	err = models.DB.First(&resource, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return resource, false
	}

	return resource, true
}

// resourceOptionsDetail answers an OPTIONS request for a resource that
// supports GET, PATCH and DELETE, with a 404 for unknown ids.
func resourceOptionsDetail[R any](c *gin.Context) {
	_, ok := getResource[R](c)
	if !ok {
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// deleteResource deletes a resource by id.
func deleteResource[R any](c *gin.Context) {
	resource, ok := getResource[R](c)
	if !ok {
		return
	}

	err := models.DB.Delete(&resource).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
