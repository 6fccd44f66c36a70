package v1

import (
	"errors"
	"net/http"

	"github.com/okane-app/backend/internal/models"
	ok_uuid "github.com/okane-app/backend/internal/uuid"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

type URIID struct {
	ID ok_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// status returns the appropriate HTTP status for an error returned by
// the models or series packages.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}
