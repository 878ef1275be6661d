package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-subjects/internal/logger"
	"github.com/MKhiriev/go-subjects/internal/service"
	"github.com/MKhiriev/go-subjects/internal/store"
	"github.com/MKhiriev/go-subjects/internal/utils"
	"github.com/MKhiriev/go-subjects/internal/validators"
	"github.com/MKhiriev/go-subjects/models"
)

// errorStatuses is checked in order; the first sentinel matched with
// errors.Is wins. Errors may wrap several sentinels (a storage failure
// caused by a deadline), so the order is significant.
var errorStatuses = []struct {
	target error
	status int
}{
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrRouteNotFound, http.StatusNotFound},
	{ErrMethodNotAllowed, http.StatusMethodNotAllowed},

	{service.ErrInvalidInput, http.StatusBadRequest},
	{models.ErrRequiredField, http.StatusBadRequest},
	{validators.ErrInvalidField, http.StatusBadRequest},
	{store.ErrInvalidID, http.StatusBadRequest},

	{store.ErrSubjectNotFound, http.StatusNotFound},

	{store.ErrStorageUnavailable, http.StatusServiceUnavailable},

	{context.DeadlineExceeded, http.StatusGatewayTimeout},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeError renders err as {"message": ...} with the mapped status.
// Unclassified errors get a generic message; the cause is only logged.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	_, _ = utils.WriteJSON(w, models.ErrorResponse{Message: message}, status)
}
