package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-subjects/internal/logger"
	"github.com/MKhiriev/go-subjects/internal/utils"
	"github.com/MKhiriev/go-subjects/models"
)

func (h *Handler) createSubject(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var subject models.Subject
	if err := utils.ReadJSON(w, r, &subject); err != nil {
		log.Err(err).Str("func", "*Handler.createSubject").Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}
	// identifiers are always assigned by the store
	subject.ID = ""

	created, err := h.services.SubjectService.CreateSubject(r.Context(), subject)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("subject_id", created.ID).Msg("subject created")
	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listSubjects(w http.ResponseWriter, r *http.Request) {
	subjects, err := h.services.SubjectService.ListSubjects(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if subjects == nil {
		subjects = []models.Subject{}
	}

	_, _ = utils.WriteJSON(w, subjects, http.StatusOK)
}

func (h *Handler) getSubject(w http.ResponseWriter, r *http.Request) {
	subject, err := h.services.SubjectService.GetSubject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, subject, http.StatusOK)
}

func (h *Handler) updateSubject(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	var update models.SubjectUpdate
	if err := utils.ReadJSON(w, r, &update); err != nil {
		log.Err(err).Str("func", "*Handler.updateSubject").Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}

	updated, err := h.services.SubjectService.UpdateSubject(r.Context(), id, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("subject_id", id).Msg("subject updated")
	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteSubject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.services.SubjectService.DeleteSubject(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("subject_id", id).Msg("subject deleted")
	_, _ = utils.WriteJSON(w, models.DeleteResponse{ID: id, Deleted: true}, http.StatusOK)
}

func (h *Handler) getSubjectUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.SubjectService.GetUsersBySubjectID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if users == nil {
		users = []models.User{}
	}

	_, _ = utils.WriteJSON(w, users, http.StatusOK)
}
