package handlers

import (
	"net/http"

	"go_5_vocab_cards/internal/middleware"
	"go_5_vocab_cards/internal/model"
	"go_5_vocab_cards/internal/service"
	"go_5_vocab_cards/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type StudyHandler struct {
	service service.StudyService
}

func NewStudyHandler(s service.StudyService) *StudyHandler {
	return &StudyHandler{service: s}
}

// StartSession は POST /api/study/{level}
func (h *StudyHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "StartSession")

	view, err := h.service.Start(r.Context(), middleware.OptionalUserIDFromContext(r.Context()), chi.URLParam(r, "level"))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, view, logger)
}

func (h *StudyHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "GetSession")
	id, ok := sessionIDParam(w, r)
	if !ok {
		return
	}

	view, err := h.service.Get(r.Context(), middleware.OptionalUserIDFromContext(r.Context()), id)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, view, logger)
}

func (h *StudyHandler) Answer(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "Answer")
	id, ok := sessionIDParam(w, r)
	if !ok {
		return
	}

	var req model.StudyAnswerRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	view, err := h.service.Answer(r.Context(), middleware.OptionalUserIDFromContext(r.Context()), id, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, view, logger)
}

// Skip は「bilmiyorum」ボタン
func (h *StudyHandler) Skip(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "Skip")
	id, ok := sessionIDParam(w, r)
	if !ok {
		return
	}

	var req model.StudySkipRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	view, err := h.service.Skip(r.Context(), middleware.OptionalUserIDFromContext(r.Context()), id, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, view, logger)
}

func (h *StudyHandler) Retry(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "Retry")
	id, ok := sessionIDParam(w, r)
	if !ok {
		return
	}

	view, err := h.service.Retry(r.Context(), middleware.OptionalUserIDFromContext(r.Context()), id)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, view, logger)
}

func (h *StudyHandler) Restart(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "Restart")
	id, ok := sessionIDParam(w, r)
	if !ok {
		return
	}

	view, err := h.service.Restart(r.Context(), middleware.OptionalUserIDFromContext(r.Context()), id)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, view, logger)
}

func (h *StudyHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "EndSession")
	id, ok := sessionIDParam(w, r)
	if !ok {
		return
	}

	if err := h.service.End(r.Context(), middleware.OptionalUserIDFromContext(r.Context()), id); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func sessionIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "session_id"))
	if err != nil {
		logger := middleware.GetLogger(r.Context())
		webutil.HandleError(w, logger, model.NewAppError("INVALID_SESSION_ID", "Geçersiz oturum kimliği.", "session_id", model.ErrInvalidInput))
		return uuid.Nil, false
	}
	return id, true
}
