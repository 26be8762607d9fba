package handlers

import (
	"net/http"

	"go_5_vocab_cards/internal/middleware"
	"go_5_vocab_cards/internal/model"
	"go_5_vocab_cards/internal/service"
	"go_5_vocab_cards/internal/webutil"
)

type ProgressHandler struct {
	service service.ProgressService
}

func NewProgressHandler(s service.ProgressService) *ProgressHandler {
	return &ProgressHandler{service: s}
}

// RecordAnswer は POST /api/progress。匿名でも記録する (user_id は NULL)。
func (h *ProgressHandler) RecordAnswer(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "RecordAnswer")

	var req model.RecordAnswerRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	rec := model.AnswerRecord{
		UserID:    middleware.OptionalUserIDFromContext(r.Context()),
		WordID:    req.WordID,
		IsCorrect: *req.IsCorrect,
	}
	if req.UserAnswer != nil {
		rec.UserAnswer = *req.UserAnswer
	}
	if err := h.service.RecordAnswer(r.Context(), rec); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, map[string]bool{"recorded": true}, logger)
}

// GetStats は GET /api/progress
func (h *ProgressHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "GetStats")

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	stats, err := h.service.GetStats(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, stats, logger)
}

// GetLevelProgress は GET /api/level-progress
func (h *ProgressHandler) GetLevelProgress(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "GetLevelProgress")

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	progresses, err := h.service.GetLevelProgress(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if progresses == nil {
		progresses = []*model.LevelProgress{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, progresses, logger)
}

// PostLevelProgress は POST /api/level-progress
func (h *ProgressHandler) PostLevelProgress(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "PostLevelProgress")

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.LevelProgressRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}
	level, err := model.ParseLevel(req.Level)
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("INVALID_LEVEL", "Geçersiz seviye.", "level", model.ErrInvalidInput))
		return
	}

	saved, err := h.service.RecordLevelProgress(r.Context(), model.LevelRecord{
		UserID:    userID,
		Level:     level,
		Score:     req.Score,
		Completed: req.Completed,
	})
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, saved, logger)
}

// GetLevels は GET /api/levels。ログインしていれば解放状態を反映する。
func (h *ProgressHandler) GetLevels(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "GetLevels")

	levels, err := h.service.GetLevels(r.Context(), middleware.OptionalUserIDFromContext(r.Context()))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, levels, logger)
}
