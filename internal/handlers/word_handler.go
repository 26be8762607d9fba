package handlers

import (
	"net/http"

	"go_5_vocab_cards/internal/middleware"
	"go_5_vocab_cards/internal/model"
	"go_5_vocab_cards/internal/service"
	"go_5_vocab_cards/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type WordHandler struct {
	service service.WordService
}

func NewWordHandler(s service.WordService) *WordHandler {
	return &WordHandler{service: s}
}

// GetWordsByLevel は GET /api/words/{level}
func (h *WordHandler) GetWordsByLevel(w http.ResponseWriter, r *http.Request) {
	level := chi.URLParam(r, "level")
	logger := middleware.GetLogger(r.Context()).With("handler", "GetWordsByLevel", "level", level)

	words, err := h.service.GetWordsByLevel(r.Context(), level)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if words == nil {
		words = []model.Word{}
	}

	logger.Info("Words listed successfully", "count", len(words))
	webutil.RespondWithJSON(w, http.StatusOK, words, logger)
}
