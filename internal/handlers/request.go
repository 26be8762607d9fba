package handlers

import (
	"log/slog"
	"net/http"

	"go_5_vocab_cards/internal/model"
	"go_5_vocab_cards/internal/webutil"
)

// decodeAndValidate はボディをデコードして検証する。失敗時はレスポンスを書いて false を返す。
func decodeAndValidate(w http.ResponseWriter, r *http.Request, logger *slog.Logger, dst interface{}) bool {
	if err := webutil.DecodeJSONBody(r, dst); err != nil {
		logger.Warn("Failed to decode request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "İstek gövdesi geçersiz.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return false
	}
	if err := webutil.ValidateStruct(dst); err != nil {
		logger.Warn("Validation failed", "error", err)
		webutil.HandleError(w, logger, err)
		return false
	}
	return true
}
