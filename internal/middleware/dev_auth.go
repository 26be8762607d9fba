package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"go_5_vocab_cards/internal/model"
	"go_5_vocab_cards/internal/webutil"
)

// DevUserContextMiddleware は開発時用ミドルウェアです。
// X-User-ID ヘッダーの数値をそのままユーザーIDとしてコンテキストに設定します。
// DBでのユーザー存在チェックは行いません。
func DevUserContextMiddleware(required bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			raw := r.Header.Get("X-User-ID")
			if raw == "" {
				if !required {
					next.ServeHTTP(w, r)
					return
				}
				logger.Warn("[DEV AUTH] X-User-ID header missing")
				appErr := model.NewAppError("UNAUTHORIZED", "[DEV] X-User-ID başlığı gerekli.", "", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}

			id, err := strconv.ParseUint(raw, 10, 64)
			if err != nil || id == 0 {
				logger.Warn("[DEV AUTH] Invalid X-User-ID format", slog.String("x_user_id", raw))
				appErr := model.NewAppError("UNAUTHORIZED", "[DEV] X-User-ID geçersiz.", "", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}

			logger.Debug("[DEV AUTH] User ID set to context (no validation)", slog.Uint64("user_id", id))
			ctx := context.WithValue(r.Context(), model.UserIDKey, uint(id))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
