package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"go_5_vocab_cards/internal/config"
	"go_5_vocab_cards/internal/model"
	"go_5_vocab_cards/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
)

var errNoToken = errors.New("authorization header missing")

// JWTAuthMiddleware は Bearer トークンを検証し、必須の認証を行います。
func JWTAuthMiddleware(cfg config.JWTConfig) func(http.Handler) http.Handler {
	return jwtMiddleware(cfg, true)
}

// OptionalJWTAuthMiddleware はトークンがあれば検証し、無ければ匿名として通します。
// トークンが付いていて不正な場合は 401 を返す。
func OptionalJWTAuthMiddleware(cfg config.JWTConfig) func(http.Handler) http.Handler {
	return jwtMiddleware(cfg, false)
}

func jwtMiddleware(cfg config.JWTConfig, required bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			userID, err := userIDFromBearer(r.Header.Get("Authorization"), cfg.SecretKey)
			if errors.Is(err, errNoToken) && !required {
				next.ServeHTTP(w, r)
				return
			}
			if err != nil {
				logger.Warn("JWT auth failed", slog.Any("error", err))
				appErr := model.NewAppError("UNAUTHORIZED", "Oturum geçersiz. Lütfen tekrar giriş yapın.", "", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}

			ctx := context.WithValue(r.Context(), model.UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// userIDFromBearer は "Bearer {token}" を検証して sub のユーザーIDを返す
func userIDFromBearer(authHeader, secret string) (uint, error) {
	if authHeader == "" {
		return 0, errNoToken
	}
	headerParts := strings.Split(authHeader, " ")
	if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
		return 0, errors.New("invalid authorization header format")
	}

	claims := &model.JWTCustomClaims{}
	// 署名と有効期限(exp)の両方を検証
	_, err := jwt.ParseWithClaims(headerParts[1], claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, err
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return 0, errors.New("subject (sub) claim missing")
	}
	id, err := strconv.ParseUint(subject, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid subject (sub) format")
	}
	return uint(id), nil
}

// GetUserIDFromContext は認証済みユーザーIDを取得します。
func GetUserIDFromContext(ctx context.Context) (uint, error) {
	value, ok := ctx.Value(model.UserIDKey).(uint)
	if !ok {
		return 0, model.NewAppError("UNAUTHORIZED", "Kimlik bilgisi bulunamadı.", "", model.ErrUnauthorized)
	}
	return value, nil
}

// OptionalUserIDFromContext は匿名の場合 nil を返します。
func OptionalUserIDFromContext(ctx context.Context) *uint {
	if value, ok := ctx.Value(model.UserIDKey).(uint); ok {
		return &value
	}
	return nil
}
