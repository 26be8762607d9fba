package model

import (
	"github.com/golang-jwt/jwt/v5"
)

// LoginRequest はログインAPIのリクエストボディ
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse はログイン・登録成功時のレスポンス
type LoginResponse struct {
	ID          uint   `json:"id"`
	Username    string `json:"username"`
	AccessToken string `json:"access_token"`
}

// JWTCustomClaims はJWTに含めるクレーム。sub にユーザーIDを入れる。
type JWTCustomClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}
