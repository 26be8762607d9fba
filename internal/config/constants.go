// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "go_5_vocab_cards"
	AppVersion = "0.3.0"
)

// デフォルト設定値
const (
	DefaultServerPort           = ":8080"
	DefaultDatabaseURL          = "sqlite://vocab_cards.db"
	DefaultLogLevel             = "info"
	DefaultSessionIdleTimeout   = 2 * time.Hour
	DefaultSessionPurgeInterval = 10 * time.Minute
	DefaultEnforceLevelUnlock   = true
	DefaultAuthEnabled          = true
	DefaultTokenTTL             = 24 * time.Hour
)

// 開発用の署名キー。auth.enabled=false のときだけ使われる。
const DevJWTSecretKey = "dev-only-insecure-secret"
