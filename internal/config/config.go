// internal/config/config.go
package config

import (
	"errors"
	"io/fs"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type AppConfig struct {
	// 学習セッションを放置したとみなすまでの時間
	SessionIdleTimeout time.Duration `mapstructure:"session_idle_timeout"`
	// 放置セッションの掃除間隔
	SessionPurgeInterval time.Duration `mapstructure:"session_purge_interval"`
	// ログイン中ユーザーは前のレベルを完了するまで次のレベルに入れない
	EnforceLevelUnlock bool `mapstructure:"enforce_level_unlock"`
	// 出題方向の乱数シード (0 = 時刻)
	RandomSeed int64 `mapstructure:"random_seed"`
}

type AuthConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type JWTConfig struct {
	SecretKey string        `mapstructure:"secret_key"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	App      AppConfig      `mapstructure:"app"`
	Auth     AuthConfig     `mapstructure:"auth"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Log      LogConfig      `mapstructure:"log"`
}

var Cfg Config

func LoadConfig(path string) error {
	// .env があれば先に環境変数へ読み込む (無くてもエラーにしない)
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Warning: failed to load .env file: %s", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath(".")

	v.SetEnvPrefix("APP") // 例: APP_SERVER_PORT
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.BindEnv("database.url", "DATABASE_URL")
	v.BindEnv("auth.enabled", "AUTH_ENABLED")
	v.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")

	// --- デフォルト値の設定 ---
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("database.url", DefaultDatabaseURL)
	v.SetDefault("app.session_idle_timeout", DefaultSessionIdleTimeout)
	v.SetDefault("app.session_purge_interval", DefaultSessionPurgeInterval)
	v.SetDefault("app.enforce_level_unlock", DefaultEnforceLevelUnlock)
	v.SetDefault("auth.enabled", DefaultAuthEnabled)
	v.SetDefault("jwt.token_ttl", DefaultTokenTTL)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Authorization", "Content-Type", "X-User-ID"})
	v.SetDefault("cors.max_age", 300)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	if cfg.JWT.SecretKey == "" {
		if cfg.Auth.Enabled {
			return errors.New("jwt.secret_key must be set when auth is enabled")
		}
		log.Println("Warning: JWT secret key is not set, using insecure development key")
		cfg.JWT.SecretKey = DevJWTSecretKey
	}

	Cfg = cfg

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Session Idle Timeout: %s", Cfg.App.SessionIdleTimeout)
	log.Printf("Auth Enabled: %t", Cfg.Auth.Enabled)

	return nil
}
