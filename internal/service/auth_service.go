package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"go_5_vocab_cards/internal/config"
	"go_5_vocab_cards/internal/middleware"
	"go_5_vocab_cards/internal/model"
	"go_5_vocab_cards/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.LoginResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
}

type authService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
	cfg      *config.Config
}

// NewAuthService は AuthService の新しいインスタンスを生成します
func NewAuthService(db *gorm.DB, userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		db:       db,
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// Register は新しいユーザーを登録し、そのままログイン状態のトークンを返します
func (s *authService) Register(ctx context.Context, req *model.RegisterRequest) (*model.LoginResponse, error) {
	logger := middleware.GetLogger(ctx).With("username", req.Username)

	_, err := s.userRepo.FindByUsername(ctx, s.db, req.Username)
	if err == nil {
		logger.Warn("Username already exists")
		return nil, model.NewAppError("DUPLICATE_USERNAME", "Bu kullanıcı adı zaten alınmış.", "username", model.ErrConflict)
	}
	if !errors.Is(err, model.ErrNotFound) {
		logger.Error("Failed to check username existence", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Sunucuda bir hata oluştu.", "", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Failed to hash password", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Şifre işlenemedi.", "", err)
	}

	user := &model.User{
		Username:     req.Username,
		PasswordHash: string(hashedPassword),
	}
	if err := s.userRepo.Create(ctx, s.db, user); err != nil {
		// 同時登録による一意制約違反
		if errors.Is(err, model.ErrConflict) {
			logger.Warn("Conflict during user creation (race condition)", "error", err)
			return nil, model.NewAppError("DUPLICATE_USERNAME", "Bu kullanıcı adı zaten alınmış.", "username", model.ErrConflict)
		}
		logger.Error("Failed to create user in DB", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Kullanıcı oluşturulamadı.", "", err)
	}

	resp, err := s.issueToken(user)
	if err != nil {
		logger.Error("Failed to sign JWT", "error", err, "user_id", user.ID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Oturum oluşturulamadı.", "", err)
	}

	logger.Info("User registered", "user_id", user.ID)
	return resp, nil
}

// Login はユーザーを認証し、JWTを返します
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	logger := middleware.GetLogger(ctx).With("username", req.Username)

	user, err := s.userRepo.FindByUsername(ctx, s.db, req.Username)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Login failed: user not found")
			return nil, model.NewAppError("AUTHENTICATION_FAILED", "Kullanıcı adı veya şifre hatalı.", "", model.ErrUnauthorized)
		}
		logger.Error("Login failed: db error on FindByUsername", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Sunucuda bir hata oluştu.", "", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("Login failed: password mismatch", "user_id", user.ID)
		return nil, model.NewAppError("AUTHENTICATION_FAILED", "Kullanıcı adı veya şifre hatalı.", "", model.ErrUnauthorized)
	}

	resp, err := s.issueToken(user)
	if err != nil {
		logger.Error("Failed to sign JWT", "error", err, "user_id", user.ID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Oturum oluşturulamadı.", "", err)
	}

	logger.Info("Login successful", "user_id", user.ID)
	return resp, nil
}

func (s *authService) issueToken(user *model.User) (*model.LoginResponse, error) {
	now := time.Now()
	claims := &model.JWTCustomClaims{
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    config.AppName,
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWT.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		return nil, err
	}
	return &model.LoginResponse{
		ID:          user.ID,
		Username:    user.Username,
		AccessToken: signed,
	}, nil
}
