package services

import (
	"context"
	"errors"
	"log"
	"time"

	"brewhouse/config"
	"brewhouse/models"
	"brewhouse/repositories"
	"brewhouse/utils"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
)

type AuthService struct {
	userRepo  *repositories.UserRepository
	tokenRepo *repositories.TokenRepository
}

func NewAuthService() *AuthService {
	return &AuthService{
		userRepo:  repositories.NewUserRepository(),
		tokenRepo: repositories.NewTokenRepository(),
	}
}

func (s *AuthService) Register(req models.RegisterRequest) (*models.LoginResponse, error) {
	existingUser, _ := s.userRepo.FindByEmail(req.Email)
	if existingUser != nil {
		return nil, errors.New("email already registered")
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = "customer"
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashedPassword,
		Role:     role,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return s.issueTokens(user)
}

func (s *AuthService) Login(req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	valid, err := utils.VerifyPassword(user.Password, req.Password)
	if err != nil || !valid {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

// Refresh exchanges a stored refresh token for a new access token. The
// refresh token itself stays valid until its own expiry; only the access
// token is replaced.
func (s *AuthService) Refresh(refreshToken string) (string, error) {
	rt, err := s.tokenRepo.Find(refreshToken)
	if err != nil {
		return "", ErrInvalidRefreshToken
	}

	if rt.IsExpired() {
		s.tokenRepo.Delete(rt.Token)
		return "", ErrInvalidRefreshToken
	}

	user, err := s.userRepo.FindByID(rt.UserID)
	if err != nil {
		return "", ErrInvalidRefreshToken
	}

	return utils.GenerateToken(user.ID, user.Email, user.Role)
}

// Logout revokes every refresh token issued to the user. The access token
// stays valid until it expires on its own.
func (s *AuthService) Logout(userID int) error {
	return s.tokenRepo.DeleteByUser(userID)
}

// StartTokenSweep purges expired refresh tokens in the background. Refresh
// deletes an expired token on use, but tokens of users who never refresh
// would otherwise accumulate.
func (s *AuthService) StartTokenSweep(ctx context.Context, interval time.Duration) {
	go sweepEvery(ctx, interval, s.tokenRepo.DeleteExpired)
}

// sweepEvery calls purge immediately and then on every tick until ctx is
// cancelled.
func sweepEvery(ctx context.Context, interval time.Duration, purge func() error) {
	if err := purge(); err != nil {
		log.Printf("Refresh token sweep failed: %v", err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := purge(); err != nil {
				log.Printf("Refresh token sweep failed: %v", err)
			}
		}
	}
}

func (s *AuthService) issueTokens(user *models.User) (*models.LoginResponse, error) {
	accessToken, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	refreshToken := &models.RefreshToken{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(config.AppConfig.RefreshTokenTTL),
	}
	if err := s.tokenRepo.Create(refreshToken); err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		Token:        accessToken,
		RefreshToken: refreshToken.Token,
		User:         *user,
	}, nil
}
