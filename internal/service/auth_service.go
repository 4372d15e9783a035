package service

import (
	"fmt"
	"time"

	"github.com/freshmart-next/internal/config"
	"github.com/freshmart-next/internal/constants"
	"github.com/freshmart-next/internal/models"
	"github.com/freshmart-next/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// UserJWTClaims are the claims carried by both access and refresh tokens.
// TokenType distinguishes the two; a refresh token can never be used to
// authorize a request and vice versa.
type UserJWTClaims struct {
	UserID    uint   `json:"user_id"`
	Username  string `json:"username"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenPair is the result of a successful credential exchange.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// AuthService exchanges credentials for JWT pairs and validates tokens.
type AuthService struct {
	cfg      config.JWTConfig
	userRepo repository.UserRepository
}

func NewAuthService(cfg config.JWTConfig, userRepo repository.UserRepository) *AuthService {
	return &AuthService{cfg: cfg, userRepo: userRepo}
}

// Authenticate checks the credential pair against the stored bcrypt hash.
// Unknown usernames and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Authenticate(username, password string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	if user.Status != constants.UserStatusActive {
		return nil, ErrUserDisabled
	}
	return user, nil
}

// IssueTokenPair signs a fresh access/refresh pair for the user and stamps
// the login time.
func (s *AuthService) IssueTokenPair(user *models.User) (*TokenPair, error) {
	access, err := s.sign(user, constants.TokenTypeAccess, time.Duration(s.cfg.AccessExpireHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	refresh, err := s.sign(user, constants.TokenTypeRefresh, time.Duration(s.cfg.RefreshExpireHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.UpdateLastLogin(user.ID, time.Now()); err != nil {
		return nil, err
	}
	return &TokenPair{Access: access, Refresh: refresh}, nil
}

// Refresh exchanges a valid refresh token for a new access token. The user
// must still exist and be active at refresh time.
func (s *AuthService) Refresh(refreshToken string) (string, error) {
	claims, err := s.ParseToken(refreshToken)
	if err != nil {
		return "", err
	}
	if claims.TokenType != constants.TokenTypeRefresh {
		return "", ErrTokenInvalid
	}
	user, err := s.userRepo.GetByID(claims.UserID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrTokenInvalid
	}
	if user.Status != constants.UserStatusActive {
		return "", ErrUserDisabled
	}
	return s.sign(user, constants.TokenTypeAccess, time.Duration(s.cfg.AccessExpireHours)*time.Hour)
}

// ParseToken validates the signature and expiry and returns the claims.
func (s *AuthService) ParseToken(tokenString string) (*UserJWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &UserJWTClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalid
	}
	claims, ok := token.Claims.(*UserJWTClaims)
	if !ok {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

func (s *AuthService) sign(user *models.User, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := UserJWTClaims{
		UserID:    user.ID,
		Username:  user.Username,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.SecretKey))
}
