package service

import (
	"context"
	"fmt"
	"time"

	"quizgrade/internal/config"
	"quizgrade/internal/domain"
	"quizgrade/internal/dto"
	"quizgrade/internal/logger"
	"quizgrade/internal/util"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const tokenTypeSession = "session"

// AuthService issues and validates anonymous examinee sessions. There are no
// user accounts: a session token only proves continuity between saving a
// draft and submitting it.
type AuthService interface {
	CreateSession(ctx context.Context) (*dto.SessionResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
}

type authService struct {
	secretKey  string
	sessionTTL time.Duration
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(cfg config.JWTConfig) AuthService {
	return &authService{
		secretKey:  cfg.SecretKey,
		sessionTTL: cfg.SessionTTL,
	}
}

// CreateSession mints a fresh session ID and a signed token for it.
func (s *authService) CreateSession(ctx context.Context) (*dto.SessionResponse, error) {
	sessionID := util.NewULID()
	now := time.Now()
	expiresAt := now.Add(s.sessionTTL)

	claims := &dto.AuthClaims{
		SessionID: sessionID,
		TokenType: tokenTypeSession,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secretKey))
	if err != nil {
		return nil, domain.NewInternalError("failed to sign session token", err)
	}

	logger.Get().Debug("issued examinee session", zap.String("sessionID", sessionID))

	return &dto.SessionResponse{
		SessionID: sessionID,
		Token:     signed,
		ExpiresAt: expiresAt,
	}, nil
}

// ValidateToken parses and verifies a session token, returning its claims.
func (s *authService) ValidateToken(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	claims := &dto.AuthClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
	if err != nil || !token.Valid {
		return nil, domain.NewUnauthorizedError("invalid or expired session token")
	}
	if claims.TokenType != tokenTypeSession || claims.SessionID == "" {
		return nil, domain.NewUnauthorizedError("not a session token")
	}
	return claims, nil
}
