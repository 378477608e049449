package service

import (
	"errors"
	"fmt"
	"time"

	"compass-quiz/internal/domain"
	"compass-quiz/internal/dto"
	"compass-quiz/internal/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const tokenIssuer = "compass-quiz"

// TokenService issues and validates session ownership tokens.
type TokenService interface {
	Issue(sessionID string) (string, error)
	Validate(tokenString string) (*dto.SessionClaims, error)
}

type tokenServiceImpl struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) TokenService {
	return &tokenServiceImpl{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (s *tokenServiceImpl) Issue(sessionID string) (string, error) {
	if sessionID == "" {
		return "", domain.NewInvalidInputError("session id is required")
	}
	now := s.now()
	claims := dto.SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    tokenIssuer,
			Subject:   sessionID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", domain.NewInternalError("failed to sign session token", err)
	}
	return signed, nil
}

func (s *tokenServiceImpl) Validate(tokenString string) (*dto.SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &dto.SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			logger.Get().Debug("Session token expired", zap.Error(err))
			return nil, domain.NewError(domain.CodeUnauthorized, "session token expired", err)
		}
		logger.Get().Debug("Session token rejected", zap.Error(err))
		return nil, domain.NewError(domain.CodeUnauthorized, "invalid session token", err)
	}

	claims, ok := token.Claims.(*dto.SessionClaims)
	if !ok || !token.Valid || claims.SessionID == "" || claims.Subject != claims.SessionID {
		return nil, domain.NewUnauthorizedError("invalid session token")
	}
	return claims, nil
}
