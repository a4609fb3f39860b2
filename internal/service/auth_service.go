package service

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"fraud-engine/internal/custom_err"
	"fraud-engine/internal/models"
)

// Auth issues and validates bearer tokens for calling services.
type Auth interface {
	IssueToken(clientID string) (string, error)
	ValidateToken(tokenString string) (*models.ClientClaims, error)
}

type AuthService struct {
	jwtSecret     []byte
	jwtExpiration time.Duration
	issuer        string
	log           *slog.Logger
}

func NewAuthService(jwtSecret string, jwtExpiration time.Duration, issuer string, log *slog.Logger) Auth {
	return &AuthService{
		jwtSecret:     []byte(jwtSecret),
		jwtExpiration: jwtExpiration,
		issuer:        issuer,
		log:           log,
	}
}

func (s *AuthService) IssueToken(clientID string) (string, error) {
	const op = "service.IssueToken"

	if clientID == "" {
		return "", fmt.Errorf("%w: client id is required", custom_err.ErrInvalidInput)
	}

	now := time.Now()
	claims := models.ClientClaims{
		ClientID: clientID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   clientID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("token issued", slog.String("client_id", clientID), slog.Time("expires_at", claims.ExpiresAt.Time))
	return token, nil
}

func (s *AuthService) ValidateToken(tokenString string) (*models.ClientClaims, error) {
	claims := &models.ClientClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	}, jwt.WithIssuer(s.issuer))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, custom_err.ErrTokenExpired
		}
		if errors.Is(err, jwt.ErrTokenNotValidYet) {
			return nil, custom_err.ErrTokenNotActive
		}

		return nil, custom_err.ErrInvalidToken
	}

	if !token.Valid || claims.ClientID == "" {
		return nil, custom_err.ErrInvalidToken
	}

	return claims, nil
}
