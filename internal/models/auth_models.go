package models

import "github.com/golang-jwt/jwt/v5"

// ClientClaims claims JWT токена вызывающего сервиса (платежного пайплайна)
type ClientClaims struct {
	ClientID string `json:"client_id"`
	jwt.RegisteredClaims
}
