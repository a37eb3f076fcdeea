// Package jwt implementa a geração e o parsing dos tokens de acesso do
// painel administrativo.
package jwt

import (
	"time"
)

// Maker descreve a interface de geração e parsing de tokens.
type Maker interface {
	GenerateToken(username, role string) (string, error)
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl implementa Maker com uma chave secreta e um tempo de vida fixo.
type MakerImpl struct {
	secretKey string
	tokenTTL  time.Duration
}

// NewJWTMaker cria um MakerImpl a partir da chave secreta e do TTL.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
