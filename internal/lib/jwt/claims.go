// Package jwt implementa a geração e o parsing de tokens JWT com claims
// próprias do FinanceFlow (email, papel e uid do usuário).
package jwt

import (
	"time"
)

// Maker descreve a interface de geração e parsing de tokens JWT.
type Maker interface {
	// GenerateToken cria um token assinado com email, role e uid do usuário.
	GenerateToken(email, role, userUID string) (string, error)
	// ParseToken valida o token e devolve as claims extraídas.
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl implementa Maker usando uma chave secreta e um TTL fixo.
type MakerImpl struct {
	secretKey string        // Chave secreta para assinatura dos tokens
	tokenTTL  time.Duration // Tempo de vida do token
}

// NewJWTMaker cria um MakerImpl a partir da chave secreta e do TTL.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
