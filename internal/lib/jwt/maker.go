package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CustomClaims descreve os dados de usuário carregados dentro do JWT.
type CustomClaims struct {
	Email                string `json:"email"`    // Email do usuário
	Role                 string `json:"role"`     // Papel do usuário (admin ou user)
	UserUID              string `json:"user_uid"` // Identificador único do usuário
	jwt.RegisteredClaims        // Claims padrão (ExpiresAt, IssuedAt etc.)
}

// GenerateToken cria um token HS256 com as claims informadas.
//
// O tempo de vida do token é definido pelo campo tokenTTL do Maker.
func (j *MakerImpl) GenerateToken(email, role, userUID string) (string, error) {
	claims := CustomClaims{
		Email:   email,
		Role:    role,
		UserUID: userUID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(j.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// ParseToken valida a assinatura e a expiração do token e devolve as
// claims quando o token é válido.
func (j *MakerImpl) ParseToken(tokenStr string) (*CustomClaims, error) {
	const op = "jwt.ParseToken"
	token, err := jwt.ParseWithClaims(tokenStr, &CustomClaims{}, func(_ *jwt.Token) (any, error) {
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: invalid token", op)
	}
	return claims, nil
}
