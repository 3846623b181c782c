package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	maker := NewJWTMaker("test-secret", time.Hour)

	token, err := maker.GenerateToken("ana@example.com", "user", "uid-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := maker.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
	assert.Equal(t, "uid-123", claims.UserUID)
}

func TestParseToken_SegredoErrado(t *testing.T) {
	maker := NewJWTMaker("test-secret", time.Hour)
	outro := NewJWTMaker("outro-secret", time.Hour)

	token, err := maker.GenerateToken("ana@example.com", "user", "uid-123")
	require.NoError(t, err)

	_, err = outro.ParseToken(token)
	assert.Error(t, err)
}

func TestParseToken_Expirado(t *testing.T) {
	maker := NewJWTMaker("test-secret", -time.Minute)

	token, err := maker.GenerateToken("ana@example.com", "user", "uid-123")
	require.NoError(t, err)

	_, err = maker.ParseToken(token)
	assert.Error(t, err)
}

func TestParseToken_TokenMalformado(t *testing.T) {
	maker := NewJWTMaker("test-secret", time.Hour)

	_, err := maker.ParseToken("not-a-jwt")
	assert.Error(t, err)
}
