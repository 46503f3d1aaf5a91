package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NureKulabukhovaTaisiia/PyroSafe/internal/infrastructure/config"
)

func TestGenerateAndExtractToken(t *testing.T) {
	svc := NewJWTService(&config.Config{JWTSecretKey: "test-secret"})

	token, err := svc.GenerateToken(7, "guard", "operator")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ExtractClaims(token)
	require.NoError(t, err)
	assert.EqualValues(t, 7, claims.UserID)
	assert.Equal(t, "guard", claims.Username)
	assert.Equal(t, "operator", claims.Role)
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	issuer := NewJWTService(&config.Config{JWTSecretKey: "key-one"})
	verifier := NewJWTService(&config.Config{JWTSecretKey: "key-two"})

	token, err := issuer.GenerateToken(7, "guard", "operator")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}
