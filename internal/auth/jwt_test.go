package auth

import (
	"testing"
	"time"

	"arklight/config"

	"github.com/stretchr/testify/assert"
)

func jwtConfig() *config.JWTConfig {
	return &config.JWTConfig{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
		AccessExpiry:  time.Hour,
		RefreshExpiry: 24 * time.Hour,
		Issuer:        "arklight-test",
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	cfg := jwtConfig()
	token, err := GenerateAccessToken(cfg, 7, "admin@arkoflight.org")
	assert.NoError(t, err)

	claims, err := ParseAccessToken(cfg, token)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), claims.AdminID)
	assert.Equal(t, "admin@arkoflight.org", claims.Email)
	assert.Equal(t, "arklight-test", claims.Issuer)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	cfg := jwtConfig()
	token, err := GenerateRefreshToken(cfg, 7)
	assert.NoError(t, err)

	id, err := ParseRefreshToken(cfg, token)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), id)
}

func TestParseAccessTokenRejectsWrongSecret(t *testing.T) {
	cfg := jwtConfig()
	token, err := GenerateAccessToken(cfg, 7, "admin@arkoflight.org")
	assert.NoError(t, err)

	other := jwtConfig()
	other.AccessSecret = "different"
	_, err = ParseAccessToken(other, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseAccessTokenRejectsRefreshToken(t *testing.T) {
	cfg := jwtConfig()
	token, err := GenerateRefreshToken(cfg, 7)
	assert.NoError(t, err)

	_, err = ParseAccessToken(cfg, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseExpiredToken(t *testing.T) {
	cfg := jwtConfig()
	cfg.AccessExpiry = -time.Minute
	token, err := GenerateAccessToken(cfg, 7, "admin@arkoflight.org")
	assert.NoError(t, err)

	_, err = ParseAccessToken(cfg, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseGarbage(t *testing.T) {
	_, err := ParseAccessToken(jwtConfig(), "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseRefreshToken(jwtConfig(), "")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
