package auth

import (
	"testing"
	"time"

	"nearby/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	return cfg
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	assert.NoError(t, err)

	return signed
}

func TestJWTService_ValidateAccessToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	userID := uuid.New()
	tokenString := signToken(t, "test_access_secret_key_very_long_for_testing", jwt.MapClaims{
		"sub": userID.String(),
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(15 * time.Minute).Unix(),
	})

	got, err := jwtService.ValidateAccessToken(tokenString)
	assert.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	got, err := jwtService.ValidateAccessToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, got)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	tokenString := signToken(t, "test_access_secret_key_very_long_for_testing", jwt.MapClaims{
		"sub": uuid.New().String(),
		"iat": time.Now().Add(-time.Hour).Unix(),
		"exp": time.Now().Add(-30 * time.Minute).Unix(),
	})

	got, err := jwtService.ValidateAccessToken(tokenString)
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, got)
}

func TestJWTService_WrongSecret(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	tokenString := signToken(t, "some_other_secret_entirely", jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(15 * time.Minute).Unix(),
	})

	got, err := jwtService.ValidateAccessToken(tokenString)
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, got)
}

func TestJWTService_SubjectNotAUserID(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	tokenString := signToken(t, "test_access_secret_key_very_long_for_testing", jwt.MapClaims{
		"sub": "not-a-uuid",
		"exp": time.Now().Add(15 * time.Minute).Unix(),
	})

	got, err := jwtService.ValidateAccessToken(tokenString)
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, got)
	assert.Contains(t, err.Error(), "subject is not a user ID")
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := &config.Config{}

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt access secret must be provided")
}
