package auth

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	tm, err := NewTokenManager("secret", time.Hour)
	require.NoError(t, err)

	token, err := tm.CreateToken(42, "alice")
	require.NoError(t, err)

	payload, err := tm.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), payload.UserID)
	assert.Equal(t, "alice", payload.Username)
	assert.Equal(t, time.Hour, tm.TTL())
}

func TestTokenManager_Expired(t *testing.T) {
	tm, err := NewTokenManager("secret", -time.Minute)
	require.NoError(t, err)

	token, err := tm.CreateToken(1, "bob")
	require.NoError(t, err)

	_, err = tm.VerifyToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenManager_Invalid(t *testing.T) {
	tm, err := NewTokenManager("secret", time.Hour)
	require.NoError(t, err)
	other, err := NewTokenManager("other", time.Hour)
	require.NoError(t, err)

	t.Run("garbage", func(t *testing.T) {
		_, err := tm.VerifyToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("foreign signature", func(t *testing.T) {
		token, err := other.CreateToken(1, "mallory")
		require.NoError(t, err)
		_, err = tm.VerifyToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unsigned", func(t *testing.T) {
		payload := &Payload{UserID: 1, Expires: time.Now().Add(time.Hour).Unix()}
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, payload).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = tm.VerifyToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestNewTokenManager_RandomSecret(t *testing.T) {
	a, err := NewTokenManager("", time.Hour)
	require.NoError(t, err)
	b, err := NewTokenManager("", time.Hour)
	require.NoError(t, err)

	assert.NotEmpty(t, a.secretKey)
	assert.NotEqual(t, a.secretKey, b.secretKey)
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("hunter2", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)

	assert.NoError(t, CheckPassword(hash, "hunter2"))
	assert.ErrorIs(t, CheckPassword(hash, "hunter3"), ErrPasswordMismatch)
	assert.Error(t, CheckPassword("not-a-hash", "hunter2"))
}

func TestHashPassword_CostFallback(t *testing.T) {
	hash, err := HashPassword("pw", 0)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
