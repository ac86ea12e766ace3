package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
)

var (
	ErrInvalidToken = errors.New("token is invalid")
	ErrExpiredToken = errors.New("token has expired")
)

// Payload is the claim set carried by a session token.
type Payload struct {
	UserID   int64  `json:"uid"`
	Username string `json:"usr"`
	Expires  int64  `json:"exp"`
}

func (p *Payload) Valid() error {
	if time.Now().After(time.Unix(p.Expires, 0)) {
		return ErrExpiredToken
	}
	return nil
}

// TokenManager issues and verifies HS256 session tokens.
type TokenManager struct {
	secretKey []byte
	ttl       time.Duration
}

// NewTokenManager creates a TokenManager. An empty secret is replaced by 32
// random bytes, which invalidates issued tokens on every restart.
func NewTokenManager(secret string, ttl time.Duration) (*TokenManager, error) {
	key := []byte(secret)
	if len(key) == 0 {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			return nil, err
		}
		key = []byte(hex.EncodeToString(buf))
	}
	return &TokenManager{secretKey: key, ttl: ttl}, nil
}

// TTL is the lifetime of issued tokens.
func (t *TokenManager) TTL() time.Duration { return t.ttl }

// CreateToken signs a token for the given user.
func (t *TokenManager) CreateToken(userID int64, username string) (string, error) {
	payload := Payload{UserID: userID, Username: username, Expires: time.Now().Add(t.ttl).Unix()}
	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS256, &payload)
	return jwtToken.SignedString(t.secretKey)
}

// VerifyToken checks the signature and expiry of token and returns its payload.
func (t *TokenManager) VerifyToken(token string) (*Payload, error) {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return t.secretKey, nil
	}

	jwtToken, err := jwt.ParseWithClaims(token, &Payload{}, keyFunc)
	if err != nil {
		verr, ok := err.(*jwt.ValidationError)
		if ok && errors.Is(verr.Inner, ErrExpiredToken) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	payload, ok := jwtToken.Claims.(*Payload)
	if !ok {
		return nil, ErrInvalidToken
	}
	return payload, nil
}
