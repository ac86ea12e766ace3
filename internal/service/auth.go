package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"dictapi/internal/auth"
	"dictapi/internal/model"
	"dictapi/internal/repository"
)

// Session is an issued session token.
type Session struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      *model.User `json:"user"`
}

// AuthService defines account and session use cases.
type AuthService interface {
	// Register creates an account with a bcrypt hashed password.
	Register(ctx context.Context, username, password string) (*model.User, error)

	// Login checks the credentials and issues a session token.
	Login(ctx context.Context, username, password string) (*Session, error)

	// Authenticate verifies a session token.
	Authenticate(token string) (*auth.Payload, error)
}

type authService struct {
	users      repository.UserRepository
	tokens     *auth.TokenManager
	bcryptCost int
}

// NewAuthService constructs a new AuthService.
func NewAuthService(users repository.UserRepository, tokens *auth.TokenManager, bcryptCost int) AuthService {
	return &authService{users: users, tokens: tokens, bcryptCost: bcryptCost}
}

func (s *authService) Register(ctx context.Context, username, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrCredentialsRequired
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}
	u, err := s.users.CreateUser(ctx, username, hash)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return u, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (*Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrCredentialsRequired
	}

	u, err := s.users.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := auth.CheckPassword(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.CreateToken(u.ID, u.Username)
	if err != nil {
		return nil, err
	}
	return &Session{
		Token:     token,
		ExpiresAt: time.Now().Add(s.tokens.TTL()).UTC(),
		User:      u,
	}, nil
}

func (s *authService) Authenticate(token string) (*auth.Payload, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}
	p, err := s.tokens.VerifyToken(token)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	return p, nil
}
