// Package services contains server-side business logic. This file implements
// UserService, which handles registration and login: credential lookup,
// password verification, and access-token issuance.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/blogkeeper/internal/common"
	"github.com/dmitrijs2005/blogkeeper/internal/server/auth"
	"github.com/dmitrijs2005/blogkeeper/internal/server/config"
	"github.com/dmitrijs2005/blogkeeper/internal/server/models"
	"github.com/dmitrijs2005/blogkeeper/internal/server/repositories/repomanager"
)

// UserService provides authentication-related operations:
// - Register: hash the password and create the user
// - Login: verify credentials and mint an access token
// - GetProfile: load a user together with their posts
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      *auth.PasswordHasher
	issuer      *auth.TokenIssuer
}

// NewUserService constructs a UserService using repositories and server config.
// The hasher cost parameters and signing secret are taken from cfg once and
// never change afterwards.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		hasher:      auth.NewPasswordHasher(cfg.HashTime, cfg.HashMemoryKiB, cfg.HashThreads),
		issuer:      auth.NewTokenIssuer([]byte(cfg.SecretKey), cfg.AccessTokenValidityDuration),
	}
}

// Register creates a new user with the given name, email, and password.
// The plaintext password is hashed and discarded; a duplicate email surfaces
// as common.ErrorAlreadyExists, propagated unchanged from the repository.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{Name: name, Email: email, PasswordHash: hash}
	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Login verifies the provided password against the stored hash and, on
// success, returns a signed access token whose subject is the user's email.
//
// A missing user yields common.ErrUserNotFound and a wrong password yields
// common.ErrInvalidCredentials; the transport layer decides whether to
// collapse the two for external callers. A stored hash that cannot be parsed
// propagates common.ErrMalformedHash so corrupted data is not mistaken for a
// bad password.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrUserNotFound
		}
		return "", common.ErrorInternal
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return "", fmt.Errorf("verifying password: %w", err)
	}
	if !ok {
		return "", common.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user.Email, 0)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}

// ValidateToken checks an access token and returns the subject (email) it
// was issued for. Token failure kinds from auth.TokenIssuer pass through
// unchanged.
func (s *UserService) ValidateToken(token string) (string, error) {
	claims, err := s.issuer.Validate(token)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// GetUserByEmail returns the user record for the given email.
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByEmail(ctx, email)
}

// GetProfile loads a user by ID together with their posts.
func (s *UserService) GetProfile(ctx context.Context, id string) (*models.User, []*models.Post, error) {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	posts, err := s.repomanager.Posts(s.db).SelectByAuthor(ctx, user.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading posts: %w", err)
	}
	return user, posts, nil
}
