// Package services contains server-side business logic. This file implements
// UserService, which handles registration (account plus default organisation
// in one transaction) and login.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/orgkeeper/internal/common"
	"github.com/dmitrijs2005/orgkeeper/internal/dbx"
	"github.com/dmitrijs2005/orgkeeper/internal/server/auth"
	"github.com/dmitrijs2005/orgkeeper/internal/server/config"
	"github.com/dmitrijs2005/orgkeeper/internal/server/models"
	"github.com/dmitrijs2005/orgkeeper/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// RegisterInput is the raw registration request. Phone is optional.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
}

// AuthResult bundles a signed access token with the authenticated user.
type AuthResult struct {
	AccessToken string
	User        *models.User
}

// UserService provides account operations:
// - Register: create a user and its default organisation, mint a token
// - Login: verify credentials and mint a token
type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	hasher                      *auth.PasswordHasher
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		hasher:                      auth.NewPasswordHasher(cfg.BcryptCost),
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Register validates the input, hashes the password and creates the user
// together with its default organisation inside a single transaction, so a
// failed organisation insert rolls the user back too. A duplicate email
// surfaces as common.ErrorAlreadyExists, sourced solely from the unique
// constraint on users.email.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	if verr := validateRegistration(in); verr != nil {
		return nil, verr
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{
		ID:           uuid.NewString(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: hash,
		Phone:        in.Phone,
	}
	org := &models.Organisation{
		ID:          uuid.NewString(),
		Name:        in.FirstName + "'s Organisation",
		Description: in.FirstName + "'s default organisation",
		OwnerID:     user.ID,
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Users(tx).Create(ctx, user); err != nil {
			return err
		}
		if _, err := s.repomanager.Organisations(tx).Create(ctx, org); err != nil {
			return err
		}
		return nil
	}); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	token, err := auth.GenerateToken(user.ID, user.Email, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &AuthResult{AccessToken: token, User: user}, nil
}

// Login verifies the email/password pair and, on success, returns a new
// token. Unknown email and wrong password both yield common.ErrorUnauthorized
// so callers cannot tell accounts apart.
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if !s.hasher.Check(password, user.PasswordHash) {
		return nil, common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, user.Email, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &AuthResult{AccessToken: token, User: user}, nil
}
