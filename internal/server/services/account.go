// Package services contains server-side business logic. This file implements
// AccountService, which handles signup, login, and issuing JWTs.
package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/dmitrijs2005/teakeeper/internal/common"
	"github.com/dmitrijs2005/teakeeper/internal/server/auth"
	"github.com/dmitrijs2005/teakeeper/internal/server/config"
	"github.com/dmitrijs2005/teakeeper/internal/server/models"
	"github.com/dmitrijs2005/teakeeper/internal/server/repositories/repomanager"
)

// AccountService provides authentication-related operations:
// - SignUp: create accounts with hashed credentials
// - Login: verify credentials and mint a token
// - GetByID: resolve a principal back to its account
type AccountService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
	dummyDigest           string
}

// NewAccountService constructs an AccountService using repositories and
// server config. The dummy digest is hashed once here so that login attempts
// for unknown phone numbers still pay the bcrypt cost, keeping the two
// failure paths indistinguishable by timing.
func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AccountService {
	dummyDigest, err := auth.HashPassword("teakeeper-dummy-credential")
	if err != nil {
		dummyDigest = ""
	}
	return &AccountService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
		dummyDigest:           dummyDigest,
	}
}

// SignUp registers a new account for phone. The duplicate check is a
// courtesy fast path; the store's atomic create is what actually guarantees
// uniqueness, so a race loser surfaces as the same ErrorAlreadyExists.
func (s *AccountService) SignUp(ctx context.Context, phone string, password string) (*models.Account, error) {
	repo := s.repomanager.Accounts(s.db)

	if _, err := repo.GetByPhone(ctx, phone); err == nil {
		return nil, common.ErrorAlreadyExists
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorInternal
	}

	digest, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	displayID, err := common.RandomDisplayID()
	if err != nil {
		return nil, common.ErrorInternal
	}

	account, err := repo.Create(ctx, &models.Account{
		Phone:        phone,
		PasswordHash: digest,
		DisplayID:    displayID,
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, common.ErrorInternal
	}

	return account, nil
}

// Login verifies the password for phone and, on success, returns a signed
// access token. Unknown phone and wrong password both return
// ErrorInvalidCredentials so that account existence does not leak.
func (s *AccountService) Login(ctx context.Context, phone string, password string) (string, error) {
	repo := s.repomanager.Accounts(s.db)

	account, err := repo.GetByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			auth.CheckPassword(password, s.dummyDigest)
			return "", common.ErrorInvalidCredentials
		}
		return "", common.ErrorInternal
	}

	if !auth.CheckPassword(password, account.PasswordHash) {
		return "", common.ErrorInvalidCredentials
	}

	token, err := auth.GenerateToken(account.ID, account.DisplayID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}

// GetByID returns the account for a durable identifier, typically the
// authenticated principal of the current request.
func (s *AccountService) GetByID(ctx context.Context, id string) (*models.Account, error) {
	repo := s.repomanager.Accounts(s.db)

	account, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	return account, nil
}
