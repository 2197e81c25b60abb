// Package services contains server-side business logic. This file implements
// AuthService, which handles registration (including provisioning of the
// dependent per-user records), login, and minting session JWTs.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/connectly/authsvc/internal/common"
	"github.com/connectly/authsvc/internal/server/auth"
	"github.com/connectly/authsvc/internal/server/config"
	"github.com/connectly/authsvc/internal/server/models"
	"github.com/connectly/authsvc/internal/server/password"
	"github.com/connectly/authsvc/internal/server/repositories/repomanager"
)

// minPasswordLength is the minimum secret length accepted at registration,
// enforced before any hashing work is spent.
const minPasswordLength = 8

// RegisterRequest is the validated-on-entry input for AuthService.Register.
type RegisterRequest struct {
	FullName string
	UserName string
	Email    string
	Password string
}

// RegisterResult bundles everything a successful registration produces: the
// persisted identity (without its hash in any serialized form), the two
// provisioned records, and a short-lived session token.
type RegisterResult struct {
	User        *models.User
	Profile     *models.Profile
	FollowGraph *models.FollowGraph
	Token       string
}

// ValidationError reports every violated field of a registration request at
// once, so the client can fix them in a single round trip.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}

// AuthService provides authentication-related operations:
// - Register: create users with their dependent records and mint a token
// - Login: verify credentials and mint a token
type AuthService struct {
	db             *sql.DB
	repomanager    repomanager.RepositoryManager
	provisioner    *ProvisionService
	jwtSecret      []byte
	signupTokenTTL time.Duration
	signinTokenTTL time.Duration
}

// NewAuthService constructs an AuthService using repositories and server config.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, p *ProvisionService, cfg *config.Config) *AuthService {
	return &AuthService{
		db:             db,
		repomanager:    m,
		provisioner:    p,
		jwtSecret:      []byte(cfg.SecretKey),
		signupTokenTTL: cfg.SignupTokenValidityDuration,
		signinTokenTTL: cfg.SigninTokenValidityDuration,
	}
}

// validateRegistration checks every field and collects all violations
// instead of stopping at the first one.
func validateRegistration(req *RegisterRequest) *ValidationError {
	var violations []string

	if strings.TrimSpace(req.FullName) == "" {
		violations = append(violations, "FullName is required")
	}
	if strings.TrimSpace(req.UserName) == "" {
		violations = append(violations, "UserName is required")
	}
	if req.Email == "" {
		violations = append(violations, "emailId is required")
	} else if _, err := mail.ParseAddress(req.Email); err != nil {
		violations = append(violations, "emailId is not a valid email address")
	}
	if len(req.Password) < minPasswordLength {
		violations = append(violations, fmt.Sprintf("Password must be at least %d characters", minPasswordLength))
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

// Register validates the signup input, hashes the secret, persists the new
// identity, provisions its profile and follow-graph records, and mints a
// short-lived session token.
//
// Handle uniqueness is delegated to the store's atomic insert semantics;
// a duplicate surfaces as common.ErrDuplicateHandle. A provisioning failure
// after the identity row is committed surfaces as an error wrapping
// common.ErrProvisioning and is never silently ignored.
func (s *AuthService) Register(ctx context.Context, req *RegisterRequest) (*RegisterResult, error) {
	if verr := validateRegistration(req); verr != nil {
		return nil, verr
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		FullName:     req.FullName,
		UserName:     req.UserName,
		Email:        req.Email,
		PasswordHash: hash,
	}
	repo := s.repomanager.Users(s.db)
	user, err = repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateHandle) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	profile, followGraph, err := s.provisioner.Initialize(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.signupTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &RegisterResult{
		User:        user,
		Profile:     profile,
		FollowGraph: followGraph,
		Token:       token,
	}, nil
}

// Login verifies the handle/secret pair and, on success, mints a long-lived
// session token. The handle-absent and secret-mismatch cases surface as
// distinct errors: the API contract exposes them as separate messages.
func (s *AuthService) Login(ctx context.Context, handle, plaintext string) (string, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetUserByHandle(ctx, handle)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrUserNotFound
		}
		return "", fmt.Errorf("error looking up user: %w", err)
	}

	if !password.Verify(plaintext, user.PasswordHash) {
		return "", common.ErrIncorrectPassword
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.signinTokenTTL)
	if err != nil {
		return "", fmt.Errorf("error generating token: %w", err)
	}
	return token, nil
}
