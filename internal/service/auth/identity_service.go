package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/klowran/cats-api/internal/domain"
	"github.com/klowran/cats-api/internal/platform/logger"
	"github.com/klowran/cats-api/internal/store"
)

// AuthResult is the outcome of a successful login: a signed bearer token
// and its expiry.
type AuthResult struct {
	UserID    uuid.UUID
	Username  string
	Token     string
	ExpiresAt time.Time
}

// IdentityService registers users and issues time-boxed signed tokens.
// Password hashing/verification and credential storage are delegated to
// the injected hasher, verifier and user store.
type IdentityService interface {
	// Register creates a credential record for the given username and
	// password. Returns a *RegistrationError enumerating the reasons
	// when creation is rejected (weak password, duplicate username, ...).
	Register(ctx context.Context, username, password string) error

	// Login verifies the credentials and issues a bearer token.
	// Unknown usernames and wrong passwords both return
	// ErrInvalidCredentials; the two cases are deliberately not
	// distinguishable by the caller.
	Login(ctx context.Context, username, password string) (*AuthResult, error)
}

// identityServiceImpl implements IdentityService.
type identityServiceImpl struct {
	users    store.UserStore
	hasher   PasswordHasher
	verifier PasswordVerifier
	jwt      JWTService
	logger   *slog.Logger
}

// NewIdentityService creates a new IdentityService with the given
// dependencies. If logger is nil, a default logger will be used.
func NewIdentityService(
	users store.UserStore,
	hasher PasswordHasher,
	verifier PasswordVerifier,
	jwtService JWTService,
	logger *slog.Logger,
) IdentityService {
	if users == nil {
		panic("user store cannot be nil")
	}
	if hasher == nil || verifier == nil {
		panic("password hasher and verifier cannot be nil")
	}
	if jwtService == nil {
		panic("jwt service cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &identityServiceImpl{
		users:    users,
		hasher:   hasher,
		verifier: verifier,
		jwt:      jwtService,
		logger:   logger.With(slog.String("component", "identity_service")),
	}
}

func (s *identityServiceImpl) Register(ctx context.Context, username, password string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := domain.NewUser(username, password)
	if err != nil {
		log.Debug("registration rejected by validation", "error", err)
		return &RegistrationError{Reasons: []string{err.Error()}}
	}

	hash, err := s.hasher.Hash(user.Password)
	if err != nil {
		log.Error("failed to hash password", "error", err)
		return err
	}
	user.HashedPassword = hash
	user.Password = ""

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			log.Debug("registration rejected: username taken", "username", username)
			return &RegistrationError{Reasons: []string{"username is already taken"}}
		}
		return err
	}

	log.Info("user registered", "user_id", user.ID)
	return nil
}

func (s *identityServiceImpl) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// Indistinguishable from a wrong password on purpose.
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		log.Debug("login failed: password mismatch", "user_id", user.ID)
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwt.GenerateToken(ctx, user)
	if err != nil {
		return nil, err
	}

	log.Info("user logged in", "user_id", user.ID)
	return &AuthResult{
		UserID:    user.ID,
		Username:  user.Username,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
