package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klowran/cats-api/internal/config"
	"github.com/klowran/cats-api/internal/domain"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:            strings.Repeat("s", 32),
		TokenLifetimeMinutes: 333,
	}
}

func testUser(t *testing.T) *domain.User {
	t.Helper()
	user, err := domain.NewUser("catlover", "password1234567")
	require.NoError(t, err)
	return user
}

func TestNewJWTServiceRejectsShortSecret(t *testing.T) {
	t.Parallel()

	cfg := testAuthConfig()
	cfg.JWTSecret = "too-short"

	_, err := NewJWTService(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 32 characters")
}

func TestJWTServiceRoundTrip(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	user := testUser(t)
	ctx := context.Background()

	token, expiresAt, err := svc.GenerateToken(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// Lifetime comes from configuration, not a hard-coded window.
	wantExpiry := time.Now().Add(333 * time.Minute)
	assert.WithinDuration(t, wantExpiry, expiresAt, time.Minute)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "catlover", claims.Username)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.NotEmpty(t, claims.ID)
}

func TestJWTServiceExpiredToken(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)
	impl := svc.(*hmacJWTService)

	issuedAt := time.Now()
	impl.timeFunc = func() time.Time { return issuedAt }

	token, _, err := svc.GenerateToken(context.Background(), testUser(t))
	require.NoError(t, err)

	// Jump past the lifetime plus the clock-skew allowance.
	impl.timeFunc = func() time.Time {
		return issuedAt.Add(333*time.Minute + impl.clockSkew + time.Minute)
	}

	_, err = svc.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTServiceClockSkewTolerance(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)
	impl := svc.(*hmacJWTService)

	issuedAt := time.Now()
	impl.timeFunc = func() time.Time { return issuedAt }

	token, _, err := svc.GenerateToken(context.Background(), testUser(t))
	require.NoError(t, err)

	// Just past expiry but within the skew window still validates.
	impl.timeFunc = func() time.Time {
		return issuedAt.Add(333*time.Minute + time.Minute)
	}

	_, err = svc.ValidateToken(context.Background(), token)
	assert.NoError(t, err)
}

func TestJWTServiceRejectsWrongKey(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	otherCfg := testAuthConfig()
	otherCfg.JWTSecret = strings.Repeat("x", 32)
	other, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, _, err := other.GenerateToken(context.Background(), testUser(t))
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTServiceRejectsGarbage(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ValidateToken(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
