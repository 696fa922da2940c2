package auth

import (
	"testing"
	"time"

	"ledger/config"
	"ledger/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSigningSecret = "test-signing-secret-at-least-long-enough"

func newTestConfig(secret string, ttlMinutes int) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Signing = secret
	cfg.Auth = &config.AuthConfig{TokenTTLMinutes: ttlMinutes}

	return cfg
}

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	svc, err := NewJWTService(newTestConfig(testSigningSecret, 30))
	require.NoError(t, err)

	return svc.(*jwtService)
}

func testUser() *entity.User {
	return &entity.User{
		ID:    uuid.New(),
		Name:  "Test User",
		Email: "test@example.com",
	}
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(newTestConfig("", 30))

	require.Error(t, err)
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc := newTestJWTService(t)
	user := testUser()

	tokenString, err := svc.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := svc.Validate(tokenString)
	require.NoError(t, err)
	assert.Equal(t, user.Email, claims.Subject)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Name, claims.Name)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTService_Validate_Garbage(t *testing.T) {
	svc := newTestJWTService(t)

	claims, err := svc.Validate("not-a-token")

	require.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_Validate_WrongKey(t *testing.T) {
	svc := newTestJWTService(t)

	otherSvc, err := NewJWTService(newTestConfig("a-completely-different-secret-key", 30))
	require.NoError(t, err)

	tokenString, err := otherSvc.Issue(testUser())
	require.NoError(t, err)

	claims, err := svc.Validate(tokenString)

	require.Error(t, err)
	assert.Nil(t, claims)
}

// A token signed with a foreign algorithm must be rejected even when the
// signature itself would check out.
func TestJWTService_Validate_WrongAlgorithm(t *testing.T) {
	svc := newTestJWTService(t)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "test@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	tokenString, err := token.SignedString([]byte(testSigningSecret))
	require.NoError(t, err)

	claims, err := svc.Validate(tokenString)

	require.Error(t, err)
	assert.Nil(t, claims)
}

// A token without an expiry claim must be rejected outright.
func TestJWTService_Validate_MissingExpiry(t *testing.T) {
	svc := newTestJWTService(t)

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject: "test@example.com",
	})
	tokenString, err := token.SignedString([]byte(testSigningSecret))
	require.NoError(t, err)

	claims, err := svc.Validate(tokenString)

	require.Error(t, err)
	assert.Nil(t, claims)
}

// Token lifetime boundary: valid one second before expiry, rejected at and
// after the expiry instant. The clock is injected so no sleeping is needed.
func TestJWTService_Validate_ExpiryBoundary(t *testing.T) {
	svc := newTestJWTService(t)
	issuedAt := time.Date(2026, time.August, 1, 12, 0, 0, 0, time.UTC)
	expiry := issuedAt.Add(30 * time.Minute)

	svc.now = func() time.Time { return issuedAt }
	tokenString, err := svc.Issue(testUser())
	require.NoError(t, err)

	svc.now = func() time.Time { return expiry.Add(-time.Second) }
	_, err = svc.Validate(tokenString)
	assert.NoError(t, err, "token must be valid before expiry")

	svc.now = func() time.Time { return expiry }
	_, err = svc.Validate(tokenString)
	assert.Error(t, err, "token must be invalid at the expiry instant")

	svc.now = func() time.Time { return expiry.Add(time.Hour) }
	_, err = svc.Validate(tokenString)
	assert.Error(t, err, "token must be invalid after expiry")
}

// Tampering with the payload invalidates the signature.
func TestJWTService_Validate_TamperedPayload(t *testing.T) {
	svc := newTestJWTService(t)

	tokenString, err := svc.Issue(testUser())
	require.NoError(t, err)

	tampered := []byte(tokenString)
	// Flip a character in the payload segment.
	tampered[len(tampered)/2] ^= 0x01

	claims, err := svc.Validate(string(tampered))

	require.Error(t, err)
	assert.Nil(t, claims)
}
