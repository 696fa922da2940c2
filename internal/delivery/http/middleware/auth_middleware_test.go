package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "ledger/internal/delivery/context"
	"ledger/internal/domain/entity"
	"ledger/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTokenService struct {
	validateFn func(tokenString string) (*service.Claims, error)
}

func (f *fakeTokenService) Issue(user *entity.User) (string, error) {
	return "", errors.New("not implemented")
}

func (f *fakeTokenService) Validate(tokenString string) (*service.Claims, error) {
	return f.validateFn(tokenString)
}

type fakeIdentityUsecase struct {
	resolveFn func(ctx context.Context, subject string) (*entity.Principal, error)
}

func (f *fakeIdentityUsecase) Resolve(ctx context.Context, subject string) (*entity.Principal, error) {
	return f.resolveFn(ctx, subject)
}

func validClaims(subject string) *service.Claims {
	return &service.Claims{
		UserID:           uuid.New(),
		Name:             "Test User",
		RegisteredClaims: jwt.RegisteredClaims{Subject: subject},
	}
}

func principalFor(subject string) *entity.Principal {
	return &entity.Principal{
		UserID:       uuid.New(),
		Email:        subject,
		Name:         "Test User",
		Role:         entity.RoleUser,
		Capabilities: entity.CapabilitiesFor(entity.RoleUser),
	}
}

func newTestGate(tokenSvc *fakeTokenService, identity *fakeIdentityUsecase) *AuthMiddleware {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewAuthMiddleware(tokenSvc, identity, logger)
}

// runGate sends a request through Authenticate into a probe handler and
// reports the principal the handler observed.
func runGate(t *testing.T, gate *AuthMiddleware, authHeader string) (*entity.Principal, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *entity.Principal
	handler := gate.Authenticate(func(c echo.Context) error {
		if principal, ok := deliverycontext.GetPrincipal(c); ok {
			seen = principal
		}

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))

	return seen, rec
}

func TestAuthenticate_NoHeader_ContinuesUnauthenticated(t *testing.T) {
	gate := newTestGate(
		&fakeTokenService{validateFn: func(string) (*service.Claims, error) {
			t.Fatal("validate must not run without a bearer header")

			return nil, nil
		}},
		&fakeIdentityUsecase{},
	)

	seen, rec := runGate(t, gate, "")

	assert.Nil(t, seen)
	assert.Equal(t, http.StatusOK, rec.Code)
}

// A foreign scheme counts as "no credential supplied", not as a bad one.
func TestAuthenticate_ForeignScheme_ContinuesUnauthenticated(t *testing.T) {
	gate := newTestGate(
		&fakeTokenService{validateFn: func(string) (*service.Claims, error) {
			t.Fatal("validate must not run for a non-bearer header")

			return nil, nil
		}},
		&fakeIdentityUsecase{},
	)

	seen, _ := runGate(t, gate, "Basic dXNlcjpwYXNz")

	assert.Nil(t, seen)
}

func TestAuthenticate_SchemeIsCaseSensitive(t *testing.T) {
	gate := newTestGate(
		&fakeTokenService{validateFn: func(string) (*service.Claims, error) {
			t.Fatal("validate must not run for a lowercase scheme")

			return nil, nil
		}},
		&fakeIdentityUsecase{},
	)

	seen, _ := runGate(t, gate, "bearer some.token.value")

	assert.Nil(t, seen)
}

func TestAuthenticate_InvalidToken_ContinuesUnauthenticated(t *testing.T) {
	gate := newTestGate(
		&fakeTokenService{validateFn: func(string) (*service.Claims, error) {
			return nil, errors.New("signature invalid")
		}},
		&fakeIdentityUsecase{resolveFn: func(context.Context, string) (*entity.Principal, error) {
			t.Fatal("resolution must not run for an invalid token")

			return nil, nil
		}},
	)

	seen, rec := runGate(t, gate, "Bearer broken.token.value")

	assert.Nil(t, seen)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthenticate_UnknownSubject_ContinuesUnauthenticated(t *testing.T) {
	gate := newTestGate(
		&fakeTokenService{validateFn: func(string) (*service.Claims, error) {
			return validClaims("gone@example.com"), nil
		}},
		&fakeIdentityUsecase{resolveFn: func(ctx context.Context, subject string) (*entity.Principal, error) {
			return nil, errors.New("identity not found")
		}},
	)

	seen, _ := runGate(t, gate, "Bearer valid.token.value")

	assert.Nil(t, seen)
}

func TestAuthenticate_ValidToken_AttachesPrincipal(t *testing.T) {
	principal := principalFor("test@example.com")
	gate := newTestGate(
		&fakeTokenService{validateFn: func(tokenString string) (*service.Claims, error) {
			assert.Equal(t, "valid.token.value", tokenString)

			return validClaims("test@example.com"), nil
		}},
		&fakeIdentityUsecase{resolveFn: func(ctx context.Context, subject string) (*entity.Principal, error) {
			assert.Equal(t, "test@example.com", subject)

			return principal, nil
		}},
	)

	seen, _ := runGate(t, gate, "Bearer valid.token.value")

	require.NotNil(t, seen)
	assert.Equal(t, principal, seen)
}

func TestRequireAuth_RejectsAnonymous(t *testing.T) {
	gate := newTestGate(&fakeTokenService{}, &fakeIdentityUsecase{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := gate.RequireAuth(func(c echo.Context) error {
		t.Fatal("handler must not run without a principal")

		return nil
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_PassesAuthenticated(t *testing.T) {
	gate := newTestGate(&fakeTokenService{}, &fakeIdentityUsecase{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetPrincipal(c, principalFor("test@example.com"))

	called := false
	handler := gate.RequireAuth(func(c echo.Context) error {
		called = true

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.True(t, called)
}

func TestRequireCapability_RejectsMissingCapability(t *testing.T) {
	gate := newTestGate(&fakeTokenService{}, &fakeIdentityUsecase{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	principal := principalFor("test@example.com")
	principal.Capabilities = entity.Capabilities{}
	deliverycontext.SetPrincipal(c, principal)

	handler := gate.RequireCapability(entity.CapabilityManageEntries)(func(c echo.Context) error {
		t.Fatal("handler must not run without the capability")

		return nil
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
