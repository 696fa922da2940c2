package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "ledger/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func handleError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	m.HandleHTTPError(err, c)

	return rec
}

func TestHandleHTTPError_AppError(t *testing.T) {
	rec := handleError(t, errors.Wrap(domainerrors.ErrAuthenticationFailed, "authentication failed"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid email or password")
}

// The same response shape regardless of whether the email was unknown or the
// password wrong; the body never says which.
func TestHandleHTTPError_AppError_CarriesBusinessCode(t *testing.T) {
	rec := handleError(t, domainerrors.ErrDuplicateEmail.WrapMessage("email already registered"))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "DUPLICATE_EMAIL")
}

func TestHandleHTTPError_EchoHTTPError(t *testing.T) {
	rec := handleError(t, echo.NewHTTPError(http.StatusNotFound, "route not found"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "route not found")
}

// Unexpected errors collapse into a generic 500; internals never leak into
// the response body.
func TestHandleHTTPError_UnknownError(t *testing.T) {
	rec := handleError(t, errors.New("pq: connection refused at 10.0.0.5"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
	assert.Contains(t, rec.Body.String(), "Internal server error")
}
