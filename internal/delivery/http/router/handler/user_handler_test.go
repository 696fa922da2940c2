package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ledger/internal/delivery/http/validator"
	"ledger/internal/domain/entity"
	"ledger/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserUsecase struct {
	registerFn     func(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error)
	authenticateFn func(ctx context.Context, input *usecase.AuthenticateInput) (*usecase.AuthenticateOutput, error)
	getByIDFn      func(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

func (f *fakeUserUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	return f.registerFn(ctx, input)
}

func (f *fakeUserUsecase) Authenticate(ctx context.Context, input *usecase.AuthenticateInput) (*usecase.AuthenticateOutput, error) {
	return f.authenticateFn(ctx, input)
}

func (f *fakeUserUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return f.getByIDFn(ctx, id)
}

type fakeEntryUsecase struct {
	usecase.EntryUsecase

	balanceByUserFn func(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
}

func (f *fakeEntryUsecase) BalanceByUser(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	return f.balanceByUserFn(ctx, userID)
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newTestUserHandler(userUC usecase.UserUsecase, entryUC usecase.EntryUsecase) *UserHandler {
	return NewUserHandler(userUC, entryUC, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestUserHandler_Register_Success(t *testing.T) {
	userUC := &fakeUserUsecase{
		registerFn: func(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
			assert.Equal(t, "test@example.com", input.Email)

			return &usecase.RegisterOutput{User: &entity.User{
				ID:           uuid.New(),
				Name:         input.Name,
				Email:        input.Email,
				PasswordHash: "$2a$10$hashed",
			}}, nil
		},
	}
	handler := newTestUserHandler(userUC, &fakeEntryUsecase{})

	body := `{"name":"Test User","email":"test@example.com","password":"Password123!"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/users", body)

	require.NoError(t, handler.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "test@example.com")
	// The credential hash never appears in a response.
	assert.NotContains(t, rec.Body.String(), "$2a$10$hashed")
}

func TestUserHandler_Register_InvalidInput(t *testing.T) {
	handler := newTestUserHandler(&fakeUserUsecase{
		registerFn: func(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
			t.Fatal("usecase must not run for invalid input")

			return nil, nil
		},
	}, &fakeEntryUsecase{})

	body := `{"name":"Test User","email":"not-an-email","password":"Password123!"}`
	c, _ := newTestContext(t, http.MethodPost, "/api/users", body)

	err := handler.Register(c)

	require.Error(t, err)
	httpErr := &echo.HTTPError{}
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestUserHandler_Authenticate_Success(t *testing.T) {
	handler := newTestUserHandler(&fakeUserUsecase{
		authenticateFn: func(ctx context.Context, input *usecase.AuthenticateInput) (*usecase.AuthenticateOutput, error) {
			return &usecase.AuthenticateOutput{Name: "Test User", Token: "signed.token.value"}, nil
		},
	}, &fakeEntryUsecase{})

	body := `{"email":"test@example.com","password":"Password123!"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/users/authenticate", body)

	require.NoError(t, handler.Authenticate(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed.token.value")
}

func TestUserHandler_Balance_Success(t *testing.T) {
	userID := uuid.New()
	handler := newTestUserHandler(
		&fakeUserUsecase{
			getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
				assert.Equal(t, userID, id)

				return &entity.User{ID: id}, nil
			},
		},
		&fakeEntryUsecase{
			balanceByUserFn: func(ctx context.Context, id uuid.UUID) (decimal.Decimal, error) {
				return decimal.RequireFromString("930.25"), nil
			},
		},
	)

	c, rec := newTestContext(t, http.MethodGet, "/api/users/"+userID.String()+"/balance", "")
	c.SetParamNames("id")
	c.SetParamValues(userID.String())

	require.NoError(t, handler.Balance(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "930.25")
}

func TestUserHandler_Balance_InvalidID(t *testing.T) {
	handler := newTestUserHandler(&fakeUserUsecase{}, &fakeEntryUsecase{})

	c, rec := newTestContext(t, http.MethodGet, "/api/users/abc/balance", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, handler.Balance(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserHandler_Balance_UnknownUser(t *testing.T) {
	wantErr := errors.New("user lookup failed")
	handler := newTestUserHandler(&fakeUserUsecase{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			return nil, wantErr
		},
	}, &fakeEntryUsecase{
		balanceByUserFn: func(ctx context.Context, id uuid.UUID) (decimal.Decimal, error) {
			t.Fatal("balance must not be computed for an unknown user")

			return decimal.Zero, nil
		},
	})

	userID := uuid.New()
	c, _ := newTestContext(t, http.MethodGet, "/api/users/"+userID.String()+"/balance", "")
	c.SetParamNames("id")
	c.SetParamValues(userID.String())

	err := handler.Balance(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, wantErr)
}
