// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"ledger/internal/delivery/http/response"
	"ledger/internal/domain/entity"
	"ledger/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	userUC  usecase.UserUsecase
	entryUC usecase.EntryUsecase
	logger  *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(userUC usecase.UserUsecase, entryUC usecase.EntryUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUC:  userUC,
		entryUC: entryUC,
		logger:  logger,
	}
}

// userView is the public shape of a user. The credential hash never leaves
// the service.
type userView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserView(user *entity.User) userView {
	return userView{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// Register handles the user registration request.
func (h *UserHandler) Register(c echo.Context) error {
	input := new(usecase.RegisterInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.userUC.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserView(output.User), "User registered successfully")
}

// Authenticate handles the credential verification request and returns a session token.
func (h *UserHandler) Authenticate(c echo.Context) error {
	input := new(usecase.AuthenticateInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid authentication input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.userUC.Authenticate(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Authentication successful")
}

// Balance handles the request for a user's running balance.
func (h *UserHandler) Balance(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	if _, err := h.userUC.GetByID(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	balance, err := h.entryUC.BalanceByUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, echo.Map{"balance": balance}, "Balance retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
