package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"ledger/internal/delivery/http/response"
	"ledger/internal/domain/entity"
	apperrors "ledger/internal/domain/errors"
	"ledger/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EntryHandler holds dependencies for financial-entry handlers.
type EntryHandler struct {
	entryUC usecase.EntryUsecase
	logger  *slog.Logger
}

// NewEntryHandler is the constructor for EntryHandler, injected by Fx.
func NewEntryHandler(entryUC usecase.EntryUsecase, logger *slog.Logger) *EntryHandler {
	return &EntryHandler{
		entryUC: entryUC,
		logger:  logger,
	}
}

// statusInput carries the target status for a status transition.
type statusInput struct {
	Status string `json:"status" validate:"required"`
}

// Create handles the request to record a new entry.
func (h *EntryHandler) Create(c echo.Context) error {
	input := new(usecase.EntryInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid entry input")
	}

	entry, err := h.entryUC.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, entry, "Entry created successfully")
}

// Update handles the request to modify an existing entry.
func (h *EntryHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid entry id")
	}

	input := new(usecase.EntryInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid entry input")
	}

	entry, err := h.entryUC.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entry, "Entry updated successfully")
}

// UpdateStatus handles the request to move an entry to a new status.
func (h *EntryHandler) UpdateStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid entry id")
	}

	input := new(statusInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	entry, err := h.entryUC.UpdateStatus(c.Request().Context(), id, input.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entry, "Entry status updated successfully")
}

// Delete handles the request to remove an entry.
func (h *EntryHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid entry id")
	}

	if err := h.entryUC.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetByID handles the request for a single entry.
func (h *EntryHandler) GetByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid entry id")
	}

	entry, err := h.entryUC.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entry, "Entry retrieved successfully")
}

// Search handles the query-by-example listing of entries.
func (h *EntryHandler) Search(c echo.Context) error {
	filter, err := buildEntryFilter(c)
	if err != nil {
		return errors.WithStack(err)
	}

	entries, err := h.entryUC.Search(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "Entries retrieved successfully")
}

func buildEntryFilter(c echo.Context) (*entity.EntryFilter, error) {
	filter := &entity.EntryFilter{
		Description: c.QueryParam("description"),
	}

	userParam := c.QueryParam("user")
	if userParam == "" {
		return nil, apperrors.ErrValidationFailed.WithDetails("user query parameter is required")
	}
	userID, err := uuid.Parse(userParam)
	if err != nil {
		return nil, apperrors.ErrValidationFailed.WithDetails("user query parameter must be a valid id")
	}
	filter.UserID = userID

	if monthParam := c.QueryParam("month"); monthParam != "" {
		month, err := strconv.Atoi(monthParam)
		if err != nil {
			return nil, apperrors.ErrValidationFailed.WithDetails("month query parameter must be numeric")
		}
		filter.Month = month
	}

	if yearParam := c.QueryParam("year"); yearParam != "" {
		year, err := strconv.Atoi(yearParam)
		if err != nil {
			return nil, apperrors.ErrValidationFailed.WithDetails("year query parameter must be numeric")
		}
		filter.Year = year
	}

	return filter, nil
}
