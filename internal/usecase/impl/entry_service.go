package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "ledger/internal/delivery/context"
	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/repository"
	"ledger/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// entryService implements the EntryUsecase interface.
type entryService struct {
	entryRepo repository.EntryRepository
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// EntryServiceParams holds dependencies for entryService, injected by Fx.
type EntryServiceParams struct {
	fx.In

	EntryRepo repository.EntryRepository
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewEntryService is the constructor for entryService.
func NewEntryService(params EntryServiceParams) usecase.EntryUsecase {
	return &entryService{
		entryRepo: params.EntryRepo,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
	}
}

func (srv *entryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create validates and persists a new entry. New entries always start pending.
func (srv *entryService) Create(ctx context.Context, input *usecase.EntryInput) (*entity.Entry, error) {
	entry, err := srv.buildEntry(ctx, input)
	if err != nil {
		return nil, err
	}
	entry.Status = entity.EntryStatusPending

	if err := srv.entryRepo.Create(ctx, entry); err != nil {
		srv.log(ctx).Warn("Failed to create entry", slog.Any("userID", entry.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create entry")
	}

	srv.log(ctx).Debug("Entry created", slog.Any("entryID", entry.ID), slog.Any("userID", entry.UserID))

	return entry, nil
}

// Update re-validates and modifies an existing entry.
func (srv *entryService) Update(ctx context.Context, id uuid.UUID, input *usecase.EntryInput) (*entity.Entry, error) {
	existing, err := srv.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	entry, err := srv.buildEntry(ctx, input)
	if err != nil {
		return nil, err
	}
	entry.ID = existing.ID
	entry.RegisteredAt = existing.RegisteredAt

	if entry.Status == "" {
		entry.Status = existing.Status
	}
	if !entry.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("provide a valid status").WrapMessage("invalid entry status")
	}

	if err := srv.entryRepo.Update(ctx, entry); err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return nil, domainerrors.ErrEntryNotFound.WrapMessage("entry vanished during update")
		}

		return nil, errors.Wrap(err, "failed to update entry")
	}

	return entry, nil
}

// UpdateStatus moves an existing entry to the given status.
func (srv *entryService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Entry, error) {
	newStatus := entity.EntryStatus(status)
	if !newStatus.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("provide a valid status").WrapMessage("invalid entry status")
	}

	entry, err := srv.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	entry.Status = newStatus
	if err := srv.entryRepo.Update(ctx, entry); err != nil {
		return nil, errors.Wrap(err, "failed to update entry status")
	}

	srv.log(ctx).Debug("Entry status updated", slog.Any("entryID", entry.ID), slog.String("status", status))

	return entry, nil
}

// Delete removes an existing entry.
func (srv *entryService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := srv.GetByID(ctx, id); err != nil {
		return err
	}

	if err := srv.entryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return domainerrors.ErrEntryNotFound.WrapMessage("entry vanished during delete")
		}

		return errors.Wrap(err, "failed to delete entry")
	}

	return nil
}

// GetByID retrieves an entry by its unique ID.
func (srv *entryService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Entry, error) {
	entry, err := srv.entryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return nil, domainerrors.ErrEntryNotFound.WrapMessage("entry lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find entry by id")
	}

	return entry, nil
}

// Search lists entries matching the query-by-example filter.
func (srv *entryService) Search(ctx context.Context, filter *entity.EntryFilter) ([]*entity.Entry, error) {
	if _, err := srv.userRepo.FindByID(ctx, filter.UserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("cannot search entries for unknown user")
		}

		return nil, errors.Wrap(err, "failed to verify user for entry search")
	}

	entries, err := srv.entryRepo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search entries")
	}

	return entries, nil
}

// BalanceByUser computes confirmed income minus confirmed expenses.
func (srv *entryService) BalanceByUser(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	income, err := srv.entryRepo.SumAmountByUser(ctx, userID, entity.EntryTypeIncome, entity.EntryStatusConfirmed)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to sum confirmed income")
	}

	expenses, err := srv.entryRepo.SumAmountByUser(ctx, userID, entity.EntryTypeExpense, entity.EntryStatusConfirmed)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to sum confirmed expenses")
	}

	return income.Sub(expenses), nil
}

// buildEntry validates the input and assembles a domain entry.
// The owning user must exist; field rules follow the accounting constraints
// of the domain (month 1-12, four-digit year, positive amount).
func (srv *entryService) buildEntry(ctx context.Context, input *usecase.EntryInput) (*entity.Entry, error) {
	if err := validateEntryInput(input); err != nil {
		return nil, err
	}

	if _, err := srv.userRepo.FindByID(ctx, input.UserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("provide a valid user").WrapMessage("entry user not found")
		}

		return nil, errors.Wrap(err, "failed to verify entry user")
	}

	return &entity.Entry{
		Description:  input.Description,
		Month:        input.Month,
		Year:         input.Year,
		UserID:       input.UserID,
		Amount:       input.Amount,
		Type:         entity.EntryType(input.Type),
		Status:       entity.EntryStatus(input.Status),
		RegisteredAt: time.Now(),
	}, nil
}

func validateEntryInput(input *usecase.EntryInput) error {
	switch {
	case input.Description == "":
		return domainerrors.ErrValidationFailed.WithDetails("provide a valid description").WrapMessage("missing description")
	case input.Month < 1 || input.Month > 12:
		return domainerrors.ErrValidationFailed.WithDetails("provide a valid month").WrapMessage("month out of range")
	case input.Year < 1000 || input.Year > 9999:
		return domainerrors.ErrValidationFailed.WithDetails("provide a valid four-digit year").WrapMessage("year out of range")
	case input.UserID == uuid.Nil:
		return domainerrors.ErrValidationFailed.WithDetails("provide a valid user").WrapMessage("missing user")
	case !input.Amount.IsPositive():
		return domainerrors.ErrValidationFailed.WithDetails("provide a valid amount").WrapMessage("amount must be positive")
	case !entity.EntryType(input.Type).IsValid():
		return domainerrors.ErrValidationFailed.WithDetails("provide a valid entry type").WrapMessage("invalid entry type")
	default:
		return nil
	}
}
