package postgres

import (
	"context"

	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/repository"
	"ledger/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// entryRepository implements the repository.EntryRepository interface using GORM.
type entryRepository struct {
	db *gorm.DB
}

// NewEntryRepository is the constructor for entryRepository.
func NewEntryRepository(db *gorm.DB) repository.EntryRepository {
	return &entryRepository{
		db: db,
	}
}

// FindByID retrieves a single entry by its unique ID.
func (repo *entryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Entry, error) {
	var entryM model.EntryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&entryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEntryNotFound
		}

		return nil, errors.Wrap(err, "failed to find entry by id")
	}

	return toEntryDomain(&entryM), nil
}

// FindByFilter retrieves all entries matching the filter, newest first.
// Description matches case-insensitively as a substring; month and year match
// exactly when set.
func (repo *entryRepository) FindByFilter(ctx context.Context, filter *entity.EntryFilter) ([]*entity.Entry, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.EntryModel{}).
		Where("user_id = ?", filter.UserID)

	if filter.Description != "" {
		query = query.Where("description ILIKE ?", "%"+filter.Description+"%")
	}
	if filter.Month != 0 {
		query = query.Where("month = ?", filter.Month)
	}
	if filter.Year != 0 {
		query = query.Where("year = ?", filter.Year)
	}

	var entryModels []*model.EntryModel
	if err := query.Order("created_at DESC").Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find entries by filter")
	}

	entries := make([]*entity.Entry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toEntryDomain(entryM))
	}

	return entries, nil
}

// Create persists a new entry.
func (repo *entryRepository) Create(ctx context.Context, entry *entity.Entry) error {
	entryM := fromEntryDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required entry information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create entry")
	}

	// Update the entity with generated values
	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt
	entry.UpdatedAt = entryM.UpdatedAt

	return nil
}

// Update modifies an existing entry.
func (repo *entryRepository) Update(ctx context.Context, entry *entity.Entry) error {
	entryM := fromEntryDomain(entry)

	result := repo.db.WithContext(ctx).
		Model(&model.EntryModel{}).
		Where("id = ?", entryM.ID).
		Updates(map[string]any{
			"description":   entryM.Description,
			"month":         entryM.Month,
			"year":          entryM.Year,
			"amount":        entryM.Amount,
			"type":          entryM.Type,
			"status":        entryM.Status,
			"registered_at": entryM.RegisteredAt,
		})
	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required entry information")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update entry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEntryNotFound
	}

	return nil
}

// Delete removes an entry by its unique ID.
func (repo *entryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.EntryModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete entry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEntryNotFound
	}

	return nil
}

// SumAmountByUser returns the total amount of a user's entries for the given
// type and status. Missing rows sum to zero.
func (repo *entryRepository) SumAmountByUser(ctx context.Context, userID uuid.UUID, entryType entity.EntryType, status entity.EntryStatus) (decimal.Decimal, error) {
	var total decimal.NullDecimal

	if err := repo.db.WithContext(ctx).
		Model(&model.EntryModel{}).
		Select("SUM(amount)").
		Where("user_id = ? AND type = ? AND status = ?", userID, entryType.String(), status.String()).
		Scan(&total).Error; err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to sum entry amounts")
	}

	if !total.Valid {
		return decimal.Zero, nil
	}

	return total.Decimal, nil
}

// --- Mapper Functions ---

// toEntryDomain converts a GORM EntryModel to a domain Entry entity.
func toEntryDomain(data *model.EntryModel) *entity.Entry {
	if data == nil {
		return nil
	}

	return &entity.Entry{
		ID:           data.ID,
		Description:  data.Description,
		Month:        data.Month,
		Year:         data.Year,
		UserID:       data.UserID,
		Amount:       data.Amount,
		Type:         entity.EntryType(data.Type),
		Status:       entity.EntryStatus(data.Status),
		RegisteredAt: data.RegisteredAt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromEntryDomain converts a domain Entry entity to a GORM EntryModel for persistence.
func fromEntryDomain(data *entity.Entry) *model.EntryModel {
	if data == nil {
		return nil
	}

	return &model.EntryModel{
		ID:           data.ID,
		Description:  data.Description,
		Month:        data.Month,
		Year:         data.Year,
		UserID:       data.UserID,
		Amount:       data.Amount,
		Type:         data.Type.String(),
		Status:       data.Status.String(),
		RegisteredAt: data.RegisteredAt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
