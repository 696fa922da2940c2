package impl

import (
	"context"
	"io"
	"log/slog"

	"ledger/internal/domain/entity"
	"ledger/internal/domain/repository"
	"ledger/internal/domain/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Hand-rolled fakes for the repository and service interfaces. Each method is
// a swappable func field so tests describe exactly the behavior they need.

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeUserRepo struct {
	findByIDFn      func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	findByEmailFn   func(ctx context.Context, email string) (*entity.User, error)
	existsByEmailFn func(ctx context.Context, email string) (bool, error)
	createFn        func(ctx context.Context, user *entity.User) error
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return f.findByEmailFn(ctx, email)
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return f.existsByEmailFn(ctx, email)
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	return f.createFn(ctx, user)
}

type fakeEntryRepo struct {
	findByIDFn        func(ctx context.Context, id uuid.UUID) (*entity.Entry, error)
	findByFilterFn    func(ctx context.Context, filter *entity.EntryFilter) ([]*entity.Entry, error)
	createFn          func(ctx context.Context, entry *entity.Entry) error
	updateFn          func(ctx context.Context, entry *entity.Entry) error
	deleteFn          func(ctx context.Context, id uuid.UUID) error
	sumAmountByUserFn func(ctx context.Context, userID uuid.UUID, entryType entity.EntryType, status entity.EntryStatus) (decimal.Decimal, error)
}

func (f *fakeEntryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Entry, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeEntryRepo) FindByFilter(ctx context.Context, filter *entity.EntryFilter) ([]*entity.Entry, error) {
	return f.findByFilterFn(ctx, filter)
}

func (f *fakeEntryRepo) Create(ctx context.Context, entry *entity.Entry) error {
	return f.createFn(ctx, entry)
}

func (f *fakeEntryRepo) Update(ctx context.Context, entry *entity.Entry) error {
	return f.updateFn(ctx, entry)
}

func (f *fakeEntryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return f.deleteFn(ctx, id)
}

func (f *fakeEntryRepo) SumAmountByUser(ctx context.Context, userID uuid.UUID, entryType entity.EntryType, status entity.EntryStatus) (decimal.Decimal, error) {
	return f.sumAmountByUserFn(ctx, userID, entryType, status)
}

// fakeTxManager runs the transactional function directly against the fakes.
type fakeTxManager struct {
	userRepo  repository.UserRepository
	entryRepo repository.EntryRepository
}

func (f *fakeTxManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	return fn(f)
}

func (f *fakeTxManager) UserRepo() repository.UserRepository {
	return f.userRepo
}

func (f *fakeTxManager) EntryRepo() repository.EntryRepository {
	return f.entryRepo
}

type fakeHasher struct {
	hashFn  func(password string) (string, error)
	checkFn func(password, hash string) bool
}

func (f *fakeHasher) Hash(password string) (string, error) {
	return f.hashFn(password)
}

func (f *fakeHasher) Check(password, hash string) bool {
	return f.checkFn(password, hash)
}

type fakeTokenService struct {
	issueFn    func(user *entity.User) (string, error)
	validateFn func(tokenString string) (*service.Claims, error)
}

func (f *fakeTokenService) Issue(user *entity.User) (string, error) {
	return f.issueFn(user)
}

func (f *fakeTokenService) Validate(tokenString string) (*service.Claims, error) {
	return f.validateFn(tokenString)
}
