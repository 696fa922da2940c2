package impl

import (
	"context"
	"log/slog"
	"time"

	"ledger/config"
	deliverycontext "ledger/internal/delivery/context"
	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/repository"
	"ledger/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// identityService implements the IdentityUsecase interface.
type identityService struct {
	userRepo      repository.UserRepository
	lookupTimeout time.Duration
	logger        *slog.Logger
}

// IdentityServiceParams holds dependencies for identityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Config   *config.Config
	Logger   *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	var authCfg *config.AuthConfig
	if params.Config != nil {
		authCfg = params.Config.Auth
	}

	return &identityService{
		userRepo:      params.UserRepo,
		lookupTimeout: authCfg.LookupTimeoutOrDefault(),
		logger:        params.Logger,
	}
}

func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve loads the user matching the token subject and derives the principal.
// The credential-store lookup is bounded by a timeout so a slow database
// cannot stall request handling.
func (srv *identityService) Resolve(ctx context.Context, subject string) (*entity.Principal, error) {
	lookupCtx, cancel := context.WithTimeout(ctx, srv.lookupTimeout)
	defer cancel()

	user, err := srv.userRepo.FindByEmail(lookupCtx, subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrIdentityNotFound, "token subject not found")
		}

		srv.log(ctx).Error("Failed to resolve identity", slog.String("subject", subject), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to resolve identity")
	}

	return &entity.Principal{
		UserID:       user.ID,
		Email:        user.Email,
		Name:         user.Name,
		Role:         entity.RoleUser,
		Capabilities: entity.CapabilitiesFor(entity.RoleUser),
	}, nil
}
