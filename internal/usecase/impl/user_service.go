// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"jobportal/config"
	deliverycontext "jobportal/internal/delivery/context"
	"jobportal/internal/domain/entity"
	domainerrors "jobportal/internal/domain/errors"
	"jobportal/internal/domain/repository"
	"jobportal/internal/domain/service"
	"jobportal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	credentialRepo repository.CredentialRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	logger         *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	CredentialRepo repository.CredentialRepository
	Hasher         service.PasswordHasher
	TokenService   service.TokenService
	Config         *config.Config
	Logger         *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		credentialRepo: params.CredentialRepo,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp orchestrates the complete registration flow: role check, duplicate
// check, password hashing, atomic persistence of the account and its
// credential, and issuing the first access token.
func (srv *userService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.AuthOutput, error) {
	role, ok := entity.ParseRole(input.Role)
	if !ok {
		return nil, domainerrors.ErrInvalidRole
	}

	srv.log(ctx).Info("Starting signup", slog.String("role", role.String()), slog.String("email", input.Email))

	var registeredUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		credentialRepo := repoFactory.CredentialRepo()

		// The duplicate check runs before any hashing work so a taken email
		// never costs a bcrypt round.
		_, err := credentialRepo.FindCredentialByEmail(ctx, input.Email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists
		}
		if !errors.Is(err, repository.ErrCredentialNotFound) {
			return errors.Wrap(err, "failed to check existing credential")
		}

		passwordHash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return err
		}

		user, err := entity.NewUser(input.Name, input.Email, role)
		if err != nil {
			return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
		}

		if err := userRepo.Create(ctx, user); err != nil {
			return err
		}

		// Both rows commit or neither does; a user without a credential
		// would be an unreachable account.
		cred := &entity.Credential{
			UserID:       user.ID,
			Email:        user.Email,
			PasswordHash: passwordHash,
		}
		if err := credentialRepo.CreateCredential(ctx, cred); err != nil {
			return err
		}

		registeredUser = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Signup transaction failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Signup completed", slog.Any("userID", registeredUser.ID))

	return srv.issueToken(registeredUser)
}

// SignIn verifies a password against the stored credential. Unknown email,
// wrong password and malformed stored hash all collapse to the same
// rejection so the response carries no account-existence oracle.
func (srv *userService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.AuthOutput, error) {
	cred, err := srv.credentialRepo.FindCredentialByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to load credential")
	}

	if !srv.hasher.Check(input.Password, cred.PasswordHash) {
		srv.log(ctx).Info("Signin rejected", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	user, err := srv.userRepo.FindByID(ctx, cred.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Credential without a live account; reject uniformly.
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to load user for credential")
	}

	srv.log(ctx).Debug("Signin completed", slog.Any("userID", user.ID))

	return srv.issueToken(user)
}

// GetProfile returns the account behind an authenticated subject.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return user, nil
}

// ListUsers returns every registered account, ordered by creation time.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// GetPlatformStats returns public per-role account totals.
func (srv *userService) GetPlatformStats(ctx context.Context) (*usecase.PlatformStats, error) {
	counts, err := srv.userRepo.CountByRole(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate platform stats")
	}

	return &usecase.PlatformStats{
		TotalUsers:  counts.Total,
		Hirers:      counts.Hirers,
		Applicants:  counts.Applicants,
		Freelancers: counts.Freelancers,
	}, nil
}

// issueToken signs a fresh access token for the given account.
func (srv *userService) issueToken(user *entity.User) (*usecase.AuthOutput, error) {
	accessToken, err := srv.tokenService.GenerateToken(user.ID, user.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.AuthOutput{
		AccessToken: accessToken,
		TokenType:   "bearer",
		User:        user,
	}, nil
}
