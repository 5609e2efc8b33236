package impl

import (
	"context"
	"log/slog"
	"testing"

	"jobportal/internal/domain/entity"
	domainerrors "jobportal/internal/domain/errors"
	"jobportal/internal/domain/repository"
	"jobportal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serviceFixture struct {
	userRepo       *mockUserRepository
	credentialRepo *mockCredentialRepository
	hasher         *mockPasswordHasher
	tokenService   *mockTokenService
	service        usecase.UserUsecase
}

func newServiceFixture() *serviceFixture {
	userRepo := &mockUserRepository{}
	credentialRepo := &mockCredentialRepository{}
	hasher := &mockPasswordHasher{}
	tokenService := &mockTokenService{}

	svc := &userService{
		txManager: &mockTransactionManager{factory: &mockRepositoryFactory{
			userRepo:       userRepo,
			credentialRepo: credentialRepo,
		}},
		userRepo:       userRepo,
		credentialRepo: credentialRepo,
		hasher:         hasher,
		tokenService:   tokenService,
		logger:         slog.Default(),
	}

	return &serviceFixture{
		userRepo:       userRepo,
		credentialRepo: credentialRepo,
		hasher:         hasher,
		tokenService:   tokenService,
		service:        svc,
	}
}

func TestUserService_SignUp_Success(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	input := &usecase.SignUpInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "Secret123!",
		Role:     "hirer",
	}

	f.credentialRepo.On("FindCredentialByEmail", ctx, input.Email).
		Return(nil, repository.ErrCredentialNotFound)
	f.hasher.On("Hash", input.Password).Return("$2a$10$hashed", nil)
	f.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			user.ID = uuid.New()
		}).
		Return(nil)
	f.credentialRepo.On("CreateCredential", ctx, mock.AnythingOfType("*entity.Credential")).
		Return(nil)
	f.tokenService.On("GenerateToken", mock.AnythingOfType("uuid.UUID"), "hirer").
		Return("signed.access.token", nil)

	output, err := f.service.SignUp(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed.access.token", output.AccessToken)
	assert.Equal(t, "bearer", output.TokenType)
	require.NotNil(t, output.User)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, entity.RoleHirer, output.User.Role)

	f.credentialRepo.AssertExpectations(t)
	f.userRepo.AssertExpectations(t)
	f.hasher.AssertExpectations(t)
	f.tokenService.AssertExpectations(t)
}

func TestUserService_SignUp_DuplicateEmailBeforeHashing(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	input := &usecase.SignUpInput{
		Name:     "Alice",
		Email:    "taken@example.com",
		Password: "Secret123!",
		Role:     "applicant",
	}

	f.credentialRepo.On("FindCredentialByEmail", ctx, input.Email).
		Return(&entity.Credential{UserID: uuid.New(), Email: input.Email}, nil)

	output, err := f.service.SignUp(ctx, input)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))

	// A taken email never reaches the hasher.
	f.hasher.AssertNotCalled(t, "Hash", mock.Anything)
	f.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_SignUp_InvalidRole(t *testing.T) {
	f := newServiceFixture()

	output, err := f.service.SignUp(context.Background(), &usecase.SignUpInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "Secret123!",
		Role:     "admin",
	})
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRole))

	f.credentialRepo.AssertNotCalled(t, "FindCredentialByEmail", mock.Anything, mock.Anything)
}

func TestUserService_SignUp_HashFailureAborts(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	input := &usecase.SignUpInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "Secret123!",
		Role:     "freelancer",
	}

	f.credentialRepo.On("FindCredentialByEmail", ctx, input.Email).
		Return(nil, repository.ErrCredentialNotFound)
	f.hasher.On("Hash", input.Password).
		Return("", domainerrors.ErrPasswordHashFailed)

	output, err := f.service.SignUp(ctx, input)
	assert.Nil(t, output)
	assert.Error(t, err)

	f.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.credentialRepo.AssertNotCalled(t, "CreateCredential", mock.Anything, mock.Anything)
}

func TestUserService_SignIn_Success(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()
	userID := uuid.New()

	cred := &entity.Credential{
		UserID:       userID,
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$hashed",
	}
	user := &entity.User{
		ID:    userID,
		Email: cred.Email,
		Name:  "Alice",
		Role:  entity.RoleApplicant,
	}

	f.credentialRepo.On("FindCredentialByEmail", ctx, cred.Email).Return(cred, nil)
	f.hasher.On("Check", "Secret123!", cred.PasswordHash).Return(true)
	f.userRepo.On("FindByID", ctx, userID).Return(user, nil)
	f.tokenService.On("GenerateToken", userID, "applicant").Return("signed.access.token", nil)

	output, err := f.service.SignIn(ctx, &usecase.SignInInput{
		Email:    cred.Email,
		Password: "Secret123!",
	})
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed.access.token", output.AccessToken)
	assert.Equal(t, "bearer", output.TokenType)
	assert.Equal(t, user, output.User)
}

func TestUserService_SignIn_UniformRejection(t *testing.T) {
	// Unknown email, wrong password and a dangling credential must all
	// surface as the exact same error value.
	ctx := context.Background()
	userID := uuid.New()

	t.Run("unknown email", func(t *testing.T) {
		f := newServiceFixture()
		f.credentialRepo.On("FindCredentialByEmail", ctx, "ghost@example.com").
			Return(nil, repository.ErrCredentialNotFound)

		output, err := f.service.SignIn(ctx, &usecase.SignInInput{
			Email:    "ghost@example.com",
			Password: "Secret123!",
		})
		assert.Nil(t, output)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newServiceFixture()
		cred := &entity.Credential{UserID: userID, Email: "alice@example.com", PasswordHash: "$2a$10$hashed"}
		f.credentialRepo.On("FindCredentialByEmail", ctx, cred.Email).Return(cred, nil)
		f.hasher.On("Check", "WrongPass!", cred.PasswordHash).Return(false)

		output, err := f.service.SignIn(ctx, &usecase.SignInInput{
			Email:    cred.Email,
			Password: "WrongPass!",
		})
		assert.Nil(t, output)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("credential without account", func(t *testing.T) {
		f := newServiceFixture()
		cred := &entity.Credential{UserID: userID, Email: "alice@example.com", PasswordHash: "$2a$10$hashed"}
		f.credentialRepo.On("FindCredentialByEmail", ctx, cred.Email).Return(cred, nil)
		f.hasher.On("Check", "Secret123!", cred.PasswordHash).Return(true)
		f.userRepo.On("FindByID", ctx, userID).Return(nil, repository.ErrUserNotFound)

		output, err := f.service.SignIn(ctx, &usecase.SignInInput{
			Email:    cred.Email,
			Password: "Secret123!",
		})
		assert.Nil(t, output)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})
}

func TestUserService_GetProfile(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()
	userID := uuid.New()

	user := &entity.User{ID: userID, Email: "alice@example.com", Role: entity.RoleHirer}
	f.userRepo.On("FindByID", ctx, userID).Return(user, nil)

	got, err := f.service.GetProfile(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, user, got)

	missing := uuid.New()
	f.userRepo.On("FindByID", ctx, missing).Return(nil, repository.ErrUserNotFound)

	got, err = f.service.GetProfile(ctx, missing)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_GetPlatformStats(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	f.userRepo.On("CountByRole", ctx).Return(&repository.RoleCounts{
		Total:       7,
		Hirers:      2,
		Applicants:  4,
		Freelancers: 1,
	}, nil)

	stats, err := f.service.GetPlatformStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), stats.TotalUsers)
	assert.Equal(t, int64(2), stats.Hirers)
	assert.Equal(t, int64(4), stats.Applicants)
	assert.Equal(t, int64(1), stats.Freelancers)
}
