package impl

import (
	"context"
	"time"

	"jobportal/internal/domain/entity"
	"jobportal/internal/domain/repository"
	"jobportal/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Test doubles for the repository and service interfaces.

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *mockUserRepository) List(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if users, ok := args.Get(0).([]*entity.User); ok {
		return users, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepository) CountByRole(ctx context.Context) (*repository.RoleCounts, error) {
	args := m.Called(ctx)
	if counts, ok := args.Get(0).(*repository.RoleCounts); ok {
		return counts, args.Error(1)
	}

	return nil, args.Error(1)
}

type mockCredentialRepository struct {
	mock.Mock
}

func (m *mockCredentialRepository) CreateCredential(ctx context.Context, cred *entity.Credential) error {
	args := m.Called(ctx, cred)

	return args.Error(0)
}

func (m *mockCredentialRepository) FindCredentialByEmail(ctx context.Context, email string) (*entity.Credential, error) {
	args := m.Called(ctx, email)
	if cred, ok := args.Get(0).(*entity.Credential); ok {
		return cred, args.Error(1)
	}

	return nil, args.Error(1)
}

// mockRepositoryFactory hands back the same repository doubles that the test
// configured outside the transaction.
type mockRepositoryFactory struct {
	userRepo       *mockUserRepository
	credentialRepo *mockCredentialRepository
}

func (f *mockRepositoryFactory) UserRepo() repository.UserRepository {
	return f.userRepo
}

func (f *mockRepositoryFactory) CredentialRepo() repository.CredentialRepository {
	return f.credentialRepo
}

// mockTransactionManager runs the callback immediately without a database.
type mockTransactionManager struct {
	factory *mockRepositoryFactory
}

func (m *mockTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

func (m *mockPasswordHasher) ValidatePassword(password string) error {
	args := m.Called(password)

	return args.Error(0)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) GenerateToken(userID uuid.UUID, role string) (string, error) {
	args := m.Called(userID, role)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) GenerateTokenWithTTL(userID uuid.UUID, role string, ttl time.Duration) (string, error) {
	args := m.Called(userID, role, ttl)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if claims, ok := args.Get(0).(*service.Claims); ok {
		return claims, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockTokenService) GetAccessTokenDuration() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}
