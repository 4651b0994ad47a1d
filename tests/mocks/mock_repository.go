package mocks

import (
	"context"

	"cardioguard/internal/ml"
	"cardioguard/internal/models"
	"cardioguard/internal/repository"
	"cardioguard/internal/survey"

	"github.com/stretchr/testify/mock"
)

// Shared MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UsernameExists(username string) (bool, error) {
	args := m.Called(username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) EmailExists(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(id uint, update repository.ProfileUpdate) error {
	args := m.Called(id, update)
	return args.Error(0)
}

func (m *MockUserRepository) Authenticate(login, password string) (*models.User, error) {
	args := m.Called(login, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) DeleteAccount(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// Shared MockPredictionRepository
type MockPredictionRepository struct {
	mock.Mock
}

func (m *MockPredictionRepository) SaveWithLastTest(record *models.PredictionRecord) error {
	args := m.Called(record)
	return args.Error(0)
}

func (m *MockPredictionRepository) ListByUser(userID uint, limit int) ([]models.PredictionRecord, error) {
	args := m.Called(userID, limit)
	return args.Get(0).([]models.PredictionRecord), args.Error(1)
}

func (m *MockPredictionRepository) FindByIDAndUser(id, userID uint) (*models.PredictionRecord, error) {
	args := m.Called(id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PredictionRecord), args.Error(1)
}

func (m *MockPredictionRepository) DeleteByIDAndUser(id, userID uint) error {
	args := m.Called(id, userID)
	return args.Error(0)
}

func (m *MockPredictionRepository) DeleteAllByUser(userID uint) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockPredictionRepository) GetLastTest(userID uint) (*models.PredictionRecord, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PredictionRecord), args.Error(1)
}

// Shared MockFAQRepository
type MockFAQRepository struct {
	mock.Mock
}

func (m *MockFAQRepository) FindActive() ([]models.FAQ, error) {
	args := m.Called()
	return args.Get(0).([]models.FAQ), args.Error(1)
}

func (m *MockFAQRepository) Create(faq *models.FAQ) error {
	args := m.Called(faq)
	return args.Error(0)
}

func (m *MockFAQRepository) InvalidateCache() error {
	args := m.Called()
	return args.Error(0)
}

// Shared MockHealthInformationRepository
type MockHealthInformationRepository struct {
	mock.Mock
}

func (m *MockHealthInformationRepository) FindByCategory(category int) ([]models.HealthInformation, error) {
	args := m.Called(category)
	return args.Get(0).([]models.HealthInformation), args.Error(1)
}

func (m *MockHealthInformationRepository) FindAll() ([]models.HealthInformation, error) {
	args := m.Called()
	return args.Get(0).([]models.HealthInformation), args.Error(1)
}

func (m *MockHealthInformationRepository) Create(info *models.HealthInformation) error {
	args := m.Called(info)
	return args.Error(0)
}

func (m *MockHealthInformationRepository) InvalidateCache(category int) error {
	args := m.Called(category)
	return args.Error(0)
}

// Shared MockMLClient
type MockMLClient struct {
	mock.Mock
}

func (m *MockMLClient) Predict(ctx context.Context, payload *survey.Payload) (*ml.RiskResult, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ml.RiskResult), args.Error(1)
}

func (m *MockMLClient) HealthCheck(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMLClient) Close() error {
	args := m.Called()
	return args.Error(0)
}
