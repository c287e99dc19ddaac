package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"catalog-review-backend/internal/domains/user"
)

// MockRepository mocks user.Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockRepository) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, filter user.ListFilter) ([]user.User, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]user.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockRepository) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) SetConfirmationCode(ctx context.Context, id uuid.UUID, codeHash *string) error {
	args := m.Called(ctx, id, codeHash)
	return args.Error(0)
}

func (m *MockRepository) ConsumeConfirmationCode(ctx context.Context, id uuid.UUID, codeHash string) (bool, error) {
	args := m.Called(ctx, id, codeHash)
	return args.Bool(0), args.Error(1)
}

// MockMailer mocks Mailer
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, to, subject, body string) error {
	args := m.Called(ctx, to, subject, body)
	return args.Error(0)
}

// MockTokenIssuer mocks TokenIssuer
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) GenerateAccessToken(userID, username, role string) (string, time.Time, error) {
	args := m.Called(userID, username, role)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

// MockAttemptLimiter mocks AttemptLimiter
type MockAttemptLimiter struct {
	mock.Mock
}

func (m *MockAttemptLimiter) Blocked(ctx context.Context, username string) bool {
	args := m.Called(ctx, username)
	return args.Bool(0)
}

func (m *MockAttemptLimiter) RecordFailure(ctx context.Context, username string) {
	m.Called(ctx, username)
}

func (m *MockAttemptLimiter) Reset(ctx context.Context, username string) {
	m.Called(ctx, username)
}
