package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCounterStore mocks store.CounterStore
type MockCounterStore struct {
	mock.Mock
}

func (m *MockCounterStore) Get(ctx context.Context, key string) (int64, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCounterStore) Increment(ctx context.Context, key string) (int64, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCounterStore) Expire(ctx context.Context, key string, ttl time.Duration) error {
	args := m.Called(ctx, key, ttl)
	return args.Error(0)
}

func (m *MockCounterStore) Delete(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

func (m *MockCounterStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestAttemptLimiter_Blocked(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		count int64
		err   error
		want  bool
	}{
		{name: "no attempts", count: 0, want: false},
		{name: "under limit", count: 2, want: false},
		{name: "at limit", count: 3, want: true},
		{name: "store down fails open", err: errors.New("conn refused"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := new(MockCounterStore)
			s.On("Get", ctx, "auth:code_attempts:alice").Return(tt.count, tt.err)

			l := NewAttemptLimiter(s, 3, time.Minute)

			assert.Equal(t, tt.want, l.Blocked(ctx, "alice"))
			s.AssertExpectations(t)
		})
	}
}

func TestAttemptLimiter_RecordFailure_ArmsWindowOnFirst(t *testing.T) {
	ctx := context.Background()
	s := new(MockCounterStore)
	s.On("Increment", ctx, "auth:code_attempts:alice").Return(int64(1), nil).Once()
	s.On("Expire", ctx, "auth:code_attempts:alice", time.Minute).Return(nil).Once()

	l := NewAttemptLimiter(s, 3, time.Minute)
	l.RecordFailure(ctx, "alice")

	s.AssertExpectations(t)
}

func TestAttemptLimiter_RecordFailure_KeepsWindow(t *testing.T) {
	ctx := context.Background()
	s := new(MockCounterStore)
	s.On("Increment", ctx, "auth:code_attempts:alice").Return(int64(2), nil).Once()

	l := NewAttemptLimiter(s, 3, time.Minute)
	l.RecordFailure(ctx, "alice")

	s.AssertExpectations(t)
	s.AssertNotCalled(t, "Expire", mock.Anything, mock.Anything, mock.Anything)
}

func TestAttemptLimiter_Reset(t *testing.T) {
	ctx := context.Background()
	s := new(MockCounterStore)
	s.On("Delete", ctx, []string{"auth:code_attempts:alice"}).Return(nil).Once()

	l := NewAttemptLimiter(s, 3, time.Minute)
	l.Reset(ctx, "alice")

	s.AssertExpectations(t)
}
