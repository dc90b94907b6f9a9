package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-volink-backend/internal/domain"
	"go-volink-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	return m.Called(ctx, n).Error(0)
}
func (m *MockNotificationRepo) GetByID(ctx context.Context, id int64) (*domain.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}
func (m *MockNotificationRepo) FetchByUser(ctx context.Context, userID int64, limit int) ([]domain.Notification, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}
func (m *MockNotificationRepo) CountUnread(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockNotificationRepo) MarkRead(ctx context.Context, id int64, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}
func (m *MockNotificationRepo) MarkAllRead(ctx context.Context, userID int64, at time.Time) error {
	return m.Called(ctx, userID, at).Error(0)
}

func TestMarkRead(t *testing.T) {
	ctx := context.Background()

	t.Run("Should refuse marking another user's notification", func(t *testing.T) {
		repo := new(MockNotificationRepo)
		uc := usecase.NewNotificationUsecase(repo)
		repo.On("GetByID", ctx, int64(9)).Return(&domain.Notification{ID: 9, UserID: 200}, nil)

		err := uc.MarkRead(ctx, 100, 9)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "your own notifications")
	})

	t.Run("Should be a no-op when already read", func(t *testing.T) {
		repo := new(MockNotificationRepo)
		uc := usecase.NewNotificationUsecase(repo)
		readAt := time.Now().Add(-time.Hour)
		repo.On("GetByID", ctx, int64(9)).Return(&domain.Notification{ID: 9, UserID: 100, ReadAt: &readAt}, nil)

		err := uc.MarkRead(ctx, 100, 9)
		assert.NoError(t, err)
		repo.AssertNotCalled(t, "MarkRead", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should stamp an unread notification", func(t *testing.T) {
		repo := new(MockNotificationRepo)
		uc := usecase.NewNotificationUsecase(repo)
		repo.On("GetByID", ctx, int64(9)).Return(&domain.Notification{ID: 9, UserID: 100}, nil)
		repo.On("MarkRead", ctx, int64(9), mock.AnythingOfType("time.Time")).Return(nil)

		err := uc.MarkRead(ctx, 100, 9)
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestNotifyDefaultsType(t *testing.T) {
	ctx := context.Background()
	repo := new(MockNotificationRepo)
	uc := usecase.NewNotificationUsecase(repo)
	repo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil).Run(func(args mock.Arguments) {
		n := args.Get(1).(*domain.Notification)
		assert.Equal(t, domain.NotificationTypeSystem, n.Type)
	})

	err := uc.Notify(ctx, 100, "Welcome to Volink", "")
	assert.NoError(t, err)
}
