package usecase

import (
	"context"
	"time"

	"go-volink-backend/internal/domain"
	"go-volink-backend/pkg/apperror"
)

type notificationUsecase struct {
	notificationRepo domain.NotificationRepository
}

func NewNotificationUsecase(notificationRepo domain.NotificationRepository) domain.NotificationUsecase {
	return &notificationUsecase{notificationRepo: notificationRepo}
}

func (u *notificationUsecase) Notify(ctx context.Context, userID int64, message, ntype string) error {
	if ntype == "" {
		ntype = domain.NotificationTypeSystem
	}
	n := &domain.Notification{
		UserID:    userID,
		Message:   message,
		Type:      ntype,
		CreatedAt: time.Now(),
	}
	return u.notificationRepo.Create(ctx, n)
}

func (u *notificationUsecase) List(ctx context.Context, userID int64, limit int) ([]domain.Notification, error) {
	if limit < 1 {
		limit = 50
	}
	return u.notificationRepo.FetchByUser(ctx, userID, limit)
}

func (u *notificationUsecase) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	return u.notificationRepo.CountUnread(ctx, userID)
}

func (u *notificationUsecase) MarkRead(ctx context.Context, userID, notificationID int64) error {
	n, err := u.notificationRepo.GetByID(ctx, notificationID)
	if err != nil {
		return apperror.NotFound("Notification not found")
	}
	if n.UserID != userID {
		return apperror.Forbidden("You can only mark your own notifications as read")
	}
	if n.ReadAt != nil {
		return nil // already read, nothing to do
	}
	return u.notificationRepo.MarkRead(ctx, notificationID, time.Now())
}

func (u *notificationUsecase) MarkAllRead(ctx context.Context, userID int64) error {
	return u.notificationRepo.MarkAllRead(ctx, userID, time.Now())
}
