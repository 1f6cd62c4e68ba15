package services

import (
	"errors"
	"fmt"

	"github.com/skillshare-platform/backend/internal/models"
	"github.com/skillshare-platform/backend/internal/repositories"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NotificationService exposes a user's own notifications. Mutations are
// ownership-guarded against the notification's target.
type NotificationService interface {
	ListForUser(email string) ([]models.Notification, error)
	UnreadCount(email string) (int64, error)
	MarkRead(id uint, callerEmail string) error
	MarkAllRead(email string) error
	Delete(id uint, callerEmail string) error
}

type notificationService struct {
	notifications repositories.NotificationRepository
	users         repositories.UserRepository
	log           *zap.SugaredLogger
}

func NewNotificationService(
	notifications repositories.NotificationRepository,
	users repositories.UserRepository,
	log *zap.SugaredLogger,
) NotificationService {
	return &notificationService{notifications: notifications, users: users, log: log}
}

func (s *notificationService) ListForUser(email string) ([]models.Notification, error) {
	user, err := s.resolveUser(email)
	if err != nil {
		return nil, err
	}
	return s.notifications.GetByUserID(user.ID)
}

func (s *notificationService) UnreadCount(email string) (int64, error) {
	user, err := s.resolveUser(email)
	if err != nil {
		return 0, err
	}
	return s.notifications.GetUnreadCount(user.ID)
}

func (s *notificationService) MarkRead(id uint, callerEmail string) error {
	caller, err := s.resolveUser(callerEmail)
	if err != nil {
		return err
	}
	notification, err := s.getNotification(id)
	if err != nil {
		return err
	}
	if err := AssertOwner(notification.UserID, caller.ID); err != nil {
		return err
	}
	notification.IsRead = true
	return s.notifications.SaveNotification(notification)
}

func (s *notificationService) MarkAllRead(email string) error {
	user, err := s.resolveUser(email)
	if err != nil {
		return err
	}
	return s.notifications.MarkAllAsRead(user.ID)
}

func (s *notificationService) Delete(id uint, callerEmail string) error {
	caller, err := s.resolveUser(callerEmail)
	if err != nil {
		return err
	}
	notification, err := s.getNotification(id)
	if err != nil {
		return err
	}
	if err := AssertOwner(notification.UserID, caller.ID); err != nil {
		return err
	}
	return s.notifications.DeleteNotification(id)
}

func (s *notificationService) resolveUser(email string) (*models.User, error) {
	user, err := s.users.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no account for %s", ErrNotFound, email)
		}
		return nil, fmt.Errorf("resolve caller: %w", err)
	}
	return user, nil
}

func (s *notificationService) getNotification(id uint) (*models.Notification, error) {
	notification, err := s.notifications.GetNotificationByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: notification %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("load notification %d: %w", id, err)
	}
	return notification, nil
}
