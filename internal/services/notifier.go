package services

import (
	"github.com/skillshare-platform/backend/internal/models"
	"github.com/skillshare-platform/backend/internal/repositories"
	"go.uber.org/zap"
)

// Notifier delivers a message to a user. Fire-and-forget: a failed delivery
// must never fail the operation that triggered it.
type Notifier interface {
	Notify(userID uint, message string)
}

type storeNotifier struct {
	notifications repositories.NotificationRepository
	log           *zap.SugaredLogger
}

// NewStoreNotifier returns a Notifier that persists notifications for later
// retrieval. Persistence failures are logged and swallowed.
func NewStoreNotifier(notifications repositories.NotificationRepository, log *zap.SugaredLogger) Notifier {
	return &storeNotifier{notifications: notifications, log: log}
}

func (n *storeNotifier) Notify(userID uint, message string) {
	notification := &models.Notification{
		UserID:  userID,
		Message: message,
	}
	if err := n.notifications.CreateNotification(notification); err != nil {
		n.log.Warnw("notification dropped", "user_id", userID, "error", err)
	}
}
