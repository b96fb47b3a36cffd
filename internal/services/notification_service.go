package services

import (
	"github.com/Ishan-giri-05293/private-memory-vault/internal/models"
	"github.com/Ishan-giri-05293/private-memory-vault/internal/records"
	"github.com/Ishan-giri-05293/private-memory-vault/pkg/logger"
)

// NotificationService manages the celebration and reminder notifications
// surfaced by the presentation layer.
type NotificationService struct {
	store *records.NotificationStore
}

// NewNotificationService creates a new instance of NotificationService.
func NewNotificationService(store *records.NotificationStore) *NotificationService {
	return &NotificationService{store: store}
}

// CreateNotification files a new notification.
func (s *NotificationService) CreateNotification(kind, title, message, targetID string) *models.Notification {
	n := s.store.Create(kind, title, message, targetID)
	logger.Log.WithFields(map[string]interface{}{
		"notification_id": n.ID,
		"type":            kind,
	}).Info("Notification created")
	return n
}

// GetNotifications returns the notifications not yet dismissed.
func (s *NotificationService) GetNotifications() []models.Notification {
	return s.store.Unread()
}

// DismissNotification marks a notification as read.
func (s *NotificationService) DismissNotification(id string) error {
	if !s.store.Dismiss(id) {
		logger.Log.WithField("notification_id", id).Warn("Notification not found in DismissNotification")
		return ErrNotFound
	}
	return nil
}

// HasUnread reports whether an undismissed notification of the given type
// already references the target. The reminder scan uses it to avoid filing
// the same reminder every hour.
func (s *NotificationService) HasUnread(kind, targetID string) bool {
	for _, n := range s.store.Unread() {
		if n.Type == kind && n.TargetID == targetID {
			return true
		}
	}
	return false
}
