package records

import (
	"encoding/json"
	"sync"

	"github.com/Ishan-giri-05293/private-memory-vault/internal/models"
	"github.com/Ishan-giri-05293/private-memory-vault/pkg/logger"
	"github.com/google/uuid"
)

// NotificationStore keeps the pending celebration and reminder
// notifications until the user dismisses them.
type NotificationStore struct {
	mu            sync.RWMutex
	kv            KV
	key           string
	notifications []models.Notification
}

// NewNotificationStore loads persisted notifications, empty on any trouble.
func NewNotificationStore(kv KV) *NotificationStore {
	s := &NotificationStore{kv: kv, key: NotificationsKey}

	raw, ok := kv.Get(s.key)
	if !ok {
		return s
	}
	var notifications []models.Notification
	if err := json.Unmarshal([]byte(raw), &notifications); err != nil {
		logger.Log.WithError(err).Warn("Persisted notifications unreadable, starting empty")
		return s
	}
	s.notifications = notifications
	return s
}

// Create appends a notification and persists the collection.
func (s *NotificationStore) Create(kind, title, message, targetID string) *models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := models.Notification{
		ID:        uuid.NewString(),
		Type:      kind,
		Title:     title,
		Message:   message,
		TargetID:  targetID,
		CreatedAt: nowMillis(),
	}
	s.notifications = append([]models.Notification{n}, s.notifications...)
	s.save()
	return &n
}

// Unread returns the notifications the user has not dismissed yet.
func (s *NotificationStore) Unread() []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		if !n.Read {
			out = append(out, n)
		}
	}
	return out
}

// Dismiss marks a notification as read. Returns false if the id is unknown.
func (s *NotificationStore) Dismiss(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Read = true
			s.save()
			return true
		}
	}
	return false
}

func (s *NotificationStore) save() {
	data, err := json.Marshal(s.notifications)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to serialize notifications")
		return
	}
	if err := s.kv.Set(s.key, string(data)); err != nil {
		logger.Log.WithError(err).Error("Failed to persist notifications")
	}
}
