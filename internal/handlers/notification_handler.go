package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Ishan-giri-05293/private-memory-vault/internal/services"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// NotificationHandler surfaces celebration and reminder notifications.
type NotificationHandler struct {
	Service *services.NotificationService
}

// NewNotificationHandler creates a new instance of NotificationHandler.
func NewNotificationHandler(service *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{Service: service}
}

// GetNotificationsHandler returns the undismissed notifications.
func (h *NotificationHandler) GetNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	notifications := h.Service.GetNotifications()

	logrus.WithField("count", len(notifications)).Info("Notifications fetched")
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(notifications)
}

// DismissNotificationHandler marks a notification as read.
func (h *NotificationHandler) DismissNotificationHandler(w http.ResponseWriter, r *http.Request) {
	notificationID := mux.Vars(r)["id"]

	if err := h.Service.DismissNotification(notificationID); err != nil {
		logrus.WithField("notificationID", notificationID).Warn("Notification not found")
		http.Error(w, "Notification not found", http.StatusNotFound)
		return
	}

	logrus.WithField("notificationID", notificationID).Info("Notification dismissed")
	w.WriteHeader(http.StatusNoContent)
}
