package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Ishan-giri-05293/private-memory-vault/internal/models"
	"github.com/Ishan-giri-05293/private-memory-vault/internal/records"
	"github.com/Ishan-giri-05293/private-memory-vault/internal/services"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// GoalHandler handles HTTP requests related to goals.
type GoalHandler struct {
	Service *services.GoalService
}

// NewGoalHandler creates a new instance of GoalHandler.
func NewGoalHandler(service *services.GoalService) *GoalHandler {
	return &GoalHandler{Service: service}
}

// CreateGoalHandler handles the creation of a new goal.
func (h *GoalHandler) CreateGoalHandler(w http.ResponseWriter, r *http.Request) {
	var draft models.GoalDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		logrus.WithError(err).Warn("Invalid request payload during goal creation")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if err := models.ValidateStruct(draft); err != nil {
		logrus.WithError(err).Warn("Goal draft failed validation")
		http.Error(w, "Invalid goal fields", http.StatusBadRequest)
		return
	}

	goal, err := h.Service.CreateGoal(draft)
	if err != nil {
		if errors.Is(err, services.ErrEmptyTitle) {
			http.Error(w, "Goal title is required", http.StatusBadRequest)
			return
		}
		logrus.WithError(err).Error("Failed to create goal")
		http.Error(w, "Failed to create goal", http.StatusInternalServerError)
		return
	}

	logrus.WithField("goalID", goal.ID).Info("Goal successfully created")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(goal)
}

// GetGoalsHandler returns the filtered, sorted goal collection.
// Query params: filter (All|Active|Achieved), q (search), view (List|Timeline).
func (h *GoalHandler) GetGoalsHandler(w http.ResponseWriter, r *http.Request) {
	mode := records.FilterMode(r.URL.Query().Get("filter"))
	switch mode {
	case records.FilterActive, records.FilterAchieved:
	default:
		mode = records.FilterAll
	}

	view := records.ViewMode(r.URL.Query().Get("view"))
	if view != records.ViewTimeline {
		view = records.ViewList
	}

	search := r.URL.Query().Get("q")
	goals := h.Service.ListGoals(mode, search, view)

	logrus.WithFields(logrus.Fields{
		"filter":    mode,
		"view":      view,
		"goalCount": len(goals),
	}).Info("Goals fetched successfully")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(goals)
}

// GetGoalHandler handles fetching a single goal by its ID.
func (h *GoalHandler) GetGoalHandler(w http.ResponseWriter, r *http.Request) {
	goalID := mux.Vars(r)["id"]

	goal, err := h.Service.GetGoal(goalID)
	if err != nil {
		logrus.WithField("goalID", goalID).Warn("Goal not found")
		http.Error(w, "Goal not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(goal)
}

// UpdateGoalHandler handles editing an existing goal.
func (h *GoalHandler) UpdateGoalHandler(w http.ResponseWriter, r *http.Request) {
	goalID := mux.Vars(r)["id"]
	log := logrus.WithField("goalID", goalID)

	var draft models.GoalDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		log.WithError(err).Warn("Invalid update payload")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if err := models.ValidateStruct(draft); err != nil {
		log.WithError(err).Warn("Goal draft failed validation")
		http.Error(w, "Invalid goal fields", http.StatusBadRequest)
		return
	}

	goal, err := h.Service.UpdateGoal(goalID, draft)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			http.Error(w, "Goal not found", http.StatusNotFound)
		case errors.Is(err, services.ErrEmptyTitle):
			http.Error(w, "Goal title is required", http.StatusBadRequest)
		default:
			log.WithError(err).Error("Failed to update goal")
			http.Error(w, "Failed to update goal", http.StatusInternalServerError)
		}
		return
	}

	log.Info("Goal successfully updated")
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(goal)
}

// DeleteGoalHandler handles deleting a goal by its ID. The confirmation
// dialog guarding this action lives in the presentation layer.
func (h *GoalHandler) DeleteGoalHandler(w http.ResponseWriter, r *http.Request) {
	goalID := mux.Vars(r)["id"]
	log := logrus.WithField("goalID", goalID)

	if err := h.Service.DeleteGoal(goalID); err != nil {
		log.WithError(err).Warn("Goal not found during delete")
		http.Error(w, "Goal not found", http.StatusNotFound)
		return
	}

	log.Info("Goal deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}

// ToggleAchievedHandler flips a goal between Achieved and In Progress.
func (h *GoalHandler) ToggleAchievedHandler(w http.ResponseWriter, r *http.Request) {
	goalID := mux.Vars(r)["id"]
	log := logrus.WithField("goalID", goalID)

	goal, err := h.Service.ToggleAchieved(goalID)
	if err != nil {
		log.WithError(err).Warn("Goal not found during achieve toggle")
		http.Error(w, "Goal not found", http.StatusNotFound)
		return
	}

	log.WithField("status", goal.Status).Info("Goal achievement toggled")
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(goal)
}

// ToggleMilestoneHandler flips one milestone's done flag.
func (h *GoalHandler) ToggleMilestoneHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	goalID := vars["id"]
	milestoneID := vars["milestoneId"]
	log := logrus.WithFields(logrus.Fields{
		"goalID":      goalID,
		"milestoneID": milestoneID,
	})

	goal, err := h.Service.ToggleMilestone(goalID, milestoneID)
	if err != nil {
		log.WithError(err).Warn("Goal or milestone not found during toggle")
		http.Error(w, "Goal or milestone not found", http.StatusNotFound)
		return
	}

	log.WithField("progress", goal.Progress).Info("Milestone toggled")
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(goal)
}
