package services

import (
	"fmt"

	"github.com/Ishan-giri-05293/private-memory-vault/internal/models"
	"github.com/Ishan-giri-05293/private-memory-vault/internal/records"
	"github.com/Ishan-giri-05293/private-memory-vault/pkg/logger"
)

// GoalService encapsulates the business logic for goals.
type GoalService struct {
	store               *records.GoalStore
	NotificationService *NotificationService
}

// NewGoalService creates a new instance of GoalService.
func NewGoalService(store *records.GoalStore, notificationService *NotificationService) *GoalService {
	return &GoalService{
		store:               store,
		NotificationService: notificationService,
	}
}

// CreateGoal validates the draft and adds a new goal to the collection.
func (s *GoalService) CreateGoal(draft models.GoalDraft) (*models.Goal, error) {
	goal := s.store.Create(draft)
	if goal == nil {
		logger.Log.Warn("Goal title is empty during creation")
		return nil, ErrEmptyTitle
	}

	logger.Log.WithField("goal_id", goal.ID).Info("Goal created in service layer")
	return goal, nil
}

// GetGoal retrieves a goal by its ID.
func (s *GoalService) GetGoal(id string) (*models.Goal, error) {
	goal := s.store.Get(id)
	if goal == nil {
		logger.Log.WithField("goal_id", id).Warn("Goal not found in GetGoal")
		return nil, ErrNotFound
	}
	return goal, nil
}

// UpdateGoal replaces the mutable fields of an existing goal.
func (s *GoalService) UpdateGoal(id string, draft models.GoalDraft) (*models.Goal, error) {
	if s.store.Get(id) == nil {
		logger.Log.WithField("goal_id", id).Warn("Goal not found in UpdateGoal")
		return nil, ErrNotFound
	}

	goal := s.store.Update(id, draft)
	if goal == nil {
		logger.Log.WithField("goal_id", id).Warn("Goal title is empty during update")
		return nil, ErrEmptyTitle
	}

	logger.Log.WithField("goal_id", id).Info("Goal updated successfully in service layer")
	return goal, nil
}

// DeleteGoal removes a goal from the collection. The confirmation step
// guarding this irreversible action belongs to the presentation layer.
func (s *GoalService) DeleteGoal(id string) error {
	if !s.store.Delete(id) {
		logger.Log.WithField("goal_id", id).Warn("Goal not found in DeleteGoal")
		return ErrNotFound
	}

	logger.Log.WithField("goal_id", id).Info("Goal deleted successfully in service layer")
	return nil
}

// ToggleAchieved flips a goal between Achieved and In Progress. Achieving a
// goal files a celebration notification for the presentation layer.
func (s *GoalService) ToggleAchieved(id string) (*models.Goal, error) {
	goal, celebration := s.store.ToggleAchieved(id)
	if goal == nil {
		logger.Log.WithField("goal_id", id).Warn("Goal not found in ToggleAchieved")
		return nil, ErrNotFound
	}

	if celebration != nil {
		s.NotificationService.CreateNotification(
			"goal_achieved",
			"You kept a promise to yourself",
			fmt.Sprintf("You achieved your goal: %q. Let this moment stay with you.", celebration.Title),
			celebration.GoalID,
		)
	}

	logger.Log.WithFields(map[string]interface{}{
		"goal_id": id,
		"status":  goal.Status,
	}).Info("Goal achievement toggled in service layer")
	return goal, nil
}

// ToggleMilestone flips one milestone's done flag and recomputes progress.
func (s *GoalService) ToggleMilestone(goalID, milestoneID string) (*models.Goal, error) {
	goal := s.store.ToggleMilestone(goalID, milestoneID)
	if goal == nil {
		logger.Log.WithFields(map[string]interface{}{
			"goal_id":      goalID,
			"milestone_id": milestoneID,
		}).Warn("Goal or milestone not found in ToggleMilestone")
		return nil, ErrNotFound
	}

	logger.Log.WithFields(map[string]interface{}{
		"goal_id":  goalID,
		"progress": goal.Progress,
	}).Info("Milestone toggled in service layer")
	return goal, nil
}

// ListGoals returns the filtered, sorted view of the collection.
func (s *GoalService) ListGoals(mode records.FilterMode, search string, view records.ViewMode) []models.Goal {
	goals := records.FilterGoals(s.store.All(), mode, search)
	return records.SortGoals(goals, view)
}

// AllGoals returns the unfiltered collection, used by the reminder scan.
func (s *GoalService) AllGoals() []models.Goal {
	return s.store.All()
}
