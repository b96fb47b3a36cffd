package jobs

import (
	"fmt"
	"time"

	"github.com/Ishan-giri-05293/private-memory-vault/internal/models"
	"github.com/Ishan-giri-05293/private-memory-vault/internal/records"
	"github.com/Ishan-giri-05293/private-memory-vault/internal/services"
	"github.com/sirupsen/logrus"
)

type TargetDateNotifier struct {
	GoalService         *services.GoalService
	NotificationService *services.NotificationService
}

// NewTargetDateNotifier creates a new instance of TargetDateNotifier
func NewTargetDateNotifier(goalService *services.GoalService, notifService *services.NotificationService) *TargetDateNotifier {
	return &TargetDateNotifier{
		GoalService:         goalService,
		NotificationService: notifService,
	}
}

// RunScan files a reminder for each unachieved goal whose target date falls
// within the next 24h. Only strict "YYYY-MM-DD" dates are considered; free
// text dates ("Dec 2026", "No date") are skipped. Reminders never change a
// goal's status or progress.
func (d *TargetDateNotifier) RunScan() error {
	goals := d.GoalService.AllGoals()

	now := time.Now()
	tomorrow := now.Add(24 * time.Hour)

	for _, goal := range goals {
		if goal.Status == models.StatusAchieved {
			continue
		}
		if !records.IsStrictDate(goal.TargetDate) {
			continue
		}
		due, err := time.Parse("2006-01-02", goal.TargetDate)
		if err != nil {
			continue
		}
		if due.Before(now) || due.After(tomorrow) {
			continue
		}
		if d.NotificationService.HasUnread("target_date_soon", goal.ID) {
			continue
		}

		d.NotificationService.CreateNotification(
			"target_date_soon",
			"Target Date Approaching",
			fmt.Sprintf("Your goal \"%s\" reaches its target date on %s.", goal.Title, due.Format("Jan 2")),
			goal.ID,
		)
	}

	logrus.Info("Target date scan completed")
	return nil
}
