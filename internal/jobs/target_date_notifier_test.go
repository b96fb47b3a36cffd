package jobs

import (
	"testing"
	"time"

	"github.com/Ishan-giri-05293/private-memory-vault/internal/models"
	"github.com/Ishan-giri-05293/private-memory-vault/internal/records"
	"github.com/Ishan-giri-05293/private-memory-vault/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeKV struct {
	values map[string]string
}

func (f *fakeKV) Get(key string) (string, bool) {
	v, ok := f.values[key]
	return v, ok
}

func (f *fakeKV) Set(key, value string) error {
	f.values[key] = value
	return nil
}

func TestTargetDateScan(t *testing.T) {
	kv := &fakeKV{values: make(map[string]string)}
	notifications := services.NewNotificationService(records.NewNotificationStore(kv))
	goals := services.NewGoalService(records.NewGoalStore(kv), notifications)

	dueSoon := time.Now().Add(24 * time.Hour).Format("2006-01-02")
	farAway := time.Now().Add(30 * 24 * time.Hour).Format("2006-01-02")

	soon, err := goals.CreateGoal(models.GoalDraft{Title: "due soon", TargetDate: dueSoon})
	require.NoError(t, err)
	_, err = goals.CreateGoal(models.GoalDraft{Title: "far away", TargetDate: farAway})
	require.NoError(t, err)
	_, err = goals.CreateGoal(models.GoalDraft{Title: "free text", TargetDate: "Dec 2026"})
	require.NoError(t, err)
	achieved, err := goals.CreateGoal(models.GoalDraft{Title: "already done", TargetDate: dueSoon})
	require.NoError(t, err)
	_, err = goals.ToggleAchieved(achieved.ID)
	require.NoError(t, err)

	notifier := NewTargetDateNotifier(goals, notifications)
	require.NoError(t, notifier.RunScan())

	// One celebration from ToggleAchieved plus one reminder for the goal
	// actually due soon.
	reminders := 0
	for _, n := range notifications.GetNotifications() {
		if n.Type == "target_date_soon" {
			reminders++
			assert.Equal(t, soon.ID, n.TargetID)
		}
	}
	assert.Equal(t, 1, reminders)

	// A second scan does not duplicate a pending reminder.
	require.NoError(t, notifier.RunScan())
	reminders = 0
	for _, n := range notifications.GetNotifications() {
		if n.Type == "target_date_soon" {
			reminders++
		}
	}
	assert.Equal(t, 1, reminders)
}
