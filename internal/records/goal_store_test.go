package records

import (
	"fmt"
	"sync"
	"testing"

	"github.com/Ishan-giri-05293/private-memory-vault/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeKV is an in-memory stand-in for the persistence collaborator.
type fakeKV struct {
	values map[string]string
}

func newFakeKV() *fakeKV {
	return &fakeKV{values: make(map[string]string)}
}

func (f *fakeKV) Get(key string) (string, bool) {
	v, ok := f.values[key]
	return v, ok
}

func (f *fakeKV) Set(key, value string) error {
	f.values[key] = value
	return nil
}

func TestCreateGoalDefaults(t *testing.T) {
	store := NewGoalStore(newFakeKV())

	goal := store.Create(models.GoalDraft{Title: "Learn piano", TargetDate: ""})
	require.NotNil(t, goal)

	assert.Equal(t, models.NoDate, goal.TargetDate)
	assert.Equal(t, 0, goal.Progress)
	assert.Equal(t, models.StatusNotStarted, goal.Status)
	assert.Nil(t, goal.AchievedAt)
	assert.NotEmpty(t, goal.ID)
	assert.NotZero(t, goal.CreatedAt)
}

func TestCreateGoalInsertsAtFrontWithUniqueIDs(t *testing.T) {
	store := NewGoalStore(newFakeKV())

	seen := make(map[string]bool)
	for _, title := range []string{"first", "second", "third"} {
		goal := store.Create(models.GoalDraft{Title: title})
		require.NotNil(t, goal)
		assert.False(t, seen[goal.ID], "id %s reused", goal.ID)
		seen[goal.ID] = true

		assert.Equal(t, title, store.All()[0].Title)
	}
	assert.Len(t, store.All(), 3)
}

func TestCreateGoalEmptyTitleIsNoOp(t *testing.T) {
	store := NewGoalStore(newFakeKV())
	store.Create(models.GoalDraft{Title: "keep me"})

	assert.Nil(t, store.Create(models.GoalDraft{Title: ""}))
	assert.Nil(t, store.Create(models.GoalDraft{Title: "   "}))
	assert.Len(t, store.All(), 1)
}

func TestCreateGoalDerivesProgressFromMilestones(t *testing.T) {
	store := NewGoalStore(newFakeKV())

	// Manual slider says 40, but the one milestone is not done: derived wins.
	goal := store.Create(models.GoalDraft{
		Title:    "Buy a piano",
		Progress: 40,
		Milestones: []models.MilestoneDraft{
			{Text: "Buy piano", Done: false},
		},
	})
	require.NotNil(t, goal)
	assert.Equal(t, 0, goal.Progress)
	require.Len(t, goal.Milestones, 1)
	assert.NotEmpty(t, goal.Milestones[0].ID)
}

func TestCreateGoalManualProgressClamped(t *testing.T) {
	store := NewGoalStore(newFakeKV())

	goal := store.Create(models.GoalDraft{Title: "over", Progress: 150})
	require.NotNil(t, goal)
	assert.Equal(t, 100, goal.Progress)

	goal = store.Create(models.GoalDraft{Title: "under", Progress: -10})
	require.NotNil(t, goal)
	assert.Equal(t, 0, goal.Progress)
}

func TestCreateGoalDropsBlankMilestones(t *testing.T) {
	store := NewGoalStore(newFakeKV())

	goal := store.Create(models.GoalDraft{
		Title: "trim",
		Milestones: []models.MilestoneDraft{
			{Text: "  real one  ", Done: true},
			{Text: "   "},
			{Text: ""},
		},
	})
	require.NotNil(t, goal)
	require.Len(t, goal.Milestones, 1)
	assert.Equal(t, "real one", goal.Milestones[0].Text)
	assert.Equal(t, 100, goal.Progress)
}

func TestUpdateGoalPreservesIdentity(t *testing.T) {
	store := NewGoalStore(newFakeKV())
	created := store.Create(models.GoalDraft{Title: "before"})

	updated := store.Update(created.ID, models.GoalDraft{
		Title:      "after",
		TargetDate: "2026-12-01",
		Status:     models.StatusInProgress,
		Progress:   55,
	})
	require.NotNil(t, updated)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "after", updated.Title)
	assert.Equal(t, "2026-12-01", updated.TargetDate)
	assert.Equal(t, 55, updated.Progress)
}

func TestUpdateGoalNoOps(t *testing.T) {
	store := NewGoalStore(newFakeKV())
	created := store.Create(models.GoalDraft{Title: "stable"})

	assert.Nil(t, store.Update("missing", models.GoalDraft{Title: "x"}))
	assert.Nil(t, store.Update(created.ID, models.GoalDraft{Title: "  "}))

	assert.Equal(t, "stable", store.Get(created.ID).Title)
}

func TestUpdateGoalStampsAndClearsAchievedAt(t *testing.T) {
	store := NewGoalStore(newFakeKV())
	created := store.Create(models.GoalDraft{Title: "goal"})

	achieved := store.Update(created.ID, models.GoalDraft{Title: "goal", Status: models.StatusAchieved})
	require.NotNil(t, achieved)
	require.NotNil(t, achieved.AchievedAt)
	first := *achieved.AchievedAt

	// Editing again while still Achieved keeps the original stamp.
	again := store.Update(created.ID, models.GoalDraft{Title: "goal edited", Status: models.StatusAchieved})
	require.NotNil(t, again.AchievedAt)
	assert.Equal(t, first, *again.AchievedAt)

	reverted := store.Update(created.ID, models.GoalDraft{Title: "goal", Status: models.StatusInProgress})
	assert.Nil(t, reverted.AchievedAt)
}

func TestUpdateGoalRemovingLastMilestoneRevertsToManualProgress(t *testing.T) {
	store := NewGoalStore(newFakeKV())
	created := store.Create(models.GoalDraft{
		Title: "goal",
		Milestones: []models.MilestoneDraft{
			{Text: "done step", Done: true},
		},
	})
	assert.Equal(t, 100, created.Progress)

	// Edit removes all milestones; progress becomes the slider value from
	// this same edit.
	updated := store.Update(created.ID, models.GoalDraft{Title: "goal", Progress: 30})
	require.NotNil(t, updated)
	assert.Empty(t, updated.Milestones)
	assert.Equal(t, 30, updated.Progress)
}

func TestDeleteGoal(t *testing.T) {
	store := NewGoalStore(newFakeKV())
	created := store.Create(models.GoalDraft{Title: "doomed"})

	assert.False(t, store.Delete("missing"))
	assert.True(t, store.Delete(created.ID))
	assert.False(t, store.Delete(created.ID))
	assert.Empty(t, store.All())
}

func TestToggleAchievedIsInvolution(t *testing.T) {
	store := NewGoalStore(newFakeKV())
	created := store.Create(models.GoalDraft{Title: "Learn piano", Progress: 40, Status: models.StatusInProgress})

	achieved, celebration := store.ToggleAchieved(created.ID)
	require.NotNil(t, achieved)
	require.NotNil(t, celebration)
	assert.Equal(t, "Learn piano", celebration.Title)
	assert.Equal(t, models.StatusAchieved, achieved.Status)
	assert.Equal(t, 100, achieved.Progress)
	assert.NotNil(t, achieved.AchievedAt)

	// Un-achieve: status reverts, stamp clears, progress stays at 100.
	reverted, celebration := store.ToggleAchieved(created.ID)
	require.NotNil(t, reverted)
	assert.Nil(t, celebration)
	assert.Equal(t, models.StatusInProgress, reverted.Status)
	assert.Equal(t, 100, reverted.Progress)
	assert.Nil(t, reverted.AchievedAt)
}

func TestToggleAchievedUnknownID(t *testing.T) {
	store := NewGoalStore(newFakeKV())
	goal, celebration := store.ToggleAchieved("missing")
	assert.Nil(t, goal)
	assert.Nil(t, celebration)
}

func TestToggleMilestoneRecomputesProgress(t *testing.T) {
	store := NewGoalStore(newFakeKV())
	created := store.Create(models.GoalDraft{
		Title: "three steps",
		Milestones: []models.MilestoneDraft{
			{Text: "one"},
			{Text: "two"},
			{Text: "three"},
		},
	})
	assert.Equal(t, 0, created.Progress)

	goal := store.ToggleMilestone(created.ID, created.Milestones[0].ID)
	require.NotNil(t, goal)
	assert.Equal(t, 33, goal.Progress) // round(1/3 * 100)

	goal = store.ToggleMilestone(created.ID, created.Milestones[1].ID)
	assert.Equal(t, 67, goal.Progress) // round(2/3 * 100)

	goal = store.ToggleMilestone(created.ID, created.Milestones[2].ID)
	assert.Equal(t, 100, goal.Progress)

	// Hitting 100 through milestones never implies achievement.
	assert.Equal(t, models.StatusNotStarted, goal.Status)
	assert.Nil(t, goal.AchievedAt)

	// Toggling back off recomputes downward too.
	goal = store.ToggleMilestone(created.ID, created.Milestones[0].ID)
	assert.Equal(t, 67, goal.Progress)
}

func TestToggleMilestoneNoOps(t *testing.T) {
	store := NewGoalStore(newFakeKV())
	created := store.Create(models.GoalDraft{
		Title:      "goal",
		Milestones: []models.MilestoneDraft{{Text: "step"}},
	})

	assert.Nil(t, store.ToggleMilestone("missing", created.Milestones[0].ID))
	assert.Nil(t, store.ToggleMilestone(created.ID, "missing"))
	assert.False(t, store.Get(created.ID).Milestones[0].Done)
}

func TestFilterGoalsByMode(t *testing.T) {
	goals := []models.Goal{
		{ID: "a", Title: "active one", Status: models.StatusInProgress},
		{ID: "b", Title: "done one", Status: models.StatusAchieved},
		{ID: "c", Title: "fresh one", Status: models.StatusNotStarted},
	}

	assert.Len(t, FilterGoals(goals, FilterAll, ""), 3)

	active := FilterGoals(goals, FilterActive, "")
	require.Len(t, active, 2)
	for _, g := range active {
		assert.NotEqual(t, models.StatusAchieved, g.Status)
	}

	achieved := FilterGoals(goals, FilterAchieved, "")
	require.Len(t, achieved, 1)
	assert.Equal(t, "b", achieved[0].ID)

	// Filtering is composable: Achieved after All equals Achieved alone.
	composed := FilterGoals(FilterGoals(goals, FilterAll, ""), FilterAchieved, "")
	assert.Equal(t, achieved, composed)
}

func TestFilterGoalsBySearchText(t *testing.T) {
	goals := []models.Goal{
		{ID: "a", Title: "Build a garden sanctuary"},
		{ID: "b", Title: "Learn piano"},
		{ID: "c", Title: "Read more", FutureMessage: "the garden of forking paths"},
		{ID: "d", Title: "Run", Milestones: []models.Milestone{{ID: "m", Text: "jog past the GARDEN"}}},
	}

	matched := FilterGoals(goals, FilterAll, "garden")
	require.Len(t, matched, 3)
	assert.Equal(t, "a", matched[0].ID)
	assert.Equal(t, "c", matched[1].ID)
	assert.Equal(t, "d", matched[2].ID)

	// Leading/trailing whitespace is ignored; empty search matches all.
	assert.Len(t, FilterGoals(goals, FilterAll, "  GARDEN  "), 3)
	assert.Len(t, FilterGoals(goals, FilterAll, "   "), 4)

	// Filtering never mutates the input.
	assert.Equal(t, "Build a garden sanctuary", goals[0].Title)
}

func TestSortGoalsListView(t *testing.T) {
	goals := []models.Goal{
		{ID: "old-achieved", Status: models.StatusAchieved, CreatedAt: 100},
		{ID: "new-progress", Status: models.StatusInProgress, CreatedAt: 400},
		{ID: "old-progress", Status: models.StatusInProgress, CreatedAt: 200},
		{ID: "fresh", Status: models.StatusNotStarted, CreatedAt: 300},
	}

	sorted := SortGoals(goals, ViewList)
	ids := []string{sorted[0].ID, sorted[1].ID, sorted[2].ID, sorted[3].ID}
	assert.Equal(t, []string{"fresh", "new-progress", "old-progress", "old-achieved"}, ids)
}

func TestSortGoalsTimelineView(t *testing.T) {
	goals := []models.Goal{
		{ID: "freeform", TargetDate: "Dec 2026", CreatedAt: 100},
		{ID: "dated", TargetDate: "2026-01-01", CreatedAt: 200},
		{ID: "none", TargetDate: models.NoDate, CreatedAt: 300},
		{ID: "earlier", TargetDate: "2025-06-15", CreatedAt: 400},
	}

	sorted := SortGoals(goals, ViewTimeline)
	assert.Equal(t, "earlier", sorted[0].ID)
	assert.Equal(t, "dated", sorted[1].ID)

	// Unparseable dates all sort last, newest created first among them.
	assert.Equal(t, "none", sorted[2].ID)
	assert.Equal(t, "freeform", sorted[3].ID)
}

func TestGoalStoreRoundTrip(t *testing.T) {
	kv := newFakeKV()
	store := NewGoalStore(kv)

	store.Create(models.GoalDraft{
		Title:         "round trip",
		TargetDate:    "2026-12-01",
		FutureMessage: "keep going",
		Milestones:    []models.MilestoneDraft{{Text: "halfway", Done: true}, {Text: "rest"}},
	})
	store.Create(models.GoalDraft{Title: "second", Progress: 60, Status: models.StatusInProgress})
	store.ToggleAchieved(store.All()[0].ID)

	reloaded := NewGoalStore(kv)
	assert.Equal(t, store.All(), reloaded.All())
}

func TestGoalStoreLoadsTolerantly(t *testing.T) {
	// Missing key
	assert.Empty(t, NewGoalStore(newFakeKV()).All())

	// Malformed JSON
	kv := newFakeKV()
	kv.values["vault_goals_v2"] = "{not json"
	assert.Empty(t, NewGoalStore(kv).All())

	// Valid JSON that is not an array
	kv = newFakeKV()
	kv.values["vault_goals_v2"] = `{"id":"x"}`
	assert.Empty(t, NewGoalStore(kv).All())
}

func TestGoalStoreConcurrentAccess(t *testing.T) {
	store := NewGoalStore(newFakeKV())

	const workers = 8
	const perWorker = 20

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				goal := store.Create(models.GoalDraft{Title: fmt.Sprintf("goal-%d-%d", w, i)})
				store.All()
				if goal != nil {
					store.ToggleAchieved(goal.ID)
					store.Get(goal.ID)
				}
			}
		}(w)
	}
	wg.Wait()

	assert.Len(t, store.All(), workers*perWorker)
}
