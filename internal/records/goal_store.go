package records

import (
	"encoding/json"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/Ishan-giri-05293/private-memory-vault/internal/models"
	"github.com/Ishan-giri-05293/private-memory-vault/pkg/logger"
	"github.com/google/uuid"
)

// Celebration is emitted when a goal transitions into Achieved. The
// presentation layer surfaces it and dismisses it later.
type Celebration struct {
	GoalID string
	Title  string
}

// GoalStore owns the canonical goal collection. Every mutation rewrites the
// serialized collection through the persistence collaborator; invalid input
// (empty title, unknown id) declines silently by returning nil. The mutex
// serializes access across request and cron goroutines.
type GoalStore struct {
	mu    sync.RWMutex
	kv    KV
	key   string
	goals []models.Goal
}

// NewGoalStore loads the persisted goal collection. A missing key, malformed
// JSON or a non-array value all start the store empty.
func NewGoalStore(kv KV) *GoalStore {
	s := &GoalStore{kv: kv, key: GoalsKey}

	raw, ok := kv.Get(s.key)
	if !ok {
		return s
	}
	var goals []models.Goal
	if err := json.Unmarshal([]byte(raw), &goals); err != nil {
		logger.Log.WithError(err).Warn("Persisted goals unreadable, starting empty")
		return s
	}
	s.goals = goals
	return s
}

// All returns a copy of the full collection, newest insertions first.
func (s *GoalStore) All() []models.Goal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Goal, len(s.goals))
	copy(out, s.goals)
	return out
}

// Get returns the goal with the given id, or nil.
func (s *GoalStore) Get(id string) *models.Goal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.goals {
		if s.goals[i].ID == id {
			g := s.goals[i]
			return &g
		}
	}
	return nil
}

// Create builds a goal from the draft and inserts it at the front of the
// collection. Returns nil without touching the collection if the title trims
// to empty.
func (s *GoalStore) Create(draft models.GoalDraft) *models.Goal {
	title := strings.TrimSpace(draft.Title)
	if title == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	milestones := normalizeMilestones(draft.Milestones)

	goal := models.Goal{
		ID:            uuid.NewString(),
		Title:         title,
		TargetDate:    targetDateOrPlaceholder(draft.TargetDate),
		Status:        statusOrDefault(draft.Status),
		Progress:      deriveProgress(milestones, draft.Progress),
		FutureMessage: strings.TrimSpace(draft.FutureMessage),
		Milestones:    milestones,
		CreatedAt:     nowMillis(),
	}

	s.goals = append([]models.Goal{goal}, s.goals...)
	s.save()
	return &goal
}

// Update replaces the mutable fields of the goal matching id with the draft.
// ID and CreatedAt are preserved; AchievedAt is stamped when the edit moves
// the goal into Achieved and cleared when it moves out. Returns nil if no
// goal matches or the title trims to empty.
func (s *GoalStore) Update(id string, draft models.GoalDraft) *models.Goal {
	title := strings.TrimSpace(draft.Title)
	if title == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.goals {
		if s.goals[i].ID != id {
			continue
		}

		g := &s.goals[i]
		milestones := normalizeMilestones(draft.Milestones)
		status := statusOrDefault(draft.Status)

		g.Title = title
		g.TargetDate = targetDateOrPlaceholder(draft.TargetDate)
		g.Status = status
		g.Progress = deriveProgress(milestones, draft.Progress)
		g.FutureMessage = strings.TrimSpace(draft.FutureMessage)
		g.Milestones = milestones

		if status == models.StatusAchieved {
			if g.AchievedAt == nil {
				now := nowMillis()
				g.AchievedAt = &now
			}
		} else {
			g.AchievedAt = nil
		}

		s.save()
		out := *g
		return &out
	}
	return nil
}

// Delete removes the goal with the given id. Milestones die with their goal.
func (s *GoalStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.goals {
		if s.goals[i].ID == id {
			s.goals = append(s.goals[:i], s.goals[i+1:]...)
			s.save()
			return true
		}
	}
	return false
}

// ToggleAchieved flips the goal between Achieved and In Progress. Achieving
// forces progress to 100, stamps AchievedAt and returns a Celebration;
// un-achieving clears AchievedAt and leaves progress untouched. Achievement
// is always this explicit action, never implied by progress reaching 100.
func (s *GoalStore) ToggleAchieved(id string) (*models.Goal, *Celebration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.goals {
		if s.goals[i].ID != id {
			continue
		}

		g := &s.goals[i]
		var celebration *Celebration
		if g.Status == models.StatusAchieved {
			g.Status = models.StatusInProgress
			g.AchievedAt = nil
		} else {
			g.Status = models.StatusAchieved
			g.Progress = 100
			now := nowMillis()
			g.AchievedAt = &now
			celebration = &Celebration{GoalID: g.ID, Title: g.Title}
		}

		s.save()
		out := *g
		return &out, celebration
	}
	return nil, nil
}

// ToggleMilestone flips the done flag of one milestone and recomputes the
// goal's progress from the completion ratio. Status and AchievedAt are never
// touched here, even at 100%.
func (s *GoalStore) ToggleMilestone(goalID, milestoneID string) *models.Goal {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.goals {
		if s.goals[i].ID != goalID {
			continue
		}

		g := &s.goals[i]
		found := false
		for j := range g.Milestones {
			if g.Milestones[j].ID == milestoneID {
				g.Milestones[j].Done = !g.Milestones[j].Done
				found = true
				break
			}
		}
		if !found {
			return nil
		}

		if len(g.Milestones) > 0 {
			g.Progress = milestoneProgress(g.Milestones)
		}

		s.save()
		out := *g
		return &out
	}
	return nil
}

func (s *GoalStore) save() {
	data, err := json.Marshal(s.goals)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to serialize goals")
		return
	}
	if err := s.kv.Set(s.key, string(data)); err != nil {
		logger.Log.WithError(err).Error("Failed to persist goals")
	}
}

// FilterGoals derives a view of goals matching the mode and search text.
// Search is case-insensitive over title, future message and milestone texts.
// The input collection is never modified.
func FilterGoals(goals []models.Goal, mode FilterMode, search string) []models.Goal {
	out := make([]models.Goal, 0, len(goals))
	needle := strings.ToLower(strings.TrimSpace(search))

	for _, g := range goals {
		if mode == FilterActive && g.Status == models.StatusAchieved {
			continue
		}
		if mode == FilterAchieved && g.Status != models.StatusAchieved {
			continue
		}
		if needle != "" && !goalMatches(g, needle) {
			continue
		}
		out = append(out, g)
	}
	return out
}

func goalMatches(g models.Goal, needle string) bool {
	if containsFold(g.Title, needle) || containsFold(g.FutureMessage, needle) {
		return true
	}
	for _, m := range g.Milestones {
		if containsFold(m.Text, needle) {
			return true
		}
	}
	return false
}

// SortGoals orders a filtered view. List surfaces unfinished goals first,
// newest within the same status; Timeline orders by parsed target date with
// unparseable dates last. The sort is stable.
func SortGoals(goals []models.Goal, view ViewMode) []models.Goal {
	sorted := make([]models.Goal, len(goals))
	copy(sorted, goals)

	if view == ViewTimeline {
		sort.SliceStable(sorted, func(i, j int) bool {
			di, dj := dateSortValue(sorted[i].TargetDate), dateSortValue(sorted[j].TargetDate)
			if di != dj {
				return di < dj
			}
			return sorted[i].CreatedAt > sorted[j].CreatedAt
		})
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		ri, rj := models.StatusRank[sorted[i].Status], models.StatusRank[sorted[j].Status]
		if ri != rj {
			return ri < rj
		}
		return sorted[i].CreatedAt > sorted[j].CreatedAt
	})
	return sorted
}

// normalizeMilestones trims draft milestone texts, drops entries that trim
// to empty and assigns ids to milestones that do not carry one yet.
func normalizeMilestones(drafts []models.MilestoneDraft) []models.Milestone {
	out := make([]models.Milestone, 0, len(drafts))
	for _, d := range drafts {
		text := strings.TrimSpace(d.Text)
		if text == "" {
			continue
		}
		id := d.ID
		if id == "" {
			id = uuid.NewString()
		}
		out = append(out, models.Milestone{ID: id, Text: text, Done: d.Done})
	}
	return out
}

// deriveProgress applies the progress invariant: derived from the milestone
// completion ratio when milestones exist, otherwise the manual value.
func deriveProgress(milestones []models.Milestone, manual int) int {
	if len(milestones) > 0 {
		return milestoneProgress(milestones)
	}
	return clampProgress(manual)
}

func milestoneProgress(milestones []models.Milestone) int {
	done := 0
	for _, m := range milestones {
		if m.Done {
			done++
		}
	}
	p := int(math.Round(float64(done) / float64(len(milestones)) * 100))
	return clampProgress(p)
}

func targetDateOrPlaceholder(date string) string {
	date = strings.TrimSpace(date)
	if date == "" {
		return models.NoDate
	}
	return date
}

func statusOrDefault(status models.GoalStatus) models.GoalStatus {
	if status == "" {
		return models.StatusNotStarted
	}
	return status
}
