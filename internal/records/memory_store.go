package records

import (
	"encoding/json"
	"sort"
	"strings"
	"sync"

	"github.com/Ishan-giri-05293/private-memory-vault/internal/models"
	"github.com/Ishan-giri-05293/private-memory-vault/pkg/logger"
	"github.com/google/uuid"
)

// MemoryStore owns the canonical memory collection. It follows the same
// contract as GoalStore minus status, progress and milestones.
type MemoryStore struct {
	mu       sync.RWMutex
	kv       KV
	key      string
	memories []models.Memory
}

// NewMemoryStore loads the persisted memory collection, falling back to
// empty on a missing key or unreadable value.
func NewMemoryStore(kv KV) *MemoryStore {
	s := &MemoryStore{kv: kv, key: MemoriesKey}

	raw, ok := kv.Get(s.key)
	if !ok {
		return s
	}
	var memories []models.Memory
	if err := json.Unmarshal([]byte(raw), &memories); err != nil {
		logger.Log.WithError(err).Warn("Persisted memories unreadable, starting empty")
		return s
	}
	s.memories = memories
	return s
}

// All returns a copy of the full collection, newest insertions first.
func (s *MemoryStore) All() []models.Memory {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Memory, len(s.memories))
	copy(out, s.memories)
	return out
}

// Get returns the memory with the given id, or nil.
func (s *MemoryStore) Get(id string) *models.Memory {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.memories {
		if s.memories[i].ID == id {
			m := s.memories[i]
			return &m
		}
	}
	return nil
}

// Create builds a memory from the draft and inserts it at the front of the
// collection. Returns nil if the title trims to empty.
func (s *MemoryStore) Create(draft models.MemoryDraft) *models.Memory {
	title := strings.TrimSpace(draft.Title)
	if title == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	memory := models.Memory{
		ID:        uuid.NewString(),
		Title:     title,
		Date:      targetDateOrPlaceholder(draft.Date),
		Note:      strings.TrimSpace(draft.Note),
		CreatedAt: nowMillis(),
	}

	s.memories = append([]models.Memory{memory}, s.memories...)
	s.save()
	return &memory
}

// Update replaces the mutable fields of the memory matching id. Returns nil
// if no memory matches or the title trims to empty.
func (s *MemoryStore) Update(id string, draft models.MemoryDraft) *models.Memory {
	title := strings.TrimSpace(draft.Title)
	if title == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.memories {
		if s.memories[i].ID != id {
			continue
		}

		m := &s.memories[i]
		m.Title = title
		m.Date = targetDateOrPlaceholder(draft.Date)
		m.Note = strings.TrimSpace(draft.Note)

		s.save()
		out := *m
		return &out
	}
	return nil
}

// Delete removes the memory with the given id.
func (s *MemoryStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.memories {
		if s.memories[i].ID == id {
			s.memories = append(s.memories[:i], s.memories[i+1:]...)
			s.save()
			return true
		}
	}
	return false
}

func (s *MemoryStore) save() {
	data, err := json.Marshal(s.memories)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to serialize memories")
		return
	}
	if err := s.kv.Set(s.key, string(data)); err != nil {
		logger.Log.WithError(err).Error("Failed to persist memories")
	}
}

// FilterMemories derives a view of memories whose title or note contains the
// search text, case-insensitively. The input collection is never modified.
func FilterMemories(memories []models.Memory, search string) []models.Memory {
	needle := strings.ToLower(strings.TrimSpace(search))
	out := make([]models.Memory, 0, len(memories))

	for _, m := range memories {
		if needle != "" && !containsFold(m.Title, needle) && !containsFold(m.Note, needle) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// SortMemories orders a filtered view. List is newest first; Timeline orders
// by parsed date with unparseable dates last. The sort is stable.
func SortMemories(memories []models.Memory, view ViewMode) []models.Memory {
	sorted := make([]models.Memory, len(memories))
	copy(sorted, memories)

	if view == ViewTimeline {
		sort.SliceStable(sorted, func(i, j int) bool {
			di, dj := dateSortValue(sorted[i].Date), dateSortValue(sorted[j].Date)
			if di != dj {
				return di < dj
			}
			return sorted[i].CreatedAt > sorted[j].CreatedAt
		})
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt > sorted[j].CreatedAt
	})
	return sorted
}
