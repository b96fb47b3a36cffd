package services

import (
	"github.com/Ishan-giri-05293/private-memory-vault/internal/models"
	"github.com/Ishan-giri-05293/private-memory-vault/internal/records"
	"github.com/Ishan-giri-05293/private-memory-vault/pkg/logger"
)

// MemoryService encapsulates the business logic for vault memories.
type MemoryService struct {
	store *records.MemoryStore
}

// NewMemoryService creates a new instance of MemoryService.
func NewMemoryService(store *records.MemoryStore) *MemoryService {
	return &MemoryService{store: store}
}

// CreateMemory validates the draft and adds a new memory to the vault.
func (s *MemoryService) CreateMemory(draft models.MemoryDraft) (*models.Memory, error) {
	memory := s.store.Create(draft)
	if memory == nil {
		logger.Log.Warn("Memory title is empty during creation")
		return nil, ErrEmptyTitle
	}

	logger.Log.WithField("memory_id", memory.ID).Info("Memory created in service layer")
	return memory, nil
}

// GetMemory retrieves a memory by its ID.
func (s *MemoryService) GetMemory(id string) (*models.Memory, error) {
	memory := s.store.Get(id)
	if memory == nil {
		logger.Log.WithField("memory_id", id).Warn("Memory not found in GetMemory")
		return nil, ErrNotFound
	}
	return memory, nil
}

// UpdateMemory replaces the mutable fields of an existing memory.
func (s *MemoryService) UpdateMemory(id string, draft models.MemoryDraft) (*models.Memory, error) {
	if s.store.Get(id) == nil {
		logger.Log.WithField("memory_id", id).Warn("Memory not found in UpdateMemory")
		return nil, ErrNotFound
	}

	memory := s.store.Update(id, draft)
	if memory == nil {
		logger.Log.WithField("memory_id", id).Warn("Memory title is empty during update")
		return nil, ErrEmptyTitle
	}

	logger.Log.WithField("memory_id", id).Info("Memory updated successfully in service layer")
	return memory, nil
}

// DeleteMemory removes a memory from the vault.
func (s *MemoryService) DeleteMemory(id string) error {
	if !s.store.Delete(id) {
		logger.Log.WithField("memory_id", id).Warn("Memory not found in DeleteMemory")
		return ErrNotFound
	}

	logger.Log.WithField("memory_id", id).Info("Memory deleted successfully in service layer")
	return nil
}

// ListMemories returns the filtered, sorted view of the vault.
func (s *MemoryService) ListMemories(search string, view records.ViewMode) []models.Memory {
	memories := records.FilterMemories(s.store.All(), search)
	return records.SortMemories(memories, view)
}
