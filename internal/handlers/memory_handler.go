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

// MemoryHandler handles HTTP requests related to vault memories.
type MemoryHandler struct {
	Service *services.MemoryService
}

// NewMemoryHandler creates a new instance of MemoryHandler.
func NewMemoryHandler(service *services.MemoryService) *MemoryHandler {
	return &MemoryHandler{Service: service}
}

// CreateMemoryHandler handles adding a new memory to the vault.
func (h *MemoryHandler) CreateMemoryHandler(w http.ResponseWriter, r *http.Request) {
	var draft models.MemoryDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		logrus.WithError(err).Warn("Invalid request payload during memory creation")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	memory, err := h.Service.CreateMemory(draft)
	if err != nil {
		if errors.Is(err, services.ErrEmptyTitle) {
			http.Error(w, "Memory title is required", http.StatusBadRequest)
			return
		}
		logrus.WithError(err).Error("Failed to create memory")
		http.Error(w, "Failed to create memory", http.StatusInternalServerError)
		return
	}

	logrus.WithField("memoryID", memory.ID).Info("Memory successfully created")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(memory)
}

// GetMemoriesHandler returns the filtered, sorted vault.
// Query params: q (search), view (List|Timeline).
func (h *MemoryHandler) GetMemoriesHandler(w http.ResponseWriter, r *http.Request) {
	view := records.ViewMode(r.URL.Query().Get("view"))
	if view != records.ViewTimeline {
		view = records.ViewList
	}

	search := r.URL.Query().Get("q")
	memories := h.Service.ListMemories(search, view)

	logrus.WithFields(logrus.Fields{
		"view":        view,
		"memoryCount": len(memories),
	}).Info("Memories fetched successfully")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(memories)
}

// GetMemoryHandler handles fetching a single memory by its ID.
func (h *MemoryHandler) GetMemoryHandler(w http.ResponseWriter, r *http.Request) {
	memoryID := mux.Vars(r)["id"]

	memory, err := h.Service.GetMemory(memoryID)
	if err != nil {
		logrus.WithField("memoryID", memoryID).Warn("Memory not found")
		http.Error(w, "Memory not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(memory)
}

// UpdateMemoryHandler handles editing an existing memory.
func (h *MemoryHandler) UpdateMemoryHandler(w http.ResponseWriter, r *http.Request) {
	memoryID := mux.Vars(r)["id"]
	log := logrus.WithField("memoryID", memoryID)

	var draft models.MemoryDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		log.WithError(err).Warn("Invalid update payload")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	memory, err := h.Service.UpdateMemory(memoryID, draft)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			http.Error(w, "Memory not found", http.StatusNotFound)
		case errors.Is(err, services.ErrEmptyTitle):
			http.Error(w, "Memory title is required", http.StatusBadRequest)
		default:
			log.WithError(err).Error("Failed to update memory")
			http.Error(w, "Failed to update memory", http.StatusInternalServerError)
		}
		return
	}

	log.Info("Memory successfully updated")
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(memory)
}

// DeleteMemoryHandler handles deleting a memory by its ID.
func (h *MemoryHandler) DeleteMemoryHandler(w http.ResponseWriter, r *http.Request) {
	memoryID := mux.Vars(r)["id"]
	log := logrus.WithField("memoryID", memoryID)

	if err := h.Service.DeleteMemory(memoryID); err != nil {
		log.WithError(err).Warn("Memory not found during delete")
		http.Error(w, "Memory not found", http.StatusNotFound)
		return
	}

	log.Info("Memory deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}
