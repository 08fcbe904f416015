package repository

import (
	"context"
	"sync"
	"time"

	"github.com/genvault/genvault-go/internal/model"
)

// MemoryRepository keeps vault entries in process memory. It backs the API
// when no database is configured and is used in tests.
type MemoryRepository struct {
	mu      sync.Mutex
	seq     int64
	ids     map[string]struct{}
	entries map[string][]model.StoredEntry
}

// NewMemoryRepository creates an empty MemoryRepository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		ids:     make(map[string]struct{}),
		entries: make(map[string][]model.StoredEntry),
	}
}

// Create appends a new entry and sets its sequence number and creation time.
func (r *MemoryRepository) Create(_ context.Context, entry *model.StoredEntry) error {
	if entry.UserID == "" {
		return ErrUserIDRequired
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.ids[entry.ID]; exists {
		return ErrDuplicateEntry
	}

	r.seq++
	entry.Seq = r.seq
	entry.CreatedAt = time.Now().UTC()

	stored := *entry
	stored.SealedPassword = append([]byte(nil), entry.SealedPassword...)

	r.ids[entry.ID] = struct{}{}
	r.entries[entry.UserID] = append(r.entries[entry.UserID], stored)
	return nil
}

// ListByUser returns a copy of the user's entries, oldest first.
func (r *MemoryRepository) ListByUser(_ context.Context, userID string) ([]model.StoredEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	src := r.entries[userID]
	out := make([]model.StoredEntry, len(src))
	copy(out, src)
	return out, nil
}
