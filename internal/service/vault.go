package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/genvault/genvault-go/internal/model"
	"github.com/google/uuid"
)

var (
	ErrUserIDRequired = errors.New("user id is required")
)

// VaultStore is the persistence the vault service needs.
// repository.VaultRepository and repository.MemoryRepository implement it.
type VaultStore interface {
	Create(ctx context.Context, entry *model.StoredEntry) error
	ListByUser(ctx context.Context, userID string) ([]model.StoredEntry, error)
}

// Sealer encrypts passwords at rest.
type Sealer interface {
	Seal(plaintext, additional []byte) ([]byte, error)
	Open(sealed, additional []byte) ([]byte, error)
}

// VaultService handles vault entry business logic.
type VaultService struct {
	store  VaultStore
	sealer Sealer
}

// NewVaultService creates a new VaultService.
func NewVaultService(store VaultStore, sealer Sealer) *VaultService {
	return &VaultService{store: store, sealer: sealer}
}

// SaveEntry stores the draft as a new entry for the user. Fields are stored
// as given; only the user id is required.
func (s *VaultService) SaveEntry(ctx context.Context, userID string, draft model.Draft) (model.SaveResponse, error) {
	if userID == "" {
		return model.SaveResponse{}, ErrUserIDRequired
	}

	sealed, err := s.sealer.Seal([]byte(draft.Password), []byte(userID))
	if err != nil {
		return model.SaveResponse{}, err
	}

	entry := model.StoredEntry{
		ID:             uuid.NewString(),
		UserID:         userID,
		SiteName:       draft.SiteName,
		Link:           draft.Link,
		SealedPassword: sealed,
	}

	if err := s.store.Create(ctx, &entry); err != nil {
		return model.SaveResponse{}, err
	}

	return model.SaveResponse{
		Message: "Data saved successfully",
		ID:      entry.ID,
	}, nil
}

// ListEntries returns all vault entries for a user in insertion order.
func (s *VaultService) ListEntries(ctx context.Context, userID string) ([]model.VaultEntry, error) {
	if userID == "" {
		return nil, ErrUserIDRequired
	}

	entries, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.entriesToResponse(entries), nil
}

// entriesToResponse converts stored entries to API entries, opening sealed
// passwords. Entries that fail to open are skipped.
func (s *VaultService) entriesToResponse(entries []model.StoredEntry) []model.VaultEntry {
	result := make([]model.VaultEntry, 0, len(entries))
	for _, e := range entries {
		password, err := s.sealer.Open(e.SealedPassword, []byte(e.UserID))
		if err != nil {
			slog.Warn("skipping entry: password could not be opened", "entry_id", e.ID, "error", err)
			continue
		}

		result = append(result, model.VaultEntry{
			ID:       e.ID,
			SiteName: e.SiteName,
			Link:     e.Link,
			Password: string(password),
		})
	}
	return result
}
