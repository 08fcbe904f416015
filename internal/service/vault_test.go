package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/genvault/genvault-go/internal/crypto"
	"github.com/genvault/genvault-go/internal/model"
	"github.com/genvault/genvault-go/internal/repository"
)

func newTestSealer(t *testing.T) *crypto.Sealer {
	t.Helper()
	sealer, err := crypto.NewSealer("test-key", "test-salt", crypto.KeyParams{Memory: 1024, Iterations: 1, Parallelism: 1})
	if err != nil {
		t.Fatalf("NewSealer() unexpected error: %v", err)
	}
	return sealer
}

func newTestVaultService(t *testing.T) (*VaultService, *repository.MemoryRepository) {
	t.Helper()
	repo := repository.NewMemoryRepository()
	return NewVaultService(repo, newTestSealer(t)), repo
}

type failingStore struct{ err error }

func (f failingStore) Create(context.Context, *model.StoredEntry) error { return f.err }
func (f failingStore) ListByUser(context.Context, string) ([]model.StoredEntry, error) {
	return nil, f.err
}

func TestSaveEntry_EmptyUserID(t *testing.T) {
	svc, _ := newTestVaultService(t)

	_, err := svc.SaveEntry(context.Background(), "", model.Draft{SiteName: "GitHub"})

	if err != ErrUserIDRequired {
		t.Errorf("expected ErrUserIDRequired, got %v", err)
	}
}

func TestSaveEntry_AssignsIDAndSealsPassword(t *testing.T) {
	svc, repo := newTestVaultService(t)
	ctx := context.Background()

	resp, err := svc.SaveEntry(ctx, "u1", model.Draft{SiteName: "GitHub", Link: "https://github.com", Password: "hunter2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ID == "" {
		t.Fatal("expected a generated entry id")
	}

	stored, _ := repo.ListByUser(ctx, "u1")
	if len(stored) != 1 {
		t.Fatalf("expected 1 stored entry, got %d", len(stored))
	}
	if bytes.Contains(stored[0].SealedPassword, []byte("hunter2")) {
		t.Error("password stored in plaintext")
	}
	if stored[0].ID != resp.ID {
		t.Errorf("expected stored id %q, got %q", resp.ID, stored[0].ID)
	}
}

func TestSaveEntry_AllowsEmptyFields(t *testing.T) {
	svc, _ := newTestVaultService(t)

	if _, err := svc.SaveEntry(context.Background(), "u1", model.Draft{}); err != nil {
		t.Fatalf("unexpected error saving empty draft: %v", err)
	}
}

func TestListEntries_RoundTripInOrder(t *testing.T) {
	svc, _ := newTestVaultService(t)
	ctx := context.Background()

	drafts := []model.Draft{
		{SiteName: "GitHub", Link: "https://github.com", Password: "a"},
		{SiteName: "gitlab", Link: "https://gitlab.com", Password: "b"},
		{SiteName: "Bank", Link: "https://bank.example", Password: "c"},
	}
	for _, d := range drafts {
		if _, err := svc.SaveEntry(ctx, "u1", d); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	entries, err := svc.ListEntries(ctx, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != len(drafts) {
		t.Fatalf("expected %d entries, got %d", len(drafts), len(entries))
	}
	for i, d := range drafts {
		got := entries[i]
		if got.SiteName != d.SiteName || got.Link != d.Link || got.Password != d.Password {
			t.Errorf("entry %d = %+v, want fields of %+v", i, got, d)
		}
	}
}

func TestListEntries_EmptyIsNonNil(t *testing.T) {
	svc, _ := newTestVaultService(t)

	entries, err := svc.ListEntries(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entries == nil {
		t.Fatal("expected non-nil empty slice, got nil")
	}
}

func TestListEntries_SkipsUnopenableEntries(t *testing.T) {
	svc, repo := newTestVaultService(t)
	ctx := context.Background()

	if _, err := svc.SaveEntry(ctx, "u1", model.Draft{SiteName: "good", Password: "p"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Create(ctx, &model.StoredEntry{ID: "bad", UserID: "u1", SiteName: "bad", SealedPassword: []byte("garbage")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries, err := svc.ListEntries(ctx, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 || entries[0].SiteName != "good" {
		t.Errorf("expected only the good entry, got %+v", entries)
	}
}

func TestVaultService_StoreErrors(t *testing.T) {
	storeErr := errors.New("connection refused")
	svc := NewVaultService(failingStore{err: storeErr}, newTestSealer(t))
	ctx := context.Background()

	if _, err := svc.SaveEntry(ctx, "u1", model.Draft{}); !errors.Is(err, storeErr) {
		t.Errorf("SaveEntry() error = %v, want %v", err, storeErr)
	}
	if _, err := svc.ListEntries(ctx, "u1"); !errors.Is(err, storeErr) {
		t.Errorf("ListEntries() error = %v, want %v", err, storeErr)
	}
}
