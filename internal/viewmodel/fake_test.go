package viewmodel

import (
	"context"
	"sync"

	"github.com/genvault/genvault-go/internal/model"
)

// fakeAPI records calls and answers from its function fields. Unset fields
// answer with zero values.
type fakeAPI struct {
	mu       sync.Mutex
	saved    []model.Draft
	lists    int
	gens     []model.GeneratorOptions
	list     func(ctx context.Context, userID string) ([]model.VaultEntry, error)
	save     func(ctx context.Context, userID string, draft model.Draft) error
	generate func(ctx context.Context, opts model.GeneratorOptions) (string, error)
}

func (f *fakeAPI) ListEntries(ctx context.Context, userID string) ([]model.VaultEntry, error) {
	f.mu.Lock()
	f.lists++
	f.mu.Unlock()
	if f.list == nil {
		return []model.VaultEntry{}, nil
	}
	return f.list(ctx, userID)
}

func (f *fakeAPI) SaveEntry(ctx context.Context, userID string, draft model.Draft) error {
	f.mu.Lock()
	f.saved = append(f.saved, draft)
	f.mu.Unlock()
	if f.save == nil {
		return nil
	}
	return f.save(ctx, userID, draft)
}

func (f *fakeAPI) GeneratePassword(ctx context.Context, opts model.GeneratorOptions) (string, error) {
	f.mu.Lock()
	f.gens = append(f.gens, opts)
	f.mu.Unlock()
	if f.generate == nil {
		return "", nil
	}
	return f.generate(ctx, opts)
}

func (f *fakeAPI) listCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lists
}

func (f *fakeAPI) savedDrafts() []model.Draft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.Draft(nil), f.saved...)
}

func staticList(entries ...model.VaultEntry) func(context.Context, string) ([]model.VaultEntry, error) {
	return func(context.Context, string) ([]model.VaultEntry, error) {
		return entries, nil
	}
}
