// Package viewmodel holds the state of the vault page: the user's entries,
// the draft being edited, the generator options, the search term and the
// status of the last save. Presentation layers bind input to it and render
// its accessors; it talks to the vault API through the API interface.
package viewmodel

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/genvault/genvault-go/internal/model"
)

// API is the remote vault the view model synchronizes with.
// *vaultapi.Client implements it.
type API interface {
	ListEntries(ctx context.Context, userID string) ([]model.VaultEntry, error)
	SaveEntry(ctx context.Context, userID string, draft model.Draft) error
	GeneratePassword(ctx context.Context, opts model.GeneratorOptions) (string, error)
}

// VaultViewModel is safe for concurrent use. No lock is held while a remote
// call is in flight, so operations started back to back run concurrently
// and may complete in any order.
type VaultViewModel struct {
	api      API
	logger   *slog.Logger
	inFlight atomic.Int64

	mu         sync.Mutex
	entries    []model.VaultEntry
	draft      model.Draft
	options    model.GeneratorOptions
	searchTerm string
	status     Status

	// issued is the sequence number of the newest refresh started; applied
	// is the sequence number of the refresh whose entries are shown.
	issued  uint64
	applied uint64
}

// New creates a view model with no entries, an empty draft and the default
// generator options. A nil logger discards log output.
func New(api API, logger *slog.Logger) *VaultViewModel {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &VaultViewModel{
		api:     api,
		logger:  logger,
		entries: []model.VaultEntry{},
		options: model.DefaultGeneratorOptions(),
	}
}

// Refresh replaces the entries with the user's list from the API. On failure
// the entries are left untouched and an *OpError with OpRefresh is returned.
// A response that arrives after a later refresh has already been applied is
// dropped.
func (vm *VaultViewModel) Refresh(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrUserIDRequired
	}

	vm.mu.Lock()
	vm.issued++
	seq := vm.issued
	vm.mu.Unlock()

	done := vm.begin()
	entries, err := vm.api.ListEntries(ctx, userID)
	done()

	if err != nil {
		vm.logger.ErrorContext(ctx, "refreshing entries failed", "user_id", userID, "error", err)
		return &OpError{Op: OpRefresh, UserID: userID, Err: err}
	}

	vm.mu.Lock()
	defer vm.mu.Unlock()

	if seq < vm.applied {
		vm.logger.DebugContext(ctx, "dropping stale refresh", "user_id", userID, "seq", seq, "applied", vm.applied)
		return nil
	}

	vm.entries = slices.Clone(entries)
	if vm.entries == nil {
		vm.entries = []model.VaultEntry{}
	}
	vm.applied = seq
	return nil
}

// UpdateDraftField sets one field of the draft. Values are not validated.
func (vm *VaultViewModel) UpdateDraftField(field Field, value string) error {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	switch field {
	case FieldSiteName:
		vm.draft.SiteName = value
	case FieldLink:
		vm.draft.Link = value
	case FieldPassword:
		vm.draft.Password = value
	default:
		return ErrUnknownField
	}
	return nil
}

// Save sends the current draft as a new entry of the user.
//
// On success the status becomes StatusSaved, the draft is cleared and the
// entries are refreshed; a failed refresh is returned as an *OpError with
// OpRefresh and does not undo the save. On failure the status becomes
// StatusSaveFailed, the draft is kept for another attempt and an *OpError
// with OpSave is returned. Concurrent saves are all sent.
func (vm *VaultViewModel) Save(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrUserIDRequired
	}

	vm.mu.Lock()
	draft := vm.draft
	vm.mu.Unlock()

	done := vm.begin()
	err := vm.api.SaveEntry(ctx, userID, draft)
	done()

	if err != nil {
		vm.mu.Lock()
		vm.status = StatusSaveFailed
		vm.mu.Unlock()

		vm.logger.ErrorContext(ctx, "saving entry failed", "user_id", userID, "site", draft.SiteName, "error", err)
		return &OpError{Op: OpSave, UserID: userID, Err: err}
	}

	vm.mu.Lock()
	vm.status = StatusSaved
	vm.draft = model.Draft{}
	vm.mu.Unlock()

	vm.logger.InfoContext(ctx, "entry saved", "user_id", userID, "site", draft.SiteName)

	return vm.Refresh(ctx, userID)
}

// GeneratePassword asks the API for a password built from the current
// options and puts it in the draft. Other draft fields are untouched. On
// failure the draft is unchanged and an *OpError with OpGenerate is returned.
func (vm *VaultViewModel) GeneratePassword(ctx context.Context) error {
	vm.mu.Lock()
	opts := vm.options
	vm.mu.Unlock()

	done := vm.begin()
	password, err := vm.api.GeneratePassword(ctx, opts)
	done()

	if err != nil {
		vm.logger.ErrorContext(ctx, "generating password failed",
			"letters", opts.Letters, "numbers", opts.Numbers, "symbols", opts.Symbols, "error", err)
		return &OpError{Op: OpGenerate, Err: err}
	}

	vm.mu.Lock()
	vm.draft.Password = password
	vm.mu.Unlock()
	return nil
}

// SetSearchTerm sets the term FilteredEntries matches against.
func (vm *VaultViewModel) SetSearchTerm(term string) {
	vm.mu.Lock()
	vm.searchTerm = term
	vm.mu.Unlock()
}

// SetOptions replaces the generator options. Values are passed to the API as given.
func (vm *VaultViewModel) SetOptions(opts model.GeneratorOptions) {
	vm.mu.Lock()
	vm.options = opts
	vm.mu.Unlock()
}

func (vm *VaultViewModel) SetLetters(n int) {
	vm.mu.Lock()
	vm.options.Letters = n
	vm.mu.Unlock()
}

func (vm *VaultViewModel) SetNumbers(n int) {
	vm.mu.Lock()
	vm.options.Numbers = n
	vm.mu.Unlock()
}

func (vm *VaultViewModel) SetSymbols(n int) {
	vm.mu.Lock()
	vm.options.Symbols = n
	vm.mu.Unlock()
}

// FilteredEntries returns the entries matching the search term. It is
// computed on every call.
func (vm *VaultViewModel) FilteredEntries() []model.VaultEntry {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return Filter(vm.entries, vm.searchTerm)
}

// Entries returns a copy of the full entry list.
func (vm *VaultViewModel) Entries() []model.VaultEntry {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return slices.Clone(vm.entries)
}

func (vm *VaultViewModel) Draft() model.Draft {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.draft
}

func (vm *VaultViewModel) Options() model.GeneratorOptions {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.options
}

func (vm *VaultViewModel) SearchTerm() string {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.searchTerm
}

func (vm *VaultViewModel) Status() Status {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.status
}

// StatusMessage returns the text of the current status, empty when there is none.
func (vm *VaultViewModel) StatusMessage() string {
	return vm.Status().Message()
}

// InFlight returns how many remote calls are currently running.
func (vm *VaultViewModel) InFlight() int {
	return int(vm.inFlight.Load())
}

func (vm *VaultViewModel) begin() func() {
	vm.inFlight.Add(1)
	return func() { vm.inFlight.Add(-1) }
}
