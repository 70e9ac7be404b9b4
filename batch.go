package profile

import (
	"slices"

	"github.com/grindlemire/go-profile/internal/debug"
)

// BatchScope holds the attribute mutations recorded between BeginUpdates
// and EndUpdates. It exists only while a batch is open.
type BatchScope struct {
	pending      map[string]Option // pending mutations keyed by what they change
	pendingOrder []string          // order in which keys were last recorded
}

func newBatchScope() *BatchScope {
	return &BatchScope{pending: make(map[string]Option)}
}

// Len returns the number of distinct pending mutations.
func (s *BatchScope) Len() int {
	return len(s.pending)
}

// options returns the pending mutations in last-recorded order.
func (s *BatchScope) options() []Option {
	opts := make([]Option, 0, len(s.pendingOrder))
	for _, key := range s.pendingOrder {
		if opt, ok := s.pending[key]; ok {
			opts = append(opts, opt)
		}
	}
	return opts
}

// BatchController brackets attribute mutations so they are applied as one
// animated step. Batches do not nest.
type BatchController struct {
	scope *BatchScope
}

// Begin opens a scope. It fails with ErrAlreadyBatching if one is open.
func (b *BatchController) Begin() error {
	if b.scope != nil {
		return ErrAlreadyBatching
	}
	b.scope = newBatchScope()
	debug.Log("BatchController.Begin")
	return nil
}

// Batching reports whether a scope is open.
func (b *BatchController) Batching() bool {
	return b.scope != nil
}

// Record defers opt under key. A later Record with the same key drops the
// earlier mutation and moves the key to the end, so End replays mutations in
// the order an unbatched caller would have applied them.
func (b *BatchController) Record(key string, opt Option) error {
	if b.scope == nil {
		return ErrNotBatching
	}
	if _, exists := b.scope.pending[key]; exists {
		b.scope.pendingOrder = slices.DeleteFunc(b.scope.pendingOrder, func(k string) bool { return k == key })
	}
	b.scope.pendingOrder = append(b.scope.pendingOrder, key)
	b.scope.pending[key] = opt
	return nil
}

// Preview returns base with the pending mutations and extra applied, without
// recording anything. It is used to reject a mutation before it is recorded.
func (b *BatchController) Preview(base Config, extra ...Option) (Config, error) {
	var opts []Option
	if b.scope != nil {
		opts = b.scope.options()
	}
	return base.With(append(opts, extra...)...)
}

// End closes the scope and returns its mutations in order. It fails with
// ErrNotBatching if no scope is open.
func (b *BatchController) End() ([]Option, error) {
	if b.scope == nil {
		return nil, ErrNotBatching
	}
	opts := b.scope.options()
	b.scope = nil
	debug.Log("BatchController.End: %d mutations", len(opts))
	return opts, nil
}
