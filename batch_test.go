package profile

import (
	"errors"
	"testing"
)

// === BatchController Tests ===

func TestBatch_BeginTwiceFails(t *testing.T) {
	var b BatchController

	if err := b.Begin(); err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	if err := b.Begin(); !errors.Is(err, ErrAlreadyBatching) {
		t.Errorf("second Begin() error = %v, want ErrAlreadyBatching", err)
	}
	if !b.Batching() {
		t.Error("Batching() = false after failed second Begin")
	}
}

func TestBatch_EndWithoutBeginFails(t *testing.T) {
	var b BatchController

	if _, err := b.End(); !errors.Is(err, ErrNotBatching) {
		t.Errorf("End() error = %v, want ErrNotBatching", err)
	}
	if err := b.Record("k", WithPinnedHeaderHeight(1)); !errors.Is(err, ErrNotBatching) {
		t.Errorf("Record() error = %v, want ErrNotBatching", err)
	}
}

func TestBatch_EmptyScope(t *testing.T) {
	var b BatchController

	if err := b.Begin(); err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	opts, err := b.End()
	if err != nil {
		t.Fatalf("End() error = %v", err)
	}
	if len(opts) != 0 {
		t.Errorf("End() returned %d mutations, want 0", len(opts))
	}
	if b.Batching() {
		t.Error("Batching() = true after End")
	}
}

func TestBatch_SameKeyKeepsFinalValue(t *testing.T) {
	var b BatchController
	if err := b.Begin(); err != nil {
		t.Fatalf("Begin() error = %v", err)
	}

	// The final pinned height wins even though a later key was recorded in between.
	_ = b.Record("pinned", WithPinnedHeaderHeight(10))
	_ = b.Record("header", WithHeaderReferenceSize(NewSize(0, 300)))
	_ = b.Record("pinned", WithPinnedHeaderHeight(60))

	if b.scope.Len() != 2 {
		t.Errorf("scope Len() = %d, want 2", b.scope.Len())
	}

	opts, err := b.End()
	if err != nil {
		t.Fatalf("End() error = %v", err)
	}
	if len(opts) != 2 {
		t.Fatalf("End() returned %d mutations, want 2", len(opts))
	}

	cfg, err := DefaultConfig().With(opts...)
	if err != nil {
		t.Fatalf("With() error = %v", err)
	}
	if cfg.PinnedHeaderHeight != 60 {
		t.Errorf("PinnedHeaderHeight = %v, want 60", cfg.PinnedHeaderHeight)
	}
	if cfg.HeaderReferenceSize.Height != 300 {
		t.Errorf("HeaderReferenceSize.Height = %v, want 300", cfg.HeaderReferenceSize.Height)
	}
}

func TestBatch_RepeatedKeyMovesToEnd(t *testing.T) {
	type tc struct {
		records   []string
		wantOrder []string
	}

	tests := map[string]tc{
		"distinct keys": {
			records:   []string{"a", "b", "c"},
			wantOrder: []string{"a", "b", "c"},
		},
		"repeat first": {
			records:   []string{"a", "b", "a"},
			wantOrder: []string{"b", "a"},
		},
		"repeat last": {
			records:   []string{"a", "b", "b"},
			wantOrder: []string{"a", "b"},
		},
		"repeat twice": {
			records:   []string{"a", "b", "a", "c", "b"},
			wantOrder: []string{"a", "c", "b"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var b BatchController
			if err := b.Begin(); err != nil {
				t.Fatalf("Begin() error = %v", err)
			}
			for _, key := range tt.records {
				_ = b.Record(key, WithPinnedHeaderHeight(1))
			}
			got := b.scope.pendingOrder
			if len(got) != len(tt.wantOrder) {
				t.Fatalf("pendingOrder = %v, want %v", got, tt.wantOrder)
			}
			for i := range got {
				if got[i] != tt.wantOrder[i] {
					t.Errorf("pendingOrder = %v, want %v", got, tt.wantOrder)
					break
				}
			}
		})
	}
}

func TestBatch_InterleavedKeysApplyInCallOrder(t *testing.T) {
	var b BatchController
	if err := b.Begin(); err != nil {
		t.Fatalf("Begin() error = %v", err)
	}

	_ = b.Record("reference-size:header", WithHeaderReferenceSize(NewSize(0, 100)))
	_ = b.Record("reconfigure:1", WithHeaderReferenceSize(NewSize(0, 150)))
	_ = b.Record("reference-size:header", WithHeaderReferenceSize(NewSize(0, 200)))

	preview, err := b.Preview(DefaultConfig())
	if err != nil {
		t.Fatalf("Preview() error = %v", err)
	}
	opts, err := b.End()
	if err != nil {
		t.Fatalf("End() error = %v", err)
	}
	cfg, err := DefaultConfig().With(opts...)
	if err != nil {
		t.Fatalf("With() error = %v", err)
	}
	if cfg.HeaderReferenceSize.Height != 200 {
		t.Errorf("HeaderReferenceSize.Height = %v, want 200", cfg.HeaderReferenceSize.Height)
	}
	if preview.HeaderReferenceSize.Height != cfg.HeaderReferenceSize.Height {
		t.Errorf("Preview() height = %v, End() height = %v", preview.HeaderReferenceSize.Height, cfg.HeaderReferenceSize.Height)
	}
}

func TestBatch_PreviewDoesNotRecord(t *testing.T) {
	var b BatchController
	if err := b.Begin(); err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	_ = b.Record("pinned", WithPinnedHeaderHeight(30))

	cfg, err := b.Preview(DefaultConfig(), WithHeightMultiplier(0.5))
	if err != nil {
		t.Fatalf("Preview() error = %v", err)
	}
	if cfg.PinnedHeaderHeight != 30 || cfg.HeightMultiplier != 0.5 {
		t.Errorf("Preview() = pinned %v multiplier %v", cfg.PinnedHeaderHeight, cfg.HeightMultiplier)
	}
	if b.scope.Len() != 1 {
		t.Errorf("scope Len() = %d after Preview, want 1", b.scope.Len())
	}

	if _, err := b.Preview(DefaultConfig(), WithHeightMultiplier(2)); !errors.Is(err, ErrInvalidHeightMultiplier) {
		t.Errorf("Preview(bad) error = %v, want ErrInvalidHeightMultiplier", err)
	}
}
