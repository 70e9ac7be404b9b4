package profile

import (
	"errors"
	"testing"
)

func threeSlots() ([]ContentSlot, []*MockContentController) {
	ctrls := []*MockContentController{{}, {}, {}}
	slots := make([]ContentSlot, len(ctrls))
	for i, c := range ctrls {
		slots[i] = ContentSlot{Title: string(rune('A' + i)), Controller: c}
	}
	return slots, ctrls
}

func TestPagingCoordinator_RoundTripRestoresOffset(t *testing.T) {
	p := NewPagingCoordinator()
	slots, ctrls := threeSlots()
	p.Reset(slots, 0, true)

	p.SetLiveOffset(120)
	if _, err := p.Show(1); err != nil {
		t.Fatalf("Show(1) error = %v", err)
	}
	if p.LiveOffset() != 0 {
		t.Errorf("LiveOffset() after switch = %v, want 0", p.LiveOffset())
	}

	p.SetLiveOffset(30)
	if _, err := p.Show(0); err != nil {
		t.Fatalf("Show(0) error = %v", err)
	}
	if p.LiveOffset() != 120 {
		t.Errorf("LiveOffset() after return = %v, want 120", p.LiveOffset())
	}
	if ctrls[0].Offset != 120 {
		t.Errorf("controller 0 offset = %v, want 120", ctrls[0].Offset)
	}
	slot, _ := p.Slot(1)
	if slot.Offset != 30 {
		t.Errorf("Slot(1).Offset = %v, want 30", slot.Offset)
	}
}

func TestPagingCoordinator_Show(t *testing.T) {
	type tc struct {
		index       int
		wantChanged bool
		wantErr     error
		wantActive  int
	}

	tests := map[string]tc{
		"switch":       {index: 2, wantChanged: true, wantActive: 2},
		"reselect":     {index: 0, wantChanged: false, wantActive: 0},
		"negative":     {index: -1, wantErr: ErrIndexOutOfBounds, wantActive: 0},
		"past the end": {index: 3, wantErr: ErrIndexOutOfBounds, wantActive: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p := NewPagingCoordinator()
			slots, ctrls := threeSlots()
			p.Reset(slots, 0, true)
			p.SetLiveOffset(55)
			calls := ctrls[0].SetCall

			changed, err := p.Show(tt.index)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Show() error = %v, want %v", err, tt.wantErr)
			}
			if changed != tt.wantChanged {
				t.Errorf("Show() changed = %v, want %v", changed, tt.wantChanged)
			}
			if p.ActiveIndex() != tt.wantActive {
				t.Errorf("ActiveIndex() = %d, want %d", p.ActiveIndex(), tt.wantActive)
			}
			if p.SegmentedControl().SelectedIndex() != tt.wantActive {
				t.Errorf("SelectedIndex() = %d, want %d", p.SegmentedControl().SelectedIndex(), tt.wantActive)
			}
			if !tt.wantChanged && p.LiveOffset() != 55 {
				t.Errorf("LiveOffset() = %v, want unchanged 55", p.LiveOffset())
			}
			if !tt.wantChanged && ctrls[0].SetCall != calls {
				t.Errorf("SetContentOffset called on a no-op Show")
			}
		})
	}
}

func TestPagingCoordinator_SegmentVisibility(t *testing.T) {
	type tc struct {
		count      int
		hideSingle bool
		wantHidden bool
	}

	tests := map[string]tc{
		"empty":         {count: 0, hideSingle: false, wantHidden: true},
		"single hidden": {count: 1, hideSingle: true, wantHidden: true},
		"single shown":  {count: 1, hideSingle: false, wantHidden: false},
		"several":       {count: 2, hideSingle: true, wantHidden: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p := NewPagingCoordinator()
			slots := make([]ContentSlot, tt.count)
			p.Reset(slots, 0, tt.hideSingle)
			if got := p.SegmentedControl().Hidden(); got != tt.wantHidden {
				t.Errorf("Hidden() = %v, want %v", got, tt.wantHidden)
			}
		})
	}
}

func TestPagingCoordinator_ResetClampsSelection(t *testing.T) {
	p := NewPagingCoordinator()
	slots, _ := threeSlots()
	slots[0].Offset = 12
	p.Reset(slots, 7, true)

	if p.ActiveIndex() != 0 {
		t.Errorf("ActiveIndex() = %d, want 0", p.ActiveIndex())
	}
	if p.LiveOffset() != 12 {
		t.Errorf("LiveOffset() = %v, want 12", p.LiveOffset())
	}
	titles := p.SegmentedControl().Titles()
	if len(titles) != 3 || titles[2] != "C" {
		t.Errorf("Titles() = %v", titles)
	}

	p.Reset(nil, 0, true)
	if p.ActiveIndex() != -1 {
		t.Errorf("ActiveIndex() on empty = %d, want -1", p.ActiveIndex())
	}
	if _, ok := p.Active(); ok {
		t.Error("Active() on empty ok = true")
	}
}

func TestSegmentedControl_SelectWithoutCoordinator(t *testing.T) {
	var s SegmentedControl
	err := s.Select(0)
	if !errors.Is(err, ErrSegmentedControlIdle) {
		t.Errorf("Select() error = %v, want ErrSegmentedControlIdle", err)
	}
	if errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("Select() error = %v, should not report an index problem", err)
	}
}
