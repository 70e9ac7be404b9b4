package profile

import (
	"fmt"

	"github.com/grindlemire/go-profile/internal/debug"
)

// ContentController is a consumer-supplied pane with its own scroll position.
type ContentController interface {
	// SetContentOffset moves the pane's scroll position without animation.
	SetContentOffset(y float64)
}

// OffsetReporter is implemented by content controllers that can report their
// current scroll position. Reloads seed slot snapshots from it.
type OffsetReporter interface {
	ContentOffset() float64
}

// ContentSlot is one content controller and its remembered scroll offset.
type ContentSlot struct {
	Index      int
	Offset     float64
	Title      string
	Controller ContentController
}

// SegmentedControl mirrors the pager's active index. Selecting a segment
// switches panes, and switching panes moves the selection.
type SegmentedControl struct {
	titles   []string
	selected int
	hidden   bool
	onSelect func(int) error
}

// Titles returns a copy of the segment titles.
func (s *SegmentedControl) Titles() []string {
	return append([]string(nil), s.titles...)
}

// SelectedIndex returns the highlighted segment, or -1 when there are none.
func (s *SegmentedControl) SelectedIndex() int {
	return s.selected
}

// Hidden reports whether the control should be hidden.
func (s *SegmentedControl) Hidden() bool {
	return s.hidden
}

// Select handles a user tap on segment i. A control that no Controller owns
// fails with ErrSegmentedControlIdle.
func (s *SegmentedControl) Select(i int) error {
	if s.onSelect == nil {
		return fmt.Errorf("segment %d: %w", i, ErrSegmentedControlIdle)
	}
	return s.onSelect(i)
}

// PagingCoordinator owns the content slots and the active index. On a switch
// it snapshots the outgoing pane's offset and restores the incoming one.
type PagingCoordinator struct {
	slots      []ContentSlot
	active     int
	liveOffset float64
	segments   *SegmentedControl
}

// NewPagingCoordinator creates a coordinator with no slots.
func NewPagingCoordinator() *PagingCoordinator {
	return &PagingCoordinator{
		active:   -1,
		segments: &SegmentedControl{selected: -1, hidden: true},
	}
}

// SegmentedControl returns the control kept in lock-step with the active index.
func (p *PagingCoordinator) SegmentedControl() *SegmentedControl {
	return p.segments
}

// Len returns the number of slots.
func (p *PagingCoordinator) Len() int {
	return len(p.slots)
}

// ActiveIndex returns the displayed slot index, or -1 when empty.
func (p *PagingCoordinator) ActiveIndex() int {
	return p.active
}

// LiveOffset returns the displayed pane's current offset.
func (p *PagingCoordinator) LiveOffset() float64 {
	return p.liveOffset
}

// SetLiveOffset records a scroll of the displayed pane.
func (p *PagingCoordinator) SetLiveOffset(y float64) {
	p.liveOffset = y
}

// Slot returns slot i with its current snapshot. The active slot reports the
// live offset.
func (p *PagingCoordinator) Slot(i int) (ContentSlot, bool) {
	if i < 0 || i >= len(p.slots) {
		return ContentSlot{}, false
	}
	slot := p.slots[i]
	if i == p.active {
		slot.Offset = p.liveOffset
	}
	return slot, true
}

// Active returns the displayed slot.
func (p *PagingCoordinator) Active() (ContentSlot, bool) {
	return p.Slot(p.active)
}

// Reset replaces every slot and displays selected, clamped into range. It
// pushes the restored offset into the displayed controller.
func (p *PagingCoordinator) Reset(slots []ContentSlot, selected int, hideSingle bool) {
	p.slots = slots
	titles := make([]string, len(slots))
	for i := range slots {
		p.slots[i].Index = i
		titles[i] = slots[i].Title
	}

	if len(slots) == 0 {
		p.active = -1
		p.liveOffset = 0
	} else {
		if selected < 0 || selected >= len(slots) {
			selected = 0
		}
		p.active = selected
		p.liveOffset = p.slots[selected].Offset
		if c := p.slots[selected].Controller; c != nil {
			c.SetContentOffset(p.liveOffset)
		}
	}

	p.segments.titles = titles
	p.segments.selected = p.active
	p.segments.hidden = segmentsHidden(len(slots), hideSingle)
	debug.Log("PagingCoordinator.Reset: slots=%d active=%d hidden=%v", len(slots), p.active, p.segments.hidden)
}

// SetHidesForSingle recomputes segment visibility for the current slots.
func (p *PagingCoordinator) SetHidesForSingle(hideSingle bool) {
	p.segments.hidden = segmentsHidden(len(p.slots), hideSingle)
}

// Show displays slot i. It reports false for a re-selection of the active
// index and fails with ErrIndexOutOfBounds, changing nothing, for an
// invalid index.
func (p *PagingCoordinator) Show(i int) (bool, error) {
	if i < 0 || i >= len(p.slots) {
		return false, fmt.Errorf("show %d of %d: %w", i, len(p.slots), ErrIndexOutOfBounds)
	}
	if i == p.active {
		return false, nil
	}

	from := p.active
	if from >= 0 {
		p.slots[from].Offset = p.liveOffset
	}
	p.active = i
	p.liveOffset = p.slots[i].Offset
	if c := p.slots[i].Controller; c != nil {
		c.SetContentOffset(p.liveOffset)
	}
	p.segments.selected = i
	debug.Log("PagingCoordinator.Show: %d -> %d offset=%.2f", from, i, p.liveOffset)
	return true, nil
}

func segmentsHidden(count int, hideSingle bool) bool {
	return count == 0 || (count == 1 && hideSingle)
}
