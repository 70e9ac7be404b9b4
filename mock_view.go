package profile

import "time"

// MockAccessoryView is a mock implementation of AccessoryView for testing.
// It records every application and touch-state change for verification.
type MockAccessoryView struct {
	Applied     []LayoutAttributes
	Highlights  []bool
	Selections  []bool
	highlighted bool
	selected    bool
}

// Ensure MockAccessoryView implements the view interfaces.
var (
	_ AccessoryView = (*MockAccessoryView)(nil)
	_ Highlightable = (*MockAccessoryView)(nil)
	_ Selectable    = (*MockAccessoryView)(nil)
)

// ApplyLayoutAttributes records attrs.
func (m *MockAccessoryView) ApplyLayoutAttributes(attrs LayoutAttributes) {
	m.Applied = append(m.Applied, attrs)
}

// SetHighlighted records the highlight change.
func (m *MockAccessoryView) SetHighlighted(highlighted, _ bool) {
	m.highlighted = highlighted
	m.Highlights = append(m.Highlights, highlighted)
}

// SetSelected records the selection change.
func (m *MockAccessoryView) SetSelected(selected, _ bool) {
	m.selected = selected
	m.Selections = append(m.Selections, selected)
}

// Last returns the most recently applied attributes.
func (m *MockAccessoryView) Last() (LayoutAttributes, bool) {
	if len(m.Applied) == 0 {
		return LayoutAttributes{}, false
	}
	return m.Applied[len(m.Applied)-1], true
}

// ApplyCount returns how many times attributes were applied.
func (m *MockAccessoryView) ApplyCount() int {
	return len(m.Applied)
}

// Reset clears the recorded history.
func (m *MockAccessoryView) Reset() {
	m.Applied = nil
	m.Highlights = nil
	m.Selections = nil
}

// MockViewFactory returns a ViewFactory that creates MockAccessoryViews and
// records them by kind in views.
func MockViewFactory(views map[AccessoryKind]*MockAccessoryView) ViewFactory {
	return func(kind AccessoryKind) AccessoryView {
		v := &MockAccessoryView{}
		views[kind] = v
		return v
	}
}

// MockAnimator is a mock Animator. It runs changes immediately and counts
// calls. Completions are held until Complete is called, matching a real
// animation that finishes later.
type MockAnimator struct {
	Calls       int
	Durations   []time.Duration
	completions []func()
}

var _ Animator = (*MockAnimator)(nil)

// Animate implements Animator.
func (m *MockAnimator) Animate(duration time.Duration, changes func(), completion func()) {
	m.Calls++
	m.Durations = append(m.Durations, duration)
	changes()
	if completion != nil {
		m.completions = append(m.completions, completion)
	}
}

// Complete runs every held completion.
func (m *MockAnimator) Complete() {
	pending := m.completions
	m.completions = nil
	for _, fn := range pending {
		fn()
	}
}

// MockContentController is a ContentController that remembers its offset.
type MockContentController struct {
	Offset  float64
	SetCall int
}

var (
	_ ContentController = (*MockContentController)(nil)
	_ OffsetReporter    = (*MockContentController)(nil)
)

// SetContentOffset records y.
func (m *MockContentController) SetContentOffset(y float64) {
	m.Offset = y
	m.SetCall++
}

// ContentOffset returns the last offset.
func (m *MockContentController) ContentOffset() float64 {
	return m.Offset
}
