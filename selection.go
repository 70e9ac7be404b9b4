package profile

import "fmt"

// TouchPhase is a touch event delivered to an accessory view.
type TouchPhase int

const (
	TouchDown TouchPhase = iota
	TouchUpInside
	TouchCancel
)

func (p TouchPhase) String() string {
	switch p {
	case TouchDown:
		return "down"
	case TouchUpInside:
		return "up-inside"
	case TouchCancel:
		return "cancel"
	}
	return fmt.Sprintf("TouchPhase(%d)", int(p))
}

// touchState tracks highlight and selection for one accessory kind.
// Highlight is transient (finger down); selection persists until deselected.
type touchState struct {
	highlighted bool
	selected    bool
}

// SelectionState is the externally visible touch state for a kind.
type SelectionState struct {
	Highlighted bool
	Selected    bool
}

// transition applies phase and reports which edges fired.
func (s *touchState) transition(phase TouchPhase) (highlightChanged, becameSelected bool) {
	switch phase {
	case TouchDown:
		if !s.highlighted {
			s.highlighted = true
			highlightChanged = true
		}
	case TouchUpInside:
		if s.highlighted {
			s.highlighted = false
			highlightChanged = true
		}
		if !s.selected {
			s.selected = true
			becameSelected = true
		}
	case TouchCancel:
		if s.highlighted {
			s.highlighted = false
			highlightChanged = true
		}
	}
	return highlightChanged, becameSelected
}
