package profile

import (
	"fmt"

	"github.com/grindlemire/go-profile/internal/debug"
)

// RefreshState is the pull-to-refresh state.
type RefreshState int

const (
	// RefreshIdle is the resting state.
	RefreshIdle RefreshState = iota
	// RefreshArmed means the user has pulled past the trigger and is still dragging.
	RefreshArmed
	// RefreshRefreshing means a refresh was requested and has not been ended.
	RefreshRefreshing
)

func (s RefreshState) String() string {
	switch s {
	case RefreshIdle:
		return "idle"
	case RefreshArmed:
		return "armed"
	case RefreshRefreshing:
		return "refreshing"
	}
	return fmt.Sprintf("RefreshState(%d)", int(s))
}

// RefreshController is the pull-to-refresh state machine. It reads the same
// offset as the transition engine and never writes engine state.
type RefreshController struct {
	state     RefreshState
	enabled   bool
	trigger   float64
	distance  float64
	onRequest func()
}

// NewRefreshController creates an idle controller. onRequest runs each time
// a release moves the state to refreshing.
func NewRefreshController(enabled bool, trigger float64, onRequest func()) *RefreshController {
	return &RefreshController{enabled: enabled, trigger: trigger, onRequest: onRequest}
}

// State returns the current state.
func (r *RefreshController) State() RefreshState {
	return r.state
}

// IsRefreshing reports whether a refresh is in progress.
func (r *RefreshController) IsRefreshing() bool {
	return r.state == RefreshRefreshing
}

// Configure updates the enabled flag and trigger distance. Disabling while
// armed drops back to idle; an in-flight refresh is left alone.
func (r *RefreshController) Configure(enabled bool, trigger float64) {
	r.enabled = enabled
	r.trigger = trigger
	if !enabled && r.state == RefreshArmed {
		r.setState(RefreshIdle)
	}
}

// Progress returns the pull distance as a fraction of the trigger, clamped
// to [0, 1]. Indicators use it to draw partial progress.
func (r *RefreshController) Progress() float64 {
	if r.trigger <= 0 {
		return 0
	}
	return clamp01(r.distance / r.trigger)
}

// Update feeds a scroll offset. While dragging, pulling past the trigger arms
// the controller and pulling back below it disarms it.
func (r *RefreshController) Update(offset float64, dragging bool) {
	r.distance = max(0, -offset)
	if !r.enabled || !dragging {
		return
	}
	switch r.state {
	case RefreshIdle:
		if r.distance > r.trigger {
			r.setState(RefreshArmed)
		}
	case RefreshArmed:
		if r.distance <= r.trigger {
			r.setState(RefreshIdle)
		}
	}
}

// Release ends the drag. If armed, the controller starts refreshing and the
// request callback fires. It reports whether a refresh was requested.
func (r *RefreshController) Release() bool {
	if r.state != RefreshArmed {
		return false
	}
	r.setState(RefreshRefreshing)
	if r.onRequest != nil {
		r.onRequest()
	}
	return true
}

// EndRefreshing returns to idle. Calls outside the refreshing state are no-ops.
func (r *RefreshController) EndRefreshing() {
	if r.state != RefreshRefreshing {
		return
	}
	r.setState(RefreshIdle)
}

func (r *RefreshController) setState(s RefreshState) {
	debug.Log("RefreshController: %s -> %s (distance=%.2f)", r.state, s, r.distance)
	r.state = s
}
