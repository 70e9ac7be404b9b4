package profile

import "time"

// Animator runs a batch of view updates as one animated step. Implementations
// must call changes exactly once. completion may be nil and may run later;
// the Controller never waits for it.
type Animator interface {
	Animate(duration time.Duration, changes func(), completion func())
}

// ImmediateAnimator applies changes synchronously with no animation.
type ImmediateAnimator struct{}

// Animate implements Animator.
func (ImmediateAnimator) Animate(_ time.Duration, changes func(), completion func()) {
	changes()
	if completion != nil {
		completion()
	}
}
