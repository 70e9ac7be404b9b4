package profile

import "errors"

// Configuration errors. These are returned synchronously and leave all prior
// state untouched.
var (
	ErrInvalidConfig           = errors.New("profile: invalid configuration")
	ErrInvalidHeightMultiplier = errors.New("profile: height multiplier must be in (0, 1]")
	ErrIndexOutOfBounds        = errors.New("profile: content controller index out of bounds")
	ErrInvalidRegistration     = errors.New("profile: invalid accessory registration")
)

// ErrAccessoryNotFound is returned by operations that need an error result
// for an unregistered kind. Plain lookups return (zero, false) instead.
var ErrAccessoryNotFound = errors.New("profile: accessory kind not registered")

// State-machine violations.
var (
	ErrAlreadyBatching      = errors.New("profile: already batching updates")
	ErrNotBatching          = errors.New("profile: not batching updates")
	ErrReloadDuringBatch    = errors.New("profile: reloadData called between beginUpdates and endUpdates")
	ErrNoDataSource         = errors.New("profile: no data source")
	ErrSegmentedControlIdle = errors.New("profile: segmented control is not bound to a controller")
)
