// Package profile computes the scroll-driven layout of a profile screen: a
// collapsing header, an avatar anchored to it, any number of custom accessory
// views, and a set of independently scrolling content panes behind a
// segmented control.
//
// The package never draws anything. Every scroll, layout, or configuration
// event produces a LayoutAttributes value per accessory kind, and the
// Controller hands those values to the AccessoryView implementations you
// register.
//
// Thread Safety Rules:
//   - A Controller and everything it owns belong to one event loop.
//   - No method takes a lock; call them from the loop that delivers scroll events.
//   - Animator completions may arrive later but never block the engine.
//
// Example usage:
//
//	c, err := profile.New(source,
//	    profile.WithDelegate(d),
//	    profile.WithConfigOptions(profile.WithHeaderReferenceSize(profile.NewSize(0, 200))),
//	)
//	c.HandleScroll(78, true)
//	attrs, ok := c.LayoutAttributes(profile.KindHeader)
package profile

import "fmt"

// AccessoryKind identifies a category of header-area decoration.
type AccessoryKind string

// Built-in accessory kinds. Registering either one replaces the built-in
// behavior wholesale.
const (
	KindAvatar AccessoryKind = "avatar"
	KindHeader AccessoryKind = "header"
)

// LayoutAttributes describes where and how an accessory view should appear
// for the current scroll position.
//
// Frame, Bounds and ReferenceSize are rewritten on every recompute. The
// percent and hidden flag are owned by the engine: percent is always clamped
// to [0, 1] and hidden is derived from the reference size and configuration.
type LayoutAttributes struct {
	kind AccessoryKind

	// Frame is the accessory's rectangle in the profile's coordinate space.
	Frame Rect

	// Bounds is the frame's size at the origin.
	Bounds Rect

	// ReferenceSize is the configured resting size of the accessory.
	ReferenceSize Size

	percentTransitioned float64
	hidden              bool
}

// NewLayoutAttributes creates attributes for the given kind. A kind is
// mandatory; an empty kind panics.
func NewLayoutAttributes(kind AccessoryKind) LayoutAttributes {
	if kind == "" {
		panic("profile: NewLayoutAttributes requires an accessory kind")
	}
	return LayoutAttributes{kind: kind}
}

// Kind returns the accessory kind these attributes represent.
func (a LayoutAttributes) Kind() AccessoryKind {
	return a.kind
}

// PercentTransitioned returns the transition progress in [0, 1]. 0 is the
// resting state, 1 is fully collapsed or pinned.
func (a LayoutAttributes) PercentTransitioned() float64 {
	return a.percentTransitioned
}

// SetPercentTransitioned stores p clamped to [0, 1].
func (a *LayoutAttributes) SetPercentTransitioned(p float64) {
	a.percentTransitioned = clamp01(p)
}

// Hidden reports whether the accessory should be hidden.
func (a LayoutAttributes) Hidden() bool {
	return a.hidden
}

// Equal compares two attribute values field by field.
func (a LayoutAttributes) Equal(other LayoutAttributes) bool {
	return a == other
}

// String implements fmt.Stringer for debug logging.
func (a LayoutAttributes) String() string {
	return fmt.Sprintf("%s{frame=(%.2f,%.2f %.2fx%.2f) pct=%.3f hidden=%v}",
		a.kind, a.Frame.X, a.Frame.Y, a.Frame.Width, a.Frame.Height,
		a.percentTransitioned, a.hidden)
}
