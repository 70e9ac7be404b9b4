package profile

import (
	"fmt"
	"slices"

	"github.com/grindlemire/go-profile/internal/debug"
)

// AccessoryView is the rendering side of an accessory. The Controller calls
// ApplyLayoutAttributes whenever the attributes for the view's kind change or
// were invalidated.
type AccessoryView interface {
	ApplyLayoutAttributes(attrs LayoutAttributes)
}

// Highlightable is implemented by views that show a touch-down state.
type Highlightable interface {
	SetHighlighted(highlighted, animated bool)
}

// Selectable is implemented by views that show a selected state.
type Selectable interface {
	SetSelected(selected, animated bool)
}

// ViewFactory creates the view for an accessory kind.
type ViewFactory func(kind AccessoryKind) AccessoryView

// LayoutInput is everything an AttributesType may read when laying out one
// kind. It never includes another kind's output.
type LayoutInput struct {
	// Offset is the displayed pane's vertical scroll offset. Negative values
	// are over-scroll.
	Offset float64

	// ReferenceSize is the kind's resolved resting size.
	ReferenceSize Size

	// Config is the active configuration. Treat it as read-only.
	Config Config
}

// AttributesType is the transition rule for a kind. Layout writes Frame and
// the percent into attrs; the engine derives Bounds and Hidden afterwards and
// clamps the percent.
type AttributesType interface {
	Layout(attrs *LayoutAttributes, in LayoutInput)
}

// AttributesFunc adapts a function to AttributesType.
type AttributesFunc func(attrs *LayoutAttributes, in LayoutInput)

// Layout calls f.
func (f AttributesFunc) Layout(attrs *LayoutAttributes, in LayoutInput) {
	f(attrs, in)
}

// accessoryEntry is the registry's record for one kind.
type accessoryEntry struct {
	view      AccessoryView
	attrsType AttributesType
	attrs     LayoutAttributes
	computed  bool // attrs hold a recompute result
	stale     bool // reapply on the next pass even if unchanged
	touch     touchState
}

// AccessoryRegistry maps accessory kinds to their view and transition rule,
// and caches the last attributes applied to each view.
type AccessoryRegistry struct {
	entries map[AccessoryKind]*accessoryEntry
}

// NewAccessoryRegistry creates an empty registry.
func NewAccessoryRegistry() *AccessoryRegistry {
	return &AccessoryRegistry{entries: make(map[AccessoryKind]*accessoryEntry)}
}

// Register installs a view and rule for kind, replacing any prior
// registration. The factory is invoked immediately.
func (r *AccessoryRegistry) Register(kind AccessoryKind, factory ViewFactory, attrsType AttributesType) error {
	if kind == "" {
		return fmt.Errorf("%w: empty accessory kind", ErrInvalidRegistration)
	}
	if factory == nil {
		return fmt.Errorf("%w: nil view factory for %q", ErrInvalidRegistration, kind)
	}
	if attrsType == nil {
		return fmt.Errorf("%w: nil attributes type for %q", ErrInvalidRegistration, kind)
	}
	view := factory(kind)
	if view == nil {
		return fmt.Errorf("%w: view factory for %q returned nil", ErrInvalidRegistration, kind)
	}

	_, replaced := r.entries[kind]
	r.entries[kind] = &accessoryEntry{
		view:      view,
		attrsType: attrsType,
		attrs:     NewLayoutAttributes(kind),
		stale:     true,
	}
	debug.Log("AccessoryRegistry.Register: kind=%s replaced=%v", kind, replaced)
	return nil
}

// Unregister removes kind. It returns false if kind was not registered.
func (r *AccessoryRegistry) Unregister(kind AccessoryKind) bool {
	if _, ok := r.entries[kind]; !ok {
		return false
	}
	delete(r.entries, kind)
	debug.Log("AccessoryRegistry.Unregister: kind=%s", kind)
	return true
}

// View returns the view registered for kind.
func (r *AccessoryRegistry) View(kind AccessoryKind) (AccessoryView, bool) {
	e, ok := r.entries[kind]
	if !ok {
		return nil, false
	}
	return e.view, true
}

// Attributes returns the last computed attributes for kind. Kinds that are
// registered but not yet laid out report false.
func (r *AccessoryRegistry) Attributes(kind AccessoryKind) (LayoutAttributes, bool) {
	e, ok := r.entries[kind]
	if !ok || !e.computed {
		return LayoutAttributes{}, false
	}
	return e.attrs, true
}

// Type returns the transition rule registered for kind.
func (r *AccessoryRegistry) Type(kind AccessoryKind) (AttributesType, bool) {
	e, ok := r.entries[kind]
	if !ok {
		return nil, false
	}
	return e.attrsType, true
}

// Invalidate marks kind stale so the next pass reapplies it even when the
// offset has not changed.
func (r *AccessoryRegistry) Invalidate(kind AccessoryKind) error {
	e, ok := r.entries[kind]
	if !ok {
		return fmt.Errorf("invalidate %q: %w", kind, ErrAccessoryNotFound)
	}
	e.stale = true
	return nil
}

// InvalidateAll marks every kind stale.
func (r *AccessoryRegistry) InvalidateAll() {
	for _, e := range r.entries {
		e.stale = true
	}
}

// IsStale reports whether kind is waiting for a forced reapply.
func (r *AccessoryRegistry) IsStale(kind AccessoryKind) bool {
	e, ok := r.entries[kind]
	return ok && e.stale
}

// Kinds returns the registered kinds in sorted order.
func (r *AccessoryRegistry) Kinds() []AccessoryKind {
	kinds := make([]AccessoryKind, 0, len(r.entries))
	for k := range r.entries {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// Len returns the number of registered kinds.
func (r *AccessoryRegistry) Len() int {
	return len(r.entries)
}

// commit stores attrs for its kind and reports whether the view needs them:
// the value changed, the kind was stale, or nothing had been computed yet.
func (r *AccessoryRegistry) commit(attrs LayoutAttributes) bool {
	e, ok := r.entries[attrs.Kind()]
	if !ok {
		return false
	}
	changed := !e.computed || e.stale || !e.attrs.Equal(attrs)
	e.attrs = attrs
	e.computed = true
	e.stale = false
	return changed
}
