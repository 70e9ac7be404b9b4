package profile

// AttributesView is a minimal AccessoryView that keeps the last attributes
// and touch state it was given. The Controller uses it for the built-in
// kinds when no other view factory is configured.
type AttributesView struct {
	attrs       LayoutAttributes
	applied     bool
	highlighted bool
	selected    bool
}

// ApplyLayoutAttributes implements AccessoryView.
func (v *AttributesView) ApplyLayoutAttributes(attrs LayoutAttributes) {
	v.attrs = attrs
	v.applied = true
}

// SetHighlighted implements Highlightable.
func (v *AttributesView) SetHighlighted(highlighted, _ bool) {
	v.highlighted = highlighted
}

// SetSelected implements Selectable.
func (v *AttributesView) SetSelected(selected, _ bool) {
	v.selected = selected
}

// Attributes returns the last applied attributes.
func (v *AttributesView) Attributes() (LayoutAttributes, bool) {
	return v.attrs, v.applied
}

// Highlighted reports the highlight state.
func (v *AttributesView) Highlighted() bool {
	return v.highlighted
}

// Selected reports the selection state.
func (v *AttributesView) Selected() bool {
	return v.selected
}
