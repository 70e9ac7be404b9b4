package termview

import (
	profile "github.com/grindlemire/go-profile"
)

// View is the terminal stand-in for an accessory. It keeps whatever the
// controller last applied so Render can paint it.
type View struct {
	profile.AttributesView

	kind  profile.AccessoryKind
	Label string
}

var (
	_ profile.AccessoryView = (*View)(nil)
	_ profile.Highlightable = (*View)(nil)
	_ profile.Selectable    = (*View)(nil)
)

// NewView creates a view for kind labelled with the kind name.
func NewView(kind profile.AccessoryKind) *View {
	return &View{kind: kind, Label: string(kind)}
}

// Kind returns the accessory kind the view was created for.
func (v *View) Kind() profile.AccessoryKind {
	return v.kind
}

// visible reports whether the view has attributes worth drawing.
func (v *View) visible() (profile.LayoutAttributes, bool) {
	attrs, ok := v.Attributes()
	if !ok || attrs.Hidden() || attrs.Frame.IsEmpty() {
		return attrs, false
	}
	return attrs, true
}
