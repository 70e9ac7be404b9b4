package profile

// HeaderTransition is the built-in rule for KindHeader.
//
// With MimicsNavigationBar the header stays at the top and its height
// interpolates from the reference height down to PinnedHeaderHeight over
// the first (reference - pinned) points of scroll. Without it the header
// keeps its height and scrolls away with the content. Over-scroll either
// stretches the header or lets it slide down, per HeaderStretches.
type HeaderTransition struct{}

// Layout implements AttributesType.
func (HeaderTransition) Layout(attrs *LayoutAttributes, in LayoutInput) {
	cfg := in.Config
	ref := in.ReferenceSize
	offset := in.Offset

	if offset < 0 {
		attrs.SetPercentTransitioned(0)
		if cfg.HeaderStretches {
			attrs.Frame = NewRect(0, 0, ref.Width, ref.Height-offset)
		} else {
			attrs.Frame = NewRect(0, -offset, ref.Width, ref.Height)
		}
		return
	}

	p := Progress(offset, 0, cfg.collapseDistance())
	attrs.SetPercentTransitioned(p)
	eased := cfg.Curve.at(p)

	if cfg.MimicsNavigationBar {
		pinned := min(cfg.PinnedHeaderHeight, ref.Height)
		attrs.Frame = NewRect(0, 0, ref.Width, lerp(ref.Height, pinned, eased))
		return
	}
	attrs.Frame = NewRect(0, -ref.Height*eased, ref.Width, ref.Height)
}

// AvatarTransition is the built-in rule for KindAvatar. The avatar's
// vertical center rests on the header's bottom edge, it scrolls with the
// content, and it shrinks toward AvatarMinimumScale using the same percent
// that collapses the header so the two never drift apart.
type AvatarTransition struct{}

// Layout implements AttributesType.
func (AvatarTransition) Layout(attrs *LayoutAttributes, in LayoutInput) {
	cfg := in.Config
	ref := in.ReferenceSize
	header := cfg.headerReferenceSize()
	offset := in.Offset

	var p float64
	if offset > 0 {
		p = Progress(offset, 0, cfg.collapseDistance())
	}
	attrs.SetPercentTransitioned(p)

	size := ref.Scale(lerp(1, cfg.AvatarMinimumScale, cfg.Curve.at(p)))
	insets := cfg.AvatarInsets
	restingBottom := header.Height + ref.Height/2 + insets.Top - insets.Bottom
	bottom := restingBottom - offset

	var x float64
	switch cfg.AvatarAlignment {
	case AlignCenter:
		x = (header.Width - size.Width) / 2
	case AlignRight:
		x = header.Width - insets.Right - size.Width
	default:
		x = insets.Left
	}
	attrs.Frame = NewRect(x, bottom-size.Height, size.Width, size.Height)
}

// PinTransition keeps an accessory fixed at Origin. Its percent tracks how
// much content has scrolled under it, measured over its own height.
type PinTransition struct {
	Origin Point
}

// Layout implements AttributesType.
func (t PinTransition) Layout(attrs *LayoutAttributes, in LayoutInput) {
	ref := in.ReferenceSize
	attrs.SetPercentTransitioned(Progress(in.Offset, 0, ref.Height))
	attrs.Frame = NewRect(t.Origin.X, t.Origin.Y, ref.Width, ref.Height)
}

// ParallaxTransition moves an accessory at Factor times the scroll speed.
// Percent is the share of the travel needed to move it fully above the top.
type ParallaxTransition struct {
	Origin Point
	Factor float64
}

// Layout implements AttributesType.
func (t ParallaxTransition) Layout(attrs *LayoutAttributes, in LayoutInput) {
	ref := in.ReferenceSize
	shift := in.Offset * t.Factor
	attrs.SetPercentTransitioned(Progress(shift, 0, t.Origin.Y+ref.Height))
	attrs.Frame = NewRect(t.Origin.X, t.Origin.Y-shift, ref.Width, ref.Height)
}

// FadeTransition scrolls an accessory with the content. Its percent goes
// from 0 to 1 over its own height and is meant to drive opacity.
type FadeTransition struct {
	Origin Point
}

// Layout implements AttributesType.
func (t FadeTransition) Layout(attrs *LayoutAttributes, in LayoutInput) {
	ref := in.ReferenceSize
	attrs.SetPercentTransitioned(Progress(in.Offset, 0, ref.Height))
	attrs.Frame = NewRect(t.Origin.X, t.Origin.Y-in.Offset, ref.Width, ref.Height)
}
