package profile

// OverlayState is the navigation-bar overlay drawn over a collapsing header.
// Both alphas are derived from the header's percent so the cross-fade moves
// exactly with the scroll.
type OverlayState struct {
	// Visible is false when the header does not mimic a navigation bar or is hidden.
	Visible bool

	// BarAlpha is the opacity of the bar background.
	BarAlpha float64

	// TitleAlpha is the opacity of the title. It starts rising once the
	// header passes Config.TitleFadeStart.
	TitleAlpha float64

	// Title is the displayed content controller's title.
	Title string
}

// ComputeOverlay derives the overlay from the header's attributes.
func ComputeOverlay(header LayoutAttributes, cfg Config, title string) OverlayState {
	if !cfg.MimicsNavigationBar || header.Hidden() {
		return OverlayState{Title: title}
	}
	p := header.PercentTransitioned()
	return OverlayState{
		Visible:    true,
		BarAlpha:   p,
		TitleAlpha: Progress(p, cfg.TitleFadeStart, 1),
		Title:      title,
	}
}
