package termview

import "github.com/charmbracelet/lipgloss"

const (
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext  lipgloss.Color = "#a6adc8"
	colorOverlay  lipgloss.Color = "#6c7086"
	colorSurface  lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorPink     lipgloss.Color = "#f5c2e7"
	colorLavender lipgloss.Color = "#b4befe"
	colorTeal     lipgloss.Color = "#94e2d5"
)

// Styles holds one lipgloss style per painted element.
type Styles struct {
	Content        lipgloss.Style
	Header         lipgloss.Style
	Bar            lipgloss.Style
	Title          lipgloss.Style
	TitleFaint     lipgloss.Style
	Segment        lipgloss.Style
	SegmentActive  lipgloss.Style
	Avatar         lipgloss.Style
	AvatarActive   lipgloss.Style
	Accessory      lipgloss.Style
	AccessoryFaint lipgloss.Style
	Status         lipgloss.Style
}

// DefaultStyles builds the palette on r. Pass lipgloss.DefaultRenderer()
// when drawing to the process's terminal.
func DefaultStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Content:        r.NewStyle().Foreground(colorText),
		Header:         r.NewStyle().Foreground(colorMauve).Background(colorSurface),
		Bar:            r.NewStyle().Foreground(colorLavender).Background(colorBase),
		Title:          r.NewStyle().Bold(true).Foreground(colorText).Background(colorBase),
		TitleFaint:     r.NewStyle().Faint(true).Foreground(colorSubtext).Background(colorBase),
		Segment:        r.NewStyle().Foreground(colorSubtext),
		SegmentActive:  r.NewStyle().Bold(true).Underline(true).Foreground(colorPink),
		Avatar:         r.NewStyle().Foreground(colorTeal),
		AvatarActive:   r.NewStyle().Bold(true).Foreground(colorPink),
		Accessory:      r.NewStyle().Foreground(colorLavender),
		AccessoryFaint: r.NewStyle().Faint(true).Foreground(colorOverlay),
		Status:         r.NewStyle().Foreground(colorOverlay),
	}
}

func (s Styles) of(ro role) lipgloss.Style {
	switch ro {
	case roleContent:
		return s.Content
	case roleHeader:
		return s.Header
	case roleBar:
		return s.Bar
	case roleTitle:
		return s.Title
	case roleTitleFaint:
		return s.TitleFaint
	case roleSegment:
		return s.Segment
	case roleSegmentActive:
		return s.SegmentActive
	case roleAvatar:
		return s.Avatar
	case roleAvatarActive:
		return s.AvatarActive
	case roleAccessory:
		return s.Accessory
	case roleAccessoryFaint:
		return s.AccessoryFaint
	case roleStatus:
		return s.Status
	}
	return lipgloss.NewStyle()
}
