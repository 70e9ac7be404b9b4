package termview

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	profile "github.com/grindlemire/go-profile"
)

// Renderer paints a controller into a cols x rows frame. The last row is
// reserved for the status line.
type Renderer struct {
	cols, rows int
	scale      Scale
	styles     Styles
	views      map[profile.AccessoryKind]*View
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithScale overrides DefaultScale.
func WithScale(s Scale) Option {
	return func(r *Renderer) {
		if s.PointsPerColumn > 0 && s.PointsPerRow > 0 {
			r.scale = s
		}
	}
}

// WithStyles overrides the default palette.
func WithStyles(s Styles) Option {
	return func(r *Renderer) {
		r.styles = s
	}
}

// NewRenderer creates a renderer for a cols x rows terminal.
func NewRenderer(cols, rows int, opts ...Option) *Renderer {
	r := &Renderer{
		cols:   cols,
		rows:   rows,
		scale:  DefaultScale,
		styles: DefaultStyles(lipgloss.DefaultRenderer()),
		views:  make(map[profile.AccessoryKind]*View),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Factory returns a profile.ViewFactory whose views this renderer draws.
// Registering a kind again replaces its view.
func (r *Renderer) Factory() profile.ViewFactory {
	return func(kind profile.AccessoryKind) profile.AccessoryView {
		v := NewView(kind)
		r.views[kind] = v
		return v
	}
}

// View returns the view created for kind.
func (r *Renderer) View(kind profile.AccessoryKind) (*View, bool) {
	v, ok := r.views[kind]
	return v, ok
}

// Resize changes the frame size.
func (r *Renderer) Resize(cols, rows int) {
	r.cols, r.rows = cols, rows
}

// ViewportSize is the profile viewport, in points, that fills the frame
// above the status line.
func (r *Renderer) ViewportSize() profile.Size {
	return r.scale.Points(r.cols, max(r.rows-1, 0))
}

// Pane is the content drawn below the header.
type Pane struct {
	Rows []string
}

// Render draws c with pane as the displayed content and status on the
// last row.
func (r *Renderer) Render(c *profile.Controller, pane Pane, status string) string {
	return r.paint(c, pane, status).render(r.styles)
}

// RenderPlain is Render without styling.
func (r *Renderer) RenderPlain(c *profile.Controller, pane Pane, status string) string {
	return r.paint(c, pane, status).plain()
}

func (r *Renderer) paint(c *profile.Controller, pane Pane, status string) *canvas {
	r.prune(c)
	cv := newCanvas(r.cols, r.rows)
	if cv.h == 0 {
		return cv
	}
	statusRow := cv.h - 1

	var headerFrame profile.Rect
	var headerRef profile.Size
	headerVisible := false
	if hv, ok := r.views[profile.KindHeader]; ok {
		if attrs, ok := hv.Attributes(); ok {
			headerRef = attrs.ReferenceSize
			if !attrs.Hidden() {
				headerFrame = attrs.Frame
				headerVisible = true
			}
		}
	}

	segments := c.SegmentedControl()
	segPts := 0.0
	if !segments.Hidden() {
		segPts = r.scale.PointsPerRow
	}
	segTop := max(headerFrame.Bottom(), 0)

	// Content scrolls under the header and the segment bar.
	offset := c.ContentOffset()
	contentTop := headerRef.Height + segPts - offset
	clip := r.scale.row(segTop + segPts)
	for i, line := range pane.Rows {
		y := r.scale.row(contentTop + float64(i)*r.scale.PointsPerRow)
		if y < clip || y >= statusRow {
			continue
		}
		cv.text(1, y, line, roleContent)
	}

	if headerVisible {
		cv.fill(r.scale.cells(headerFrame), '░', roleHeader)
	}

	if !segments.Hidden() {
		r.paintSegments(cv, r.scale.row(segTop), segments)
	}

	for _, kind := range r.accessoryKinds() {
		r.paintAccessory(cv, kind, r.views[kind])
	}
	if av, ok := r.views[profile.KindAvatar]; ok {
		r.paintAvatar(cv, av)
	}

	r.paintOverlay(cv, c.Overlay(), headerFrame)

	for x := 0; x < cv.w; x++ {
		cv.set(x, statusRow, ' ', roleStatus)
	}
	cv.text(0, statusRow, status, roleStatus)
	return cv
}

// prune drops views c no longer owns, either because their kind was
// unregistered or because a later registration replaced them.
func (r *Renderer) prune(c *profile.Controller) {
	for kind, v := range r.views {
		if current, ok := c.AccessoryView(kind); !ok || current != v {
			delete(r.views, kind)
		}
	}
}

// accessoryKinds returns the custom kinds in sorted order.
func (r *Renderer) accessoryKinds() []profile.AccessoryKind {
	var kinds []profile.AccessoryKind
	for kind := range r.views {
		if kind != profile.KindHeader && kind != profile.KindAvatar {
			kinds = append(kinds, kind)
		}
	}
	slices.Sort(kinds)
	return kinds
}

func (r *Renderer) paintSegments(cv *canvas, y int, s *profile.SegmentedControl) {
	for x := 0; x < cv.w; x++ {
		cv.set(x, y, ' ', roleSegment)
	}
	x := 1
	for i, title := range s.Titles() {
		ro := roleSegment
		if i == s.SelectedIndex() {
			ro = roleSegmentActive
		}
		label := fmt.Sprintf(" %s ", title)
		cv.text(x, y, label, ro)
		x += len([]rune(label)) + 1
	}
}

func (r *Renderer) paintAvatar(cv *canvas, v *View) {
	attrs, ok := v.visible()
	if !ok {
		return
	}
	ro := roleAvatar
	if v.Highlighted() {
		ro = roleAvatarActive
	}
	label := initials(v.Label)
	if v.Selected() {
		label = "*" + label
	}
	cv.box(r.scale.cells(attrs.Frame), label, ro)
}

// paintAccessory draws a custom kind as its label. A transitioned percent
// above one half fades it; a fully transitioned accessory is not drawn.
func (r *Renderer) paintAccessory(cv *canvas, kind profile.AccessoryKind, v *View) {
	attrs, ok := v.visible()
	if !ok || attrs.PercentTransitioned() >= 1 {
		return
	}
	ro := roleAccessory
	if attrs.PercentTransitioned() > 0.5 {
		ro = roleAccessoryFaint
	}
	rect := r.scale.cells(attrs.Frame)
	cv.text(rect.x0, rect.y0, "["+v.Label+"]", ro)
}

// paintOverlay draws the navigation bar on the header's first row. The bar
// glyph darkens with BarAlpha and the title fades in with TitleAlpha.
func (r *Renderer) paintOverlay(cv *canvas, o profile.OverlayState, header profile.Rect) {
	if !o.Visible || o.BarAlpha <= 0 {
		return
	}
	shades := []rune("░▒▓█")
	shade := shades[min(int(o.BarAlpha*float64(len(shades))), len(shades)-1)]
	rect := r.scale.cells(header)
	y := max(rect.y0, 0)
	for x := rect.x0; x < rect.x1; x++ {
		cv.set(x, y, shade, roleBar)
	}
	if o.TitleAlpha <= 0 || o.Title == "" {
		return
	}
	ro := roleTitle
	if o.TitleAlpha < 1 {
		ro = roleTitleFaint
	}
	title := " " + o.Title + " "
	x := rect.x0 + (rect.width()-len([]rune(title)))/2
	cv.text(max(x, 0), y, title, ro)
}

func initials(label string) string {
	var b strings.Builder
	for _, f := range strings.FieldsFunc(label, func(r rune) bool { return r == ' ' || r == '-' || r == '_' }) {
		b.WriteString(strings.ToUpper(string([]rune(f)[0])))
	}
	return b.String()
}

// StatusLine summarizes the scroll position and pull-to-refresh state.
func StatusLine(c *profile.Controller) string {
	var pct float64
	if h, ok := c.LayoutAttributes(profile.KindHeader); ok {
		pct = h.PercentTransitioned()
	}
	parts := []string{
		fmt.Sprintf("offset %.0f", c.ContentOffset()),
		fmt.Sprintf("header %3.0f%%", pct*100),
	}
	switch c.RefreshState() {
	case profile.RefreshArmed:
		parts = append(parts, "release to refresh")
	case profile.RefreshRefreshing:
		parts = append(parts, "refreshing…")
	default:
		if p := c.RefreshProgress(); p > 0 {
			parts = append(parts, "pull "+progressBar(p, 8))
		}
	}
	return strings.Join(parts, "  ")
}

func progressBar(p float64, width int) string {
	filled := int(p * float64(width))
	return strings.Repeat("▰", filled) + strings.Repeat("▱", width-filled)
}
