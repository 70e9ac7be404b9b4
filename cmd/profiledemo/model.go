package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	profile "github.com/grindlemire/go-profile"
	"github.com/grindlemire/go-profile/internal/debug"
	"github.com/grindlemire/go-profile/internal/termview"
)

const (
	defaultCols = 75
	defaultRows = 30

	// maxPull is how far past the top the content can be dragged.
	maxPull = 160
	// pageRows is how many rows pgup and pgdown move.
	pageRows = 5
)

const help = "↑/↓ scroll  enter release  tab/1-9 pane  a avatar  h header  s avatar size  q quit"

type refreshDoneMsg struct{}

// session is the state shared between the model and the controller's
// delegate callbacks.
type session struct {
	ctrl         *profile.Controller
	view         *termview.Renderer
	source       *paneSource
	refreshDelay time.Duration

	refreshRequested bool
	refreshes        int
	event            string
}

// DidRequestRefresh implements profile.Delegate.
func (s *session) DidRequestRefresh(*profile.Controller) {
	s.refreshRequested = true
	s.event = "refresh requested"
}

// DidShowContentController implements profile.Delegate.
func (s *session) DidShowContentController(_ *profile.Controller, index int) {
	s.event = "showing " + s.source.panes[index].title
}

// DidSelectAccessoryView implements profile.Delegate.
func (s *session) DidSelectAccessoryView(_ *profile.Controller, kind profile.AccessoryKind) {
	s.event = "selected " + string(kind)
}

// DidDeselectAccessoryView implements profile.Delegate.
func (s *session) DidDeselectAccessoryView(_ *profile.Controller, kind profile.AccessoryKind) {
	s.event = "deselected " + string(kind)
}

// DidHighlightAccessoryView implements profile.Delegate.
func (s *session) DidHighlightAccessoryView(_ *profile.Controller, kind profile.AccessoryKind) {
	s.event = "highlighted " + string(kind)
}

// DidUnhighlightAccessoryView implements profile.Delegate.
func (s *session) DidUnhighlightAccessoryView(*profile.Controller, profile.AccessoryKind) {}

type model struct {
	*session
}

func newModel(s settings, cfg profile.Config) (model, error) {
	source := &paneSource{}
	for i, n := 0, s.Panes; i < n; i++ {
		source.panes = append(source.panes, newPane(i, s.Rows))
	}
	view := termview.NewRenderer(defaultCols, defaultRows)
	sess := &session{view: view, source: source, refreshDelay: s.RefreshDelay}

	cfg, err := cfg.With(profile.WithViewportSize(view.ViewportSize()))
	if err != nil {
		return model{}, err
	}
	ctrl, err := profile.New(source,
		profile.WithConfig(cfg),
		profile.WithBuiltinViews(view.Factory()),
		profile.WithDelegate(sess),
	)
	if err != nil {
		return model{}, err
	}
	if err := ctrl.RegisterAccessory("follow", view.Factory(), profile.FadeTransition{Origin: profile.Point{X: 5, Y: 8}}); err != nil {
		return model{}, err
	}
	if err := ctrl.SetReferenceSize("follow", profile.NewSize(50, 16)); err != nil {
		return model{}, err
	}
	sess.ctrl = ctrl
	return model{session: sess}, nil
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.view.Resize(msg.Width, msg.Height)
		if err := m.ctrl.SetViewportSize(m.view.ViewportSize()); err != nil {
			m.event = err.Error()
		}
		return m, nil

	case refreshDoneMsg:
		m.refreshes++
		if slot, ok := m.ctrl.DisplayedContentController(); ok {
			slot.(*pane).prepend(fmt.Sprintf("new item %d", m.refreshes))
		}
		m.ctrl.EndRefreshing()
		if m.ctrl.ContentOffset() < 0 {
			m.ctrl.HandleScroll(0, false)
		}
		m.event = "refreshed"
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	step := termview.DefaultScale.PointsPerRow
	switch key := msg.String(); key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		m.scrollBy(-step)
	case "down", "j":
		m.scrollBy(step)
	case "pgup":
		m.scrollBy(-step * pageRows)
	case "pgdown":
		m.scrollBy(step * pageRows)
	case "enter", " ":
		m.release()
	case "tab":
		n := m.ctrl.NumberOfContentControllers()
		if n > 0 {
			m.selectPane((m.ctrl.DisplayedIndex() + 1) % n)
		}
	case "a":
		m.touchAvatar()
	case "h":
		m.toggleHeader()
	case "s":
		m.cycleAvatarSize()
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			m.selectPane(int(key[0] - '1'))
		}
	}
	return m, m.pendingRefresh()
}

// scrollBy drags the displayed pane. Dragging above the top is allowed up to
// maxPull so pull-to-refresh can arm.
func (m model) scrollBy(delta float64) {
	next := m.ctrl.ContentOffset() + delta
	next = max(next, -maxPull)
	next = min(next, m.maxOffset())
	m.ctrl.HandleScroll(next, true)
}

func (m model) maxOffset() float64 {
	slot, ok := m.ctrl.DisplayedContentController()
	if !ok {
		return 0
	}
	return float64(len(slot.(*pane).rows)) * termview.DefaultScale.PointsPerRow
}

// release lifts the finger and settles any over-scroll back to the top.
func (m model) release() {
	m.ctrl.HandleDragEnd()
	if off := m.ctrl.ContentOffset(); off < 0 {
		m.ctrl.HandleScroll(0, false)
	}
}

func (m model) selectPane(index int) {
	if err := m.ctrl.SegmentedControl().Select(index); err != nil {
		debug.Log("select pane %d: %v", index, err)
	}
}

func (m model) touchAvatar() {
	if state, ok := m.ctrl.AccessorySelection(profile.KindAvatar); ok && state.Selected {
		if err := m.ctrl.DeselectAccessoryView(profile.KindAvatar, true); err != nil {
			m.event = err.Error()
		}
		return
	}
	for _, p := range []profile.TouchPhase{profile.TouchDown, profile.TouchUpInside} {
		if err := m.ctrl.HandleAccessoryTouch(profile.KindAvatar, p); err != nil {
			m.event = err.Error()
			return
		}
	}
}

func (m model) toggleHeader() {
	hidden := m.ctrl.Config().IsHidden(profile.KindHeader)
	if err := m.ctrl.SetAccessoryHidden(profile.KindHeader, !hidden); err != nil {
		m.event = err.Error()
	}
}

// cycleAvatarSize steps through the preset sizes in one batch so the header
// and avatar update together.
func (m model) cycleAvatarSize() {
	next := map[profile.AvatarSize]profile.AvatarSize{
		profile.AvatarSizeSmall:  profile.AvatarSizeNormal,
		profile.AvatarSizeNormal: profile.AvatarSizeLarge,
		profile.AvatarSizeLarge:  profile.AvatarSizeSmall,
		profile.AvatarSizeCustom: profile.AvatarSizeNormal,
	}[m.ctrl.Config().AvatarSize]

	if err := m.ctrl.BeginUpdates(); err != nil {
		m.event = err.Error()
		return
	}
	if err := m.ctrl.Reconfigure(profile.WithAvatarSize(next)); err != nil {
		m.event = err.Error()
	}
	if err := m.ctrl.EndUpdates(); err != nil {
		m.event = err.Error()
		return
	}
	m.event = "avatar " + next.String()
}

// pendingRefresh schedules the end of a refresh the delegate just requested.
func (m model) pendingRefresh() tea.Cmd {
	if !m.refreshRequested {
		return nil
	}
	m.refreshRequested = false
	return tea.Tick(m.refreshDelay, func(time.Time) tea.Msg {
		return refreshDoneMsg{}
	})
}

func (m model) View() string {
	var rows []string
	if slot, ok := m.ctrl.DisplayedContentController(); ok {
		rows = slot.(*pane).rows
	}
	status := termview.StatusLine(m.ctrl)
	if m.event != "" {
		status += "  · " + m.event
	}
	status += "  │ " + help
	return m.view.Render(m.ctrl, termview.Pane{Rows: rows}, status)
}
