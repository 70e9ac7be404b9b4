package profile

import (
	"fmt"
	"reflect"

	"github.com/grindlemire/go-profile/internal/debug"
)

// ControllerOption is a functional option for configuring a Controller.
type ControllerOption func(*Controller) error

// WithDelegate sets the notification receiver. The Controller does not own it.
func WithDelegate(d Delegate) ControllerOption {
	return func(c *Controller) error {
		if d == nil {
			return fmt.Errorf("%w: nil delegate", ErrInvalidConfig)
		}
		c.delegate = d
		return nil
	}
}

// WithAnimator sets the animator used by EndUpdates.
// Default is ImmediateAnimator.
func WithAnimator(a Animator) ControllerOption {
	return func(c *Controller) error {
		if a == nil {
			return fmt.Errorf("%w: nil animator", ErrInvalidConfig)
		}
		c.animator = a
		return nil
	}
}

// WithContentPresenter sets the collaborator that swaps the visible pane.
func WithContentPresenter(p ContentPresenter) ControllerOption {
	return func(c *Controller) error {
		c.presenter = p
		return nil
	}
}

// WithConfig replaces the whole configuration. It must be valid.
func WithConfig(cfg Config) ControllerOption {
	return func(c *Controller) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		c.engine.config = cfg.Clone()
		return nil
	}
}

// WithConfigOptions applies Config options on top of the current configuration.
func WithConfigOptions(opts ...Option) ControllerOption {
	return func(c *Controller) error {
		next, err := c.engine.config.With(opts...)
		if err != nil {
			return err
		}
		c.engine.config = next
		return nil
	}
}

// WithBuiltinViews sets the factory used for the built-in header and avatar
// views. Default is a factory of AttributesView.
func WithBuiltinViews(f ViewFactory) ControllerOption {
	return func(c *Controller) error {
		if f == nil {
			return fmt.Errorf("%w: nil view factory", ErrInvalidConfig)
		}
		c.builtinViews = f
		return nil
	}
}

// Controller is the profile façade. It forwards scroll and pane-switch events
// into the transition engine and applies the resulting attributes to the
// registered views.
type Controller struct {
	dataSource   DataSource
	delegate     Delegate
	animator     Animator
	presenter    ContentPresenter
	builtinViews ViewFactory

	registry *AccessoryRegistry
	engine   *TransitionEngine
	pager    *PagingCoordinator
	batch    BatchController
	refresh  *RefreshController

	reconfigureSeq int
}

// New creates a Controller over ds. ds may be nil, in which case the profile
// shows no content until a data source is set and ReloadData is called.
func New(ds DataSource, opts ...ControllerOption) (*Controller, error) {
	registry := NewAccessoryRegistry()
	c := &Controller{
		dataSource:   ds,
		delegate:     BaseDelegate{},
		animator:     ImmediateAnimator{},
		builtinViews: func(AccessoryKind) AccessoryView { return &AttributesView{} },
		registry:     registry,
		engine:       NewTransitionEngine(registry, DefaultConfig()),
		pager:        NewPagingCoordinator(),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	cfg := c.engine.Config()
	c.refresh = NewRefreshController(cfg.AllowsPullToRefresh, cfg.RefreshTriggerDistance, func() {
		c.delegate.DidRequestRefresh(c)
	})
	c.pager.SegmentedControl().onSelect = c.ShowContentController

	if err := registry.Register(KindHeader, c.builtinViews, HeaderTransition{}); err != nil {
		return nil, err
	}
	if err := registry.Register(KindAvatar, c.builtinViews, AvatarTransition{}); err != nil {
		return nil, err
	}

	if ds != nil {
		if err := c.ReloadData(); err != nil {
			return nil, err
		}
	} else {
		c.layout(false)
	}
	return c, nil
}

// SetDataSource replaces the data source. Call ReloadData to pick it up.
func (c *Controller) SetDataSource(ds DataSource) {
	c.dataSource = ds
}

// Config returns a copy of the active configuration. Mutations recorded in
// an open batch are not included.
func (c *Controller) Config() Config {
	return c.engine.Config().Clone()
}

// --- Accessories ---

// RegisterAccessory installs a view factory and transition rule for kind,
// replacing any previous registration including the built-in ones. The new
// kind is laid out immediately.
func (c *Controller) RegisterAccessory(kind AccessoryKind, factory ViewFactory, attrsType AttributesType) error {
	if err := c.registry.Register(kind, factory, attrsType); err != nil {
		return err
	}
	c.layout(false)
	return nil
}

// UnregisterAccessory removes kind and its attributes. It reports whether
// kind was registered.
func (c *Controller) UnregisterAccessory(kind AccessoryKind) bool {
	return c.registry.Unregister(kind)
}

// AccessoryView returns the view registered for kind.
func (c *Controller) AccessoryView(kind AccessoryKind) (AccessoryView, bool) {
	return c.registry.View(kind)
}

// LayoutAttributes returns the current attributes for kind. Unregistered
// kinds report false; no placeholder is ever substituted.
func (c *Controller) LayoutAttributes(kind AccessoryKind) (LayoutAttributes, bool) {
	return c.registry.Attributes(kind)
}

// Accessories returns the registered kinds in sorted order.
func (c *Controller) Accessories() []AccessoryKind {
	return c.registry.Kinds()
}

// InvalidateLayoutAttributes forces kind to be recomputed and reapplied on
// the next pass even if the offset has not changed.
func (c *Controller) InvalidateLayoutAttributes(kind AccessoryKind) error {
	if err := c.registry.Invalidate(kind); err != nil {
		return err
	}
	debug.Log("Controller.InvalidateLayoutAttributes: %s", kind)
	return nil
}

// LayoutIfNeeded runs a pass at the current offset, applying any kinds that
// changed or were invalidated.
func (c *Controller) LayoutIfNeeded() {
	c.layout(false)
}

// SetReferenceSize changes the resting size of kind. Inside a batch the
// change is deferred to EndUpdates.
func (c *Controller) SetReferenceSize(kind AccessoryKind, size Size) error {
	return c.mutate("reference-size:"+string(kind), WithReferenceSize(kind, size))
}

// SetAccessoryHidden hides or shows kind through configuration.
func (c *Controller) SetAccessoryHidden(kind AccessoryKind, hidden bool) error {
	return c.mutate("hidden:"+string(kind), WithHidden(kind, hidden))
}

// SetViewportSize handles a container resize.
func (c *Controller) SetViewportSize(size Size) error {
	return c.mutate("viewport", WithViewportSize(size))
}

// Reconfigure applies opts to the configuration. The result is validated
// before anything changes.
func (c *Controller) Reconfigure(opts ...Option) error {
	c.reconfigureSeq++
	key := fmt.Sprintf("reconfigure:%d", c.reconfigureSeq)
	return c.mutate(key, func(cfg *Config) error {
		for _, opt := range opts {
			if err := opt(cfg); err != nil {
				return err
			}
		}
		return nil
	})
}

// mutate validates opt against the effective configuration and either
// records it in the open batch or applies it now.
func (c *Controller) mutate(key string, opt Option) error {
	if c.batch.Batching() {
		if _, err := c.batch.Preview(c.engine.Config(), opt); err != nil {
			return err
		}
		return c.batch.Record(key, opt)
	}

	next, err := c.engine.Config().With(opt)
	if err != nil {
		return err
	}
	c.setConfig(next)
	c.layout(false)
	return nil
}

func (c *Controller) setConfig(cfg Config) {
	c.engine.SetConfig(cfg)
	c.refresh.Configure(cfg.AllowsPullToRefresh, cfg.RefreshTriggerDistance)
	c.pager.SetHidesForSingle(cfg.HidesSegmentedControlForSingleContentController)
}

// --- Scrolling ---

// HandleScroll feeds a scroll of the displayed pane. Negative offsets are
// over-scroll and also drive pull-to-refresh.
func (c *Controller) HandleScroll(offset float64, dragging bool) {
	c.pager.SetLiveOffset(offset)
	c.refresh.Update(offset, dragging)
	c.layout(false)
}

// HandleDragEnd reports that the user lifted their finger. An armed
// pull-to-refresh starts refreshing and notifies the delegate.
func (c *Controller) HandleDragEnd() {
	c.refresh.Release()
}

// ContentOffset returns the displayed pane's live offset.
func (c *Controller) ContentOffset() float64 {
	return c.pager.LiveOffset()
}

// layout primes the engine at the live offset and applies what changed.
func (c *Controller) layout(animated bool) {
	changed := c.engine.Prime(c.pager.LiveOffset())
	if len(changed) == 0 {
		return
	}
	apply := func() {
		for _, attrs := range changed {
			if view, ok := c.registry.View(attrs.Kind()); ok {
				view.ApplyLayoutAttributes(attrs)
			}
		}
	}
	if animated {
		c.animator.Animate(c.engine.Config().AnimationDuration, apply, nil)
		return
	}
	apply()
}

// --- Content controllers ---

// ShowContentController displays the pane at index. The outgoing pane's
// offset is remembered, the incoming pane's is restored, and the accessories
// jump to match it without animation. Re-showing the displayed index is a
// no-op.
func (c *Controller) ShowContentController(index int) error {
	changed, err := c.pager.Show(index)
	if err != nil || !changed {
		return err
	}
	if c.presenter != nil {
		slot, _ := c.pager.Active()
		c.presenter.PresentContent(index, slot.Controller)
	}
	c.refresh.Update(c.pager.LiveOffset(), false)
	c.layout(false)
	c.delegate.DidShowContentController(c, index)
	return nil
}

// DisplayedIndex returns the displayed pane index, or -1 with no content.
func (c *Controller) DisplayedIndex() int {
	return c.pager.ActiveIndex()
}

// DisplayedContentController returns the displayed pane's controller.
func (c *Controller) DisplayedContentController() (ContentController, bool) {
	slot, ok := c.pager.Active()
	if !ok {
		return nil, false
	}
	return slot.Controller, true
}

// ContentSlot returns the slot at index with its remembered offset.
func (c *Controller) ContentSlot(index int) (ContentSlot, bool) {
	return c.pager.Slot(index)
}

// NumberOfContentControllers returns the number of loaded panes.
func (c *Controller) NumberOfContentControllers() int {
	return c.pager.Len()
}

// SegmentedControl returns the control bound to the displayed index.
func (c *Controller) SegmentedControl() *SegmentedControl {
	return c.pager.SegmentedControl()
}

// ReloadData rebuilds the panes from the data source and reapplies every
// accessory. Controllers that survive the reload keep their remembered
// offsets; new ones start at their reported offset, or 0. It may not be
// called inside a batch.
func (c *Controller) ReloadData() error {
	if c.batch.Batching() {
		return ErrReloadDuringBatch
	}
	if c.dataSource == nil {
		return ErrNoDataSource
	}

	cfg := c.engine.Config()
	n := max(c.dataSource.NumberOfContentControllers(), 0)
	slots := make([]ContentSlot, n)
	for i := 0; i < n; i++ {
		ctrl := c.dataSource.ContentControllerAt(i)
		slot := ContentSlot{
			Index:      i,
			Title:      c.dataSource.TitleForContentController(i),
			Controller: ctrl,
		}
		if prev, ok := c.previousOffset(ctrl); ok {
			slot.Offset = prev
		} else if r, ok := ctrl.(OffsetReporter); ok {
			slot.Offset = r.ContentOffset()
		}
		slots[i] = slot
	}

	selected := 0
	if cfg.RemembersSelectedIndex && c.pager.ActiveIndex() >= 0 && c.pager.ActiveIndex() < n {
		selected = c.pager.ActiveIndex()
	}
	c.pager.Reset(slots, selected, cfg.HidesSegmentedControlForSingleContentController)
	debug.Log("Controller.ReloadData: %d content controllers, displaying %d", n, c.pager.ActiveIndex())

	if c.presenter != nil {
		if slot, ok := c.pager.Active(); ok {
			c.presenter.PresentContent(slot.Index, slot.Controller)
		}
	}
	c.refresh.Update(c.pager.LiveOffset(), false)
	c.registry.InvalidateAll()
	c.layout(false)
	return nil
}

// previousOffset returns the remembered offset of ctrl if it was loaded
// before the reload. The displayed pane reports its live offset.
func (c *Controller) previousOffset(ctrl ContentController) (float64, bool) {
	if ctrl == nil || !reflect.TypeOf(ctrl).Comparable() {
		return 0, false
	}
	for i, n := 0, c.pager.Len(); i < n; i++ {
		slot, _ := c.pager.Slot(i)
		if slot.Controller == nil || reflect.TypeOf(slot.Controller) != reflect.TypeOf(ctrl) {
			continue
		}
		if slot.Controller == ctrl {
			return slot.Offset, true
		}
	}
	return 0, false
}

// --- Batch updates ---

// BeginUpdates opens a batch. Reference-size, visibility and configuration
// changes made before EndUpdates are applied together.
func (c *Controller) BeginUpdates() error {
	return c.batch.Begin()
}

// EndUpdates applies every change recorded since BeginUpdates and animates
// all affected views in a single Animator call. With nothing recorded and
// nothing changed, no animation runs.
func (c *Controller) EndUpdates() error {
	if !c.batch.Batching() {
		return ErrNotBatching
	}
	next, err := c.batch.Preview(c.engine.Config())
	if err != nil {
		return err
	}
	opts, err := c.batch.End()
	if err != nil {
		return err
	}
	if len(opts) > 0 {
		c.setConfig(next)
	}
	c.layout(true)
	return nil
}

// IsBatching reports whether a batch is open.
func (c *Controller) IsBatching() bool {
	return c.batch.Batching()
}

// --- Pull to refresh ---

// EndRefreshing returns pull-to-refresh to idle. It is a no-op unless a
// refresh is in progress.
func (c *Controller) EndRefreshing() {
	c.refresh.EndRefreshing()
}

// IsRefreshing reports whether a refresh is in progress.
func (c *Controller) IsRefreshing() bool {
	return c.refresh.IsRefreshing()
}

// RefreshState returns the pull-to-refresh state.
func (c *Controller) RefreshState() RefreshState {
	return c.refresh.State()
}

// RefreshProgress returns the current pull as a fraction of the trigger distance.
func (c *Controller) RefreshProgress() float64 {
	return c.refresh.Progress()
}

// --- Overlay ---

// Overlay returns the navigation-bar overlay for the current header state.
func (c *Controller) Overlay() OverlayState {
	var title string
	if slot, ok := c.pager.Active(); ok {
		title = slot.Title
	}
	header, ok := c.registry.Attributes(KindHeader)
	if !ok {
		return OverlayState{Title: title}
	}
	return ComputeOverlay(header, c.engine.Config(), title)
}

// --- Selection ---

// HandleAccessoryTouch feeds a touch on kind's view. Touch down highlights;
// touch up inside unhighlights and selects.
func (c *Controller) HandleAccessoryTouch(kind AccessoryKind, phase TouchPhase) error {
	e, ok := c.registry.entries[kind]
	if !ok {
		return fmt.Errorf("touch %q: %w", kind, ErrAccessoryNotFound)
	}
	highlightChanged, becameSelected := e.touch.transition(phase)
	if highlightChanged {
		if h, ok := e.view.(Highlightable); ok {
			h.SetHighlighted(e.touch.highlighted, true)
		}
		if e.touch.highlighted {
			c.delegate.DidHighlightAccessoryView(c, kind)
		} else {
			c.delegate.DidUnhighlightAccessoryView(c, kind)
		}
	}
	if becameSelected {
		if s, ok := e.view.(Selectable); ok {
			s.SetSelected(true, true)
		}
		c.delegate.DidSelectAccessoryView(c, kind)
	}
	return nil
}

// SelectAccessoryView selects kind's view.
func (c *Controller) SelectAccessoryView(kind AccessoryKind, animated bool) error {
	return c.setSelected(kind, true, animated)
}

// DeselectAccessoryView deselects kind's view.
func (c *Controller) DeselectAccessoryView(kind AccessoryKind, animated bool) error {
	return c.setSelected(kind, false, animated)
}

func (c *Controller) setSelected(kind AccessoryKind, selected, animated bool) error {
	e, ok := c.registry.entries[kind]
	if !ok {
		return fmt.Errorf("select %q: %w", kind, ErrAccessoryNotFound)
	}
	if e.touch.selected == selected {
		return nil
	}
	e.touch.selected = selected
	if s, ok := e.view.(Selectable); ok {
		s.SetSelected(selected, animated)
	}
	if selected {
		c.delegate.DidSelectAccessoryView(c, kind)
	} else {
		c.delegate.DidDeselectAccessoryView(c, kind)
	}
	return nil
}

// AccessorySelection returns the touch state for kind.
func (c *Controller) AccessorySelection(kind AccessoryKind) (SelectionState, bool) {
	e, ok := c.registry.entries[kind]
	if !ok {
		return SelectionState{}, false
	}
	return SelectionState{Highlighted: e.touch.highlighted, Selected: e.touch.selected}, true
}
