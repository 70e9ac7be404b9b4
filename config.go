package profile

import (
	"fmt"
	"maps"
	"math"
	"strings"
	"time"
)

// Named defaults applied by DefaultConfig.
const (
	DefaultHeightMultiplier       = 0.18
	DefaultPinnedHeaderHeight     = 44
	DefaultAvatarMinimumScale     = 0.6
	DefaultRefreshTriggerDistance = 80
	DefaultTitleFadeStart         = 0.5
	DefaultAnimationDuration      = 250 * time.Millisecond
)

// DefaultViewportSize is the container size assumed until SetViewportSize is called.
var DefaultViewportSize = Size{Width: 375, Height: 667}

// DefaultAvatarInsets positions the avatar slightly in from the aligned edge.
var DefaultAvatarInsets = Edges{Left: 15, Right: 15}

// AvatarAlignment specifies which edge the avatar is anchored to.
type AvatarAlignment int

const (
	// AlignLeft anchors the avatar to the left inset (default).
	AlignLeft AvatarAlignment = iota
	// AlignCenter centers the avatar horizontally.
	AlignCenter
	// AlignRight anchors the avatar to the right inset.
	AlignRight
)

var alignmentNames = map[AvatarAlignment]string{
	AlignLeft:   "left",
	AlignCenter: "center",
	AlignRight:  "right",
}

func (a AvatarAlignment) String() string {
	if s, ok := alignmentNames[a]; ok {
		return s
	}
	return fmt.Sprintf("AvatarAlignment(%d)", int(a))
}

// MarshalText implements encoding.TextMarshaler.
func (a AvatarAlignment) MarshalText() ([]byte, error) {
	s, ok := alignmentNames[a]
	if !ok {
		return nil, fmt.Errorf("%w: unknown avatar alignment %d", ErrInvalidConfig, int(a))
	}
	return []byte(s), nil
}

// UnmarshalText parses "left", "center" or "right".
func (a *AvatarAlignment) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for k, v := range alignmentNames {
		if v == name {
			*a = k
			return nil
		}
	}
	return fmt.Errorf("%w: unknown avatar alignment %q", ErrInvalidConfig, text)
}

// AvatarSize selects one of the preset avatar sizes, or AvatarSizeCustom to
// use Config.AvatarReferenceSize.
type AvatarSize int

const (
	AvatarSizeNormal AvatarSize = iota
	AvatarSizeSmall
	AvatarSizeLarge
	AvatarSizeCustom
)

var avatarSizeNames = map[AvatarSize]string{
	AvatarSizeNormal: "normal",
	AvatarSizeSmall:  "small",
	AvatarSizeLarge:  "large",
	AvatarSizeCustom: "custom",
}

var avatarPresetSides = map[AvatarSize]float64{
	AvatarSizeSmall:  56,
	AvatarSizeNormal: 72,
	AvatarSizeLarge:  92,
}

func (s AvatarSize) String() string {
	if name, ok := avatarSizeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("AvatarSize(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s AvatarSize) MarshalText() ([]byte, error) {
	name, ok := avatarSizeNames[s]
	if !ok {
		return nil, fmt.Errorf("%w: unknown avatar size %d", ErrInvalidConfig, int(s))
	}
	return []byte(name), nil
}

// UnmarshalText parses "small", "normal", "large" or "custom".
func (s *AvatarSize) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for k, v := range avatarSizeNames {
		if v == name {
			*s = k
			return nil
		}
	}
	return fmt.Errorf("%w: unknown avatar size %q", ErrInvalidConfig, text)
}

// Config is the per-profile TransitionConfiguration. It is built once with
// NewConfig and treated as immutable during a scroll gesture; the Controller
// swaps in a new copy when it is reconfigured.
type Config struct {
	// ViewportSize is the size of the container the profile is laid out in.
	ViewportSize Size

	// HeaderReferenceSize is the resting header size. A zero width fills the
	// viewport; a zero height resolves to ViewportSize.Height * HeightMultiplier.
	HeaderReferenceSize Size

	// HeightMultiplier scales the viewport height into a header height when
	// no explicit header height is configured. Must be in (0, 1].
	HeightMultiplier float64

	// PinnedHeaderHeight is the header height once fully collapsed.
	PinnedHeaderHeight float64

	// MimicsNavigationBar collapses the header to PinnedHeaderHeight and
	// cross-fades the overlay bar. When false the header scrolls away.
	MimicsNavigationBar bool

	// HeaderStretches grows the header into over-scroll instead of letting
	// it slide down with the content.
	HeaderStretches bool

	AvatarSize          AvatarSize
	AvatarReferenceSize Size // used when AvatarSize is AvatarSizeCustom
	AvatarAlignment     AvatarAlignment
	AvatarInsets        Edges

	// AvatarMinimumScale is the avatar's scale once fully transitioned.
	AvatarMinimumScale float64

	// ReferenceSizes holds resting sizes for custom accessory kinds.
	ReferenceSizes map[AccessoryKind]Size

	// Hidden lists accessory kinds hidden by configuration.
	Hidden map[AccessoryKind]bool

	HidesSegmentedControlForSingleContentController bool
	RemembersSelectedIndex                          bool

	AllowsPullToRefresh    bool
	RefreshTriggerDistance float64

	// TitleFadeStart is the header percent at which the overlay title
	// begins to fade in.
	TitleFadeStart float64

	AnimationDuration time.Duration

	// Curve shapes frame interpolation. Percent values stay linear.
	Curve Curve
}

// Option configures a Config.
type Option func(*Config) error

// DefaultConfig returns a Config with every named default applied.
func DefaultConfig() Config {
	return Config{
		ViewportSize:        DefaultViewportSize,
		HeightMultiplier:    DefaultHeightMultiplier,
		PinnedHeaderHeight:  DefaultPinnedHeaderHeight,
		MimicsNavigationBar: true,
		HeaderStretches:     true,
		AvatarSize:          AvatarSizeNormal,
		AvatarAlignment:     AlignLeft,
		AvatarInsets:        DefaultAvatarInsets,
		AvatarMinimumScale:  DefaultAvatarMinimumScale,
		ReferenceSizes:      map[AccessoryKind]Size{},
		Hidden:              map[AccessoryKind]bool{},
		HidesSegmentedControlForSingleContentController: true,
		RemembersSelectedIndex:                          true,
		AllowsPullToRefresh:                             true,
		RefreshTriggerDistance:                          DefaultRefreshTriggerDistance,
		TitleFadeStart:                                  DefaultTitleFadeStart,
		AnimationDuration:                               DefaultAnimationDuration,
		Curve:                                           Linear,
	}
}

// NewConfig builds a Config from the defaults and the given options.
func NewConfig(opts ...Option) (Config, error) {
	cfg := DefaultConfig()
	if err := cfg.apply(opts...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// With returns a copy of c with opts applied. c is never modified.
func (c Config) With(opts ...Option) (Config, error) {
	next := c.Clone()
	if err := next.apply(opts...); err != nil {
		return Config{}, err
	}
	return next, nil
}

func (c *Config) apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return c.Validate()
}

// Clone returns a deep copy.
func (c Config) Clone() Config {
	c.ReferenceSizes = maps.Clone(c.ReferenceSizes)
	if c.ReferenceSizes == nil {
		c.ReferenceSizes = map[AccessoryKind]Size{}
	}
	c.Hidden = maps.Clone(c.Hidden)
	if c.Hidden == nil {
		c.Hidden = map[AccessoryKind]bool{}
	}
	return c
}

// Validate checks every field for a usable value.
func (c Config) Validate() error {
	if math.IsNaN(c.HeightMultiplier) || c.HeightMultiplier <= 0 || c.HeightMultiplier > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidHeightMultiplier, c.HeightMultiplier)
	}
	if c.ViewportSize.Width < 0 || c.ViewportSize.Height < 0 {
		return fmt.Errorf("%w: negative viewport size %v", ErrInvalidConfig, c.ViewportSize)
	}
	if c.HeaderReferenceSize.Width < 0 || c.HeaderReferenceSize.Height < 0 {
		return fmt.Errorf("%w: negative header reference size %v", ErrInvalidConfig, c.HeaderReferenceSize)
	}
	if c.PinnedHeaderHeight < 0 {
		return fmt.Errorf("%w: negative pinned header height %v", ErrInvalidConfig, c.PinnedHeaderHeight)
	}
	if _, ok := avatarSizeNames[c.AvatarSize]; !ok {
		return fmt.Errorf("%w: unknown avatar size %d", ErrInvalidConfig, int(c.AvatarSize))
	}
	if _, ok := alignmentNames[c.AvatarAlignment]; !ok {
		return fmt.Errorf("%w: unknown avatar alignment %d", ErrInvalidConfig, int(c.AvatarAlignment))
	}
	if c.AvatarReferenceSize.Width < 0 || c.AvatarReferenceSize.Height < 0 {
		return fmt.Errorf("%w: negative avatar reference size %v", ErrInvalidConfig, c.AvatarReferenceSize)
	}
	if c.AvatarMinimumScale <= 0 || c.AvatarMinimumScale > 1 {
		return fmt.Errorf("%w: avatar minimum scale must be in (0, 1], got %v", ErrInvalidConfig, c.AvatarMinimumScale)
	}
	for kind, size := range c.ReferenceSizes {
		if size.Width < 0 || size.Height < 0 {
			return fmt.Errorf("%w: negative reference size for %q", ErrInvalidConfig, kind)
		}
	}
	if c.RefreshTriggerDistance <= 0 {
		return fmt.Errorf("%w: refresh trigger distance must be positive, got %v", ErrInvalidConfig, c.RefreshTriggerDistance)
	}
	if c.TitleFadeStart < 0 || c.TitleFadeStart >= 1 {
		return fmt.Errorf("%w: title fade start must be in [0, 1), got %v", ErrInvalidConfig, c.TitleFadeStart)
	}
	if c.AnimationDuration < 0 {
		return fmt.Errorf("%w: negative animation duration", ErrInvalidConfig)
	}
	if c.Curve == nil {
		return fmt.Errorf("%w: nil interpolation curve", ErrInvalidConfig)
	}
	return nil
}

// ReferenceSize resolves the resting size for kind. Header and avatar sizes
// come from their dedicated fields; every other kind reads ReferenceSizes.
func (c Config) ReferenceSize(kind AccessoryKind) Size {
	switch kind {
	case KindHeader:
		return c.headerReferenceSize()
	case KindAvatar:
		return c.avatarReferenceSize()
	}
	return c.ReferenceSizes[kind]
}

// IsHidden reports whether kind is hidden by configuration.
func (c Config) IsHidden(kind AccessoryKind) bool {
	return c.Hidden[kind]
}

func (c Config) headerReferenceSize() Size {
	size := c.HeaderReferenceSize
	if size.Width == 0 {
		size.Width = c.ViewportSize.Width
	}
	if size.Height == 0 {
		size.Height = c.ViewportSize.Height * c.HeightMultiplier
	}
	return size
}

func (c Config) avatarReferenceSize() Size {
	if c.AvatarSize == AvatarSizeCustom {
		return c.AvatarReferenceSize
	}
	side := avatarPresetSides[c.AvatarSize]
	return Size{Width: side, Height: side}
}

// collapseDistance is the scroll distance over which the header transitions.
func (c Config) collapseDistance() float64 {
	h := c.headerReferenceSize().Height
	if !c.MimicsNavigationBar {
		return h
	}
	return max(h-c.PinnedHeaderHeight, 0)
}

// --- Options ---

// WithViewportSize sets the container size.
func WithViewportSize(size Size) Option {
	return func(c *Config) error {
		c.ViewportSize = size
		return nil
	}
}

// WithHeaderReferenceSize sets the resting header size.
func WithHeaderReferenceSize(size Size) Option {
	return func(c *Config) error {
		c.HeaderReferenceSize = size
		return nil
	}
}

// WithHeightMultiplier sets the header height as a fraction of the viewport.
// The multiplier must be in (0, 1].
func WithHeightMultiplier(m float64) Option {
	return func(c *Config) error {
		if math.IsNaN(m) || m <= 0 || m > 1 {
			return fmt.Errorf("%w: got %v", ErrInvalidHeightMultiplier, m)
		}
		c.HeightMultiplier = m
		return nil
	}
}

// WithPinnedHeaderHeight sets the collapsed header height.
func WithPinnedHeaderHeight(h float64) Option {
	return func(c *Config) error {
		c.PinnedHeaderHeight = h
		return nil
	}
}

// WithMimicsNavigationBar toggles the collapse-to-bar behavior.
func WithMimicsNavigationBar(on bool) Option {
	return func(c *Config) error {
		c.MimicsNavigationBar = on
		return nil
	}
}

// WithHeaderStretch toggles header stretching on over-scroll.
func WithHeaderStretch(on bool) Option {
	return func(c *Config) error {
		c.HeaderStretches = on
		return nil
	}
}

// WithAvatarSize selects a preset avatar size.
func WithAvatarSize(s AvatarSize) Option {
	return func(c *Config) error {
		c.AvatarSize = s
		return nil
	}
}

// WithAvatarReferenceSize sets a custom avatar size and switches AvatarSize
// to AvatarSizeCustom.
func WithAvatarReferenceSize(size Size) Option {
	return func(c *Config) error {
		c.AvatarSize = AvatarSizeCustom
		c.AvatarReferenceSize = size
		return nil
	}
}

// WithAvatarAlignment sets the avatar's anchored edge.
func WithAvatarAlignment(a AvatarAlignment) Option {
	return func(c *Config) error {
		c.AvatarAlignment = a
		return nil
	}
}

// WithAvatarInsets sets the distance from the aligned edge.
func WithAvatarInsets(e Edges) Option {
	return func(c *Config) error {
		c.AvatarInsets = e
		return nil
	}
}

// WithAvatarMinimumScale sets the avatar's fully transitioned scale.
func WithAvatarMinimumScale(s float64) Option {
	return func(c *Config) error {
		c.AvatarMinimumScale = s
		return nil
	}
}

// WithReferenceSize sets the resting size for kind. Header and avatar kinds
// are routed to their dedicated fields.
func WithReferenceSize(kind AccessoryKind, size Size) Option {
	return func(c *Config) error {
		switch kind {
		case KindHeader:
			c.HeaderReferenceSize = size
		case KindAvatar:
			c.AvatarSize = AvatarSizeCustom
			c.AvatarReferenceSize = size
		default:
			if c.ReferenceSizes == nil {
				c.ReferenceSizes = map[AccessoryKind]Size{}
			}
			c.ReferenceSizes[kind] = size
		}
		return nil
	}
}

// WithHidden hides or shows kind.
func WithHidden(kind AccessoryKind, hidden bool) Option {
	return func(c *Config) error {
		if c.Hidden == nil {
			c.Hidden = map[AccessoryKind]bool{}
		}
		if hidden {
			c.Hidden[kind] = true
		} else {
			delete(c.Hidden, kind)
		}
		return nil
	}
}

// WithHidesSegmentedControlForSingleContentController hides the segmented
// control when there is only one content controller.
func WithHidesSegmentedControlForSingleContentController(on bool) Option {
	return func(c *Config) error {
		c.HidesSegmentedControlForSingleContentController = on
		return nil
	}
}

// WithRemembersSelectedIndex keeps the displayed index across reloads.
func WithRemembersSelectedIndex(on bool) Option {
	return func(c *Config) error {
		c.RemembersSelectedIndex = on
		return nil
	}
}

// WithPullToRefresh enables or disables pull-to-refresh.
func WithPullToRefresh(on bool) Option {
	return func(c *Config) error {
		c.AllowsPullToRefresh = on
		return nil
	}
}

// WithRefreshTriggerDistance sets the over-scroll distance that arms a refresh.
func WithRefreshTriggerDistance(d float64) Option {
	return func(c *Config) error {
		if d <= 0 {
			return fmt.Errorf("%w: refresh trigger distance must be positive, got %v", ErrInvalidConfig, d)
		}
		c.RefreshTriggerDistance = d
		return nil
	}
}

// WithTitleFadeStart sets the header percent where the overlay title starts
// fading in.
func WithTitleFadeStart(p float64) Option {
	return func(c *Config) error {
		c.TitleFadeStart = p
		return nil
	}
}

// WithAnimationDuration sets the duration passed to the Animator on EndUpdates.
func WithAnimationDuration(d time.Duration) Option {
	return func(c *Config) error {
		c.AnimationDuration = d
		return nil
	}
}

// WithCurve replaces the interpolation curve.
func WithCurve(curve Curve) Option {
	return func(c *Config) error {
		if curve == nil {
			return fmt.Errorf("%w: nil interpolation curve", ErrInvalidConfig)
		}
		c.Curve = curve
		return nil
	}
}
