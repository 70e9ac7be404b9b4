package profile

import (
	"math"
	"testing"
)

func mustConfig(t *testing.T, opts ...Option) Config {
	t.Helper()
	cfg, err := NewConfig(opts...)
	if err != nil {
		t.Fatalf("NewConfig() error = %v", err)
	}
	return cfg
}

func builtinRegistry(t *testing.T) *AccessoryRegistry {
	t.Helper()
	reg := NewAccessoryRegistry()
	factory := func(AccessoryKind) AccessoryView { return &AttributesView{} }
	if err := reg.Register(KindHeader, factory, HeaderTransition{}); err != nil {
		t.Fatalf("Register(header) error = %v", err)
	}
	if err := reg.Register(KindAvatar, factory, AvatarTransition{}); err != nil {
		t.Fatalf("Register(avatar) error = %v", err)
	}
	return reg
}

func TestRecompute_HeaderCollapse(t *testing.T) {
	cfg := mustConfig(t,
		WithHeaderReferenceSize(NewSize(320, 200)),
		WithPinnedHeaderHeight(44),
		WithMimicsNavigationBar(true),
	)
	reg := builtinRegistry(t)

	type tc struct {
		offset  float64
		percent float64
		height  float64
	}

	tests := map[string]tc{
		"resting":          {offset: 0, percent: 0, height: 200},
		"halfway":          {offset: 78, percent: 0.5, height: 122},
		"fully collapsed":  {offset: 156, percent: 1, height: 44},
		"past collapse":    {offset: 1000, percent: 1, height: 44},
		"over-scroll pull": {offset: -30, percent: 0, height: 230},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			header := Recompute(tt.offset, cfg, reg)[KindHeader]
			if got := header.PercentTransitioned(); got != tt.percent {
				t.Errorf("PercentTransitioned() = %v, want %v", got, tt.percent)
			}
			if header.Frame.Height != tt.height {
				t.Errorf("Frame.Height = %v, want %v", header.Frame.Height, tt.height)
			}
			if header.Frame.Y != 0 {
				t.Errorf("Frame.Y = %v, want 0", header.Frame.Y)
			}
			if header.Bounds != header.Frame.Bounds() {
				t.Errorf("Bounds = %v, want %v", header.Bounds, header.Frame.Bounds())
			}
			if header.Hidden() {
				t.Error("Hidden() = true, want false")
			}
		})
	}
}

func TestRecompute_HeaderScrollsAwayWithoutNavigationBar(t *testing.T) {
	cfg := mustConfig(t,
		WithHeaderReferenceSize(NewSize(320, 100)),
		WithMimicsNavigationBar(false),
		WithHeaderStretch(false),
	)
	reg := builtinRegistry(t)

	type tc struct {
		offset  float64
		y       float64
		percent float64
	}

	tests := map[string]tc{
		"resting":     {offset: 0, y: 0, percent: 0},
		"partly":      {offset: 40, y: -40, percent: 0.4},
		"gone":        {offset: 250, y: -100, percent: 1},
		"pulled down": {offset: -20, y: 20, percent: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			header := Recompute(tt.offset, cfg, reg)[KindHeader]
			if header.Frame.Y != tt.y {
				t.Errorf("Frame.Y = %v, want %v", header.Frame.Y, tt.y)
			}
			if header.Frame.Height != 100 {
				t.Errorf("Frame.Height = %v, want 100", header.Frame.Height)
			}
			if got := header.PercentTransitioned(); got != tt.percent {
				t.Errorf("PercentTransitioned() = %v, want %v", got, tt.percent)
			}
		})
	}
}

func TestRecompute_PercentAlwaysClamped(t *testing.T) {
	cfg := mustConfig(t, WithHeaderReferenceSize(NewSize(0, 200)))
	reg := builtinRegistry(t)
	offsets := []float64{-1e9, -500, -1, 0, 1, 155.9, 156, 1e6, math.MaxFloat64, math.Inf(1), math.Inf(-1)}

	for _, o := range offsets {
		for kind, attrs := range Recompute(o, cfg, reg) {
			p := attrs.PercentTransitioned()
			if p < 0 || p > 1 || math.IsNaN(p) {
				t.Errorf("offset %v kind %s: PercentTransitioned() = %v, want [0,1]", o, kind, p)
			}
		}
	}
}

func TestRecompute_MonotonicPercent(t *testing.T) {
	cfg := mustConfig(t, WithHeaderReferenceSize(NewSize(0, 200)), WithCurve(EaseInOut))
	reg := builtinRegistry(t)

	prev := map[AccessoryKind]float64{}
	prevHeight := math.Inf(1)
	for o := -50.0; o <= 250; o += 0.5 {
		out := Recompute(o, cfg, reg)
		for kind, attrs := range out {
			if p := attrs.PercentTransitioned(); p < prev[kind] {
				t.Fatalf("offset %v kind %s: percent %v decreased from %v", o, kind, p, prev[kind])
			}
			prev[kind] = attrs.PercentTransitioned()
		}
		if o >= 0 {
			h := out[KindHeader].Frame.Height
			if h > prevHeight {
				t.Fatalf("offset %v: header height %v grew from %v", o, h, prevHeight)
			}
			prevHeight = h
		}
	}
}

func TestRecompute_Idempotent(t *testing.T) {
	cfg := mustConfig(t, WithHeaderReferenceSize(NewSize(0, 180)), WithAvatarAlignment(AlignCenter))
	reg := builtinRegistry(t)

	first := Recompute(64, cfg, reg)
	second := Recompute(64, cfg, reg)
	if len(first) != len(second) {
		t.Fatalf("len = %d then %d", len(first), len(second))
	}
	for kind, attrs := range first {
		if !attrs.Equal(second[kind]) {
			t.Errorf("kind %s: %v != %v", kind, attrs, second[kind])
		}
	}
}

func TestRecompute_AvatarAlignment(t *testing.T) {
	type tc struct {
		alignment AvatarAlignment
		x         float64
	}

	tests := map[string]tc{
		"left":   {alignment: AlignLeft, x: 15},
		"center": {alignment: AlignCenter, x: (320 - 72) / 2},
		"right":  {alignment: AlignRight, x: 320 - 15 - 72},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := mustConfig(t,
				WithHeaderReferenceSize(NewSize(320, 200)),
				WithAvatarAlignment(tt.alignment),
			)
			avatar := Recompute(0, cfg, builtinRegistry(t))[KindAvatar]
			if avatar.Frame.X != tt.x {
				t.Errorf("Frame.X = %v, want %v", avatar.Frame.X, tt.x)
			}
			// Vertical center rests on the header's bottom edge.
			if mid := avatar.Frame.Y + avatar.Frame.Height/2; mid != 200 {
				t.Errorf("avatar center Y = %v, want 200", mid)
			}
			if avatar.ReferenceSize != NewSize(72, 72) {
				t.Errorf("ReferenceSize = %v, want 72x72", avatar.ReferenceSize)
			}
		})
	}
}

func TestRecompute_AvatarTracksHeaderPercent(t *testing.T) {
	cfg := mustConfig(t,
		WithHeaderReferenceSize(NewSize(320, 200)),
		WithAvatarMinimumScale(0.5),
	)
	reg := builtinRegistry(t)

	for _, o := range []float64{0, 20, 78, 120, 156, 300} {
		out := Recompute(o, cfg, reg)
		if out[KindAvatar].PercentTransitioned() != out[KindHeader].PercentTransitioned() {
			t.Errorf("offset %v: avatar percent %v != header percent %v",
				o, out[KindAvatar].PercentTransitioned(), out[KindHeader].PercentTransitioned())
		}
	}

	collapsed := Recompute(156, cfg, reg)[KindAvatar]
	if collapsed.Frame.Width != 36 || collapsed.Frame.Height != 36 {
		t.Errorf("collapsed avatar size = %vx%v, want 36x36", collapsed.Frame.Width, collapsed.Frame.Height)
	}
	// Bottom edge scrolls with the content.
	if got, want := collapsed.Frame.Bottom(), 200+36.0-156; got != want {
		t.Errorf("collapsed avatar bottom = %v, want %v", got, want)
	}
}

func TestRecompute_HiddenWhenDegenerateOrConfigured(t *testing.T) {
	type tc struct {
		opts   []Option
		kind   AccessoryKind
		hidden bool
	}

	tests := map[string]tc{
		"header visible": {
			opts: []Option{WithHeaderReferenceSize(NewSize(0, 120))},
			kind: KindHeader,
		},
		"header hidden by config": {
			opts:   []Option{WithHidden(KindHeader, true)},
			kind:   KindHeader,
			hidden: true,
		},
		"header zero viewport": {
			opts:   []Option{WithViewportSize(Size{})},
			kind:   KindHeader,
			hidden: true,
		},
		"avatar zero custom size": {
			opts:   []Option{WithAvatarReferenceSize(Size{})},
			kind:   KindAvatar,
			hidden: true,
		},
		"avatar preset": {
			opts: []Option{WithAvatarSize(AvatarSizeLarge)},
			kind: KindAvatar,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := mustConfig(t, tt.opts...)
			attrs := Recompute(0, cfg, builtinRegistry(t))[tt.kind]
			if attrs.Hidden() != tt.hidden {
				t.Errorf("Hidden() = %v, want %v", attrs.Hidden(), tt.hidden)
			}
		})
	}
}

func TestComputeAttributes_EnforcesInvariantsOnCustomRules(t *testing.T) {
	rogue := AttributesFunc(func(attrs *LayoutAttributes, in LayoutInput) {
		*attrs = NewLayoutAttributes("impostor")
		attrs.percentTransitioned = 7
		attrs.ReferenceSize = NewSize(999, 999)
		attrs.Frame = NewRect(1, 2, 3, 4)
	})
	cfg := mustConfig(t, WithReferenceSize("badge", NewSize(10, 10)))

	attrs := ComputeAttributes("badge", rogue, 5, cfg)
	if attrs.Kind() != "badge" {
		t.Errorf("Kind() = %q, want badge", attrs.Kind())
	}
	if attrs.PercentTransitioned() != 1 {
		t.Errorf("PercentTransitioned() = %v, want 1", attrs.PercentTransitioned())
	}
	if attrs.ReferenceSize != NewSize(10, 10) {
		t.Errorf("ReferenceSize = %v, want 10x10", attrs.ReferenceSize)
	}
	if attrs.Bounds != NewRect(0, 0, 3, 4) {
		t.Errorf("Bounds = %v, want 3x4 at origin", attrs.Bounds)
	}

	pulled := ComputeAttributes("badge", rogue, -5, cfg)
	if pulled.PercentTransitioned() != 0 {
		t.Errorf("over-scroll PercentTransitioned() = %v, want 0", pulled.PercentTransitioned())
	}
}

func TestCustomTransitions(t *testing.T) {
	cfg := mustConfig(t, WithReferenceSize("badge", NewSize(20, 10)))

	type tc struct {
		rule    AttributesType
		offset  float64
		frame   Rect
		percent float64
	}

	tests := map[string]tc{
		"pin stays put": {
			rule:    PinTransition{Origin: Point{X: 5, Y: 50}},
			offset:  5,
			frame:   NewRect(5, 50, 20, 10),
			percent: 0.5,
		},
		"parallax half speed": {
			rule:    ParallaxTransition{Origin: Point{X: 0, Y: 30}, Factor: 0.5},
			offset:  40,
			frame:   NewRect(0, 10, 20, 10),
			percent: 0.5,
		},
		"fade scrolls with content": {
			rule:    FadeTransition{Origin: Point{X: 2, Y: 100}},
			offset:  15,
			frame:   NewRect(2, 85, 20, 10),
			percent: 1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			attrs := ComputeAttributes("badge", tt.rule, tt.offset, cfg)
			if attrs.Frame != tt.frame {
				t.Errorf("Frame = %v, want %v", attrs.Frame, tt.frame)
			}
			if attrs.PercentTransitioned() != tt.percent {
				t.Errorf("PercentTransitioned() = %v, want %v", attrs.PercentTransitioned(), tt.percent)
			}
		})
	}
}

func TestTransitionEngine_PrimeSkipsUnchanged(t *testing.T) {
	reg := builtinRegistry(t)
	engine := NewTransitionEngine(reg, mustConfig(t, WithHeaderReferenceSize(NewSize(0, 200))))

	if got := len(engine.Prime(0)); got != 2 {
		t.Fatalf("first Prime() changed = %d, want 2", got)
	}
	if got := len(engine.Prime(0)); got != 0 {
		t.Errorf("repeat Prime() changed = %d, want 0", got)
	}

	if err := reg.Invalidate(KindAvatar); err != nil {
		t.Fatalf("Invalidate() error = %v", err)
	}
	changed := engine.Prime(0)
	if len(changed) != 1 || changed[0].Kind() != KindAvatar {
		t.Errorf("Prime() after invalidate = %v, want only avatar", changed)
	}

	engine.SetConfig(engine.Config())
	if got := len(engine.Prime(0)); got != 2 {
		t.Errorf("Prime() after SetConfig changed = %d, want 2", got)
	}
}
