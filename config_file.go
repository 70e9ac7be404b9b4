package profile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// sizeFile is the YAML form of a Size.
type sizeFile struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func (s *sizeFile) size() Size {
	return Size{Width: s.Width, Height: s.Height}
}

// edgesFile is the YAML form of Edges.
type edgesFile struct {
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
}

// accessoryFile is the YAML form of a custom accessory's settings.
type accessoryFile struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Hidden bool    `yaml:"hidden,omitempty"`
}

// configFile mirrors Config as it appears on disk. Pointer fields distinguish
// "absent" from zero so absent keys keep their defaults.
type configFile struct {
	Viewport *sizeFile `yaml:"viewport,omitempty"`

	Header struct {
		ReferenceSize       *sizeFile `yaml:"reference_size,omitempty"`
		HeightMultiplier    *float64  `yaml:"height_multiplier,omitempty"`
		PinnedHeight        *float64  `yaml:"pinned_height,omitempty"`
		MimicsNavigationBar *bool     `yaml:"mimics_navigation_bar,omitempty"`
		Stretch             *bool     `yaml:"stretch,omitempty"`
		Hidden              *bool     `yaml:"hidden,omitempty"`
	} `yaml:"header"`

	Avatar struct {
		Size          *AvatarSize      `yaml:"size,omitempty"`
		ReferenceSize *sizeFile        `yaml:"reference_size,omitempty"`
		Alignment     *AvatarAlignment `yaml:"alignment,omitempty"`
		Insets        *edgesFile       `yaml:"insets,omitempty"`
		MinimumScale  *float64         `yaml:"minimum_scale,omitempty"`
		Hidden        *bool            `yaml:"hidden,omitempty"`
	} `yaml:"avatar"`

	SegmentedControl struct {
		HideForSingle         *bool `yaml:"hide_for_single,omitempty"`
		RememberSelectedIndex *bool `yaml:"remember_selected_index,omitempty"`
	} `yaml:"segmented_control"`

	PullToRefresh struct {
		Enabled         *bool    `yaml:"enabled,omitempty"`
		TriggerDistance *float64 `yaml:"trigger_distance,omitempty"`
	} `yaml:"pull_to_refresh"`

	Overlay struct {
		TitleFadeStart *float64 `yaml:"title_fade_start,omitempty"`
	} `yaml:"overlay"`

	Animation struct {
		Duration *time.Duration `yaml:"duration,omitempty"`
		Curve    *string        `yaml:"curve,omitempty"`
	} `yaml:"animation"`

	Accessories map[AccessoryKind]accessoryFile `yaml:"accessories,omitempty"`
}

// DecodeConfig reads a YAML configuration and applies it over the defaults.
// Unknown keys are rejected.
func DecodeConfig(r io.Reader) (Config, error) {
	var f configFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: decode yaml: %w", ErrInvalidConfig, err)
	}
	opts, err := f.options()
	if err != nil {
		return Config{}, err
	}
	return NewConfig(opts...)
}

// ParseConfig decodes YAML bytes. See DecodeConfig.
func ParseConfig(data []byte) (Config, error) {
	return DecodeConfig(bytes.NewReader(data))
}

// EncodeConfig writes cfg as YAML that DecodeConfig reads back. Curves are
// functions, so the curve is written only when curveName is not empty.
func EncodeConfig(w io.Writer, cfg Config, curveName string) error {
	f := newConfigFile(cfg)
	if curveName != "" {
		if _, err := CurveByName(curveName); err != nil {
			return err
		}
		f.Animation.Curve = &curveName
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&f); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// LoadConfigFile reads and decodes the YAML file at path.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := DecodeConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}
	return cfg, nil
}

func (f *configFile) options() ([]Option, error) {
	var opts []Option
	add := func(o Option) { opts = append(opts, o) }

	if f.Viewport != nil {
		add(WithViewportSize(f.Viewport.size()))
	}

	h := f.Header
	if h.ReferenceSize != nil {
		add(WithHeaderReferenceSize(h.ReferenceSize.size()))
	}
	if h.HeightMultiplier != nil {
		add(WithHeightMultiplier(*h.HeightMultiplier))
	}
	if h.PinnedHeight != nil {
		add(WithPinnedHeaderHeight(*h.PinnedHeight))
	}
	if h.MimicsNavigationBar != nil {
		add(WithMimicsNavigationBar(*h.MimicsNavigationBar))
	}
	if h.Stretch != nil {
		add(WithHeaderStretch(*h.Stretch))
	}
	if h.Hidden != nil {
		add(WithHidden(KindHeader, *h.Hidden))
	}

	a := f.Avatar
	if a.ReferenceSize != nil {
		add(WithAvatarReferenceSize(a.ReferenceSize.size()))
	}
	if a.Size != nil {
		add(WithAvatarSize(*a.Size))
	}
	if a.Alignment != nil {
		add(WithAvatarAlignment(*a.Alignment))
	}
	if a.Insets != nil {
		add(WithAvatarInsets(EdgeTRBL(a.Insets.Top, a.Insets.Right, a.Insets.Bottom, a.Insets.Left)))
	}
	if a.MinimumScale != nil {
		add(WithAvatarMinimumScale(*a.MinimumScale))
	}
	if a.Hidden != nil {
		add(WithHidden(KindAvatar, *a.Hidden))
	}

	if v := f.SegmentedControl.HideForSingle; v != nil {
		add(WithHidesSegmentedControlForSingleContentController(*v))
	}
	if v := f.SegmentedControl.RememberSelectedIndex; v != nil {
		add(WithRemembersSelectedIndex(*v))
	}

	if v := f.PullToRefresh.Enabled; v != nil {
		add(WithPullToRefresh(*v))
	}
	if v := f.PullToRefresh.TriggerDistance; v != nil {
		add(WithRefreshTriggerDistance(*v))
	}

	if v := f.Overlay.TitleFadeStart; v != nil {
		add(WithTitleFadeStart(*v))
	}

	if v := f.Animation.Duration; v != nil {
		add(WithAnimationDuration(*v))
	}
	if v := f.Animation.Curve; v != nil {
		curve, err := CurveByName(*v)
		if err != nil {
			return nil, err
		}
		add(WithCurve(curve))
	}

	for kind, acc := range f.Accessories {
		if kind == "" {
			return nil, fmt.Errorf("%w: empty accessory kind", ErrInvalidConfig)
		}
		add(WithReferenceSize(kind, NewSize(acc.Width, acc.Height)))
		if acc.Hidden {
			add(WithHidden(kind, true))
		}
	}
	return opts, nil
}

func newConfigFile(cfg Config) configFile {
	var f configFile
	f.Viewport = &sizeFile{Width: cfg.ViewportSize.Width, Height: cfg.ViewportSize.Height}

	f.Header.ReferenceSize = &sizeFile{Width: cfg.HeaderReferenceSize.Width, Height: cfg.HeaderReferenceSize.Height}
	f.Header.HeightMultiplier = &cfg.HeightMultiplier
	f.Header.PinnedHeight = &cfg.PinnedHeaderHeight
	f.Header.MimicsNavigationBar = &cfg.MimicsNavigationBar
	f.Header.Stretch = &cfg.HeaderStretches
	if cfg.IsHidden(KindHeader) {
		f.Header.Hidden = ptr(true)
	}

	f.Avatar.Size = &cfg.AvatarSize
	if cfg.AvatarSize == AvatarSizeCustom {
		f.Avatar.ReferenceSize = &sizeFile{Width: cfg.AvatarReferenceSize.Width, Height: cfg.AvatarReferenceSize.Height}
	}
	f.Avatar.Alignment = &cfg.AvatarAlignment
	in := cfg.AvatarInsets
	f.Avatar.Insets = &edgesFile{Top: in.Top, Right: in.Right, Bottom: in.Bottom, Left: in.Left}
	f.Avatar.MinimumScale = &cfg.AvatarMinimumScale
	if cfg.IsHidden(KindAvatar) {
		f.Avatar.Hidden = ptr(true)
	}

	f.SegmentedControl.HideForSingle = &cfg.HidesSegmentedControlForSingleContentController
	f.SegmentedControl.RememberSelectedIndex = &cfg.RemembersSelectedIndex
	f.PullToRefresh.Enabled = &cfg.AllowsPullToRefresh
	f.PullToRefresh.TriggerDistance = &cfg.RefreshTriggerDistance
	f.Overlay.TitleFadeStart = &cfg.TitleFadeStart
	f.Animation.Duration = &cfg.AnimationDuration

	for kind, size := range cfg.ReferenceSizes {
		if f.Accessories == nil {
			f.Accessories = map[AccessoryKind]accessoryFile{}
		}
		f.Accessories[kind] = accessoryFile{Width: size.Width, Height: size.Height, Hidden: cfg.IsHidden(kind)}
	}
	for kind, hidden := range cfg.Hidden {
		if !hidden || kind == KindHeader || kind == KindAvatar {
			continue
		}
		if _, ok := f.Accessories[kind]; ok {
			continue
		}
		if f.Accessories == nil {
			f.Accessories = map[AccessoryKind]accessoryFile{}
		}
		f.Accessories[kind] = accessoryFile{Hidden: true}
	}
	return f
}

func ptr[T any](v T) *T {
	return &v
}
