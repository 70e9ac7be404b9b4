package profile

import (
	"github.com/grindlemire/go-profile/internal/debug"
)

// Recompute lays out every registered kind for offset under cfg. Each kind
// reads only the shared offset and configuration, so the result does not
// depend on evaluation order and repeated calls with the same inputs return
// the same map. The registry is not modified.
func Recompute(offset float64, cfg Config, reg *AccessoryRegistry) map[AccessoryKind]LayoutAttributes {
	out := make(map[AccessoryKind]LayoutAttributes, reg.Len())
	for kind, e := range reg.entries {
		out[kind] = ComputeAttributes(kind, e.attrsType, offset, cfg)
	}
	return out
}

// ComputeAttributes lays out a single kind. The rule supplies Frame and
// percent; the invariants are enforced here afterwards so a custom rule can
// not break them.
func ComputeAttributes(kind AccessoryKind, rule AttributesType, offset float64, cfg Config) LayoutAttributes {
	ref := cfg.ReferenceSize(kind)
	attrs := NewLayoutAttributes(kind)
	attrs.ReferenceSize = ref

	rule.Layout(&attrs, LayoutInput{Offset: offset, ReferenceSize: ref, Config: cfg})

	attrs.kind = kind
	attrs.ReferenceSize = ref
	if offset < 0 {
		attrs.percentTransitioned = 0
	} else {
		attrs.SetPercentTransitioned(attrs.percentTransitioned)
	}
	attrs.Bounds = attrs.Frame.Bounds()
	attrs.hidden = ref.IsDegenerate() || cfg.IsHidden(kind)
	return attrs
}

// TransitionEngine owns the live offset and configuration and commits
// recompute results into the registry.
type TransitionEngine struct {
	registry *AccessoryRegistry
	config   Config
	offset   float64
}

// NewTransitionEngine creates an engine over reg with cfg.
func NewTransitionEngine(reg *AccessoryRegistry, cfg Config) *TransitionEngine {
	return &TransitionEngine{registry: reg, config: cfg}
}

// Config returns the active configuration.
func (e *TransitionEngine) Config() Config {
	return e.config
}

// SetConfig swaps the configuration and invalidates every kind.
func (e *TransitionEngine) SetConfig(cfg Config) {
	e.config = cfg
	e.registry.InvalidateAll()
}

// Offset returns the offset of the last pass.
func (e *TransitionEngine) Offset() float64 {
	return e.offset
}

// Recompute lays out every kind at offset without committing anything.
func (e *TransitionEngine) Recompute(offset float64) map[AccessoryKind]LayoutAttributes {
	return Recompute(offset, e.config, e.registry)
}

// Prime runs a pass at offset, commits the result, and returns the
// attributes that must be applied to views, sorted by kind. Unchanged kinds
// are skipped unless they were invalidated.
func (e *TransitionEngine) Prime(offset float64) []LayoutAttributes {
	e.offset = offset
	computed := e.Recompute(offset)

	var changed []LayoutAttributes
	for _, kind := range e.registry.Kinds() {
		attrs := computed[kind]
		if e.registry.commit(attrs) {
			changed = append(changed, attrs)
		}
	}
	if len(changed) > 0 {
		debug.Log("TransitionEngine.Prime: offset=%.2f changed=%d", offset, len(changed))
	}
	return changed
}
