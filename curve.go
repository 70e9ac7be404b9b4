package profile

import (
	"fmt"
	"strings"
)

// Curve maps linear progress t in [0, 1] to eased progress. The engine clamps
// both the input and the output, so a curve may overshoot without breaking
// the [0, 1] guarantee.
type Curve func(t float64) float64

// Linear is the identity curve and the default.
func Linear(t float64) float64 { return t }

// EaseInOut is a smoothstep curve.
func EaseInOut(t float64) float64 {
	return t * t * (3 - 2*t)
}

// EaseOut decelerates toward the end of the transition.
func EaseOut(t float64) float64 {
	inv := 1 - t
	return 1 - inv*inv
}

var curvesByName = map[string]Curve{
	"linear":      Linear,
	"ease_in_out": EaseInOut,
	"ease_out":    EaseOut,
}

// CurveByName resolves "linear", "ease_in_out" or "ease_out".
func CurveByName(name string) (Curve, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	if key == "" {
		return Linear, nil
	}
	curve, ok := curvesByName[key]
	if !ok {
		return nil, fmt.Errorf("%w: unknown curve %q", ErrInvalidConfig, name)
	}
	return curve, nil
}

func (c Curve) at(t float64) float64 {
	return clamp01(c(clamp01(t)))
}
