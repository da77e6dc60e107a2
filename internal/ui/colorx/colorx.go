// Package colorx turns palette tokens into colors a terminal can draw.
// Terminals have no alpha channel and no radial gradients, so translucent
// tokens are composited over their backdrop and gradients become ramps.
package colorx

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Parse reads #RRGGBB or #RRGGBBAA. Alpha is in [0, 1]; it is 1 when the
// token has no alpha byte.
func Parse(hex string) (colorful.Color, float64, error) {
	h := strings.TrimSpace(hex)
	switch len(h) {
	case 7:
		c, err := colorful.Hex(h)
		return c, 1, err
	case 9:
		c, err := colorful.Hex(h[:7])
		if err != nil {
			return colorful.Color{}, 0, err
		}
		a, err := strconv.ParseUint(h[7:], 16, 8)
		if err != nil {
			return colorful.Color{}, 0, fmt.Errorf("parse alpha of %q: %w", hex, err)
		}
		return c, float64(a) / 255, nil
	}
	return colorful.Color{}, 0, fmt.Errorf("color %q: want #RRGGBB or #RRGGBBAA", hex)
}

// Flatten composites over onto the opaque backdrop under and returns an
// opaque #RRGGBB. Unparseable input yields under unchanged.
func Flatten(over, under string) string {
	base, _, err := Parse(under)
	if err != nil {
		return under
	}
	top, alpha, err := Parse(over)
	if err != nil {
		return base.Hex()
	}
	return base.BlendRgb(top, alpha).Clamped().Hex()
}

// Blend mixes a and b in Lab space; t=0 is a and t=1 is b.
func Blend(a, b string, t float64) string {
	ca, _, errA := Parse(a)
	cb, _, errB := Parse(b)
	switch {
	case errA != nil && errB != nil:
		return a
	case errA != nil:
		return cb.Hex()
	case errB != nil:
		return ca.Hex()
	}
	return ca.BlendLab(cb, clamp01(t)).Clamped().Hex()
}

// Ramp spreads n colors evenly across stops.
func Ramp(stops []string, n int) []string {
	if n <= 0 || len(stops) == 0 {
		return nil
	}
	out := make([]string, n)
	if len(stops) == 1 || n == 1 {
		for i := range out {
			out[i] = stops[0]
		}
		return out
	}

	segments := float64(len(stops) - 1)
	for i := range out {
		pos := float64(i) / float64(n-1) * segments
		seg := int(pos)
		if seg >= len(stops)-1 {
			seg = len(stops) - 2
		}
		out[i] = Blend(stops[seg], stops[seg+1], pos-float64(seg))
	}
	return out
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
