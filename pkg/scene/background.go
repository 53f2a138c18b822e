package scene

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/df07/go-distributed-raytracer/pkg/core"
)

// Cornflower is the default background colour
var Cornflower = FromRGBA(colornames.Cornflowerblue)

// FromRGBA converts an 8-bit color into radiance in [0,1]
func FromRGBA(c color.RGBA) core.FColor {
	return core.NewFColor(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
}

// ParseColor resolves an SVG colour name (e.g. "cornflowerblue") or a
// "#rrggbb" hex triplet into radiance.
func ParseColor(value string) (core.FColor, error) {
	value = strings.ToLower(strings.TrimSpace(value))

	if c, ok := colornames.Map[value]; ok {
		return FromRGBA(c), nil
	}

	if strings.HasPrefix(value, "#") && len(value) == 7 {
		rgb, err := strconv.ParseUint(value[1:], 16, 32)
		if err != nil {
			return core.FColor{}, fmt.Errorf("scene: invalid hex colour %q: %w", value, err)
		}
		return FromRGBA(color.RGBA{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb), A: 0xff}), nil
	}

	return core.FColor{}, fmt.Errorf("scene: unknown colour %q", value)
}
