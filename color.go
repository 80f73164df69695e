package plot3d

import (
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor accepts an SVG color name ("green", "steelblue") or a hex
// value in #rgb or #rrggbb form.
func ParseColor(s string) (color.RGBA, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return color.RGBA{}, invalidf("color is empty")
	}
	if strings.HasPrefix(name, "#") {
		return parseHexColor(name)
	}
	c, ok := colornames.Map[name]
	if !ok {
		return color.RGBA{}, invalidf("unknown color %q", s)
	}
	return c, nil
}

func parseHexColor(s string) (color.RGBA, error) {
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, invalidf("bad hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, invalidf("bad hex color %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
