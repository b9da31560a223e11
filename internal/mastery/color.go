package mastery

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// Heat band: hue runs from orange at fraction 0 to green at fraction 1.
const (
	hueBase    = 1.0 / 12
	hueSpan    = 2.0 / 9
	saturation = 1.0
	brightness = 0.8
)

var (
	// ColorNoData marks a trackable skill without user data.
	ColorNoData = color.NRGBA{R: 127, G: 127, B: 0, A: 51}

	// ColorUntrackable marks a slot with no skill behind it. Fully transparent.
	ColorUntrackable = color.NRGBA{R: 127, G: 127, B: 0, A: 0}
)

// Hue returns the hue, as a fraction of the colour wheel, for a mastery fraction.
func Hue(fraction float64) float64 {
	return hueBase + fraction*hueSpan
}

// ColorFor maps a mastery fraction to its heat colour. A nil fraction means
// the user has no data; trackable is false when no skill exists for the slot.
func ColorFor(fraction *float64, trackable bool) color.NRGBA {
	if !trackable {
		return ColorUntrackable
	}
	if fraction == nil {
		return ColorNoData
	}
	c := colorful.Hsv(Hue(*fraction)*360, saturation, brightness)
	return color.NRGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: 255}
}

// channel scales a [0,1] component to 0..255, truncating.
func channel(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v * 255)
}

// CSS renders a colour as an inline background-color declaration.
func CSS(c color.NRGBA) string {
	alpha := strconv.FormatFloat(float64(c.A)/255, 'g', -1, 64)
	return fmt.Sprintf("background-color: rgba(%d, %d, %d, %s);", c.R, c.G, c.B, alpha)
}

// Hex renders the colour channels as #rrggbb, ignoring alpha.
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Flatten composites c over an opaque background and returns the result as
// #rrggbb, for surfaces without alpha such as terminal cells and sheet fills.
func Flatten(c, bg color.NRGBA) string {
	if c.A == 0 {
		return Hex(bg)
	}
	fg, _ := colorful.MakeColor(c)
	back, _ := colorful.MakeColor(color.NRGBA{R: bg.R, G: bg.G, B: bg.B, A: 255})
	return back.BlendRgb(fg, float64(c.A)/255).Clamped().Hex()
}
