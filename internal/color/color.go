package color

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Channel identifies one of the three RGB components
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

// Channels lists the channels in display order
var Channels = []Channel{Red, Green, Blue}

// String returns the channel's display name
func (ch Channel) String() string {
	switch ch {
	case Red:
		return "Red"
	case Green:
		return "Green"
	case Blue:
		return "Blue"
	default:
		return fmt.Sprintf("Channel(%d)", int(ch))
	}
}

// Valid reports whether ch is one of Red, Green or Blue
func (ch Channel) Valid() bool {
	return ch >= Red && ch <= Blue
}

// Color is an RGB color with every channel in [0, 1].
// The zero value is black. Values built through NewColor or With are
// always clamped, so a Color never carries an out-of-range channel.
type Color struct {
	red   float64
	green float64
	blue  float64
}

// NewColor builds a Color, clamping each channel into [0, 1]
func NewColor(red, green, blue float64) Color {
	return Color{
		red:   Clamp(red),
		green: Clamp(green),
		blue:  Clamp(blue),
	}
}

// Clamp limits v to [0, 1]. NaN maps to 0.
func Clamp(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func (c Color) Red() float64   { return c.red }
func (c Color) Green() float64 { return c.green }
func (c Color) Blue() float64  { return c.blue }

// Get returns the value of one channel
func (c Color) Get(ch Channel) float64 {
	switch ch {
	case Red:
		return c.red
	case Green:
		return c.green
	case Blue:
		return c.blue
	default:
		return 0
	}
}

// With returns a copy of c with one channel replaced by the clamped value.
// Unknown channels leave c unchanged.
func (c Color) With(ch Channel, v float64) Color {
	v = Clamp(v)
	switch ch {
	case Red:
		c.red = v
	case Green:
		c.green = v
	case Blue:
		c.blue = v
	}
	return c
}

// Bytes returns the channels scaled to 0-255 with rounding
func (c Color) Bytes() (r, g, b uint8) {
	return toByte(c.red), toByte(c.green), toByte(c.blue)
}

func toByte(v float64) uint8 {
	return uint8(Clamp(v)*255.0 + 0.5)
}

// Colorful converts c for use with go-colorful
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: c.red, G: c.green, B: c.blue}
}

// IsLight reports whether dark text reads better than light text on c
func (c Color) IsLight() bool {
	l, _, _ := c.Colorful().Lab()
	return l > 0.6
}

// HSL returns hue in degrees and saturation/lightness in [0, 1]
func (c Color) HSL() (h, s, l float64) {
	return c.Colorful().Hsl()
}

// String formats the color as #RRGGBB
func (c Color) String() string {
	return Encode(c)
}
