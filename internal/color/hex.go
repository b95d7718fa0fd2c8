package color

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidFormat is returned for hex strings that cannot be decoded
var ErrInvalidFormat = errors.New("invalid hex color format")

// Decode parses a hex color such as "#FF5733" or "ff5733".
//
// Surrounding whitespace and a single leading '#' are removed, and the rest
// is read as a base-16 number of at most 24 bits. Shorter inputs are
// zero-extended on the high bits, so "FF" is pure blue. Anything else
// (empty input, non-hex characters, values above 0xFFFFFF) yields an error
// wrapping ErrInvalidFormat.
func Decode(hex string) (Color, error) {
	s := strings.TrimSpace(hex)
	s = strings.TrimPrefix(s, "#")
	if s == "" {
		return Color{}, fmt.Errorf("%w: %q is empty", ErrInvalidFormat, hex)
	}

	rgb, err := strconv.ParseUint(s, 16, 24)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return Color{}, fmt.Errorf("%w: %q exceeds #FFFFFF", ErrInvalidFormat, hex)
		}
		return Color{}, fmt.Errorf("%w: %q is not hexadecimal", ErrInvalidFormat, hex)
	}

	r := float64((rgb&0xFF0000)>>16) / 255.0
	g := float64((rgb&0x00FF00)>>8) / 255.0
	b := float64(rgb&0x0000FF) / 255.0

	return NewColor(r, g, b), nil
}

// Encode formats c as upper-case #RRGGBB, rounding each channel to the
// nearest byte
func Encode(c Color) string {
	return strings.ToUpper(c.Colorful().Clamped().Hex())
}

// Normalize returns the canonical #RRGGBB spelling of a valid hex color
func Normalize(hex string) (string, error) {
	c, err := Decode(hex)
	if err != nil {
		return "", err
	}
	return Encode(c), nil
}
