package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/balkashynov/wishmaker/internal/color"
)

// colorJSON is the --json shape shared by decode and random
type colorJSON struct {
	Hex   string   `json:"hex"`
	Red   float64  `json:"red"`
	Green float64  `json:"green"`
	Blue  float64  `json:"blue"`
	RGB   [3]uint8 `json:"rgb"`
}

// printColor writes c as a small table or as JSON
func printColor(w io.Writer, c color.Color, jsonOutput bool) error {
	r, g, b := c.Bytes()

	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(colorJSON{
			Hex:   color.Encode(c),
			Red:   c.Red(),
			Green: c.Green(),
			Blue:  c.Blue(),
			RGB:   [3]uint8{r, g, b},
		})
	}

	fmt.Fprintf(w, "%-6s %s\n", "Hex:", color.Encode(c))
	fmt.Fprintf(w, "%-6s %.3f (%d)\n", "Red:", c.Red(), r)
	fmt.Fprintf(w, "%-6s %.3f (%d)\n", "Green:", c.Green(), g)
	fmt.Fprintf(w, "%-6s %.3f (%d)\n", "Blue:", c.Blue(), b)
	return nil
}
