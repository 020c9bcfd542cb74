package palette

import (
	"bytes"
	"fmt"
	"strings"
)

// Export maps each position to its hex value
func (r Ramp) Export() map[Position]string {
	out := make(map[Position]string, ShadeCount)
	for _, s := range r {
		out[s.Position] = s.Hex()
	}
	return out
}

// ExportJSON writes the ramp as an indented {"50": "#RRGGBB", ...} object in
// position order, the format of the downloadable palette file.
func ExportJSON(r Ramp) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, s := range r {
		if s.Position == 0 {
			return nil, fmt.Errorf("shade %d has no position", i)
		}
		fmt.Fprintf(&buf, "  %q: %q", fmt.Sprint(int(s.Position)), s.Hex())
		if i < len(r)-1 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
	}
	buf.WriteString("}")
	return buf.Bytes(), nil
}

// ExportFilename is the download name for a palette built from base
func ExportFilename(base Color) string {
	return "palette-" + strings.TrimPrefix(base.Hex(), "#") + ".json"
}
