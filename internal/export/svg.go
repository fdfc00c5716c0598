package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/sortviz/internal/viz"
)

type Palette struct {
	Background string
	Bar        string
	Highlight  string
}

var DefaultPalette = Palette{Background: "#0a0a0a", Bar: "#00ffff", Highlight: "#ff00ff"}

// Braille dot bits by sub-row and sub-column.
var pixelMap = [4][2]int{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// CanvasToSVG draws every set dot of the canvas as a circle. Dots in the
// character columns listed in hot use the highlight color.
func CanvasToSVG(canvas *viz.Canvas, scale float64, pal Palette, hot map[int]bool) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2
	height := float64(canvas.Height) * scale * 4
	dotRadius := scale * 0.4

	var base, lit strings.Builder
	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r := canvas.Grid[row][col]
			if r <= 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)
			out := &base
			if hot[col] {
				out = &lit
			}

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] == 0 {
						continue
					}
					cx := baseX + float64(dx)*scale + scale/2
					cy := baseY + float64(dy)*scale + scale/2
					fmt.Fprintf(out, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n", cx, cy, dotRadius)
				}
			}
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, pal.Background)
	fmt.Fprintf(&sb, "<g fill=\"%s\">\n%s</g>\n", pal.Bar, base.String())
	if lit.Len() > 0 {
		fmt.Fprintf(&sb, "<g fill=\"%s\">\n%s</g>\n", pal.Highlight, lit.String())
	}
	sb.WriteString("</svg>")
	return sb.String()
}

// BarsToSVG renders one step as solid bars, one rect per element.
func BarsToSVG(values []int, highlight [2]int, width, height int, pal Palette) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, pal.Background)

	n := len(values)
	if n > 0 {
		top := 1
		for _, v := range values {
			top = max(top, v)
		}
		bw := float64(width) / float64(n)
		for i, v := range values {
			fill := pal.Bar
			if i == highlight[0] || i == highlight[1] {
				fill = pal.Highlight
			}
			bh := float64(height) * float64(v) / float64(top)
			fmt.Fprintf(&sb, "<rect x=\"%.2f\" y=\"%.2f\" width=\"%.2f\" height=\"%.2f\" fill=\"%s\"/>\n",
				float64(i)*bw, float64(height)-bh, bw, bh, fill)
		}
	}
	sb.WriteString("</svg>")
	return sb.String()
}
