package export

import (
	"bytes"
	"image/gif"
	"strings"
	"testing"

	"github.com/san-kum/sortviz/internal/sorting"
	"github.com/san-kum/sortviz/internal/viz"
)

func TestCanvasToSVG(t *testing.T) {
	c := viz.NewCanvas(4, 2)
	viz.BarChart(c, []int{1, 2, 3, 4})
	hot := viz.CellColumns([]int{3}, 4, 4)

	svg := CanvasToSVG(c, 2, DefaultPalette, hot)
	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatal("not an svg document")
	}
	if !strings.Contains(svg, DefaultPalette.Highlight) {
		t.Error("expected a highlight group")
	}

	dots := 0
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			if c.Dot(x, y) {
				dots++
			}
		}
	}
	if got := strings.Count(svg, "<circle"); got != dots {
		t.Errorf("expected %d circles, got %d", dots, got)
	}

	if CanvasToSVG(nil, 1, DefaultPalette, nil) != "" {
		t.Error("nil canvas should give empty output")
	}
}

func TestBarsToSVG(t *testing.T) {
	svg := BarsToSVG([]int{3, 1, 2}, [2]int{0, 1}, 300, 100, DefaultPalette)
	if got := strings.Count(svg, "<rect"); got != 4 {
		t.Errorf("expected background plus 3 bars, got %d rects", got)
	}
	if got := strings.Count(svg, DefaultPalette.Highlight); got != 2 {
		t.Errorf("expected 2 highlighted bars, got %d", got)
	}
	if !strings.Contains(svg, `height="100.00"`) {
		t.Error("tallest bar should fill the height")
	}
}

func TestWriteGIF(t *testing.T) {
	var steps []sorting.Step
	for st := range sorting.InsertionSort([]int{5, 4, 3, 2, 1}) {
		steps = append(steps, st)
	}

	var buf bytes.Buffer
	if err := WriteGIF(&buf, steps, GIFOptions{Width: 50, Height: 20, Every: 3}); err != nil {
		t.Fatal(err)
	}
	anim, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatal(err)
	}

	want := (len(steps)-1)/3 + 1
	if (len(steps)-1)%3 != 0 {
		want++
	}
	if len(anim.Image) != want {
		t.Errorf("expected %d frames, got %d", want, len(anim.Image))
	}
	last := anim.Image[len(anim.Image)-1]
	if last.ColorIndexAt(49, 19) != idxSorted {
		t.Error("last frame should use the sorted color")
	}
}

func TestWriteGIF_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteGIF(&buf, nil, GIFOptions{}); err != nil {
		t.Fatal(err)
	}
	anim, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(anim.Image) != 1 {
		t.Errorf("expected a single blank frame, got %d", len(anim.Image))
	}
}
