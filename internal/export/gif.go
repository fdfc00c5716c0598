package export

import (
	"image"
	"image/color"
	"image/gif"
	"io"

	"github.com/san-kum/sortviz/internal/sorting"
)

// GIFOptions sizes the animation. Delay is in hundredths of a second.
type GIFOptions struct {
	Width, Height int
	Delay         int
	// Every keeps one step in Every; the first and last are always kept.
	Every int
}

var gifPalette = color.Palette{
	color.RGBA{10, 10, 10, 255},
	color.RGBA{0, 255, 255, 255},
	color.RGBA{255, 0, 255, 255},
	color.RGBA{0, 255, 136, 255},
}

const (
	idxBackground = iota
	idxBar
	idxHighlight
	idxSorted
)

// WriteGIF renders steps as an animated GIF. The last frame is drawn in the
// sorted color.
func WriteGIF(w io.Writer, steps []sorting.Step, opts GIFOptions) error {
	if opts.Width <= 0 {
		opts.Width = 480
	}
	if opts.Height <= 0 {
		opts.Height = 240
	}
	if opts.Delay <= 0 {
		opts.Delay = 2
	}
	if opts.Every <= 0 {
		opts.Every = 1
	}

	anim := gif.GIF{LoopCount: 0}
	for i, st := range steps {
		last := i == len(steps)-1
		if i%opts.Every != 0 && !last {
			continue
		}
		anim.Image = append(anim.Image, frame(st, opts.Width, opts.Height, last))
		anim.Delay = append(anim.Delay, opts.Delay)
	}
	if len(anim.Image) == 0 {
		anim.Image = append(anim.Image, image.NewPaletted(image.Rect(0, 0, opts.Width, opts.Height), gifPalette))
		anim.Delay = append(anim.Delay, opts.Delay)
	}
	return gif.EncodeAll(w, &anim)
}

func frame(st sorting.Step, w, h int, sorted bool) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, w, h), gifPalette)
	n := len(st.Array)
	if n == 0 {
		return img
	}
	top := 1
	for _, v := range st.Array {
		top = max(top, v)
	}

	for i, v := range st.Array {
		idx := uint8(idxBar)
		switch {
		case sorted:
			idx = idxSorted
		case i == st.Highlight[0] || i == st.Highlight[1]:
			idx = idxHighlight
		}
		x0, x1 := i*w/n, (i+1)*w/n
		if x1 == x0 {
			x1 = x0 + 1
		}
		bh := v * h / top
		for x := x0; x < x1 && x < w; x++ {
			for y := h - bh; y < h; y++ {
				img.SetColorIndex(x, y, idx)
			}
		}
	}
	return img
}
