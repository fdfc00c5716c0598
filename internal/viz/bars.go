package viz

// BarSpan returns the sub-pixel columns bar i of n covers on a canvas w
// cells wide. Bars share columns when n exceeds the sub-pixel width.
func BarSpan(i, n, w int) (x0, x1 int) {
	px := w * 2
	x0 = i * px / n
	x1 = (i+1)*px/n - 1
	if x1 < x0 {
		x1 = x0
	}
	return x0, x1
}

// BarChart draws values as bottom-aligned vertical bars scaled to the
// largest value. Any positive value is at least one dot tall.
func BarChart(c *Canvas, values []int) {
	c.Clear()
	n := len(values)
	if n == 0 {
		return
	}
	top := 1
	for _, v := range values {
		top = max(top, v)
	}

	py := c.Height * 4
	for i, v := range values {
		if v <= 0 {
			continue
		}
		h := max(1, (v*py+top-1)/top)
		x0, x1 := BarSpan(i, n, c.Width)
		for x := x0; x <= x1; x++ {
			c.VLine(x, py-h, py-1)
		}
	}
}

// CellColumns maps bar indices to the character columns they touch.
func CellColumns(indices []int, n, w int) map[int]bool {
	cols := make(map[int]bool, len(indices)*2)
	for _, i := range indices {
		if i < 0 || i >= n {
			continue
		}
		x0, x1 := BarSpan(i, n, w)
		for col := x0 / 2; col <= x1/2; col++ {
			cols[col] = true
		}
	}
	return cols
}
