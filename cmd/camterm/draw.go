package main

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/smasonuk/quatcam/internal/wire"
)

// maxSpan bounds how far outside the screen a segment end may lie before
// it is pulled in; edges that cross the near plane project very far out.
const maxSpan = 4096

// drawSegment rasterises seg into the w by h cell area with Bresenham's
// algorithm, skipping cells off screen.
func drawSegment(s tcell.Screen, w, h int, seg wire.Segment) {
	x0, y0, x1, y1, ok := clampSegment(seg, w, h)
	if !ok {
		return
	}
	style := tcell.StyleDefault.Foreground(toColor(seg.Color))
	ch := lineRune(x1-x0, y1-y0)

	for _, c := range bresenham(x0, y0, x1, y1) {
		if c[0] >= 0 && c[0] < w && c[1] >= 0 && c[1] < h {
			s.SetContent(c[0], c[1], ch, nil, style)
		}
	}
}

func clampSegment(seg wire.Segment, w, h int) (int, int, int, int, bool) {
	for _, v := range []float64{seg.X0, seg.Y0, seg.X1, seg.Y1} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, 0, 0, 0, false
		}
	}
	if (seg.X0 < 0 && seg.X1 < 0) || (seg.Y0 < 0 && seg.Y1 < 0) ||
		(seg.X0 >= float64(w) && seg.X1 >= float64(w)) || (seg.Y0 >= float64(h) && seg.Y1 >= float64(h)) {
		return 0, 0, 0, 0, false
	}

	x0, y0 := seg.X0, seg.Y0
	x1, y1 := seg.X1, seg.Y1
	// Pull far ends toward the other end so the walk stays short.
	if t := spanFactor(x0, y0, x1, y1, w, h); t < 1 {
		x1, y1 = x0+(x1-x0)*t, y0+(y1-y0)*t
	}
	if t := spanFactor(x1, y1, x0, y0, w, h); t < 1 {
		x0, y0 = x1+(x0-x1)*t, y1+(y0-y1)*t
	}
	return int(math.Round(x0)), int(math.Round(y0)), int(math.Round(x1)), int(math.Round(y1)), true
}

// spanFactor returns the fraction of the way from (ax, ay) to (bx, by) that
// keeps b within maxSpan cells of the screen.
func spanFactor(ax, ay, bx, by float64, w, h int) float64 {
	t := 1.0
	limit := func(a, b, lo, hi float64) {
		if b < lo && a != b {
			t = math.Min(t, (lo-a)/(b-a))
		}
		if b > hi && a != b {
			t = math.Min(t, (hi-a)/(b-a))
		}
	}
	limit(ax, bx, -maxSpan, float64(w)+maxSpan)
	limit(ay, by, -maxSpan, float64(h)+maxSpan)
	return math.Max(t, 0)
}

func bresenham(x0, y0, x1, y1 int) [][2]int {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	cells := make([][2]int, 0, max(dx, -dy)+1)
	err := dx + dy
	for {
		cells = append(cells, [2]int{x0, y0})
		if x0 == x1 && y0 == y1 {
			return cells
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// lineRune picks a character that follows the slope of the line.
func lineRune(dx, dy int) rune {
	switch {
	case dy == 0:
		return '-'
	case dx == 0:
		return '|'
	case abs(dx) > 2*abs(dy):
		return '-'
	case abs(dy) > 2*abs(dx):
		return '|'
	case (dx > 0) == (dy > 0):
		return '\\'
	default:
		return '/'
	}
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, str string) {
	col := x
	for _, r := range str {
		s.SetContent(col, y, r, nil, style)
		col++
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
