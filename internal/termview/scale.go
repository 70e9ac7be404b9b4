package termview

import (
	"math"

	profile "github.com/grindlemire/go-profile"
)

// Scale converts profile points to terminal cells.
type Scale struct {
	PointsPerColumn float64
	PointsPerRow    float64
}

// DefaultScale maps a 375pt wide viewport to 75 columns. Rows are taller
// than columns are wide, roughly matching a terminal cell.
var DefaultScale = Scale{PointsPerColumn: 5, PointsPerRow: 16}

func (s Scale) col(x float64) int {
	return int(math.Round(x / s.PointsPerColumn))
}

func (s Scale) row(y float64) int {
	return int(math.Round(y / s.PointsPerRow))
}

// cellRect is a half-open cell rectangle.
type cellRect struct {
	x0, y0, x1, y1 int
}

func (c cellRect) width() int  { return c.x1 - c.x0 }
func (c cellRect) height() int { return c.y1 - c.y0 }

// cells converts r to cells. A non-empty rect always covers at least one
// cell in each direction.
func (s Scale) cells(r profile.Rect) cellRect {
	c := cellRect{
		x0: s.col(r.X),
		y0: s.row(r.Y),
		x1: s.col(r.Right()),
		y1: s.row(r.Bottom()),
	}
	if r.Width > 0 && c.x1 <= c.x0 {
		c.x1 = c.x0 + 1
	}
	if r.Height > 0 && c.y1 <= c.y0 {
		c.y1 = c.y0 + 1
	}
	return c
}

// Points converts a cell count back to a point size.
func (s Scale) Points(cols, rows int) profile.Size {
	return profile.NewSize(float64(cols)*s.PointsPerColumn, float64(rows)*s.PointsPerRow)
}
