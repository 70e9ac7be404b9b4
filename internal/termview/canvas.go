package termview

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type role int

const (
	roleBlank role = iota
	roleContent
	roleHeader
	roleBar
	roleTitle
	roleTitleFaint
	roleSegment
	roleSegmentActive
	roleAvatar
	roleAvatarActive
	roleAccessory
	roleAccessoryFaint
	roleStatus
)

type cell struct {
	r    rune
	role role
}

// canvas is a grid of styled runes. Writes outside the grid are dropped.
type canvas struct {
	w, h  int
	cells [][]cell
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: max(w, 0), h: max(h, 0)}
	c.cells = make([][]cell, c.h)
	for y := range c.cells {
		row := make([]cell, c.w)
		for x := range row {
			row[x] = cell{r: ' '}
		}
		c.cells[y] = row
	}
	return c
}

func (c *canvas) set(x, y int, r rune, ro role) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y][x] = cell{r: r, role: ro}
}

func (c *canvas) fill(rect cellRect, r rune, ro role) {
	for y := rect.y0; y < rect.y1; y++ {
		for x := rect.x0; x < rect.x1; x++ {
			c.set(x, y, r, ro)
		}
	}
}

// text writes s starting at x, truncated to the canvas width.
func (c *canvas) text(x, y int, s string, ro role) {
	if y < 0 || y >= c.h || x >= c.w {
		return
	}
	s = ansi.Truncate(s, c.w-max(x, 0), "…")
	for _, r := range s {
		c.set(x, y, r, ro)
		x++
	}
}

// box draws a rounded border around rect with label centered inside.
func (c *canvas) box(rect cellRect, label string, ro role) {
	if rect.width() < 2 || rect.height() < 2 {
		c.fill(rect, '●', ro)
		return
	}
	for x := rect.x0 + 1; x < rect.x1-1; x++ {
		c.set(x, rect.y0, '─', ro)
		c.set(x, rect.y1-1, '─', ro)
	}
	for y := rect.y0 + 1; y < rect.y1-1; y++ {
		c.set(rect.x0, y, '│', ro)
		c.set(rect.x1-1, y, '│', ro)
		for x := rect.x0 + 1; x < rect.x1-1; x++ {
			c.set(x, y, ' ', ro)
		}
	}
	c.set(rect.x0, rect.y0, '╭', ro)
	c.set(rect.x1-1, rect.y0, '╮', ro)
	c.set(rect.x0, rect.y1-1, '╰', ro)
	c.set(rect.x1-1, rect.y1-1, '╯', ro)

	inner := rect.width() - 2
	if inner <= 0 || label == "" {
		return
	}
	label = ansi.Truncate(label, inner, "")
	x := rect.x0 + 1 + (inner-ansi.StringWidth(label))/2
	c.text(x, (rect.y0+rect.y1-1)/2, label, ro)
}

// render joins runs of equally styled cells into styled strings, one line
// per row.
func (c *canvas) render(styles Styles) string {
	var b strings.Builder
	for y, row := range c.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].role == row[start].role {
				continue
			}
			run := make([]rune, 0, x-start)
			for _, cl := range row[start:x] {
				run = append(run, cl.r)
			}
			b.WriteString(styles.of(row[start].role).Render(string(run)))
			start = x
		}
	}
	return b.String()
}

// plain returns the canvas without styling. Tests and the config dump use it.
func (c *canvas) plain() string {
	lines := make([]string, len(c.cells))
	for y, row := range c.cells {
		runes := make([]rune, len(row))
		for x, cl := range row {
			runes[x] = cl.r
		}
		lines[y] = string(runes)
	}
	return strings.Join(lines, "\n")
}
