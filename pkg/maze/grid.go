// pkg/maze/grid.go
package maze

import (
	"errors"
	"fmt"
	"slices"

	"tank-arena/pkg/geom"
)

// Side identifies which edge of a cell a wall sits on. Every cell owns only
// its right and bottom walls; left and top walls belong to the neighbours.
type Side int

const (
	Right Side = iota
	Bottom
)

func (s Side) String() string {
	switch s {
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

var (
	ErrOutOfGrid = errors.New("maze: cell outside grid")
	ErrEdgeWall  = errors.New("maze: walls are not placed on the arena edge")
	ErrWallTaken = errors.New("maze: wall already present")
)

// Wall is a cell edge with a rectangular footprint. Identity is the pointer:
// two walls are the same wall only if they are the same *Wall.
type Wall struct {
	Col, Row int
	Side     Side
	From, To geom.Point // centerline

	stroke  float64
	removed bool
}

// Rect expands the centerline by half the stroke on every side.
func (w *Wall) Rect() geom.Rect {
	half := w.stroke / 2
	minX, maxX := min(w.From.X, w.To.X), max(w.From.X, w.To.X)
	minY, maxY := min(w.From.Y, w.To.Y), max(w.From.Y, w.To.Y)
	return geom.Rect{
		X:      minX - half,
		Y:      minY - half,
		Width:  maxX - minX + w.stroke,
		Height: maxY - minY + w.stroke,
	}
}

// Removed is true once the wall has been taken out of its cell.
func (w *Wall) Removed() bool { return w.removed }

func (w *Wall) String() string {
	return fmt.Sprintf("wall(%d,%d,%s)", w.Col, w.Row, w.Side)
}

// Cell — клетка лабиринта
type Cell struct {
	Col, Row int
	X, Y     float64
	Width    float64
	walls    [2]*Wall
}

func (c *Cell) Midpoint() geom.Point {
	return geom.Point{X: c.X + c.Width/2, Y: c.Y + c.Width/2}
}

// Wall returns the wall on the given side, or nil.
func (c *Cell) Wall(side Side) *Wall {
	return c.walls[side]
}

// Grid is the maze: a cols x rows block of square cells and the walls between
// them. Walls() preserves insertion order, which is the enumeration order
// used by collision checks.
type Grid struct {
	cols, rows int
	cellWidth  float64
	stroke     float64
	cells      [][]*Cell
	walls      []*Wall
}

func NewGrid(cols, rows int, cellWidth, stroke float64) *Grid {
	if cols <= 0 || rows <= 0 || cellWidth <= 0 || stroke <= 0 {
		panic(fmt.Sprintf("maze: invalid grid %dx%d cell=%v stroke=%v", cols, rows, cellWidth, stroke))
	}
	cells := make([][]*Cell, cols)
	for col := range cells {
		cells[col] = make([]*Cell, rows)
		for row := range cells[col] {
			cells[col][row] = &Cell{
				Col:   col,
				Row:   row,
				X:     float64(col) * cellWidth,
				Y:     float64(row) * cellWidth,
				Width: cellWidth,
			}
		}
	}
	return &Grid{
		cols:      cols,
		rows:      rows,
		cellWidth: cellWidth,
		stroke:    stroke,
		cells:     cells,
	}
}

func (g *Grid) Cols() int { return g.cols }
func (g *Grid) Rows() int { return g.rows }

// Bounds is the playfield covered by the grid.
func (g *Grid) Bounds() geom.Bounds {
	return geom.Bounds{
		Width:  float64(g.cols) * g.cellWidth,
		Height: float64(g.rows) * g.cellWidth,
	}
}

func (g *Grid) Cell(col, row int) (*Cell, bool) {
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return nil, false
	}
	return g.cells[col][row], true
}

// CellAt returns the cell containing p.
func (g *Grid) CellAt(p geom.Point) (*Cell, bool) {
	if p.X < 0 || p.Y < 0 {
		return nil, false
	}
	return g.Cell(int(p.X/g.cellWidth), int(p.Y/g.cellWidth))
}

// SetWall places a wall on a cell side. Walls on the outer edge are rejected:
// the arena bounds already close the playfield.
func (g *Grid) SetWall(col, row int, side Side) (*Wall, error) {
	cell, ok := g.Cell(col, row)
	if !ok {
		return nil, fmt.Errorf("set wall (%d,%d): %w", col, row, ErrOutOfGrid)
	}
	if (side == Right && col == g.cols-1) || (side == Bottom && row == g.rows-1) {
		return nil, fmt.Errorf("set wall (%d,%d,%s): %w", col, row, side, ErrEdgeWall)
	}
	if cell.walls[side] != nil {
		return nil, fmt.Errorf("set wall (%d,%d,%s): %w", col, row, side, ErrWallTaken)
	}

	w := &Wall{Col: col, Row: row, Side: side, stroke: g.stroke}
	switch side {
	case Right:
		x := cell.X + cell.Width
		w.From = geom.Point{X: x, Y: cell.Y}
		w.To = geom.Point{X: x, Y: cell.Y + cell.Width}
	case Bottom:
		y := cell.Y + cell.Width
		w.From = geom.Point{X: cell.X, Y: y}
		w.To = geom.Point{X: cell.X + cell.Width, Y: y}
	}
	cell.walls[side] = w

	// copy-on-write so slices handed out by Walls() never change underneath a caller
	walls := make([]*Wall, len(g.walls), len(g.walls)+1)
	copy(walls, g.walls)
	g.walls = append(walls, w)
	return w, nil
}

// Walls returns the live walls in enumeration order. The slice must not be
// modified; it is replaced, not mutated, when walls change.
func (g *Grid) Walls() []*Wall {
	return g.walls
}

// Remove takes the wall out of its cell. It reports false if the wall was
// already removed or does not belong to this grid.
func (g *Grid) Remove(w *Wall) bool {
	if w == nil || w.removed {
		return false
	}
	cell, ok := g.Cell(w.Col, w.Row)
	if !ok || cell.walls[w.Side] != w {
		return false
	}
	cell.walls[w.Side] = nil
	w.removed = true
	g.walls = slices.DeleteFunc(slices.Clone(g.walls), func(x *Wall) bool { return x == w })
	return true
}

// Clear removes every wall.
func (g *Grid) Clear() {
	for _, w := range g.walls {
		g.cells[w.Col][w.Row].walls[w.Side] = nil
		w.removed = true
	}
	g.walls = nil
}
