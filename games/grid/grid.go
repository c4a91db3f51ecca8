// Package grid is an immutable rectangular board for the k-in-a-row games.
package grid

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/cespare/xxhash"
)

type Cell byte

const (
	Empty Cell = iota
	X
	O
)

func (c Cell) String() string {
	switch c {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return "."
	}
}

// Other returns the opposite mark. Empty stays Empty.
func (c Cell) Other() Cell {
	switch c {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

type Point struct {
	Row int
	Col int
}

// Grid is a width x height board stored row-major. The cells string is never
// mutated, so a Grid can be shared freely.
type Grid struct {
	width  int
	height int
	cells  string
}

func New(width, height int) Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("invalid grid size %dx%d", width, height))
	}
	return Grid{width: width, height: height, cells: strings.Repeat(string(rune(Empty)), width*height)}
}

// Parse reads rows of "X", "O" and "." such as "X.O/.X./..O".
func Parse(rows string) (Grid, error) {
	lines := strings.Split(rows, "/")
	height := len(lines)
	width := len(lines[0])
	if width == 0 {
		return Grid{}, fmt.Errorf("empty grid row in %q", rows)
	}

	cells := make([]byte, 0, width*height)
	for _, line := range lines {
		if len(line) != width {
			return Grid{}, fmt.Errorf("ragged grid row %q in %q", line, rows)
		}
		for _, r := range line {
			switch r {
			case 'X', 'x':
				cells = append(cells, byte(X))
			case 'O', 'o':
				cells = append(cells, byte(O))
			case '.', '-', '_':
				cells = append(cells, byte(Empty))
			default:
				return Grid{}, fmt.Errorf("unknown cell %q in %q", r, rows)
			}
		}
	}
	return Grid{width: width, height: height, cells: string(cells)}, nil
}

func MustParse(rows string) Grid {
	g, err := Parse(rows)
	if err != nil {
		panic(err)
	}
	return g
}

func (g Grid) Width() int  { return g.width }
func (g Grid) Height() int { return g.height }

func (g Grid) At(row, col int) Cell {
	return Cell(g.cells[row*g.width+col])
}

// With returns a copy of g with the cell at (row, col) set to c.
func (g Grid) With(row, col int, c Cell) Grid {
	cells := []byte(g.cells)
	cells[row*g.width+col] = byte(c)
	return Grid{width: g.width, height: g.height, cells: string(cells)}
}

// Empties lists the empty cells in row-major order.
func (g Grid) Empties() []Point {
	points := []Point{}
	for i := 0; i < len(g.cells); i++ {
		if Cell(g.cells[i]) == Empty {
			points = append(points, Point{Row: i / g.width, Col: i % g.width})
		}
	}
	return points
}

func (g Grid) Full() bool {
	return strings.IndexByte(g.cells, byte(Empty)) < 0
}

func (g Grid) Count(c Cell) int {
	return strings.Count(g.cells, string(rune(c)))
}

var directions = []Point{
	{Row: 0, Col: 1},  // horizontal
	{Row: 1, Col: 0},  // vertical
	{Row: 1, Col: 1},  // diagonal
	{Row: 1, Col: -1}, // anti-diagonal
}

// InARow reports whether k cells of c line up horizontally, vertically or
// diagonally.
func (g Grid) InARow(c Cell, k int) bool {
	if k <= 0 || c == Empty {
		return false
	}
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			if g.At(row, col) != c {
				continue
			}
			for _, d := range directions {
				if g.run(row, col, d, c) >= k {
					return true
				}
			}
		}
	}
	return false
}

func (g Grid) run(row, col int, d Point, c Cell) int {
	n := 0
	for row >= 0 && row < g.height && col >= 0 && col < g.width && g.At(row, col) == c {
		n++
		row += d.Row
		col += d.Col
	}
	return n
}

// ReflectRows reverses the order of the rows.
func (g Grid) ReflectRows() Grid {
	cells := make([]byte, len(g.cells))
	for row := 0; row < g.height; row++ {
		copy(cells[row*g.width:(row+1)*g.width], g.cells[(g.height-1-row)*g.width:(g.height-row)*g.width])
	}
	return Grid{width: g.width, height: g.height, cells: string(cells)}
}

// ReflectCols reverses every row.
func (g Grid) ReflectCols() Grid {
	cells := make([]byte, len(g.cells))
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			cells[row*g.width+col] = g.cells[row*g.width+g.width-1-col]
		}
	}
	return Grid{width: g.width, height: g.height, cells: string(cells)}
}

// Transpose swaps rows and columns, so a width x height grid becomes
// height x width.
func (g Grid) Transpose() Grid {
	cells := make([]byte, len(g.cells))
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			cells[col*g.height+row] = g.cells[row*g.width+col]
		}
	}
	return Grid{width: g.height, height: g.width, cells: string(cells)}
}

// Compare orders grids by dimensions, then by cells.
func (g Grid) Compare(other Grid) int {
	switch {
	case g.width != other.width:
		return cmp.Compare(g.width, other.width)
	case g.height != other.height:
		return cmp.Compare(g.height, other.height)
	default:
		return strings.Compare(g.cells, other.cells)
	}
}

func (g Grid) Equal(other Grid) bool {
	return g == other
}

// Hash mixes the dimensions into the xxhash of the cells.
func (g Grid) Hash() uint64 {
	return xxhash.Sum64String(g.cells) ^ uint64(g.width)<<32 ^ uint64(g.height)
}

func (g Grid) String() string {
	var b strings.Builder
	for row := 0; row < g.height; row++ {
		if row > 0 {
			b.WriteByte('/')
		}
		for col := 0; col < g.width; col++ {
			b.WriteString(g.At(row, col).String())
		}
	}
	return b.String()
}
