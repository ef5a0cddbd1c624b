package level

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"io/fs"
	"math"

	// map and texture sources may be any of these formats
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

type CellType int

const (
	Empty CellType = iota
	Wall
)

func (c CellType) String() string {
	if c == Wall {
		return "wall"
	}
	return "empty"
}

// MapCell is one grid cell. Height is reserved and always 0.
type MapCell struct {
	Color  color.NRGBA
	Solid  CellType
	Height float64
}

// Grid is a row-major rectangle of cells, immutable once built.
type Grid struct {
	cells  [][]MapCell
	width  int
	height int
}

// Classify maps one source pixel to a cell: anything short of fully opaque
// is passable, every opaque pixel is a wall of that color.
func Classify(c color.Color) MapCell {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A < 255 {
		return MapCell{Color: n, Solid: Empty}
	}
	return MapCell{Color: n, Solid: Wall}
}

// FromImage classifies every pixel of img.
func FromImage(img image.Image) *Grid {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	cells := make([][]MapCell, height)
	for y := 0; y < height; y++ {
		cells[y] = make([]MapCell, width)
		for x := 0; x < width; x++ {
			cells[y][x] = Classify(img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}

	return &Grid{cells: cells, width: width, height: height}
}

// FromCells builds a grid from explicit rows; rows shorter than the first
// are padded with empty cells.
func FromCells(rows [][]MapCell) *Grid {
	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}
	cells := make([][]MapCell, height)
	for y := range rows {
		cells[y] = make([]MapCell, width)
		copy(cells[y], rows[y])
	}
	return &Grid{cells: cells, width: width, height: height}
}

// Decode reads an encoded image and classifies it into a grid.
func Decode(r io.Reader) (*Grid, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode map image: %w", err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("decode map image: empty %s image", format)
	}
	return FromImage(img), nil
}

// Load decodes the map image at path inside fsys.
func Load(fsys fs.FS, path string) (*Grid, error) {
	file, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open map %s: %w", path, err)
	}
	defer file.Close()

	g, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("load map %s: %w", path, err)
	}
	return g, nil
}


func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// Cell returns the cell at (x, y) and whether the coordinates are inside.
func (g *Grid) Cell(x, y int) (MapCell, bool) {
	if !g.InBounds(x, y) {
		return MapCell{}, false
	}
	return g.cells[y][x], true
}

// Solid reports a wall at (x, y); outside the grid nothing is solid.
func (g *Grid) Solid(x, y int) bool {
	return g.InBounds(x, y) && g.cells[y][x].Solid == Wall
}

// Passable reports an in-bounds empty cell.
func (g *Grid) Passable(x, y int) bool {
	return g.InBounds(x, y) && g.cells[y][x].Solid == Empty
}

// Equal compares two grids cell by cell.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.width != o.width || g.height != o.height {
		return false
	}
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x] != o.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// FindOpen returns the centre of the first passable cell in row-major order.
func (g *Grid) FindOpen() (float64, float64, bool) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x].Solid == Empty {
				// offset to centre in tile
				return float64(x) + 0.5, float64(y) + 0.5, true
			}
		}
	}
	return 0, 0, false
}

// Spawn keeps (x, y) when it lies in an open cell and otherwise falls back
// to FindOpen. ok is false only when the map has no open cell.
func (g *Grid) Spawn(x, y float64) (float64, float64, bool) {
	if g.Passable(int(math.Floor(x)), int(math.Floor(y))) {
		return x, y, true
	}
	return g.FindOpen()
}

// CountWalls returns the number of wall cells.
func (g *Grid) CountWalls() int {
	n := 0
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x].Solid == Wall {
				n++
			}
		}
	}
	return n
}
