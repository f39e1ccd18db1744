package shapes

import (
	"errors"
	"fmt"
)

// ErrInvalidShapeIndex is returned when an index falls outside the catalog.
var ErrInvalidShapeIndex = errors.New("invalid shape index")

// Offset is a cell position relative to a shape's anchor.
type Offset struct {
	DX int `json:"dx"`
	DY int `json:"dy"`
}

// Shape is an immutable, non-empty ordered list of offsets.
type Shape struct {
	name    string
	offsets []Offset
}

// NewShape builds a shape from explicit offsets. The slice is copied.
func NewShape(name string, offsets ...Offset) (Shape, error) {
	if len(offsets) == 0 {
		return Shape{}, fmt.Errorf("shape %q has no cells", name)
	}
	o := make([]Offset, len(offsets))
	copy(o, offsets)
	return Shape{name: name, offsets: o}, nil
}

// NewShapeFromPattern builds a shape from rows of '#' (filled) and '.' (empty).
// Offsets are emitted top to bottom, left to right.
func NewShapeFromPattern(name string, rows ...string) (Shape, error) {
	var offsets []Offset
	for y, row := range rows {
		for x, ch := range row {
			switch ch {
			case '#':
				offsets = append(offsets, Offset{DX: x, DY: y})
			case '.':
			default:
				return Shape{}, fmt.Errorf("shape %q: unexpected character %q in pattern", name, ch)
			}
		}
	}
	return NewShape(name, offsets...)
}

func mustPattern(name string, rows ...string) Shape {
	s, err := NewShapeFromPattern(name, rows...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s Shape) Name() string {
	return s.name
}

// Offsets returns a copy of the shape's offsets.
func (s Shape) Offsets() []Offset {
	o := make([]Offset, len(s.offsets))
	copy(o, s.offsets)
	return o
}

// CellCount is the number of cells the shape occupies.
func (s Shape) CellCount() int {
	return len(s.offsets)
}

// ForEachOffset visits offsets in order without copying.
func (s Shape) ForEachOffset(visit func(o Offset)) {
	for _, o := range s.offsets {
		visit(o)
	}
}

// Bounds returns the min/max offsets along each axis.
func (s Shape) Bounds() (minDX, minDY, maxDX, maxDY int) {
	for i, o := range s.offsets {
		if i == 0 {
			minDX, maxDX, minDY, maxDY = o.DX, o.DX, o.DY, o.DY
			continue
		}
		minDX = min(minDX, o.DX)
		maxDX = max(maxDX, o.DX)
		minDY = min(minDY, o.DY)
		maxDY = max(maxDY, o.DY)
	}
	return
}

// Equal compares offset sequences exactly, order included.
func (s Shape) Equal(other Shape) bool {
	if len(s.offsets) != len(other.offsets) {
		return false
	}
	for i := range s.offsets {
		if s.offsets[i] != other.offsets[i] {
			return false
		}
	}
	return true
}

// RandomSource is the subset of *math/rand.Rand used for piece generation.
type RandomSource interface {
	Intn(n int) int
}

// Catalog is a fixed, ordered list of shapes. Positions are stable and used
// as persisted shape identifiers.
type Catalog struct {
	shapes []Shape
}

// NewCatalog creates a catalog from the given shapes, in order.
func NewCatalog(shapes ...Shape) (*Catalog, error) {
	if len(shapes) == 0 {
		return nil, errors.New("catalog must contain at least one shape")
	}
	s := make([]Shape, len(shapes))
	copy(s, shapes)
	return &Catalog{shapes: s}, nil
}

// DefaultCatalog returns the 11 standard pieces.
func DefaultCatalog() *Catalog {
	return &Catalog{shapes: []Shape{
		mustPattern("single", "#"),
		mustPattern("bar2-h", "##"),
		mustPattern("bar2-v", "#", "#"),
		mustPattern("bar3-h", "###"),
		mustPattern("bar3-v", "#", "#", "#"),
		mustPattern("square", "##", "##"),
		mustPattern("l", "#.", "#.", "##"),
		mustPattern("l-flipped", ".#", ".#", "##"),
		mustPattern("t", "###", ".#."),
		mustPattern("z", "##.", ".##"),
		mustPattern("s", ".##", "##."),
	}}
}

// AllShapes returns the catalog's shapes in order.
func (c *Catalog) AllShapes() []Shape {
	s := make([]Shape, len(c.shapes))
	copy(s, c.shapes)
	return s
}

func (c *Catalog) Len() int {
	return len(c.shapes)
}

// ShapeAt returns the shape at index.
func (c *Catalog) ShapeAt(index int) (Shape, error) {
	if index < 0 || index >= len(c.shapes) {
		return Shape{}, fmt.Errorf("%w: %d (catalog has %d shapes)", ErrInvalidShapeIndex, index, len(c.shapes))
	}
	return c.shapes[index], nil
}

// RandomShape picks a shape uniformly using rnd.
func (c *Catalog) RandomShape(rnd RandomSource) (int, Shape) {
	i := rnd.Intn(len(c.shapes))
	return i, c.shapes[i]
}

// IndexOf returns the index of the first shape whose offset sequence equals
// shape's, or -1.
func (c *Catalog) IndexOf(shape Shape) int {
	for i, s := range c.shapes {
		if s.Equal(shape) {
			return i
		}
	}
	return -1
}
