package seq

import "math"

// CoordinateSequence is an ordered, indexable sequence of coordinates
// with a fixed dimensionality (2 or 3). Implementations may be views
// over other sequences, in which case writes go through to the backing
// data.
type CoordinateSequence interface {
	Size() int
	Dimensions() int
	Ordinate(i, dim int) float64
	SetOrdinate(i, dim int, v float64)
}

// Buffer is a packed coordinate store, the only variant that owns its
// data. All adapter variants eventually resolve into one or more
// Buffers.
type Buffer struct {
	dims int
	data []float64
}

func NewBuffer(size, dims int) *Buffer {
	return &Buffer{
		dims: dims,
		data: make([]float64, size*dims),
	}
}

// FromCoords builds a Buffer from a coordinate slice. The dimensionality
// is taken from the first coordinate, 2 when empty.
func FromCoords(coords [][]float64) *Buffer {
	dims := 2
	if len(coords) > 0 && len(coords[0]) > 2 {
		dims = 3
	}
	b := NewBuffer(len(coords), dims)
	for i, c := range coords {
		for d := 0; d < dims && d < len(c); d++ {
			b.SetOrdinate(i, d, c[d])
		}
	}
	return b
}

func (b *Buffer) Size() int {
	return len(b.data) / b.dims
}

func (b *Buffer) Dimensions() int {
	return b.dims
}

func (b *Buffer) Ordinate(i, dim int) float64 {
	return b.data[i*b.dims+dim]
}

func (b *Buffer) SetOrdinate(i, dim int, v float64) {
	b.data[i*b.dims+dim] = v
}

// ordinateEquals treats two NaN ordinates as equal, unlike the default
// floating-point comparison.
func ordinateEquals(a, b float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	return a == b
}

// Equal reports whether two sequences have the same length and, over
// their common (minimum) dimensionality, pairwise equal ordinates.
// NaN ordinates at the same position and dimension compare equal.
func Equal(a, b CoordinateSequence) bool {
	if a.Size() != b.Size() {
		return false
	}
	dims := a.Dimensions()
	if b.Dimensions() < dims {
		dims = b.Dimensions()
	}
	for i := 0; i < a.Size(); i++ {
		for d := 0; d < dims; d++ {
			if !ordinateEquals(a.Ordinate(i, d), b.Ordinate(i, d)) {
				return false
			}
		}
	}
	return true
}

// PointEquals compares the coordinate at index i of a with the
// coordinate at index j of b over their common dimensionality.
func PointEquals(a CoordinateSequence, i int, b CoordinateSequence, j int) bool {
	dims := a.Dimensions()
	if b.Dimensions() < dims {
		dims = b.Dimensions()
	}
	for d := 0; d < dims; d++ {
		if !ordinateEquals(a.Ordinate(i, d), b.Ordinate(j, d)) {
			return false
		}
	}
	return true
}

// IsClosed reports whether the first and last coordinates coincide.
func IsClosed(s CoordinateSequence) bool {
	if s.Size() < 2 {
		return false
	}
	return PointEquals(s, 0, s, s.Size()-1)
}

// Coords materializes a sequence into a coordinate slice.
func Coords(s CoordinateSequence) [][]float64 {
	out := make([][]float64, s.Size())
	dims := s.Dimensions()
	for i := range out {
		c := make([]float64, dims)
		for d := 0; d < dims; d++ {
			c[d] = s.Ordinate(i, d)
		}
		out[i] = c
	}
	return out
}
