package seq

import (
	"fmt"

	"github.com/Workiva/go-datastructures/augmentedtree"
)

// span maps an inclusive logical index range onto one backing sequence.
type span struct {
	low, high int64
	id        uint64
	part      CoordinateSequence
}

func (s *span) LowAtDimension(d uint64) int64 {
	return s.low
}

func (s *span) HighAtDimension(d uint64) int64 {
	return s.high
}

func (s *span) OverlapsAtDimension(i augmentedtree.Interval, d uint64) bool {
	return s.high >= i.LowAtDimension(d) && s.low <= i.HighAtDimension(d)
}

func (s *span) ID() uint64 {
	return s.id
}

// Virtual presents an ordered list of sequences as a single contiguous
// sequence. Lookups resolve through an interval tree rather than nested
// delegating wrappers, so a chain assembled out of thousands of parts
// costs O(log n) per access and constant stack depth.
//
// A Virtual may be appended to repeatedly while it is being assembled.
// Callers must finish appending before mixing in reads that rely on a
// materialized copy (Coords): cached copies are not invalidated.
type Virtual struct {
	tree augmentedtree.Tree
	size int
	dims int
	next uint64
}

func NewVirtual(parts ...CoordinateSequence) *Virtual {
	v := &Virtual{
		tree: augmentedtree.New(1),
	}
	for _, p := range parts {
		v.Append(p)
	}
	return v
}

// Append extends the sequence with part, mapped past the current
// maximum index. Empty parts are ignored.
func (v *Virtual) Append(part CoordinateSequence) {
	if part.Size() == 0 {
		return
	}
	s := &span{
		low:  int64(v.size),
		high: int64(v.size + part.Size() - 1),
		id:   v.next,
		part: part,
	}
	v.next++
	v.tree.Add(s)
	v.size += part.Size()
	if v.dims == 0 || part.Dimensions() < v.dims {
		v.dims = part.Dimensions()
	}
}

func (v *Virtual) Size() int {
	return v.size
}

// Dimensions is the minimum dimensionality across all parts.
func (v *Virtual) Dimensions() int {
	if v.dims == 0 {
		return 2
	}
	return v.dims
}

func (v *Virtual) locate(i int) *span {
	probe := &span{low: int64(i), high: int64(i)}
	for _, r := range v.tree.Query(probe) {
		s := r.(*span)
		if s.low <= int64(i) && int64(i) <= s.high {
			return s
		}
	}
	panic(fmt.Sprintf("seq: virtual index %d out of range [0, %d)", i, v.size))
}

func (v *Virtual) Ordinate(i, dim int) float64 {
	s := v.locate(i)
	return s.part.Ordinate(i-int(s.low), dim)
}

func (v *Virtual) SetOrdinate(i, dim int, val float64) {
	s := v.locate(i)
	s.part.SetOrdinate(i-int(s.low), dim, val)
}
