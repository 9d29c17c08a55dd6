package seq

import "fmt"

// Partial presents all but the first offset coordinates of a backing
// sequence: index i maps to backing index offset+i.
type Partial struct {
	seq    CoordinateSequence
	offset int
}

func NewPartial(seq CoordinateSequence, offset int) *Partial {
	if offset < 0 || offset > seq.Size() {
		panic(fmt.Sprintf("seq: partial offset %d out of range [0, %d]", offset, seq.Size()))
	}
	return &Partial{seq: seq, offset: offset}
}

func (p *Partial) Size() int {
	return p.seq.Size() - p.offset
}

func (p *Partial) Dimensions() int {
	return p.seq.Dimensions()
}

func (p *Partial) Ordinate(i, dim int) float64 {
	return p.seq.Ordinate(p.offset+i, dim)
}

func (p *Partial) SetOrdinate(i, dim int, v float64) {
	p.seq.SetOrdinate(p.offset+i, dim, v)
}
