package seq

// Reversed presents a backing sequence in reverse order without
// copying: index i maps to backing index size-1-i.
type Reversed struct {
	seq CoordinateSequence
}

func NewReversed(seq CoordinateSequence) *Reversed {
	return &Reversed{seq: seq}
}

// Clone returns a fresh reversed view over the same backing sequence,
// not a deep copy.
func (r *Reversed) Clone() *Reversed {
	return &Reversed{seq: r.seq}
}

func (r *Reversed) Size() int {
	return r.seq.Size()
}

func (r *Reversed) Dimensions() int {
	return r.seq.Dimensions()
}

func (r *Reversed) Ordinate(i, dim int) float64 {
	return r.seq.Ordinate(r.seq.Size()-1-i, dim)
}

func (r *Reversed) SetOrdinate(i, dim int, v float64) {
	r.seq.SetOrdinate(r.seq.Size()-1-i, dim, v)
}
