package area

import (
	"fmt"
	"sort"

	"github.com/zacklin923/osmesa/seq"
)

// connectSegments stitches a set of open chains into closed rings.
// Chains should arrive sorted by descending length, larger chains first
// tend to need fewer connection steps.
//
// The worklist loop grows the head chain as a single Virtual sequence:
// every connection step appends a Partial (possibly Reversed) view of
// the matched chain, so lookups stay O(log n) and stack depth stays
// constant no matter how many segments a relation carries.
func connectSegments(chains []seq.CoordinateSequence) ([]seq.CoordinateSequence, error) {
	work := make([]seq.CoordinateSequence, len(chains))
	copy(work, chains)

	rings := []seq.CoordinateSequence{}
	for len(work) > 0 {
		h := work[0]
		rest := work[1:]

		if seq.IsClosed(h) {
			rings = append(rings, h)
			work = rest
			continue
		}

		// Coordinate comparison is exact: mismatched precision is an
		// input-data error, not something to paper over with epsilons.
		last := h.Size() - 1
		match := -1
		matchReversed := false
		for j, c := range rest {
			if seq.PointEquals(h, last, c, 0) {
				match = j
				break
			}
		}
		if match < 0 {
			for j, c := range rest {
				if seq.PointEquals(h, last, c, c.Size()-1) {
					match = j
					matchReversed = true
					break
				}
			}
		}
		if match < 0 {
			return nil, fmt.Errorf("%w: unable to connect segments", ErrAssemblyFailure)
		}

		m := rest[match]
		var tail seq.CoordinateSequence
		if matchReversed {
			tail = seq.NewPartial(seq.NewReversed(m), 1)
		} else {
			tail = seq.NewPartial(m, 1)
		}

		grown, ok := h.(*seq.Virtual)
		if !ok {
			grown = seq.NewVirtual(h)
		}
		grown.Append(tail)

		// The matched chain is dropped by full sequence equality, not
		// identity: distinct chains with identical coordinates are
		// removed together.
		kept := make([]seq.CoordinateSequence, 0, len(rest))
		for _, c := range rest {
			if !seq.Equal(c, m) {
				kept = append(kept, c)
			}
		}

		work = make([]seq.CoordinateSequence, 0, len(kept)+1)
		work = append(work, grown)
		work = append(work, kept...)
	}

	return rings, nil
}

// connectSorted runs the connector over a role bucket, largest chains
// first.
func connectSorted(chains []seq.CoordinateSequence) ([]seq.CoordinateSequence, error) {
	if len(chains) == 0 {
		return nil, nil
	}
	sort.SliceStable(chains, func(i, j int) bool {
		return chains[i].Size() > chains[j].Size()
	})
	return connectSegments(chains)
}
