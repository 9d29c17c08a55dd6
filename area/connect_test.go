package area

import (
	"errors"
	"testing"

	"github.com/zacklin923/osmesa/seq"
)

func chain(points ...[]float64) seq.CoordinateSequence {
	return seq.FromCoords(points)
}

func TestConnectTriangle(t *testing.T) {
	rings, err := connectSegments([]seq.CoordinateSequence{
		chain([]float64{0, 0}, []float64{1, 0}),
		chain([]float64{1, 0}, []float64{0, 1}),
		chain([]float64{0, 1}, []float64{0, 0}),
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(rings) != 1 {
		t.Fatalf("Expected 1 ring, got %d", len(rings))
	}
	if !seq.IsClosed(rings[0]) || rings[0].Size() != 4 {
		t.Fatalf("Bad ring: closed=%v size=%d", seq.IsClosed(rings[0]), rings[0].Size())
	}
}

func TestConnectReversedMatch(t *testing.T) {
	// The second chain runs the wrong way, its end touches ours.
	rings, err := connectSegments([]seq.CoordinateSequence{
		chain([]float64{0, 0}, []float64{1, 0}),
		chain([]float64{0, 1}, []float64{1, 0}),
		chain([]float64{0, 1}, []float64{0, 0}),
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(rings) != 1 {
		t.Fatalf("Expected 1 ring, got %d", len(rings))
	}
	expected := chain([]float64{0, 0}, []float64{1, 0}, []float64{0, 1}, []float64{0, 0})
	if !seq.Equal(rings[0], expected) {
		t.Fatal("Unexpected ring coordinates")
	}
}

func TestConnectEmitsClosedInput(t *testing.T) {
	ring := chain([]float64{0, 0}, []float64{1, 0}, []float64{1, 1}, []float64{0, 0})
	rings, err := connectSegments([]seq.CoordinateSequence{ring})
	if err != nil {
		t.Fatal(err)
	}
	if len(rings) != 1 || !seq.Equal(rings[0], ring) {
		t.Fatal("Closed input should be emitted unchanged")
	}
}

func TestConnectMultipleRings(t *testing.T) {
	rings, err := connectSegments([]seq.CoordinateSequence{
		chain([]float64{0, 0}, []float64{1, 0}),
		chain([]float64{1, 0}, []float64{0, 1}),
		chain([]float64{0, 1}, []float64{0, 0}),
		chain([]float64{5, 5}, []float64{6, 5}),
		chain([]float64{6, 5}, []float64{5, 6}),
		chain([]float64{5, 6}, []float64{5, 5}),
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(rings) != 2 {
		t.Fatalf("Expected 2 rings, got %d", len(rings))
	}
}

func TestConnectFailure(t *testing.T) {
	_, err := connectSegments([]seq.CoordinateSequence{
		chain([]float64{0, 0}, []float64{1, 0}),
		chain([]float64{5, 5}, []float64{6, 6}),
	})
	if err == nil {
		t.Fatal("Expected an error")
	}
	if !errors.Is(err, ErrAssemblyFailure) {
		t.Fatalf("Expected an assembly failure, got %v", err)
	}
}

// Matched chains are removed by full sequence equality rather than
// identity, so two distinct chains with identical coordinates vanish
// together. Known edge case, kept on purpose.
func TestConnectIdenticalChainsRemovedTogether(t *testing.T) {
	rings, err := connectSegments([]seq.CoordinateSequence{
		chain([]float64{0, 0}, []float64{1, 0}),
		chain([]float64{1, 0}, []float64{1, 1}),
		chain([]float64{1, 0}, []float64{1, 1}),
		chain([]float64{1, 1}, []float64{0, 0}),
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(rings) != 1 {
		t.Fatalf("Expected the duplicate to be dropped with its twin, got %d rings", len(rings))
	}
	if rings[0].Size() != 4 {
		t.Fatalf("Bad ring size: %d", rings[0].Size())
	}
}

func TestConnectSortedLargestFirst(t *testing.T) {
	long := chain([]float64{1, 0}, []float64{1, 1}, []float64{0, 1}, []float64{0, 0})
	short := chain([]float64{0, 0}, []float64{1, 0})
	rings, err := connectSorted([]seq.CoordinateSequence{short, long})
	if err != nil {
		t.Fatal(err)
	}
	if len(rings) != 1 || rings[0].Size() != 5 {
		t.Fatal("Expected a single 5-coordinate ring")
	}
	// The longer chain leads after sorting.
	if rings[0].Ordinate(0, 0) != 1 || rings[0].Ordinate(0, 1) != 0 {
		t.Fatal("Longest chain should seed the ring")
	}
}
