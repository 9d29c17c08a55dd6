package area

import (
	"testing"

	"github.com/cheekybits/is"
	"github.com/paulsmith/gogeos/geos"
)

func TestDissolveDisjointIsIdempotent(t *testing.T) {
	is := is.New(t)

	a := mustRingPoly(t, squareRing(0, 0, 1, 1))
	b := mustRingPoly(t, squareRing(5, 5, 6, 6))

	exteriors, holes, err := dissolveRings([]*geos.Geometry{a, b})
	is.NoErr(err)
	is.Equal(len(exteriors), 2)
	is.Equal(len(holes), 0)
	is.Equal(mustArea(t, exteriors[0])+mustArea(t, exteriors[1]), 2.0)
}

func TestDissolveOverlapMergesToUnion(t *testing.T) {
	is := is.New(t)

	// 50% overlap: union area is 6, not the summed 8.
	a := mustRingPoly(t, squareRing(0, 0, 2, 2))
	b := mustRingPoly(t, squareRing(1, 0, 3, 2))

	exteriors, holes, err := dissolveRings([]*geos.Geometry{a, b})
	is.NoErr(err)
	is.Equal(len(exteriors), 1)
	is.Equal(len(holes), 0)
	is.Equal(mustArea(t, exteriors[0]), 6.0)
}

func TestDissolveSharedEdge(t *testing.T) {
	is := is.New(t)

	a := mustRingPoly(t, squareRing(0, 0, 1, 1))
	b := mustRingPoly(t, squareRing(1, 0, 2, 1))

	exteriors, holes, err := dissolveRings([]*geos.Geometry{a, b})
	is.NoErr(err)
	is.Equal(len(exteriors), 1)
	is.Equal(len(holes), 0)
	is.Equal(mustArea(t, exteriors[0]), 2.0)
}

func TestDissolveChainOfTouchingRings(t *testing.T) {
	is := is.New(t)

	// Three rings in a row, each touching the next.
	a := mustRingPoly(t, squareRing(0, 0, 2, 2))
	b := mustRingPoly(t, squareRing(1, 0, 3, 2))
	c := mustRingPoly(t, squareRing(2, 0, 4, 2))

	exteriors, holes, err := dissolveRings([]*geos.Geometry{a, b, c})
	is.NoErr(err)
	is.Equal(len(exteriors), 1)
	is.Equal(len(holes), 0)
	is.Equal(mustArea(t, exteriors[0]), 8.0)
}

func TestDissolveContainedRingStaysSeparate(t *testing.T) {
	is := is.New(t)

	// Containment alone is not touching: the inner ring must survive.
	a := mustRingPoly(t, squareRing(0, 0, 10, 10))
	b := mustRingPoly(t, squareRing(4, 4, 6, 6))

	exteriors, holes, err := dissolveRings([]*geos.Geometry{a, b})
	is.NoErr(err)
	is.Equal(len(exteriors), 2)
	is.Equal(len(holes), 0)
}
