package area

import (
	"testing"

	"github.com/cheekybits/is"
	"github.com/paulsmith/gogeos/geos"
)

func squareRing(x0, y0, x1, y1 float64) [][]float64 {
	return [][]float64{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}, {x0, y0}}
}

func mustRingPoly(t *testing.T, ring [][]float64) *geos.Geometry {
	coords := make([]geos.Coord, len(ring))
	for i, p := range ring {
		coords[i] = geos.Coord{X: p[0], Y: p[1]}
	}
	p, err := geos.NewPolygon(coords)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func mustArea(t *testing.T, g *geos.Geometry) float64 {
	a, err := g.Area()
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func TestClassifyNestingParity(t *testing.T) {
	is := is.New(t)

	// A contains B contains C: B is a hole, A and C are exteriors.
	a := mustRingPoly(t, squareRing(0, 0, 10, 10))
	b := mustRingPoly(t, squareRing(2, 2, 8, 8))
	c := mustRingPoly(t, squareRing(4, 4, 6, 6))

	exteriors, holes, err := classifyRings([]*geos.Geometry{c, a, b})
	is.NoErr(err)
	is.Equal(len(exteriors), 2)
	is.Equal(len(holes), 1)

	is.Equal(mustArea(t, exteriors[0]), 100.0)
	is.Equal(mustArea(t, exteriors[1]), 4.0)
	is.Equal(mustArea(t, holes[0]), 36.0)
}

func TestClassifySingleRing(t *testing.T) {
	is := is.New(t)

	a := mustRingPoly(t, squareRing(0, 0, 1, 1))
	exteriors, holes, err := classifyRings([]*geos.Geometry{a})
	is.NoErr(err)
	is.Equal(len(exteriors), 1)
	is.Equal(len(holes), 0)
}

func TestClassifyEmpty(t *testing.T) {
	is := is.New(t)

	exteriors, holes, err := classifyRings(nil)
	is.NoErr(err)
	is.Equal(len(exteriors), 0)
	is.Equal(len(holes), 0)
}

func TestClassifyDisjointRings(t *testing.T) {
	is := is.New(t)

	a := mustRingPoly(t, squareRing(0, 0, 1, 1))
	b := mustRingPoly(t, squareRing(5, 5, 6, 6))
	exteriors, holes, err := classifyRings([]*geos.Geometry{a, b})
	is.NoErr(err)
	is.Equal(len(exteriors), 2)
	is.Equal(len(holes), 0)
}
