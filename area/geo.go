package area

import (
	"fmt"

	geojson "github.com/paulmach/go.geojson"
	"github.com/paulsmith/gogeos/geos"

	"github.com/zacklin923/osmesa/seq"
)

func seqToGeosCoords(s seq.CoordinateSequence) []geos.Coord {
	coords := make([]geos.Coord, s.Size())
	for i := range coords {
		coords[i] = geos.Coord{
			X: s.Ordinate(i, 0),
			Y: s.Ordinate(i, 1),
		}
	}
	return coords
}

// ringToPolygon turns a closed coordinate sequence into a hole-free
// polygon.
func ringToPolygon(s seq.CoordinateSequence) (*geos.Geometry, error) {
	p, err := geos.NewPolygon(seqToGeosCoords(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGeometry, err)
	}
	return p, nil
}

func ringCoords(ring *geos.Geometry) ([][]float64, error) {
	coords, err := ring.Coords()
	if err != nil {
		return nil, err
	}
	out := make([][]float64, len(coords))
	for i, c := range coords {
		out[i] = []float64{c.X, c.Y}
	}
	return out, nil
}

// polyRings returns a polygon's rings as coordinate slices, shell
// first.
func polyRings(p *geos.Geometry) ([][][]float64, error) {
	shell, err := p.Shell()
	if err != nil {
		return nil, err
	}
	sc, err := ringCoords(shell)
	if err != nil {
		return nil, err
	}

	holes, err := p.Holes()
	if err != nil {
		return nil, err
	}

	rings := make([][][]float64, len(holes)+1)
	rings[0] = sc
	for i, h := range holes {
		hc, err := ringCoords(h)
		if err != nil {
			return nil, err
		}
		rings[i+1] = hc
	}
	return rings, nil
}

// GeometryFromGeos converts an assembled polygon or multipolygon into a
// GeoJSON geometry.
func GeometryFromGeos(g *geos.Geometry) (*geojson.Geometry, error) {
	t, err := g.Type()
	if err != nil {
		return nil, err
	}

	switch t {
	case geos.POLYGON:
		rings, err := polyRings(g)
		if err != nil {
			return nil, err
		}
		return geojson.NewPolygonGeometry(rings), nil
	case geos.MULTIPOLYGON:
		c, err := g.NGeometry()
		if err != nil {
			return nil, err
		}
		polys := make([][][][]float64, c)
		for i := 0; i < c; i++ {
			p, err := g.Geometry(i)
			if err != nil {
				return nil, err
			}
			rings, err := polyRings(p)
			if err != nil {
				return nil, err
			}
			polys[i] = rings
		}
		return geojson.NewMultiPolygonGeometry(polys...), nil
	default:
		return nil, fmt.Errorf("Unknown geometry type: %v", t)
	}
}

// GeometryFromWKB decodes assembled output bytes into a GeoJSON
// geometry.
func GeometryFromWKB(wkb []byte) (*geojson.Geometry, error) {
	g, err := geos.FromWKB(wkb)
	if err != nil {
		return nil, err
	}
	return GeometryFromGeos(g)
}
