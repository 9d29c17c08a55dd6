package area

import (
	"fmt"

	"github.com/paulsmith/gogeos/geos"
)

// ringsTouch reports whether two rings share boundary or overlap.
// Containment alone does not count: an island inside a hole must not be
// merged into its surrounding exterior.
func ringsTouch(a, b *geos.Geometry) (bool, error) {
	t, err := a.Touches(b)
	if err != nil {
		return false, err
	}
	if t {
		return true, nil
	}
	return a.Overlaps(b)
}

// dissolveRings repeatedly unions rings that touch or overlap until no
// pair touches, then splits every remaining polygon into its exterior
// boundary and holes. Each pass either finalizes a ring or shrinks the
// worklist, bounded by the original ring count.
func dissolveRings(rings []*geos.Geometry) (exteriors, holes []*geos.Geometry, err error) {
	work := make([]*geos.Geometry, len(rings))
	copy(work, rings)

	for len(work) > 0 {
		h := work[0]
		rest := work[1:]

		touching := make(map[int]bool)
		for j, r := range rest {
			t, err := ringsTouch(h, r)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: %v", ErrInvalidGeometry, err)
			}
			if t {
				touching[j] = true
			}
		}

		if len(touching) == 0 {
			ext, hls, err := splitPolygon(h)
			if err != nil {
				return nil, nil, err
			}
			exteriors = append(exteriors, ext)
			holes = append(holes, hls...)
			work = rest
			continue
		}

		merged := h
		for j := range rest {
			if !touching[j] {
				continue
			}
			u, err := merged.Union(rest[j])
			if err != nil {
				return nil, nil, fmt.Errorf("%w: union failed: %v", ErrAssemblyFailure, err)
			}
			merged = u
		}

		// A union of touching rings can split into several disjoint
		// polygons again.
		parts, err := polygonParts(merged)
		if err != nil {
			return nil, nil, err
		}

		remaining := make([]*geos.Geometry, 0, len(rest)-len(touching))
		for j, r := range rest {
			if !touching[j] {
				remaining = append(remaining, r)
			}
		}

		// Parts that still touch an untouched ring go back on the
		// worklist, the rest are final.
		retry := make([]*geos.Geometry, 0, len(parts))
		for _, p := range parts {
			again := false
			for _, r := range remaining {
				t, err := ringsTouch(p, r)
				if err != nil {
					return nil, nil, fmt.Errorf("%w: %v", ErrInvalidGeometry, err)
				}
				if t {
					again = true
					break
				}
			}
			if again {
				retry = append(retry, p)
				continue
			}
			ext, hls, err := splitPolygon(p)
			if err != nil {
				return nil, nil, err
			}
			exteriors = append(exteriors, ext)
			holes = append(holes, hls...)
		}

		work = append(retry, remaining...)
	}

	return exteriors, holes, nil
}

// polygonParts flattens a union result into its polygons. Anything
// other than a polygon or multipolygon means the union degenerated.
func polygonParts(g *geos.Geometry) ([]*geos.Geometry, error) {
	t, err := g.Type()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGeometry, err)
	}

	switch t {
	case geos.POLYGON:
		return []*geos.Geometry{g}, nil
	case geos.MULTIPOLYGON:
		c, err := g.NGeometry()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidGeometry, err)
		}
		parts := make([]*geos.Geometry, c)
		for i := 0; i < c; i++ {
			p, err := g.Geometry(i)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidGeometry, err)
			}
			parts[i] = p
		}
		return parts, nil
	default:
		return nil, fmt.Errorf("%w: union failed, got geometry type %v", ErrAssemblyFailure, t)
	}
}

// splitPolygon separates a polygon into its exterior boundary and its
// holes, each as a hole-free polygon.
func splitPolygon(p *geos.Geometry) (*geos.Geometry, []*geos.Geometry, error) {
	ext, err := exteriorRing(p)
	if err != nil {
		return nil, nil, err
	}

	rings, err := p.Holes()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidGeometry, err)
	}

	holes := make([]*geos.Geometry, 0, len(rings))
	for _, r := range rings {
		coords, err := r.Coords()
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrInvalidGeometry, err)
		}
		hole, err := geos.NewPolygon(coords)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrInvalidGeometry, err)
		}
		holes = append(holes, hole)
	}

	return ext, holes, nil
}

// exteriorRing rebuilds a polygon from just the shell of p.
func exteriorRing(p *geos.Geometry) (*geos.Geometry, error) {
	shell, err := p.Shell()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGeometry, err)
	}
	coords, err := shell.Coords()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGeometry, err)
	}
	ext, err := geos.NewPolygon(coords)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGeometry, err)
	}
	return ext, nil
}
