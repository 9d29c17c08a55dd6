package area

import (
	"fmt"
	"sort"

	"github.com/paulsmith/gogeos/geos"
)

// classifyRings bipartitions a flat set of rings into exteriors and
// holes by actual nesting, ignoring whatever roles the relation
// declared. A ring contained by an odd number of other rings is a hole;
// an even count (including zero) makes it an exterior — an island
// inside a hole inside an exterior is an exterior again.
func classifyRings(rings []*geos.Geometry) (exteriors, holes []*geos.Geometry, err error) {
	if len(rings) == 0 {
		return nil, nil, nil
	}

	sorted, err := sortByAreaDesc(rings)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidGeometry, err)
	}

	prepared := make([]*geos.PGeometry, len(sorted))
	for i, r := range sorted {
		prepared[i] = geos.PrepareGeometry(r)
	}

	for i, r := range sorted {
		count := 0
		for j := range sorted {
			if i == j {
				continue
			}
			c, err := prepared[j].Contains(r)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: %v", ErrInvalidGeometry, err)
			}
			if c {
				count++
			}
		}
		if count%2 == 0 {
			exteriors = append(exteriors, r)
		} else {
			holes = append(holes, r)
		}
	}

	return exteriors, holes, nil
}

func sortByAreaDesc(geoms []*geos.Geometry) ([]*geos.Geometry, error) {
	type entry struct {
		geom *geos.Geometry
		area float64
	}

	entries := make([]entry, len(geoms))
	for i, g := range geoms {
		a, err := g.Area()
		if err != nil {
			return nil, err
		}
		entries[i] = entry{geom: g, area: a}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].area > entries[j].area
	})

	out := make([]*geos.Geometry, len(entries))
	for i, e := range entries {
		out[i] = e.geom
	}
	return out, nil
}
