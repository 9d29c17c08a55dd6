package area

import (
	"fmt"
	"sort"

	"github.com/Workiva/go-datastructures/augmentedtree"
	"github.com/golang/geo/s2"
	"github.com/paulsmith/gogeos/geos"
)

// Lookup answers "which assembled areas contain this coordinate". It
// indexes s2 cell coverings of the outer loops in an interval tree and
// refines candidates with an exact loop test.
type Lookup struct {
	tree     augmentedtree.Tree
	loops    map[int64]int64
	polygons map[int64]*loopPolygon
}

func NewLookup() *Lookup {
	return &Lookup{
		tree:     augmentedtree.New(1),
		loops:    make(map[int64]int64),
		polygons: make(map[int64]*loopPolygon),
	}
}

// IndexWKB indexes assembled output bytes under the given id.
func (l *Lookup) IndexWKB(id int64, wkb []byte) error {
	g, err := geos.FromWKB(wkb)
	if err != nil {
		return err
	}

	t, err := g.Type()
	if err != nil {
		return err
	}

	switch t {
	case geos.POLYGON:
		return l.indexPolygon(id, g)
	case geos.MULTIPOLYGON:
		c, err := g.NGeometry()
		if err != nil {
			return err
		}
		for i := 0; i < c; i++ {
			p, err := g.Geometry(i)
			if err != nil {
				return err
			}
			err = l.indexPolygon(id, p)
			if err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("Cannot index geometry type: %v", t)
	}
}

func (l *Lookup) indexPolygon(id int64, poly *geos.Geometry) error {
	rings, err := polyRings(poly)
	if err != nil {
		return err
	}

	if len(rings[0]) <= 4 && hasDuplicates(rings[0]) {
		return nil
	}

	outer := makeLoop(rings[0])
	if outer == nil {
		return nil
	}

	inner := make([]*s2.Loop, 0)
	for _, coords := range rings[1:] {
		if lp := makeLoop(coords); lp != nil {
			inner = append(inner, lp)
		}
	}

	loopID := int64(len(l.loops))
	l.loops[loopID] = id
	l.polygons[loopID] = &loopPolygon{
		outer: outer,
		inner: inner,
	}

	rc := s2.RegionCoverer{
		MinLevel: 2,
		MaxLevel: 30,
		MaxCells: 8,
	}
	covering := rc.Covering(&loopRegion{outer})

	// Merge into a pre-existing interval when the cell is already
	// indexed.
	for _, cell := range covering {
		interval := &cellInterval{Cell: cell}
		results := l.tree.Query(interval)

		added := false
		for _, result := range results {
			i := result.(*cellInterval)
			if cell == i.Cell {
				i.Loops = append(i.Loops, loopID)
				added = true
			}
		}

		if !added {
			interval.Loops = []int64{loopID}
			l.tree.Add(interval)
		}
	}

	return nil
}

// Query returns the ids of all indexed areas containing the point.
func (l *Lookup) Query(lat, lng float64) []int64 {
	cell := s2.CellIDFromLatLng(s2.LatLngFromDegrees(lat, lng))
	probe := &cellInterval{Cell: cell}

	matched := make(map[int64]bool)
	for _, result := range l.tree.Query(probe) {
		for _, loopID := range result.(*cellInterval).Loops {
			if l.polygons[loopID].IsInside(lat, lng) {
				matched[l.loops[loopID]] = true
			}
		}
	}

	ids := make([]int64, 0, len(matched))
	for id := range matched {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func isClockwise(coords [][]float64) bool {
	sum := 0.0
	for i, coord := range coords[:len(coords)-1] {
		next := coords[i+1]
		sum += (next[0] - coord[0]) * (next[1] + coord[1])
	}
	return sum >= 0
}

func reverseCoords(coords [][]float64) [][]float64 {
	c := make([][]float64, len(coords))
	for i := 0; i < len(coords); i++ {
		c[i] = coords[len(coords)-i-1]
	}
	return c
}

func coordEquals(a, b []float64) bool {
	return a[0] == b[0] && a[1] == b[1]
}

func makeLoop(coords [][]float64) *s2.Loop {
	// s2.Loop is always CCW
	if isClockwise(coords) {
		coords = reverseCoords(coords)
	}

	// Skip last point, not stored in loop
	points := make([]s2.Point, 0, len(coords)-1)
	for i := 0; i < len(coords)-1; i++ {
		if i > 0 && coordEquals(coords[i-1], coords[i]) {
			continue
		}
		latlon := s2.LatLngFromDegrees(coords[i][1], coords[i][0])
		points = append(points, s2.PointFromLatLng(latlon))
	}

	if len(points) < 3 {
		return nil
	}
	return s2.LoopFromPoints(points)
}

func hasDuplicates(coords [][]float64) bool {
	dupes := 0
	seen := make(map[[2]float64]bool)
	for _, point := range coords {
		p := [2]float64{point[0], point[1]}
		_, ok := seen[p]
		if ok {
			dupes += 1
		}
		seen[p] = true
	}
	return dupes > 1
}

type loopPolygon struct {
	outer *s2.Loop
	inner []*s2.Loop
}

func (l *loopPolygon) IsInside(lat, lng float64) bool {
	latlon := s2.LatLngFromDegrees(lat, lng)
	point := s2.PointFromLatLng(latlon)

	if !l.outer.ContainsPoint(point) {
		return false
	}

	for _, ring := range l.inner {
		if ring.ContainsPoint(point) {
			return false
		}
	}

	return true
}

type loopRegion struct {
	*s2.Loop
}

func (l *loopRegion) CapBound() s2.Cap {
	return l.Loop.CapBound()
}

func (l *loopRegion) ContainsCell(c s2.Cell) bool {
	for i := 0; i < 4; i++ {
		v := c.Vertex(i)
		if !l.ContainsPoint(v) {
			return false
		}
	}

	return true
}

func (l *loopRegion) IntersectsCell(c s2.Cell) bool {
	// if any of the cell's vertices is contained by the
	// loop they intersect
	for i := 0; i < 4; i++ {
		v := c.Vertex(i)
		if l.ContainsPoint(v) {
			return true
		}
	}

	// missing case from the above implementation
	// where the loop is fully contained by the cell
	for _, v := range l.Vertices() {
		if c.ContainsPoint(v) {
			return true
		}
	}

	return false
}

type cellInterval struct {
	Cell  s2.CellID
	Loops []int64
}

func (s *cellInterval) LowAtDimension(d uint64) int64 {
	return int64(s.Cell.RangeMin())
}

func (s *cellInterval) HighAtDimension(d uint64) int64 {
	return int64(s.Cell.RangeMax())
}

func (s *cellInterval) OverlapsAtDimension(i augmentedtree.Interval, d uint64) bool {
	return s.HighAtDimension(d) > i.LowAtDimension(d) &&
		s.LowAtDimension(d) < i.HighAtDimension(d)
}

func (s *cellInterval) ID() uint64 {
	return uint64(s.Cell)
}
