package area

import (
	"errors"
	"fmt"
	"time"

	"github.com/paulsmith/gogeos/geos"
	"github.com/sirupsen/logrus"

	"github.com/zacklin923/osmesa/seq"
)

// Polygons smaller than this are dropped from the output.
const minPolygonArea = 1e-5

// Assembler reconstructs polygon and multipolygon geometries for
// relations whose boundaries arrive as an unordered pile of way
// segments. It is stateless across calls and safe for concurrent use.
type Assembler struct {
	maxBytes int
	timeout  time.Duration
	log      *logrus.Entry
}

func NewAssembler(config *Config) *Assembler {
	if config == nil {
		config = DefaultConfig()
	}
	maxBytes := config.MaxMemberBytes
	if maxBytes == 0 {
		maxBytes = DefaultConfig().MaxMemberBytes
	}
	timeoutMS := config.TimeoutMS
	if timeoutMS == 0 {
		timeoutMS = DefaultConfig().TimeoutMS
	}
	return &Assembler{
		maxBytes: maxBytes,
		timeout:  time.Duration(timeoutMS) * time.Millisecond,
		log:      logrus.NewEntry(logrus.StandardLogger()),
	}
}

// Assemble rebuilds the geometry of one relation from its member
// geometries. The returned bytes are WKB for a Polygon or MultiPolygon
// in EPSG:4326, nil when the relation cannot be reconstructed. There is
// no partial success and no propagated fault: every failure is logged
// with the relation id, version and timestamp and turned into nil.
func (a *Assembler) Assemble(id, version int64, ts time.Time, members []Member) []byte {
	log := a.log.WithFields(logrus.Fields{
		"id":        id,
		"version":   version,
		"timestamp": ts,
	})

	wkb, err := a.assemble(log, members)
	if err != nil {
		switch {
		case errors.Is(err, ErrIncompleteRelation):
			log.Debug(err)
		case errors.Is(err, ErrOversizedRelation), errors.Is(err, ErrTimeout):
			log.Warn(err)
		default:
			log.WithField("cause", err).Warn("Failed to assemble relation")
		}
		return nil
	}
	return wkb
}

func (a *Assembler) assemble(log *logrus.Entry, members []Member) ([]byte, error) {
	size := 0
	for _, m := range members {
		if m.Type == MemberWay && m.Geometry == nil {
			return nil, fmt.Errorf("%w: missing way geometry", ErrIncompleteRelation)
		}
		size += len(m.Geometry)
	}
	if size > a.maxBytes {
		return nil, fmt.Errorf("%w: %d bytes", ErrOversizedRelation, size)
	}

	lines := parseMembers(log, members)

	// The geometry-heavy part runs under a hard deadline: pathological
	// relations can go quadratic-or-worse in the dissolve and classify
	// passes, and the deadline is the circuit breaker.
	type result struct {
		wkb []byte
		err error
	}
	done := make(chan result, 1)
	go func() {
		// A panic out of the geometry engine must not take down the
		// process: it surfaces as an invalid-geometry error instead.
		defer func() {
			if r := recover(); r != nil {
				done <- result{err: fmt.Errorf("%w: %v", ErrInvalidGeometry, r)}
			}
		}()
		wkb, err := buildGeometry(lines)
		done <- result{wkb: wkb, err: err}
	}()

	select {
	case r := <-done:
		return r.wkb, r.err
	case <-time.After(a.timeout):
		// The in-flight computation is abandoned, not awaited.
		return nil, fmt.Errorf("%w after %s", ErrTimeout, a.timeout)
	}
}

type memberLine struct {
	role  string
	chain seq.CoordinateSequence
}

// parseMembers decodes member WKB into coordinate chains. A closed
// polygon member contributes only its exterior ring, re-triaged like
// any other line. Members that fail to parse are dropped.
func parseMembers(log *logrus.Entry, members []Member) []memberLine {
	lines := make([]memberLine, 0, len(members))
	for _, m := range members {
		if len(m.Geometry) == 0 {
			continue
		}

		g, err := geos.FromWKB(m.Geometry)
		if err != nil {
			log.WithField("cause", err).Debug("Dropping member with malformed WKB")
			continue
		}

		t, err := g.Type()
		if err != nil {
			log.WithField("cause", err).Debug("Dropping unreadable member geometry")
			continue
		}

		var line *geos.Geometry
		switch t {
		case geos.LINESTRING, geos.LINEARRING:
			line = g
		case geos.POLYGON:
			shell, err := g.Shell()
			if err != nil {
				log.WithField("cause", err).Debug("Dropping polygon member without shell")
				continue
			}
			line = shell
		default:
			continue
		}

		coords, err := line.Coords()
		if err != nil {
			log.WithField("cause", err).Debug("Dropping unreadable member geometry")
			continue
		}
		if len(coords) < 2 {
			// Empty and single-point linestrings decode fine but cannot
			// take part in any connection.
			log.Debug("Dropping degenerate member geometry")
			continue
		}
		pts := make([][]float64, len(coords))
		for i, c := range coords {
			pts[i] = []float64{c.X, c.Y}
		}
		lines = append(lines, memberLine{role: m.Role, chain: seq.FromCoords(pts)})
	}
	return lines
}

// buildGeometry runs the connection, classification, dissolution and
// hole-assignment passes over the triaged member chains and serializes
// the result.
func buildGeometry(lines []memberLine) ([]byte, error) {
	// Triage by declared role and closedness.
	var completeOuter, completeInner, completeUnknown []seq.CoordinateSequence
	var partialOuter, partialInner, partialUnknown []seq.CoordinateSequence
	for _, l := range lines {
		if seq.IsClosed(l.chain) {
			if l.chain.Size() < 4 {
				// Degenerate ring, fewer than 3 distinct vertices.
				continue
			}
			switch l.role {
			case RoleOuter:
				completeOuter = append(completeOuter, l.chain)
			case RoleInner:
				completeInner = append(completeInner, l.chain)
			default:
				completeUnknown = append(completeUnknown, l.chain)
			}
			continue
		}
		switch l.role {
		case RoleOuter:
			partialOuter = append(partialOuter, l.chain)
		case RoleInner:
			partialInner = append(partialInner, l.chain)
		default:
			partialUnknown = append(partialUnknown, l.chain)
		}
	}

	unknownRings, err := connectSorted(partialUnknown)
	if err != nil {
		return nil, err
	}
	outerRings, err := connectSorted(partialOuter)
	if err != nil {
		return nil, err
	}
	innerRings, err := connectSorted(partialInner)
	if err != nil {
		return nil, err
	}

	outers, err := ringsToPolygons(append(completeOuter, outerRings...))
	if err != nil {
		return nil, err
	}
	inners, err := ringsToPolygons(append(completeInner, innerRings...))
	if err != nil {
		return nil, err
	}

	// Rings with no usable role become inner when some already-known
	// outer contains them, outer otherwise.
	for _, ring := range append(completeUnknown, unknownRings...) {
		p, err := ringToPolygon(ring)
		if err != nil {
			return nil, err
		}
		contained := false
		for _, o := range outers {
			c, err := o.Contains(p)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidGeometry, err)
			}
			if c {
				contained = true
				break
			}
		}
		if contained {
			inners = append(inners, p)
		} else {
			outers = append(outers, p)
		}
	}

	// Declared roles end here: reclassify everything by actual nesting.
	exteriors, holes, err := classifyRings(append(outers, inners...))
	if err != nil {
		return nil, err
	}

	// Dissolve touching exteriors; holes surfaced by that pass join the
	// hole side, reduced to plain rings, for a dissolve of their own.
	finalExteriors, surfaced, err := dissolveRings(exteriors)
	if err != nil {
		return nil, err
	}

	holeInput := make([]*geos.Geometry, 0, len(holes)+len(surfaced))
	for _, h := range append(holes, surfaced...) {
		ring, err := exteriorRing(h)
		if err != nil {
			return nil, err
		}
		holeInput = append(holeInput, ring)
	}
	finalHoles, _, err := dissolveRings(holeInput)
	if err != nil {
		return nil, err
	}

	return serializePolygons(finalExteriors, finalHoles)
}

func ringsToPolygons(rings []seq.CoordinateSequence) ([]*geos.Geometry, error) {
	polys := make([]*geos.Geometry, 0, len(rings))
	for _, r := range rings {
		p, err := ringToPolygon(r)
		if err != nil {
			return nil, err
		}
		polys = append(polys, p)
	}
	return polys, nil
}

// serializePolygons assigns each hole to the largest exterior that
// contains it and emits WKB: one polygon serializes as a Polygon, more
// than one as a MultiPolygon.
func serializePolygons(exteriors, holes []*geos.Geometry) ([]byte, error) {
	sorted, err := sortByAreaDesc(exteriors)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGeometry, err)
	}

	polygons := make([]*geos.Geometry, 0, len(sorted))
	for _, shell := range sorted {
		shellHoles := make([][]geos.Coord, 0)

		if len(holes) > 0 {
			pshell := geos.PrepareGeometry(shell)

			for i := 0; i < len(holes); i++ {
				hole := holes[i]
				c, err := pshell.Contains(hole)
				if err != nil {
					return nil, fmt.Errorf("%w: %v", ErrInvalidGeometry, err)
				}
				if c {
					s, err := hole.Shell()
					if err != nil {
						return nil, fmt.Errorf("%w: %v", ErrInvalidGeometry, err)
					}

					coords, err := s.Coords()
					if err != nil {
						return nil, fmt.Errorf("%w: %v", ErrInvalidGeometry, err)
					}

					shellHoles = append(shellHoles, coords)
					holes = append(holes[:i], holes[i+1:]...)
					i-- // Counter-act the increment at the end of the iteration
				}
			}
		}

		s, err := shell.Shell()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidGeometry, err)
		}

		scoords, err := s.Coords()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidGeometry, err)
		}

		polygon, err := geos.NewPolygon(scoords, shellHoles...)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidGeometry, err)
		}

		size, err := polygon.Area()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidGeometry, err)
		}

		if size < minPolygonArea {
			continue
		}

		polygons = append(polygons, polygon)
	}

	if len(polygons) == 0 {
		return nil, fmt.Errorf("%w: no polygons produced", ErrAssemblyFailure)
	}

	var feat *geos.Geometry
	if len(polygons) == 1 {
		feat = polygons[0]
	} else {
		f, err := geos.NewCollection(geos.MULTIPOLYGON, polygons...)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidGeometry, err)
		}
		feat = f
	}

	feat.SetSRID(4326)
	wkb, err := feat.WKB()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGeometry, err)
	}
	return wkb, nil
}
