package area

import "time"

// MemberType mirrors the OSM element type of a relation member.
type MemberType int

const (
	MemberNode MemberType = iota
	MemberWay
	MemberRelation
)

const (
	RoleOuter = "outer"
	RoleInner = "inner"
)

// Member is a single relation member: its declared role, the element
// type it references and the WKB geometry assembled for it upstream
// (a LineString or a closed Polygon). Geometry is nil when no geometry
// is available, which is only tolerated for non-way members.
//
// Declared roles are advisory: real-world data mistags them all the
// time, so final outer/inner classification is always recomputed from
// actual containment.
type Member struct {
	Role     string     `json:"role"`
	Type     MemberType `json:"type"`
	Geometry []byte     `json:"geometry,omitempty"`
}

// Relation is the input unit of work.
type Relation struct {
	ID        int64             `json:"id"`
	Version   int64             `json:"version"`
	Timestamp time.Time         `json:"timestamp"`
	Tags      map[string]string `json:"tags,omitempty"`
	Members   []Member          `json:"members"`
}
