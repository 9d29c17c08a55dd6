package cmd

import (
	"encoding/json"
	"os"
	"path"
	"testing"
	"time"

	"github.com/cheekybits/is"
	geojson "github.com/paulmach/go.geojson"
	"github.com/paulsmith/gogeos/geos"

	"github.com/zacklin923/osmesa/area"
)

func lineWKB(t *testing.T, points [][]float64) []byte {
	coords := make([]geos.Coord, len(points))
	for i, p := range points {
		coords[i] = geos.Coord{X: p[0], Y: p[1]}
	}
	g, err := geos.NewLineString(coords...)
	if err != nil {
		t.Fatal(err)
	}
	wkb, err := g.WKB()
	if err != nil {
		t.Fatal(err)
	}
	return wkb
}

func TestCmdAssemble(t *testing.T) {
	is := is.New(t)

	relations := []*area.Relation{
		{
			ID:        1,
			Version:   1,
			Timestamp: time.Now(),
			Tags:      map[string]string{"type": "multipolygon", "natural": "water"},
			Members: []area.Member{
				{Role: area.RoleOuter, Type: area.MemberWay, Geometry: lineWKB(t, [][]float64{{0, 0}, {2, 0}})},
				{Role: area.RoleOuter, Type: area.MemberWay, Geometry: lineWKB(t, [][]float64{{2, 0}, {2, 2}, {0, 2}})},
				{Role: area.RoleOuter, Type: area.MemberWay, Geometry: lineWKB(t, [][]float64{{0, 2}, {0, 0}})},
			},
		},
		{
			// Not an area relation, must not show up in the output.
			ID:        2,
			Version:   1,
			Timestamp: time.Now(),
			Tags:      map[string]string{"type": "route"},
		},
	}

	dir := t.TempDir()
	input := path.Join(dir, "relations.json")
	output := path.Join(dir, "out.geojson")

	data, err := json.Marshal(relations)
	is.NoErr(err)
	is.NoErr(os.WriteFile(input, data, 0644))

	cmd := CmdAssemble{global: &globalOpts}
	is.NoErr(cmd.Execute([]string{input, output}))

	raw, err := os.ReadFile(output)
	is.NoErr(err)

	fc, err := geojson.UnmarshalFeatureCollection(raw)
	is.NoErr(err)
	is.Equal(len(fc.Features), 1)
	is.Equal(fc.Features[0].Properties["id"], "1")
	is.True(fc.Features[0].Geometry.IsPolygon())
}

func TestCmdAssembleBadArgs(t *testing.T) {
	is := is.New(t)

	cmd := CmdAssemble{global: &globalOpts}
	is.Err(cmd.Execute(nil))
}

func TestCmdAssembleMissingInput(t *testing.T) {
	is := is.New(t)

	dir := t.TempDir()
	cmd := CmdAssemble{global: &globalOpts}
	is.Err(cmd.Execute([]string{path.Join(dir, "nope.json"), path.Join(dir, "out.geojson")}))
}
