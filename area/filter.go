package area

import "strings"

// areaKeys lists the tag namespaces whose presence implies an area
// geometry, each with the values that are explicitly not areas.
var areaKeys = map[string]map[string]bool{
	"advertising":         {"billboard": true},
	"aerialway":           {"cable_car": true, "chair_lift": true, "drag_lift": true, "gondola": true, "goods": true, "j-bar": true, "magic_carpet": true, "mixed_lift": true, "platter": true, "rope_tow": true, "t-bar": true, "zip_line": true},
	"aeroway":             {"jet_bridge": true, "parking_position": true, "runway": true, "taxiway": true},
	"allotments":          {"plot": true},
	"amenity":             {"bench": true, "weighbridge": true},
	"area:highway":        {},
	"attraction":          {"river_rafting": true, "train": true, "water_slide": true},
	"barrier":             {"cable_barrier": true, "city_wall": true, "ditch": true, "fence": true, "guard_rail": true, "handrail": true, "hedge": true, "retaining_wall": true, "wall": true},
	"bridge:support":      {},
	"building":            {},
	"building:part":       {},
	"cemetery":            {},
	"club":                {},
	"craft":               {},
	"educational":         {},
	"emergency":           {"designated": true, "destination": true, "no": true, "official": true, "private": true, "yes": true},
	"golf":                {"cartpath": true, "hole": true, "path": true},
	"healthcare":          {},
	"historic":            {},
	"indoor":              {"corridor": true, "wall": true},
	"industrial":          {},
	"internet_access":     {},
	"junction":            {"circular": true, "jughandle": true, "roundabout": true},
	"landcover":           {},
	"landuse":             {},
	"leisure":             {"slipway": true, "track": true},
	"man_made":            {"crane": true, "cutline": true, "dyke": true, "embankment": true, "flagpole": true, "gantry": true, "groyne": true, "mast": true, "pier": true, "pipeline": true},
	"military":            {"trench": true},
	"natural":             {"cliff": true, "coastline": true, "ridge": true, "tree_row": true, "valley": true},
	"office":              {},
	"piste:type":          {"downhill": true, "hike": true, "ice_skate": true, "nordic": true, "skitour": true, "sled": true, "sleigh": true},
	"place":               {},
	"playground":          {"balancebeam": true, "slide": true, "zipwire": true},
	"police":              {},
	"polling_station":     {},
	"power":               {"cable": true, "insulator": true, "line": true, "minor_line": true, "portal": true},
	"public_transport":    {"platform": true},
	"residential":         {},
	"seamark:type":        {},
	"shop":                {},
	"telecom":             {},
	"tourism":             {"artwork": true, "attraction": true},
	"traffic_calming":     {"bump": true, "cushion": true, "dip": true, "hump": true, "rumble_strip": true},
	"waterway":            {"canal": true, "dam": true, "ditch": true, "drain": true, "fish_pass": true, "lock_gate": true, "river": true, "stream": true, "tidal_channel": true, "weir": true},
}

func isTruthy(v string) bool {
	switch strings.ToLower(v) {
	case "yes", "true", "1":
		return true
	}
	return false
}

// IsArea reports whether a tag set describes an area geometry: an
// explicit truthy area tag, or any area key present with a value not on
// that key's exclusion list.
func IsArea(tags map[string]string) bool {
	if v, ok := tags["area"]; ok && isTruthy(v) {
		return true
	}
	for key, excluded := range areaKeys {
		v, ok := tags[key]
		if !ok {
			continue
		}
		if !excluded[v] {
			return true
		}
	}
	return false
}

// IsMultiPolygon reports whether a relation's tags mark it as a
// multipolygon or boundary relation.
func IsMultiPolygon(tags map[string]string) bool {
	switch strings.ToLower(tags["type"]) {
	case "multipolygon", "boundary":
		return true
	}
	return false
}
