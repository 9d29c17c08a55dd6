package cmd

import (
	"fmt"
	"strconv"

	"github.com/zacklin923/osmesa/area"
)

type CmdLookup struct {
	global *GlobalOptions
}

func init() {
	_, err := parser.AddCommand("lookup",
		"Look up areas by coordinate",
		"Assemble the relations in a JSON file and report which contain the given coordinate",
		&CmdLookup{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdLookup) Usage() string {
	return "relations.json lat lon"
}

func (cmd CmdLookup) Execute(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("Bad arguments, Usage: %s", cmd.Usage())
	}

	lat, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("Bad latitude: %s", args[1])
	}
	lng, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("Bad longitude: %s", args[2])
	}

	config, err := cmd.global.LoadConfig()
	if err != nil {
		return err
	}

	relations, err := readRelations(args[0])
	if err != nil {
		return err
	}

	assembler := area.NewAssembler(config)
	lookup := area.NewLookup()
	for _, rel := range relations {
		if !area.IsMultiPolygon(rel.Tags) && !area.IsArea(rel.Tags) {
			continue
		}
		wkb := assembler.Assemble(rel.ID, rel.Version, rel.Timestamp, rel.Members)
		if wkb == nil {
			continue
		}
		err = lookup.IndexWKB(rel.ID, wkb)
		if err != nil {
			return fmt.Errorf("Failed to index relation %d: %s", rel.ID, err)
		}
	}

	for _, id := range lookup.Query(lat, lng) {
		fmt.Println(id)
	}
	return nil
}
