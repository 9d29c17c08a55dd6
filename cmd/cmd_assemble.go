package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cheggaaa/pb"

	"github.com/zacklin923/osmesa/area"
)

type CmdAssemble struct {
	global *GlobalOptions
}

func init() {
	_, err := parser.AddCommand("assemble",
		"Assemble relation geometries",
		"Assemble polygon and multipolygon geometries for the relations in a JSON file",
		&CmdAssemble{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdAssemble) Usage() string {
	return "relations.json output.geojson"
}

func (cmd CmdAssemble) Execute(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("Input or output file not specified, Usage: %s", cmd.Usage())
	}

	config, err := cmd.global.LoadConfig()
	if err != nil {
		return err
	}

	relations, err := readRelations(args[0])
	if err != nil {
		return err
	}

	pipeline := area.NewPipeline(area.NewAssembler(config))
	if config.Workers > 0 {
		pipeline.Workers(config.Workers)
	}

	bar := pb.StartNew(len(relations))
	in := make(chan *area.Relation, 100)
	go func() {
		defer close(in)
		for _, rel := range relations {
			in <- rel
			bar.Increment()
		}
	}()

	// The feeder must never be left blocked on a send when assembly
	// aborts early. On the happy path the channel is already closed and
	// empty here.
	defer func() {
		for range in {
		}
	}()

	fc, err := pipeline.Run(in)
	if err != nil {
		return fmt.Errorf("Failed to assemble: %s", err)
	}
	bar.Finish()

	out, err := os.Create(args[1])
	if err != nil {
		return err
	}
	defer out.Close()

	return json.NewEncoder(out).Encode(fc)
}

func readRelations(path string) ([]*area.Relation, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	relations := []*area.Relation{}
	err = json.NewDecoder(in).Decode(&relations)
	if err != nil {
		return nil, fmt.Errorf("Failed to parse relations: %s", err)
	}
	return relations, nil
}
