package area

import (
	"fmt"
	"runtime"
	"sync"

	geojson "github.com/paulmach/go.geojson"
	"github.com/rubenv/servertiming"
	"golang.org/x/sync/errgroup"
)

// Pipeline assembles a stream of relations concurrently and collects
// the successful results as GeoJSON features. Relations that are not
// areas, or that fail to assemble, are skipped; they never abort the
// batch.
type Pipeline struct {
	assembler *Assembler
	workers   int

	Timing *servertiming.Timing
}

func NewPipeline(assembler *Assembler) *Pipeline {
	return &Pipeline{
		assembler: assembler,
		workers:   runtime.NumCPU(),
		Timing:    servertiming.New().EnablePrefix(),
	}
}

func (p *Pipeline) Workers(n int) *Pipeline {
	if n > 0 {
		p.workers = n
	}
	return p
}

func (p *Pipeline) Run(relations <-chan *Relation) (*geojson.FeatureCollection, error) {
	var g errgroup.Group

	features := make(chan *geojson.Feature, 100)

	p.Timing.Start("assemble", "Assemble geometries")
	wg := sync.WaitGroup{}
	wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		g.Go(func() error {
			defer wg.Done()
			for rel := range relations {
				if !IsMultiPolygon(rel.Tags) && !IsArea(rel.Tags) {
					continue
				}

				wkb := p.assembler.Assemble(rel.ID, rel.Version, rel.Timestamp, rel.Members)
				if wkb == nil {
					continue
				}

				geom, err := GeometryFromWKB(wkb)
				if err != nil {
					return fmt.Errorf("GeometryFromWKB: %s for relation %d", err, rel.ID)
				}

				out := geojson.NewFeature(geom)
				out.SetProperty("id", fmt.Sprintf("%d", rel.ID))
				features <- out
			}
			return nil
		})
	}
	g.Go(func() error {
		wg.Wait()
		close(features)
		p.Timing.Stop("assemble")
		return nil
	})

	collected := make(chan *geojson.FeatureCollection, 1)
	g.Go(func() error {
		defer close(collected)
		fc := geojson.NewFeatureCollection()
		for f := range features {
			fc.AddFeature(f)
		}
		collected <- fc
		return nil
	})

	err := g.Wait()
	if err != nil {
		return nil, err
	}

	return <-collected, nil
}
