package cmd

import (
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/zacklin923/osmesa/area"
)

type GlobalOptions struct {
	Config string `short:"c" long:"config" description:"Configuration file (optional)"`
}

var globalOpts = GlobalOptions{}
var parser = flags.NewParser(&globalOpts, flags.HelpFlag|flags.PassDoubleDash)

func Run() error {
	_, err := parser.Parse()
	if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
		parser.WriteHelp(os.Stdout)
		return nil
	}
	return err
}

func (g *GlobalOptions) LoadConfig() (*area.Config, error) {
	if g.Config == "" {
		return area.DefaultConfig(), nil
	}
	return area.LoadConfig(g.Config)
}
