package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/danmuck/fwctl/internal/config"
	"github.com/danmuck/fwctl/internal/includefix"
	"github.com/danmuck/fwctl/internal/logging"
)

func main() {
	logging.ConfigureRuntime()
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "includectl: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("includectl", flag.ContinueOnError)
	root := fs.String("root", ".", "directory the fix map paths are relative to")
	mapPath := fs.String("map", "", "fix map file (.toml, .yaml); defaults to the built-in table")
	if err := fs.Parse(args); err != nil {
		return err
	}

	fm := includefix.DefaultFixMap()
	if *mapPath != "" {
		cfg, err := config.LoadFixMapConfig(*mapPath)
		if err != nil {
			return err
		}
		fm = config.FixMap(cfg)
	}

	summary, err := includefix.NewFixer(*root, fm, stdout).Run()
	if err != nil {
		return err
	}
	log := logging.For("includectl")
	log.Debug().Msgf("includectl.run root=%q fixed=%d not_found=%d",
		*root, summary.Count(includefix.StatusFixed), summary.Count(includefix.StatusNotFound))
	return nil
}
