package main

import (
	"flag"
	"log"

	"github.com/danmuck/fwctl/internal/config"
)

func main() {
	kind := flag.String("kind", "rtc", "config kind: rtc|fixmap")
	output := flag.String("output", "", "output path for config template")
	validate := flag.Bool("validate", false, "validate an existing config file")
	input := flag.String("input", "", "config path for validation (defaults to per-kind path)")
	force := flag.Bool("force", false, "overwrite existing config file")
	flag.Parse()

	if *validate {
		path := *input
		if path == "" {
			path = defaultPath(*kind)
		}

		switch *kind {
		case "rtc":
			if _, err := config.LoadRTCConfig(path); err != nil {
				log.Fatal(err)
			}
		case "fixmap":
			cfg, err := config.LoadFixMapConfig(path)
			if err != nil {
				log.Fatal(err)
			}
			if err := config.FixMap(cfg).Validate(); err != nil {
				log.Fatal(err)
			}
		default:
			log.Fatalf("unknown kind: %s", *kind)
		}
		log.Printf("Validated %s config at %s", *kind, path)
		return
	}

	target := *output
	if target == "" {
		target = defaultPath(*kind)
	}

	if err := config.WriteTemplate(target, *kind, *force); err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote %s config template to %s", *kind, target)
}

func defaultPath(kind string) string {
	switch kind {
	case "rtc":
		return "cmd/rtcctl/config.toml"
	case "fixmap":
		return "cmd/includectl/fixmap.toml"
	default:
		log.Fatalf("unknown kind: %s", kind)
		return ""
	}
}
