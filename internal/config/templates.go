package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/danmuck/fwctl/internal/includefix"
	"github.com/pelletier/go-toml/v2"
)

func Template(kind string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "rtc":
		return rtcTemplate, nil
	case "fixmap":
		return fixMapTemplate()
	default:
		return "", fmt.Errorf("unknown config kind: %s", kind)
	}
}

func WriteTemplate(path, kind string, overwrite bool) error {
	template, err := Template(kind)
	if err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o600)
}

// fixMapTemplate renders the built-in fix map so it can be edited and passed back with -map.
func fixMapTemplate() (string, error) {
	data, err := toml.Marshal(FixMapFile(includefix.DefaultFixMap()))
	if err != nil {
		return "", fmt.Errorf("render fixmap template: %w", err)
	}
	return string(data), nil
}

const rtcTemplate = `port = "/dev/ttyUSB0"
baud = 115200
data_bits = 8
parity = "none"
stop_bits = "1"
read_timeout = "1s"
dtr = false
rts = false
token = "2509011085835"
boot_delay = "2s"
response_delay = "1s"
`
