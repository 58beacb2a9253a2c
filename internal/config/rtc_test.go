package config

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/danmuck/fwctl/internal/rtc"
	"github.com/danmuck/fwctl/internal/serialport"
)

func TestRTCTemplateValidates(t *testing.T) {
	tmpl, err := Template("rtc")
	if err != nil {
		t.Fatalf("template: %v", err)
	}
	path := writeFile(t, "rtc.toml", tmpl)

	cfg, err := LoadRTCConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Serial.Name != "/dev/ttyUSB0" {
		t.Fatalf("unexpected port: %q", cfg.Serial.Name)
	}
	if cfg.Serial.Baud != 115200 {
		t.Fatalf("unexpected baud: %d", cfg.Serial.Baud)
	}
	if cfg.Token != rtc.DefaultToken {
		t.Fatalf("unexpected token: %q", cfg.Token)
	}
	if cfg.Serial.DTR || cfg.Serial.RTS {
		t.Fatalf("expected DTR/RTS disabled in template")
	}
}

func TestOverlayRTCConfigPartialKeepsBase(t *testing.T) {
	path := writeFile(t, "rtc.toml", "token = \"2601017000000\"\nread_timeout = \"500ms\"\n")

	cfg, err := OverlayRTCConfig(path, rtc.DefaultConfig())
	if err != nil {
		t.Fatalf("overlay: %v", err)
	}
	if cfg.Token != "2601017000000" {
		t.Fatalf("unexpected token: %q", cfg.Token)
	}
	if cfg.Serial.ReadTimeout != 500*time.Millisecond {
		t.Fatalf("unexpected read timeout: %v", cfg.Serial.ReadTimeout)
	}
	if cfg.Serial.Baud != 115200 {
		t.Fatalf("unexpected baud: %d", cfg.Serial.Baud)
	}
	if cfg.Serial.Parity != serialport.ParityNone {
		t.Fatalf("expected default parity kept: %q", cfg.Serial.Parity)
	}
	if cfg.BootDelay != 2*time.Second {
		t.Fatalf("unexpected boot delay: %v", cfg.BootDelay)
	}
}

func TestLoadRTCConfigRejectsWhatSerialRejects(t *testing.T) {
	cases := map[string]string{
		"baud":         "baud = 0\n",
		"data_bits":    "data_bits = 0\n",
		"read_timeout": "read_timeout = \"0s\"\n",
		"parity":       "parity = \"mark\"\n",
		"port":         "port = \"\"\n",
	}
	for name, content := range cases {
		path := writeFile(t, "rtc.toml", content)
		if _, err := LoadRTCConfig(path); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
		cfg, err := OverlayRTCConfig(path, rtc.DefaultConfig())
		if err != nil {
			t.Fatalf("%s: overlay: %v", name, err)
		}
		if err := cfg.Serial.Validate(); err == nil {
			t.Fatalf("%s: expected serial settings rejected", name)
		}
	}
}

func TestLoadRTCConfigRejectsEmptyToken(t *testing.T) {
	path := writeFile(t, "rtc.toml", "token = \"  \"\n")
	if _, err := LoadRTCConfig(path); !errors.Is(err, rtc.ErrEmptyToken) {
		t.Fatalf("expected ErrEmptyToken, got %v", err)
	}
}

func TestLoadRTCConfigRejectsBadDuration(t *testing.T) {
	path := writeFile(t, "rtc.toml", `boot_delay = "soon"`+"\n")
	if _, err := LoadRTCConfig(path); err == nil {
		t.Fatalf("expected duration error")
	}
	path = writeFile(t, "rtc.toml", `response_delay = "-1s"`+"\n")
	if _, err := LoadRTCConfig(path); err == nil {
		t.Fatalf("expected negative delay error")
	}
}

func TestLoadRTCConfigMissingFile(t *testing.T) {
	if _, err := LoadRTCConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected load error")
	}
}
