package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/fwctl/internal/rtc"
	"github.com/danmuck/fwctl/internal/serialport"
)

// RTCFileConfig is the on-disk shape read by rtcctl -config and configgen -kind rtc.
type RTCFileConfig struct {
	Port          string `toml:"port"`
	Baud          int    `toml:"baud"`
	DataBits      int    `toml:"data_bits"`
	Parity        string `toml:"parity"`
	StopBits      string `toml:"stop_bits"`
	ReadTimeout   string `toml:"read_timeout"`
	DTR           bool   `toml:"dtr"`
	RTS           bool   `toml:"rts"`
	Token         string `toml:"token"`
	BootDelay     string `toml:"boot_delay"`
	ResponseDelay string `toml:"response_delay"`
}

// LoadRTCConfig overlays path onto rtc.DefaultConfig and validates the result.
func LoadRTCConfig(path string) (rtc.Config, error) {
	cfg, err := OverlayRTCConfig(path, rtc.DefaultConfig())
	if err != nil {
		return rtc.Config{}, err
	}
	if err := ValidateSenderConfig(cfg); err != nil {
		return rtc.Config{}, err
	}
	return cfg, nil
}

// OverlayRTCConfig copies keys present in the file onto base. It does not validate,
// so callers can apply flag overrides first.
func OverlayRTCConfig(path string, base rtc.Config) (rtc.Config, error) {
	cfg := base

	var raw RTCFileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return rtc.Config{}, fmt.Errorf("load rtc config: %w", err)
	}

	if meta.IsDefined("port") {
		cfg.Serial.Name = strings.TrimSpace(raw.Port)
	}
	if meta.IsDefined("baud") {
		cfg.Serial.Baud = raw.Baud
	}
	if meta.IsDefined("data_bits") {
		cfg.Serial.DataBits = raw.DataBits
	}
	if meta.IsDefined("parity") {
		cfg.Serial.Parity = serialport.Parity(strings.ToLower(strings.TrimSpace(raw.Parity)))
	}
	if meta.IsDefined("stop_bits") {
		cfg.Serial.StopBits = serialport.StopBits(strings.TrimSpace(raw.StopBits))
	}
	if meta.IsDefined("read_timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.ReadTimeout))
		if err != nil {
			return rtc.Config{}, fmt.Errorf("parse read_timeout: %w", err)
		}
		cfg.Serial.ReadTimeout = d
	}
	if meta.IsDefined("dtr") {
		cfg.Serial.DTR = raw.DTR
	}
	if meta.IsDefined("rts") {
		cfg.Serial.RTS = raw.RTS
	}
	if meta.IsDefined("token") {
		cfg.Token = rtc.Token(strings.TrimSpace(raw.Token))
	}
	if meta.IsDefined("boot_delay") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.BootDelay))
		if err != nil {
			return rtc.Config{}, fmt.Errorf("parse boot_delay: %w", err)
		}
		cfg.BootDelay = d
	}
	if meta.IsDefined("response_delay") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.ResponseDelay))
		if err != nil {
			return rtc.Config{}, fmt.Errorf("parse response_delay: %w", err)
		}
		cfg.ResponseDelay = d
	}

	return cfg, nil
}

// ValidateSenderConfig is the single check shared by rtcctl and configgen.
// The token is only required to be non-blank; its format is left to the device.
func ValidateSenderConfig(cfg rtc.Config) error {
	if err := cfg.Serial.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(string(cfg.Token)) == "" {
		return rtc.ErrEmptyToken
	}
	if cfg.BootDelay < 0 {
		return fmt.Errorf("rtc config invalid boot_delay: %v", cfg.BootDelay)
	}
	if cfg.ResponseDelay < 0 {
		return fmt.Errorf("rtc config invalid response_delay: %v", cfg.ResponseDelay)
	}
	return nil
}
