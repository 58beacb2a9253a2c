package serialport

import (
	"fmt"
	"runtime"
	"strings"
	"time"
)

type Parity string

const (
	ParityNone Parity = "none"
	ParityEven Parity = "even"
	ParityOdd  Parity = "odd"
)

type StopBits string

const (
	StopBitsOne  StopBits = "1"
	StopBitsHalf StopBits = "1.5"
	StopBitsTwo  StopBits = "2"
)

// Settings describes one serial line. DTR and RTS are the levels asserted on open.
type Settings struct {
	Name        string
	Baud        int
	DataBits    int
	Parity      Parity
	StopBits    StopBits
	ReadTimeout time.Duration
	DTR         bool
	RTS         bool
}

// DefaultPortName is COM3 on Windows and the first USB serial adapter elsewhere.
func DefaultPortName() string {
	if runtime.GOOS == "windows" {
		return "COM3"
	}
	return "/dev/ttyUSB0"
}

// Serial defaults: 115200 8N1, 1s read timeout, DTR/RTS held low.
func DefaultSettings() Settings {
	return Settings{
		Name:        DefaultPortName(),
		Baud:        115200,
		DataBits:    8,
		Parity:      ParityNone,
		StopBits:    StopBitsOne,
		ReadTimeout: time.Second,
		DTR:         false,
		RTS:         false,
	}
}

func (s Settings) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("serialport: missing port name")
	}
	if s.Baud <= 0 {
		return fmt.Errorf("serialport: invalid baud %d", s.Baud)
	}
	switch s.DataBits {
	case 5, 6, 7, 8:
	default:
		return fmt.Errorf("serialport: invalid data bits %d", s.DataBits)
	}
	switch s.Parity {
	case ParityNone, ParityEven, ParityOdd:
	default:
		return fmt.Errorf("serialport: invalid parity %q", s.Parity)
	}
	switch s.StopBits {
	case StopBitsOne, StopBitsHalf, StopBitsTwo:
	default:
		return fmt.Errorf("serialport: invalid stop bits %q", s.StopBits)
	}
	if s.ReadTimeout <= 0 {
		return fmt.Errorf("serialport: read timeout must be positive")
	}
	return nil
}

func (s Settings) String() string {
	parity := "N"
	switch s.Parity {
	case ParityEven:
		parity = "E"
	case ParityOdd:
		parity = "O"
	}
	return fmt.Sprintf("%s@%d %d%s%s", s.Name, s.Baud, s.DataBits, parity, s.StopBits)
}
