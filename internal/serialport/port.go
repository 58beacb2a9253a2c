package serialport

import (
	"errors"
	"fmt"
	"time"

	"go.bug.st/serial"
)

var (
	ErrAlreadyOpen = errors.New("serialport: channel already open")
	ErrNotOpen     = errors.New("serialport: channel not open")
	ErrShortWrite  = errors.New("serialport: short write")
)

// Port is the subset of an OS serial port the tools need.
type Port interface {
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
	SetReadTimeout(t time.Duration) error
	Close() error
}

// Opener opens a Port for the given settings. Channel applies the read timeout.
type Opener interface {
	Open(settings Settings) (Port, error)
}

// SystemOpener opens real serial devices through go.bug.st/serial.
type SystemOpener struct{}

func (SystemOpener) Open(settings Settings) (Port, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	mode, err := modeFor(settings)
	if err != nil {
		return nil, err
	}
	port, err := serial.Open(settings.Name, mode)
	if err != nil {
		return nil, fmt.Errorf("serialport: open %s: %w", settings.Name, err)
	}
	return port, nil
}

func modeFor(settings Settings) (*serial.Mode, error) {
	mode := &serial.Mode{
		BaudRate: settings.Baud,
		DataBits: settings.DataBits,
		InitialStatusBits: &serial.ModemOutputBits{
			DTR: settings.DTR,
			RTS: settings.RTS,
		},
	}
	switch settings.Parity {
	case ParityNone:
		mode.Parity = serial.NoParity
	case ParityEven:
		mode.Parity = serial.EvenParity
	case ParityOdd:
		mode.Parity = serial.OddParity
	default:
		return nil, fmt.Errorf("serialport: invalid parity %q", settings.Parity)
	}
	switch settings.StopBits {
	case StopBitsOne:
		mode.StopBits = serial.OneStopBit
	case StopBitsHalf:
		mode.StopBits = serial.OnePointFiveStopBits
	case StopBitsTwo:
		mode.StopBits = serial.TwoStopBits
	default:
		return nil, fmt.Errorf("serialport: invalid stop bits %q", settings.StopBits)
	}
	return mode, nil
}

// ListPorts returns the serial device names the OS currently exposes.
func ListPorts() ([]string, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("serialport: list ports: %w", err)
	}
	return ports, nil
}
