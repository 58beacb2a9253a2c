package serialport

import (
	"bytes"
	"fmt"

	"github.com/rs/zerolog/log"
)

const (
	readChunk = 256
	// maxAvailable bounds ReadAvailable against a device that never goes quiet.
	maxAvailable = 64 << 10
)

// Channel owns at most one open Port. The zero state is closed.
type Channel struct {
	opener   Opener
	settings Settings
	port     Port
}

func NewChannel(opener Opener, settings Settings) *Channel {
	if opener == nil {
		opener = SystemOpener{}
	}
	return &Channel{opener: opener, settings: settings}
}

func (c *Channel) Settings() Settings {
	return c.settings
}

func (c *Channel) IsOpen() bool {
	return c.port != nil
}

func (c *Channel) Open() error {
	if c.port != nil {
		return ErrAlreadyOpen
	}
	port, err := c.opener.Open(c.settings)
	if err != nil {
		return err
	}
	if err := port.SetReadTimeout(c.settings.ReadTimeout); err != nil {
		_ = port.Close()
		return fmt.Errorf("serialport: set read timeout %s: %w", c.settings.Name, err)
	}
	c.port = port
	log.Debug().Msgf("serialport.Channel.Open port=%q", c.settings.String())
	return nil
}

// Close releases the port. Closing a closed channel is a no-op.
func (c *Channel) Close() error {
	if c.port == nil {
		return nil
	}
	port := c.port
	c.port = nil
	if err := port.Close(); err != nil {
		return fmt.Errorf("serialport: close %s: %w", c.settings.Name, err)
	}
	log.Debug().Msgf("serialport.Channel.Close port=%q", c.settings.Name)
	return nil
}

// WriteAll writes p in full or returns an error.
func (c *Channel) WriteAll(p []byte) error {
	if c.port == nil {
		return ErrNotOpen
	}
	n, err := c.port.Write(p)
	if err != nil {
		return fmt.Errorf("serialport: write %s: %w", c.settings.Name, err)
	}
	if n != len(p) {
		return fmt.Errorf("%w: wrote %d of %d bytes", ErrShortWrite, n, len(p))
	}
	return nil
}

func (c *Channel) ReadAvailable() ([]byte, error) {
	if c.port == nil {
		return nil, ErrNotOpen
	}
	return ReadAvailable(c.port)
}

// ReadAvailable reads until one read returns no bytes, i.e. the read timeout
// elapsed with nothing left in the device buffer.
func ReadAvailable(port Port) ([]byte, error) {
	var out bytes.Buffer
	buf := make([]byte, readChunk)
	for {
		n, err := port.Read(buf)
		if n > 0 {
			out.Write(buf[:n])
		}
		if err != nil {
			return out.Bytes(), fmt.Errorf("serialport: read: %w", err)
		}
		if n == 0 || out.Len() >= maxAvailable {
			return out.Bytes(), nil
		}
	}
}
