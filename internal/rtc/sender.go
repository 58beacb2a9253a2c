package rtc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/danmuck/fwctl/internal/serialport"
	"github.com/rs/zerolog/log"
)

// ErrEmptyToken rejects a blank token before the port is touched.
var ErrEmptyToken = errors.New("rtc: empty token")

// RTC sender configuration.
type Config struct {
	Serial        serialport.Settings
	Token         Token
	BootDelay     time.Duration
	ResponseDelay time.Duration
}

// RTC sender defaults: 2s for the board to boot, 1s for it to answer.
func DefaultConfig() Config {
	return Config{
		Serial:        serialport.DefaultSettings(),
		Token:         DefaultToken,
		BootDelay:     2 * time.Second,
		ResponseDelay: time.Second,
	}
}

// Sender runs one configuration exchange over a serial channel.
type Sender struct {
	cfg     Config
	channel *serialport.Channel
	out     io.Writer
	sleep   func(ctx context.Context, d time.Duration) error
}

func NewSender(cfg Config, opener serialport.Opener, out io.Writer) *Sender {
	if out == nil {
		out = os.Stdout
	}
	return &Sender{
		cfg:     cfg,
		channel: serialport.NewChannel(opener, cfg.Serial),
		out:     out,
		sleep:   sleepContext,
	}
}

// Channel exposes the underlying serial channel.
func (s *Sender) Channel() *serialport.Channel {
	return s.channel
}

// Send closes the channel, opens it, writes the payload and reads the reply.
// The channel is closed again on every return path.
func (s *Sender) Send(ctx context.Context) (res Result, err error) {
	res.Token = s.cfg.Token
	if strings.TrimSpace(string(s.cfg.Token)) == "" {
		return res, ErrEmptyToken
	}
	if err := s.channel.Close(); err != nil {
		return res, err
	}
	if err := s.channel.Open(); err != nil {
		return res, err
	}
	defer func() {
		if cerr := s.channel.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	log.Info().Msgf("rtc.Sender.Send opened port=%q", s.channel.Settings().String())

	if err := s.sleep(ctx, s.cfg.BootDelay); err != nil {
		return res, err
	}

	payload := Payload(s.cfg.Token)
	if err := s.channel.WriteAll(payload); err != nil {
		return res, fmt.Errorf("rtc: write payload: %w", err)
	}
	res.Sent = payload
	writeSent(s.out, s.cfg.Token)
	log.Debug().Msgf("rtc.Sender.Send wrote bytes=%d", len(payload))

	if err := s.sleep(ctx, s.cfg.ResponseDelay); err != nil {
		return res, err
	}

	resp, err := s.channel.ReadAvailable()
	res.Response = resp
	if err != nil {
		return res, fmt.Errorf("rtc: read response: %w", err)
	}
	writeResponse(s.out, res)
	log.Debug().Msgf("rtc.Sender.Send read bytes=%d", len(resp))
	return res, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
