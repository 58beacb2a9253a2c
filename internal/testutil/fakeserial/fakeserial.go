// Package fakeserial provides an in-memory serialport.Opener for tests.
package fakeserial

import (
	"bytes"
	"errors"
	"sync"
	"time"

	"github.com/danmuck/fwctl/internal/serialport"
)

// Opener records every open and hands out one shared Port.
type Opener struct {
	mu sync.Mutex

	Port    *Port
	OpenErr error
	Opened  []serialport.Settings
}

func NewOpener() *Opener {
	return &Opener{Port: &Port{}}
}

func (o *Opener) Open(settings serialport.Settings) (serialport.Port, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.Opened = append(o.Opened, settings)
	if o.OpenErr != nil {
		return nil, o.OpenErr
	}
	o.Port.mu.Lock()
	o.Port.open = true
	o.Port.Opens++
	o.Port.mu.Unlock()
	return o.Port, nil
}

// Port buffers writes and replays Response chunks, one per Read call.
type Port struct {
	mu sync.Mutex

	open        bool
	Opens       int
	Closes      int
	Written     bytes.Buffer
	Response    [][]byte
	ReadTimeout time.Duration

	WriteErr   error
	ShortWrite bool
	ReadErr    error
}

var errClosed = errors.New("fakeserial: port closed")

func (p *Port) Read(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.open {
		return 0, errClosed
	}
	if p.ReadErr != nil {
		return 0, p.ReadErr
	}
	if len(p.Response) == 0 {
		return 0, nil
	}
	n := copy(b, p.Response[0])
	if n < len(p.Response[0]) {
		p.Response[0] = p.Response[0][n:]
	} else {
		p.Response = p.Response[1:]
	}
	return n, nil
}

func (p *Port) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.open {
		return 0, errClosed
	}
	if p.WriteErr != nil {
		return 0, p.WriteErr
	}
	if p.ShortWrite && len(b) > 0 {
		p.Written.Write(b[:len(b)-1])
		return len(b) - 1, nil
	}
	p.Written.Write(b)
	return len(b), nil
}

func (p *Port) SetReadTimeout(t time.Duration) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ReadTimeout = t
	return nil
}

func (p *Port) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.open = false
	p.Closes++
	return nil
}

func (p *Port) IsOpen() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.open
}
