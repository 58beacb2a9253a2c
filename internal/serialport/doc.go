// Package serialport owns host-side serial channel access.
//
// Ownership boundary:
// - serial line settings (baud, framing, modem lines, read timeout)
// - open/close lifecycle of one port
// - draining bytes already buffered by the device
//
// Callers talk to Port and Opener so tests can swap the OS port for a fake.
package serialport
