// Package rtc sends a real-time-clock configuration token to a device over serial.
//
// Ownership boundary:
// - token and wire payload shape
// - send sequence timing (boot wait, response wait)
// - human-readable send/response report
//
// The device parses the token as AAMMDDWHHMMSS. Tokens are sent as given and never
// validated here.
package rtc
