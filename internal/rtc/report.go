package rtc

import (
	"fmt"
	"io"
	"unicode/utf8"
)

const undecodableResponse = "Response contains binary data that cannot be decoded as UTF-8"

// Result is what one Send put on the wire and got back.
type Result struct {
	Token    Token
	Sent     []byte
	Response []byte
}

// Decoded returns the response as text when it is valid UTF-8.
func (r Result) Decoded() (string, bool) {
	if !utf8.Valid(r.Response) {
		return "", false
	}
	return string(r.Response), true
}

func writeSent(w io.Writer, token Token) {
	fmt.Fprintf(w, "Sent RTC configuration: %s\n", token)
}

func writeResponse(w io.Writer, r Result) {
	fmt.Fprintf(w, "Response (raw bytes): %q\n", r.Response)
	if text, ok := r.Decoded(); ok {
		fmt.Fprintf(w, "Response (decoded): %s\n", text)
		return
	}
	fmt.Fprintln(w, undecodableResponse)
}
