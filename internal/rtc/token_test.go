package rtc

import (
	"testing"
	"time"
)

func TestPayloadAppendsSingleLineFeed(t *testing.T) {
	got := Payload(DefaultToken)
	if string(got) != "2509011085835\n" {
		t.Fatalf("unexpected payload: %q", got)
	}
	if len(got) != TokenLen+1 {
		t.Fatalf("unexpected payload length: %d", len(got))
	}
}

func TestPayloadIsOpaque(t *testing.T) {
	got := Payload(Token("not-a-date"))
	if string(got) != "not-a-date\n" {
		t.Fatalf("unexpected payload: %q", got)
	}
}

func TestFormatTokenMatchesDefault(t *testing.T) {
	at := time.Date(2025, time.September, 1, 8, 58, 35, 0, time.UTC)
	if got := FormatToken(at); got != DefaultToken {
		t.Fatalf("unexpected token: %q", got)
	}
}

func TestFormatTokenSundayIsSeven(t *testing.T) {
	at := time.Date(2025, time.September, 7, 23, 5, 9, 0, time.UTC)
	got := FormatToken(at)
	if got != "2509077230509" {
		t.Fatalf("unexpected token: %q", got)
	}
	if len(got) != TokenLen {
		t.Fatalf("unexpected token length: %d", len(got))
	}
}
