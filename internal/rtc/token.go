package rtc

import (
	"fmt"
	"time"
)

// DefaultToken is 2025-09-01 08:58:35, weekday 1 (Monday).
const DefaultToken Token = "2509011085835"

// TokenLen is the length the device firmware expects before the line feed.
const TokenLen = 13

// Token is an opaque RTC configuration string.
type Token string

// Payload returns the token bytes followed by exactly one line feed.
func Payload(token Token) []byte {
	out := make([]byte, 0, len(token)+1)
	out = append(out, token...)
	return append(out, '\n')
}

// FormatToken renders t as AAMMDDWHHMMSS with W counting Monday as 1 and Sunday as 7.
func FormatToken(t time.Time) Token {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return Token(fmt.Sprintf("%02d%02d%02d%d%02d%02d%02d",
		t.Year()%100, int(t.Month()), t.Day(), weekday, t.Hour(), t.Minute(), t.Second()))
}
