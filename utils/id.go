package utils

import (
	"crypto/rand"
	"strconv"
	"strings"
	"time"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateOrderID returns a client-side order identifier of the form
// ORD-<base36 millisecond timestamp>-<4 random base36 chars>, uppercased.
// The timestamp prefix keeps identifiers collision-resistant across
// sessions; the random suffix covers orders placed within the same
// millisecond.
func GenerateOrderID() string {
	timestamp := strconv.FormatInt(time.Now().UnixMilli(), 36)

	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing is effectively impossible; fall back to the
		// low timestamp bits rather than returning an error from an ID
		// generator.
		now := time.Now().UnixNano()
		for i := range buf {
			buf[i] = byte(now >> (8 * i))
		}
	}
	suffix := make([]byte, 4)
	for i, b := range buf {
		suffix[i] = base36[int(b)%len(base36)]
	}

	return strings.ToUpper("ORD-" + timestamp + "-" + string(suffix))
}
