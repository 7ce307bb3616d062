// Package checksum produces the tamper-evidence value attached to issued
// tickets. It is a plain 32-bit rolling hash: good enough to detect a
// mangled or hand-edited payload, useless against a deliberate forger.
// Never treat a matching checksum as authentication.
package checksum

import (
	"strconv"
	"strings"
	"unicode/utf16"
)

// Hash joins parts with "-" and folds the result through a polynomial
// rolling hash (h = h*31 + codeUnit) with 32-bit signed wraparound,
// returning the absolute value as lowercase hex. Deterministic and
// order-sensitive: Hash("a", "b") != Hash("b", "a").
//
// The hash runs over UTF-16 code units so checksums stay reproducible
// against payloads produced by JavaScript clients.
func Hash(parts ...string) string {
	data := strings.Join(parts, "-")

	var h int32
	for _, c := range utf16.Encode([]rune(data)) {
		h = h*31 + int32(c)
	}

	v := int64(h)
	if v < 0 {
		v = -v
	}
	return strconv.FormatInt(v, 16)
}
