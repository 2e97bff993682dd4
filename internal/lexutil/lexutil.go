// Package lexutil implements the lexical utilities of spec.md §4.2: quote
// selection, WTF-8-aware string escaping, and shortest round-trip numeric
// formatting.
//
// Grounded on the teacher's internal/printer/utils.go, whose escape helpers
// (escapeBackticks, escapeExistingEscapes, escapeSingleQuote,
// escapeDoubleQuote) are small, single-purpose string functions chained by
// a caller — the shape kept here, generalized from Astro's fixed
// backtick/brace escaping to the full WTF-8 table spec.md §4.2 names.
package lexutil

import (
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Quote picks the quote character that minimizes escapes in s: the one
// whose occurrence count is less than or equal to the other's, tie-broken
// to double quote (spec.md §4.2).
func Quote(s string) byte {
	var singles, doubles int
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\'':
			singles++
		case '"':
			doubles++
		}
	}
	if singles < doubles {
		return '\''
	}
	return '"'
}

var namedEscapes = map[rune]string{
	0:    `\0`,
	'\b': `\b`,
	'\t': `\t`,
	'\n': `\n`,
	'\v': `\v`,
	'\f': `\f`,
	'\r': `\r`,
}

// EscapeString renders s as the body of a string literal quoted with
// quote, per spec.md §4.2's WTF-8 table. Malformed UTF-8 bytes are dropped.
func EscapeString(s string, quote byte) string {
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			// Malformed byte: drop it (spec.md §4.2, §7: "swallowed
			// silently per WTF-8 rules").
			i++
			continue
		}
		i += size

		if esc, ok := namedEscapes[r]; ok {
			b.WriteString(esc)
			continue
		}
		if r == rune(quote) {
			b.WriteByte('\\')
			b.WriteRune(r)
			continue
		}
		if r == '\\' {
			b.WriteString(`\\`)
			continue
		}
		if r >= 0x20 && r <= 0x7E {
			b.WriteRune(r)
			continue
		}
		if r >= 0x20 && r <= 0xFF {
			b.WriteString(escapeHexByte(byte(r)))
			continue
		}
		if r <= 0xFFFF {
			b.WriteString(escapeUnit(uint16(r)))
			continue
		}
		// Non-BMP: emit as a UTF-16 surrogate pair, never `\u{...}`.
		hi, lo := utf16.EncodeRune(r)
		b.WriteString(escapeUnit(uint16(hi)))
		b.WriteString(escapeUnit(uint16(lo)))
	}
	return b.String()
}

func escapeHexByte(b byte) string {
	const hex = "0123456789abcdef"
	return string([]byte{'\\', 'x', hex[b>>4], hex[b&0xF]})
}

func escapeUnit(u uint16) string {
	const hex = "0123456789abcdef"
	return string([]byte{
		'\\', 'u',
		hex[(u>>12)&0xF], hex[(u>>8)&0xF], hex[(u>>4)&0xF], hex[u&0xF],
	})
}

// QuoteString returns the full quoted literal (including delimiters) for
// s, choosing whichever quote minimizes escapes.
func QuoteString(s string) string {
	q := Quote(s)
	return string(q) + EscapeString(s, q) + string(q)
}

// Shortest computes the minimum-length decimal string that round-trips f,
// spec.md §4.2's "shortest decimal" used for numeric literals in ugly
// mode. strconv.FormatFloat's -1 precision is the standard library's own
// shortest-round-trip digit algorithm (Ryu-equivalent); the plain and the
// exponent spelling of those digits are both built (the exponent without a
// `+` or leading zeros, `1e21`, `1e-7`) and the shorter one is returned,
// the plain one on a tie. No third-party numeric
// formatter in the example corpus exposes an equivalent primitive for a
// bare float64; the one candidate observed, tdewolff/parse/v2/strconv, was
// not used here because its exact API could not be verified against a
// module cache in this environment, and getting the core's hottest,
// highest-fan-in helper wrong would be worse than the one justified
// stdlib use recorded in DESIGN.md.
func Shortest(f float64) string {
	fixed := strconv.FormatFloat(f, 'f', -1, 64)
	mant, exp, ok := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
	if !ok {
		return fixed
	}
	sign := ""
	if exp[0] == '-' {
		sign = "-"
	}
	digits := strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	if short := mant + "e" + sign + digits; len(short) < len(fixed) {
		return short
	}
	return fixed
}

// isDecimalLike reports whether a numeric literal's text already contains
// a `.` or an exponent marker, the disambiguation spec.md §4.2 keys off
// when a numeric literal is the object of a non-computed member access.
func isDecimalLike(text string) bool {
	return strings.ContainsAny(text, ".eE")
}

// MemberObjectNumber implements spec.md §4.2's member-access disambiguation
// for a numeric literal used as the object of a non-computed member
// access: in ugly mode, a shortest form lacking `.`/`e` gets a trailing
// `.` appended (`1.foo` -> `1..foo`); in pretty mode, a `raw` lacking
// `.`/`e` is parenthesized instead of suffixed.
func MemberObjectNumber(raw string, value float64, pretty bool) string {
	if pretty {
		if isDecimalLike(raw) {
			return raw
		}
		return "(" + raw + ")"
	}
	shortest := Shortest(value)
	if isDecimalLike(shortest) {
		return shortest
	}
	return shortest + "."
}
