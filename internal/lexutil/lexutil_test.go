package lexutil

import (
	"strconv"
	"testing"
)

func TestQuote(t *testing.T) {
	cases := []struct {
		in   string
		want byte
	}{
		{`it's a "test"`, '\''}, // 1 single, 2 doubles -> fewer singles -> '
		{``, '"'},               // tie -> "
		{`just "quotes"`, '\''},
		{`just 'quotes'`, '"'},
	}
	for _, c := range cases {
		if got := Quote(c.in); got != c.want {
			t.Errorf("Quote(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestEscapeStringNamedEscapes(t *testing.T) {
	got := EscapeString("a\tb\nc", '"')
	want := `a\tb\nc`
	if got != want {
		t.Errorf("EscapeString = %q, want %q", got, want)
	}
}

func TestEscapeStringNonBMP(t *testing.T) {
	// U+1F4A9 PILE OF POO -> UTF-16 surrogate pair, spec.md §4.2/§8 scenario 9.
	got := EscapeString("\U0001F4A9", '"')
	want := `\ud83d\udca9`
	if got != want {
		t.Errorf("EscapeString(non-BMP) = %q, want %q", got, want)
	}
}

func TestEscapeStringMalformedBytesDropped(t *testing.T) {
	malformed := string([]byte{'a', 0xff, 'b'})
	got := EscapeString(malformed, '"')
	if got != "ab" {
		t.Errorf("EscapeString(malformed) = %q, want %q", got, "ab")
	}
}

func TestQuoteStringMinimality(t *testing.T) {
	// spec.md §8 scenario 7: "it's a \"test\"" has 1 unescaped-eligible
	// single quote and 2 double quotes; double-quoting escapes 2, single-
	// quoting escapes 1, so single should win on raw count -- but the
	// canonical example picks whichever yields fewer escapes, here single.
	got := QuoteString(`it's a "test"`)
	want := `'it\'s a "test"'`
	if got != want {
		t.Errorf("QuoteString = %q, want %q", got, want)
	}
}

func TestMemberObjectNumberUgly(t *testing.T) {
	got := MemberObjectNumber("1", 1, false)
	if got != "1." {
		t.Errorf("MemberObjectNumber(ugly) = %q, want %q", got, "1.")
	}
}

func TestMemberObjectNumberPretty(t *testing.T) {
	got := MemberObjectNumber("1", 1, true)
	if got != "(1)" {
		t.Errorf("MemberObjectNumber(pretty) = %q, want %q", got, "(1)")
	}
}

func TestMemberObjectNumberAlreadyDecimal(t *testing.T) {
	if got := MemberObjectNumber("1.5", 1.5, true); got != "1.5" {
		t.Errorf("MemberObjectNumber(decimal, pretty) = %q, want %q", got, "1.5")
	}
	if got := MemberObjectNumber("1.5", 1.5, false); got != "1.5" {
		t.Errorf("MemberObjectNumber(decimal, ugly) = %q, want %q", got, "1.5")
	}
}

// TestQuoteStringRelexesCleanly is the independent round-trip check named
// in spec.md §8's quote-minimality discussion: it feeds QuoteString's
// output back through a real JS lexer instead of re-checking it with the
// escaper's own logic, so a bug shared between Quote/EscapeString/
// QuoteString can't hide from both at once.
func TestQuoteStringRelexesCleanly(t *testing.T) {
	cases := []string{
		`it's a "test"`,
		"\U0001F4A9",
		"a\tb\nc\\d",
		"",
		"back`tick",
		"line1 line2",
	}
	for _, in := range cases {
		quoted := QuoteString(in)
		src := []byte("x = " + quoted + ";")
		if !Relexes(src) {
			t.Errorf("QuoteString(%q) = %s, which does not relex cleanly", in, quoted)
		}
	}
}

func TestShortestRoundTrip(t *testing.T) {
	values := []float64{0, 1, -1, 0.1, 1e21, 1e-7, 123456789.123456}
	for _, v := range values {
		s := Shortest(v)
		if s == "" {
			t.Errorf("Shortest(%v) returned empty string", v)
		}
		if back, err := strconv.ParseFloat(s, 64); err != nil || back != v {
			t.Errorf("Shortest(%v) = %q, which parses back to %v (err %v)", v, s, back, err)
		}
	}
}
