package lexutil

import "github.com/tdewolff/parse/v2/js"

// Relexes is a cheap sanity check used only by tests: it re-lexes rendered
// JavaScript text and reports whether the lexer reaches EOF without
// producing an error token. It does not validate grammar, only tokenizability,
// which is enough to catch gross escaping mistakes (an unescaped quote or
// backtick that would otherwise terminate a literal early).
//
// Modeled on the teacher's internal/transform/scope-css.go, which drives
// tdewolff/parse's lexer the same way: construct a Lexer over a byte
// buffer and loop calling Next() until the token stream is exhausted.
func Relexes(src []byte) bool {
	l := js.NewLexer(js.NewInput(append([]byte(nil), src...)))
	for {
		tt, _ := l.Next()
		if tt == js.ErrorToken {
			return l.Err() == nil || l.Err().Error() == "EOF"
		}
	}
}
