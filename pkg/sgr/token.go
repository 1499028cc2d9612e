package sgr

import (
	"iter"
	"strings"
)

// Token is one element of a rendered stream: either a run of literal text or
// a control code sequence.
type Token struct {
	Codes Codes
	Text  string
	code  bool
}

// Text returns a literal text token.
func Text(s string) Token {
	return Token{Text: s}
}

// Code returns a control code token.
func Code(c Codes) Token {
	return Token{Codes: c, code: true}
}

// IsCode reports whether the token carries control codes rather than text.
func (t Token) IsCode() bool {
	return t.code
}

// String renders the token.
func (t Token) String() string {
	if t.code {
		return t.Codes.String()
	}
	return t.Text
}

// Merge coalesces every run of adjacent code tokens into a single token whose
// codes are the ordered concatenation of the run. Text tokens pass through
// untouched, so the merged stream has the same terminal effect in fewer bytes.
func Merge(tokens iter.Seq[Token]) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		var accum Codes
		pending := false
		for tok := range tokens {
			if tok.code {
				if !pending {
					accum = tok.Codes.Clone()
					pending = true
				} else {
					accum = accum.Concat(tok.Codes)
				}
				continue
			}
			if pending {
				pending = false
				if !yield(Code(accum)) {
					return
				}
			}
			if !yield(tok) {
				return
			}
		}
		if pending {
			yield(Code(accum))
		}
	}
}

// Join renders every token and concatenates the results.
func Join(tokens iter.Seq[Token]) string {
	var b strings.Builder
	for tok := range tokens {
		b.WriteString(tok.String())
	}
	return b.String()
}
