package pathdata

import (
	"iter"

	"github.com/arloliu/pathpack/format"
)

// TokenKind represents the kind of a path data token.
type TokenKind uint8

const (
	TokenCommand TokenKind = iota + 1 // TokenCommand is a single command letter.
	TokenNumber                       // TokenNumber is a number literal.
)

func (k TokenKind) String() string {
	switch k {
	case TokenCommand:
		return "COMMAND"
	case TokenNumber:
		return "NUMBER"
	default:
		return "UNKNOWN"
	}
}

// Token is a lexical element of path data.
type Token struct {
	Kind TokenKind
	// Text is the command letter or the number literal as written.
	Text string
	// Offset is the byte offset of the token in the input.
	Offset int
}

// Tokenize returns an iterator over the tokens of a path data string.
//
// Numbers follow the grammar [+-]?[0-9]*.?[0-9]+([Ee][+-]?[0-9]+)? and need no
// separator between them: "1.5.5" yields 1.5 and .5, and "10-5" yields 10 and -5.
// Every byte that starts neither a command letter nor a number is skipped, which
// makes whitespace and commas separators. Tokenize never fails; malformed
// numbers are reported by Group.
func Tokenize(s string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for i := 0; i < len(s); {
			if format.IsCommandLetter(s[i]) {
				if !yield(Token{Kind: TokenCommand, Text: s[i : i+1], Offset: i}) {
					return
				}
				i++

				continue
			}

			if end := scanNumber(s, i); end > i {
				if !yield(Token{Kind: TokenNumber, Text: s[i:end], Offset: i}) {
					return
				}
				i = end

				continue
			}

			i++
		}
	}
}

// scanNumber returns the end offset of the longest number literal starting at
// start, or start if there is none.
func scanNumber(s string, start int) int {
	i := start
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	intEnd := scanDigits(s, i)
	end := intEnd
	switch {
	case intEnd < len(s) && s[intEnd] == '.' && scanDigits(s, intEnd+1) > intEnd+1:
		end = scanDigits(s, intEnd+1)
	case intEnd == i:
		// neither digits nor a fraction
		return start
	}

	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		j := end + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if expEnd := scanDigits(s, j); expEnd > j {
			end = expEnd
		}
	}

	return end
}

func scanDigits(s string, i int) int {
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}

	return i
}
