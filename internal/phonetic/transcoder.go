package phonetic

import "strings"

// Separator joins the tokens of a phonetic description
const Separator = ", "

// Category is the classification of a single character
type Category int

const (
	NewLine Category = iota
	Space
	Digit
	Punctuation
	Lowercase
	Uppercase
	Symbol
)

// String returns the category name
func (c Category) String() string {
	switch c {
	case NewLine:
		return "newline"
	case Space:
		return "space"
	case Digit:
		return "digit"
	case Punctuation:
		return "punctuation"
	case Lowercase:
		return "lowercase"
	case Uppercase:
		return "uppercase"
	default:
		return "symbol"
	}
}

// Classify returns the category of r. The checks run in a fixed order and
// the first match wins. Tabs, carriage returns and other whitespace are not
// special and end up as Symbol.
func Classify(r rune) Category {
	switch {
	case r == '\n':
		return NewLine
	case r == ' ':
		return Space
	case r >= '0' && r <= '9':
		return Digit
	}

	if _, ok := punctuationNames[r]; ok {
		return Punctuation
	}

	switch {
	case r >= 'a' && r <= 'z':
		return Lowercase
	case r >= 'A' && r <= 'Z':
		return Uppercase
	default:
		return Symbol
	}
}

// Token returns the phoneme token for a single character
func Token(r rune) string {
	switch Classify(r) {
	case NewLine:
		return "new line"
	case Space:
		return "space"
	case Digit:
		return digitNames[r]
	case Punctuation:
		return punctuationNames[r]
	case Lowercase:
		return "lowercase " + string(r)
	case Uppercase:
		return "uppercase " + string(r)
	default:
		return "symbol " + string(r)
	}
}

// Tokens returns one token per code point of text, in order.
// Invalid UTF-8 bytes are reported as U+FFFD by range and spelled as symbols.
func Tokens(text string) []string {
	if text == "" {
		return nil
	}

	tokens := make([]string, 0, len(text))
	for _, r := range text {
		tokens = append(tokens, Token(r))
	}
	return tokens
}

// Transcode spells out every character of text, e.g. "3.14" becomes
// "three, period, one, four". The empty string maps to the empty string.
func Transcode(text string) string {
	return strings.Join(Tokens(text), Separator)
}
