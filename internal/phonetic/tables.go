package phonetic

// digitNames maps ASCII digits to their English names
var digitNames = map[rune]string{
	'0': "zero",
	'1': "one",
	'2': "two",
	'3': "three",
	'4': "four",
	'5': "five",
	'6': "six",
	'7': "seven",
	'8': "eight",
	'9': "nine",
}

// punctuationNames is the fixed set of punctuation and symbol characters
// that have a dedicated name
var punctuationNames = map[rune]string{
	'.':  "period",
	',':  "comma",
	'?':  "question mark",
	'!':  "exclamation point",
	':':  "colon",
	';':  "semicolon",
	'-':  "dash",
	'_':  "underscore",
	'@':  "at sign",
	'#':  "hash",
	'$':  "dollar sign",
	'%':  "percent sign",
	'&':  "ampersand",
	'(':  "left parenthesis",
	')':  "right parenthesis",
	'[':  "left bracket",
	']':  "right bracket",
	'{':  "left brace",
	'}':  "right brace",
	'/':  "slash",
	'\\': "backslash",
	'+':  "plus",
	'=':  "equals",
	'"':  "double quote",
	'\'': "apostrophe",
}
