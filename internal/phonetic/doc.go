// Package phonetic spells text out character by character. Each character
// is classified (new line, space, digit, punctuation, lowercase, uppercase or
// symbol) and turned into a short English token such as "period" or
// "uppercase A". The tokens of a text are joined into one comma separated
// description.
package phonetic
