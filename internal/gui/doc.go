// Package gui is the fyne desktop front end of spellout: a text box, a large
// display of the typed text and its phonetic spelling, recomputed on every
// keystroke.
package gui
