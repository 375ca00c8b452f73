package gui

import "codeberg.org/snonux/spellout/internal/phonetic"

// Texts shown in place of empty output
const (
	DisplayPlaceholder  = "Your text will appear here."
	PhoneticPlaceholder = "Each character spelled out phonetically will appear here."
)

// DisplayText returns what the large display shows for text
func DisplayText(text string) string {
	if text == "" {
		return DisplayPlaceholder
	}
	return text
}

// PhoneticText returns what the phonetic panel shows for text
func PhoneticText(text string) string {
	return phoneticOrPlaceholder(phonetic.Transcode(text))
}

func phoneticOrPlaceholder(spelling string) string {
	if spelling == "" {
		return PhoneticPlaceholder
	}
	return spelling
}
