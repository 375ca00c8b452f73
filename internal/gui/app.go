package gui

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"codeberg.org/snonux/spellout/internal"
	"codeberg.org/snonux/spellout/internal/phonetic"
)

const (
	appID = "org.codeberg.snonux.spellout"

	// DefaultDisplayTextSize is the large display font size when none is configured
	DefaultDisplayTextSize float32 = 36
)

// Application represents the main GUI application
type Application struct {
	// Fyne components
	app    fyne.App
	window fyne.Window

	// UI elements
	textInput       *CustomMultiLineEntry
	largeDisplay    *widget.RichText
	displaySegment  *widget.TextSegment
	phoneticDisplay *widget.Label
	statusLabel     *widget.Label
	copyButton      *ttwidget.Button
	clearButton     *ttwidget.Button

	// Derived state, recomputed only when the text changes
	memo     *phonetic.Memo
	spelling string

	config *Config
}

// Config holds GUI application configuration
type Config struct {
	DisplayTextSize float32 // Font size of the large display
	InitialText     string  // Text the input starts with
}

// DefaultConfig returns default GUI configuration
func DefaultConfig() *Config {
	return &Config{
		DisplayTextSize: DefaultDisplayTextSize,
	}
}

// New creates a new GUI application
func New(config *Config) *Application {
	return newApplication(app.NewWithID(appID), config)
}

// newApplication builds the window on top of an existing fyne app
func newApplication(fyneApp fyne.App, config *Config) *Application {
	if config == nil {
		config = DefaultConfig()
	} else if config.DisplayTextSize <= 0 {
		config.DisplayTextSize = DefaultDisplayTextSize
	}

	fyneApp.SetIcon(GetAppIcon())
	fyneApp.Settings().SetTheme(NewDarkTheme(config.DisplayTextSize))

	a := &Application{
		app:    fyneApp,
		config: config,
		memo:   phonetic.NewMemo(),
	}

	a.setupUI()

	if config.InitialText != "" {
		a.textInput.SetText(config.InitialText)
	}
	a.onTextChanged(a.textInput.Text)

	return a
}

// setupUI creates the main user interface
func (a *Application) setupUI() {
	a.window = a.app.NewWindow(fmt.Sprintf("Spellout v%s", internal.Version))
	a.window.SetIcon(GetAppIcon())
	a.window.Resize(fyne.NewSize(900, 760))

	heading := widget.NewRichText(&widget.TextSegment{
		Text: "Enter the text you want to read",
		Style: widget.RichTextStyle{
			Alignment: fyne.TextAlignCenter,
			SizeName:  theme.SizeNameHeadingText,
			TextStyle: fyne.TextStyle{Bold: true},
		},
	})

	a.textInput = NewCustomMultiLineEntry()
	a.textInput.SetPlaceHolder("Your text here")
	a.textInput.SetMinRowsVisible(4)
	a.textInput.OnChanged = a.onTextChanged
	a.textInput.SetOnEscape(func() {
		a.window.Canvas().Unfocus()
	})

	// Tooltips are attached after the tooltip layer exists
	a.copyButton = ttwidget.NewButtonWithIcon("", theme.ContentCopyIcon(), a.onCopy)
	a.clearButton = ttwidget.NewButtonWithIcon("", theme.ContentClearIcon(), a.onClear)
	toolbar := container.NewHBox(layout.NewSpacer(), a.copyButton, a.clearButton)

	// Large display of the raw text
	a.displaySegment = &widget.TextSegment{
		Style: widget.RichTextStyle{
			SizeName:  SizeNameDisplayText,
			TextStyle: fyne.TextStyle{Monospace: true},
		},
	}
	a.largeDisplay = widget.NewRichText(a.displaySegment)
	a.largeDisplay.Wrapping = fyne.TextWrapWord

	border := canvas.NewRectangle(colorBackground)
	border.StrokeColor = colorDivider
	border.StrokeWidth = 1
	border.CornerRadius = 8
	displayBox := container.NewStack(border, container.NewPadded(a.largeDisplay))

	// Phonetic spelling
	a.phoneticDisplay = widget.NewLabel("")
	a.phoneticDisplay.Wrapping = fyne.TextWrapWord

	a.statusLabel = widget.NewLabel("")
	a.statusLabel.Importance = widget.LowImportance

	content := container.NewVBox(
		heading,
		a.textInput,
		toolbar,
		sectionCaption("LARGE DISPLAY"),
		displayBox,
		sectionCaption("PHONETIC SPELLING"),
		a.phoneticDisplay,
		a.statusLabel,
	)

	scroll := container.NewVScroll(container.NewPadded(content))
	a.window.SetContent(fynetooltip.AddWindowToolTipLayer(scroll, a.window.Canvas()))

	a.copyButton.SetToolTip("Copy phonetic spelling (c)")
	a.clearButton.SetToolTip("Clear text (x)")

	a.setupKeyboardShortcuts()
	a.window.Canvas().Focus(a.textInput)
}

// sectionCaption creates the small caption above a display panel
func sectionCaption(text string) *widget.Label {
	caption := widget.NewLabelWithStyle(text, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	caption.Importance = widget.LowImportance
	return caption
}

// onTextChanged refreshes both display panels for the current text
func (a *Application) onTextChanged(text string) {
	a.spelling = a.memo.Transcode(text)

	a.displaySegment.Text = DisplayText(text)
	if text == "" {
		a.displaySegment.Style.ColorName = theme.ColorNamePlaceHolder
	} else {
		a.displaySegment.Style.ColorName = theme.ColorNameForeground
	}
	a.largeDisplay.Refresh()

	a.phoneticDisplay.SetText(phoneticOrPlaceholder(a.spelling))
	a.statusLabel.SetText("")

	if a.spelling == "" {
		a.copyButton.Disable()
		a.clearButton.Disable()
	} else {
		a.copyButton.Enable()
		a.clearButton.Enable()
	}
}

// onCopy puts the phonetic spelling on the clipboard
func (a *Application) onCopy() {
	if a.spelling == "" {
		a.statusLabel.SetText("Nothing to copy")
		return
	}

	a.window.Clipboard().SetContent(a.spelling)
	a.statusLabel.SetText("Phonetic spelling copied to clipboard")
	slog.Debug("copied phonetic spelling", "length", len(a.spelling))
}

// onClear empties the input
func (a *Application) onClear() {
	a.textInput.SetText("")
	a.onTextChanged("")
	a.window.Canvas().Focus(a.textInput)
}

// setupKeyboardShortcuts sets up shortcuts active while the input is not focused
func (a *Application) setupKeyboardShortcuts() {
	a.window.Canvas().SetOnTypedRune(func(r rune) {
		switch r {
		case 'c', 'C':
			a.onCopy()
		case 'x', 'X':
			a.onClear()
		case 'i', 'I':
			a.window.Canvas().Focus(a.textInput)
		}
	})
}

// Run shows the window and blocks until it is closed
func (a *Application) Run() {
	a.window.ShowAndRun()
}
