package processor

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"codeberg.org/snonux/spellout/internal"
	"codeberg.org/snonux/spellout/internal/anki"
	"codeberg.org/snonux/spellout/internal/batch"
	"codeberg.org/snonux/spellout/internal/cli"
	"codeberg.org/snonux/spellout/internal/gui"
	"codeberg.org/snonux/spellout/internal/phonetic"
)

// Processor handles the main text processing logic
type Processor struct {
	flags *cli.Flags
	out   io.Writer
	cards []anki.Card
}

// NewProcessor creates a new text processor writing to stdout
func NewProcessor(flags *cli.Flags) *Processor {
	return &Processor{
		flags: flags,
		out:   os.Stdout,
		cards: make([]anki.Card, 0),
	}
}

// SetOutput redirects the spelled out results
func (p *Processor) SetOutput(w io.Writer) {
	p.out = w
}

// Cards returns the cards collected for export so far
func (p *Processor) Cards() []anki.Card {
	return p.cards
}

// ProcessText spells out a single text and records it for export
func (p *Processor) ProcessText(text string) error {
	if err := p.writeSpelling(text); err != nil {
		return err
	}

	if text != "" {
		p.cards = append(p.cards, anki.NewCard(text))
	}
	return nil
}

// ProcessStdin reads one text from r and spells it out
func (p *Processor) ProcessStdin(r io.Reader) error {
	text, err := batch.ReadText(r)
	if err != nil {
		return err
	}

	slog.Debug("read text from stdin", "runes", len([]rune(text)))
	return p.ProcessText(text)
}

// ProcessBatch spells out every text of the batch file
func (p *Processor) ProcessBatch() error {
	entries, err := batch.ReadBatchFile(p.flags.BatchFile)
	if err != nil {
		return err
	}

	slog.Debug("read batch file", "file", p.flags.BatchFile, "entries", len(entries))

	for i, entry := range entries {
		if _, err := fmt.Fprintf(p.out, "%d/%d: %s\n", i+1, len(entries), entry.Text); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if err := p.writeSpelling(entry.Text); err != nil {
			return err
		}

		card := anki.NewCard(entry.Text)
		card.Notes = fmt.Sprintf("%s, line %d", filepath.Base(p.flags.BatchFile), entry.Line)
		p.cards = append(p.cards, card)
	}

	fmt.Fprintf(p.out, "\n=== Batch Processing Summary ===\n")
	fmt.Fprintf(p.out, "Total texts: %d\n", len(entries))
	fmt.Fprintf(p.out, "Processed: %d\n", len(entries))
	fmt.Fprintf(p.out, "================================\n")

	return nil
}

// writeSpelling prints either the joined description or, with --explain,
// one tab separated line per character
func (p *Processor) writeSpelling(text string) error {
	if !p.flags.Explain {
		if _, err := fmt.Fprintln(p.out, phonetic.Transcode(text)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	for _, r := range text {
		if _, err := fmt.Fprintf(p.out, "%q\t%s\t%s\n", r, phonetic.Classify(r), phonetic.Token(r)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

// GenerateAnkiFile generates the Anki import file and returns the output path
func (p *Processor) GenerateAnkiFile() (string, error) {
	if len(p.cards) == 0 {
		return "", fmt.Errorf("no texts to export")
	}

	if err := os.MkdirAll(p.flags.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	csvPath := filepath.Join(p.flags.OutputDir, "anki_import.csv")
	gen := anki.NewGenerator(&anki.GeneratorOptions{
		OutputPath:     csvPath,
		IncludeHeaders: true,
	})
	for _, card := range p.cards {
		gen.AddCard(card)
	}

	var outputPath string
	if p.flags.AnkiCSV {
		outputPath = csvPath
		if err := gen.GenerateCSV(); err != nil {
			return "", fmt.Errorf("failed to generate CSV: %w", err)
		}
	} else {
		outputPath = filepath.Join(p.flags.OutputDir, fmt.Sprintf("%s.apkg", internal.SanitizeFilename(p.flags.DeckName)))
		if err := gen.GenerateAPKG(outputPath, p.flags.DeckName); err != nil {
			return "", fmt.Errorf("failed to generate APKG: %w", err)
		}
	}

	total, withNotes := gen.Stats()
	slog.Info("generated anki cards", "cards", total, "with_notes", withNotes, "path", outputPath)

	return outputPath, nil
}

// RunGUIMode launches the GUI application, optionally prefilled with text
func (p *Processor) RunGUIMode(initialText string) error {
	app := gui.New(&gui.Config{
		DisplayTextSize: p.flags.DisplayTextSize,
		InitialText:     initialText,
	})
	app.Run()

	return nil
}
