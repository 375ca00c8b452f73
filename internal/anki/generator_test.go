package anki

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestDefaultGeneratorOptions(t *testing.T) {
	opts := DefaultGeneratorOptions()

	if opts.OutputPath != "anki_import.csv" {
		t.Errorf("Expected output path 'anki_import.csv', got '%s'", opts.OutputPath)
	}

	if !opts.IncludeHeaders {
		t.Error("Expected IncludeHeaders to be true")
	}
}

func TestNewGenerator(t *testing.T) {
	gen := NewGenerator(nil)
	if gen == nil {
		t.Fatal("NewGenerator returned nil")
	}
	if gen.options == nil {
		t.Error("Generator options should not be nil")
	}

	gen = NewGenerator(&GeneratorOptions{OutputPath: "custom.csv"})
	if gen.options.OutputPath != "custom.csv" {
		t.Errorf("Expected custom output path, got '%s'", gen.options.OutputPath)
	}
}

func TestNewCard(t *testing.T) {
	card := NewCard("Hi 5!")

	if card.Text != "Hi 5!" {
		t.Errorf("Expected text 'Hi 5!', got '%s'", card.Text)
	}

	want := "uppercase H, lowercase i, space, five, exclamation point"
	if card.Phonetic != want {
		t.Errorf("Expected phonetic %q, got %q", want, card.Phonetic)
	}

	if card.Notes != "" {
		t.Errorf("Expected empty notes, got '%s'", card.Notes)
	}
}

func TestAddCard(t *testing.T) {
	gen := NewGenerator(nil)

	gen.AddCard(NewCard("a"))
	gen.AddCard(Card{Text: "b", Phonetic: "lowercase b", Notes: "line 2"})

	cards := gen.GetCards()
	if len(cards) != 2 {
		t.Fatalf("Expected 2 cards, got %d", len(cards))
	}

	if cards[1].Notes != "line 2" {
		t.Errorf("Expected notes 'line 2', got '%s'", cards[1].Notes)
	}
}

func TestGenerateCSV(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "test.csv")

	gen := NewGenerator(&GeneratorOptions{
		OutputPath:     outputPath,
		IncludeHeaders: true,
	})

	gen.AddCard(NewCard("3.14"))
	gen.AddCard(Card{Text: "a, b", Phonetic: "lowercase a, comma, space, lowercase b", Notes: "line 2"})
	gen.AddCard(NewCard("\"q\""))

	if err := gen.GenerateCSV(); err != nil {
		t.Fatalf("GenerateCSV() error = %v", err)
	}

	file, err := os.Open(outputPath)
	if err != nil {
		t.Fatalf("Failed to open CSV: %v", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse CSV: %v", err)
	}

	want := [][]string{
		{"Text", "Phonetic", "Notes"},
		{"3.14", "three, period, one, four", ""},
		{"a, b", "lowercase a, comma, space, lowercase b", "line 2"},
		{"\"q\"", "double quote, lowercase q, double quote", ""},
	}
	if !reflect.DeepEqual(records, want) {
		t.Errorf("CSV records = %v, want %v", records, want)
	}
}

func TestGenerateCSV_NoHeaders(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "test.csv")

	gen := NewGenerator(&GeneratorOptions{OutputPath: outputPath})
	gen.AddCard(NewCard("x"))

	if err := gen.GenerateCSV(); err != nil {
		t.Fatalf("GenerateCSV() error = %v", err)
	}

	content, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("Failed to read CSV: %v", err)
	}

	if strings.Contains(string(content), "Phonetic") {
		t.Error("CSV should not contain a header row")
	}
	if string(content) != "x,lowercase x,\n" {
		t.Errorf("Unexpected CSV content: %q", content)
	}
}

func TestGenerateCSV_Empty(t *testing.T) {
	gen := NewGenerator(&GeneratorOptions{OutputPath: filepath.Join(t.TempDir(), "empty.csv")})

	if err := gen.GenerateCSV(); err == nil {
		t.Error("Expected error when exporting without cards")
	}
}

func TestGenerateCSV_InvalidPath(t *testing.T) {
	gen := NewGenerator(&GeneratorOptions{OutputPath: filepath.Join(t.TempDir(), "missing", "out.csv")})
	gen.AddCard(NewCard("x"))

	if err := gen.GenerateCSV(); err == nil {
		t.Error("Expected error for invalid output path")
	}
}

func TestStats(t *testing.T) {
	gen := NewGenerator(nil)
	gen.AddCard(NewCard("a"))
	gen.AddCard(Card{Text: "b", Phonetic: "lowercase b", Notes: "note"})
	gen.AddCard(NewCard("c"))

	total, withNotes := gen.Stats()
	if total != 3 {
		t.Errorf("Expected 3 total cards, got %d", total)
	}
	if withNotes != 1 {
		t.Errorf("Expected 1 card with notes, got %d", withNotes)
	}
}
