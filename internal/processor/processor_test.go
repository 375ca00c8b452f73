package processor

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"codeberg.org/snonux/spellout/internal/cli"
	"codeberg.org/snonux/spellout/internal/testutil"
)

func newTestProcessor(t *testing.T) (*Processor, *bytes.Buffer) {
	t.Helper()

	flags := cli.NewFlags()
	flags.OutputDir = t.TempDir()
	p := NewProcessor(flags)

	var buf bytes.Buffer
	p.SetOutput(&buf)
	return p, &buf
}

func TestNewProcessor(t *testing.T) {
	flags := cli.NewFlags()
	p := NewProcessor(flags)

	if p == nil {
		t.Fatal("NewProcessor returned nil")
	}
	if p.flags != flags {
		t.Error("Processor flags not set correctly")
	}
	if p.out != os.Stdout {
		t.Error("Expected output to default to stdout")
	}
	if len(p.Cards()) != 0 {
		t.Errorf("Expected no cards, got %d", len(p.Cards()))
	}
}

func TestProcessText(t *testing.T) {
	p, buf := newTestProcessor(t)

	if err := p.ProcessText("Hi 5!"); err != nil {
		t.Fatalf("ProcessText failed: %v", err)
	}

	want := "uppercase H, lowercase i, space, five, exclamation point\n"
	if buf.String() != want {
		t.Errorf("Output = %q, want %q", buf.String(), want)
	}

	cards := p.Cards()
	if len(cards) != 1 {
		t.Fatalf("Expected 1 card, got %d", len(cards))
	}
	if cards[0].Text != "Hi 5!" {
		t.Errorf("Card text = %q", cards[0].Text)
	}
	if cards[0].Phonetic != strings.TrimSuffix(want, "\n") {
		t.Errorf("Card phonetic = %q", cards[0].Phonetic)
	}
}

func TestProcessText_Empty(t *testing.T) {
	p, buf := newTestProcessor(t)

	if err := p.ProcessText(""); err != nil {
		t.Fatalf("ProcessText failed: %v", err)
	}
	if buf.String() != "\n" {
		t.Errorf("Output = %q, want a single empty line", buf.String())
	}
	if len(p.Cards()) != 0 {
		t.Error("Empty text should not be recorded")
	}
}

func TestProcessText_Explain(t *testing.T) {
	p, buf := newTestProcessor(t)
	p.flags.Explain = true

	if err := p.ProcessText("a\n?"); err != nil {
		t.Fatalf("ProcessText failed: %v", err)
	}

	want := "'a'\tlowercase\tlowercase a\n" +
		"'\\n'\tnewline\tnew line\n" +
		"'?'\tpunctuation\tquestion mark\n"
	if buf.String() != want {
		t.Errorf("Output = %q, want %q", buf.String(), want)
	}
}

func TestProcessStdin(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"single line", "ok\n", "lowercase o, lowercase k\n"},
		{"keeps inner newlines", "a\nb\n", "lowercase a, new line, lowercase b\n"},
		{"crlf", "1\r\n", "one\n"},
		{"no trailing newline", "Z", "uppercase Z\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, buf := newTestProcessor(t)

			if err := p.ProcessStdin(strings.NewReader(tt.input)); err != nil {
				t.Fatalf("ProcessStdin failed: %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("Output = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestProcessBatch(t *testing.T) {
	p, buf := newTestProcessor(t)
	p.flags.BatchFile = testutil.CreateBatchFile(t, "ab", "", "  7  ", "#")

	if err := p.ProcessBatch(); err != nil {
		t.Fatalf("ProcessBatch failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"1/3: ab\nlowercase a, lowercase b\n",
		"2/3: 7\nseven\n",
		"3/3: #\nhash\n",
		"=== Batch Processing Summary ===",
		"Total texts: 3",
		"Processed: 3",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q:\n%s", want, out)
		}
	}

	cards := p.Cards()
	if len(cards) != 3 {
		t.Fatalf("Expected 3 cards, got %d", len(cards))
	}
	if cards[1].Notes != "texts.txt, line 3" {
		t.Errorf("Card notes = %q, want %q", cards[1].Notes, "texts.txt, line 3")
	}
}

func TestProcessBatch_MissingFile(t *testing.T) {
	p, _ := newTestProcessor(t)
	p.flags.BatchFile = filepath.Join(t.TempDir(), "missing.txt")

	err := p.ProcessBatch()
	if err == nil {
		t.Fatal("Expected error for missing batch file")
	}
	if !strings.Contains(err.Error(), "failed to read batch file") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestGenerateAnkiFile_NoCards(t *testing.T) {
	p, _ := newTestProcessor(t)

	if _, err := p.GenerateAnkiFile(); err == nil {
		t.Error("Expected error when nothing was processed")
	}
}

func TestGenerateAnkiFile_CSV(t *testing.T) {
	p, _ := newTestProcessor(t)
	p.flags.OutputDir = filepath.Join(p.flags.OutputDir, "nested", "exports")
	p.flags.AnkiCSV = true

	if err := p.ProcessText("Ok."); err != nil {
		t.Fatalf("ProcessText failed: %v", err)
	}

	path, err := p.GenerateAnkiFile()
	if err != nil {
		t.Fatalf("GenerateAnkiFile failed: %v", err)
	}

	if filepath.Base(path) != "anki_import.csv" {
		t.Errorf("Unexpected path: %s", path)
	}
	testutil.AssertFileContains(t, path, "Text,Phonetic,Notes")
	testutil.AssertFileContains(t, path, "Ok.,\"uppercase O, lowercase k, period\"")
}

func TestGenerateAnkiFile_APKG(t *testing.T) {
	p, _ := newTestProcessor(t)
	p.flags.DeckName = "My Deck"

	if err := p.ProcessText("x"); err != nil {
		t.Fatalf("ProcessText failed: %v", err)
	}

	path, err := p.GenerateAnkiFile()
	if err != nil {
		t.Fatalf("GenerateAnkiFile failed: %v", err)
	}

	if want := filepath.Join(p.flags.OutputDir, "My_Deck.apkg"); path != want {
		t.Errorf("Path = %s, want %s", path, want)
	}
	testutil.AssertFileExists(t, path)
	testutil.AssertFileNotExists(t, filepath.Join(p.flags.OutputDir, "anki_import.csv"))
}
