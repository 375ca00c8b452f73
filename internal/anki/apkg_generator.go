package anki

import (
	"archive/zip"
	"crypto/sha1"
	"database/sql"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

const (
	// fieldSeparator separates note fields inside the notes.flds column
	fieldSeparator = "\x1f"

	deckDescription = "Character by character spelling cards created by Spellout"
)

// APKGGenerator creates Anki package files (.apkg)
type APKGGenerator struct {
	deckName string
	deckID   int64
	modelID  int64
	cards    []Card
}

// NewAPKGGenerator creates a new APKG generator
func NewAPKGGenerator(deckName string) *APKGGenerator {
	// Generate IDs based on timestamp to ensure uniqueness
	now := time.Now().UnixMilli()
	return &APKGGenerator{
		deckName: deckName,
		deckID:   now,
		modelID:  now + 1,
		cards:    make([]Card, 0),
	}
}

// AddCard adds a card to the generator
func (g *APKGGenerator) AddCard(card Card) {
	g.cards = append(g.cards, card)
}

// GenerateAPKG creates an .apkg file
func (g *APKGGenerator) GenerateAPKG(outputPath string) error {
	if len(g.cards) == 0 {
		return fmt.Errorf("no cards to export")
	}

	// Create temporary directory for building the package
	tempDir, err := os.MkdirTemp("", "spellout_export_*")
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	// Spelling cards carry no media, but Anki expects the mapping file
	if err := os.WriteFile(filepath.Join(tempDir, "media"), []byte("{}"), 0644); err != nil {
		return fmt.Errorf("failed to create media mapping: %w", err)
	}

	dbPath := filepath.Join(tempDir, "collection.anki2")
	if err := g.createDatabase(dbPath); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}

	if err := g.createZipPackage(tempDir, outputPath); err != nil {
		return fmt.Errorf("failed to create zip package: %w", err)
	}

	return nil
}

// createDatabase creates the Anki SQLite database
func (g *APKGGenerator) createDatabase(dbPath string) error {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := g.createTables(db); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	if err := g.insertCollection(db); err != nil {
		return fmt.Errorf("failed to insert collection: %w", err)
	}

	if err := g.insertNotesAndCards(db); err != nil {
		return fmt.Errorf("failed to insert notes and cards: %w", err)
	}

	return nil
}

// collectionSchema is the Anki 2.1 legacy collection layout (schema 11)
const collectionSchema = `
CREATE TABLE col (id integer PRIMARY KEY, crt integer NOT NULL, mod integer NOT NULL,
	scm integer NOT NULL, ver integer NOT NULL, dty integer NOT NULL, usn integer NOT NULL,
	ls integer NOT NULL, conf text NOT NULL, models text NOT NULL, decks text NOT NULL,
	dconf text NOT NULL, tags text NOT NULL);
CREATE TABLE notes (id integer PRIMARY KEY, guid text NOT NULL, mid integer NOT NULL,
	mod integer NOT NULL, usn integer NOT NULL, tags text NOT NULL, flds text NOT NULL,
	sfld text NOT NULL, csum integer NOT NULL, flags integer NOT NULL, data text NOT NULL);
CREATE TABLE cards (id integer PRIMARY KEY, nid integer NOT NULL, did integer NOT NULL,
	ord integer NOT NULL, mod integer NOT NULL, usn integer NOT NULL, type integer NOT NULL,
	queue integer NOT NULL, due integer NOT NULL, ivl integer NOT NULL, factor integer NOT NULL,
	reps integer NOT NULL, lapses integer NOT NULL, left integer NOT NULL, odue integer NOT NULL,
	odid integer NOT NULL, flags integer NOT NULL, data text NOT NULL);
CREATE TABLE revlog (id integer PRIMARY KEY, cid integer NOT NULL, usn integer NOT NULL,
	ease integer NOT NULL, ivl integer NOT NULL, lastIvl integer NOT NULL,
	factor integer NOT NULL, time integer NOT NULL, type integer NOT NULL);
CREATE TABLE graves (usn integer NOT NULL, oid integer NOT NULL, type integer NOT NULL);
CREATE INDEX ix_notes_csum ON notes (csum);
CREATE INDEX ix_notes_usn ON notes (usn);
CREATE INDEX ix_cards_usn ON cards (usn);
CREATE INDEX ix_cards_nid ON cards (nid);
CREATE INDEX ix_cards_sched ON cards (did, queue, due);
CREATE INDEX ix_revlog_usn ON revlog (usn);
CREATE INDEX ix_revlog_cid ON revlog (cid);
`

// createTables creates the required Anki database tables
func (g *APKGGenerator) createTables(db *sql.DB) error {
	// go-sqlite3 runs every statement of a multi-statement Exec
	if _, err := db.Exec(collectionSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// deckConfig returns the JSON object Anki stores for a single deck
func deckConfig(id int64, name, desc string, mod int64) map[string]interface{} {
	// The arrays are [learningCount, reviewCount] for today's stats
	return map[string]interface{}{
		"id":               id,
		"name":             name,
		"mod":              mod,
		"desc":             desc,
		"collapsed":        false,
		"dyn":              0,
		"conf":             1,
		"usn":              0,
		"newToday":         []int{0, 0},
		"revToday":         []int{0, 0},
		"lrnToday":         []int{0, 0},
		"timeToday":        []int{0, 0},
		"browserCollapsed": false,
		"extendNew":        10,
		"extendRev":        50,
	}
}

// insertCollection inserts the collection metadata
func (g *APKGGenerator) insertCollection(db *sql.DB) error {
	now := time.Now().Unix()

	decks := map[string]interface{}{
		"1": deckConfig(1, "Default", "", now),
	}
	decks[fmt.Sprintf("%d", g.deckID)] = deckConfig(g.deckID, g.deckName, deckDescription, now)
	decksJSON, err := json.Marshal(decks)
	if err != nil {
		return err
	}

	models := map[string]interface{}{
		fmt.Sprintf("%d", g.modelID): g.createNoteTypeConfig(),
	}
	modelsJSON, err := json.Marshal(models)
	if err != nil {
		return err
	}

	conf := map[string]interface{}{
		"nextPos":       1,
		"estTimes":      true,
		"activeDecks":   []int64{1},
		"sortType":      "noteFld",
		"sortBackwards": false,
		"addToCur":      true,
		"curDeck":       1,
		"newSpread":     0,
		"dueCounts":     true,
		"collapseTime":  1200,
		"timeLim":       0,
		"schedVer":      1,
		"curModel":      fmt.Sprintf("%d", g.modelID),
		"dayLearnFirst": false,
	}
	confJSON, err := json.Marshal(conf)
	if err != nil {
		return err
	}

	dconf := map[string]interface{}{"1": defaultDeckOptions(now)}
	dconfJSON, err := json.Marshal(dconf)
	if err != nil {
		return err
	}

	query := `INSERT INTO col VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = db.Exec(query,
		1,        // id
		now,      // crt
		now*1000, // mod
		now*1000, // scm
		11,       // ver (schema version)
		0,        // dty
		0,        // usn
		0,        // ls
		string(confJSON),
		string(modelsJSON),
		string(decksJSON),
		string(dconfJSON),
		"{}", // tags
	)
	return err
}

// defaultDeckOptions returns the scheduling options group every deck uses
func defaultDeckOptions(mod int64) map[string]interface{} {
	newCards := map[string]interface{}{
		"delays": []int{1, 10}, "ints": []int{1, 4, 7}, "initialFactor": 2500,
		"perDay": 20, "order": 1, "bury": true, "separate": true,
	}
	lapses := map[string]interface{}{
		"delays": []int{10}, "mult": 0, "minInt": 1, "leechFails": 8, "leechAction": 0,
	}
	reviews := map[string]interface{}{
		"perDay": 100, "ease4": 1.3, "fuzz": 0.05, "maxIvl": 36500, "ivlFct": 1,
		"bury": true, "minSpace": 1,
	}

	return map[string]interface{}{
		"id": 1, "name": "Default", "dyn": 0, "usn": 0, "mod": mod,
		"new": newCards, "lapse": lapses, "rev": reviews,
		"timer": 0, "maxTaken": 60, "autoplay": false, "replayq": false,
	}
}

// noteField describes one field of the note type
func noteField(name string, ord, size int) map[string]interface{} {
	return map[string]interface{}{
		"name":   name,
		"ord":    ord,
		"sticky": false,
		"rtl":    false,
		"font":   "Arial",
		"size":   size,
		"media":  []string{},
	}
}

// createNoteTypeConfig creates the note type configuration
func (g *APKGGenerator) createNoteTypeConfig() map[string]interface{} {
	return map[string]interface{}{
		"id":    g.modelID,
		"name":  "Spelling from Spellout (Spell + Read)",
		"type":  0,
		"mod":   time.Now().Unix(),
		"usn":   -1,
		"sortf": 0,
		"did":   g.deckID,
		"req":   [][]interface{}{{0, "all", []int{0}}, {1, "all", []int{1}}},
		"vers":  []int{},
		"tags":  []string{},
		"latexPre": `\documentclass[12pt]{article}
\special{papersize=3in,5in}
\usepackage[utf8]{inputenc}
\usepackage{amssymb,amsmath}
\pagestyle{empty}
\setlength{\parindent}{0in}
\begin{document}`,
		"latexPost": `\end{document}`,
		"flds": []map[string]interface{}{
			noteField("Text", 0, 28),
			noteField("Phonetic", 1, 20),
			noteField("Notes", 2, 16),
		},
		"tmpls": []map[string]interface{}{
			{
				"name":  "Spell it",
				"ord":   0,
				"qfmt":  g.getSpellFrontTemplate(),
				"afmt":  g.getSpellBackTemplate(),
				"did":   nil,
				"bqfmt": "",
				"bafmt": "",
			},
			{
				"name":  "Read it",
				"ord":   1,
				"qfmt":  g.getReadFrontTemplate(),
				"afmt":  g.getReadBackTemplate(),
				"did":   nil,
				"bqfmt": "",
				"bafmt": "",
			},
		},
		"css": g.getCSS(),
	}
}

// getSpellFrontTemplate shows the text and asks for its spelling
func (g *APKGGenerator) getSpellFrontTemplate() string {
	return `<div class="front">
<div class="text">{{Text}}</div>
</div>`
}

func (g *APKGGenerator) getSpellBackTemplate() string {
	return `{{FrontSide}}

<hr id="answer">

<div class="back">
<div class="phonetic">{{Phonetic}}</div>
{{#Notes}}
<div class="notes">{{Notes}}</div>
{{/Notes}}
</div>`
}

// getReadFrontTemplate shows the spelling and asks for the text
func (g *APKGGenerator) getReadFrontTemplate() string {
	return `<div class="front">
<div class="phonetic">{{Phonetic}}</div>
</div>`
}

func (g *APKGGenerator) getReadBackTemplate() string {
	return `{{FrontSide}}

<hr id="answer">

<div class="back">
<div class="text">{{Text}}</div>
{{#Notes}}
<div class="notes">{{Notes}}</div>
{{/Notes}}
</div>`
}

// getCSS returns the card styling, using the same dark palette as the GUI
func (g *APKGGenerator) getCSS() string {
	return `.card {
  font-family: "Roboto", "Helvetica", "Arial", sans-serif;
  font-size: 20px;
  text-align: center;
  color: #f5f1ea;
  background-color: #1f1f1f;
}

.front, .back {
  padding: 20px;
}

.text {
  font-family: "Roboto Mono", "Roboto", "Helvetica", "Arial", sans-serif;
  font-size: 44px;
  letter-spacing: 0.2rem;
  white-space: pre-wrap;
  word-break: break-word;
  margin: 20px 0;
}

.phonetic {
  font-size: 18px;
  line-height: 1.6;
  color: #e6e1d6;
  margin: 20px 0;
}

.notes {
  font-size: 14px;
  color: #c9c2b7;
  margin-top: 20px;
  font-style: italic;
}

hr#answer {
  margin: 30px 0;
  border: 0;
  border-top: 1px solid rgba(245, 241, 234, 0.14);
}`
}

// insertNotesAndCards inserts all notes and cards into the database
func (g *APKGGenerator) insertNotesAndCards(db *sql.DB) error {
	now := time.Now()

	noteQuery := `INSERT INTO notes VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	cardQuery := `INSERT INTO cards VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	for i, card := range g.cards {
		// Leave space for 2 cards per note
		noteID := now.UnixMilli() + int64(i*3)

		guid, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("failed to generate note guid: %w", err)
		}

		sortField := htmlField(card.Text)
		fields := strings.Join([]string{
			sortField,
			htmlField(card.Phonetic),
			htmlField(card.Notes),
		}, fieldSeparator)

		_, err = db.Exec(noteQuery,
			noteID,                   // id
			guid.String(),            // guid
			g.modelID,                // mid
			now.Unix(),               // mod
			-1,                       // usn
			"",                       // tags
			fields,                   // flds
			sortField,                // sfld (sort field)
			fieldChecksum(card.Text), // csum
			0,                        // flags
			"",                       // data
		)
		if err != nil {
			return fmt.Errorf("failed to insert note: %w", err)
		}

		// One card per template: 0 = Spell it, 1 = Read it
		for ord := 0; ord < 2; ord++ {
			_, err = db.Exec(cardQuery,
				noteID+int64(ord)+1, // id
				noteID,              // nid
				g.deckID,            // did
				ord,                 // ord
				now.Unix(),          // mod
				-1,                  // usn
				0,                   // type (0=new)
				0,                   // queue (0=new)
				noteID+int64(ord),   // due (position for new cards, unique)
				0,                   // ivl
				0,                   // factor
				0,                   // reps
				0,                   // lapses
				0,                   // left
				0,                   // odue
				0,                   // odid
				0,                   // flags
				"",                  // data
			)
			if err != nil {
				return fmt.Errorf("failed to insert card %d for note %d: %w", ord, noteID, err)
			}
		}
	}

	return nil
}

// packageEntries lists the files of an .apkg in the order they are zipped
var packageEntries = []string{"collection.anki2", "media"}

// createZipPackage creates the final .apkg zip file from the files in tempDir
func (g *APKGGenerator) createZipPackage(tempDir, outputPath string) error {
	zipFile, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer zipFile.Close()

	archive := zip.NewWriter(zipFile)
	for _, name := range packageEntries {
		if err := addZipEntry(archive, filepath.Join(tempDir, name), name); err != nil {
			archive.Close()
			return fmt.Errorf("failed to add %s: %w", name, err)
		}
	}

	return archive.Close()
}

// addZipEntry copies the file at path into the archive under name
func addZipEntry(archive *zip.Writer, path, name string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer, err := archive.Create(name)
	if err != nil {
		return err
	}

	_, err = io.Copy(writer, file)
	return err
}

// htmlField escapes a value for an Anki field, which is rendered as HTML
func htmlField(s string) string {
	return strings.ReplaceAll(html.EscapeString(s), "\n", "<br>")
}

// fieldChecksum is Anki's duplicate check value: the first 32 bits of the
// SHA-1 of the plain sort field
func fieldChecksum(s string) int64 {
	sum := sha1.Sum([]byte(s))
	return int64(binary.BigEndian.Uint32(sum[:4]))
}
