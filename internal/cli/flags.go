package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile   string
	OutputDir string
	BatchFile string
	Stdin     bool
	Explain   bool
	Archive   bool
	GUIMode   bool
	Verbose   bool
	Quiet     bool

	// Anki export flags
	GenerateAnki bool
	AnkiCSV      bool
	DeckName     string

	// GUI flags
	DisplayTextSize float32
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		DeckName:        "Spelling Practice",
		DisplayTextSize: 36,
	}
}
