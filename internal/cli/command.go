package cli

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/spellout/internal"
)

// DefaultOutputDir returns the export directory used when none is configured
func DefaultOutputDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "spellout", "exports")
}

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "spellout [text...]",
		Short: "Spell text out character by character",
		Long: `spellout spells out every character of a text, for example
"Hi 5!" becomes "uppercase H, lowercase i, space, five, exclamation point".

Without input it opens a window that shows the text in a large font
next to its spelling, updated as you type.

Examples:
  spellout                        # Launch interactive GUI (default)
  spellout "Hi 5!"                # Spell out a text
  spellout --explain 3.14         # One line per character with its category
  echo hello | spellout --stdin   # Spell out standard input
  spellout --batch texts.txt      # Spell out every line of a file
  spellout --batch texts.txt --anki   # ...and export them as an Anki deck`,
		Args:    cobra.ArbitraryArgs,
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.spellout.yaml)")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "verbose logging")
	cmd.PersistentFlags().BoolVarP(&flags.Quiet, "quiet", "q", false, "suppress non-error log output")

	// Local flags
	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", DefaultOutputDir(), "Export directory for Anki files")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Spell out texts from file (one per line)")
	cmd.Flags().BoolVar(&flags.Stdin, "stdin", false, "Read a single text from standard input")
	cmd.Flags().BoolVar(&flags.Explain, "explain", false, "Print one line per character: character, category and token")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Move the export directory into a timestamped archive and exit")
	cmd.Flags().BoolVar(&flags.GUIMode, "gui", false, "Open the GUI even when text arguments are given (they prefill the input)")

	// Anki flags
	cmd.Flags().BoolVar(&flags.GenerateAnki, "anki", false, "Generate Anki import file (APKG format by default, use --anki-csv for CSV)")
	cmd.Flags().BoolVar(&flags.AnkiCSV, "anki-csv", false, "Generate CSV format instead of APKG when using --anki")
	cmd.Flags().StringVar(&flags.DeckName, "deck-name", flags.DeckName, "Deck name for APKG export")

	// GUI flags
	cmd.Flags().Float32Var(&flags.DisplayTextSize, "display-size", flags.DisplayTextSize, "Font size of the large text display in the GUI")

	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("output.directory", cmd.Flags().Lookup("output"))
	viper.BindPFlag("anki.deck_name", cmd.Flags().Lookup("deck-name"))
	viper.BindPFlag("anki.csv", cmd.Flags().Lookup("anki-csv"))
	viper.BindPFlag("gui.display_text_size", cmd.Flags().Lookup("display-size"))
}

// ApplyConfig copies the merged flag, environment and config file values
// back into flags. Explicitly set flags win over the config file.
func ApplyConfig(flags *Flags) {
	if dir := viper.GetString("output.directory"); dir != "" {
		flags.OutputDir = dir
	}
	if name := viper.GetString("anki.deck_name"); name != "" {
		flags.DeckName = name
	}
	flags.AnkiCSV = flags.AnkiCSV || viper.GetBool("anki.csv")
	if size := viper.GetFloat64("gui.display_text_size"); size > 0 {
		flags.DisplayTextSize = float32(size)
	}
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			slog.Warn("cannot determine home directory", "error", err)
		} else {
			viper.AddConfigPath(home)
		}

		// Search config in home directory with name ".spellout" (without extension)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".spellout")
	}

	// Environment variables, e.g. SPELLOUT_OUTPUT_DIRECTORY
	viper.SetEnvPrefix("SPELLOUT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("using config file", "path", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		slog.Warn("cannot read config file", "path", cfgFile, "error", err)
	}
}
