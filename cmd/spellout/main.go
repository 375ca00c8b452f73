package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/spellout/internal/archive"
	"codeberg.org/snonux/spellout/internal/cli"
	"codeberg.org/snonux/spellout/internal/processor"
)

func main() {
	flags := cli.NewFlags()

	rootCmd := cli.CreateRootCommand(flags)

	cobra.OnInitialize(func() {
		cli.SetupLogging(flags.Verbose, flags.Quiet)
		cli.InitConfig(flags.CfgFile)
		cli.ApplyConfig(flags)
	})

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(args, flags)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(args []string, flags *cli.Flags) error {
	if flags.Archive {
		archivePath, err := archive.ArchiveExports(flags.OutputDir)
		if err != nil {
			return fmt.Errorf("failed to archive exports: %w", err)
		}
		fmt.Printf("Export directory archived to: %s\n", archivePath)
		return nil
	}

	proc := processor.NewProcessor(flags)
	text := strings.Join(args, " ")

	switch {
	case flags.GUIMode:
		return proc.RunGUIMode(text)
	case flags.BatchFile != "":
		if err := proc.ProcessBatch(); err != nil {
			return err
		}
	case flags.Stdin:
		if err := proc.ProcessStdin(os.Stdin); err != nil {
			return err
		}
	case len(args) > 0:
		if err := proc.ProcessText(text); err != nil {
			return err
		}
	default:
		// No input provided - launch GUI mode by default
		return proc.RunGUIMode("")
	}

	if flags.GenerateAnki {
		outputPath, err := proc.GenerateAnkiFile()
		if err != nil {
			slog.Warn("failed to generate Anki file", "error", err)
		} else {
			fmt.Fprintf(os.Stderr, "Anki package created: %s\n", outputPath)
		}
	}

	return nil
}
