// Package cli implements the notes CLI commands.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rcliao/notes/internal/store"
	"github.com/spf13/cobra"
)

var (
	storePath  string
	formatFlag string
	verbose    bool
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "notes",
	Short: "Keep short text notes",
	Long:  "A tiny CLI for short text notes. Add, modify, remove and list notes kept in a single local file.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)

		if formatFlag != "text" && formatFlag != "json" {
			return fmt.Errorf("invalid format %q (use text or json)", formatFlag)
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&storePath, "store", "s", "", "Store path (default: $NOTES_FILE or ~/.notes/notes.json); .yaml and .db select other backends")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "text", "Output format: text or json")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func getStorePath() string {
	if storePath != "" {
		return storePath
	}
	if env := os.Getenv("NOTES_FILE"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".notes", "notes.json")
}

func openStore() (*store.Store, error) {
	s, err := store.Open(getStorePath(), store.WithLogger(slog.Default()))
	if err != nil {
		return nil, opErr("open store", err)
	}
	return s, nil
}

func opErr(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid note id %q: must be a positive integer", arg)
	}
	return id, nil
}
