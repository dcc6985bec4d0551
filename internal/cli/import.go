package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rcliao/notes/internal/model"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import notes from JSON",
		Long:  "Import notes from a JSON array (file or stdin), as produced by export. Imported notes get new ids.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runImport,
	}

	RootCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	var (
		data []byte
		err  error
	)
	if len(args) == 1 {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return opErr("read input", err)
	}

	var notes []model.Note
	if err := json.Unmarshal(data, &notes); err != nil {
		return opErr("parse json", err)
	}

	s, err := openStore()
	if err != nil {
		return err
	}

	imported, err := s.Import(cmd.Context(), notes)
	if err != nil {
		return opErr("import", err)
	}

	out := cmd.OutOrStdout()
	if formatFlag == "json" {
		return printJSON(out, map[string]any{"ok": true, "imported": imported})
	}
	fmt.Fprintf(out, "Imported %d notes\n", imported)
	return nil
}
