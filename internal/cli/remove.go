package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Remove a note",
		Args:    cobra.ExactArgs(1),
		RunE:    runRemove,
	}

	RootCmd.AddCommand(cmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}

	removed, err := s.Remove(cmd.Context(), id)
	if err != nil {
		return opErr("remove", err)
	}

	out := cmd.OutOrStdout()
	if !removed {
		return printNotFound(out, id)
	}
	if formatFlag == "json" {
		return printJSON(out, map[string]any{"ok": true, "id": id})
	}
	fmt.Fprintln(out, "Note removed successfully!")
	return nil
}
