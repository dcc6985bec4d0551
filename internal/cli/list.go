package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List notes",
		Args:    cobra.NoArgs,
		RunE:    runList,
	}

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	notes := s.List(cmd.Context())

	out := cmd.OutOrStdout()
	if formatFlag == "json" {
		return printJSON(out, notes)
	}
	if len(notes) == 0 {
		fmt.Fprintln(out, "No notes found!")
		return nil
	}
	for _, n := range notes {
		printNote(out, n)
	}
	return nil
}
