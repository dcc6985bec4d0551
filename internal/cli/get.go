package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one note",
		Args:  cobra.ExactArgs(1),
		RunE:  runGet,
	}

	RootCmd.AddCommand(cmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	n, ok := s.Get(cmd.Context(), id)
	if !ok {
		return printNotFound(out, id)
	}
	if formatFlag == "json" {
		return printJSON(out, n)
	}
	printNote(out, n)
	return nil
}
