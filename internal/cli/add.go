package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "add <title> <body>",
		Short: "Add a note",
		Args:  cobra.ExactArgs(2),
		RunE:  runAdd,
	}

	RootCmd.AddCommand(cmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	n, err := s.Add(cmd.Context(), args[0], args[1])
	if err != nil {
		return opErr("add", err)
	}

	if formatFlag == "json" {
		return printJSON(cmd.OutOrStdout(), n)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Note added successfully with ID: %d\n", n.ID)
	return nil
}
