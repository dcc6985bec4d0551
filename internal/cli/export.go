package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export notes as JSON",
		Long:  "Export every note as a JSON array, in the format read by import.",
		Args:  cobra.NoArgs,
		RunE:  runExport,
	}

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	return printJSON(cmd.OutOrStdout(), s.Export(cmd.Context()))
}
