package cli

import (
	"fmt"

	"github.com/rcliao/notes/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "modify <id> [title] [body]",
		Short: "Modify a note",
		Long:  "Modify a note's title and/or body. Fields that are not given are left as they are; the update time is always refreshed.",
		Args:  cobra.RangeArgs(1, 3),
		RunE:  runModify,
	}

	cmd.Flags().StringP("title", "t", "", "New title")
	cmd.Flags().StringP("body", "b", "", "New body")

	RootCmd.AddCommand(cmd)
}

func runModify(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	var p store.ModifyParams
	if len(args) > 1 {
		p.Title = &args[1]
	}
	if len(args) > 2 {
		p.Body = &args[2]
	}
	if cmd.Flags().Changed("title") {
		if p.Title != nil {
			return fmt.Errorf("title given both as argument and --title")
		}
		title, _ := cmd.Flags().GetString("title")
		p.Title = &title
	}
	if cmd.Flags().Changed("body") {
		if p.Body != nil {
			return fmt.Errorf("body given both as argument and --body")
		}
		body, _ := cmd.Flags().GetString("body")
		p.Body = &body
	}

	s, err := openStore()
	if err != nil {
		return err
	}

	n, found, err := s.Modify(cmd.Context(), id, p)
	if err != nil {
		return opErr("modify", err)
	}

	out := cmd.OutOrStdout()
	if !found {
		return printNotFound(out, id)
	}
	if formatFlag == "json" {
		return printJSON(out, n)
	}
	fmt.Fprintln(out, "Note updated successfully!")
	return nil
}
