package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rcliao/notes/internal/model"
)

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func printNote(w io.Writer, n model.Note) {
	fmt.Fprintf(w, "ID: %d, Title: %s, Body: %s, Recent Update: %s\n", n.ID, n.Title, n.Body, n.UpdatedAt)
}

func printNotFound(w io.Writer, id int) error {
	if formatFlag == "json" {
		return printJSON(w, map[string]any{"ok": false, "id": id})
	}
	_, err := fmt.Fprintf(w, "No note found with ID: %d\n", id)
	return err
}
