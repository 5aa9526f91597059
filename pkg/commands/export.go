package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	runner "tableflip.dev/scriv/pkg/runner/export"
	"tableflip.dev/scriv/pkg/store"
)

func addExport(topLevel *cobra.Command) {
	var port int
	var journalDate string
	cmd := &cobra.Command{
		Use:   "export <title>",
		Short: "serve a document over TCP for a one-shot pull",
		Example: `
scriv export "Untitled"
scriv export "Notes" --port 9000
scriv export --journal 2026-01-23
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if journalDate != "" {
				if len(args) != 0 {
					return errors.New("a title and --journal are mutually exclusive")
				}
				return nil
			}
			if len(args) != 1 {
				return errors.New("requires a document title or --journal")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			title := ""
			if len(args) == 1 {
				title = args[0]
			}
			e := runner.Export{Title: title, Journal: journalDate, Port: port, Persistence: p}
			return e.Do(context.Background())
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "Port to listen on, defaults to 7879.")
	cmd.Flags().StringVar(&journalDate, "journal", "", "Export the journal entry for a YYYY-MM-DD date instead of a document.")

	topLevel.AddCommand(cmd)
}
