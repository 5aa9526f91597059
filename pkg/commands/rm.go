package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/scriv/pkg/runner/rm"
	"tableflip.dev/scriv/pkg/store"
)

func addRm(topLevel *cobra.Command) {
	var force bool
	cmd := &cobra.Command{
		Use:   "rm <title>",
		Short: "delete a document",
		Example: `
scriv rm "Untitled 2"
scriv rm "Freewrite" --force
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a document title")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			r := rm.Rm{Title: args[0], Force: force, Persistence: p}
			return r.Do(context.Background())
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Delete without confirmation.")

	topLevel.AddCommand(cmd)
}
