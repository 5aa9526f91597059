package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/scriv/pkg/runner/config"
	"tableflip.dev/scriv/pkg/store"
)

func addConfig(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "show stored settings",
		Example: `
scriv config
scriv config set mode journal
scriv config set autosave off
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := config.Show{Persistence: p}
			return s.Do(context.Background())
		},
	}

	set := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "change a setting",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("requires a key and a value")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := config.Set{Key: args[0], Value: args[1], Persistence: p}
			return s.Do(context.Background())
		},
	}
	cmd.AddCommand(set)

	topLevel.AddCommand(cmd)
}
