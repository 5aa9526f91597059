package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/scriv/pkg/runner/list"
	"tableflip.dev/scriv/pkg/store"
)

func addList(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "list saved documents",
		Example: `
scriv list
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			l := list.List{Persistence: p}
			return l.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
