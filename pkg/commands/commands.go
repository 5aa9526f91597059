package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/scriv/pkg/runner/ui"
	"tableflip.dev/scriv/pkg/store"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "scriv",
		Short: "Distraction-free writing on the command line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			i := ui.UI{Persistence: p}
			return i.Do(context.Background())
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addList(topLevel)
	addCalendar(topLevel)
	addExport(topLevel)
	addRm(topLevel)
	addConfig(topLevel)
	addVersion(topLevel)
}
