package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/scriv/pkg/runner/calendar"
	"tableflip.dev/scriv/pkg/store"
)

func addCalendar(topLevel *cobra.Command) {
	var year, month int
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "show a month with journaled days highlighted",
		Example: `
scriv calendar
scriv calendar --year 2026 --month 1
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			c := calendar.Calendar{Year: year, Month: month, Persistence: p}
			return c.Do(context.Background())
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year to show, defaults to the current year.")
	cmd.Flags().IntVar(&month, "month", 0, "Month to show, defaults to the current month.")

	topLevel.AddCommand(cmd)
}
