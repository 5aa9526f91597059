package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/scriv/pkg/dateutil"
	"tableflip.dev/scriv/pkg/printers"
	"tableflip.dev/scriv/pkg/store"
)

// Calendar prints a month with journal entry days highlighted.
type Calendar struct {
	Year        int
	Month       int
	Persistence store.Persistence
}

func (c *Calendar) Do(ctx context.Context) error {
	if c.Persistence == nil {
		return errors.New("can not show calendar, no persistence")
	}

	if c.Year == 0 || c.Month == 0 {
		today := dateutil.FromEpochMS(time.Now().UnixMilli())
		if c.Year == 0 {
			c.Year = today.Year
		}
		if c.Month == 0 {
			c.Month = today.Month
		}
	}

	dates, err := c.Persistence.ListEntryDates(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Calendar(c.Year, c.Month, dates)
	return nil
}
