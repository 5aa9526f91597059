package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/scriv/pkg/dateutil"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Calendar prints one month with the days that have journal entries in
// bold and the rest faint.
func (pp *PrettyPrint) Calendar(year int, month int, entries []dateutil.Date) {
	days := daysIn(year, month)
	written := make([]bool, days)
	for _, e := range entries {
		if e.Year == year && e.Month == month {
			written[e.Day-1] = true
		}
	}
	pp.printMonth(year, month, written)
}

func (pp *PrettyPrint) printMonth(year int, month int, written []bool) {
	tf := color.New(color.FgWhite, color.Italic)

	m := time.Month(month).String()
	mid := (width - len(m)) / 2
	tf.Printf("%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	d := dateutil.Date{Year: year, Month: month, Day: 1}.Weekday()

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		fmt.Print("   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	for i := 0; i < len(written); i++ {
		if written[i] {
			l2.Printf("%2d ", i+1)
		} else {
			l1.Printf("%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			fmt.Print("\n")
		}
	}
	fmt.Print("\n\n")
}

func daysIn(year int, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
