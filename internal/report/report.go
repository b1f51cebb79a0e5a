package report

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Log is a read-only view of the moves performed during a run.
type Log interface {
	Destinations() []string
	Files(dest string) []string
}

// Summary renders one row per destination with the number of files moved into it.
func Summary(log Log) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Destination", "Files"})

	var total int
	for _, dest := range log.Destinations() {
		n := len(log.Files(dest))
		total += n
		tw.AppendRow(table.Row{dest, strconv.Itoa(n)})
	}
	tw.AppendFooter(table.Row{"Total", strconv.Itoa(total)})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft, AlignFooter: text.AlignRight},
	})

	return tw.Render()
}
