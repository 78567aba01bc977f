package report

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"reel/internal/catalog"
	"reel/internal/query"
)

func CountTable(movies []catalog.Movie, by catalog.Field) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{by.String(), "Movies"})

	for _, c := range query.SortedCounts(query.CountBy(movies, by)) {
		tw.AppendRow(table.Row{c.Value, strconv.Itoa(c.N)})
	}
	tw.AppendFooter(table.Row{"Total", strconv.Itoa(len(movies))})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft, AlignFooter: text.AlignRight},
	})
	return tw.Render()
}
