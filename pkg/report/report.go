package report

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	ds "github.com/faruk-akyol/computer-vision-project/pkg/dataset"
)

// Summary aggregates the outcome of one cleaning run.
type Summary struct {
	Loaded   int
	Dropped  int
	Kept     int
	Existing int
	Missing  int
}

// Collect builds a Summary from the cleaned dataset and the pre-filter row
// count.
func Collect(d *ds.Dataset, loaded int) Summary {
	s := Summary{Loaded: loaded, Kept: d.Rows(), Dropped: loaded - d.Rows()}
	for _, rec := range d.Records {
		if !rec.Checked {
			continue
		}
		if rec.FileExists {
			s.Existing++
		} else {
			s.Missing++
		}
	}
	return s
}

// Line is the canonical one-line report printed after every run.
func (s Summary) Line() string {
	return fmt.Sprintf("Number of existing image files: %d", s.Existing)
}

// Table renders the full summary for the -summary flag.
func (s Summary) Table() string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Metric", "Rows"})
	tw.AppendRows([]table.Row{
		{"loaded", s.Loaded},
		{"dropped (invalid score)", s.Dropped},
		{"kept", s.Kept},
		{"image file present", s.Existing},
		{"image file missing", s.Missing},
	})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
