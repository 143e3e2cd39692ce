package suite

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

type Report struct {
	Suite   string   `json:"suite"`
	Summary Summary  `json:"summary"`
	Results []Result `json:"results"`
}

func NewReport(s *Suite, results []Result) *Report {
	return &Report{Suite: s.Name, Summary: Summarize(results), Results: results}
}

func WriteTable(w io.Writer, r *Report) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle(r.Suite)
	t.AppendHeader(table.Row{"#", "Case", "Expression", "Expected", "Outcome", "Status"})

	for i, res := range r.Results {
		t.AppendRow(table.Row{i + 1, res.Case.Name, res.Case.Expression, expected(res.Case), outcome(res), status(res)})
	}

	t.AppendFooter(table.Row{"", "", "", "", "passed", fmt.Sprintf("%d/%d", r.Summary.Passed, r.Summary.Total)})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, WidthMax: 48},
		{Number: 6, Align: text.AlignCenter},
	})
	t.Render()
}

func WriteJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

func expected(c Case) string {
	if c.Want != nil {
		return strconv.FormatFloat(*c.Want, 'g', -1, 64)
	}
	return c.Error
}

func outcome(r Result) string {
	if r.Kind != "" {
		return r.Kind
	}
	return strconv.FormatFloat(r.Got, 'g', -1, 64)
}

func status(r Result) string {
	if r.Passed {
		return "PASS"
	}
	return "FAIL"
}
