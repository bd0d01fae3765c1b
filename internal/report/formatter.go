package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"SensexBands/internal/model"
	"SensexBands/internal/summary"
)

// SummaryTitle precedes the yearly table.
const SummaryTitle = "Annual Summary of Negative Change Days (based on calculated Delta):"

// FormatDataset formats every record, one line per trading day.
func FormatDataset(records []model.Record) string {
	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
		model.ColDate, model.ColPrice, model.ColChangePct, "Year", "Delta", "Gamma")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%.2f\t%s\t%d\t%s\t%s\n",
			r.Date.Format("2006-01-02"), r.Price, formatOptional(r.ChangePct),
			r.Year, formatOptional(r.Delta), formatOptional(r.Gamma))
	}
	tw.Flush()
	return b.String()
}

// FormatSummary formats the yearly band counts under SummaryTitle.
func FormatSummary(rows []model.YearlySummary) string {
	var b strings.Builder
	b.WriteString(SummaryTitle + "\n")

	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Year\t%s\t%s\n", summary.BandA.Label, summary.BandB.Label)
	for _, s := range rows {
		fmt.Fprintf(tw, "%d\t%d\t%d\n", s.Year, s.DaysInBandA, s.DaysInBandB)
	}
	tw.Flush()
	return b.String()
}

// Write prints the dataset followed by the summary.
func Write(w io.Writer, a *model.Analysis) error {
	if _, err := io.WriteString(w, FormatDataset(a.Records)); err != nil {
		return fmt.Errorf("write dataset: %w", err)
	}
	if _, err := io.WriteString(w, "\n"+FormatSummary(a.Summary)); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}

func formatOptional(v *float64) string {
	if v == nil {
		return "NaN"
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}
