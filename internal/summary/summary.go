package summary

import (
	"sort"

	"SensexBands/internal/model"
)

// Summarize counts, per calendar year, the records whose Delta falls in
// BandA and BandB. Every year with at least one record appears, in
// ascending order. Records without a Delta are never counted.
func Summarize(records []model.Record) []model.YearlySummary {
	byYear := make(map[int]*model.YearlySummary)
	for _, r := range records {
		s, ok := byYear[r.Year]
		if !ok {
			s = &model.YearlySummary{Year: r.Year}
			byYear[r.Year] = s
		}
		if r.Delta == nil {
			continue
		}
		switch {
		case BandA.Contains(*r.Delta):
			s.DaysInBandA++
		case BandB.Contains(*r.Delta):
			s.DaysInBandB++
		}
	}

	out := make([]model.YearlySummary, 0, len(byYear))
	for _, s := range byYear {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}
