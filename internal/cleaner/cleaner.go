package cleaner

import (
	"errors"
	"fmt"
	"log"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"SensexBands/internal/model"
)

// ErrMalformedPrice is returned when a Price cell is not a number.
var ErrMalformedPrice = errors.New("malformed price")

// FieldError describes the cell that stopped cleaning.
type FieldError struct {
	Row    int // 1-based data row in the source file
	Column string
	Value  string
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("row %d, column %q: %v: %q", e.Row, e.Column, e.Err, e.Value)
}

func (e *FieldError) Unwrap() error { return e.Err }

// Options controls how raw cells are interpreted.
type Options struct {
	DateLayout  string
	DropColumns []string
}

// Clean turns a raw table into chronologically ordered records with Year set.
// Delta and Gamma are left nil. The input table is not modified.
func Clean(raw *model.RawTable, opts Options) ([]model.Record, error) {
	t := dropColumns(raw, opts.DropColumns)

	dateIdx := t.ColumnIndex(model.ColDate)
	priceIdx := t.ColumnIndex(model.ColPrice)
	changeIdx := t.ColumnIndex(model.ColChangePct)
	if dateIdx < 0 || priceIdx < 0 || changeIdx < 0 {
		return nil, fmt.Errorf("table %s lacks %s, %s or %s", raw.Source, model.ColDate, model.ColPrice, model.ColChangePct)
	}

	type parsed struct {
		date  *time.Time
		price float64
		chg   *float64
	}
	rows := make([]parsed, len(t.Rows))

	// Price first: a bad price aborts the run regardless of the row's date.
	for i, row := range t.Rows {
		p, err := ParsePrice(row[priceIdx])
		if err != nil {
			return nil, &FieldError{Row: i + 1, Column: model.ColPrice, Value: row[priceIdx], Err: err}
		}
		rows[i].price = p
	}
	for i, row := range t.Rows {
		rows[i].chg = ParseChangePct(row[changeIdx])
	}
	for i, row := range t.Rows {
		rows[i].date = ParseDate(row[dateIdx], opts.DateLayout)
	}

	records := make([]model.Record, 0, len(rows))
	for _, r := range rows {
		if r.date == nil {
			continue
		}
		records = append(records, model.Record{Date: *r.date, Price: r.price, ChangePct: r.chg})
	}
	if dropped := len(rows) - len(records); dropped > 0 {
		log.Printf("[WARN] dropped %d of %d rows with unparseable %s", dropped, len(rows), model.ColDate)
	}

	sort.SliceStable(records, func(i, j int) bool { return records[i].Date.Before(records[j].Date) })

	for i := range records {
		records[i].Year = records[i].Date.Year()
	}
	return records, nil
}

// ParsePrice strips thousands separators and parses the remainder.
func ParsePrice(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(s, ",", "")), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrMalformedPrice
	}
	return v, nil
}

// ParseChangePct strips percent signs and parses the remainder.
// Anything unparseable is a missing value.
func ParseChangePct(s string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(s, "%", "")), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// ParseDate parses s with layout, returning nil when it does not match.
func ParseDate(s, layout string) *time.Time {
	d, err := time.Parse(layout, strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &d
}

// dropColumns returns a copy of raw without the named columns.
func dropColumns(raw *model.RawTable, names []string) *model.RawTable {
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		drop[n] = true
	}

	keep := make([]int, 0, len(raw.Header))
	for i, h := range raw.Header {
		if !drop[h] {
			keep = append(keep, i)
		}
	}

	out := &model.RawTable{Source: raw.Source, Header: make([]string, len(keep)), Rows: make([][]string, len(raw.Rows))}
	for j, i := range keep {
		out.Header[j] = raw.Header[i]
	}
	for r, row := range raw.Rows {
		nr := make([]string, len(keep))
		for j, i := range keep {
			if i < len(row) {
				nr[j] = row[i]
			}
		}
		out.Rows[r] = nr
	}
	return out
}
