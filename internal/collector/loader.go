package collector

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"SensexBands/internal/model"
)

var (
	// ErrInputNotFound is returned when the input file cannot be opened.
	ErrInputNotFound = errors.New("input file not found")
	// ErrMissingColumn is returned when a required column is absent from the header.
	ErrMissingColumn = errors.New("missing required column")
)

// requiredColumns must be present in every input header.
var requiredColumns = []string{model.ColDate, model.ColPrice, model.ColChangePct}

// Loader defines the interface for reading a price history file.
type Loader interface {
	Load(path string) (*model.RawTable, error)
	Name() string
}

// LoaderFor picks a Loader based on the file extension.
func LoaderFor(path, sheet string) Loader {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return NewXLSXLoader(sheet)
	default:
		return NewCSVLoader()
	}
}

// newTable normalizes header names, pads short rows and checks that the
// required columns are present.
func newTable(source string, records [][]string) (*model.RawTable, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: %w: empty file has no header", source, ErrMissingColumn)
	}
	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		header[i] = strings.TrimSpace(h)
	}

	t := &model.RawTable{Source: source, Header: header}
	for _, col := range requiredColumns {
		if t.ColumnIndex(col) < 0 {
			return nil, fmt.Errorf("%s: %w %q", source, ErrMissingColumn, col)
		}
	}

	t.Rows = make([][]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make([]string, len(header))
		copy(row, rec)
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}
