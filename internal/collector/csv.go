package collector

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"SensexBands/internal/model"
)

// CSVLoader implements Loader for comma-delimited text exports.
type CSVLoader struct {
	Comma rune
}

// NewCSVLoader creates a loader for comma-separated files.
func NewCSVLoader() *CSVLoader {
	return &CSVLoader{Comma: ','}
}

func (l *CSVLoader) Name() string { return "csv" }

// Load reads the whole file into memory without interpreting any cell.
func (l *CSVLoader) Load(path string) (*model.RawTable, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return nil, fmt.Errorf("%w: '%s'", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = l.Comma
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return newTable(path, records)
}
