package collector

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/xuri/excelize/v2"

	"SensexBands/internal/model"
)

// XLSXLoader implements Loader for spreadsheet exports of the same series.
type XLSXLoader struct {
	Sheet string // empty means the first sheet
}

// NewXLSXLoader creates a loader reading the given sheet.
func NewXLSXLoader(sheet string) *XLSXLoader {
	return &XLSXLoader{Sheet: sheet}
}

func (l *XLSXLoader) Name() string { return "xlsx" }

// Load reads every row of the sheet as formatted cell text.
func (l *XLSXLoader) Load(path string) (*model.RawTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return nil, fmt.Errorf("%w: '%s'", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheet := l.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets", path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return newTable(path, rows)
}
