package model

// RawTable is a delimited file read verbatim: one header row and the data rows
// under it, every cell still text.
type RawTable struct {
	Source string
	Header []string
	Rows   [][]string
}

// ColumnIndex returns the position of the named column, or -1.
func (t *RawTable) ColumnIndex(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}
