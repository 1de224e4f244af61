// Package spreadsheet reads uploaded tabular files into header + rows.
package spreadsheet

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

var ErrUnsupportedFormat = errors.New("unsupported file format, expected .xlsx or .csv")

// Table is the raw content of the first sheet. Row i of Rows is spreadsheet row i+2.
type Table struct {
	Header []string
	Rows   [][]string
}

// Cell returns the trimmed value at (row, col); short rows read as empty.
func Cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

var zipMagic = []byte("PK\x03\x04")

// Read picks the parser from filename's extension, falling back to content
// sniffing when the name has none.
func Read(filename string, r io.Reader) (*Table, error) {
	br := bufio.NewReader(r)

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return readXLSX(br)
	case ".csv":
		return readCSV(br)
	case "":
		head, _ := br.Peek(len(zipMagic))
		if bytes.Equal(head, zipMagic) {
			return readXLSX(br)
		}
		return readCSV(br)
	default:
		return nil, ErrUnsupportedFormat
	}
}

func readXLSX(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Excel file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("excel file has no sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	return newTable(rows), nil
}

func readCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV file: %w", err)
	}
	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], "\ufeff")
	}
	return newTable(rows), nil
}

func newTable(rows [][]string) *Table {
	if len(rows) == 0 {
		return &Table{}
	}
	return &Table{Header: rows[0], Rows: rows[1:]}
}
