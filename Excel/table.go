package Excel

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Row maps column headers to cell values for one recipient.
type Row map[string]string

// Table is the in-memory recipient list. The driver mutates rows in place
// and Save rewrites the whole file back to the original location.
type Table struct {
	Path    string
	Sheet   string
	Headers []string
	Rows    []Row
}

// Load reads a recipient table from an .xlsx, .xls or .csv file. The first
// row is the header row; every following row becomes a header keyed map.
func Load(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return loadExcel(path)
	case ".csv":
		return loadCSV(path)
	default:
		return nil, fmt.Errorf("unsupported file format %s, please use Excel (.xlsx, .xls) or CSV (.csv)", path)
	}
}

func loadExcel(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel file %s: %v", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %v", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("excel file %s has no header row", path)
	}

	table := &Table{Path: path, Sheet: sheet, Headers: rows[0]}
	for _, cells := range rows[1:] {
		table.Rows = append(table.Rows, rowFromCells(table.Headers, cells))
	}
	return table, nil
}

func loadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv file %s: %v", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv file %s: %v", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv file %s has no header row", path)
	}

	table := &Table{Path: path, Headers: records[0]}
	for _, cells := range records[1:] {
		table.Rows = append(table.Rows, rowFromCells(table.Headers, cells))
	}
	return table, nil
}

// rowFromCells pads short rows so every header has a value.
func rowFromCells(headers []string, cells []string) Row {
	row := Row{}
	for i, header := range headers {
		if i < len(cells) {
			row[header] = cells[i]
		} else {
			row[header] = ""
		}
	}
	return row
}

// Save rewrites the entire table to its source path in one write,
// preserving header and row order. The format follows the file extension.
func (t *Table) Save() error {
	if strings.ToLower(filepath.Ext(t.Path)) == ".csv" {
		return t.saveCSV()
	}
	return t.saveExcel()
}

func (t *Table) saveExcel() error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := t.Sheet
	if sheet == "" {
		sheet = "Sheet1"
	}
	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return fmt.Errorf("failed to create sheet %s: %v", sheet, err)
		}
	}

	for i, header := range t.Headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("failed to address header cell: %v", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("failed to write header %s: %v", header, err)
		}
	}
	for r, row := range t.Rows {
		for c, header := range t.Headers {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return fmt.Errorf("failed to address cell: %v", err)
			}
			if err := f.SetCellValue(sheet, cell, row[header]); err != nil {
				return fmt.Errorf("failed to write row %d: %v", r+2, err)
			}
		}
	}

	if err := f.SaveAs(t.Path); err != nil {
		return fmt.Errorf("failed to save excel file %s: %v", t.Path, err)
	}
	return nil
}

func (t *Table) saveCSV() error {
	f, err := os.Create(t.Path)
	if err != nil {
		return fmt.Errorf("failed to create csv file %s: %v", t.Path, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(t.Headers); err != nil {
		return fmt.Errorf("failed to write csv header: %v", err)
	}
	for _, row := range t.Rows {
		record := make([]string, len(t.Headers))
		for i, header := range t.Headers {
			record[i] = row[header]
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %v", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush csv file %s: %v", t.Path, err)
	}
	return nil
}

// HasColumn reports whether the table carries the given header.
func (t *Table) HasColumn(name string) bool {
	for _, header := range t.Headers {
		if header == name {
			return true
		}
	}
	return false
}

// MissingColumns returns the required headers absent from the table.
func (t *Table) MissingColumns(required ...string) []string {
	var missing []string
	for _, name := range required {
		if !t.HasColumn(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// EnsureColumns appends any absent optional headers with empty values.
func (t *Table) EnsureColumns(optional ...string) {
	for _, name := range optional {
		if t.HasColumn(name) {
			continue
		}
		t.Headers = append(t.Headers, name)
		for _, row := range t.Rows {
			row[name] = ""
		}
	}
}

// PendingCount counts rows whose status column is empty after trimming.
func (t *Table) PendingCount(statusColumn string) int {
	pending := 0
	for _, row := range t.Rows {
		if strings.TrimSpace(row[statusColumn]) == "" {
			pending++
		}
	}
	return pending
}
