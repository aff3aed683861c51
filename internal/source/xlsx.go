package source

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

var ErrNoSheets = errors.New("workbook has no sheets")

// workbook is the parsed content of an xlsx file: its sheet names in
// workbook order and the raw rows of every sheet.
type workbook struct {
	sheets []string
	rows   map[string][][]string
}

func readWorkbook(r io.Reader) (*workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	wb := &workbook{sheets: f.GetSheetList(), rows: map[string][][]string{}}
	if len(wb.sheets) == 0 {
		return nil, ErrNoSheets
	}
	for _, name := range wb.sheets {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("read sheet %s: %w", name, err)
		}
		wb.rows[name] = rows
	}
	return wb, nil
}

// first returns the header and data rows of the first sheet, the way
// spreadsheet data files are read.
func (wb *workbook) first() ([]string, [][]string, error) {
	return splitHeader(wb.rows[wb.sheets[0]])
}

func splitHeader(rows [][]string) ([]string, [][]string, error) {
	rows = dropBlankRecords(rows)
	if len(rows) == 0 {
		return nil, nil, ErrEmptyFile
	}
	return rows[0], rows[1:], nil
}
