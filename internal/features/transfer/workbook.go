package transfer

import (
	"bytes"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// WorkbookContentType is the media type of every exported workbook. xlsx is
// the only exchange format the pipeline speaks.
const WorkbookContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// DecodeWorkbook parses raw xlsx bytes into the ordered sheet-name -> grid
// structure. Anything that cannot be read as xlsx fails the whole operation
// with a malformed-workbook error.
func DecodeWorkbook(content []byte) (Workbook, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, errMalformedWorkbook()
	}
	defer f.Close()

	var book Workbook
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, errMalformedWorkbook()
		}
		book = append(book, Sheet{Name: name, Rows: rows})
	}
	return book, nil
}

// EncodeWorkbook renders a workbook to xlsx bytes. Every cell is written as
// text so the output grid is uniformly typed.
func EncodeWorkbook(book Workbook) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const defaultSheet = "Sheet1"
	keepDefault := false

	for i, sheet := range book {
		if sheet.Name == defaultSheet {
			keepDefault = true
		}
		index, err := f.NewSheet(sheet.Name)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			f.SetActiveSheet(index)
		}
		for r, row := range sheet.Rows {
			for c, value := range row {
				cell, err := excelize.CoordinatesToCellName(c+1, r+1)
				if err != nil {
					return nil, err
				}
				if err := f.SetCellStr(sheet.Name, cell, value); err != nil {
					return nil, err
				}
			}
		}
	}

	if len(book) > 0 && !keepDefault {
		f.DeleteSheet(defaultSheet)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ParsePrice parses a decimal cell value, accepting both "." and "," as the
// decimal separator.
func ParsePrice(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	return decimal.NewFromString(s)
}
