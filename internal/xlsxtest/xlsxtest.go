// Package xlsxtest builds in-memory xlsx fixtures for tests.
package xlsxtest

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

// Sheet describes one worksheet of a fixture. Cells holds explicit
// address/value pairs; Rows is written from A1 downwards. A nil entry in a
// row leaves that cell blank.
type Sheet struct {
	Name  string
	Cells map[string]any
	Rows  [][]any
}

// Build writes the sheets into a new workbook and returns its bytes.
// Without sheets the workbook keeps excelize's default "Sheet1".
func Build(t testing.TB, sheets ...Sheet) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.Name); err != nil {
				t.Fatalf("rename sheet: %v", err)
			}
		} else if _, err := f.NewSheet(s.Name); err != nil {
			t.Fatalf("create sheet %q: %v", s.Name, err)
		}

		for addr, v := range s.Cells {
			if err := f.SetCellValue(s.Name, addr, v); err != nil {
				t.Fatalf("set %s!%s: %v", s.Name, addr, err)
			}
		}
		for r, row := range s.Rows {
			for c, v := range row {
				if v == nil {
					continue
				}
				addr, err := excelize.CoordinatesToCellName(c+1, r+1)
				if err != nil {
					t.Fatalf("cell name: %v", err)
				}
				if err := f.SetCellValue(s.Name, addr, v); err != nil {
					t.Fatalf("set %s!%s: %v", s.Name, addr, err)
				}
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

// RecordRow returns a "Record level" row with the step mode in column E,
// relative time in column H and capacity in column N. Other columns are blank.
func RecordRow(mode, relTime, capacity any) []any {
	row := make([]any, 14)
	row[4] = mode
	row[7] = relTime
	row[13] = capacity
	return row
}

// RecordHeader is the header row of a "Record level" sheet.
func RecordHeader() []any {
	return []any{
		"DATA_POINT", "CYCLE_ID", "STEP_ID", "STEP_INDEX", "STEP_MODE_NAME",
		"VOLTAGE(V)", "CURRENT(A)", "RELATIVE_TIME(Sec)", "ABSOLUTE_TIME",
		"POWER(W)", "ENERGY(Wh)", "TEMP(C)", "RESISTANCE", "CAPACITY(Ah)",
	}
}
