// Package parser extracts identity, summary and phase curves from a test-report workbook.
package parser

// Sheet and cell locations of the vendor export.
const (
	SheetTemplate = "Template information"
	SheetLoop     = "Loop level"
	SheetRecord   = "Record level"

	// CellSerialLabel holds the free-text label containing the barcode.
	CellSerialLabel = "A1"
	// CellDischargeCapacity holds the summary discharge capacity (row 2, column H).
	CellDischargeCapacity = "H2"
)

// RecordLayout is the column contract of the "Record level" sheet.
// Columns are zero-based.
type RecordLayout struct {
	Version        string
	ModeColumn     int
	TimeColumn     int
	CapacityColumn int
}

// RecordLayoutV1 is the layout of the current exporter:
// E = STEP_MODE_NAME, H = RELATIVE_TIME(Sec), N = CAPACITY(Ah).
var RecordLayoutV1 = RecordLayout{
	Version:        "v1",
	ModeColumn:     4,
	TimeColumn:     7,
	CapacityColumn: 13,
}
