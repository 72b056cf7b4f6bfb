// Package workbook gives read-only, typed access to an in-memory xlsx package.
package workbook

import (
	"archive/zip"
	"bytes"

	"github.com/xuri/excelize/v2"
)

// Workbook is a view over one spreadsheet buffer. It is owned by a single
// extraction call and must be closed when that call returns.
type Workbook struct {
	file   *excelize.File
	zr     *zip.Reader
	sheets []string
	parts  packageParts

	sst       []string
	sstLoaded bool
}

// Open parses data as an xlsx package. Failures wrap ErrMalformedInput.
func Open(data []byte) (*Workbook, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, malformed("open workbook", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		f.Close()
		return nil, malformed("open package", err)
	}

	parts, err := readPackageParts(zr)
	if err != nil {
		f.Close()
		return nil, malformed("read workbook parts", err)
	}

	return &Workbook{
		file:   f,
		zr:     zr,
		sheets: f.GetSheetList(),
		parts:  parts,
	}, nil
}

// Close releases the underlying excelize handle.
func (w *Workbook) Close() error {
	return w.file.Close()
}

// Sheets returns the sheet names in workbook order.
func (w *Workbook) Sheets() []string {
	return append([]string(nil), w.sheets...)
}

// HasSheet reports whether a sheet with exactly this name exists.
func (w *Workbook) HasSheet(name string) bool {
	for _, s := range w.sheets {
		if s == name {
			return true
		}
	}
	return false
}

// Cell returns the value at addr (e.g. "H2"). A missing sheet, an invalid
// address and a blank cell all report false.
func (w *Workbook) Cell(sheet, addr string) (Value, bool) {
	if !w.HasSheet(sheet) {
		return Empty(), false
	}
	if _, _, err := excelize.CellNameToCoordinates(addr); err != nil {
		return Empty(), false
	}

	raw, err := w.file.GetCellValue(sheet, addr, excelize.Options{RawCellValue: true})
	if err != nil || raw == "" {
		return Empty(), false
	}
	cellType, err := w.file.GetCellType(sheet, addr)
	if err != nil {
		return Empty(), false
	}

	v := classify(typeAttr(cellType), raw)
	return v, !v.IsEmpty()
}

// Rows returns all rows of sheet in file order; row 1 is index 0.
// Values are read left to right and numeric strings stay Text.
// A missing sheet yields no rows and no error.
func (w *Workbook) Rows(sheet string) ([][]Value, error) {
	if !w.HasSheet(sheet) {
		return nil, nil
	}
	path, ok := w.parts.sheets[sheet]
	if !ok {
		return nil, nil
	}

	data, err := readZipFile(w.zr, path)
	if err != nil {
		return nil, malformed("read sheet "+sheet, err)
	}
	if data == nil {
		return nil, nil
	}

	sst, err := w.sharedStrings()
	if err != nil {
		return nil, err
	}

	rows, err := parseSheetRows(data, sst)
	if err != nil {
		return nil, malformed("parse sheet "+sheet, err)
	}
	return rows, nil
}

func (w *Workbook) sharedStrings() ([]string, error) {
	if w.sstLoaded {
		return w.sst, nil
	}
	if w.parts.sharedStrings == "" {
		w.sstLoaded = true
		return nil, nil
	}

	data, err := readZipFile(w.zr, w.parts.sharedStrings)
	if err != nil {
		return nil, malformed("read shared strings", err)
	}
	sst, err := parseSharedStrings(data)
	if err != nil {
		return nil, malformed("parse shared strings", err)
	}
	w.sst, w.sstLoaded = sst, true
	return sst, nil
}

// typeAttr maps an excelize cell type back to its OOXML "t" attribute.
func typeAttr(t excelize.CellType) string {
	switch t {
	case excelize.CellTypeBool:
		return cellTypeBool
	case excelize.CellTypeDate:
		return cellTypeDate
	case excelize.CellTypeError:
		return cellTypeError
	case excelize.CellTypeFormula:
		return cellTypeFormulaStr
	case excelize.CellTypeInlineString:
		return cellTypeInlineString
	case excelize.CellTypeNumber:
		return cellTypeNumber
	case excelize.CellTypeSharedString:
		return cellTypeSharedString
	default:
		return ""
	}
}
