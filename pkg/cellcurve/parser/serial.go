package parser

import (
	"regexp"
	"strings"

	"github.com/ukaji3/cellcurve-go/pkg/cellcurve/models"
	"github.com/ukaji3/cellcurve-go/pkg/cellcurve/workbook"
)

var (
	// barcodeToken matches "Barcode:" and a complete alphanumeric token. A token
	// that continues with '-', '_', '.' or '/' is left to the split rule.
	barcodeToken = regexp.MustCompile(`(?i)Barcode:\s*([A-Za-z0-9]+)(?:[^A-Za-z0-9\-_./]|$)`)
	barcodeLabel = regexp.MustCompile(`(?i)Barcode:`)

	// fileNameSerial matches "__<serial>_<yyyyMMddHHmmss>#".
	fileNameSerial = regexp.MustCompile(`__([A-Za-z0-9]+)_\d{14}#`)
)

// ResolveSerialNumber resolves the serial number from the template label,
// falling back to the file name and finally to "Unknown".
func ResolveSerialNumber(wb *workbook.Workbook, fileName string) string {
	var serial string
	if v, ok := wb.Cell(SheetTemplate, CellSerialLabel); ok {
		serial = SerialFromLabel(v.String())
	}

	if strings.TrimSpace(serial) == "" || serial == models.SerialUnknown {
		if fromName, ok := SerialFromFileName(fileName); ok {
			return fromName
		}
		return models.SerialUnknown
	}
	return serial
}

// SerialFromLabel extracts the serial number from a template label:
// the token after "Barcode:", else the trimmed text after it, else the label.
func SerialFromLabel(label string) string {
	if m := barcodeToken.FindStringSubmatch(label); m != nil {
		return m[1]
	}

	loc := barcodeLabel.FindStringIndex(label)
	if loc == nil {
		return label
	}
	rest := label[loc[1]:]
	if next := barcodeLabel.FindStringIndex(rest); next != nil {
		rest = rest[:next[0]]
	}
	return strings.TrimSpace(rest)
}

// SerialFromFileName extracts the serial number embedded in a vendor file name.
func SerialFromFileName(name string) (string, bool) {
	m := fileNameSerial.FindStringSubmatch(name)
	if m == nil {
		return "", false
	}
	return m[1], true
}
