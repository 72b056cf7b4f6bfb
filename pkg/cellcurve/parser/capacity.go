package parser

import (
	"github.com/ukaji3/cellcurve-go/pkg/cellcurve/models"
	"github.com/ukaji3/cellcurve-go/pkg/cellcurve/workbook"
)

// ExtractCapacity reads the discharge capacity from "Loop level"!H2.
// A missing sheet, a blank cell or a non-numeric value yields "N/A".
func ExtractCapacity(wb *workbook.Workbook) models.Capacity {
	v, ok := wb.Cell(SheetLoop, CellDischargeCapacity)
	if !ok {
		return models.CapacityNotAvailable()
	}
	if f, ok := toFloat(v); ok {
		return models.CapacityOf(f)
	}
	return models.CapacityNotAvailable()
}
