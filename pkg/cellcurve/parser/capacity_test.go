package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/cellcurve-go/internal/xlsxtest"
	"github.com/ukaji3/cellcurve-go/pkg/cellcurve/models"
	"github.com/ukaji3/cellcurve-go/pkg/cellcurve/workbook"
)

func TestExtractCapacity(t *testing.T) {
	tests := []struct {
		name   string
		sheets []xlsxtest.Sheet
		want   models.Capacity
	}{
		{
			name:   "numeric H2",
			sheets: []xlsxtest.Sheet{{Name: SheetLoop, Cells: map[string]any{"H2": 52.1234}}},
			want:   models.CapacityOf(52.1234),
		},
		{
			name:   "numeric text H2",
			sheets: []xlsxtest.Sheet{{Name: SheetLoop, Cells: map[string]any{"H2": "48.5"}}},
			want:   models.CapacityOf(48.5),
		},
		{
			name:   "H2 absent",
			sheets: []xlsxtest.Sheet{{Name: SheetLoop, Cells: map[string]any{"H1": "DISCHARGE_CAPACITY(Ah)"}}},
			want:   models.CapacityNotAvailable(),
		},
		{
			name:   "H2 not a number",
			sheets: []xlsxtest.Sheet{{Name: SheetLoop, Cells: map[string]any{"H2": "n/a"}}},
			want:   models.CapacityNotAvailable(),
		},
		{
			name:   "sheet absent",
			sheets: []xlsxtest.Sheet{{Name: SheetTemplate}},
			want:   models.CapacityNotAvailable(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wb, err := workbook.Open(xlsxtest.Build(t, tt.sheets...))
			require.NoError(t, err)
			defer wb.Close()

			assert.Equal(t, tt.want, ExtractCapacity(wb))
		})
	}
}
