// Package output serializes processed records.
package output

import (
	"encoding/csv"
	"encoding/json"
	"io"

	"github.com/ukaji3/cellcurve-go/pkg/cellcurve/models"
	"github.com/ukaji3/cellcurve-go/pkg/cellcurve/parser"
)

// SummaryHeader is the header row of the batch summary CSV.
var SummaryHeader = []string{"fileName", "serialNumber", "date", "channel", "dischargeCapacity"}

// ToJSON serializes records to JSON.
func ToJSON(records []models.ProcessedRecord, pretty bool) ([]byte, error) {
	if records == nil {
		records = []models.ProcessedRecord{}
	}
	if pretty {
		return json.MarshalIndent(records, "", "  ")
	}
	return json.Marshal(records)
}

// RecordToJSON serializes a single record to JSON.
func RecordToJSON(record *models.ProcessedRecord, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(record, "", "  ")
	}
	return json.Marshal(record)
}

// SummaryRow returns the CSV fields of one record. Date and channel come
// from the vendor file name.
func SummaryRow(record models.ProcessedRecord) []string {
	meta := parser.ParseFileName(record.FileName)
	return []string{
		record.FileName,
		record.SerialNumber,
		meta.Date,
		meta.Channel,
		record.DischargeCapacity.String(),
	}
}

// WriteSummaryCSV writes one summary line per record, after a header.
func WriteSummaryCSV(w io.Writer, records []models.ProcessedRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(SummaryHeader); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write(SummaryRow(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
