package models

// SerialUnknown is used when no serial number could be resolved.
const SerialUnknown = "Unknown"

// ProcessedRecord is the extraction result for one test-report file.
type ProcessedRecord struct {
	// FileName is the original file name (no path).
	FileName string `json:"fileName"`
	// SerialNumber is the resolved cell serial number, never empty.
	SerialNumber string `json:"serialNumber"`
	// DischargeCapacity is the summary capacity or a sentinel.
	DischargeCapacity Capacity `json:"dischargeCapacity"`
	// Sections maps phase names to sample sequences in first-encounter order.
	Sections Sections `json:"sections"`
	// Error is set when the file could not be processed.
	Error string `json:"error,omitempty"`
}

// NewErrorRecord builds the record returned for a file that failed to process.
func NewErrorRecord(fileName string, err error) ProcessedRecord {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return ProcessedRecord{
		FileName:          fileName,
		SerialNumber:      SentinelError,
		DischargeCapacity: CapacityError(),
		Sections:          Sections{},
		Error:             msg,
	}
}

// Failed reports whether the record carries an error.
func (r ProcessedRecord) Failed() bool {
	return r.Error != ""
}
