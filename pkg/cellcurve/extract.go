package cellcurve

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/ukaji3/cellcurve-go/pkg/cellcurve/models"
	"github.com/ukaji3/cellcurve-go/pkg/cellcurve/parser"
	"github.com/ukaji3/cellcurve-go/pkg/cellcurve/workbook"
)

// Process extracts one record from spreadsheet bytes. It never fails: any
// error is encoded in the returned record's Error field.
func Process(data []byte, fileName string, opts Options) models.ProcessedRecord {
	log := opts.logger().WithField("file", fileName)

	rec, err := extract(data, fileName, opts)
	if err != nil {
		log.WithError(err).Warn("Failed to process file")
		return models.NewErrorRecord(fileName, err)
	}

	log.WithFields(logrus.Fields{
		"serial":   rec.SerialNumber,
		"capacity": rec.DischargeCapacity.String(),
		"sections": len(rec.Sections),
	}).Debug("Processed file")
	return rec
}

// ProcessFile reads and processes the file at path.
func ProcessFile(path string, opts Options) models.ProcessedRecord {
	name := filepath.Base(path)
	data, err := os.ReadFile(path)
	if err != nil {
		return models.NewErrorRecord(name, NewExtractionError(name, StageLoad, err))
	}
	return Process(data, name, opts)
}

func extract(data []byte, fileName string, opts Options) (rec models.ProcessedRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = NewExtractionError(fileName, StagePanic, fmt.Errorf("%v", r))
		}
	}()

	wb, err := workbook.Open(data)
	if err != nil {
		return rec, NewExtractionError(fileName, StageOpen, err)
	}
	defer wb.Close()

	sections := models.Sections{}
	if opts.ShouldSegment() {
		sections, err = parser.ExtractSections(wb)
		if err != nil {
			return rec, NewExtractionError(fileName, StageSections, err)
		}
	}

	return models.ProcessedRecord{
		FileName:          fileName,
		SerialNumber:      parser.ResolveSerialNumber(wb, fileName),
		DischargeCapacity: parser.ExtractCapacity(wb),
		Sections:          sections,
	}, nil
}
