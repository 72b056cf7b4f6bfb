package cellcurve

import (
	"context"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/ukaji3/cellcurve-go/pkg/cellcurve/models"
	"github.com/ukaji3/cellcurve-go/pkg/cellcurve/source"
)

// Input is one file of a batch. Load is called at most once, from a worker.
type Input struct {
	Name string
	Load func(ctx context.Context) ([]byte, error)
}

// BytesInput wraps an in-memory buffer.
func BytesInput(name string, data []byte) Input {
	return Input{
		Name: name,
		Load: func(context.Context) ([]byte, error) { return data, nil },
	}
}

// FileInput reads the file at path when the batch reaches it.
func FileInput(path string) Input {
	return Input{
		Name: filepath.Base(path),
		Load: func(context.Context) ([]byte, error) { return os.ReadFile(path) },
	}
}

// SourceInput fetches a listed file from src when the batch reaches it.
func SourceInput(src source.Source, f source.File) Input {
	return Input{
		Name: f.Name,
		Load: func(ctx context.Context) ([]byte, error) { return src.Fetch(ctx, f.ID) },
	}
}

// ProcessBatch processes inputs in parallel and returns one record per
// input, in input order. A file that fails to load or parse yields an error
// record; it never aborts the rest of the batch. The returned error is the
// context error if the batch was cancelled.
func ProcessBatch(ctx context.Context, inputs []Input, opts Options) ([]models.ProcessedRecord, error) {
	log := opts.logger()
	records := make([]models.ProcessedRecord, len(inputs))

	log.WithField("files", len(inputs)).Info("Starting batch")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers())
	for i, in := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				records[i] = models.NewErrorRecord(in.Name, NewExtractionError(in.Name, StageLoad, err))
				return nil
			}
			data, err := in.Load(gctx)
			if err != nil {
				log.WithError(err).WithField("file", in.Name).Warn("Failed to load file")
				records[i] = models.NewErrorRecord(in.Name, NewExtractionError(in.Name, StageLoad, err))
				return nil
			}
			records[i] = Process(data, in.Name, opts)
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, r := range records {
		if r.Failed() {
			failed++
		}
	}
	log.WithField("files", len(records)).WithField("failed", failed).Info("Batch finished")

	return records, ctx.Err()
}

// ProcessSource lists the spreadsheets in locator and processes them as a batch.
func ProcessSource(ctx context.Context, src source.Source, locator string, opts Options) ([]models.ProcessedRecord, error) {
	files, err := src.List(ctx, locator)
	if err != nil {
		return nil, err
	}

	inputs := make([]Input, len(files))
	for i, f := range files {
		inputs[i] = SourceInput(src, f)
	}
	return ProcessBatch(ctx, inputs, opts)
}
