package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/cellcurve-go/pkg/cellcurve/models"
	"github.com/ukaji3/cellcurve-go/pkg/cellcurve/workbook"
)

// restMarker marks rest phases, which never become sections.
const restMarker = "still"

// Observation is one tokenized "Record level" row.
// OK is false when mode, time or capacity could not be read.
type Observation struct {
	Mode     string
	Time     float64
	Capacity float64
	OK       bool
}

// Tokenize reads one row with the given layout.
func (l RecordLayout) Tokenize(row []workbook.Value) Observation {
	mode, ok := toMode(cellAt(row, l.ModeColumn))
	if !ok {
		return Observation{}
	}
	t, ok := toFloat(cellAt(row, l.TimeColumn))
	if !ok {
		return Observation{}
	}
	c, ok := toFloat(cellAt(row, l.CapacityColumn))
	if !ok {
		return Observation{}
	}
	return Observation{Mode: mode, Time: t, Capacity: c, OK: true}
}

// Tokenize reads one row with RecordLayoutV1.
func Tokenize(row []workbook.Value) Observation {
	return RecordLayoutV1.Tokenize(row)
}

// Segment splits observations into named sections. Rows that failed to
// tokenize are skipped without closing the open block. Rest rows close the
// open block and are dropped. A repeated mode gets a " <n>" suffix.
func Segment(obs []Observation) models.Sections {
	s := newSegmenter()
	for _, o := range obs {
		s.observe(o)
	}
	return s.finish()
}

// IsRest reports whether a step mode denotes a rest phase.
func IsRest(mode string) bool {
	return strings.Contains(strings.ToLower(mode), restMarker)
}

// block is the open run of samples sharing one mode.
type block struct {
	mode    string
	samples []models.Sample
}

// segmenter is the accumulator of one segmentation pass.
type segmenter struct {
	open   *block
	counts map[string]int
	used   map[string]bool
	out    models.Sections
}

func newSegmenter() *segmenter {
	return &segmenter{
		counts: make(map[string]int),
		used:   make(map[string]bool),
		out:    models.Sections{},
	}
}

func (s *segmenter) observe(o Observation) {
	if !o.OK {
		return
	}
	if IsRest(o.Mode) {
		s.flush()
		return
	}
	if s.open == nil || s.open.mode != o.Mode {
		s.flush()
		s.open = &block{mode: o.Mode}
	}
	s.open.samples = append(s.open.samples, models.Sample{
		RelativeTime: o.Time,
		Capacity:     o.Capacity,
	})
}

func (s *segmenter) flush() {
	if s.open == nil {
		return
	}
	b := s.open
	s.open = nil

	s.counts[b.mode]++
	name := b.mode
	if s.counts[b.mode] > 1 {
		name = b.mode + " " + strconv.Itoa(s.counts[b.mode])
	}
	// a literal mode such as "Charge 2" may already hold the generated name
	for s.used[name] {
		s.counts[b.mode]++
		name = b.mode + " " + strconv.Itoa(s.counts[b.mode])
	}
	s.used[name] = true

	s.out = append(s.out, models.Segment{Name: name, Samples: b.samples})
}

func (s *segmenter) finish() models.Sections {
	s.flush()
	return s.out
}

// ExtractSections segments the "Record level" sheet. The header row is
// skipped and a missing sheet yields no sections.
func ExtractSections(wb *workbook.Workbook) (models.Sections, error) {
	rows, err := wb.Rows(SheetRecord)
	if err != nil {
		return nil, err
	}
	return SegmentRows(rows, RecordLayoutV1), nil
}

// SegmentRows tokenizes rows (header included) and segments them.
func SegmentRows(rows [][]workbook.Value, layout RecordLayout) models.Sections {
	s := newSegmenter()
	for i := 1; i < len(rows); i++ {
		s.observe(layout.Tokenize(rows[i]))
	}
	return s.finish()
}

func cellAt(row []workbook.Value, col int) workbook.Value {
	if col < 0 || col >= len(row) {
		return workbook.Empty()
	}
	return row[col]
}

func toMode(v workbook.Value) (string, bool) {
	s, ok := v.Text()
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

// toFloat accepts numbers and text holding a finite decimal number.
func toFloat(v workbook.Value) (float64, bool) {
	switch v.Kind() {
	case workbook.KindNumber:
		f, _ := v.Number()
		return f, !math.IsNaN(f) && !math.IsInf(f, 0)
	case workbook.KindText:
		s, _ := v.Text()
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
