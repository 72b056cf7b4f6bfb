package workbook

import (
	"strconv"
	"strings"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	// KindEmpty is a missing or blank cell.
	KindEmpty Kind = iota
	// KindText is a string cell, including numeric-looking strings.
	KindText
	// KindNumber is a numeric cell.
	KindNumber
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	default:
		return "empty"
	}
}

// Value is a loosely-typed cell value: Text, Number or Empty.
// Readers must switch on Kind rather than coerce implicitly.
type Value struct {
	kind Kind
	text string
	num  float64
}

// Empty returns the empty value.
func Empty() Value { return Value{} }

// Text returns a text value.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Number returns a numeric value.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsEmpty reports whether v is the empty value.
func (v Value) IsEmpty() bool { return v.kind == KindEmpty }

// Text returns the string held by a Text value.
func (v Value) Text() (string, bool) {
	if v.kind != KindText {
		return "", false
	}
	return v.text, true
}

// Number returns the float held by a Number value.
func (v Value) Number() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// String renders v for display and logging.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	default:
		return ""
	}
}

// OOXML cell type attribute values (the "t" attribute of <c>).
const (
	cellTypeBool         = "b"
	cellTypeDate         = "d"
	cellTypeError        = "e"
	cellTypeInlineString = "inlineStr"
	cellTypeNumber       = "n"
	cellTypeSharedString = "s"
	cellTypeFormulaStr   = "str"
)

// classify converts a raw cell value and its OOXML type into a Value.
// Shared strings must already be resolved to their text.
func classify(cellType, raw string) Value {
	if raw == "" {
		return Empty()
	}
	switch cellType {
	case cellTypeSharedString, cellTypeInlineString, cellTypeFormulaStr, cellTypeDate, cellTypeError:
		return Text(raw)
	case cellTypeBool:
		switch strings.ToUpper(raw) {
		case "1", "TRUE":
			return Number(1)
		default:
			return Number(0)
		}
	default:
		// "n" or unset: numeric unless the stored value is not a number
		if f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
			return Number(f)
		}
		return Text(raw)
	}
}
