package workbook

import (
	"testing"
)

func TestParseSheetRows(t *testing.T) {
	sheet := `<?xml version="1.0" encoding="UTF-8"?>
<worksheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main">
<sheetData>
<row r="1"><c r="A1" t="s"><v>0</v></c><c r="C1" t="inlineStr"><is><t>inline</t></is></c></row>
<row r="3"><c r="B3"><v>1.5</v></c><c r="C3" t="b"><v>1</v></c><c r="D3" t="str"><f>A1</f><v>formula</v></c><c r="E3" t="s"><v>99</v></c></row>
<row><c t="n"><v>7</v></c><c><v>8</v></c></row>
</sheetData>
</worksheet>`

	rows, err := parseSheetRows([]byte(sheet), []string{"shared"})
	if err != nil {
		t.Fatalf("parseSheetRows failed: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("Expected 4 rows, got %d", len(rows))
	}

	if s, _ := rows[0][0].Text(); s != "shared" {
		t.Errorf("A1 = %v, expected 'shared'", rows[0][0])
	}
	if !rows[0][1].IsEmpty() {
		t.Errorf("B1 = %v, expected empty", rows[0][1])
	}
	if s, _ := rows[0][2].Text(); s != "inline" {
		t.Errorf("C1 = %v, expected 'inline'", rows[0][2])
	}

	if rows[1] != nil {
		t.Errorf("row 2 = %v, expected nil", rows[1])
	}

	if f, _ := rows[2][1].Number(); f != 1.5 {
		t.Errorf("B3 = %v, expected 1.5", rows[2][1])
	}
	if f, _ := rows[2][2].Number(); f != 1 {
		t.Errorf("C3 = %v, expected boolean as 1", rows[2][2])
	}
	if s, _ := rows[2][3].Text(); s != "formula" {
		t.Errorf("D3 = %v, expected 'formula'", rows[2][3])
	}
	// out-of-range shared string index is dropped
	if len(rows[2]) != 4 {
		t.Errorf("row 3 has %d cells, expected 4", len(rows[2]))
	}

	// rows and cells without references follow their predecessors
	if len(rows[3]) != 2 {
		t.Fatalf("row 4 has %d cells, expected 2", len(rows[3]))
	}
	if f, _ := rows[3][1].Number(); f != 8 {
		t.Errorf("B4 = %v, expected 8", rows[3][1])
	}
}

func TestParseSheetRowsInvalidRowNumber(t *testing.T) {
	sheet := `<worksheet><sheetData><row r="abc"><c r="A1"><v>1</v></c></row></sheetData></worksheet>`
	if _, err := parseSheetRows([]byte(sheet), nil); err == nil {
		t.Error("expected error for invalid row number")
	}
}

func TestParseSharedStrings(t *testing.T) {
	sst := `<sst xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" count="3" uniqueCount="3">
<si><t>plain</t></si>
<si><r><t>rich </t></r><r><rPr><b/></rPr><t>text</t></r></si>
<si><t>漢字</t><rPh sb="0" eb="2"><t>カンジ</t></rPh></si>
</sst>`

	got, err := parseSharedStrings([]byte(sst))
	if err != nil {
		t.Fatalf("parseSharedStrings failed: %v", err)
	}
	expected := []string{"plain", "rich text", "漢字"}
	if len(got) != len(expected) {
		t.Fatalf("got %d strings, expected %d", len(got), len(expected))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("sst[%d] = %q, expected %q", i, got[i], expected[i])
		}
	}
}

func TestResolveRelativePath(t *testing.T) {
	tests := []struct {
		target   string
		expected string
	}{
		{"worksheets/sheet1.xml", "xl/worksheets/sheet1.xml"},
		{"/xl/worksheets/sheet2.xml", "xl/worksheets/sheet2.xml"},
		{"../xl/sharedStrings.xml", "xl/sharedStrings.xml"},
	}

	for _, tt := range tests {
		if got := resolveRelativePath(tt.target, "xl"); got != tt.expected {
			t.Errorf("resolveRelativePath(%q) = %q, expected %q", tt.target, got, tt.expected)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		cellType string
		raw      string
		kind     Kind
		str      string
	}{
		{"", "123", KindNumber, "123"},
		{"n", "-1.5", KindNumber, "-1.5"},
		{"", "abc", KindText, "abc"},
		{"s", "123", KindText, "123"},
		{"inlineStr", "x", KindText, "x"},
		{"e", "#DIV/0!", KindText, "#DIV/0!"},
		{"b", "TRUE", KindNumber, "1"},
		{"b", "0", KindNumber, "0"},
		{"s", "", KindEmpty, ""},
		{"", "", KindEmpty, ""},
	}

	for _, tt := range tests {
		v := classify(tt.cellType, tt.raw)
		if v.Kind() != tt.kind || v.String() != tt.str {
			t.Errorf("classify(%q, %q) = %s %q, expected %s %q",
				tt.cellType, tt.raw, v.Kind(), v.String(), tt.kind, tt.str)
		}
	}
}
