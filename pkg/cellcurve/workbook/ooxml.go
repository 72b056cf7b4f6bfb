package workbook

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// maxRows is the OOXML row limit; larger row numbers mean a corrupt sheet.
const maxRows = excelize.TotalRows

// packageParts locates the parts of the package needed for row reading.
type packageParts struct {
	// sheets maps sheet name to worksheet part path.
	sheets map[string]string
	// sharedStrings is the shared string table part path, "" if absent.
	sharedStrings string
}

// readPackageParts resolves sheet names to worksheet paths through
// xl/workbook.xml and its relationships.
func readPackageParts(r *zip.Reader) (packageParts, error) {
	parts := packageParts{sheets: make(map[string]string)}

	workbookXML, err := readZipFile(r, "xl/workbook.xml")
	if err != nil {
		return parts, err
	}
	if workbookXML == nil {
		return parts, nil
	}
	sheetsInfo := parseWorkbookSheets(workbookXML)

	relsXML, err := readZipFile(r, "xl/_rels/workbook.xml.rels")
	if err != nil {
		return parts, err
	}
	if relsXML == nil {
		return parts, nil
	}
	parts.sheets, parts.sharedStrings = parseWorkbookRels(relsXML, sheetsInfo)
	return parts, nil
}

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}

// resolveRelativePath turns a relationship target into a package path.
func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	if strings.HasPrefix(target, "../") {
		clean := target
		for strings.HasPrefix(clean, "../") {
			clean = strings.TrimPrefix(clean, "../")
		}
		return clean
	}
	return baseDir + "/" + target
}

func attrValue(se xml.StartElement, local string) string {
	for _, attr := range se.Attr {
		if attr.Name.Local == local {
			return attr.Value
		}
	}
	return ""
}

// parseWorkbookSheets returns relationship id -> sheet name.
func parseWorkbookSheets(data []byte) map[string]string {
	result := make(map[string]string)
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sheet" {
			name, rID := attrValue(se, "name"), attrValue(se, "id")
			if name != "" && rID != "" {
				result[rID] = name
			}
		}
	}

	return result
}

// parseWorkbookRels returns sheet name -> part path and the shared strings path.
func parseWorkbookRels(data []byte, sheetsInfo map[string]string) (map[string]string, string) {
	sheets := make(map[string]string)
	var sharedStrings string
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		se, ok := token.(xml.StartElement)
		if !ok || se.Name.Local != "Relationship" {
			continue
		}
		rID, target, relType := attrValue(se, "Id"), attrValue(se, "Target"), attrValue(se, "Type")
		if target == "" {
			continue
		}
		if sheetName, ok := sheetsInfo[rID]; ok && strings.HasSuffix(relType, "/worksheet") {
			sheets[sheetName] = resolveRelativePath(target, "xl")
		} else if strings.HasSuffix(relType, "/sharedStrings") {
			sharedStrings = resolveRelativePath(target, "xl")
		}
	}

	return sheets, sharedStrings
}

// parseSharedStrings reads the shared string table. Rich text runs are
// concatenated and phonetic runs are skipped.
func parseSharedStrings(data []byte) ([]string, error) {
	var (
		result     []string
		current    strings.Builder
		inItem     bool
		inText     bool
		inPhonetic bool
	)
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "si":
				inItem = true
				current.Reset()
			case "t":
				inText = true
			case "rPh":
				inPhonetic = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "si":
				inItem = false
				result = append(result, current.String())
			case "t":
				inText = false
			case "rPh":
				inPhonetic = false
			}
		case xml.CharData:
			if inItem && inText && !inPhonetic {
				current.Write(t)
			}
		}
	}

	return result, nil
}

// parseSheetRows reads worksheet XML into typed rows. Row 1 is index 0.
// Missing rows become nil and missing cells inside a row become Empty.
func parseSheetRows(data []byte, sst []string) ([][]Value, error) {
	var rows [][]Value
	nextRow := 1
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		se, ok := token.(xml.StartElement)
		if !ok || se.Name.Local != "row" {
			continue
		}

		rowNum := nextRow
		if r := attrValue(se, "r"); r != "" {
			n, err := strconv.Atoi(r)
			if err != nil || n < 1 || n > maxRows {
				return nil, fmt.Errorf("invalid row number %q", r)
			}
			rowNum = n
		}

		cells, err := parseRow(decoder, sst)
		if err != nil {
			return nil, err
		}

		for len(rows) < rowNum-1 {
			rows = append(rows, nil)
		}
		if rowNum-1 < len(rows) {
			rows[rowNum-1] = cells
		} else {
			rows = append(rows, cells)
		}
		nextRow = rowNum + 1
	}

	return rows, nil
}

// parseRow reads the <c> children of a <row> element.
func parseRow(decoder *xml.Decoder, sst []string) ([]Value, error) {
	var cells []Value
	nextCol := 1
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return nil, err
		}
		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local != "c" {
				depth++
				continue
			}
			col := nextCol
			if ref := attrValue(t, "r"); ref != "" {
				c, _, err := excelize.CellNameToCoordinates(ref)
				if err != nil {
					return nil, err
				}
				col = c
			}
			value, err := parseCell(decoder, attrValue(t, "t"), sst)
			if err != nil {
				return nil, err
			}
			nextCol = col + 1
			if value.IsEmpty() {
				continue
			}
			for len(cells) < col-1 {
				cells = append(cells, Empty())
			}
			if col-1 < len(cells) {
				cells[col-1] = value
			} else {
				cells = append(cells, value)
			}
		case xml.EndElement:
			depth--
		}
	}

	return cells, nil
}

// parseCell reads one <c> element after its start tag has been consumed.
func parseCell(decoder *xml.Decoder, cellType string, sst []string) (Value, error) {
	var (
		stored     strings.Builder
		inline     strings.Builder
		inValue    bool
		inText     bool
		inPhonetic bool
	)
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return Value{}, err
		}
		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "v":
				inValue = true
			case "t":
				inText = true
			case "rPh":
				inPhonetic = true
			}
		case xml.EndElement:
			depth--
			switch t.Name.Local {
			case "v":
				inValue = false
			case "t":
				inText = false
			case "rPh":
				inPhonetic = false
			}
		case xml.CharData:
			if inValue {
				stored.Write(t)
			} else if inText && !inPhonetic {
				inline.Write(t)
			}
		}
	}

	raw := stored.String()
	switch cellType {
	case cellTypeSharedString:
		idx, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || idx < 0 || idx >= len(sst) {
			return Empty(), nil
		}
		raw = sst[idx]
	case cellTypeInlineString:
		raw = inline.String()
	}
	return classify(cellType, raw), nil
}
