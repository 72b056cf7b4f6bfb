package models

import (
	"bytes"
	"encoding/json"
	"reflect"
)

var sectionsType = reflect.TypeOf(Sections(nil))

// Segment is a named, contiguous run of samples sharing one step mode.
type Segment struct {
	// Name is the unique section name ("CC Charge", "CC Charge 2", ...).
	Name string `json:"name"`
	// Samples are the measurements in row order. Never empty.
	Samples []Sample `json:"samples"`
}

// Sections is an insertion-ordered mapping from section name to samples.
// It serializes as a JSON object whose keys keep first-encounter order.
type Sections []Segment

// Get returns the samples stored under name.
func (s Sections) Get(name string) ([]Sample, bool) {
	for _, seg := range s {
		if seg.Name == name {
			return seg.Samples, true
		}
	}
	return nil, false
}

// Names returns section names in insertion order.
func (s Sections) Names() []string {
	names := make([]string, len(s))
	for i, seg := range s {
		names[i] = seg.Name
	}
	return names
}

// SampleCount returns the total number of samples across all sections.
func (s Sections) SampleCount() int {
	n := 0
	for _, seg := range s {
		n += len(seg.Samples)
	}
	return n
}

// MarshalJSON writes the sections as an ordered JSON object.
func (s Sections) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, seg := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(seg.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		samples := seg.Samples
		if samples == nil {
			samples = []Sample{}
		}
		val, err := json.Marshal(samples)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an ordered JSON object back into sections.
func (s *Sections) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*s = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return &json.UnmarshalTypeError{Value: "non-object", Type: sectionsType}
	}

	var out Sections
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, _ := tok.(string)
		var samples []Sample
		if err := dec.Decode(&samples); err != nil {
			return err
		}
		out = append(out, Segment{Name: name, Samples: samples})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*s = out
	return nil
}
