package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionsJSONKeepsOrder(t *testing.T) {
	s := Sections{
		{Name: "CC Discharge", Samples: []Sample{{RelativeTime: 30, Capacity: 1.1}}},
		{Name: "CC Charge", Samples: []Sample{{RelativeTime: 0, Capacity: 0}}},
		{Name: "Rest \"quoted\"", Samples: nil},
	}

	out, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t,
		`{"CC Discharge":[{"relativeTime":30,"capacity":1.1}],"CC Charge":[{"relativeTime":0,"capacity":0}],"Rest \"quoted\"":[]}`,
		string(out))

	var back Sections
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, []string{"CC Discharge", "CC Charge", "Rest \"quoted\""}, back.Names())

	samples, ok := back.Get("CC Discharge")
	require.True(t, ok)
	assert.Equal(t, []Sample{{RelativeTime: 30, Capacity: 1.1}}, samples)

	_, ok = back.Get("missing")
	assert.False(t, ok)
}

func TestSectionsUnmarshalRejectsArrays(t *testing.T) {
	var s Sections
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &s))
	require.NoError(t, json.Unmarshal([]byte(`null`), &s))
	assert.Nil(t, s)
}

func TestEmptySectionsMarshalAsObject(t *testing.T) {
	out, err := json.Marshal(Sections{})
	require.NoError(t, err)
	assert.Equal(t, "{}", string(out))

	out, err = json.Marshal(Sections(nil))
	require.NoError(t, err)
	assert.Equal(t, "{}", string(out))
}

func TestCapacity(t *testing.T) {
	tests := []struct {
		name     string
		c        Capacity
		json     string
		str      string
		numeric  bool
		sentinel string
	}{
		{"number", CapacityOf(52.1234), "52.1234", "52.1234", true, ""},
		{"not available", CapacityNotAvailable(), `"N/A"`, "N/A", false, "N/A"},
		{"error", CapacityError(), `"Error"`, "Error", false, "Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := json.Marshal(tt.c)
			require.NoError(t, err)
			assert.Equal(t, tt.json, string(out))
			assert.Equal(t, tt.str, tt.c.String())
			assert.Equal(t, tt.sentinel, tt.c.Sentinel())

			_, ok := tt.c.Value()
			assert.Equal(t, tt.numeric, ok)

			var back Capacity
			require.NoError(t, json.Unmarshal(out, &back))
			assert.Equal(t, tt.c, back)
		})
	}
}

func TestNewErrorRecord(t *testing.T) {
	rec := NewErrorRecord("bad.xlsx", errors.New("boom"))
	assert.Equal(t, "Error", rec.SerialNumber)
	assert.Equal(t, "Error", rec.DischargeCapacity.String())
	assert.Empty(t, rec.Sections)
	assert.Equal(t, "boom", rec.Error)
	assert.True(t, rec.Failed())

	assert.Equal(t, "unknown error", NewErrorRecord("x", nil).Error)
}
