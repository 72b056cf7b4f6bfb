package models

import (
	"encoding/json"
	"strconv"
)

// Sentinel values used when no numeric capacity is available.
const (
	SentinelNotAvailable = "N/A"
	SentinelError        = "Error"
)

// Capacity is a discharge capacity that is either a number or a sentinel.
type Capacity struct {
	value    float64
	sentinel string
}

// CapacityOf returns a numeric capacity.
func CapacityOf(v float64) Capacity {
	return Capacity{value: v}
}

// CapacityNotAvailable returns the "N/A" sentinel.
func CapacityNotAvailable() Capacity {
	return Capacity{sentinel: SentinelNotAvailable}
}

// CapacityError returns the "Error" sentinel.
func CapacityError() Capacity {
	return Capacity{sentinel: SentinelError}
}

// Value returns the numeric capacity and whether it is set.
func (c Capacity) Value() (float64, bool) {
	if c.sentinel != "" {
		return 0, false
	}
	return c.value, true
}

// Sentinel returns the sentinel text, or "" for a numeric capacity.
func (c Capacity) Sentinel() string {
	return c.sentinel
}

// String renders the capacity the way it is written to CSV.
func (c Capacity) String() string {
	if c.sentinel != "" {
		return c.sentinel
	}
	return strconv.FormatFloat(c.value, 'f', -1, 64)
}

// MarshalJSON writes a JSON number, or a JSON string for sentinels.
func (c Capacity) MarshalJSON() ([]byte, error) {
	if c.sentinel != "" {
		return json.Marshal(c.sentinel)
	}
	return json.Marshal(c.value)
}

// UnmarshalJSON accepts a JSON number or a sentinel string.
func (c *Capacity) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = Capacity{sentinel: s}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*c = Capacity{value: v}
	return nil
}
