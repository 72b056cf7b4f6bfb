// Package models defines data structures for battery test-report extraction.
package models

// Sample is one measurement point of a phase curve.
type Sample struct {
	// RelativeTime is the elapsed test time in seconds.
	RelativeTime float64 `json:"relativeTime"`
	// Capacity is the accumulated capacity in Ah.
	Capacity float64 `json:"capacity"`
}
