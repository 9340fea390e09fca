// Package models defines data structures for lens chart data.
package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number is a JSON number that tolerates missing or non-numeric input.
// Spreadsheet exports sometimes carry "N/A", empty strings or quoted numbers;
// those decode without error and are reported through Valid.
type Number struct {
	// Value is the decoded number. Zero when Valid is false.
	Value float64
	// Valid is true when the source held a finite number.
	Valid bool
}

// NewNumber returns a Number holding v. NaN and infinities are invalid.
func NewNumber(v float64) Number {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Number{}
	}
	return Number{Value: v, Valid: true}
}

// Positive reports whether n is valid and greater than zero.
func (n Number) Positive() bool {
	return n.Valid && n.Value > 0
}

// Ptr returns a pointer to the value, or nil when n is not a positive number.
func (n Number) Ptr() *float64 {
	if !n.Positive() {
		return nil
	}
	v := n.Value
	return &v
}

// UnmarshalJSON accepts numbers, numeric strings and null.
func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	// Quoted value: try to read a number out of it
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*n = NewNumber(f)
		}
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		// Booleans, objects and arrays are treated as missing
		return nil
	}
	*n = NewNumber(f)
	return nil
}

// MarshalJSON writes the value, or null when invalid.
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}
