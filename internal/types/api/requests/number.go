package requests

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// FlexibleNumber accepts a JSON number or a numeric string. Values that cannot
// be parsed do not fail decoding; they are reported by Float so each field or
// batch item can fail on its own.
type FlexibleNumber struct {
	Raw     string
	value   float64
	present bool
	valid   bool
}

// NewFlexibleNumber wraps an already parsed value.
func NewFlexibleNumber(v float64) FlexibleNumber {
	return FlexibleNumber{Raw: strconv.FormatFloat(v, 'f', -1, 64), value: v, present: true, valid: true}
}

func (n *FlexibleNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = FlexibleNumber{}
		return nil
	}

	n.present = true
	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
	}
	n.Raw = strings.TrimSpace(raw)

	// ParseFloat accepts "NaN" and "Infinity"; neither can be converted or
	// written back as a JSON number.
	f, err := strconv.ParseFloat(n.Raw, 64)
	n.valid = (err == nil || isRangeErr(err)) && !math.IsNaN(f) && !math.IsInf(f, 0)
	n.value = f
	return nil
}

func (n FlexibleNumber) MarshalJSON() ([]byte, error) {
	if !n.present {
		return []byte("null"), nil
	}
	if n.valid && !math.IsNaN(n.value) && !math.IsInf(n.value, 0) {
		return []byte(strconv.FormatFloat(n.value, 'f', -1, 64)), nil
	}
	return json.Marshal(n.Raw)
}

// Present reports whether the field appeared with a non-null value.
func (n FlexibleNumber) Present() bool {
	return n.present
}

// Float returns the parsed value. A missing field is 0. ok is false when the
// field was present but not a number.
func (n FlexibleNumber) Float() (float64, bool) {
	if !n.present {
		return 0, true
	}
	return n.value, n.valid
}

func isRangeErr(err error) bool {
	numErr, ok := err.(*strconv.NumError)
	return ok && numErr.Err == strconv.ErrRange
}
