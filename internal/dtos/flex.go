package dtos

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FlexID is a lookup id the web client may send as a number or a numeric
// string. Zero means unset.
type FlexID int64

func (f *FlexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*f = 0
			return nil
		}
		return f.set(s)
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return fmt.Errorf("invalid id %s", b)
	}
	return f.set(num.String())
}

// set parses a decimal id. Fractions, out-of-range values and negative ids are
// rejected; 0 stays unset.
func (f *FlexID) set(s string) error {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) && ne.Err == strconv.ErrRange {
			return fmt.Errorf("id %s out of range", s)
		}
		// 12.0 and 1e3 are whole numbers written as floats.
		fl, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || fl != math.Trunc(fl) {
			return fmt.Errorf("invalid id %s", s)
		}
		if fl >= math.MaxInt64 || fl < math.MinInt64 {
			return fmt.Errorf("id %s out of range", s)
		}
		n = int64(fl)
	}
	if n < 0 {
		return fmt.Errorf("invalid id %s", s)
	}
	*f = FlexID(n)
	return nil
}

// Or returns f, or other when f is unset.
func (f FlexID) Or(other FlexID) FlexID {
	if f != 0 {
		return f
	}
	return other
}

// Value is the id as the record API expects it: nil when unset.
func (f FlexID) Value() any {
	if f == 0 {
		return nil
	}
	return int64(f)
}
