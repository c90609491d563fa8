package request

import (
	"bytes"
	"errors"
	"time"
)

var ErrInvalidDate = errors.New("date must be RFC 3339 or YYYY-MM-DD")

var dateLayouts = []string{time.RFC3339Nano, time.DateTime, time.DateOnly}

// Date accepts both full timestamps and calendar dates; date-only values are
// midnight UTC.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return ErrInvalidDate
	}
	s := string(b[1 : len(b)-1])
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return ErrInvalidDate
}

func (d Date) MarshalJSON() ([]byte, error) {
	return d.Time.MarshalJSON()
}
