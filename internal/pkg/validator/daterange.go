package validator

import (
	"errors"
	"time"
)

// DateRange parses a from/to filter pair. to requires from, and must be
// after it.
func DateRange(fromRaw, toRaw string) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if fromRaw != "" {
		t, err := time.Parse(time.RFC3339, fromRaw)
		if err != nil {
			return nil, nil, errors.New("from must be an RFC3339 timestamp")
		}
		from = &t
	}
	if toRaw != "" {
		if from == nil {
			return nil, nil, errors.New("from must be supplied if to is supplied")
		}
		t, err := time.Parse(time.RFC3339, toRaw)
		if err != nil {
			return nil, nil, errors.New("to must be an RFC3339 timestamp")
		}
		if !t.After(*from) {
			return nil, nil, errors.New("to must be after from")
		}
		to = &t
	}
	return from, to, nil
}
