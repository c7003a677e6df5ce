package request

import "time"

const DateLayout = "2006-01-02"

func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
