package history

import (
	"strconv"
	"strings"
	"time"
)

const (
	dateFormat = "2006-01-02"
)

var clockFormats = []string{"15:04:05", "15:04"}

// StopVisit is one historical record of a vehicle serving a stop. Records are
// immutable once loaded; within a trip they are ordered by ArrivalTime.
type StopVisit struct {
	TripID        string
	BusStop       string
	Direction     string
	Date          time.Time
	ArrivalTime   time.Time
	DepartureTime time.Time
	DwellTime     NullSeconds
}

// NullSeconds is a second count that may be absent. Absent values are never
// used in arithmetic; callers check Valid first.
type NullSeconds struct {
	Seconds float64
	Valid   bool
}

// Secs returns a defined NullSeconds.
func Secs(v float64) NullSeconds {
	return NullSeconds{Seconds: v, Valid: true}
}

// UnmarshalCSV coerces the column value; anything non-numeric (including the
// empty string) becomes an absent value rather than a load failure.
func (n *NullSeconds) UnmarshalCSV(csv string) error {
	csv = strings.TrimSpace(csv)
	if csv == "" {
		*n = NullSeconds{}
		return nil
	}

	val, err := strconv.ParseFloat(csv, 64)
	if err != nil {
		*n = NullSeconds{}
		return nil
	}

	*n = NullSeconds{Seconds: val, Valid: true}
	return nil
}

// MarshalCSV marshals the value into a string format.
func (n *NullSeconds) MarshalCSV() (string, error) {
	if !n.Valid {
		return "", nil
	}
	return strconv.FormatFloat(n.Seconds, 'f', -1, 64), nil
}

// CSVDate is a calendar date parsed from CSV.
type CSVDate struct {
	time.Time
}

// MarshalCSV marshals the value into a string format.
func (d *CSVDate) MarshalCSV() (string, error) {
	return d.Format(dateFormat), nil
}

// UnmarshalCSV takes the string representation from a CSV file and attempts
// to convert it to a date. Malformed dates fail the load.
func (d *CSVDate) UnmarshalCSV(csv string) (err error) {
	d.Time, err = time.Parse(dateFormat, strings.TrimSpace(csv))
	return err
}

// CSVClock is a time-of-day parsed from CSV, combined with the record's date
// after loading.
type CSVClock struct {
	time.Time
}

// MarshalCSV marshals the value into a string format.
func (c *CSVClock) MarshalCSV() (string, error) {
	return c.Format(clockFormats[0]), nil
}

// UnmarshalCSV accepts HH:MM:SS or HH:MM. Malformed times fail the load.
func (c *CSVClock) UnmarshalCSV(csv string) error {
	csv = strings.TrimSpace(csv)

	var lastErr error
	for _, format := range clockFormats {
		t, err := time.Parse(format, csv)
		if err == nil {
			c.Time = t
			return nil
		}
		lastErr = err
	}
	return lastErr
}

// at combines the clock's time-of-day with the supplied date.
func (c *CSVClock) at(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		c.Hour(), c.Minute(), c.Second(), 0, date.Location())
}
