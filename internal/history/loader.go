package history

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/gocarina/gocsv"
)

// visitRow mirrors one line of the input table. The arrival and departure
// columns hold times of day that are combined with the date column.
type visitRow struct {
	TripID        string      `csv:"trip_id"`
	BusStop       string      `csv:"bus_stop"`
	Direction     string      `csv:"direction"`
	Date          CSVDate     `csv:"date"`
	ArrivalTime   CSVClock    `csv:"arrival_time"`
	DepartureTime CSVClock    `csv:"departure_time"`
	DwellTime     NullSeconds `csv:"dwell_time_in_seconds"`
}

// LoadError indicates the input table could not be read or parsed. It is
// fatal; there is no partially loaded dataset.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("loading transit data: %v", e.Err)
	}
	return fmt.Sprintf("loading transit data from %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load reads the historical stop records from the CSV file at path.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	ds, err := LoadFrom(f)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return ds, nil
}

// LoadFrom reads the historical stop records from an open CSV stream and
// returns them sorted by trip and arrival time.
func LoadFrom(r io.Reader) (*Dataset, error) {
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		csvReader := csv.NewReader(in)
		csvReader.TrimLeadingSpace = true
		return csvReader
	})
	gocsv.FailIfUnmatchedStructTags = true

	var rows []*visitRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, err
	}

	visits := make([]StopVisit, 0, len(rows))
	for _, row := range rows {
		visits = append(visits, StopVisit{
			TripID:        row.TripID,
			BusStop:       row.BusStop,
			Direction:     row.Direction,
			Date:          row.Date.Time,
			ArrivalTime:   row.ArrivalTime.at(row.Date.Time),
			DepartureTime: row.DepartureTime.at(row.Date.Time),
			DwellTime:     row.DwellTime,
		})
	}

	sort.SliceStable(visits, func(i, j int) bool {
		if visits[i].TripID != visits[j].TripID {
			return visits[i].TripID < visits[j].TripID
		}
		return visits[i].ArrivalTime.Before(visits[j].ArrivalTime)
	})

	return newDataset(visits), nil
}
