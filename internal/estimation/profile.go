package estimation

import (
	"math"
	"sort"
	"time"

	"ontime.transitdata.org/internal/history"
)

// minPartitionSize is the row count below which a partition yields an empty
// profile.
const minPartitionSize = 2

// Key identifies one statistical partition: the direction of travel and the
// origin stop of a segment.
type Key struct {
	Direction string
	BusStop   string
}

// Profile is the aggregated summary for one (direction, stop) pair. All
// statistics may be absent at once, which is the valid "no data" state rather
// than an error. Factor maps carry entries only for observed hours/weekdays;
// missing buckets are neutral (factor 1) at consumption time.
type Profile struct {
	Direction      string
	BusStop        string
	MeanTravelTime history.NullSeconds
	StdTravelTime  history.NullSeconds
	MeanDwellTime  history.NullSeconds
	HourlyFactors  map[int]float64
	DailyFactors   map[time.Weekday]float64
}

// Empty reports whether the profile carries no usable statistics.
func (p Profile) Empty() bool {
	return !p.MeanTravelTime.Valid
}

// BuildProfiles partitions segments by (direction, origin stop) and reduces
// each partition to a Profile. A partition with fewer than two rows, or with
// no defined travel time at all, reduces to an empty profile.
func BuildProfiles(segments []Segment) map[Key]Profile {
	partitions := make(map[Key][]Segment)
	for _, seg := range segments {
		key := Key{Direction: seg.Direction, BusStop: seg.BusStop}
		partitions[key] = append(partitions[key], seg)
	}

	profiles := make(map[Key]Profile, len(partitions))
	for key, rows := range partitions {
		profiles[key] = buildProfile(key, rows)
	}
	return profiles
}

func buildProfile(key Key, rows []Segment) Profile {
	profile := Profile{
		Direction:     key.Direction,
		BusStop:       key.BusStop,
		HourlyFactors: make(map[int]float64),
		DailyFactors:  make(map[time.Weekday]float64),
	}

	if len(rows) < minPartitionSize {
		return profile
	}

	var defined []Segment
	for _, row := range rows {
		if row.TravelTime.Valid {
			defined = append(defined, row)
		}
	}
	if len(defined) == 0 {
		return profile
	}

	var sum float64
	for _, row := range defined {
		sum += row.TravelTime.Seconds
	}
	mean := sum / float64(len(defined))
	profile.MeanTravelTime = history.Secs(mean)

	// Sample standard deviation needs at least two observations; with one,
	// prediction falls back to a fixed-percentage confidence band.
	if len(defined) >= 2 {
		var sumSq float64
		for _, row := range defined {
			d := row.TravelTime.Seconds - mean
			sumSq += d * d
		}
		profile.StdTravelTime = history.Secs(math.Sqrt(sumSq / float64(len(defined)-1)))
	}

	var dwellSum float64
	var dwellCount int
	for _, row := range defined {
		if row.DwellTime.Valid {
			dwellSum += row.DwellTime.Seconds
			dwellCount++
		}
	}
	if dwellCount > 0 {
		profile.MeanDwellTime = history.Secs(dwellSum / float64(dwellCount))
	}

	profile.HourlyFactors = hourlyFactors(defined)
	profile.DailyFactors = dailyFactors(defined)

	return profile
}

// hourlyFactors computes the per-hour mean travel time and normalizes each by
// the arithmetic mean of the per-hour means, so the factors center on 1.0.
// Two passes: normalizing while accumulating would bias early buckets.
func hourlyFactors(defined []Segment) map[int]float64 {
	sums := make(map[int]float64)
	counts := make(map[int]int)
	for _, row := range defined {
		hour := row.ArrivalTime.Hour()
		sums[hour] += row.TravelTime.Seconds
		counts[hour]++
	}

	means := make(map[int]float64, len(sums))
	var total float64
	for hour, sum := range sums {
		means[hour] = sum / float64(counts[hour])
		total += means[hour]
	}

	factors := make(map[int]float64, len(means))
	overall := total / float64(len(means))
	for hour, m := range means {
		factors[hour] = m / overall
	}
	return factors
}

// dailyFactors is the hourly computation keyed by weekday.
func dailyFactors(defined []Segment) map[time.Weekday]float64 {
	sums := make(map[time.Weekday]float64)
	counts := make(map[time.Weekday]int)
	for _, row := range defined {
		day := row.ArrivalTime.Weekday()
		sums[day] += row.TravelTime.Seconds
		counts[day]++
	}

	means := make(map[time.Weekday]float64, len(sums))
	var total float64
	for day, sum := range sums {
		means[day] = sum / float64(counts[day])
		total += means[day]
	}

	factors := make(map[time.Weekday]float64, len(means))
	overall := total / float64(len(means))
	for day, m := range means {
		factors[day] = m / overall
	}
	return factors
}

// SortedKeys returns the profile keys ordered by direction then stop, for
// stable listings.
func SortedKeys(profiles map[Key]Profile) []Key {
	keys := make([]Key, 0, len(profiles))
	for key := range profiles {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Direction != keys[j].Direction {
			return keys[i].Direction < keys[j].Direction
		}
		return keys[i].BusStop < keys[j].BusStop
	})
	return keys
}
