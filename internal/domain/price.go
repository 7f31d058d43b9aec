package domain

import (
	"sort"
	"time"
)

// PricePoint is one recorded market day for a crop. Points are upserted by
// the ingestion side keyed by (crop, date) and never duplicated per date.
type PricePoint struct {
	Date         time.Time `json:"date"`
	AveragePrice float64   `json:"average_price"`
	MinPrice     float64   `json:"min_price"`
	MaxPrice     float64   `json:"max_price"`
}

// CropSeries is the ordered-by-date price history of a single crop. Dates
// are unique but not necessarily contiguous; the series is sparse calendar
// data, not a fixed-frequency signal.
type CropSeries []PricePoint

// SortByDate orders the series ascending by date in place.
func (s CropSeries) SortByDate() {
	sort.Slice(s, func(i, j int) bool {
		return s[i].Date.Before(s[j].Date)
	})
}

// LastDate returns the most recent date in the series, or the zero time
// when the series is empty.
func (s CropSeries) LastDate() time.Time {
	var last time.Time
	for _, p := range s {
		if p.Date.After(last) {
			last = p.Date
		}
	}
	return last
}

// Within returns the subset of the series inside [start, end], order
// preserved.
func (s CropSeries) Within(start, end time.Time) CropSeries {
	subset := make(CropSeries, 0, len(s))
	for _, p := range s {
		if p.Date.Before(start) || p.Date.After(end) {
			continue
		}
		subset = append(subset, p)
	}
	return subset
}
