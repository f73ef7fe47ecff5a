package domain

import (
	"errors"
	"sort"
	"time"
)

// SortMostUsed returns the stations ordered by descending operation
// count. Ties keep the original order.
func SortMostUsed(stations []*Station) []*Station {
	sorted := make([]*Station, len(stations))
	copy(sorted, stations)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalOperations() > sorted[j].TotalOperations()
	})
	return sorted
}

// SortLeastOccupied returns the stations ordered by ascending
// occupation rate over [start, end]. Stations without timeline data for
// the interval sort last. Any other rate failure aborts the sort.
func SortLeastOccupied(stations []*Station, start, end time.Time) ([]*Station, error) {
	type rated struct {
		station *Station
		rate    float64
		noData  bool
	}
	rates := make([]rated, 0, len(stations))
	for _, s := range stations {
		rate, err := s.OccupationRate(start, end)
		if errors.Is(err, ErrNoStateAtDate) {
			rates = append(rates, rated{station: s, noData: true})
			continue
		}
		if err != nil {
			return nil, err
		}
		rates = append(rates, rated{station: s, rate: rate})
	}
	sort.SliceStable(rates, func(i, j int) bool {
		if rates[i].noData != rates[j].noData {
			return rates[j].noData
		}
		return rates[i].rate < rates[j].rate
	})
	sorted := make([]*Station, len(rates))
	for i, r := range rates {
		sorted[i] = r.station
	}
	return sorted, nil
}
