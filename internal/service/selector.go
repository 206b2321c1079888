package service

import (
	"fmt"
	"sort"

	"flare/internal/domain"
	"flare/pkg/e"
)

type rankedStation struct {
	station  domain.Station
	distance float64
}

// SelectStation picks the destination station for a report: nearest Active
// candidate, falling back to the nearest of any status so a report still
// reaches somewhere when every nearby station is marked down. Candidates with
// unparseable coordinates are dropped. Sort is stable so equidistant stations
// keep their input order.
func SelectStation(reporter domain.Coordinate, candidates []domain.Station) (domain.Station, error) {
	ranked := make([]rankedStation, 0, len(candidates))
	for _, st := range candidates {
		coord, ok := st.Coordinate()
		if !ok {
			continue
		}
		ranked = append(ranked, rankedStation{
			station:  st,
			distance: haversineMeters(reporter, coord),
		})
	}

	if len(ranked) == 0 {
		return domain.Station{}, fmt.Errorf("select station: %w", e.ErrNoStationAvailable)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].distance < ranked[j].distance
	})

	for _, r := range ranked {
		if r.station.IsActive() {
			return r.station, nil
		}
	}
	return ranked[0].station, nil
}
