package service

import (
	"log/slog"
	"math"
	"strings"

	"flare/internal/domain"
)

// Confirmer decides whether a location fix lies inside the service area.
// Confirmation passes when either the reverse-geocoded address matches the
// configured substring or the fix is within the fence radius. Both checks are
// pure; resolving the address itself is the caller's job.
type Confirmer struct {
	area   domain.ServiceArea
	logger *slog.Logger
}

func NewConfirmer(area domain.ServiceArea, logger *slog.Logger) *Confirmer {
	return &Confirmer{area: area, logger: logger}
}

func (c *Confirmer) Confirm(coord domain.Coordinate, resolvedAddress string) *domain.LocationVerdict {
	v := domain.NewPendingVerdict()

	cleaned := strings.TrimSpace(resolvedAddress)
	ok := c.matchesAddress(cleaned) || c.withinFence(coord)

	if !ok {
		_ = v.Reject("outside service area")
		c.logger.Info("location rejected",
			slog.Float64("lat", coord.Lat),
			slog.Float64("lng", coord.Lng),
		)
		return v
	}

	mapLink := coord.MapLink()
	address := cleaned
	if address == "" {
		// Distance-confirmed fix with no readable address: fall back to the
		// synthesized map link so the stored record is never blank.
		address = mapLink
	}
	_ = v.Confirm(address, mapLink)

	c.logger.Info("location confirmed",
		slog.Float64("lat", coord.Lat),
		slog.Float64("lng", coord.Lng),
		slog.Bool("by_address", c.matchesAddress(cleaned)),
	)
	return v
}

func (c *Confirmer) matchesAddress(address string) bool {
	if address == "" || c.area.AddressMatch == "" {
		return false
	}
	return strings.Contains(strings.ToLower(address), strings.ToLower(c.area.AddressMatch))
}

func (c *Confirmer) withinFence(coord domain.Coordinate) bool {
	// A zero coordinate is "no fix", never a real position.
	if coord.IsUnset() {
		return false
	}
	return haversineMeters(coord, c.area.Center) <= c.area.RadiusMeters
}

func haversineMeters(a, b domain.Coordinate) float64 {
	const earthRadiusM = 6371000.0

	dLat := deg2rad(b.Lat - a.Lat)
	dLon := deg2rad(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(a.Lat))*math.Cos(deg2rad(b.Lat))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusM * c
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
