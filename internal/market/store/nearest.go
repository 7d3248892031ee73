package store

import "github.com/xw1nchester/shopbuddy-backend/internal/geo"

// FindNearest scans catalog and returns the store closest to user. The first
// store is the initial candidate and later stores replace it only when they
// are strictly closer, so ties go to the earliest entry.
//
// catalog must not be empty.
func FindNearest(user geo.Coordinates, catalog []StoreRecord) ResolvedStore {
	if len(catalog) == 0 {
		panic("store: FindNearest called with an empty catalog")
	}

	nearest := 0
	minDistance := geo.Distance(user, catalog[0].Coordinates())

	for i := 1; i < len(catalog); i++ {
		d := geo.Distance(user, catalog[i].Coordinates())
		if d < minDistance {
			nearest = i
			minDistance = d
		}
	}

	location := user

	return ResolvedStore{
		Store:             catalog[nearest],
		DistanceMeters:    minDistance,
		FormattedDistance: geo.FormatDistance(minDistance),
		UserLocation:      &location,
	}
}

// Fallback returns the first catalog entry with an unknown distance. It is
// used when the user's position is not available.
func Fallback(catalog []StoreRecord) ResolvedStore {
	if len(catalog) == 0 {
		panic("store: Fallback called with an empty catalog")
	}

	return ResolvedStore{
		Store:             catalog[0],
		FormattedDistance: DistanceUnknown,
	}
}
