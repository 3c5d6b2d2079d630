package ports

import "context"

type ResolvedLocation struct {
	Address  string
	District string
}

// Geocoder resolves coordinates into an address and district name.
// Backed by an external maps API; results may be cached.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, lat, lon float64) (*ResolvedLocation, error)
}
