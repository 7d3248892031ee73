package location

import (
	"context"

	"github.com/xw1nchester/shopbuddy-backend/internal/geo"
)

// Report is what a client's platform returned for a position request: either
// coordinates or a position error. An empty report means the client has no
// geolocation support.
type Report struct {
	Coordinates *geo.Coordinates
	Error       *PositionError
}

// CurrentPosition replays the report as a Provider.
func (r Report) CurrentPosition(ctx context.Context, _ Options) (geo.Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return geo.Coordinates{}, err
	}

	if r.Coordinates != nil {
		return *r.Coordinates, nil
	}

	if r.Error != nil {
		return geo.Coordinates{}, r.Error
	}

	return geo.Coordinates{}, ErrUnsupported
}
