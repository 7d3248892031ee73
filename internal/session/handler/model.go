package sessionhandler

import (
	"github.com/xw1nchester/shopbuddy-backend/internal/geo"
	"github.com/xw1nchester/shopbuddy-backend/internal/location"
	"github.com/xw1nchester/shopbuddy-backend/pkg/types"
)

type CoordinatesRequest struct {
	Latitude  types.FloatOrString `json:"latitude" validate:"latitude"`
	Longitude types.FloatOrString `json:"longitude" validate:"longitude"`
}

type LocationErrorRequest struct {
	Code int `json:"code"`
}

// LocationRequest is what the client's platform geolocation produced: either
// a position, an error code, or nothing when the platform has no support.
type LocationRequest struct {
	Location      *CoordinatesRequest   `json:"location"`
	LocationError *LocationErrorRequest `json:"locationError"`
}

func (lr LocationRequest) ToReport() location.Report {
	var report location.Report

	if lr.Location != nil {
		report.Coordinates = &geo.Coordinates{
			Latitude:  float64(lr.Location.Latitude),
			Longitude: float64(lr.Location.Longitude),
		}
	}

	if lr.LocationError != nil {
		report.Error = &location.PositionError{Code: lr.LocationError.Code}
	}

	return report
}

type SendMessageRequest struct {
	Content string `json:"content" validate:"required"`
}
