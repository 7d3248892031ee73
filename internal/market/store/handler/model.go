package storehandler

import (
	"github.com/xw1nchester/shopbuddy-backend/internal/geo"
	"github.com/xw1nchester/shopbuddy-backend/internal/market/store"
)

type StoresResponse struct {
	Stores []store.StoreRecord `json:"stores"`
}

type StoreResponse struct {
	Store store.StoreRecord `json:"store"`
}

type CoordinatesRequest struct {
	Latitude  float64 `validate:"latitude"`
	Longitude float64 `validate:"longitude"`
}

func (cr CoordinatesRequest) ToDomain() geo.Coordinates {
	return geo.Coordinates{Latitude: cr.Latitude, Longitude: cr.Longitude}
}
