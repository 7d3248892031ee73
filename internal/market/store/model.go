package store

import "github.com/xw1nchester/shopbuddy-backend/internal/geo"

// DistanceUnknown is shown instead of a formatted distance when the user's
// position could not be acquired.
const DistanceUnknown = "nearby"

type InventoryItem struct {
	Name     string  `json:"name"`
	InStock  bool    `json:"inStock"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type StoreRecord struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Latitude  float64         `json:"latitude"`
	Longitude float64         `json:"longitude"`
	Hours     string          `json:"hours"`
	Address   string          `json:"address"`
	Inventory []InventoryItem `json:"inventory"`
}

func (s StoreRecord) Coordinates() geo.Coordinates {
	return geo.Coordinates{Latitude: s.Latitude, Longitude: s.Longitude}
}

// ResolvedStore is the store picked for a user together with its distance.
// UserLocation is nil when the store is the fallback default.
type ResolvedStore struct {
	Store             StoreRecord      `json:"store"`
	DistanceMeters    float64          `json:"distanceMeters"`
	FormattedDistance string           `json:"distance"`
	UserLocation      *geo.Coordinates `json:"userLocation"`
}
