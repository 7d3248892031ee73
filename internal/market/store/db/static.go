package storedb

import (
	"context"
	"slices"

	"github.com/xw1nchester/shopbuddy-backend/internal/market/store"
)

type staticCatalog struct {
	stores []store.StoreRecord
}

// NewStatic serves a catalog fixed at build time.
func NewStatic(stores []store.StoreRecord) *staticCatalog {
	return &staticCatalog{stores: stores}
}

func (c *staticCatalog) GetAllStores(ctx context.Context) ([]store.StoreRecord, error) {
	return slices.Clone(c.stores), nil
}

func (c *staticCatalog) GetStoreByID(ctx context.Context, id string) (*store.StoreRecord, error) {
	return findByID(c.stores, id)
}

func findByID(stores []store.StoreRecord, id string) (*store.StoreRecord, error) {
	for i := range stores {
		if stores[i].ID == id {
			s := stores[i]
			return &s, nil
		}
	}

	return nil, ErrStoreNotFound
}

// DefaultStores is the built-in Bangalore catalog. JP Nagar comes first and
// doubles as the fallback store.
func DefaultStores() []store.StoreRecord {
	return []store.StoreRecord{
		{
			ID:        "starbucks-jp-nagar",
			Name:      "Starbucks JP Nagar",
			Latitude:  12.9063,
			Longitude: 77.5857,
			Hours:     "Open until 9PM",
			Address:   "JP Nagar 6th Phase, Bangalore",
			Inventory: []store.InventoryItem{
				{Name: "Hot Cocoa", InStock: true, Quantity: 10, Price: 250},
				{Name: "Cappuccino", InStock: true, Quantity: 15, Price: 300},
				{Name: "Latte", InStock: true, Quantity: 12, Price: 320},
				{Name: "Iced Mocha", InStock: true, Quantity: 8, Price: 350},
			},
		},
		{
			ID:        "starbucks-koramangala",
			Name:      "Starbucks Koramangala",
			Latitude:  12.9352,
			Longitude: 77.6245,
			Hours:     "Open until 10PM",
			Address:   "Koramangala 5th Block, Bangalore",
			Inventory: []store.InventoryItem{
				{Name: "Hot Cocoa", InStock: true, Quantity: 5, Price: 250},
				{Name: "Espresso", InStock: true, Quantity: 20, Price: 200},
				{Name: "Cold Brew", InStock: true, Quantity: 7, Price: 380},
			},
		},
		{
			ID:        "starbucks-indiranagar",
			Name:      "Starbucks Indiranagar",
			Latitude:  12.9784,
			Longitude: 77.6408,
			Hours:     "Open until 11PM",
			Address:   "100 Feet Road, Indiranagar, Bangalore",
			Inventory: []store.InventoryItem{
				{Name: "Caramel Macchiato", InStock: true, Quantity: 12, Price: 350},
				{Name: "Flat White", InStock: true, Quantity: 8, Price: 320},
				{Name: "Hot Cocoa", InStock: true, Quantity: 15, Price: 250},
			},
		},
		{
			ID:        "cafe-coffee-day-hsr",
			Name:      "Cafe Coffee Day HSR",
			Latitude:  12.9116,
			Longitude: 77.6389,
			Hours:     "Open until 10PM",
			Address:   "HSR Layout Sector 2, Bangalore",
			Inventory: []store.InventoryItem{
				{Name: "Cappuccino", InStock: true, Quantity: 20, Price: 180},
				{Name: "Cafe Latte", InStock: true, Quantity: 15, Price: 200},
				{Name: "Hot Chocolate", InStock: true, Quantity: 10, Price: 160},
			},
		},
		{
			ID:        "third-wave-coffee-whitefield",
			Name:      "Third Wave Coffee Whitefield",
			Latitude:  12.9698,
			Longitude: 77.7499,
			Hours:     "Open until 9PM",
			Address:   "Whitefield Main Road, Bangalore",
			Inventory: []store.InventoryItem{
				{Name: "Pour Over", InStock: true, Quantity: 8, Price: 280},
				{Name: "Cortado", InStock: true, Quantity: 12, Price: 220},
				{Name: "Matcha Latte", InStock: true, Quantity: 6, Price: 300},
			},
		},
	}
}
