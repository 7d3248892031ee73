package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xw1nchester/shopbuddy-backend/internal/geo"
	"github.com/xw1nchester/shopbuddy-backend/internal/market/store"
)

var jpNagar = store.StoreRecord{
	ID:        "starbucks-jp-nagar",
	Name:      "Starbucks JP Nagar",
	Latitude:  12.9063,
	Longitude: 77.5857,
	Hours:     "Open until 9PM",
	Address:   "JP Nagar 6th Phase, Bangalore",
	Inventory: []store.InventoryItem{
		{Name: "Hot Cocoa", InStock: true, Quantity: 10, Price: 250},
		{Name: "Iced Mocha", InStock: false, Price: 350.5},
	},
}

func TestBuildStoreContext(t *testing.T) {
	user := geo.Coordinates{Latitude: 12.906312, Longitude: 77.585749}

	ctx := BuildStoreContext(StoreContext{Store: jpNagar, Distance: "0m away", UserLocation: &user}, "₹")

	assert.Contains(t, ctx, "- Name: Starbucks JP Nagar\n")
	assert.Contains(t, ctx, "- Status: Open (Open until 9PM)\n")
	assert.Contains(t, ctx, "- Distance from user: 0m away\n")
	assert.Contains(t, ctx, "- Address: JP Nagar 6th Phase, Bangalore\n")
	assert.Contains(t, ctx, "- User's exact coordinates: 12.9063, 77.5857\n")
	assert.Contains(t, ctx, "CURRENT INVENTORY AT STARBUCKS JP NAGAR:\n")
	assert.Contains(t, ctx, "- Hot Cocoa: In Stock (10 available), ₹250\n")
	assert.Contains(t, ctx, "- Iced Mocha: Out of Stock, ₹350.50\n")
	assert.Contains(t, ctx, "WARM10")
}

func TestBuildStoreContext_ApproximateLocation(t *testing.T) {
	s := jpNagar
	s.Address = ""

	ctx := BuildStoreContext(StoreContext{Store: s, Distance: store.DistanceUnknown}, "$")

	assert.Contains(t, ctx, "- User location: approximate\n")
	assert.Contains(t, ctx, "- Address: Address available in app\n")
	assert.Contains(t, ctx, "- Distance from user: nearby\n")
	assert.Contains(t, ctx, "$250")
}

func TestBuildSystemPrompt(t *testing.T) {
	prompt := BuildSystemPrompt(StoreContext{Store: jpNagar, Distance: "1.2km away"}, "₹")

	assert.Contains(t, prompt, "You are ShopBuddy AI")
	assert.Contains(t, prompt, "STORE INFORMATION:")
	assert.Contains(t, prompt, "Always mention the correct store name (Starbucks JP Nagar)")
	assert.Contains(t, prompt, "RESPONSE FORMAT:")
}
