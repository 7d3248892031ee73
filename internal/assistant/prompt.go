package assistant

import (
	"fmt"
	"strings"
)

const assistantName = "ShopBuddy AI"

// Offers are the promotions advertised in every store context.
var Offers = []string{
	"Hot drinks: 10% off with code WARM10",
	"Any coffee: 15% off with code COFFEE15",
	"First-time customers: Free cookie with any drink",
}

// BuildStoreContext renders the store data block the model answers from.
func BuildStoreContext(sc StoreContext, currency string) string {
	var b strings.Builder

	address := sc.Store.Address
	if address == "" {
		address = "Address available in app"
	}

	location := "User location: approximate"
	if sc.UserLocation != nil {
		location = fmt.Sprintf(
			"User's exact coordinates: %.4f, %.4f",
			sc.UserLocation.Latitude,
			sc.UserLocation.Longitude,
		)
	}

	b.WriteString("STORE INFORMATION:\n")
	fmt.Fprintf(&b, "- Name: %s\n", sc.Store.Name)
	fmt.Fprintf(&b, "- Status: Open (%s)\n", sc.Store.Hours)
	fmt.Fprintf(&b, "- Distance from user: %s\n", sc.Distance)
	fmt.Fprintf(&b, "- Address: %s\n", address)
	fmt.Fprintf(&b, "- %s\n", location)

	fmt.Fprintf(&b, "\nCURRENT INVENTORY AT %s:\n", strings.ToUpper(sc.Store.Name))
	for _, item := range sc.Store.Inventory {
		stock := "Out of Stock"
		if item.InStock {
			stock = fmt.Sprintf("In Stock (%d available)", item.Quantity)
		}
		fmt.Fprintf(&b, "- %s: %s, %s%s\n", item.Name, stock, currency, formatPrice(item.Price))
	}

	b.WriteString("\nACTIVE OFFERS:\n")
	for _, offer := range Offers {
		fmt.Fprintf(&b, "- %s\n", offer)
	}

	return b.String()
}

// BuildSystemPrompt combines the fixed instructions with the store context.
func BuildSystemPrompt(sc StoreContext, currency string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are %s, a friendly and helpful customer support assistant for retail stores. ", assistantName)
	b.WriteString("You have access to real-time store data and inventory information based on the user's ACTUAL detected location.\n\n")

	b.WriteString(BuildStoreContext(sc, currency))

	b.WriteString("\nIMPORTANT GUIDELINES:\n")
	b.WriteString("1. Be warm, friendly, and helpful - like a knowledgeable friend who works at the store\n")
	b.WriteString("2. Use the store data provided to give accurate, specific answers about THIS specific store\n")
	b.WriteString("3. When users ask about products, check the inventory for THIS store and provide availability info\n")
	fmt.Fprintf(&b, "4. Always mention the correct store name (%s) and actual distance from user\n", sc.Store.Name)
	b.WriteString("5. If users seem cold or mention weather, suggest warm drinks from THIS store's inventory\n")
	b.WriteString("6. Keep responses concise but informative (2-3 sentences max for simple questions)\n")
	b.WriteString("7. Use emojis sparingly (1-2 per message max) to keep a friendly tone\n")
	b.WriteString("8. If a product is not in this store's inventory, say so honestly and suggest alternatives they DO have\n")
	b.WriteString("9. Privacy is important - never ask for or expose personal information\n")
	b.WriteString("10. The distance shown is calculated from the user's actual GPS location\n")

	b.WriteString("\nRESPONSE FORMAT:\n")
	b.WriteString("- For store questions: Include store name, status, and the actual calculated distance\n")
	b.WriteString("- For product questions: Include availability, quantity if in stock, and any active offers\n")
	b.WriteString("- For recommendations: Consider the specific inventory at this location")

	return b.String()
}

// formatPrice drops the fraction for whole amounts: 250 -> "250", 2.5 -> "2.50".
func formatPrice(price float64) string {
	if price == float64(int64(price)) {
		return fmt.Sprintf("%d", int64(price))
	}
	return fmt.Sprintf("%.2f", price)
}
