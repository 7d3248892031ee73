package assistanthandler

import (
	"github.com/xw1nchester/shopbuddy-backend/internal/assistant"
	"github.com/xw1nchester/shopbuddy-backend/internal/geo"
	"github.com/xw1nchester/shopbuddy-backend/internal/market/store"
)

type TurnRequest struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

type StoreContextRequest struct {
	Store        store.StoreRecord `json:"store"`
	Distance     string            `json:"distance"`
	UserLocation *geo.Coordinates  `json:"userLocation"`
}

type ChatRequest struct {
	Messages     []TurnRequest        `json:"messages" validate:"required,min=1,dive"`
	StoreContext *StoreContextRequest `json:"storeContext"`
}

func (cr *ChatRequest) History() []assistant.Turn {
	history := make([]assistant.Turn, len(cr.Messages))
	for i, m := range cr.Messages {
		history[i] = assistant.Turn{Role: assistant.Role(m.Role), Content: m.Content}
	}
	return history
}

type StoreData struct {
	Name     string `json:"name"`
	Status   string `json:"status"`
	Hours    string `json:"hours"`
	Distance string `json:"distance"`
}

type ChatResponse struct {
	Response  string    `json:"response"`
	StoreData StoreData `json:"storeData"`
}

func NewChatResponse(text string, sc assistant.StoreContext) ChatResponse {
	return ChatResponse{
		Response: text,
		StoreData: StoreData{
			Name:     sc.Store.Name,
			Status:   "Open",
			Hours:    sc.Store.Hours,
			Distance: sc.Distance,
		},
	}
}
