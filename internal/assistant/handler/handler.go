package assistanthandler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/xw1nchester/shopbuddy-backend/internal/apperror"
	"github.com/xw1nchester/shopbuddy-backend/internal/assistant"
	"github.com/xw1nchester/shopbuddy-backend/internal/handlers"
	"github.com/xw1nchester/shopbuddy-backend/internal/market/store"
	"go.uber.org/zap"
)

var validate = validator.New()

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockassistanthandler
type Service interface {
	Reply(ctx context.Context, history []assistant.Turn, sc assistant.StoreContext) assistant.Outcome
}

type StoreService interface {
	DefaultStore(ctx context.Context) (*store.ResolvedStore, error)
}

type handler struct {
	service      Service
	storeService StoreService
	logger       *zap.Logger
}

func New(service Service, storeService StoreService, logger *zap.Logger) handlers.Handler {
	return &handler{
		service:      service,
		storeService: storeService,
		logger:       logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Post("/chat", apperror.Middleware(h.chatHandler))
}

// @Tags		chat
// @Param		request	body		ChatRequest	true	"request body"
// @Success	200		{object}	ChatResponse
// @Failure	400,402,429,500	{object}	apperror.AppError
// @Router		/chat [post]
func (h *handler) chatHandler(w http.ResponseWriter, r *http.Request) error {
	var dto ChatRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	sc, err := h.storeContext(r.Context(), dto.StoreContext)
	if err != nil {
		return err
	}

	outcome := h.service.Reply(r.Context(), dto.History(), sc)

	if success, ok := outcome.(assistant.Success); ok {
		render.JSON(w, r, NewChatResponse(success.Text, sc))
		return nil
	}

	return assistant.OutcomeError(outcome)
}

// storeContext falls back to the default store when the client did not send
// one, mirroring the welcome screen fallback.
func (h *handler) storeContext(ctx context.Context, req *StoreContextRequest) (assistant.StoreContext, error) {
	if req != nil && req.Store.Name != "" {
		distance := req.Distance
		if distance == "" {
			distance = store.DistanceUnknown
		}

		return assistant.StoreContext{
			Store:        req.Store,
			Distance:     distance,
			UserLocation: req.UserLocation,
		}, nil
	}

	resolved, err := h.storeService.DefaultStore(ctx)
	if err != nil {
		return assistant.StoreContext{}, err
	}

	sc := assistant.NewStoreContext(*resolved)
	if req != nil {
		sc.UserLocation = req.UserLocation
		if req.Distance != "" {
			sc.Distance = req.Distance
		}
	}

	return sc, nil
}
