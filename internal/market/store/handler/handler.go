package storehandler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/xw1nchester/shopbuddy-backend/internal/apperror"
	"github.com/xw1nchester/shopbuddy-backend/internal/geo"
	"github.com/xw1nchester/shopbuddy-backend/internal/handlers"
	"github.com/xw1nchester/shopbuddy-backend/internal/market/store"
	"go.uber.org/zap"
)

var (
	validate = validator.New()

	errInvalidCoordinates = apperror.NewAppError("latitude and longitude must be numbers")
)

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockstorehandler
type Service interface {
	GetAllStores(ctx context.Context) ([]store.StoreRecord, error)
	GetStoreByID(ctx context.Context, id string) (*store.StoreRecord, error)
	FindNearest(ctx context.Context, user geo.Coordinates) (*store.ResolvedStore, error)
	DefaultStore(ctx context.Context) (*store.ResolvedStore, error)
}

type handler struct {
	service Service
	logger  *zap.Logger
}

func New(service Service, logger *zap.Logger) handlers.Handler {
	return &handler{
		service: service,
		logger:  logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Route("/stores", func(storeRouter chi.Router) {
		storeRouter.Get("/", apperror.Middleware(h.getAllStoresHandler))
		storeRouter.Get("/nearest", apperror.Middleware(h.getNearestStoreHandler))
		storeRouter.Get("/{id}", apperror.Middleware(h.getStoreHandler))
	})
}

// @Tags		stores
// @Success	200		{object}	StoresResponse
// @Failure	500		{object}	apperror.AppError
// @Router		/stores [get]
func (h *handler) getAllStoresHandler(w http.ResponseWriter, r *http.Request) error {
	stores, err := h.service.GetAllStores(r.Context())
	if err != nil {
		return err
	}

	render.JSON(w, r, StoresResponse{Stores: stores})

	return nil
}

// @Tags		stores
// @Param		id	path		string	true	"store id"
// @Success	200	{object}	StoreResponse
// @Failure	404,500	{object}	apperror.AppError
// @Router		/stores/{id} [get]
func (h *handler) getStoreHandler(w http.ResponseWriter, r *http.Request) error {
	record, err := h.service.GetStoreByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}

	render.JSON(w, r, StoreResponse{Store: *record})

	return nil
}

// Without both coordinates the default store is returned with an unknown
// distance, the same fallback the chat uses when location is unavailable.
//
// @Tags		stores
// @Param		latitude	query		number	false	"user latitude"
// @Param		longitude	query		number	false	"user longitude"
// @Success	200			{object}	store.ResolvedStore
// @Failure	400,500		{object}	apperror.AppError
// @Router		/stores/nearest [get]
func (h *handler) getNearestStoreHandler(w http.ResponseWriter, r *http.Request) error {
	lat := r.URL.Query().Get("latitude")
	lon := r.URL.Query().Get("longitude")

	if lat == "" || lon == "" {
		resolved, err := h.service.DefaultStore(r.Context())
		if err != nil {
			return err
		}

		render.JSON(w, r, resolved)

		return nil
	}

	var (
		dto CoordinatesRequest
		err error
	)

	if dto.Latitude, err = strconv.ParseFloat(lat, 64); err != nil {
		return errInvalidCoordinates
	}
	if dto.Longitude, err = strconv.ParseFloat(lon, 64); err != nil {
		return errInvalidCoordinates
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	resolved, err := h.service.FindNearest(r.Context(), dto.ToDomain())
	if err != nil {
		return err
	}

	render.JSON(w, r, resolved)

	return nil
}
