package storeservice

import (
	"context"
	"errors"

	"github.com/xw1nchester/shopbuddy-backend/internal/apperror"
	"github.com/xw1nchester/shopbuddy-backend/internal/geo"
	"github.com/xw1nchester/shopbuddy-backend/internal/market/store"
	storedb "github.com/xw1nchester/shopbuddy-backend/internal/market/store/db"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockstoreservice
type Repository interface {
	GetAllStores(ctx context.Context) ([]store.StoreRecord, error)
	GetStoreByID(ctx context.Context, id string) (*store.StoreRecord, error)
}

type service struct {
	repository Repository
	logger     *zap.Logger
}

func New(repository Repository, logger *zap.Logger) *service {
	return &service{
		repository: repository,
		logger:     logger,
	}
}

// CheckCatalog loads the catalog once and validates it. It is meant to run at
// startup so that a broken source is reported before traffic arrives.
func (s *service) CheckCatalog(ctx context.Context) error {
	stores, err := s.repository.GetAllStores(ctx)
	if err != nil {
		return err
	}

	if err := store.ValidateCatalog(stores); err != nil {
		return err
	}

	s.logger.Info("store catalog loaded", zap.Int("stores", len(stores)))

	return nil
}

func (s *service) GetAllStores(ctx context.Context) ([]store.StoreRecord, error) {
	stores, err := s.repository.GetAllStores(ctx)
	if err != nil {
		s.logger.Error("unexpected error when fetching stores", zap.Error(err))

		return nil, err
	}

	return stores, nil
}

func (s *service) GetStoreByID(ctx context.Context, id string) (*store.StoreRecord, error) {
	record, err := s.repository.GetStoreByID(ctx, id)
	if err != nil {
		if errors.Is(err, storedb.ErrStoreNotFound) {
			return nil, apperror.ErrNotFound
		}

		s.logger.Error("unexpected error when fetching store by id", zap.Error(err))

		return nil, err
	}

	return record, nil
}

func (s *service) FindNearest(ctx context.Context, user geo.Coordinates) (*store.ResolvedStore, error) {
	stores, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	resolved := store.FindNearest(user, stores)

	s.logger.Debug(
		"nearest store resolved",
		zap.String("store", resolved.Store.ID),
		zap.Float64("distance", resolved.DistanceMeters),
	)

	return &resolved, nil
}

// DefaultStore is the fallback used when the user's position is unknown.
func (s *service) DefaultStore(ctx context.Context) (*store.ResolvedStore, error) {
	stores, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	resolved := store.Fallback(stores)

	return &resolved, nil
}

func (s *service) loadCatalog(ctx context.Context) ([]store.StoreRecord, error) {
	stores, err := s.repository.GetAllStores(ctx)
	if err != nil {
		s.logger.Error("unexpected error when fetching stores", zap.Error(err))

		return nil, err
	}

	if len(stores) == 0 {
		s.logger.Error("store catalog is empty")

		return nil, store.ErrEmptyCatalog
	}

	return stores, nil
}
