package storedb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/xw1nchester/shopbuddy-backend/internal/market/store"
	"go.uber.org/zap"
)

// catalogDocument is the layout of the catalog object:
// {"stores": [StoreRecord, ...]}.
type catalogDocument struct {
	Stores []store.StoreRecord `json:"stores"`
}

type objectCatalog struct {
	client *minio.Client
	bucket string
	object string
	logger *zap.Logger
}

// NewObject reads the catalog from a JSON object in an S3 compatible bucket.
// The object is fetched on every call, so uploading a new version swaps the
// catalog without a restart.
func NewObject(client *minio.Client, bucket, object string, logger *zap.Logger) *objectCatalog {
	return &objectCatalog{
		client: client,
		bucket: bucket,
		object: object,
		logger: logger,
	}
}

func (c *objectCatalog) GetAllStores(ctx context.Context) ([]store.StoreRecord, error) {
	obj, err := c.client.GetObject(ctx, c.bucket, c.object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog object: %w", err)
	}
	defer obj.Close()

	stores, err := decodeCatalog(obj)
	if err != nil {
		c.logger.Error(
			"failed to decode catalog object",
			zap.String("bucket", c.bucket),
			zap.String("object", c.object),
			zap.Error(err),
		)
		return nil, err
	}

	return stores, nil
}

func (c *objectCatalog) GetStoreByID(ctx context.Context, id string) (*store.StoreRecord, error) {
	stores, err := c.GetAllStores(ctx)
	if err != nil {
		return nil, err
	}

	return findByID(stores, id)
}

func decodeCatalog(r io.Reader) ([]store.StoreRecord, error) {
	var doc catalogDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	return doc.Stores, nil
}
