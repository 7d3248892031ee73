package store

import (
	"errors"
	"fmt"

	"github.com/xw1nchester/shopbuddy-backend/pkg/utils"
)

var ErrEmptyCatalog = errors.New("store catalog is empty")

// ValidateCatalog checks the invariants every catalog source must hold before
// it is served: at least one store, unique store IDs, unique item names within
// a store and non-negative quantities and prices.
func ValidateCatalog(catalog []StoreRecord) error {
	if len(catalog) == 0 {
		return ErrEmptyCatalog
	}

	ids := make([]string, len(catalog))
	for i, s := range catalog {
		ids[i] = s.ID
	}
	if len(utils.RemoveDuplicates(ids)) != len(ids) {
		return errors.New("store catalog contains duplicate store ids")
	}

	for _, s := range catalog {
		if s.ID == "" {
			return errors.New("store catalog contains a store without id")
		}

		names := make([]string, len(s.Inventory))
		for i, item := range s.Inventory {
			if item.Quantity < 0 || item.Price < 0 {
				return fmt.Errorf("store %s: item %q has a negative quantity or price", s.ID, item.Name)
			}
			names[i] = item.Name
		}

		if len(utils.RemoveDuplicates(names)) != len(names) {
			return fmt.Errorf("store %s: duplicate inventory item names", s.ID)
		}
	}

	return nil
}
