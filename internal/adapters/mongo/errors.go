package mongo

import (
	"github.com/cockroachdb/errors"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/domain"
)

// storeErr maps driver errors onto the domain taxonomy. A missing document is
// NotFound; anything else still carries the driver cause but answers
// errors.Is(err, domain.ErrStorageUnavailable).
func storeErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.ErrNotFound
	}
	return errors.Mark(err, domain.ErrStorageUnavailable)
}
