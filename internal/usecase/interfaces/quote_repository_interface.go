package interfaces

import (
	"context"

	"orcaobra/internal/domain/entities"
)

// IQuoteRepository abstracts persistence of the saved-quotes collection.
//
// The collection is addressed as a whole document: every write serializes the
// entire list, every read deserializes it. No partial-field updates; last
// write wins. Callers do read-modify-write.
type IQuoteRepository interface {
	Load(ctx context.Context) ([]entities.Quote, error)
	Store(ctx context.Context, quotes []entities.Quote) error
}
