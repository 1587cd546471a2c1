package repository

import (
	"context"
	"encoding/json"

	"orcaobra/internal/domain/entities"
	"orcaobra/internal/usecase/interfaces"
)

// QuoteDynamoRepository persists the saved-quotes collection as a single JSON
// document. Every mutation rewrites the full list; callers do
// read-modify-write.
type QuoteDynamoRepository struct {
	docs *DocumentDynamoRepository
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(docs *DocumentDynamoRepository) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{docs: docs}
}

func (r *QuoteDynamoRepository) Load(ctx context.Context) ([]entities.Quote, error) {
	blob, err := r.docs.Get(ctx, DocumentKeyQuotes)
	if err != nil {
		return nil, err
	}
	if len(blob) == 0 {
		return []entities.Quote{}, nil
	}

	var quotes []entities.Quote
	if err := json.Unmarshal(blob, &quotes); err != nil {
		return nil, err
	}
	return quotes, nil
}

func (r *QuoteDynamoRepository) Store(ctx context.Context, quotes []entities.Quote) error {
	if quotes == nil {
		quotes = []entities.Quote{}
	}
	blob, err := json.Marshal(quotes)
	if err != nil {
		return err
	}
	return r.docs.Put(ctx, DocumentKeyQuotes, blob)
}
