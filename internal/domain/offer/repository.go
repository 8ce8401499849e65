package offer

import "context"

type OfferLetterRepository interface {
	Create(ctx context.Context, o OfferLetter) (OfferLetter, error)
	Update(ctx context.Context, o OfferLetter) (OfferLetter, error)
	SoftDelete(ctx context.Context, id string, deletedBy string) error
	GetByID(ctx context.Context, id string) (OfferLetter, error)
	// GetByIDForUpdate locks the row for the rest of the surrounding transaction.
	GetByIDForUpdate(ctx context.Context, id string) (OfferLetter, error)
	List(ctx context.Context, filter OfferLetterFilter) ([]OfferLetter, error)
}
