package offer

import (
	"context"
	"strings"
)

type OfferLetterService interface {
	CreateOfferLetter(ctx context.Context, req CreateOfferLetterRequest, createdBy string) (OfferLetterResponse, error)
	BulkGenerateOfferLetters(ctx context.Context, req BulkGenerateRequest, createdBy string) (BulkGenerateResponse, error)
	UpdateStatus(ctx context.Context, req UpdateStatusRequest, updatedBy string) (OfferLetterResponse, error)
	AcceptOfferAndCreateEmployee(ctx context.Context, id string, acceptedBy string) (AcceptOfferResponse, error)
	GetOfferLetter(ctx context.Context, id string) (OfferLetterResponse, error)
	ListOfferLetters(ctx context.Context, filter OfferLetterFilter) ([]OfferLetterResponse, error)
	DeleteOfferLetter(ctx context.Context, id string, deletedBy string) error
	GeneratePDF(ctx context.Context, id string, generatedBy string) (OfferLetterDocument, error)
}

// DocumentRenderer turns generated offer content into a printable document.
type DocumentRenderer interface {
	RenderOfferLetter(o OfferLetter) ([]byte, error)
}

type OfferLetterDocument struct {
	FileName string
	FilePath string
	Content  []byte
}

// DocumentFileName builds the PDF file name from the candidate's name, keeping
// only lowercase letters and digits joined by underscores.
func DocumentFileName(candidateName string) string {
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(candidateName) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pending && b.Len() > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
			pending = false
			continue
		}
		pending = true
	}
	slug := b.String()
	if slug == "" {
		slug = "candidate"
	}
	return "offer_letter_" + slug + ".pdf"
}
