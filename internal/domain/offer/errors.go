package offer

import "github.com/workaxis/hrms-backend-go/internal/pkg/apperror"

var (
	ErrOfferLetterNotFound   = apperror.NotFound("Offer letter not found")
	ErrEmployeeNotFound      = apperror.NotFound("Employee not found")
	ErrEmployeeNotDraft      = apperror.InvalidState("Employee must be in Draft status to link an offer letter")
	ErrOnlySentCanBeAccepted = apperror.InvalidState("Only sent offers can be accepted")
	ErrNoDraftEmployeeLinked = apperror.InvalidState("Offer letter must be linked to a draft employee to be accepted.")
	ErrLinkedEmployeeMissing = apperror.NotFound("Linked draft employee not found.")
	ErrLinkedEmployeeActive  = apperror.InvalidState("Linked employee is not in Draft status.")
	ErrInvalidTransition     = apperror.InvalidState("Offer letter status change is not allowed")
	ErrAcceptViaEndpoint     = apperror.InvalidState("Offers can only be accepted through the accept operation")
	ErrCannotDelete          = apperror.InvalidState("Only draft or withdrawn offer letters can be deleted")
	ErrNoOffersGenerated     = apperror.Validation("Failed to generate any offer letters.")
)
