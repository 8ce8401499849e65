package offer

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/workaxis/hrms-backend-go/internal/domain/employee"
	"github.com/workaxis/hrms-backend-go/internal/domain/offer"
	"github.com/workaxis/hrms-backend-go/internal/domain/salary"
	"github.com/workaxis/hrms-backend-go/internal/pkg/apperror"
	"github.com/workaxis/hrms-backend-go/internal/pkg/events"
	salaryservice "github.com/workaxis/hrms-backend-go/internal/service/salary"
)

const acceptedMessage = "Offer accepted and employee activated successfully"

// AcceptOfferAndCreateEmployee implements offer.OfferLetterService.
// The linked draft employee is promoted to Active with a permanent code and
// the offer's package becomes its only active salary. Either every change
// is committed or none is.
func (s *OfferLetterServiceImpl) AcceptOfferAndCreateEmployee(ctx context.Context, id string, acceptedBy string) (offer.AcceptOfferResponse, error) {
	var (
		accepted offer.OfferLetter
		emp      employee.Employee
		sal      salary.Salary
	)

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		o, err := s.offerRepo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if o.Status != offer.StatusSent {
			return apperror.Withf(offer.ErrOnlySentCanBeAccepted,
				"Only sent offers can be accepted. Current status: %s", o.Status.Label())
		}
		if o.EmployeeID == nil {
			return offer.ErrNoDraftEmployeeLinked
		}

		draft, err := s.employeeRepo.GetByIDForUpdate(ctx, *o.EmployeeID)
		if err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return offer.ErrLinkedEmployeeMissing
			}
			return err
		}
		if draft.Status != employee.StatusDraft {
			return offer.ErrLinkedEmployeeActive
		}

		code, err := s.employeeRepo.NextPermanentCode(ctx)
		if err != nil {
			return err
		}

		draft.FirstName, draft.LastName = employee.SplitName(o.CandidateName)
		draft.EmployeeCode = code
		if hasText(o.CandidatePhone) {
			draft.Phone = o.CandidatePhone
		}
		if hasText(o.CandidateAddress) {
			draft.Address = o.CandidateAddress
		}
		draft.DepartmentID = o.DepartmentID
		draft.DesignationID = o.DesignationID
		draft.JoiningDate = o.JoiningDate
		draft.Status = employee.StatusActive
		draft.UpdatedBy = &acceptedBy

		emp, err = s.employeeRepo.Update(ctx, draft)
		if err != nil {
			return err
		}

		offerID := o.ID
		sal, err = salaryservice.Activate(ctx, s.salaryRepo, salary.Salary{
			EmployeeID:    emp.ID,
			OfferLetterID: &offerID,
			Components:    o.Components,
			EffectiveFrom: o.JoiningDate,
			CreatedBy:     acceptedBy,
		})
		if err != nil {
			return err
		}

		acceptedOn := s.clock.Now()
		o.Status = offer.StatusAccepted
		o.AcceptedOn = &acceptedOn
		o.UpdatedBy = &acceptedBy

		accepted, err = s.offerRepo.Update(ctx, o)
		return err
	})
	if err != nil {
		slog.Warn("offer acceptance failed", "offer_letter_id", id, "error", err)
		return offer.AcceptOfferResponse{}, err
	}

	slog.Info("offer accepted",
		"offer_letter_id", accepted.ID,
		"employee_id", emp.ID,
		"employee_code", emp.EmployeeCode,
		"salary_id", sal.ID,
		"accepted_by", acceptedBy,
	)

	events.PublishAfterCommit(ctx, s.publisher, events.OfferAcceptedEvent{
		OfferLetterID: accepted.ID,
		EmployeeID:    emp.ID,
		EmployeeCode:  emp.EmployeeCode,
		SalaryID:      sal.ID,
		AcceptedBy:    acceptedBy,
		AcceptedOn:    *accepted.AcceptedOn,
	})

	return offer.AcceptOfferResponse{
		OfferLetter:  offer.NewOfferLetterResponse(accepted),
		EmployeeID:   emp.ID,
		EmployeeCode: emp.EmployeeCode,
		SalaryID:     sal.ID,
		Message:      acceptedMessage,
	}, nil
}

func hasText(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}
