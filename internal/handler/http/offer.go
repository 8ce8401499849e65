package http

import (
	"net/http"

	"github.com/workaxis/hrms-backend-go/internal/domain/offer"
	"github.com/workaxis/hrms-backend-go/internal/handler/http/middleware"
	"github.com/workaxis/hrms-backend-go/internal/handler/http/response"
	"github.com/workaxis/hrms-backend-go/internal/pkg/validator"
)

type OfferLetterHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	BulkGenerate(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Accept(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	DownloadPDF(w http.ResponseWriter, r *http.Request)
}

type offerLetterHandlerImpl struct {
	offerService offer.OfferLetterService
}

func NewOfferLetterHandler(offerService offer.OfferLetterService) OfferLetterHandler {
	return &offerLetterHandlerImpl{offerService: offerService}
}

func (h *offerLetterHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req offer.CreateOfferLetterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.offerService.CreateOfferLetter(r.Context(), req, middleware.CurrentUser(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Offer letter created successfully", result)
}

func (h *offerLetterHandlerImpl) BulkGenerate(w http.ResponseWriter, r *http.Request) {
	var req offer.BulkGenerateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.offerService.BulkGenerateOfferLetters(r.Context(), req, middleware.CurrentUser(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, result.Message, result)
}

func (h *offerLetterHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.offerService.GetOfferLetter(r.Context(), urlID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *offerLetterHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := offer.OfferLetterFilter{EmployeeID: queryString(r, "employee_id")}
	if raw := queryString(r, "status"); raw != nil {
		status := offer.Status(*raw)
		if !status.IsValid() {
			var errs validator.ValidationErrors
			errs.Add("status", "status must be one of draft, sent, accepted, rejected, withdrawn")
			response.HandleError(w, errs)
			return
		}
		filter.Status = &status
	}

	result, err := h.offerService.ListOfferLetters(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *offerLetterHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req offer.UpdateStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.ID = urlID(r)

	result, err := h.offerService.UpdateStatus(r.Context(), req, middleware.CurrentUser(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Offer letter status updated", result)
}

func (h *offerLetterHandlerImpl) Accept(w http.ResponseWriter, r *http.Request) {
	result, err := h.offerService.AcceptOfferAndCreateEmployee(r.Context(), urlID(r), middleware.CurrentUser(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, result.Message, result)
}

func (h *offerLetterHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.offerService.DeleteOfferLetter(r.Context(), urlID(r), middleware.CurrentUser(r.Context())); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Offer letter deleted successfully", nil)
}

func (h *offerLetterHandlerImpl) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	doc, err := h.offerService.GeneratePDF(r.Context(), urlID(r), middleware.CurrentUser(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.File(w, doc.FileName, "application/pdf", doc.Content)
}
