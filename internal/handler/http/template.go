package http

import (
	"net/http"

	"github.com/workaxis/hrms-backend-go/internal/domain/template"
	"github.com/workaxis/hrms-backend-go/internal/handler/http/middleware"
	"github.com/workaxis/hrms-backend-go/internal/handler/http/response"
)

type TemplateHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	GetDefault(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	SetDefault(w http.ResponseWriter, r *http.Request)
	Clone(w http.ResponseWriter, r *http.Request)
	Preview(w http.ResponseWriter, r *http.Request)
	ListPlaceholders(w http.ResponseWriter, r *http.Request)
}

type templateHandlerImpl struct {
	templateService template.TemplateService
}

func NewTemplateHandler(templateService template.TemplateService) TemplateHandler {
	return &templateHandlerImpl{templateService: templateService}
}

func (h *templateHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.templateService.ListTemplates(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *templateHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.templateService.GetTemplate(r.Context(), urlID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *templateHandlerImpl) GetDefault(w http.ResponseWriter, r *http.Request) {
	result, err := h.templateService.GetDefaultTemplate(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *templateHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req template.CreateTemplateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.templateService.CreateTemplate(r.Context(), req, middleware.CurrentUser(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Template created successfully", result)
}

func (h *templateHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req template.UpdateTemplateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.ID = urlID(r)

	result, err := h.templateService.UpdateTemplate(r.Context(), req, middleware.CurrentUser(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Template updated successfully", result)
}

func (h *templateHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.templateService.DeleteTemplate(r.Context(), urlID(r), middleware.CurrentUser(r.Context())); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Template deleted successfully", nil)
}

func (h *templateHandlerImpl) SetDefault(w http.ResponseWriter, r *http.Request) {
	result, err := h.templateService.SetDefaultTemplate(r.Context(), urlID(r), middleware.CurrentUser(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Default template updated", result)
}

func (h *templateHandlerImpl) Clone(w http.ResponseWriter, r *http.Request) {
	result, err := h.templateService.CloneTemplate(r.Context(), urlID(r), middleware.CurrentUser(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Template cloned successfully", result)
}

func (h *templateHandlerImpl) Preview(w http.ResponseWriter, r *http.Request) {
	var req template.PreviewTemplateRequest
	if r.ContentLength != 0 && !decodeJSON(w, r, &req) {
		return
	}
	req.ID = urlID(r)

	result, err := h.templateService.PreviewTemplate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *templateHandlerImpl) ListPlaceholders(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.templateService.ListPlaceholders(r.Context()))
}
