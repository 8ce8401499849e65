package http

import (
	"net/http"
	"strconv"

	"github.com/workaxis/hrms-backend-go/internal/domain/leave"
	"github.com/workaxis/hrms-backend-go/internal/handler/http/middleware"
	"github.com/workaxis/hrms-backend-go/internal/handler/http/response"
	"github.com/workaxis/hrms-backend-go/internal/pkg/validator"
)

type LeaveHandler interface {
	CreateType(w http.ResponseWriter, r *http.Request)
	ListTypes(w http.ResponseWriter, r *http.Request)

	InitializeBalances(w http.ResponseWriter, r *http.Request)
	GetBalances(w http.ResponseWriter, r *http.Request)

	CreateRequest(w http.ResponseWriter, r *http.Request)
	GetRequest(w http.ResponseWriter, r *http.Request)
	ListRequests(w http.ResponseWriter, r *http.Request)
	ListPendingRequests(w http.ResponseWriter, r *http.Request)
	ApproveRequest(w http.ResponseWriter, r *http.Request)
	CancelRequest(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{leaveService: leaveService}
}

// ========== LEAVE TYPES ==========

func (h *leaveHandlerImpl) CreateType(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveTypeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.leaveService.CreateLeaveType(r.Context(), req, middleware.CurrentUser(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Leave type created successfully", result)
}

func (h *leaveHandlerImpl) ListTypes(w http.ResponseWriter, r *http.Request) {
	activeOnly, _ := strconv.ParseBool(r.URL.Query().Get("active_only"))

	result, err := h.leaveService.ListLeaveTypes(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// ========== BALANCES ==========

func (h *leaveHandlerImpl) InitializeBalances(w http.ResponseWriter, r *http.Request) {
	var req leave.InitializeBalancesRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.leaveService.InitializeBalances(r.Context(), req.EmployeeID, req.Year, middleware.CurrentUser(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave balances initialized", result)
}

func (h *leaveHandlerImpl) GetBalances(w http.ResponseWriter, r *http.Request) {
	var errs validator.ValidationErrors
	employeeID := r.URL.Query().Get("employee_id")
	if employeeID == "" {
		errs.Add("employee_id", "employee_id is required")
	}
	year, err := queryInt(r, "year")
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if year == nil {
		errs.Add("year", "year is required")
	}
	if err := errs.Err(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.leaveService.GetBalances(r.Context(), employeeID, *year)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// ========== REQUESTS ==========

func (h *leaveHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.leaveService.CreateLeaveRequest(r.Context(), req, middleware.CurrentUser(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Leave request submitted successfully", result)
}

func (h *leaveHandlerImpl) GetRequest(w http.ResponseWriter, r *http.Request) {
	result, err := h.leaveService.GetLeaveRequest(r.Context(), urlID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *leaveHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
	filter := leave.LeaveRequestFilter{EmployeeID: queryString(r, "employee_id")}
	if raw := queryString(r, "status"); raw != nil {
		status := leave.RequestStatus(*raw)
		if !status.IsValid() {
			var errs validator.ValidationErrors
			errs.Add("status", "status must be one of pending, approved, rejected, cancelled")
			response.HandleError(w, errs)
			return
		}
		filter.Status = &status
	}

	result, err := h.leaveService.ListLeaveRequests(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *leaveHandlerImpl) ListPendingRequests(w http.ResponseWriter, r *http.Request) {
	result, err := h.leaveService.ListPendingLeaveRequests(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *leaveHandlerImpl) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	var req leave.ApproveLeaveRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.ID = urlID(r)

	result, err := h.leaveService.ApproveLeaveRequest(r.Context(), req, middleware.CurrentUser(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	message := "Leave request rejected"
	if req.IsApproved {
		message = "Leave request approved"
	}
	response.SuccessWithMessage(w, message, result)
}

func (h *leaveHandlerImpl) CancelRequest(w http.ResponseWriter, r *http.Request) {
	result, err := h.leaveService.CancelLeaveRequest(r.Context(), urlID(r), middleware.CurrentUser(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave request cancelled", result)
}
