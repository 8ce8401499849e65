package http

import (
	"net/http"

	"github.com/workaxis/hrms-backend-go/internal/domain/employee"
	"github.com/workaxis/hrms-backend-go/internal/domain/salary"
	"github.com/workaxis/hrms-backend-go/internal/handler/http/middleware"
	"github.com/workaxis/hrms-backend-go/internal/handler/http/response"
	"github.com/workaxis/hrms-backend-go/internal/pkg/validator"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	ChangeStatus(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	GetActiveSalary(w http.ResponseWriter, r *http.Request)
	GetSalaryHistory(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
	salaryService   salary.SalaryService
}

func NewEmployeeHandler(employeeService employee.EmployeeService, salaryService salary.SalaryService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
		salaryService:   salaryService,
	}
}

func (h *employeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.employeeService.CreateEmployee(r.Context(), req, middleware.CurrentUser(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Employee created successfully", result)
}

func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.GetEmployee(r.Context(), urlID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := employee.EmployeeFilter{
		DepartmentID: queryString(r, "department_id"),
		Search:       r.URL.Query().Get("search"),
	}
	if raw := queryString(r, "status"); raw != nil {
		status := employee.Status(*raw)
		if !status.IsValid() {
			var errs validator.ValidationErrors
			errs.Add("status", "status is invalid")
			response.HandleError(w, errs)
			return
		}
		filter.Status = &status
	}

	result, err := h.employeeService.ListEmployees(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *employeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateEmployeeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.ID = urlID(r)

	result, err := h.employeeService.UpdateEmployee(r.Context(), req, middleware.CurrentUser(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee updated successfully", result)
}

func (h *employeeHandlerImpl) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	var req employee.ChangeStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.ID = urlID(r)

	result, err := h.employeeService.ChangeStatus(r.Context(), req, middleware.CurrentUser(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee status updated successfully", result)
}

func (h *employeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.employeeService.DeleteEmployee(r.Context(), urlID(r), middleware.CurrentUser(r.Context())); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee deleted successfully", nil)
}

func (h *employeeHandlerImpl) GetActiveSalary(w http.ResponseWriter, r *http.Request) {
	result, err := h.salaryService.GetActive(r.Context(), urlID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *employeeHandlerImpl) GetSalaryHistory(w http.ResponseWriter, r *http.Request) {
	result, err := h.salaryService.History(r.Context(), urlID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
