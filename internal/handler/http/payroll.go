package http

import (
	"net/http"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/payroll"
	"github.com/dayflow-hr/dayflow-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	GetMySalary(w http.ResponseWriter, r *http.Request)
	GetBreakdown(w http.ResponseWriter, r *http.Request)
	GeneratePayslip(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

// GetMySalary implements PayrollHandler.
func (h *payrollHandlerImpl) GetMySalary(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.GetMySalary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetBreakdown implements PayrollHandler.
func (h *payrollHandlerImpl) GetBreakdown(w http.ResponseWriter, r *http.Request) {
	req := periodFromQuery(r)

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.GetBreakdown(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GeneratePayslip implements PayrollHandler.
func (h *payrollHandlerImpl) GeneratePayslip(w http.ResponseWriter, r *http.Request) {
	req := periodFromQuery(r)

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.GeneratePayslip(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payslip generated successfully", result)
}

func periodFromQuery(r *http.Request) payroll.PeriodRequest {
	now := time.Now().UTC()
	return payroll.PeriodRequest{
		Month: getIntQueryParam(r, "month", int(now.Month())),
		Year:  getIntQueryParam(r, "year", now.Year()),
	}
}
