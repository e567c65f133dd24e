package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hr/dayflow-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	CreateRequest(w http.ResponseWriter, r *http.Request)
	GetMyRequests(w http.ResponseWriter, r *http.Request)
	GetMyBalance(w http.ResponseWriter, r *http.Request)
	ListPendingRequests(w http.ResponseWriter, r *http.Request)
	ListRequests(w http.ResponseWriter, r *http.Request)
	ApproveRequest(w http.ResponseWriter, r *http.Request)
	RejectRequest(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{
		leaveService: leaveService,
	}
}

// CreateRequest implements LeaveHandler.
func (h *leaveHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveRequestRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	leaveRequest, err := h.leaveService.SubmitRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request created successfully", leaveRequest)
}

// GetMyRequests implements LeaveHandler.
func (h *leaveHandlerImpl) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	filter := leave.LeaveRequestFilter{}

	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}
	filter.Page = getIntQueryParam(r, "page", 1)
	filter.Limit = getIntQueryParam(r, "limit", 20)

	results, err := h.leaveService.ListMyRequests(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, results.Items, listMeta(results.Page, results.Limit, results.TotalItems))
}

// GetMyBalance implements LeaveHandler.
func (h *leaveHandlerImpl) GetMyBalance(w http.ResponseWriter, r *http.Request) {
	year := getIntQueryParam(r, "year", time.Now().UTC().Year())

	balance, err := h.leaveService.GetMyBalance(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, balance)
}

// ListPendingRequests implements LeaveHandler.
func (h *leaveHandlerImpl) ListPendingRequests(w http.ResponseWriter, r *http.Request) {
	pending := string(leave.LeaveRequestStatusPending)
	filter := leave.LeaveRequestFilter{
		Status: &pending,
		Page:   getIntQueryParam(r, "page", 1),
		Limit:  getIntQueryParam(r, "limit", 20),
	}

	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}

	results, err := h.leaveService.ListRequests(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, results.Items, listMeta(results.Page, results.Limit, results.TotalItems))
}

// ListRequests implements LeaveHandler.
func (h *leaveHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
	filter := leave.LeaveRequestFilter{}

	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}
	filter.Page = getIntQueryParam(r, "page", 1)
	filter.Limit = getIntQueryParam(r, "limit", 20)

	results, err := h.leaveService.ListRequests(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, results.Items, listMeta(results.Page, results.Limit, results.TotalItems))
}

// ApproveRequest implements LeaveHandler.
func (h *leaveHandlerImpl) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeResolveRequest(w, r)
	if !ok {
		return
	}

	result, err := h.leaveService.Approve(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved successfully", result)
}

// RejectRequest implements LeaveHandler.
func (h *leaveHandlerImpl) RejectRequest(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeResolveRequest(w, r)
	if !ok {
		return
	}

	result, err := h.leaveService.Reject(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request rejected successfully", result)
}

func (h *leaveHandlerImpl) decodeResolveRequest(w http.ResponseWriter, r *http.Request) (leave.ResolveLeaveRequestRequest, bool) {
	var req leave.ResolveLeaveRequestRequest

	// The comment body is optional; a missing or empty body means the
	// default comment applies.
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("Resolve request decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return req, false
		}
	}

	req.ID = chi.URLParam(r, "id")
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return req, false
	}

	return req, true
}
