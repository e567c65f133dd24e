package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hr/dayflow-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	GetMyAttendance(w http.ResponseWriter, r *http.Request)
	GetSummary(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// CheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.CheckIn(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Check in successful", result)
}

// CheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.CheckOut(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Check out successful", result)
}

// GetMyAttendance implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetMyAttendance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Parse query parameters
	filter := attendance.MyAttendanceFilter{}

	if date := r.URL.Query().Get("date"); date != "" {
		filter.Date = &date
	}
	if startDate := r.URL.Query().Get("start_date"); startDate != "" {
		filter.StartDate = &startDate
	}
	if endDate := r.URL.Query().Get("end_date"); endDate != "" {
		filter.EndDate = &endDate
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}

	filter.Page = getIntQueryParam(r, "page", 1)
	filter.Limit = getIntQueryParam(r, "limit", 20)
	filter.SortBy = r.URL.Query().Get("sort_by")
	filter.SortOrder = r.URL.Query().Get("sort_order")

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.attendanceService.GetMyAttendance(ctx, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, results.Items, listMeta(results.Page, results.Limit, results.TotalItems))
}

// GetSummary implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()
	req := attendance.SummaryRequest{
		Month: getIntQueryParam(r, "month", int(now.Month())),
		Year:  getIntQueryParam(r, "year", now.Year()),
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.GetSummary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Parse query parameters
	filter := attendance.AttendanceFilter{}

	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}
	if employeeName := r.URL.Query().Get("employee_name"); employeeName != "" {
		filter.EmployeeName = &employeeName
	}
	if date := r.URL.Query().Get("date"); date != "" {
		filter.Date = &date
	}
	if startDate := r.URL.Query().Get("start_date"); startDate != "" {
		filter.StartDate = &startDate
	}
	if endDate := r.URL.Query().Get("end_date"); endDate != "" {
		filter.EndDate = &endDate
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}

	filter.Page = getIntQueryParam(r, "page", 1)
	filter.Limit = getIntQueryParam(r, "limit", 20)
	filter.SortBy = r.URL.Query().Get("sort_by")
	filter.SortOrder = r.URL.Query().Get("sort_order")

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.attendanceService.ListAttendance(ctx, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, results.Items, listMeta(results.Page, results.Limit, results.TotalItems))
}

// getIntQueryParam gets an int query parameter with a default value
func getIntQueryParam(r *http.Request, key string, defaultVal int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return intVal
}

// listMeta builds envelope pagination from a list result.
func listMeta(page, limit int, totalItems int64) *response.Meta {
	meta := &response.Meta{
		Page:       page,
		Limit:      limit,
		TotalItems: totalItems,
	}
	if limit > 0 {
		meta.TotalPages = int((totalItems + int64(limit) - 1) / int64(limit))
	}
	return meta
}
