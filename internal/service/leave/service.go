package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/notification"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/database"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/dateutil"
	"github.com/dayflow-hr/dayflow-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
)

const (
	defaultApproveComment = "Approved"
	defaultRejectComment  = "Not approved"
)

type leaveServiceImpl struct {
	requestRepo   leave.LeaveRequestRepository
	balanceRepo   leave.LeaveBalanceRepository
	notifier      notification.Service
	allowNegative bool

	runTx func(ctx context.Context, fn func(ctx context.Context) error) error
	now   func() time.Time
}

func NewLeaveService(
	db *database.DB,
	requestRepo leave.LeaveRequestRepository,
	balanceRepo leave.LeaveBalanceRepository,
	notifier notification.Service,
	allowNegative bool,
) leave.LeaveService {
	return &leaveServiceImpl{
		requestRepo:   requestRepo,
		balanceRepo:   balanceRepo,
		notifier:      notifier,
		allowNegative: allowNegative,
		runTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
		now: time.Now,
	}
}

// Helper to get the caller's identity from JWT context
func identityFromContext(ctx context.Context) (employeeID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id claim is missing or invalid")
	}

	return employeeID, nil
}

// SubmitRequest implements leave.LeaveService.
func (s *leaveServiceImpl) SubmitRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	employeeID, err := identityFromContext(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	startDate, err := dateutil.ParseDate(req.StartDate)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	endDate, err := dateutil.ParseDate(req.EndDate)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	totalDays, err := dateutil.DaysInclusive(startDate, endDate)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request := leave.LeaveRequest{
		EmployeeID: employeeID,
		Type:       leave.LeaveType(req.Type),
		StartDate:  startDate,
		EndDate:    endDate,
		TotalDays:  totalDays,
		Reason:     req.Reason,
		Status:     leave.LeaveRequestStatusPending,
	}

	created, err := s.requestRepo.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return mapLeaveRequestToResponse(created), nil
}

// Approve implements leave.LeaveService.
func (s *leaveServiceImpl) Approve(ctx context.Context, req leave.ResolveLeaveRequestRequest) (leave.ResolveLeaveRequestResponse, error) {
	return s.resolve(ctx, req, leave.LeaveRequestStatusApproved)
}

// Reject implements leave.LeaveService.
func (s *leaveServiceImpl) Reject(ctx context.Context, req leave.ResolveLeaveRequestRequest) (leave.ResolveLeaveRequestResponse, error) {
	return s.resolve(ctx, req, leave.LeaveRequestStatusRejected)
}

func (s *leaveServiceImpl) resolve(ctx context.Context, req leave.ResolveLeaveRequestRequest, status leave.LeaveRequestStatus) (leave.ResolveLeaveRequestResponse, error) {
	adminID, err := identityFromContext(ctx)
	if err != nil {
		return leave.ResolveLeaveRequestResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return leave.ResolveLeaveRequestResponse{}, err
	}

	request, err := s.requestRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.ResolveLeaveRequestResponse{}, err
	}

	comment := req.Comment
	if comment == "" {
		if status == leave.LeaveRequestStatusApproved {
			comment = defaultApproveComment
		} else {
			comment = defaultRejectComment
		}
	}

	var resolved leave.LeaveRequest
	balanceUpdated := false
	err = s.runTx(ctx, func(txCtx context.Context) error {
		resolved, err = s.requestRepo.Resolve(txCtx, req.ID, status, comment, adminID, s.now().UTC())
		if err != nil {
			return err
		}
		// Resolve does not join the directory; carry the contact fields
		// over from the earlier lookup.
		resolved.EmployeeName = request.EmployeeName
		resolved.EmployeeEmail = request.EmployeeEmail

		// Only approvals of paid/sick/casual leave touch balances; the
		// year is taken from the request's start date.
		if status == leave.LeaveRequestStatusApproved && request.Type.BalanceColumn() != "" {
			year := request.StartDate.Year()
			if _, err := s.balanceRepo.GetOrCreate(txCtx, request.EmployeeID, year); err != nil {
				return err
			}
			if err := s.balanceRepo.Debit(txCtx, request.EmployeeID, year, request.Type, request.TotalDays, s.allowNegative); err != nil {
				return err
			}
			balanceUpdated = true
		}

		return nil
	})
	if err != nil {
		return leave.ResolveLeaveRequestResponse{}, err
	}

	// Notify only after the transaction commits so a rollback never
	// produces a stale email.
	s.queueResolutionEvent(ctx, resolved, status)

	return leave.ResolveLeaveRequestResponse{
		LeaveRequestResponse: mapLeaveRequestToResponse(resolved),
		BalanceUpdated:       balanceUpdated,
	}, nil
}

func (s *leaveServiceImpl) queueResolutionEvent(ctx context.Context, request leave.LeaveRequest, status leave.LeaveRequestStatus) {
	eventType := notification.TypeLeaveApproved
	title := "Leave request approved"
	if status == leave.LeaveRequestStatusRejected {
		eventType = notification.TypeLeaveRejected
		title = "Leave request rejected"
	}

	recipientName := ""
	if request.EmployeeName != nil {
		recipientName = *request.EmployeeName
	}
	recipientEmail := ""
	if request.EmployeeEmail != nil {
		recipientEmail = *request.EmployeeEmail
	}
	comment := ""
	if request.AdminComment != nil {
		comment = *request.AdminComment
	}

	event := notification.Event{
		Type:           eventType,
		RecipientID:    request.EmployeeID,
		RecipientName:  recipientName,
		RecipientEmail: recipientEmail,
		Title:          title,
		Message: fmt.Sprintf("Your %s leave from %s to %s has been %s.",
			request.Type,
			request.StartDate.Format(dateutil.DateLayout),
			request.EndDate.Format(dateutil.DateLayout),
			status,
		),
		Data: map[string]interface{}{
			"leave_request_id": request.ID,
			"leave_type":       string(request.Type),
			"start_date":       request.StartDate.Format(dateutil.DateLayout),
			"end_date":         request.EndDate.Format(dateutil.DateLayout),
			"status":           string(status),
			"admin_comment":    comment,
		},
		CreatedAt: s.now().UTC(),
	}

	_ = s.notifier.Queue(ctx, event)
}

// ListMyRequests implements leave.LeaveService.
func (s *leaveServiceImpl) ListMyRequests(ctx context.Context, filter leave.LeaveRequestFilter) (leave.ListLeaveRequestsResponse, error) {
	employeeID, err := identityFromContext(ctx)
	if err != nil {
		return leave.ListLeaveRequestsResponse{}, err
	}

	if err := filter.Validate(); err != nil {
		return leave.ListLeaveRequestsResponse{}, err
	}

	requests, total, err := s.requestRepo.GetByEmployeeID(ctx, employeeID, filter)
	if err != nil {
		return leave.ListLeaveRequestsResponse{}, err
	}

	return leave.ListLeaveRequestsResponse{
		Items:      mapLeaveRequestsToResponses(requests),
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
	}, nil
}

// ListRequests implements leave.LeaveService.
func (s *leaveServiceImpl) ListRequests(ctx context.Context, filter leave.LeaveRequestFilter) (leave.ListLeaveRequestsResponse, error) {
	if err := filter.Validate(); err != nil {
		return leave.ListLeaveRequestsResponse{}, err
	}

	requests, total, err := s.requestRepo.List(ctx, filter)
	if err != nil {
		return leave.ListLeaveRequestsResponse{}, err
	}

	return leave.ListLeaveRequestsResponse{
		Items:      mapLeaveRequestsToResponses(requests),
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
	}, nil
}

// GetMyBalance implements leave.LeaveService.
func (s *leaveServiceImpl) GetMyBalance(ctx context.Context, year int) (leave.LeaveBalanceResponse, error) {
	employeeID, err := identityFromContext(ctx)
	if err != nil {
		return leave.LeaveBalanceResponse{}, err
	}

	if year == 0 {
		year = s.now().UTC().Year()
	}

	balance, err := s.balanceRepo.GetOrCreate(ctx, employeeID, year)
	if err != nil {
		return leave.LeaveBalanceResponse{}, err
	}

	return leave.LeaveBalanceResponse{
		EmployeeID:  balance.EmployeeID,
		Year:        balance.Year,
		EarnedLeave: balance.EarnedLeave,
		SickLeave:   balance.SickLeave,
		CasualLeave: balance.CasualLeave,
	}, nil
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func mapLeaveRequestToResponse(request leave.LeaveRequest) leave.LeaveRequestResponse {
	return leave.LeaveRequestResponse{
		ID:            request.ID,
		EmployeeID:    request.EmployeeID,
		EmployeeName:  request.EmployeeName,
		EmployeeEmail: request.EmployeeEmail,
		Type:          string(request.Type),
		StartDate:     request.StartDate.Format(dateutil.DateLayout),
		EndDate:       request.EndDate.Format(dateutil.DateLayout),
		TotalDays:     request.TotalDays,
		Reason:        request.Reason,
		Status:        string(request.Status),
		AdminComment:  request.AdminComment,
		ResolvedBy:    request.ResolvedBy,
		ResolvedAt:    timePtrToString(request.ResolvedAt),
		CreatedAt:     request.CreatedAt.Format(time.RFC3339),
	}
}

func mapLeaveRequestsToResponses(requests []leave.LeaveRequest) []leave.LeaveRequestResponse {
	responses := make([]leave.LeaveRequestResponse, len(requests))
	for i, request := range requests {
		responses[i] = mapLeaveRequestToResponse(request)
	}
	return responses
}
