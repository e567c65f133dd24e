package leave

import (
	"context"
)

// LeaveService defines business logic for the leave workflow
type LeaveService interface {
	// SubmitRequest files a new pending request for the caller
	SubmitRequest(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)

	// Approve resolves a pending request and debits the balance for
	// non-unpaid types (admin)
	Approve(ctx context.Context, req ResolveLeaveRequestRequest) (ResolveLeaveRequestResponse, error)

	// Reject resolves a pending request without touching balances (admin)
	Reject(ctx context.Context, req ResolveLeaveRequestRequest) (ResolveLeaveRequestResponse, error)

	// ListMyRequests retrieves the caller's requests
	ListMyRequests(ctx context.Context, filter LeaveRequestFilter) (ListLeaveRequestsResponse, error)

	// ListRequests retrieves requests across employees (admin)
	ListRequests(ctx context.Context, filter LeaveRequestFilter) (ListLeaveRequestsResponse, error)

	// GetMyBalance returns the caller's balance for a year, creating the
	// row with default grants when missing
	GetMyBalance(ctx context.Context, year int) (LeaveBalanceResponse, error)
}
