package leave

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/notification"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRequestRepo struct {
	requests map[string]*leave.LeaveRequest
	nextID   int
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[string]*leave.LeaveRequest)}
}

func (f *fakeRequestRepo) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	f.nextID++
	request.ID = string(rune('0' + f.nextID))
	request.CreatedAt = time.Now()
	stored := request
	f.requests[request.ID] = &stored
	return request, nil
}

func (f *fakeRequestRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	if request, ok := f.requests[id]; ok {
		return *request, nil
	}
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

func (f *fakeRequestRepo) GetByEmployeeID(ctx context.Context, employeeID string, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	var out []leave.LeaveRequest
	for _, request := range f.requests {
		if request.EmployeeID == employeeID {
			out = append(out, *request)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeRequestRepo) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	var out []leave.LeaveRequest
	for _, request := range f.requests {
		out = append(out, *request)
	}
	return out, int64(len(out)), nil
}

func (f *fakeRequestRepo) Resolve(ctx context.Context, id string, status leave.LeaveRequestStatus, comment string, resolvedBy string, resolvedAt time.Time) (leave.LeaveRequest, error) {
	request, ok := f.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	if request.Status != leave.LeaveRequestStatusPending {
		return leave.LeaveRequest{}, leave.ErrLeaveAlreadyProcessed
	}
	request.Status = status
	request.AdminComment = &comment
	request.ResolvedBy = &resolvedBy
	request.ResolvedAt = &resolvedAt
	return *request, nil
}

type fakeBalanceRepo struct {
	balances map[string]*leave.LeaveBalance
}

func newFakeBalanceRepo() *fakeBalanceRepo {
	return &fakeBalanceRepo{balances: make(map[string]*leave.LeaveBalance)}
}

func (f *fakeBalanceRepo) key(employeeID string, year int) string {
	return fmt.Sprintf("%s|%d", employeeID, year)
}

func (f *fakeBalanceRepo) GetOrCreate(ctx context.Context, employeeID string, year int) (leave.LeaveBalance, error) {
	k := f.key(employeeID, year)
	if balance, ok := f.balances[k]; ok {
		return *balance, nil
	}
	balance := &leave.LeaveBalance{
		ID:          k,
		EmployeeID:  employeeID,
		Year:        year,
		EarnedLeave: leave.DefaultEarnedLeave,
		SickLeave:   leave.DefaultSickLeave,
		CasualLeave: leave.DefaultCasualLeave,
	}
	f.balances[k] = balance
	return *balance, nil
}

func (f *fakeBalanceRepo) Debit(ctx context.Context, employeeID string, year int, leaveType leave.LeaveType, days int, allowNegative bool) error {
	column := leaveType.BalanceColumn()
	if column == "" {
		return nil
	}
	balance, ok := f.balances[f.key(employeeID, year)]
	if !ok {
		return leave.ErrBalanceNotFound
	}
	var target *int
	switch column {
	case "earned_leave":
		target = &balance.EarnedLeave
	case "sick_leave":
		target = &balance.SickLeave
	case "casual_leave":
		target = &balance.CasualLeave
	}
	if !allowNegative && *target < days {
		return leave.ErrInsufficientBalance
	}
	*target -= days
	return nil
}

type fakeNotifier struct {
	events []notification.Event
}

func (f *fakeNotifier) Queue(ctx context.Context, event notification.Event) error {
	f.events = append(f.events, event)
	return nil
}

func (f *fakeNotifier) Subscribe(ctx context.Context, employeeID string) (<-chan notification.Event, func()) {
	ch := make(chan notification.Event)
	return ch, func() { close(ch) }
}

func (f *fakeNotifier) Stop() {}

func authContext(t *testing.T, employeeID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"employee_id": employeeID,
		"is_admin":    true,
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

type fixture struct {
	svc         *leaveServiceImpl
	requestRepo *fakeRequestRepo
	balanceRepo *fakeBalanceRepo
	notifier    *fakeNotifier
}

func newFixture(allowNegative bool) fixture {
	requestRepo := newFakeRequestRepo()
	balanceRepo := newFakeBalanceRepo()
	notifier := &fakeNotifier{}

	svc := NewLeaveService(nil, requestRepo, balanceRepo, notifier, allowNegative).(*leaveServiceImpl)
	svc.runTx = func(ctx context.Context, fn func(ctx context.Context) error) error {
		return fn(ctx)
	}
	svc.now = func() time.Time { return time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC) }

	return fixture{svc: svc, requestRepo: requestRepo, balanceRepo: balanceRepo, notifier: notifier}
}

func (fx fixture) seedRequest(t *testing.T, employeeID string, leaveType leave.LeaveType, start, end string) leave.LeaveRequest {
	t.Helper()
	ctx := authContext(t, employeeID)
	resp, err := fx.svc.SubmitRequest(ctx, leave.CreateLeaveRequestRequest{
		Type:      string(leaveType),
		StartDate: start,
		EndDate:   end,
		Reason:    "family event",
	})
	require.NoError(t, err)
	request, err := fx.requestRepo.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	return request
}

func TestSubmitRequest(t *testing.T) {
	t.Parallel()

	t.Run("counts calendar days inclusively", func(t *testing.T) {
		fx := newFixture(true)
		ctx := authContext(t, "emp-1")

		resp, err := fx.svc.SubmitRequest(ctx, leave.CreateLeaveRequestRequest{
			Type:      "paid",
			StartDate: "2024-06-10",
			EndDate:   "2024-06-14",
			Reason:    "vacation",
		})
		require.NoError(t, err)
		assert.Equal(t, 5, resp.TotalDays)
		assert.Equal(t, string(leave.LeaveRequestStatusPending), resp.Status)
	})

	t.Run("single day is one", func(t *testing.T) {
		fx := newFixture(true)
		ctx := authContext(t, "emp-1")

		resp, err := fx.svc.SubmitRequest(ctx, leave.CreateLeaveRequestRequest{
			Type:      "sick",
			StartDate: "2024-06-10",
			EndDate:   "2024-06-10",
			Reason:    "fever",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.TotalDays)
	})

	t.Run("rejects malformed payload", func(t *testing.T) {
		fx := newFixture(true)
		ctx := authContext(t, "emp-1")

		_, err := fx.svc.SubmitRequest(ctx, leave.CreateLeaveRequestRequest{
			Type:      "sabbatical",
			StartDate: "2024-06-14",
			EndDate:   "2024-06-10",
		})
		assert.Error(t, err)
	})
}

func TestApprove(t *testing.T) {
	t.Parallel()

	t.Run("debits the start-date year's balance", func(t *testing.T) {
		fx := newFixture(true)
		request := fx.seedRequest(t, "emp-1", leave.LeaveTypeSick, "2024-06-10", "2024-06-12")

		resp, err := fx.svc.Approve(authContext(t, "admin-1"), leave.ResolveLeaveRequestRequest{ID: request.ID})
		require.NoError(t, err)
		assert.Equal(t, string(leave.LeaveRequestStatusApproved), resp.Status)
		require.NotNil(t, resp.AdminComment)
		assert.Equal(t, "Approved", *resp.AdminComment)
		assert.True(t, resp.BalanceUpdated)

		balance, err := fx.balanceRepo.GetOrCreate(context.Background(), "emp-1", 2024)
		require.NoError(t, err)
		assert.Equal(t, leave.DefaultSickLeave-3, balance.SickLeave)
		assert.Equal(t, leave.DefaultEarnedLeave, balance.EarnedLeave)
	})

	t.Run("unpaid leave never touches balances", func(t *testing.T) {
		fx := newFixture(true)
		request := fx.seedRequest(t, "emp-1", leave.LeaveTypeUnpaid, "2024-06-10", "2024-06-20")

		resp, err := fx.svc.Approve(authContext(t, "admin-1"), leave.ResolveLeaveRequestRequest{ID: request.ID})
		require.NoError(t, err)
		assert.False(t, resp.BalanceUpdated)

		balance, err := fx.balanceRepo.GetOrCreate(context.Background(), "emp-1", 2024)
		require.NoError(t, err)
		assert.Equal(t, leave.DefaultEarnedLeave, balance.EarnedLeave)
		assert.Equal(t, leave.DefaultSickLeave, balance.SickLeave)
		assert.Equal(t, leave.DefaultCasualLeave, balance.CasualLeave)
	})

	t.Run("queues exactly one approval notification", func(t *testing.T) {
		fx := newFixture(true)
		request := fx.seedRequest(t, "emp-1", leave.LeaveTypePaid, "2024-06-10", "2024-06-12")

		_, err := fx.svc.Approve(authContext(t, "admin-1"), leave.ResolveLeaveRequestRequest{ID: request.ID, Comment: "Enjoy"})
		require.NoError(t, err)

		require.Len(t, fx.notifier.events, 1)
		event := fx.notifier.events[0]
		assert.Equal(t, notification.TypeLeaveApproved, event.Type)
		assert.Equal(t, "emp-1", event.RecipientID)
		assert.Equal(t, "Enjoy", event.Data["admin_comment"])
	})

	t.Run("second resolution loses", func(t *testing.T) {
		fx := newFixture(true)
		request := fx.seedRequest(t, "emp-1", leave.LeaveTypeCasual, "2024-06-10", "2024-06-10")
		ctx := authContext(t, "admin-1")

		_, err := fx.svc.Approve(ctx, leave.ResolveLeaveRequestRequest{ID: request.ID})
		require.NoError(t, err)

		_, err = fx.svc.Reject(ctx, leave.ResolveLeaveRequestRequest{ID: request.ID})
		assert.ErrorIs(t, err, leave.ErrLeaveAlreadyProcessed)

		// The losing resolution must not debit or notify again
		balance, err := fx.balanceRepo.GetOrCreate(context.Background(), "emp-1", 2024)
		require.NoError(t, err)
		assert.Equal(t, leave.DefaultCasualLeave-1, balance.CasualLeave)
		assert.Len(t, fx.notifier.events, 1)
	})

	t.Run("insufficient balance blocks approval", func(t *testing.T) {
		fx := newFixture(false)
		request := fx.seedRequest(t, "emp-1", leave.LeaveTypeCasual, "2024-06-01", "2024-06-30")

		_, err := fx.svc.Approve(authContext(t, "admin-1"), leave.ResolveLeaveRequestRequest{ID: request.ID})
		assert.ErrorIs(t, err, leave.ErrInsufficientBalance)
		assert.Empty(t, fx.notifier.events)
	})

	t.Run("unknown request", func(t *testing.T) {
		fx := newFixture(true)

		_, err := fx.svc.Approve(authContext(t, "admin-1"), leave.ResolveLeaveRequestRequest{ID: "missing"})
		assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
	})
}

func TestReject(t *testing.T) {
	t.Parallel()

	fx := newFixture(true)
	request := fx.seedRequest(t, "emp-1", leave.LeaveTypeSick, "2024-06-10", "2024-06-12")

	resp, err := fx.svc.Reject(authContext(t, "admin-1"), leave.ResolveLeaveRequestRequest{ID: request.ID})
	require.NoError(t, err)
	assert.Equal(t, string(leave.LeaveRequestStatusRejected), resp.Status)
	require.NotNil(t, resp.AdminComment)
	assert.Equal(t, "Not approved", *resp.AdminComment)
	assert.False(t, resp.BalanceUpdated)

	// Rejection never debits
	balance, err := fx.balanceRepo.GetOrCreate(context.Background(), "emp-1", 2024)
	require.NoError(t, err)
	assert.Equal(t, leave.DefaultSickLeave, balance.SickLeave)

	require.Len(t, fx.notifier.events, 1)
	assert.Equal(t, notification.TypeLeaveRejected, fx.notifier.events[0].Type)
}

func TestGetMyBalance(t *testing.T) {
	t.Parallel()

	fx := newFixture(true)
	ctx := authContext(t, "emp-1")

	resp, err := fx.svc.GetMyBalance(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 2024, resp.Year)
	assert.Equal(t, leave.DefaultEarnedLeave, resp.EarnedLeave)
	assert.Equal(t, leave.DefaultSickLeave, resp.SickLeave)
	assert.Equal(t, leave.DefaultCasualLeave, resp.CasualLeave)
}
