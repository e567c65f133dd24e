package leave

import "errors"

var (
	ErrLeaveRequestNotFound  = errors.New("leave request not found")
	ErrLeaveAlreadyProcessed = errors.New("leave request already processed")
	ErrInsufficientBalance   = errors.New("insufficient leave balance")
	ErrBalanceNotFound       = errors.New("leave balance not found")
)
