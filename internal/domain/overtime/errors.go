package overtime

import "errors"

var (
	ErrMissingEmployees      = errors.New("missing employees")
	ErrMissingPayPeriodEnd   = errors.New("missing pay period ending date")
	ErrEndingDateNotBoundary = errors.New("pay period ending date must fall on a Saturday")
	ErrNoOvertimeEntries     = errors.New("no overtime entries found")
	ErrNoSlipsProduced       = errors.New("no slips produced")
)
