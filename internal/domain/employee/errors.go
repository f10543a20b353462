package employee

import "errors"

var (
	ErrUnreadableRoster = errors.New("roster file could not be parsed")
)
