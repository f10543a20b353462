package employee

import "context"

// RosterService turns an uploaded delimited-text roster into a normalized,
// alphabetically sorted employee list.
type RosterService interface {
	Parse(ctx context.Context, fileBytes []byte) ([]Employee, error)
}
