package domain

import (
	"errors"
	"fmt"
)

var (
	ErrItemNotFound             = errors.New("item not found")
	ErrItemClosed               = errors.New("bidding is closed for this item")
	ErrBidTooLow                = errors.New("bid price is below the minimum bid")
	ErrInvalidPrice             = errors.New("bid price must be greater than zero")
	ErrItemOwnedByOtherBusiness = errors.New("item already belongs to another business")
)

// ValidationError reports a single invalid field on item creation so the
// caller can re-display the form with the offending field marked.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
