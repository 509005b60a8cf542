package service

import (
	"fmt"

	"github.com/e-dsin/maturity-sub005/internal/access"
)

// AccessDeniedError carries the engine's structured denial through the
// service layer. Transport maps it to 403 with the reason in the body.
type AccessDeniedError struct {
	Reason access.DenyReason
}

func (e *AccessDeniedError) Error() string {
	return fmt.Sprintf("access denied: %s", e.Reason)
}

func denied(d access.Decision) error {
	return &AccessDeniedError{Reason: d.Reason}
}

func outOfScope() error {
	return &AccessDeniedError{Reason: access.ReasonOutOfScope}
}
