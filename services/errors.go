package services

import (
	"errors"
	"fmt"
	"strings"
)

const (
	ErrMsgCartEmpty          = "Cart is empty"
	ErrMsgFieldRequired      = "is required"
	ErrMsgItemIDRequired     = "Item ID is required"
	ErrMsgMaxQuantityInvalid = "Max quantity must be at least 1"
	ErrMsgPriceNegative      = "Price cannot be negative"
	ErrMsgPaymentMethod      = "Payment method is not supported"
	ErrMsgSubmissionInFlight = "A checkout submission is already in progress"
	ErrMsgCartLocked         = "Cart cannot be changed while checkout is submitting"
	ErrMsgPaymentDeclined    = "Payment was declined"
	ErrMsgPaymentFailed      = "Payment failed"
)

// ValidationError blocks a transition. It is reported synchronously and
// never has side effects.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// ValidationErrors carries one entry per offending field, in field order.
type ValidationErrors []*ValidationError

func (es ValidationErrors) Error() string {
	parts := make([]string, 0, len(es))
	for _, e := range es {
		parts = append(parts, e.Error())
	}
	return strings.Join(parts, "; ")
}

// Fields lists the names of the offending fields.
func (es ValidationErrors) Fields() []string {
	out := make([]string, 0, len(es))
	for _, e := range es {
		out = append(out, e.Field)
	}
	return out
}

func (es ValidationErrors) As(target interface{}) bool {
	if len(es) == 0 {
		return false
	}
	if t, ok := target.(**ValidationError); ok {
		*t = es[0]
		return true
	}
	return false
}

// ErrEmptyCart is returned when checkout starts on a cart with no items.
var ErrEmptyCart = &ValidationError{Field: "items", Message: ErrMsgCartEmpty}

var (
	ErrSubmissionInFlight = errors.New(ErrMsgSubmissionInFlight)
	ErrCartLocked         = errors.New(ErrMsgCartLocked)
)

// PaymentError is surfaced to the caller for display. The cart is left
// untouched whenever one is returned.
type PaymentError struct {
	Method    string
	Reference string
	Declined  bool
	Err       error
}

func (e *PaymentError) Error() string {
	msg := ErrMsgPaymentFailed
	if e.Declined {
		msg = ErrMsgPaymentDeclined
	}
	if e.Reference != "" {
		msg += " (reference " + e.Reference + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *PaymentError) Unwrap() error {
	return e.Err
}

// PersistenceError describes a storage failure. It is logged by the
// persistence adapter and never returned past it.
type PersistenceError struct {
	Op  string
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s %s: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// TransitionError reports an action that the checkout state machine does
// not accept from its current state.
type TransitionError struct {
	From   CheckoutState
	Action string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s while checkout is %s", e.Action, e.From)
}
