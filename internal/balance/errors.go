package balance

import "errors"

// Code identifies a domain or validation failure. Codes are part of the API
// surface: clients branch on them and the idempotency cache replays them.
type Code string

const (
	// Validation.
	CodeInvalidAmount         Code = "INVALID_AMOUNT"
	CodeMissingIdempotencyKey Code = "MISSING_IDEMPOTENCY_KEY"
	CodeMissingSource         Code = "MISSING_SOURCE"
	CodeInvalidAccountID      Code = "INVALID_ACCOUNT_ID"

	// Domain.
	CodeAccountNotFound     Code = "ACCOUNT_NOT_FOUND"
	CodeInsufficientBalance Code = "INSUFFICIENT_BALANCE"
	CodeReservationNotFound Code = "RESERVATION_NOT_FOUND"
	CodeReservationExpired  Code = "RESERVATION_EXPIRED"
	CodeReservationNotHeld  Code = "RESERVATION_NOT_HELD"
	CodeAlreadyCommitted    Code = "ALREADY_COMMITTED"
	CodePotNotFound         Code = "POT_NOT_FOUND"
	CodePotNotActive        Code = "POT_NOT_ACTIVE"

	// Transient: retried inside the engine, surfaced only when persistent.
	CodeVersionConflict Code = "VERSION_CONFLICT"
	CodeUpdateFailed    Code = "UPDATE_FAILED"
)

// Error is a typed domain failure. It is a value, not an exception: engines
// return it through the error result and the idempotency cache stores it so
// retries observe the same outcome.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	// AvailableBalance accompanies INSUFFICIENT_BALANCE so callers can show
	// how much the account can actually cover.
	AvailableBalance *int64 `json:"availableBalance,omitempty"`
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	return string(e.Code) + ": " + e.Message
}

func NewError(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func InsufficientBalance(available int64) *Error {
	return &Error{
		Code:             CodeInsufficientBalance,
		Message:          "available balance cannot cover the requested amount",
		AvailableBalance: &available,
	}
}

// AsError unwraps a domain Error if err carries one.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// CodeOf returns the domain code of err, or empty when err is not a domain
// failure.
func CodeOf(err error) Code {
	if de, ok := AsError(err); ok {
		return de.Code
	}
	return ""
}

// Transient reports whether err should be retried by the engine.
func Transient(err error) bool {
	switch CodeOf(err) {
	case CodeVersionConflict, CodeUpdateFailed:
		return true
	}
	return false
}
