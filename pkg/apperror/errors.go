package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Registration (REG) ----

// ErrAlreadyRegistered reports a phone number bound to another holder.
// The existing owner's display name is surfaced so support staff can
// disambiguate.
func ErrAlreadyRegistered(ownerName string) *AppError {
	return New("REG_001", fmt.Sprintf("This number is already registered to another user: %s", ownerName), http.StatusConflict)
}

func ErrRegistrationCapReached(cap int) *AppError {
	return New("REG_002", fmt.Sprintf("This ID has reached the maximum number of registrations (%d)", cap), http.StatusUnprocessableEntity)
}

func ErrFraudAssociated() *AppError {
	return New("REG_003", "This ID is associated with fraud activities and cannot be registered", http.StatusForbidden)
}

// ---- Verification (VER) ----

func ErrNotRegistered() *AppError {
	return New("VER_001", "This number is not registered", http.StatusNotFound)
}

func ErrIdentityMismatch() *AppError {
	return New("VER_002", "Details don't match", http.StatusForbidden)
}

// ---- Swap (SWP) ----

// ErrSwapFailed reports a store failure after verification had already
// succeeded; the binding keeps its previous id token.
func ErrSwapFailed(err error) *AppError {
	return Wrap("SWP_001", "SIM swap failed", http.StatusInternalServerError, err)
}

// ---- Rate Limiting (RATE) ----

func ErrTooManyAttempts() *AppError {
	return New("RATE_001", "Too many verification attempts", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// ErrStorage wraps a store/transport failure. This is the only class the
// caller may retry; business failures above are terminal.
func ErrStorage(err error) *AppError {
	return Wrap("SYS_001", "Storage error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request-validation error. The VAL_ family is
// endpoint-neutral: malformed register, verify and swap bodies all map
// here.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}
