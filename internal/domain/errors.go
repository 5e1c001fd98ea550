package domain

import "errors"

// Authorization failures.
var ErrNotAuthorized = errors.New("caller is not the owner")

// Identity and lookup failures.
var (
	ErrAlreadyRegistered = errors.New("identity already registered")
	ErrUnknownAccount    = errors.New("account not found")
	ErrUnknownItem       = errors.New("item not found")
)

// State-machine precondition violations.
var (
	ErrItemNotAvailable = errors.New("item is not available")
	ErrAlreadyRenting   = errors.New("account already has an active rental")
	ErrOutstandingDebt  = errors.New("account has outstanding debt")
	ErrNoActiveRental   = errors.New("account has no active rental")
)

// Accounting precondition violations.
var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInsufficientFunds   = errors.New("insufficient treasury funds")
	ErrNoDebt              = errors.New("account has no debt to clear")
	ErrInvalidAmount       = errors.New("amount must not be negative")
)

// ErrInvalidStatus rejects a status edit naming an unknown status value.
var ErrInvalidStatus = errors.New("unknown item status")

// ErrTransferFailed means the external value-transfer step failed; the
// internal debit has already been rolled back when this is returned.
var ErrTransferFailed = errors.New("value transfer failed")

// ErrClockRegression means the supplied clock reading precedes the stored
// rental start. The rental stays open; retry once the clock catches up.
var ErrClockRegression = errors.New("clock reading precedes rental start")
