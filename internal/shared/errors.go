package shared

import "errors"

// Error kinds shared across the ledger and the HTTP boundary. Each kind maps
// to a distinct caller-facing response; see platform/httpx.
var (
	// ErrNotFound indicates the referenced investment or piggy bank does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden indicates the caller does not own the target entity.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidAmount indicates a monetary value that must be positive is zero,
	// negative or missing.
	ErrInvalidAmount = errors.New("amount must be greater than zero")
	// ErrInsufficientUnits indicates a withdrawal asked for more units than held.
	ErrInsufficientUnits = errors.New("insufficient units")
	// ErrInvalidWithdrawal indicates a withdrawal value above the available balance.
	ErrInvalidWithdrawal = errors.New("withdrawal exceeds available balance")
	// ErrInvalidReinvestment indicates a reinvestment value above the accumulated profit.
	ErrInvalidReinvestment = errors.New("reinvestment exceeds accumulated profit")
	// ErrClosed indicates an operation on an entity that is not active.
	ErrClosed = errors.New("entity is not active")
	// ErrInvalidCredentials indicates login failure.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailTaken indicates a registration attempt with an email already in use.
	ErrEmailTaken = errors.New("email already registered")
)
