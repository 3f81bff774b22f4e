package errs

import "errors"

// Domain-specific sentinel errors for the reassignment usecase layers
var (
	// Lookup errors
	ErrRequestNotFound     = errors.New("reassignment request not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrResourceNotFound    = errors.New("resource not found")
	ErrPolicyNotFound      = errors.New("policy configuration not found")

	// Lifecycle errors
	ErrRequestNotPending  = errors.New("reassignment request is not pending")
	ErrRequestNotExpired  = errors.New("reassignment request deadline has not passed")
	ErrConcurrentUpdate   = errors.New("reassignment request was modified concurrently")
	ErrPolicyDeactivated  = errors.New("policy configuration is deactivated")
	ErrDuplicatePolicy    = errors.New("active policy already exists for program")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Collaborator errors
	ErrDependencyFailed        = errors.New("collaborator call failed")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
