package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Promo code errors
	ErrPromoNotFound   = errors.New("promo code not found")
	ErrPromoValidation = errors.New("promo code validation failed")
	ErrPromoRejected   = errors.New("promo code rejected")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
