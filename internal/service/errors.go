package service

import (
	"fmt"

	"github.com/google/uuid"
)

// All service errors are recoverable values the handler layer maps onto HTTP
// statuses; state is never mutated before validation has fully passed.

// ValidationError reports a missing or invalid required input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func errValidation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// NotFoundError reports an operation referencing an id absent from its
// collection.
type NotFoundError struct {
	Kind string
	ID   uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

func errNotFound(kind string, id uuid.UUID) error {
	return &NotFoundError{Kind: kind, ID: id}
}

// InsufficientStockError reports a consumption that exceeds available stock.
// The item's stock is left unchanged.
type InsufficientStockError struct {
	ItemID    uuid.UUID
	Requested float64
	Available float64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock on item %s: requested %.3g, available %.3g",
		e.ItemID, e.Requested, e.Available)
}
