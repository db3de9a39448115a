package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// FieldError is a single broken rule: the offending field and a message.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError carries every rule an aggregate or entity broke during
// construction or update. It is always surfaced to the caller, never
// silently corrected.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// validateSale enforces the sale-level invariants: number, customer and
// branch set, at least one item. Item-level rules are enforced when items
// are constructed.
func validateSale(s *Sale) *ValidationError {
	var errs []FieldError

	if s.number == uuid.Nil {
		errs = append(errs, FieldError{Field: "number", Message: "sale number is required"})
	}
	if s.customer.IsZero() {
		errs = append(errs, FieldError{Field: "customer", Message: "customer is required"})
	}
	if s.branch.IsZero() {
		errs = append(errs, FieldError{Field: "branch", Message: "branch is required"})
	}
	if len(s.items) == 0 {
		errs = append(errs, FieldError{Field: "items", Message: "sale must have at least one item"})
	}

	if len(errs) == 0 {
		return nil
	}
	return &ValidationError{Errors: errs}
}

// ValidateItemQuantity checks the quantity bounds on their own. Workflows
// call it before consulting the discount tier set, so an out-of-range
// quantity surfaces as a validation error rather than a selector defect.
func ValidateItemQuantity(quantity int) error {
	if quantity <= 0 {
		return &ValidationError{Errors: []FieldError{{Field: "quantity", Message: "quantity must be greater than zero"}}}
	}
	if quantity > MaxItemQuantity {
		return &ValidationError{Errors: []FieldError{{Field: "quantity", Message: fmt.Sprintf("no item can have a quantity greater than %d", MaxItemQuantity)}}}
	}
	return nil
}

func validateSaleItem(i *SaleItem) *ValidationError {
	var errs []FieldError

	if i.product.IsZero() {
		errs = append(errs, FieldError{Field: "product", Message: "product is required"})
	}
	if i.quantity <= 0 {
		errs = append(errs, FieldError{Field: "quantity", Message: "quantity must be greater than zero"})
	}
	if i.quantity > MaxItemQuantity {
		errs = append(errs, FieldError{Field: "quantity", Message: fmt.Sprintf("no item can have a quantity greater than %d", MaxItemQuantity)})
	}
	if i.unitPrice == nil {
		errs = append(errs, FieldError{Field: "unitPrice", Message: "unit price is required"})
	}

	if len(errs) == 0 {
		return nil
	}
	return &ValidationError{Errors: errs}
}
