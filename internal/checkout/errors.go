package checkout

import (
	"errors"
	"fmt"
)

// Validation errors are surfaced verbatim to the client, hence the
// user-facing casing.
var (
	ErrInvalidBuyerInfo = errors.New("Name and email are required")
	ErrInvalidCartLine  = errors.New("Invalid cart item data")
)

// ProductNotFoundError reports which proposed line referenced a product the
// catalog does not know.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("Product with ID %s not found", e.ProductID)
}
