package labelsheet

import (
	"errors"
	"fmt"
)

// Sentinel errors for the engine.
var (
	// ErrUnknownFormat is returned by Registry.Lookup for a format
	// name with no registered Spec. This is a configuration error: it
	// aborts the whole batch before any plan is produced.
	ErrUnknownFormat = errors.New("unknown label format")

	// ErrNoIdentifier is the cause recorded when an item has no SKU,
	// no barcode, and no product name to identify it by.
	ErrNoIdentifier = errors.New("item has no SKU, barcode, or product name")
)

// ValidationError rejects one item during assembly. It aborts only that
// item's plans; pagination of the rest of the batch continues.
type ValidationError struct {
	Reason error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("labelsheet: invalid item: %v", e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Reason
}

// ItemError ties a per-item failure to its position in the input batch.
// Paginate collects these alongside the successful plans so callers can
// report partial success.
type ItemError struct {
	// Index is the item's position in the input slice.
	Index int

	// SKU identifies the failed item where possible.
	SKU string

	// Err is the underlying cause, typically a *ValidationError.
	Err error
}

func (e *ItemError) Error() string {
	if e.SKU != "" {
		return fmt.Sprintf("labelsheet: item %d (sku %s): %v", e.Index, e.SKU, e.Err)
	}
	return fmt.Sprintf("labelsheet: item %d: %v", e.Index, e.Err)
}

func (e *ItemError) Unwrap() error {
	return e.Err
}
