package ports

import (
	"context"

	"github.com/shopflow/shopflow/pkg/shop"
)

// ReceiptStore persists the receipts produced by finished flows.
type ReceiptStore interface {
	// Save persists the receipt under its session ID, overwriting any
	// previous receipt for the same session.
	Save(ctx context.Context, receipt shop.Receipt) error

	// Load retrieves the receipt for a session ID.
	// Returns shop.ErrReceiptNotFound if no receipt exists.
	Load(ctx context.Context, sessionID string) (shop.Receipt, error)

	// Delete removes the receipt for a session ID. Deleting a missing
	// receipt is not an error.
	Delete(ctx context.Context, sessionID string) error

	// List returns the session IDs of all stored receipts.
	List(ctx context.Context) ([]string, error)
}
