package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopflow/shopflow/pkg/shop"
)

// RunReceiptStoreContract verifies that a ReceiptStore implementation adheres
// to the interface contract. Adapter tests call it with a ready store.
func RunReceiptStoreContract(t *testing.T, store ReceiptStore) {
	ctx := context.Background()
	sessionID := "contract-" + time.Now().Format("20060102150405")

	receipt := shop.Receipt{
		SessionID:   sessionID,
		Items:       []shop.ItemID{20, 100},
		Paid:        true,
		Trail:       []string{"visit_site", "add_item", "add_item", "proceed_to_checkout", "finalise_payment"},
		CompletedAt: time.Now().UTC().Truncate(time.Second),
	}

	t.Run("Save and Load", func(t *testing.T) {
		err := store.Save(ctx, receipt)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, receipt.SessionID, loaded.SessionID)
		assert.Equal(t, receipt.Items, loaded.Items)
		assert.Equal(t, receipt.Trail, loaded.Trail)
		assert.True(t, loaded.Paid)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+sessionID)
		assert.ErrorIs(t, err, shop.ErrReceiptNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, receipt))

		err := store.Delete(ctx, sessionID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, sessionID)
		assert.ErrorIs(t, err, shop.ErrReceiptNotFound, "Load after Delete should return ErrReceiptNotFound")

		assert.NoError(t, store.Delete(ctx, sessionID), "Delete of a missing receipt should be a no-op")
	})

	t.Run("List", func(t *testing.T) {
		r1 := receipt
		r1.SessionID = sessionID + "-1"
		r2 := receipt
		r2.SessionID = sessionID + "-2"
		_ = store.Save(ctx, r1)
		_ = store.Save(ctx, r2)

		defer func() {
			_ = store.Delete(ctx, r1.SessionID)
			_ = store.Delete(ctx, r2.SessionID)
		}()

		sessions, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, sessions, r1.SessionID)
		assert.Contains(t, sessions, r2.SessionID)
	})
}
