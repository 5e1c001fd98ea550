package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carrental-backend/internal/domain"
)

func TestCatalogService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("Owner only", func(t *testing.T) {
		c := newCore(t)
		_, err := c.catalog.Add(ctx, "alice", "sedan", "", 10, 0)
		assert.ErrorIs(t, err, domain.ErrNotAuthorized)

		count, countErr := c.catalog.Count(ctx)
		require.NoError(t, countErr)
		assert.Zero(t, count)
	})

	t.Run("Sequential identifiers from one, no gaps, no reuse", func(t *testing.T) {
		c := newCore(t)
		first := c.mustAddItem(t, "sedan", 10)
		second := c.mustAddItem(t, "coupe", 20)
		assert.Equal(t, int64(1), first)
		assert.Equal(t, int64(2), second)

		// Status edits must not disturb the sequence.
		require.NoError(t, c.catalog.EditStatus(ctx, ownerID, first, domain.ItemStatusRetired))
		third := c.mustAddItem(t, "wagon", 30)
		assert.Equal(t, int64(3), third)

		count, err := c.catalog.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("New items start available", func(t *testing.T) {
		c := newCore(t)
		id := c.mustAddItem(t, "sedan", 10)
		item, err := c.catalog.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, domain.ItemStatusAvailable, item.Status)
	})
}

func TestCatalogService_EditMetadata(t *testing.T) {
	ctx := context.Background()

	t.Run("Zero values keep existing fields", func(t *testing.T) {
		c := newCore(t)
		id, err := c.catalog.Add(ctx, ownerID, "sedan", "https://img.example/sedan", 10, 5000)
		require.NoError(t, err)

		require.NoError(t, c.catalog.EditMetadata(ctx, ownerID, id, "", "", 25, 0))

		item, err := c.catalog.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "sedan", item.Name)
		assert.Equal(t, "https://img.example/sedan", item.ImageURL)
		assert.Equal(t, int64(25), item.RentRateCents)
		assert.Equal(t, int64(5000), item.SaleRateCents)
	})

	t.Run("Non-zero values replace fields", func(t *testing.T) {
		c := newCore(t)
		id := c.mustAddItem(t, "sedan", 10)
		require.NoError(t, c.catalog.EditMetadata(ctx, ownerID, id, "coupe", "https://img.example/coupe", 0, 9000))

		item, err := c.catalog.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "coupe", item.Name)
		assert.Equal(t, "https://img.example/coupe", item.ImageURL)
		assert.Equal(t, int64(10), item.RentRateCents)
		assert.Equal(t, int64(9000), item.SaleRateCents)
	})

	t.Run("Negative rates rejected", func(t *testing.T) {
		c := newCore(t)
		id := c.mustAddItem(t, "sedan", 10)

		err := c.catalog.EditMetadata(ctx, ownerID, id, "", "", -10, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
		err = c.catalog.EditMetadata(ctx, ownerID, id, "", "", 0, -1)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)

		item, getErr := c.catalog.Get(ctx, id)
		require.NoError(t, getErr)
		assert.Equal(t, int64(10), item.RentRateCents)

		// A rental after the rejected edit accrues at the original rate;
		// debt can never go negative through a rate edit.
		c.mustRegister(t, "alice", 0)
		require.NoError(t, c.rentals.Checkout(ctx, "alice", id, 0))
		require.NoError(t, c.rentals.CheckIn(ctx, "alice", 120))

		account, getErr := c.accounts.Get(ctx, "alice")
		require.NoError(t, getErr)
		assert.Equal(t, int64(20), account.DebtCents)
		assertInvariants(t, c, "alice")
	})

	t.Run("Unknown item", func(t *testing.T) {
		c := newCore(t)
		err := c.catalog.EditMetadata(ctx, ownerID, 7, "x", "", 0, 0)
		assert.ErrorIs(t, err, domain.ErrUnknownItem)
	})

	t.Run("Owner only", func(t *testing.T) {
		c := newCore(t)
		id := c.mustAddItem(t, "sedan", 10)
		err := c.catalog.EditMetadata(ctx, "alice", id, "x", "", 0, 0)
		assert.ErrorIs(t, err, domain.ErrNotAuthorized)
	})
}

func TestCatalogService_EditStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Overwrites without transition validation", func(t *testing.T) {
		c := newCore(t)
		id := c.mustAddItem(t, "sedan", 10)

		// Available straight to InUse, then to Retired, without any rental.
		require.NoError(t, c.catalog.EditStatus(ctx, ownerID, id, domain.ItemStatusInUse))
		require.NoError(t, c.catalog.EditStatus(ctx, ownerID, id, domain.ItemStatusRetired))

		item, err := c.catalog.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, domain.ItemStatusRetired, item.Status)
	})

	t.Run("Rejects unknown status values", func(t *testing.T) {
		c := newCore(t)
		id := c.mustAddItem(t, "sedan", 10)
		err := c.catalog.EditStatus(ctx, ownerID, id, "SCRAPPED")
		assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	})

	t.Run("Owner only", func(t *testing.T) {
		c := newCore(t)
		id := c.mustAddItem(t, "sedan", 10)
		err := c.catalog.EditStatus(ctx, "alice", id, domain.ItemStatusRetired)
		assert.ErrorIs(t, err, domain.ErrNotAuthorized)
	})
}

func TestCatalogService_ListByStatus(t *testing.T) {
	ctx := context.Background()
	c := newCore(t)

	first := c.mustAddItem(t, "sedan", 10)
	second := c.mustAddItem(t, "coupe", 20)
	third := c.mustAddItem(t, "wagon", 30)
	require.NoError(t, c.catalog.EditStatus(ctx, ownerID, second, domain.ItemStatusRetired))

	available, err := c.catalog.ListByStatus(ctx, domain.ItemStatusAvailable)
	require.NoError(t, err)
	require.Len(t, available, 2)
	assert.Equal(t, first, available[0].ID)
	assert.Equal(t, third, available[1].ID)

	retired, err := c.catalog.ListByStatus(ctx, domain.ItemStatusRetired)
	require.NoError(t, err)
	require.Len(t, retired, 1)
	assert.Equal(t, second, retired[0].ID)

	inUse, err := c.catalog.ListByStatus(ctx, domain.ItemStatusInUse)
	require.NoError(t, err)
	assert.Empty(t, inUse)
}
