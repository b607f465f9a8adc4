package repository_test

import (
	"context"
	"testing"

	"ticket-purchase/internal/repository"
	apperrors "ticket-purchase/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentRepository_MakePayment(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewPaymentRepository(getTestDB(t))

	t.Run("Success", func(t *testing.T) {
		setupTestWithTruncate(t)

		require.NoError(t, repo.MakePayment(ctx, 1, 16))
		require.NoError(t, repo.MakePayment(ctx, 1, 40))
		require.NoError(t, repo.MakePayment(ctx, 2, 20))

		payments, err := repo.ListByAccountID(ctx, 1)
		require.NoError(t, err)
		require.Len(t, payments, 2)
		assert.Equal(t, 16, payments[0].Amount)
		assert.Equal(t, 40, payments[1].Amount)
		assert.NotEqual(t, uuid.Nil, payments[0].PaymentID)
		assert.False(t, payments[0].CreatedAt.IsZero())
	})

	t.Run("Zero amount is allowed", func(t *testing.T) {
		setupTestWithTruncate(t)
		assert.NoError(t, repo.MakePayment(ctx, 1, 0))
	})

	t.Run("Failed - negative amount", func(t *testing.T) {
		setupTestWithTruncate(t)
		assert.Error(t, repo.MakePayment(ctx, 1, -1))

		payments, err := repo.ListByAccountID(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, payments)
	})
}

func TestPaymentRepository_FindByPaymentID(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewPaymentRepository(getTestDB(t))

	t.Run("Success", func(t *testing.T) {
		setupTestWithTruncate(t)
		require.NoError(t, repo.MakePayment(ctx, 3, 30))

		payments, err := repo.ListByAccountID(ctx, 3)
		require.NoError(t, err)
		require.Len(t, payments, 1)

		found, err := repo.FindByPaymentID(ctx, payments[0].PaymentID)
		require.NoError(t, err)
		assert.Equal(t, int64(3), found.AccountID)
		assert.Equal(t, 30, found.Amount)
	})

	t.Run("Failed - NotFound", func(t *testing.T) {
		setupTestWithTruncate(t)
		_, err := repo.FindByPaymentID(ctx, uuid.New())
		assert.ErrorIs(t, err, apperrors.ErrPaymentNotFound)
	})
}
