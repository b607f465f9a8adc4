package repository

import (
	"context"
	"errors"
	"fmt"
	"ticket-purchase/internal/model"
	apperrors "ticket-purchase/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PaymentRepository interface {
	// 付款：寫入一筆付款紀錄
	MakePayment(ctx context.Context, accountID int64, amount int) error
	FindByPaymentID(ctx context.Context, paymentID uuid.UUID) (*model.Payment, error)
	ListByAccountID(ctx context.Context, accountID int64) ([]*model.Payment, error)

	// Transaction methods
	Create(ctx context.Context, tx pgx.Tx, payment *model.Payment) (*model.Payment, error)
}

type PaymentRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewPaymentRepository(pool *pgxpool.Pool) PaymentRepository {
	return &PaymentRepositoryImpl{
		pool: pool,
	}
}

func (r *PaymentRepositoryImpl) MakePayment(ctx context.Context, accountID int64, amount int) error {
	if amount < 0 {
		return fmt.Errorf("invalid payment amount: %d", amount)
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = r.Create(ctx, tx, &model.Payment{
		PaymentID: uuid.New(),
		AccountID: accountID,
		Amount:    amount,
	})
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PaymentRepositoryImpl) Create(ctx context.Context, tx pgx.Tx, payment *model.Payment) (*model.Payment, error) {
	query := `
		INSERT INTO payments (payment_id, account_id, amount)
		VALUES ($1, $2, $3)
		RETURNING id, payment_id, account_id, amount, created_at
	`

	err := tx.QueryRow(ctx, query,
		payment.PaymentID, payment.AccountID, payment.Amount,
	).Scan(
		&payment.ID,
		&payment.PaymentID,
		&payment.AccountID,
		&payment.Amount,
		&payment.CreatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	return payment, nil
}

func (r *PaymentRepositoryImpl) FindByPaymentID(ctx context.Context, paymentID uuid.UUID) (*model.Payment, error) {
	query := `
		SELECT id, payment_id, account_id, amount, created_at
		FROM payments
		WHERE payment_id = $1
	`

	var payment model.Payment
	err := r.pool.QueryRow(ctx, query, paymentID).Scan(
		&payment.ID,
		&payment.PaymentID,
		&payment.AccountID,
		&payment.Amount,
		&payment.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPaymentNotFound
		}
		return nil, err
	}

	return &payment, nil
}

func (r *PaymentRepositoryImpl) ListByAccountID(ctx context.Context, accountID int64) ([]*model.Payment, error) {
	query := `
		SELECT id, payment_id, account_id, amount, created_at
		FROM payments
		WHERE account_id = $1
		ORDER BY created_at ASC, id ASC
	`

	rows, err := r.pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*model.Payment

	for rows.Next() {
		var payment model.Payment
		err := rows.Scan(
			&payment.ID,
			&payment.PaymentID,
			&payment.AccountID,
			&payment.Amount,
			&payment.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		payments = append(payments, &payment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}
