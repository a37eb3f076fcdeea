package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mentoriapro/inscricoes/internal/models"
	"github.com/mentoriapro/inscricoes/internal/storage"
)

// CreateSubscription insere uma inscrição nova com status pending e valor
// derivado do plano, devolvendo o registro completo.
func (s *Storage) CreateSubscription(ctx context.Context, req models.DummySubscription) (*models.Subscription, error) {
	const op = "repository.CreateSubscription"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	amount, _ := models.PlanoAmount(req.Plano)
	now := time.Now()
	sub := models.Subscription{
		ID:        uuid.New().String(),
		Nome:      req.Nome,
		Email:     req.Email,
		Telefone:  req.Telefone,
		Plano:     req.Plano,
		Amount:    amount,
		Status:    models.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	query := `INSERT INTO subscriptions (id, nome, email, telefone, plano, amount, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	if _, err := s.DB.ExecContext(ctx, query,
		sub.ID, sub.Nome, sub.Email, sub.Telefone, sub.Plano,
		sub.Amount, sub.Status, sub.CreatedAt, sub.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &sub, nil
}

// GetSubscription devolve a inscrição pelo id.
func (s *Storage) GetSubscription(ctx context.Context, id string) (*models.Subscription, error) {
	const op = "repository.GetSubscription"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, nome, email, telefone, plano, amount, status,
			      COALESCE(payment_reference, ''), created_at, updated_at
			  FROM subscriptions WHERE id = $1`
	return s.scanSubscription(s.DB.QueryRowContext(ctx, query, id), op)
}

// GetSubscriptionByEmail devolve a primeira inscrição com o e-mail
// informado. Duplicatas são permitidas; a escolha entre elas não é estável.
func (s *Storage) GetSubscriptionByEmail(ctx context.Context, email string) (*models.Subscription, error) {
	const op = "repository.GetSubscriptionByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, nome, email, telefone, plano, amount, status,
			      COALESCE(payment_reference, ''), created_at, updated_at
			  FROM subscriptions WHERE email = $1 LIMIT 1`
	return s.scanSubscription(s.DB.QueryRowContext(ctx, query, email), op)
}

// UpdateSubscriptionStatus sobrescreve o status, preserva a referência de
// pagamento quando a nova vem vazia e atualiza updated_at.
func (s *Storage) UpdateSubscriptionStatus(ctx context.Context, id, status, paymentReference string) (*models.Subscription, error) {
	const op = "repository.UpdateSubscriptionStatus"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE subscriptions
			  SET status = $2,
			      payment_reference = COALESCE(NULLIF($3, ''), payment_reference),
			      updated_at = $4
			  WHERE id = $1
			  RETURNING id, nome, email, telefone, plano, amount, status,
			      COALESCE(payment_reference, ''), created_at, updated_at`
	return s.scanSubscription(s.DB.QueryRowContext(ctx, query, id, status, paymentReference, time.Now()), op)
}

// ListSubscriptions devolve todas as inscrições, da mais recente para a
// mais antiga.
func (s *Storage) ListSubscriptions(ctx context.Context) ([]*models.Subscription, error) {
	const op = "repository.ListSubscriptions"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, nome, email, telefone, plano, amount, status,
			      COALESCE(payment_reference, ''), created_at, updated_at
			  FROM subscriptions
			  ORDER BY created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []*models.Subscription
	for rows.Next() {
		var item models.Subscription
		if err := rows.Scan(&item.ID, &item.Nome, &item.Email, &item.Telefone, &item.Plano,
			&item.Amount, &item.Status, &item.PaymentReference, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

func (s *Storage) scanSubscription(row *sql.Row, op string) (*models.Subscription, error) {
	var result models.Subscription
	if err := row.Scan(&result.ID, &result.Nome, &result.Email, &result.Telefone, &result.Plano,
		&result.Amount, &result.Status, &result.PaymentReference, &result.CreatedAt, &result.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}
