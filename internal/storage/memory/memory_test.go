package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentoriapro/inscricoes/internal/models"
	"github.com/mentoriapro/inscricoes/internal/storage"
)

func validRequest() models.DummySubscription {
	return models.DummySubscription{
		Nome:     "Ana Silva",
		Email:    "ana@x.com",
		Telefone: "11999999999",
		Plano:    models.PlanoPix,
	}
}

func TestCreateSubscription(t *testing.T) {
	s := New()
	ctx := context.Background()

	sub, err := s.CreateSubscription(ctx, validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, sub.ID)
	assert.Equal(t, models.StatusPending, sub.Status)
	assert.True(t, sub.Amount.Equal(decimal.RequireFromString("297.00")),
		"amount %s should match the pix price", sub.Amount)
	assert.Empty(t, sub.PaymentReference)
	assert.Equal(t, sub.CreatedAt, sub.UpdatedAt)
}

func TestCreateSubscription_UniqueIDs(t *testing.T) {
	s := New()
	ctx := context.Background()

	seen := make(map[string]bool)
	for range 50 {
		sub, err := s.CreateSubscription(ctx, validRequest())
		require.NoError(t, err)
		require.False(t, seen[sub.ID], "id %s issued twice", sub.ID)
		seen[sub.ID] = true
	}
}

func TestCreateSubscription_CartaoAmount(t *testing.T) {
	s := New()
	req := validRequest()
	req.Plano = models.PlanoCartao

	sub, err := s.CreateSubscription(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, sub.Amount.Equal(decimal.RequireFromString("29.70")))
}

func TestGetSubscription(t *testing.T) {
	s := New()
	ctx := context.Background()

	sub, err := s.CreateSubscription(ctx, validRequest())
	require.NoError(t, err)

	got, err := s.GetSubscription(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, sub.ID, got.ID)

	_, err = s.GetSubscription(ctx, "nao-existe")
	assert.ErrorIs(t, err, storage.ErrSubscriptionNotFound)
}

func TestGetSubscriptionByEmail(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.CreateSubscription(ctx, validRequest())
	require.NoError(t, err)

	got, err := s.GetSubscriptionByEmail(ctx, "ana@x.com")
	require.NoError(t, err)
	assert.Equal(t, "ana@x.com", got.Email)

	_, err = s.GetSubscriptionByEmail(ctx, "ninguem@x.com")
	assert.ErrorIs(t, err, storage.ErrSubscriptionNotFound)
}

func TestUpdateSubscriptionStatus(t *testing.T) {
	s := New()
	ctx := context.Background()

	sub, err := s.CreateSubscription(ctx, validRequest())
	require.NoError(t, err)

	updated, err := s.UpdateSubscriptionStatus(ctx, sub.ID, models.StatusConfirmed, "pi_123")
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, updated.Status)
	assert.Equal(t, "pi_123", updated.PaymentReference)
	assert.False(t, updated.UpdatedAt.Before(updated.CreatedAt))
}

func TestUpdateSubscriptionStatus_KeepsReferenceWhenEmpty(t *testing.T) {
	s := New()
	ctx := context.Background()

	sub, err := s.CreateSubscription(ctx, validRequest())
	require.NoError(t, err)

	_, err = s.UpdateSubscriptionStatus(ctx, sub.ID, models.StatusPending, "pi_original")
	require.NoError(t, err)

	updated, err := s.UpdateSubscriptionStatus(ctx, sub.ID, models.StatusConfirmed, "")
	require.NoError(t, err)
	assert.Equal(t, "pi_original", updated.PaymentReference)
}

func TestUpdateSubscriptionStatus_NotFound(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.CreateSubscription(ctx, validRequest())
	require.NoError(t, err)

	_, err = s.UpdateSubscriptionStatus(ctx, "nao-existe", models.StatusConfirmed, "pi_123")
	assert.ErrorIs(t, err, storage.ErrSubscriptionNotFound)

	// o registro existente segue intacto
	list, err := s.ListSubscriptions(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.StatusPending, list[0].Status)
}

func TestListSubscriptions_NewestFirst(t *testing.T) {
	s := New()
	ctx := context.Background()

	first, err := s.CreateSubscription(ctx, validRequest())
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	second, err := s.CreateSubscription(ctx, validRequest())
	require.NoError(t, err)

	list, err := s.ListSubscriptions(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestRegisterUser(t *testing.T) {
	s := New()
	ctx := context.Background()

	uid, err := s.RegisterUser(ctx, models.User{Username: "mentoria", PasswordHash: "hash", Role: "admin"})
	require.NoError(t, err)
	assert.NotEmpty(t, uid)

	_, err = s.RegisterUser(ctx, models.User{Username: "mentoria", PasswordHash: "outro", Role: "admin"})
	assert.ErrorIs(t, err, storage.ErrUserExists)

	user, err := s.GetUserByUsername(ctx, "mentoria")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Role)

	_, err = s.GetUserByUsername(ctx, "ninguem")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}
