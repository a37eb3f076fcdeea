package payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentoriapro/inscricoes/internal/models"
)

func TestManualProvider_Begin(t *testing.T) {
	p := NewManualProvider("https://pay.cakto.com.br/rbkmhmg_551147", "5562993555185")
	sub := &models.Subscription{ID: "sub-123", Plano: models.PlanoPix}

	handle, ref, err := p.Begin(context.Background(), sub)
	require.NoError(t, err)

	assert.Empty(t, ref, "manual variant persists no payment reference on create")
	assert.Equal(t, "https://pay.cakto.com.br/rbkmhmg_551147", handle.CheckoutURL)
	assert.Contains(t, handle.SupportURL, "https://wa.me/5562993555185")
	assert.Contains(t, handle.SupportURL, "sub-123")
	assert.Empty(t, handle.ClientSecret)
}

func TestManualProvider_Confirm(t *testing.T) {
	p := NewManualProvider("https://pay.cakto.com.br/rbkmhmg_551147", "5562993555185")

	subID, ref, err := p.Confirm(context.Background(), "sub-123")
	require.NoError(t, err)
	assert.Equal(t, "sub-123", subID)
	assert.Equal(t, ManualReference, ref)
}
