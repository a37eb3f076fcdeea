// Package subscription contém a regra de negócio do ciclo de vida das
// inscrições: criação com cobrança, confirmação de pagamento, listagem
// administrativa e estatísticas agregadas.
package subscription

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mentoriapro/inscricoes/internal/lib/sl"
	"github.com/mentoriapro/inscricoes/internal/models"
	"github.com/mentoriapro/inscricoes/internal/payment"
)

// SubscriptionRepository define as operações de armazenamento das
// inscrições, satisfeitas pelos backends em memória e PostgreSQL.
type SubscriptionRepository interface {
	// CreateSubscription grava uma inscrição nova com status pending e devolve o registro completo.
	CreateSubscription(ctx context.Context, req models.DummySubscription) (*models.Subscription, error)
	// GetSubscription devolve a inscrição pelo id.
	GetSubscription(ctx context.Context, id string) (*models.Subscription, error)
	// GetSubscriptionByEmail devolve a primeira inscrição com o e-mail informado.
	GetSubscriptionByEmail(ctx context.Context, email string) (*models.Subscription, error)
	// UpdateSubscriptionStatus sobrescreve o status e, se informada, a referência de pagamento.
	UpdateSubscriptionStatus(ctx context.Context, id, status, paymentReference string) (*models.Subscription, error)
	// ListSubscriptions devolve todas as inscrições, da mais recente para a mais antiga.
	ListSubscriptions(ctx context.Context) ([]*models.Subscription, error)
}

// Cache descreve o cache de leitura de registros individuais.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// Notifier publica o evento de confirmação para o serviço notificador.
type Notifier interface {
	PublishConfirmation(event models.ConfirmationEvent) error
}

// NopNotifier é usado quando a fila de notificações está desabilitada.
type NopNotifier struct{}

// PublishConfirmation descarta o evento.
func (NopNotifier) PublishConfirmation(models.ConfirmationEvent) error { return nil }

// Service implementa a orquestração das inscrições sobre o repositório,
// o provedor de pagamento, o cache e o notificador.
type Service struct {
	repo     SubscriptionRepository
	provider payment.Provider
	cache    Cache
	notifier Notifier
	log      *slog.Logger
}

// New cria o Service com as dependências injetadas.
func New(repo SubscriptionRepository, provider payment.Provider, cache Cache, notifier Notifier, log *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		provider: provider,
		cache:    cache,
		notifier: notifier,
		log:      log,
	}
}

// Create grava a inscrição e inicia a cobrança na variante ativa. Na
// variante Stripe o id do payment intent é persistido como referência de
// pagamento, mantendo o status pending; na manual não há referência.
func (s *Service) Create(ctx context.Context, req models.DummySubscription) (*models.Subscription, *payment.Handle, error) {
	sub, err := s.repo.CreateSubscription(ctx, req)
	if err != nil {
		return nil, nil, err
	}
	s.log.Info("created new subscription", slog.String("id", sub.ID), slog.String("plano", sub.Plano))

	handle, paymentRef, err := s.provider.Begin(ctx, sub)
	if err != nil {
		return nil, nil, err
	}
	if paymentRef != "" {
		sub, err = s.repo.UpdateSubscriptionStatus(ctx, sub.ID, models.StatusPending, paymentRef)
		if err != nil {
			return nil, nil, err
		}
	}

	cacheKey := fmt.Sprintf("subscription:%s", sub.ID)
	if err := s.cache.Set(cacheKey, sub, time.Hour); err != nil {
		s.log.Warn("failed to cache subscription", slog.String("key", cacheKey), sl.Err(err))
	}

	return sub, handle, nil
}

// ConfirmPayment resolve a referência na variante ativa e marca a
// inscrição como confirmed. Um intent cancelado marca a inscrição como
// failed antes de devolver o erro. A publicação da notificação é melhor
// esforço: falha vira warning, nunca falha a confirmação.
func (s *Service) ConfirmPayment(ctx context.Context, reference string) (*models.Subscription, error) {
	subID, paymentRef, err := s.provider.Confirm(ctx, reference)
	if err != nil {
		if errors.Is(err, payment.ErrCanceled) && subID != "" {
			if _, failErr := s.repo.UpdateSubscriptionStatus(ctx, subID, models.StatusFailed, paymentRef); failErr != nil {
				s.log.Warn("failed to mark subscription as failed", slog.String("id", subID), sl.Err(failErr))
			}
			s.invalidate(subID)
		}
		return nil, err
	}

	sub, err := s.repo.UpdateSubscriptionStatus(ctx, subID, models.StatusConfirmed, paymentRef)
	if err != nil {
		return nil, err
	}
	s.invalidate(subID)
	s.log.Info("payment confirmed", slog.String("id", sub.ID), slog.String("reference", paymentRef))

	event := models.ConfirmationEvent{
		SubscriptionID: sub.ID,
		Nome:           sub.Nome,
		Email:          sub.Email,
		Plano:          sub.Plano,
		Amount:         sub.Amount,
	}
	if err := s.notifier.PublishConfirmation(event); err != nil {
		s.log.Warn("failed to publish confirmation event", slog.String("id", sub.ID), sl.Err(err))
	}

	return sub, nil
}

// Get devolve a inscrição pelo id, usando o cache quando possível.
func (s *Service) Get(ctx context.Context, id string) (*models.Subscription, error) {
	var cached models.Subscription
	cacheKey := fmt.Sprintf("subscription:%s", id)
	found, err := s.cache.Get(cacheKey, &cached)
	if err != nil {
		s.log.Warn("cache read failed", slog.String("key", cacheKey), sl.Err(err))
	}
	if found {
		return &cached, nil
	}

	sub, err := s.repo.GetSubscription(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(cacheKey, sub, time.Hour); err != nil {
		s.log.Warn("failed to cache subscription", slog.String("key", cacheKey), sl.Err(err))
	}
	return sub, nil
}

// ListAll devolve todas as inscrições para o painel administrativo.
func (s *Service) ListAll(ctx context.Context) ([]*models.Subscription, error) {
	return s.repo.ListSubscriptions(ctx)
}

// Stats calcula o resumo agregado a partir do snapshot atual do
// repositório; nada é mantido incrementalmente. O corte de "este mês" é
// o primeiro instante do mês corrente no relógio local do servidor.
func (s *Service) Stats(ctx context.Context) (*models.Stats, error) {
	subs, err := s.repo.ListSubscriptions(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	stats := models.Stats{Revenue: decimal.Zero}
	confirmed := 0
	for _, sub := range subs {
		if sub.Status != models.StatusConfirmed {
			continue
		}
		confirmed++
		stats.Revenue = stats.Revenue.Add(sub.Amount)
		if !sub.CreatedAt.Before(firstOfMonth) {
			stats.ThisMonth++
		}
	}

	stats.TotalSubscriptions = confirmed
	if len(subs) > 0 {
		stats.ConversionRate = float64(confirmed) / float64(len(subs)) * 100
	}
	return &stats, nil
}

func (s *Service) invalidate(id string) {
	cacheKey := fmt.Sprintf("subscription:%s", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate cache", slog.String("key", cacheKey), sl.Err(err))
	}
}
