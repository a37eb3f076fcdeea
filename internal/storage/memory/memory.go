// Package memory implementa o armazenamento de inscrições e operadores em
// mapas na memória do processo. É o backend padrão: nada sobrevive a um
// restart, o que é aceitável para a landing page e obrigatório nos testes.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mentoriapro/inscricoes/internal/models"
	"github.com/mentoriapro/inscricoes/internal/storage"
)

// Storage guarda os registros em mapas protegidos por RWMutex. As
// operações são inserções e sobrescritas simples; confirmações duplicadas
// concorrentes para o mesmo id resolvem por last-write-wins.
type Storage struct {
	mu            sync.RWMutex
	subscriptions map[string]models.Subscription
	users         map[string]models.User
}

// New cria um Storage vazio.
func New() *Storage {
	return &Storage{
		subscriptions: make(map[string]models.Subscription),
		users:         make(map[string]models.User),
	}
}

// CreateSubscription gera um id novo, deriva o valor do plano, marca o
// status como pending e grava o registro com os dois timestamps em "agora".
func (s *Storage) CreateSubscription(_ context.Context, req models.DummySubscription) (*models.Subscription, error) {
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

	s.mu.Lock()
	s.subscriptions[sub.ID] = sub
	s.mu.Unlock()

	return &sub, nil
}

// GetSubscription devolve a inscrição pelo id ou ErrSubscriptionNotFound.
func (s *Storage) GetSubscription(_ context.Context, id string) (*models.Subscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sub, ok := s.subscriptions[id]
	if !ok {
		return nil, storage.ErrSubscriptionNotFound
	}
	return &sub, nil
}

// GetSubscriptionByEmail devolve a primeira inscrição encontrada com o
// e-mail informado. E-mails duplicados são permitidos; qual duplicata é
// devolvida não é garantido.
func (s *Storage) GetSubscriptionByEmail(_ context.Context, email string) (*models.Subscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sub := range s.subscriptions {
		if sub.Email == email {
			return &sub, nil
		}
	}
	return nil, storage.ErrSubscriptionNotFound
}

// UpdateSubscriptionStatus sobrescreve o status e atualiza updatedAt.
// A referência de pagamento só é sobrescrita quando uma nova é informada;
// uma referência vazia nunca apaga a existente. Não há checagem de
// legalidade da transição.
func (s *Storage) UpdateSubscriptionStatus(_ context.Context, id, status, paymentReference string) (*models.Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.subscriptions[id]
	if !ok {
		return nil, storage.ErrSubscriptionNotFound
	}

	sub.Status = status
	if paymentReference != "" {
		sub.PaymentReference = paymentReference
	}
	sub.UpdatedAt = time.Now()
	s.subscriptions[id] = sub

	return &sub, nil
}

// ListSubscriptions devolve todas as inscrições ordenadas por data de
// criação, da mais recente para a mais antiga.
func (s *Storage) ListSubscriptions(_ context.Context) ([]*models.Subscription, error) {
	s.mu.RLock()
	result := make([]*models.Subscription, 0, len(s.subscriptions))
	for _, sub := range s.subscriptions {
		c := sub
		result = append(result, &c)
	}
	s.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// RegisterUser grava um operador novo. Username é único.
func (s *Storage) RegisterUser(_ context.Context, user models.User) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.Username]; ok {
		return "", storage.ErrUserExists
	}
	if user.UID == "" {
		user.UID = uuid.New().String()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	s.users[user.Username] = user
	return user.UID, nil
}

// GetUserByUsername devolve o operador ou ErrUserNotFound.
func (s *Storage) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[username]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return &user, nil
}
