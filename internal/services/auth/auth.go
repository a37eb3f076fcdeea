// Package auth autentica administradores do painel e emite tokens JWT.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mentoriapro/inscricoes/internal/lib/jwt"
	"github.com/mentoriapro/inscricoes/internal/lib/password"
	"github.com/mentoriapro/inscricoes/internal/models"
	"github.com/mentoriapro/inscricoes/internal/storage"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository descreve o armazenamento de usuários administrativos.
type UserRepository interface {
	RegisterUser(ctx context.Context, user models.User) (string, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

type Service struct {
	repo     UserRepository
	jwtMaker jwt.Maker
	log      *slog.Logger
}

func New(repo UserRepository, jwtMaker jwt.Maker, log *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		jwtMaker: jwtMaker,
		log:      log,
	}
}

// Login verifica as credenciais e devolve um token de acesso ao painel.
func (s *Service) Login(ctx context.Context, username, pass string) (string, error) {
	const op = "services.auth.Login"

	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if err := password.CompareHash(user.PasswordHash, pass); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.jwtMaker.GenerateToken(user.Username, user.Role)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

// Bootstrap garante que o usuário administrador configurado exista.
func (s *Service) Bootstrap(ctx context.Context, username, pass string) error {
	const op = "services.auth.Bootstrap"

	hash, err := password.GetHash(pass)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	_, err = s.repo.RegisterUser(ctx, models.User{
		Username:     username,
		PasswordHash: hash,
		Role:         "admin",
		CreatedAt:    time.Now(),
	})
	if err != nil {
		if errors.Is(err, storage.ErrUserExists) {
			s.log.Debug("admin user already registered", slog.String("username", username))
			return nil
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("admin user registered", slog.String("username", username))
	return nil
}
