// Package login implementa o handler HTTP de autenticação do painel admin.
package login

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/mentoriapro/inscricoes/internal/http/response"
	"github.com/mentoriapro/inscricoes/internal/lib/sl"
	"github.com/mentoriapro/inscricoes/internal/models"
	"github.com/mentoriapro/inscricoes/internal/services/auth"
)

// Handler atende as requisições HTTP de login administrativo.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service descreve a lógica de autenticação.
type Service interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// New cria um Handler com o logger e o serviço informados.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Autenticar operador do painel
// @Description Verifica usuário e senha e devolve um token JWT de acesso.
// @Tags Admin
// @Accept  json
// @Produce  json
// @Param request body models.DummyLogin true "Credenciais"
// @Success 200 {object} response.Response "Token emitido"
// @Failure 400 {object} response.ErrorResponse "JSON inválido ou falha de validação"
// @Failure 401 {object} response.ErrorResponse "Credenciais inválidas"
// @Failure 500 {object} response.ErrorResponse "Erro interno"
// @Router /admin/login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.login"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyLogin
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	token, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			log.Warn("invalid credentials", slog.String("username", req.Username))
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error("invalid credentials"))
			return
		}
		log.Error("failed to login", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not login"))
		return
	}

	log.Info("operator logged in", slog.String("username", req.Username))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"token": token,
	}))
}
