// Package middlewarectx contém os middlewares HTTP do serviço de inscrições.
//
// JWTMiddleware verifica a presença e a validade do token JWT no cabeçalho
// Authorization e, em caso de sucesso, adiciona ao contexto o nome do
// operador e o papel para uso posterior nos handlers.
//
// Em caso de falha devolve HTTP 401 Unauthorized com a mensagem do erro.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/mentoriapro/inscricoes/internal/http/response"
	"github.com/mentoriapro/inscricoes/internal/lib/jwt"
	"github.com/mentoriapro/inscricoes/internal/lib/sl"
)

// Key é o tipo das chaves de contexto da requisição HTTP.
type Key string

const (
	// User é a chave do nome do operador no contexto.
	User Key = "username"
	// Role é a chave do papel do operador no contexto.
	Role Key = "role"
)

// JWTMiddleware devolve um middleware HTTP que valida o JWT do cabeçalho
// Authorization com o Maker informado.
//
// Com token válido, adiciona nome e papel do operador ao contexto da
// requisição; caso contrário devolve HTTP 401 Unauthorized.
func JWTMiddleware(maker jwt.Maker, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.JWTMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing or invalid authorization header")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("missing or invalid authorization header"))
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := maker.ParseToken(tokenStr)
			if err != nil {
				log.Error("invalid or expired token", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired token"))
				return
			}
			ctx := context.WithValue(r.Context(), User, claims.Username)
			ctx = context.WithValue(ctx, Role, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
