// Package notifier envia o e-mail de boas-vindas após a confirmação do
// pagamento. As mensagens chegam pela fila do RabbitMQ e cada corpo é um
// models.ConfirmationEvent serializado em JSON.
package notifier

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mentoriapro/inscricoes/internal/lib/sl"
	"github.com/mentoriapro/inscricoes/internal/lib/smtp"
	"github.com/mentoriapro/inscricoes/internal/models"
)

type Service struct {
	transport smtp.TransportInterface
	log       *slog.Logger
}

func New(transport smtp.TransportInterface, log *slog.Logger) *Service {
	return &Service{
		transport: transport,
		log:       log,
	}
}

// SendConfirmationEmail processa um evento de confirmação vindo da fila.
func (s *Service) SendConfirmationEmail(body []byte) error {
	const op = "services.notifier.SendConfirmationEmail"

	var event models.ConfirmationEvent
	if err := json.Unmarshal(body, &event); err != nil {
		s.log.Error("failed to unmarshal confirmation event", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	subject := "Inscrição confirmada — Mentoria PRO"
	bodyText := fmt.Sprintf(`Olá, %s!

Recebemos o seu pagamento de R$ %s (plano %s) e a sua inscrição na
Mentoria PRO está confirmada.

Em breve você receberá o acesso à área de membros neste mesmo e-mail.

Qualquer dúvida, é só responder esta mensagem.

Abraço,
Equipe Mentoria PRO`, event.Nome, event.Amount.StringFixed(2), event.Plano)

	return s.sendEmail([]string{event.Email}, subject, bodyText)
}

func (s *Service) sendEmail(to []string, subject, bodyText string) error {
	msg := strings.Join([]string{
		"From: " + s.transport.GetSMTPUser(),
		"To: " + strings.Join(to, ";"),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		bodyText,
	}, "\r\n")

	client, err := s.transport.Connect()
	if err != nil {
		s.log.Error("failed to connect to SMTP server", sl.Err(err))
		return err
	}
	defer client.Close()

	if err := client.Mail(s.transport.GetSMTPUser()); err != nil {
		s.log.Error("failed to set MAIL FROM", slog.String("from", s.transport.GetSMTPUser()), sl.Err(err))
		return err
	}

	for _, addr := range to {
		if err := client.Rcpt(addr); err != nil {
			s.log.Error("failed to set RCPT TO", slog.String("recipient", addr), sl.Err(err))
			return err
		}
	}

	wc, err := client.Data()
	if err != nil {
		s.log.Error("failed to get data writer", sl.Err(err))
		return err
	}

	if _, err = wc.Write([]byte(msg)); err != nil {
		s.log.Error("failed to write email body", sl.Err(err))
		return err
	}

	if err = wc.Close(); err != nil {
		s.log.Error("failed to close data writer", sl.Err(err))
		return err
	}

	if err = client.Quit(); err != nil {
		s.log.Error("failed to quit SMTP client", sl.Err(err))
		return err
	}

	s.log.Info("confirmation email sent", slog.String("to", strings.Join(to, ";")))
	return nil
}
