// Package smtp fornece o transporte de e-mail do serviço notificador.
package smtp

import "io"

// Client é a fatia de *smtp.Client usada pelo envio de e-mails.
type Client interface {
	Mail(from string) error
	Rcpt(to string) error
	Data() (io.WriteCloser, error)
	Quit() error
	Close() error
}

// TransportInterface abre conexões autenticadas com o servidor SMTP.
type TransportInterface interface {
	Connect() (Client, error)
	GetSMTPUser() string
}
