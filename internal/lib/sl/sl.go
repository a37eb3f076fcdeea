// Package sl reúne auxiliares para o logger slog, padronizando o campo
// de erro nos registros de log.
package sl

import "log/slog"

// Err devolve um slog.Attr com a chave "error" e o texto do erro.
//
// Exemplo:
//
//	log.Error("failed to do something", sl.Err(err))
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}
