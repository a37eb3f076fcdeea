// Package storage define os erros sentinela compartilhados pelos
// backends de armazenamento (memória e PostgreSQL).
package storage

import "errors"

var (
	// ErrSubscriptionNotFound indica que nenhuma inscrição existe com o id informado.
	ErrSubscriptionNotFound = errors.New("subscription not found")
	// ErrUserNotFound indica que nenhum operador existe com o username informado.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists indica tentativa de registrar um username já em uso.
	ErrUserExists = errors.New("user already exists")
)
