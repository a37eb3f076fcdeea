// Package repository implementa o armazenamento durável das inscrições e
// dos operadores em PostgreSQL, atrás do mesmo contrato do backend em
// memória.
package repository

import (
	"context"
	"fmt"

	// Registro do driver pgx para uso com database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"

	"database/sql"
)

// Storage encapsula a conexão com o PostgreSQL.
type Storage struct {
	DB *sql.DB
}

// New abre a conexão com o PostgreSQL e valida com um ping.
func New(storageConnectionString string) (*Storage, error) {
	const op = "repository.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}
