// Package migration aplica o schema do banco a partir dos arquivos SQL embutidos no binário.
package migration

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed sql/*.sql
var embeddedMigrations embed.FS

const migrationsDir = "sql"

// Migrator envolve o golang-migrate sobre a conexão compartilhada
type Migrator struct {
	m *migrate.Migrate
}

func New(db *sql.DB) (*Migrator, error) {
	if db == nil {
		return nil, errors.New("conexão com o banco é obrigatória para a migração")
	}

	sub, err := fs.Sub(embeddedMigrations, migrationsDir)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir migrações: %w", err)
	}

	source, err := iofs.New(sub, ".")
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a origem das migrações: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("erro ao criar o driver de migração: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar o migrador: %w", err)
	}

	return &Migrator{m: m}, nil
}

// Up aplica as migrações pendentes; nenhuma alteração não é erro
func (mg *Migrator) Up() error {
	if err := mg.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("erro ao aplicar migrações: %w", err)
	}
	return nil
}

// Down desfaz as últimas steps migrações
func (mg *Migrator) Down(steps int) error {
	if steps <= 0 {
		steps = 1
	}
	if err := mg.m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("erro ao desfazer migrações: %w", err)
	}
	return nil
}

// Version retorna a versão atual e se o schema ficou sujo
func (mg *Migrator) Version() (uint, bool, error) {
	version, dirty, err := mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}

// Run aplica todas as migrações pendentes.
// O migrador não é fechado para não fechar o *sql.DB compartilhado.
func Run(db *sql.DB) error {
	mg, err := New(db)
	if err != nil {
		return err
	}
	return mg.Up()
}
