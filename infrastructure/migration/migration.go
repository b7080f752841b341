package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const createVersionTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version    INTEGER PRIMARY KEY,
	name       VARCHAR(255) NOT NULL,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// Transactor é satisfeito por *postgres.Connection
type Transactor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error
}

type Migrator struct {
	conn       Transactor
	migrations []Migration
}

func New(conn Transactor) *Migrator {
	return &Migrator{
		conn:       conn,
		migrations: Migrations(),
	}
}

// Up aplica, cada uma na sua transação, as migrações ainda não registradas.
// Retorna quantas foram aplicadas.
func (m *Migrator) Up(ctx context.Context) (int, error) {
	if _, err := m.conn.ExecContext(ctx, createVersionTable); err != nil {
		return 0, errors.Wrap(err, "erro ao criar tabela schema_migrations")
	}

	applied, err := m.appliedVersions(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, migration := range m.migrations {
		if applied[migration.Version] {
			continue
		}

		startTime := time.Now()
		err := m.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, migration.SQL); err != nil {
				return err
			}
			_, err := tx.ExecContext(ctx,
				"INSERT INTO schema_migrations (version, name) VALUES ($1, $2)",
				migration.Version, migration.Name,
			)
			return err
		})
		if err != nil {
			return count, errors.Wrapf(err, "erro ao aplicar migração %d_%s", migration.Version, migration.Name)
		}

		logrus.WithFields(logrus.Fields{
			"version":  migration.Version,
			"name":     migration.Name,
			"duration": time.Since(startTime).String(),
		}).Info("Migração aplicada")
		count++
	}

	return count, nil
}

func (m *Migrator) appliedVersions(ctx context.Context) (map[int]bool, error) {
	rows, err := m.conn.QueryContext(ctx, "SELECT version FROM schema_migrations")
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar migrações aplicadas")
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("erro ao ler versão aplicada: %w", err)
		}
		applied[version] = true
	}

	return applied, rows.Err()
}
