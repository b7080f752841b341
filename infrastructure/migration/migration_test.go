package migration

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/traffic-balance-monitor/infrastructure/database/postgres"
)

func newMigrator(t *testing.T, steps []Migration) (*Migrator, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &Migrator{conn: &postgres.Connection{DB: db}, migrations: steps}, mock
}

func TestUpAppliesPendingMigrations(t *testing.T) {
	steps := []Migration{
		{Version: 1, Name: "one", SQL: "CREATE TABLE one (id INT)"},
		{Version: 2, Name: "two", SQL: "CREATE TABLE two (id INT)"},
	}
	migrator, mock := newMigrator(t, steps)

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS schema_migrations")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT version FROM schema_migrations")).
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(1))

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE two (id INT)")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO schema_migrations (version, name) VALUES ($1, $2)")).
		WithArgs(2, "two").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	applied, err := migrator.Up(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpRollsBackFailedMigration(t *testing.T) {
	steps := []Migration{{Version: 1, Name: "broken", SQL: "CREATE TABLE broken"}}
	migrator, mock := newMigrator(t, steps)

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS schema_migrations")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT version FROM schema_migrations")).
		WillReturnRows(sqlmock.NewRows([]string{"version"}))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE broken")).
		WillReturnError(errors.New("syntax error"))
	mock.ExpectRollback()

	applied, err := migrator.Up(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "1_broken")
	assert.Equal(t, 0, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSchemaVersionsAreOrdered(t *testing.T) {
	steps := Migrations()
	require.NotEmpty(t, steps)

	for i, step := range steps {
		assert.Equal(t, i+1, step.Version, step.Name)
	}

	var adAccounts string
	for _, step := range steps {
		if step.Name == "create_ad_accounts" {
			adAccounts = step.SQL
		}
	}
	assert.Contains(t, adAccounts, "UNIQUE (tenant_id, platform, external_id)")
	assert.Contains(t, adAccounts, "REFERENCES clients(id) ON DELETE SET NULL")
}
