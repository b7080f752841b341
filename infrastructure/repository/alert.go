package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/traffic-balance-monitor/infrastructure/database/postgres"
	"github.com/vfg2006/traffic-balance-monitor/internal/domain"
)

const alertsTable = "alerts"

//go:generate mockgen -source=alert.go -destination=mocks/alert.go -package=mocks
type AlertRepository interface {
	HasRecentAlert(ctx context.Context, accountID string, kind domain.AlertKind, since time.Time) (bool, error)
	CreateAlert(ctx context.Context, alert *domain.Alert) error
	ListAlerts(ctx context.Context, filter domain.AlertFilter) ([]*domain.Alert, error)
	MarkAsRead(ctx context.Context, tenantID int, alertID string) error
	DeleteAlert(ctx context.Context, tenantID int, alertID string) error
	DeleteAllAlerts(ctx context.Context, tenantID int) (int64, error)
}

type alertRepository struct {
	conn *postgres.Connection
}

func NewAlertRepository(conn *postgres.Connection) AlertRepository {
	return &alertRepository{
		conn: conn,
	}
}

func (r *alertRepository) HasRecentAlert(ctx context.Context, accountID string, kind domain.AlertKind, since time.Time) (bool, error) {
	sqlQuery, args, err := squirrel.
		Select("COUNT(1)").
		From(alertsTable).
		Where(squirrel.Eq{"account_id": accountID, "kind": kind}).
		Where(squirrel.GtOrEq{"sent_at": since}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, err
	}

	var total int
	if err := r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&total); err != nil {
		return false, wrapExecError(err)
	}

	return total > 0, nil
}

// CreateAlert grava o alerta. O índice único (account_id, kind, sent_day) barra
// execuções concorrentes que passaram juntas pela verificação de janela; nesse
// caso retorna ErrDuplicateAlert.
func (r *alertRepository) CreateAlert(ctx context.Context, alert *domain.Alert) error {
	sqlQuery, args, err := squirrel.
		Insert(alertsTable).
		Columns("id", "tenant_id", "account_id", "kind", "title", "message", "is_read", "sent_at", "sent_day").
		Values(
			alert.ID,
			alert.TenantID,
			alert.AccountID,
			alert.Kind,
			alert.Title,
			alert.Message,
			alert.IsRead,
			alert.SentAt,
			alert.SentAt.UTC().Format("2006-01-02"),
		).
		Suffix("ON CONFLICT (account_id, kind, sent_day) DO NOTHING RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	var id string
	if err := r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrDuplicateAlert
		}
		return wrapExecError(err)
	}

	return nil
}

func (r *alertRepository) ListAlerts(ctx context.Context, filter domain.AlertFilter) ([]*domain.Alert, error) {
	queryBuilder := squirrel.
		Select("al.id", "al.tenant_id", "al.account_id", "al.kind", "al.title", "al.message", "al.is_read", "al.sent_at", "a.name").
		From(alertsTable + " al").
		LeftJoin("ad_accounts a ON a.id = al.account_id").
		Where(squirrel.Eq{"al.tenant_id": filter.TenantID}).
		OrderBy("al.sent_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.AccountID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"al.account_id": *filter.AccountID})
	}

	if filter.Kind != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"al.kind": *filter.Kind})
	}

	if filter.UnreadOnly {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"al.is_read": false})
	}

	if filter.Limit > 0 {
		queryBuilder = queryBuilder.Limit(filter.Limit)
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, wrapExecError(err)
	}
	defer rows.Close()

	alerts := make([]*domain.Alert, 0)
	for rows.Next() {
		alert := &domain.Alert{}
		if err := rows.Scan(
			&alert.ID,
			&alert.TenantID,
			&alert.AccountID,
			&alert.Kind,
			&alert.Title,
			&alert.Message,
			&alert.IsRead,
			&alert.SentAt,
			&alert.AccountName,
		); err != nil {
			return nil, fmt.Errorf("erro ao ler alerta: %w", err)
		}
		alerts = append(alerts, alert)
	}

	return alerts, rows.Err()
}

func (r *alertRepository) MarkAsRead(ctx context.Context, tenantID int, alertID string) error {
	sqlQuery, args, err := squirrel.
		Update(alertsTable).
		Set("is_read", true).
		Where(squirrel.Eq{"id": alertID, "tenant_id": tenantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return wrapExecError(err)
	}

	return checkAffected(result.RowsAffected())
}

func (r *alertRepository) DeleteAlert(ctx context.Context, tenantID int, alertID string) error {
	sqlQuery, args, err := squirrel.
		Delete(alertsTable).
		Where(squirrel.Eq{"id": alertID, "tenant_id": tenantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return wrapExecError(err)
	}

	return checkAffected(result.RowsAffected())
}

func (r *alertRepository) DeleteAllAlerts(ctx context.Context, tenantID int) (int64, error) {
	sqlQuery, args, err := squirrel.
		Delete(alertsTable).
		Where(squirrel.Eq{"tenant_id": tenantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return 0, wrapExecError(err)
	}

	return result.RowsAffected()
}
