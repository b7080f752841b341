package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/traffic-balance-monitor/infrastructure/database/postgres"
	"github.com/vfg2006/traffic-balance-monitor/internal/domain"
)

const webhooksTable = "webhook_integrations"

var webhookColumns = []string{
	"id", "tenant_id", "name", "url", "is_active", "trigger_low_balance",
	"trigger_token_expiry", "trigger_report", "created_at", "updated_at",
}

// triggerColumns liga cada evento à coluna de gatilho correspondente
var triggerColumns = map[domain.EventType]string{
	domain.EventLowBalance:    "trigger_low_balance",
	domain.EventTokenExpiry:   "trigger_token_expiry",
	domain.EventAccountReport: "trigger_report",
}

//go:generate mockgen -source=webhook.go -destination=mocks/webhook.go -package=mocks
type WebhookRepository interface {
	CreateWebhook(ctx context.Context, webhook *domain.WebhookIntegration) error
	GetWebhookByID(ctx context.Context, tenantID int, webhookID string) (*domain.WebhookIntegration, error)
	ListWebhooks(ctx context.Context, tenantID int) ([]*domain.WebhookIntegration, error)
	ListActiveWebhooks(ctx context.Context, tenantID int, event domain.EventType) ([]*domain.WebhookIntegration, error)
	UpdateWebhook(ctx context.Context, req *domain.UpdateWebhookRequest) error
	DeleteWebhook(ctx context.Context, tenantID int, webhookID string) error
}

type webhookRepository struct {
	conn *postgres.Connection
}

func NewWebhookRepository(conn *postgres.Connection) WebhookRepository {
	return &webhookRepository{
		conn: conn,
	}
}

func (r *webhookRepository) CreateWebhook(ctx context.Context, webhook *domain.WebhookIntegration) error {
	sqlQuery, args, err := squirrel.
		Insert(webhooksTable).
		Columns("id", "tenant_id", "name", "url", "is_active", "trigger_low_balance", "trigger_token_expiry", "trigger_report").
		Values(
			webhook.ID,
			webhook.TenantID,
			webhook.Name,
			webhook.URL,
			webhook.IsActive,
			webhook.TriggerLowBalance,
			webhook.TriggerTokenExpiry,
			webhook.TriggerReport,
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&webhook.CreatedAt, &webhook.UpdatedAt); err != nil {
		return wrapExecError(err)
	}

	return nil
}

func (r *webhookRepository) GetWebhookByID(ctx context.Context, tenantID int, webhookID string) (*domain.WebhookIntegration, error) {
	sqlQuery, args, err := squirrel.
		Select(webhookColumns...).
		From(webhooksTable).
		Where(squirrel.Eq{"id": webhookID, "tenant_id": tenantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	webhook, err := scanWebhook(r.conn.QueryRowContext(ctx, sqlQuery, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return webhook, nil
}

func (r *webhookRepository) ListWebhooks(ctx context.Context, tenantID int) ([]*domain.WebhookIntegration, error) {
	return r.list(ctx, squirrel.Eq{"tenant_id": tenantID})
}

// ListActiveWebhooks busca, sem cache, os webhooks ativos com o gatilho do evento ligado
func (r *webhookRepository) ListActiveWebhooks(ctx context.Context, tenantID int, event domain.EventType) ([]*domain.WebhookIntegration, error) {
	column, ok := triggerColumns[event]
	if !ok {
		return nil, fmt.Errorf("evento de webhook desconhecido: %s", event)
	}

	return r.list(ctx, squirrel.Eq{
		"tenant_id": tenantID,
		"is_active": true,
		column:      true,
	})
}

func (r *webhookRepository) list(ctx context.Context, where squirrel.Eq) ([]*domain.WebhookIntegration, error) {
	sqlQuery, args, err := squirrel.
		Select(webhookColumns...).
		From(webhooksTable).
		Where(where).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, wrapExecError(err)
	}
	defer rows.Close()

	webhooks := make([]*domain.WebhookIntegration, 0)
	for rows.Next() {
		webhook, err := scanWebhook(rows)
		if err != nil {
			return nil, err
		}
		webhooks = append(webhooks, webhook)
	}

	return webhooks, rows.Err()
}

func (r *webhookRepository) UpdateWebhook(ctx context.Context, req *domain.UpdateWebhookRequest) error {
	queryBuilder := squirrel.
		Update(webhooksTable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": req.ID, "tenant_id": req.TenantID}).
		PlaceholderFormat(squirrel.Dollar)

	if req.Name != nil {
		queryBuilder = queryBuilder.Set("name", *req.Name)
	}

	if req.URL != nil {
		queryBuilder = queryBuilder.Set("url", *req.URL)
	}

	if req.IsActive != nil {
		queryBuilder = queryBuilder.Set("is_active", *req.IsActive)
	}

	if req.TriggerLowBalance != nil {
		queryBuilder = queryBuilder.Set("trigger_low_balance", *req.TriggerLowBalance)
	}

	if req.TriggerTokenExpiry != nil {
		queryBuilder = queryBuilder.Set("trigger_token_expiry", *req.TriggerTokenExpiry)
	}

	if req.TriggerReport != nil {
		queryBuilder = queryBuilder.Set("trigger_report", *req.TriggerReport)
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return wrapExecError(err)
	}

	return checkAffected(result.RowsAffected())
}

func (r *webhookRepository) DeleteWebhook(ctx context.Context, tenantID int, webhookID string) error {
	sqlQuery, args, err := squirrel.
		Delete(webhooksTable).
		Where(squirrel.Eq{"id": webhookID, "tenant_id": tenantID}).
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

func scanWebhook(row rowScanner) (*domain.WebhookIntegration, error) {
	webhook := &domain.WebhookIntegration{}
	if err := row.Scan(
		&webhook.ID,
		&webhook.TenantID,
		&webhook.Name,
		&webhook.URL,
		&webhook.IsActive,
		&webhook.TriggerLowBalance,
		&webhook.TriggerTokenExpiry,
		&webhook.TriggerReport,
		&webhook.CreatedAt,
		&webhook.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return webhook, nil
}
