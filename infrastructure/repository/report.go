package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/traffic-balance-monitor/infrastructure/database/postgres"
	"github.com/vfg2006/traffic-balance-monitor/internal/domain"
)

const reportsTable = "reports"

//go:generate mockgen -source=report.go -destination=mocks/report.go -package=mocks
type ReportRepository interface {
	CreateReport(ctx context.Context, report *domain.Report) error
	ListReports(ctx context.Context, filter domain.ReportFilter) ([]*domain.Report, error)
	MarkAsRead(ctx context.Context, tenantID int, reportID string) error
	DeleteReport(ctx context.Context, tenantID int, reportID string) error
	DeleteAllReports(ctx context.Context, tenantID int) (int64, error)
}

type reportRepository struct {
	conn *postgres.Connection
}

func NewReportRepository(conn *postgres.Connection) ReportRepository {
	return &reportRepository{
		conn: conn,
	}
}

func (r *reportRepository) CreateReport(ctx context.Context, report *domain.Report) error {
	sqlQuery, args, err := squirrel.
		Insert(reportsTable).
		Columns(
			"id", "tenant_id", "account_id", "title", "message", "product_name", "period_start",
			"period_end", "total_investment", "messages_count", "cost_per_message", "is_read", "created_at",
		).
		Values(
			report.ID,
			report.TenantID,
			report.AccountID,
			report.Title,
			report.Message,
			report.ProductName,
			report.PeriodStart,
			report.PeriodEnd,
			report.TotalInvestment,
			report.MessagesCount,
			report.CostPerMessage,
			report.IsRead,
			report.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		return wrapExecError(err)
	}

	return nil
}

func (r *reportRepository) ListReports(ctx context.Context, filter domain.ReportFilter) ([]*domain.Report, error) {
	queryBuilder := squirrel.
		Select(
			"id", "tenant_id", "account_id", "title", "message", "product_name", "period_start",
			"period_end", "total_investment", "messages_count", "cost_per_message", "is_read", "created_at",
		).
		From(reportsTable).
		Where(squirrel.Eq{"tenant_id": filter.TenantID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.AccountID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"account_id": *filter.AccountID})
	}

	if filter.UnreadOnly {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"is_read": false})
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

	reports := make([]*domain.Report, 0)
	for rows.Next() {
		report := &domain.Report{}
		if err := rows.Scan(
			&report.ID,
			&report.TenantID,
			&report.AccountID,
			&report.Title,
			&report.Message,
			&report.ProductName,
			&report.PeriodStart,
			&report.PeriodEnd,
			&report.TotalInvestment,
			&report.MessagesCount,
			&report.CostPerMessage,
			&report.IsRead,
			&report.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao ler relatório: %w", err)
		}
		reports = append(reports, report)
	}

	return reports, rows.Err()
}

func (r *reportRepository) MarkAsRead(ctx context.Context, tenantID int, reportID string) error {
	sqlQuery, args, err := squirrel.
		Update(reportsTable).
		Set("is_read", true).
		Where(squirrel.Eq{"id": reportID, "tenant_id": tenantID}).
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

func (r *reportRepository) DeleteReport(ctx context.Context, tenantID int, reportID string) error {
	sqlQuery, args, err := squirrel.
		Delete(reportsTable).
		Where(squirrel.Eq{"id": reportID, "tenant_id": tenantID}).
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

func (r *reportRepository) DeleteAllReports(ctx context.Context, tenantID int) (int64, error) {
	sqlQuery, args, err := squirrel.
		Delete(reportsTable).
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
