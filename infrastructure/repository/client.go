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

const clientsTable = "clients"

//go:generate mockgen -source=client.go -destination=mocks/client.go -package=mocks
type ClientRepository interface {
	CreateClient(ctx context.Context, client *domain.Client) error
	GetClientByID(ctx context.Context, tenantID int, clientID string) (*domain.Client, error)
	ListClients(ctx context.Context, tenantID int) ([]*domain.Client, error)
	UpdateClient(ctx context.Context, req *domain.UpdateClientRequest) error
	DeleteClient(ctx context.Context, tenantID int, clientID string) error
}

type clientRepository struct {
	conn *postgres.Connection
}

func NewClientRepository(conn *postgres.Connection) ClientRepository {
	return &clientRepository{
		conn: conn,
	}
}

func (r *clientRepository) CreateClient(ctx context.Context, client *domain.Client) error {
	sqlQuery, args, err := squirrel.
		Insert(clientsTable).
		Columns("id", "tenant_id", "name", "enable_balance_check", "manager_ref").
		Values(client.ID, client.TenantID, client.Name, client.EnableBalanceCheck, client.ManagerRef).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&client.CreatedAt, &client.UpdatedAt); err != nil {
		return wrapExecError(err)
	}

	return nil
}

func (r *clientRepository) GetClientByID(ctx context.Context, tenantID int, clientID string) (*domain.Client, error) {
	sqlQuery, args, err := squirrel.
		Select("id", "tenant_id", "name", "enable_balance_check", "manager_ref", "created_at", "updated_at").
		From(clientsTable).
		Where(squirrel.Eq{"id": clientID, "tenant_id": tenantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	client, err := scanClient(r.conn.QueryRowContext(ctx, sqlQuery, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return client, nil
}

func (r *clientRepository) ListClients(ctx context.Context, tenantID int) ([]*domain.Client, error) {
	sqlQuery, args, err := squirrel.
		Select("id", "tenant_id", "name", "enable_balance_check", "manager_ref", "created_at", "updated_at").
		From(clientsTable).
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("name ASC").
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

	clients := make([]*domain.Client, 0)
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}

	return clients, rows.Err()
}

func (r *clientRepository) UpdateClient(ctx context.Context, req *domain.UpdateClientRequest) error {
	queryBuilder := squirrel.
		Update(clientsTable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": req.ID, "tenant_id": req.TenantID}).
		PlaceholderFormat(squirrel.Dollar)

	if req.Name != nil {
		queryBuilder = queryBuilder.Set("name", *req.Name)
	}

	if req.EnableBalanceCheck != nil {
		queryBuilder = queryBuilder.Set("enable_balance_check", *req.EnableBalanceCheck)
	}

	if req.ManagerRef != nil {
		queryBuilder = queryBuilder.Set("manager_ref", *req.ManagerRef)
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

func (r *clientRepository) DeleteClient(ctx context.Context, tenantID int, clientID string) error {
	sqlQuery, args, err := squirrel.
		Delete(clientsTable).
		Where(squirrel.Eq{"id": clientID, "tenant_id": tenantID}).
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

func scanClient(row rowScanner) (*domain.Client, error) {
	client := &domain.Client{}
	if err := row.Scan(
		&client.ID,
		&client.TenantID,
		&client.Name,
		&client.EnableBalanceCheck,
		&client.ManagerRef,
		&client.CreatedAt,
		&client.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return client, nil
}
