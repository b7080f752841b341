package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/traffic-balance-monitor/infrastructure/database/postgres"
	"github.com/vfg2006/traffic-balance-monitor/internal/domain"
)

const adAccountsTable = "ad_accounts"

var accountColumns = []string{
	"a.id", "a.tenant_id", "a.platform", "a.external_id", "a.name",
	"a.balance", "a.daily_spend", "a.alert_threshold", "a.alert_enabled", "a.status",
	"a.access_token", "a.token_expires_at", "a.credential", "a.client_id",
	"a.is_manager", "a.parent_external_id", "a.currency", "a.last_sync_at",
	"a.created_at", "a.updated_at", "c.name", "c.enable_balance_check",
}

//go:generate mockgen -source=account.go -destination=mocks/account.go -package=mocks
type AccountRepository interface {
	GetAccountByID(ctx context.Context, tenantID int, accountID string) (*domain.AdAccount, error)
	ListAccounts(ctx context.Context, filter domain.AccountFilter) ([]*domain.AdAccount, error)
	ListTenantIDs(ctx context.Context) ([]int, error)
	UpsertAccounts(ctx context.Context, accounts []*domain.AdAccount) error
	UpdateBalance(ctx context.Context, update domain.BalanceUpdate) error
	UpdateAccessToken(ctx context.Context, accountID, accessToken string, expiresAt time.Time) error
	UpdateAccount(ctx context.Context, req *domain.UpdateAdAccountRequest) error
	DeleteAccount(ctx context.Context, tenantID int, accountID string) error
}

type accountRepository struct {
	conn *postgres.Connection
}

func NewAccountRepository(conn *postgres.Connection) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

func (r *accountRepository) selectAccounts() squirrel.SelectBuilder {
	return squirrel.
		Select(accountColumns...).
		From(adAccountsTable + " a").
		LeftJoin("clients c ON c.id = a.client_id").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *accountRepository) GetAccountByID(ctx context.Context, tenantID int, accountID string) (*domain.AdAccount, error) {
	accountSQL, args, err := r.selectAccounts().
		Where(squirrel.Eq{"a.id": accountID, "a.tenant_id": tenantID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	acc, err := scanAccount(r.conn.QueryRowContext(ctx, accountSQL, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return acc, nil
}

func (r *accountRepository) ListAccounts(ctx context.Context, filter domain.AccountFilter) ([]*domain.AdAccount, error) {
	queryBuilder := r.selectAccounts().
		Where(squirrel.Eq{"a.tenant_id": filter.TenantID}).
		OrderBy("a.name ASC", "a.id ASC")

	if filter.AccountID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"a.id": *filter.AccountID})
	}

	if filter.Platform != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"a.platform": *filter.Platform})
	}

	if len(filter.Status) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"a.status": filter.Status})
	}

	if !filter.IncludeManagers {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"a.is_manager": false})
	}

	accountsSQL, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, accountsSQL, args...)
	if err != nil {
		return nil, wrapExecError(err)
	}
	defer rows.Close()

	accounts := make([]*domain.AdAccount, 0)
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, acc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return accounts, nil
}

func (r *accountRepository) ListTenantIDs(ctx context.Context) ([]int, error) {
	tenantSQL, args, err := squirrel.
		Select("DISTINCT tenant_id").
		From(adAccountsTable).
		Where(squirrel.Eq{"status": domain.AdAccountStatusActive}).
		OrderBy("tenant_id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, tenantSQL, args...)
	if err != nil {
		return nil, wrapExecError(err)
	}
	defer rows.Close()

	var tenants []int
	for rows.Next() {
		var tenantID int
		if err := rows.Scan(&tenantID); err != nil {
			return nil, fmt.Errorf("erro ao ler tenant: %w", err)
		}
		tenants = append(tenants, tenantID)
	}

	return tenants, rows.Err()
}

// UpsertAccounts grava as contas descobertas usando (tenant_id, platform, external_id)
// como chave. Preferências do usuário (limite, alerta, cliente) não são sobrescritas.
// O ID persistido de cada conta é devolvido no próprio slice.
func (r *accountRepository) UpsertAccounts(ctx context.Context, accounts []*domain.AdAccount) error {
	if len(accounts) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert(adAccountsTable).
		Columns(
			"id", "tenant_id", "platform", "external_id", "name", "alert_threshold", "alert_enabled",
			"status", "access_token", "token_expires_at", "credential", "is_manager",
			"parent_external_id", "currency", "last_sync_at",
		).
		PlaceholderFormat(squirrel.Dollar)

	byExternalID := make(map[string]*domain.AdAccount, len(accounts))
	for _, account := range accounts {
		credential, err := account.Credential.Marshal()
		if err != nil {
			return fmt.Errorf("erro ao serializar credencial da conta %s: %w", account.ExternalID, err)
		}

		var credentialValue any
		if credential != nil {
			credentialValue = string(credential)
		}

		threshold := account.AlertThreshold
		if !threshold.IsPositive() {
			threshold = decimal.NewFromFloat(domain.DefaultAlertThreshold)
		}

		query = query.Values(
			account.ID,
			account.TenantID,
			account.Platform,
			account.ExternalID,
			account.Name,
			threshold,
			account.AlertEnabled,
			account.Status,
			account.AccessToken,
			account.TokenExpiresAt,
			credentialValue,
			account.IsManager,
			account.ParentExternalID,
			account.Currency,
			account.LastSyncAt,
		)

		byExternalID[account.ExternalID] = account
	}

	query = query.Suffix(`
		ON CONFLICT (tenant_id, platform, external_id) DO UPDATE SET
			name = EXCLUDED.name,
			status = EXCLUDED.status,
			access_token = EXCLUDED.access_token,
			token_expires_at = EXCLUDED.token_expires_at,
			credential = COALESCE(EXCLUDED.credential, ad_accounts.credential),
			is_manager = EXCLUDED.is_manager,
			parent_external_id = EXCLUDED.parent_external_id,
			currency = EXCLUDED.currency,
			last_sync_at = EXCLUDED.last_sync_at,
			updated_at = NOW()
		RETURNING id, external_id
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return wrapExecError(err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, externalID string
		if err := rows.Scan(&id, &externalID); err != nil {
			return fmt.Errorf("erro ao ler conta gravada: %w", err)
		}

		if account, ok := byExternalID[externalID]; ok {
			account.ID = id
		} else {
			logrus.WithField("external_id", externalID).Warn("Conta gravada não encontrada no lote")
		}
	}

	return rows.Err()
}

func (r *accountRepository) UpdateBalance(ctx context.Context, update domain.BalanceUpdate) error {
	queryBuilder := squirrel.
		Update(adAccountsTable).
		Set("balance", update.Balance).
		Set("daily_spend", update.DailySpend).
		Set("status", update.Status).
		Set("last_sync_at", update.SyncedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": update.AccountID}).
		PlaceholderFormat(squirrel.Dollar)

	if update.Currency != "" {
		queryBuilder = queryBuilder.Set("currency", update.Currency)
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

func (r *accountRepository) UpdateAccessToken(ctx context.Context, accountID, accessToken string, expiresAt time.Time) error {
	sqlQuery, args, err := squirrel.
		Update(adAccountsTable).
		Set("access_token", accessToken).
		Set("token_expires_at", expiresAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": accountID}).
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

func (r *accountRepository) UpdateAccount(ctx context.Context, req *domain.UpdateAdAccountRequest) error {
	if req.ID == "" {
		return errors.New("ID is required")
	}

	queryBuilder := squirrel.
		Update(adAccountsTable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": req.ID, "tenant_id": req.TenantID}).
		PlaceholderFormat(squirrel.Dollar)

	if req.Name != nil {
		queryBuilder = queryBuilder.Set("name", *req.Name)
	}

	if req.AlertThreshold != nil {
		queryBuilder = queryBuilder.Set("alert_threshold", decimal.NewFromFloat(*req.AlertThreshold).Round(2))
	}

	if req.AlertEnabled != nil {
		queryBuilder = queryBuilder.Set("alert_enabled", *req.AlertEnabled)
	}

	if req.ClientID != nil {
		if *req.ClientID == "" {
			queryBuilder = queryBuilder.Set("client_id", nil)
		} else {
			queryBuilder = queryBuilder.Set("client_id", *req.ClientID)
		}
	}

	if req.Status != nil {
		queryBuilder = queryBuilder.Set("status", *req.Status)
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

func (r *accountRepository) DeleteAccount(ctx context.Context, tenantID int, accountID string) error {
	sqlQuery, args, err := squirrel.
		Delete(adAccountsTable).
		Where(squirrel.Eq{"id": accountID, "tenant_id": tenantID}).
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*domain.AdAccount, error) {
	acc := &domain.AdAccount{}
	var credential []byte

	if err := row.Scan(
		&acc.ID,
		&acc.TenantID,
		&acc.Platform,
		&acc.ExternalID,
		&acc.Name,
		&acc.Balance,
		&acc.DailySpend,
		&acc.AlertThreshold,
		&acc.AlertEnabled,
		&acc.Status,
		&acc.AccessToken,
		&acc.TokenExpiresAt,
		&credential,
		&acc.ClientID,
		&acc.IsManager,
		&acc.ParentExternalID,
		&acc.Currency,
		&acc.LastSyncAt,
		&acc.CreatedAt,
		&acc.UpdatedAt,
		&acc.ClientName,
		&acc.ClientBalanceCheck,
	); err != nil {
		return nil, err
	}

	cred, err := domain.UnmarshalCredential(credential)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": acc.ID,
			"error":      err.Error(),
		}).Warn("Credencial da conta ignorada")
	}
	acc.Credential = cred

	return acc, nil
}
