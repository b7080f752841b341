package migration

// Migration é um passo do schema aplicado uma única vez, em ordem de versão
type Migration struct {
	Version int
	Name    string
	SQL     string
}

var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_users",
		SQL: `
CREATE TABLE IF NOT EXISTS users (
	id            SERIAL PRIMARY KEY,
	name          VARCHAR(120) NOT NULL,
	lastname      VARCHAR(120) NOT NULL,
	email         VARCHAR(255) NOT NULL UNIQUE,
	password_hash VARCHAR(255) NOT NULL,
	active        BOOLEAN NOT NULL DEFAULT TRUE,
	role_id       INTEGER NOT NULL DEFAULT 3,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`,
	},
	{
		Version: 2,
		Name:    "create_clients",
		SQL: `
CREATE TABLE IF NOT EXISTS clients (
	id                   VARCHAR(32) PRIMARY KEY,
	tenant_id            INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	name                 VARCHAR(255) NOT NULL,
	enable_balance_check BOOLEAN NOT NULL DEFAULT TRUE,
	manager_ref          VARCHAR(255),
	created_at           TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at           TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_clients_tenant ON clients (tenant_id)`,
	},
	{
		Version: 3,
		Name:    "create_ad_accounts",
		SQL: `
CREATE TABLE IF NOT EXISTS ad_accounts (
	id                 VARCHAR(32) PRIMARY KEY,
	tenant_id          INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	platform           VARCHAR(16) NOT NULL CHECK (platform IN ('meta', 'google')),
	external_id        VARCHAR(64) NOT NULL,
	name               VARCHAR(255) NOT NULL,
	balance            NUMERIC(14, 2),
	daily_spend        NUMERIC(14, 2),
	alert_threshold    NUMERIC(14, 2),
	alert_enabled      BOOLEAN NOT NULL DEFAULT TRUE,
	status             VARCHAR(16) NOT NULL DEFAULT 'active',
	access_token       TEXT,
	token_expires_at   TIMESTAMPTZ,
	credential         JSONB,
	client_id          VARCHAR(32) REFERENCES clients(id) ON DELETE SET NULL,
	is_manager         BOOLEAN NOT NULL DEFAULT FALSE,
	parent_external_id VARCHAR(64),
	currency           VARCHAR(8),
	last_sync_at       TIMESTAMPTZ,
	created_at         TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at         TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (tenant_id, platform, external_id)
);
CREATE INDEX IF NOT EXISTS idx_ad_accounts_tenant_status ON ad_accounts (tenant_id, status)`,
	},
	{
		Version: 4,
		Name:    "create_alerts",
		SQL: `
CREATE TABLE IF NOT EXISTS alerts (
	id         UUID PRIMARY KEY,
	tenant_id  INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	account_id VARCHAR(32) NOT NULL REFERENCES ad_accounts(id) ON DELETE CASCADE,
	kind       VARCHAR(32) NOT NULL,
	title      VARCHAR(255) NOT NULL,
	message    TEXT NOT NULL,
	is_read    BOOLEAN NOT NULL DEFAULT FALSE,
	sent_at    TIMESTAMPTZ NOT NULL,
	sent_day   DATE NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS uq_alerts_account_kind_day ON alerts (account_id, kind, sent_day);
CREATE INDEX IF NOT EXISTS idx_alerts_tenant_sent ON alerts (tenant_id, sent_at DESC)`,
	},
	{
		Version: 5,
		Name:    "create_reports",
		SQL: `
CREATE TABLE IF NOT EXISTS reports (
	id               UUID PRIMARY KEY,
	tenant_id        INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	account_id       VARCHAR(32) NOT NULL REFERENCES ad_accounts(id) ON DELETE CASCADE,
	title            VARCHAR(255) NOT NULL,
	message          TEXT NOT NULL,
	product_name     VARCHAR(255) NOT NULL,
	period_start     TIMESTAMPTZ NOT NULL,
	period_end       TIMESTAMPTZ NOT NULL,
	total_investment NUMERIC(14, 2) NOT NULL,
	messages_count   BIGINT NOT NULL,
	cost_per_message NUMERIC(14, 2) NOT NULL,
	is_read          BOOLEAN NOT NULL DEFAULT FALSE,
	created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_reports_tenant_created ON reports (tenant_id, created_at DESC)`,
	},
	{
		Version: 6,
		Name:    "create_webhook_integrations",
		SQL: `
CREATE TABLE IF NOT EXISTS webhook_integrations (
	id                   UUID PRIMARY KEY,
	tenant_id            INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	name                 VARCHAR(255) NOT NULL,
	url                  TEXT NOT NULL,
	is_active            BOOLEAN NOT NULL DEFAULT TRUE,
	trigger_low_balance  BOOLEAN NOT NULL DEFAULT FALSE,
	trigger_token_expiry BOOLEAN NOT NULL DEFAULT FALSE,
	trigger_report       BOOLEAN NOT NULL DEFAULT FALSE,
	created_at           TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at           TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`,
	},
}

// Migrations devolve os passos conhecidos, em ordem
func Migrations() []Migration {
	return append([]Migration(nil), migrations...)
}
