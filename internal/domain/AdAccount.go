package domain

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/traffic-balance-monitor/pkg/money"
)

type AdAccountStatus string

const (
	AdAccountStatusActive   AdAccountStatus = "active"
	AdAccountStatusInactive AdAccountStatus = "inactive"
)

// DefaultAlertThreshold é o limite de saldo usado quando a conta não define um
const DefaultAlertThreshold = 500.0

type AdAccount struct {
	ID               string          `json:"id"`
	TenantID         int             `json:"tenant_id"`
	Platform         Platform        `json:"platform"`
	ExternalID       string          `json:"external_id"`
	Name             string          `json:"name"`
	Balance          decimal.Decimal `json:"balance"`
	DailySpend       decimal.Decimal `json:"daily_spend"`
	AlertThreshold   decimal.Decimal `json:"alert_threshold"`
	AlertEnabled     bool            `json:"alert_enabled"`
	Status           AdAccountStatus `json:"status"`
	AccessToken      string          `json:"-"`
	TokenExpiresAt   *time.Time      `json:"token_expires_at,omitempty"`
	Credential       *Credential     `json:"-"`
	ClientID         *string         `json:"client_id,omitempty"`
	IsManager        bool            `json:"is_manager"`
	ParentExternalID *string         `json:"parent_external_id,omitempty"`
	Currency         string          `json:"currency"`
	LastSyncAt       *time.Time      `json:"last_sync_at,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`

	// Preenchidos a partir do cliente vinculado
	ClientName         *string `json:"client_name,omitempty"`
	ClientBalanceCheck *bool   `json:"-"`
}

// Threshold retorna o limite de alerta efetivo da conta
func (a *AdAccount) Threshold() float64 {
	threshold := a.AlertThreshold.InexactFloat64()
	if threshold <= 0 {
		return DefaultAlertThreshold
	}
	return threshold
}

// BalanceCheckEnabled indica se a conta pode gerar alertas: a própria conta
// precisa estar habilitada e o cliente vinculado, se existir, também.
func (a *AdAccount) BalanceCheckEnabled() bool {
	if !a.AlertEnabled {
		return false
	}
	return a.ClientBalanceCheck == nil || *a.ClientBalanceCheck
}

// FormattedBalance retorna o saldo no formato pt-BR
func (a *AdAccount) FormattedBalance() string {
	return money.FormatDecimal(a.Balance)
}

// TokenExpiresWithin indica se o token expira (ou já expirou) dentro da janela
func (a *AdAccount) TokenExpiresWithin(now time.Time, window time.Duration) bool {
	if a.TokenExpiresAt == nil {
		return false
	}
	return a.TokenExpiresAt.Before(now.Add(window))
}

// RefreshesOwnToken indica contas do Google com credencial completa, cujo
// token de acesso é renovado na sincronização sem ação do usuário
func (a *AdAccount) RefreshesOwnToken() bool {
	return a.Platform == PlatformGoogle && a.Credential.IsComplete()
}

// GrantRevoked indica que a última renovação foi recusada pelo provedor. A
// sincronização marca esse estado limpando o token e vencendo a expiração.
func (a *AdAccount) GrantRevoked(now time.Time) bool {
	return a.AccessToken == "" && a.TokenExpiresAt != nil && !a.TokenExpiresAt.After(now)
}

// NeedsReconnect indica se o usuário precisa informar um novo token. Contas
// que se renovam sozinhas só precisam quando a renovação foi revogada.
func (a *AdAccount) NeedsReconnect(now time.Time, window time.Duration) bool {
	if a.RefreshesOwnToken() {
		return a.GrantRevoked(now)
	}
	return a.TokenExpiresWithin(now, window)
}

type AccountFilter struct {
	TenantID        int
	AccountID       *string
	Platform        *Platform
	Status          []AdAccountStatus
	IncludeManagers bool
}

type BalanceUpdate struct {
	AccountID  string
	Balance    decimal.Decimal
	DailySpend decimal.Decimal
	Status     AdAccountStatus
	Currency   string
	SyncedAt   time.Time
}

type AdAccountResponse struct {
	ID             string          `json:"id"`
	Platform       Platform        `json:"platform"`
	ExternalID     string          `json:"external_id"`
	Name           string          `json:"name"`
	Balance        string          `json:"balance"`
	BalanceValue   float64         `json:"balance_value"`
	DailySpend     float64         `json:"daily_spend"`
	AlertThreshold float64         `json:"alert_threshold"`
	AlertEnabled   bool            `json:"alert_enabled"`
	Status         AdAccountStatus `json:"status"`
	ClientID       *string         `json:"client_id,omitempty"`
	ClientName     *string         `json:"client_name,omitempty"`
	IsManager      bool            `json:"is_manager"`
	Currency       string          `json:"currency"`
	TokenExpiresAt *time.Time      `json:"token_expires_at,omitempty"`
	LastSyncAt     *time.Time      `json:"last_sync_at,omitempty"`
}

func NewAdAccountResponse(a *AdAccount) *AdAccountResponse {
	return &AdAccountResponse{
		ID:             a.ID,
		Platform:       a.Platform,
		ExternalID:     a.ExternalID,
		Name:           a.Name,
		Balance:        a.FormattedBalance(),
		BalanceValue:   a.Balance.InexactFloat64(),
		DailySpend:     a.DailySpend.InexactFloat64(),
		AlertThreshold: a.Threshold(),
		AlertEnabled:   a.AlertEnabled,
		Status:         a.Status,
		ClientID:       a.ClientID,
		ClientName:     a.ClientName,
		IsManager:      a.IsManager,
		Currency:       a.Currency,
		TokenExpiresAt: a.TokenExpiresAt,
		LastSyncAt:     a.LastSyncAt,
	}
}

type UpdateAdAccountRequest struct {
	ID             string           `json:"-"`
	TenantID       int              `json:"-"`
	Name           *string          `json:"name,omitempty"`
	AlertThreshold *float64         `json:"alert_threshold,omitempty"`
	AlertEnabled   *bool            `json:"alert_enabled,omitempty"`
	ClientID       *string          `json:"client_id,omitempty"` // string vazia desvincula o cliente
	Status         *AdAccountStatus `json:"status,omitempty"`
}
