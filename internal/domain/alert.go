package domain

import "time"

type AlertKind string

const (
	AlertKindLowBalance  AlertKind = "low_balance"
	AlertKindTokenExpiry AlertKind = "token_expiry"
)

// AlertDedupWindow é a janela em que um mesmo alerta não é repetido para a conta
const AlertDedupWindow = 24 * time.Hour

type Alert struct {
	ID        string    `json:"id"`
	TenantID  int       `json:"tenant_id"`
	AccountID string    `json:"account_id"`
	Kind      AlertKind `json:"kind"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	SentAt    time.Time `json:"sent_at"`

	AccountName *string `json:"account_name,omitempty"`
}

type AlertFilter struct {
	TenantID   int
	AccountID  *string
	Kind       *AlertKind
	UnreadOnly bool
	Limit      uint64
}

// CheckAlertsResult resume uma rodada de verificação de alertas
type CheckAlertsResult struct {
	AccountsChecked int      `json:"accountsChecked"`
	AlertsCreated   int      `json:"alertsCreated"`
	AlertedAccounts []string `json:"alertedAccounts"`
}
