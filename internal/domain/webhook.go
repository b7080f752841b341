package domain

import "time"

type EventType string

const (
	EventLowBalance    EventType = "low_balance"
	EventTokenExpiry   EventType = "token_expiry"
	EventAccountReport EventType = "account_report"
)

type WebhookIntegration struct {
	ID                 string    `json:"id"`
	TenantID           int       `json:"tenant_id"`
	Name               string    `json:"name"`
	URL                string    `json:"url"`
	IsActive           bool      `json:"is_active"`
	TriggerLowBalance  bool      `json:"trigger_low_balance"`
	TriggerTokenExpiry bool      `json:"trigger_token_expiry"`
	TriggerReport      bool      `json:"trigger_report"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Accepts indica se o webhook deve receber o evento
func (w *WebhookIntegration) Accepts(event EventType) bool {
	if !w.IsActive {
		return false
	}

	switch event {
	case EventLowBalance:
		return w.TriggerLowBalance
	case EventTokenExpiry:
		return w.TriggerTokenExpiry
	case EventAccountReport:
		return w.TriggerReport
	default:
		return false
	}
}

type UpdateWebhookRequest struct {
	ID                 string  `json:"-"`
	TenantID           int     `json:"-"`
	Name               *string `json:"name,omitempty"`
	URL                *string `json:"url,omitempty"`
	IsActive           *bool   `json:"is_active,omitempty"`
	TriggerLowBalance  *bool   `json:"trigger_low_balance,omitempty"`
	TriggerTokenExpiry *bool   `json:"trigger_token_expiry,omitempty"`
	TriggerReport      *bool   `json:"trigger_report,omitempty"`
}
