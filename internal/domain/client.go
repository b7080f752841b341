package domain

import "time"

// Client agrupa contas de anúncio de um mesmo cliente da agência
type Client struct {
	ID                 string    `json:"id"`
	TenantID           int       `json:"tenant_id"`
	Name               string    `json:"name"`
	EnableBalanceCheck bool      `json:"enable_balance_check"`
	ManagerRef         *string   `json:"manager_ref,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type UpdateClientRequest struct {
	ID                 string  `json:"-"`
	TenantID           int     `json:"-"`
	Name               *string `json:"name,omitempty"`
	EnableBalanceCheck *bool   `json:"enable_balance_check,omitempty"`
	ManagerRef         *string `json:"manager_ref,omitempty"`
}
