package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

type Platform string

const (
	PlatformMeta   Platform = "meta"
	PlatformGoogle Platform = "google"
)

func (p Platform) Valid() bool {
	return p == PlatformMeta || p == PlatformGoogle
}

// DisplayName é o nome usado em mensagens e na composição de nomes de contas
func (p Platform) DisplayName() string {
	switch p {
	case PlatformMeta:
		return "Meta"
	case PlatformGoogle:
		return "Google Ads"
	default:
		return string(p)
	}
}

// Credential agrupa o material de renovação de token de uma conta
type Credential struct {
	RefreshToken    string  `json:"refresh_token"`
	ClientID        string  `json:"client_id"`
	ClientSecret    string  `json:"client_secret"`
	ParentManagerID *string `json:"parent_manager_id,omitempty"`
}

func (c *Credential) IsComplete() bool {
	return c != nil && c.RefreshToken != "" && c.ClientID != "" && c.ClientSecret != ""
}

// Marshal serializa a credencial para a coluna JSONB
func (c *Credential) Marshal() ([]byte, error) {
	if c == nil {
		return nil, nil
	}
	return json.Marshal(c)
}

// UnmarshalCredential lê a credencial armazenada; valores vazios retornam nil
func UnmarshalCredential(raw []byte) (*Credential, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var cred Credential
	if err := json.Unmarshal(raw, &cred); err != nil {
		return nil, fmt.Errorf("credencial armazenada inválida: %w", err)
	}

	return &cred, nil
}

// AccessGrant é um token de acesso pronto para uso com sua expiração
type AccessGrant struct {
	AccessToken string
	ExpiresAt   time.Time
}

// PlatformAccess reúne o que um integrador precisa para falar com a plataforma
type PlatformAccess struct {
	AccessToken string
	Credential  *Credential
}

// DiscoveredAccount é uma conta devolvida pela listagem de uma plataforma
type DiscoveredAccount struct {
	ExternalID       string
	Name             string
	IsManager        bool
	ParentExternalID *string
	Currency         string
	Active           bool
}

// DiscoveryError registra uma falha isolada durante a descoberta de contas
type DiscoveryError struct {
	ExternalID string `json:"external_id"`
	Error      string `json:"error"`
}

type DiscoveryOutcome struct {
	Accounts []DiscoveredAccount
	Errors   []DiscoveryError
}

// BalanceSnapshot é o formato canônico de saldo retornado pelas plataformas
type BalanceSnapshot struct {
	Balance    string
	DailySpend float64
	Active     bool
	Currency   string
}

var (
	ErrTokenExpired          = errors.New("token de acesso expirado ou revogado")
	ErrPlatformNotConfigured = errors.New("integração com a plataforma não configurada")
)
