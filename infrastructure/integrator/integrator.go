package integrator

import (
	"context"

	"github.com/vfg2006/traffic-balance-monitor/internal/domain"
)

// Integrator é o contrato comum às plataformas de anúncio
//
//go:generate mockgen -source=integrator.go -destination=mocks/integrator.go -package=mocks
type Integrator interface {
	Platform() domain.Platform
	// Configured indica se as credenciais da aplicação para a plataforma estão presentes
	Configured() bool
	DiscoverAccounts(ctx context.Context, access domain.PlatformAccess) (*domain.DiscoveryOutcome, error)
	FetchBalance(ctx context.Context, access domain.PlatformAccess, account *domain.AdAccount) (*domain.BalanceSnapshot, error)
}

type MetaIntegrator interface {
	Integrator
	// ExchangeToken troca o token informado por um de longa duração
	ExchangeToken(ctx context.Context, accessToken string) (*domain.AccessGrant, error)
}

type GoogleIntegrator interface {
	Integrator
	RefreshAccessToken(ctx context.Context, credential *domain.Credential) (*domain.AccessGrant, error)
}
