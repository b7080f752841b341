package discovering

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/traffic-balance-monitor/infrastructure/integrator"
	"github.com/vfg2006/traffic-balance-monitor/infrastructure/repository"
	"github.com/vfg2006/traffic-balance-monitor/internal/domain"
	"github.com/vfg2006/traffic-balance-monitor/pkg/apiErrors"
	"github.com/vfg2006/traffic-balance-monitor/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks
type DiscoveringService interface {
	ConnectMeta(ctx context.Context, tenantID int, accessToken string) (*domain.ConnectResult, error)
	ConnectGoogle(ctx context.Context, tenantID int, credential *domain.Credential) (*domain.ConnectResult, error)
}

type Service struct {
	accountRepository repository.AccountRepository
	meta              integrator.MetaIntegrator
	google            integrator.GoogleIntegrator
	now               func() time.Time
}

func NewService(
	accountRepository repository.AccountRepository,
	meta integrator.MetaIntegrator,
	google integrator.GoogleIntegrator,
) DiscoveringService {
	return &Service{
		accountRepository: accountRepository,
		meta:              meta,
		google:            google,
		now:               time.Now,
	}
}

func (s *Service) ConnectMeta(ctx context.Context, tenantID int, accessToken string) (*domain.ConnectResult, error) {
	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		return nil, NewConnectError(ErrMissingCredential, apiErrors.ErrMissingRequiredData, domain.PlatformMeta, "access_token é obrigatório")
	}

	if !s.meta.Configured() {
		return nil, NewConnectError(ErrPlatformNotConfigured, apiErrors.ErrPlatformNotConfigured, domain.PlatformMeta, "defina META_APP_ID e META_APP_SECRET")
	}

	grant, err := s.meta.ExchangeToken(ctx, accessToken)
	if err != nil {
		return nil, s.platformError(domain.PlatformMeta, err)
	}

	outcome, err := s.meta.DiscoverAccounts(ctx, domain.PlatformAccess{AccessToken: grant.AccessToken})
	if err != nil {
		return nil, s.platformError(domain.PlatformMeta, err)
	}

	return s.persist(ctx, tenantID, domain.PlatformMeta, outcome, grant, nil)
}

func (s *Service) ConnectGoogle(ctx context.Context, tenantID int, credential *domain.Credential) (*domain.ConnectResult, error) {
	if !credential.IsComplete() {
		return nil, NewConnectError(ErrMissingCredential, apiErrors.ErrMissingRequiredData, domain.PlatformGoogle, "refresh_token, client_id e client_secret são obrigatórios")
	}

	if !s.google.Configured() {
		return nil, NewConnectError(ErrPlatformNotConfigured, apiErrors.ErrPlatformNotConfigured, domain.PlatformGoogle, "defina GOOGLE_ADS_DEVELOPER_TOKEN")
	}

	grant, err := s.google.RefreshAccessToken(ctx, credential)
	if err != nil {
		return nil, s.platformError(domain.PlatformGoogle, err)
	}

	outcome, err := s.google.DiscoverAccounts(ctx, domain.PlatformAccess{AccessToken: grant.AccessToken, Credential: credential})
	if err != nil {
		return nil, s.platformError(domain.PlatformGoogle, err)
	}

	return s.persist(ctx, tenantID, domain.PlatformGoogle, outcome, grant, credential)
}

func (s *Service) persist(
	ctx context.Context,
	tenantID int,
	platform domain.Platform,
	outcome *domain.DiscoveryOutcome,
	grant *domain.AccessGrant,
	credential *domain.Credential,
) (*domain.ConnectResult, error) {
	log := logrus.WithFields(logrus.Fields{
		"tenant_id": tenantID,
		"platform":  platform,
	})

	if len(outcome.Accounts) == 0 {
		log.WithField("errors", len(outcome.Errors)).Warn("Nenhuma conta encontrada na plataforma")
		return nil, NewConnectError(ErrNoAccountsFound, apiErrors.ErrNoAccountsFound, platform, fmt.Sprintf("%d falhas durante a descoberta", len(outcome.Errors)))
	}

	now := s.now()
	accounts := make([]*domain.AdAccount, 0, len(outcome.Accounts))
	for _, discovered := range outcome.Accounts {
		account, err := s.buildAccount(tenantID, platform, discovered, grant, credential, now)
		if err != nil {
			log.WithError(err).Error("Erro ao gerar id da conta")
			return nil, NewConnectError(ErrGenerateID, apiErrors.ErrInternalServer, platform, err.Error())
		}
		accounts = append(accounts, account)
	}

	if err := s.accountRepository.UpsertAccounts(ctx, accounts); err != nil {
		log.WithError(err).Error("Erro ao salvar contas descobertas")
		return nil, NewConnectError(ErrSaveAccounts, apiErrors.ErrDatabaseOperation, platform, "falha ao salvar contas no banco de dados")
	}

	responses := make([]*domain.AdAccountResponse, 0, len(accounts))
	for _, account := range accounts {
		responses = append(responses, domain.NewAdAccountResponse(account))
	}

	log.WithFields(logrus.Fields{
		"accounts": len(accounts),
		"errors":   len(outcome.Errors),
	}).Info("Contas conectadas com sucesso")

	return &domain.ConnectResult{
		Accounts: responses,
		Message:  fmt.Sprintf("%d contas do %s conectadas com sucesso", len(accounts), platform.DisplayName()),
		Errors:   outcome.Errors,
	}, nil
}

func (s *Service) buildAccount(
	tenantID int,
	platform domain.Platform,
	discovered domain.DiscoveredAccount,
	grant *domain.AccessGrant,
	credential *domain.Credential,
	now time.Time,
) (*domain.AdAccount, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	status := domain.AdAccountStatusActive
	if !discovered.Active {
		status = domain.AdAccountStatusInactive
	}

	expiresAt := grant.ExpiresAt

	return &domain.AdAccount{
		ID:               id,
		TenantID:         tenantID,
		Platform:         platform,
		ExternalID:       discovered.ExternalID,
		Name:             ResolveName(platform, discovered),
		AlertThreshold:   decimal.NewFromFloat(domain.DefaultAlertThreshold),
		AlertEnabled:     true,
		Status:           status,
		AccessToken:      grant.AccessToken,
		TokenExpiresAt:   &expiresAt,
		Credential:       accountCredential(credential, discovered.ParentExternalID),
		IsManager:        discovered.IsManager,
		ParentExternalID: discovered.ParentExternalID,
		Currency:         discovered.Currency,
		LastSyncAt:       &now,
	}, nil
}

// ResolveName usa "<Plataforma> - <id>" quando a plataforma não devolve nome
// e marca as contas gerenciadoras com " (MCC)"
func ResolveName(platform domain.Platform, discovered domain.DiscoveredAccount) string {
	name := strings.TrimSpace(discovered.Name)
	if name == "" {
		name = fmt.Sprintf("%s - %s", platform.DisplayName(), discovered.ExternalID)
	}

	if discovered.IsManager && !strings.HasSuffix(name, " (MCC)") {
		name += " (MCC)"
	}

	return name
}

// accountCredential copia a credencial registrando a MCC pela qual a conta é acessada
func accountCredential(credential *domain.Credential, parent *string) *domain.Credential {
	if credential == nil {
		return nil
	}

	copied := *credential
	if parent != nil {
		managerID := *parent
		copied.ParentManagerID = &managerID
	}

	return &copied
}

func (s *Service) platformError(platform domain.Platform, err error) error {
	logrus.WithFields(logrus.Fields{
		"platform": platform,
		"error":    err.Error(),
	}).Error("Erro ao consultar a plataforma de anúncios")

	switch {
	case errors.Is(err, domain.ErrPlatformNotConfigured):
		return NewConnectError(ErrPlatformNotConfigured, apiErrors.ErrPlatformNotConfigured, platform, err.Error())
	case errors.Is(err, domain.ErrTokenExpired):
		return NewConnectError(ErrPlatformToken, apiErrors.ErrPlatformToken, platform, err.Error())
	default:
		return NewConnectError(ErrPlatformRequest, apiErrors.ErrExternalService, platform, err.Error())
	}
}
