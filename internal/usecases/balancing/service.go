package balancing

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/traffic-balance-monitor/infrastructure/integrator"
	"github.com/vfg2006/traffic-balance-monitor/infrastructure/repository"
	"github.com/vfg2006/traffic-balance-monitor/internal/config"
	"github.com/vfg2006/traffic-balance-monitor/internal/domain"
	"github.com/vfg2006/traffic-balance-monitor/internal/metrics"
	"github.com/vfg2006/traffic-balance-monitor/pkg/apiErrors"
	"github.com/vfg2006/traffic-balance-monitor/pkg/money"
	"golang.org/x/sync/singleflight"
)

// tokenRefreshMargin antecipa a renovação de tokens do Google prestes a expirar
const tokenRefreshMargin = 5 * time.Minute

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks
type BalancingService interface {
	SyncBalances(ctx context.Context, tenantID int, accountID *string) (*domain.SyncResult, error)
}

type Service struct {
	accountRepository repository.AccountRepository
	meta              integrator.MetaIntegrator
	google            integrator.GoogleIntegrator
	maxConcurrent     int
	now               func() time.Time
}

func NewService(
	accountRepository repository.AccountRepository,
	meta integrator.MetaIntegrator,
	google integrator.GoogleIntegrator,
	cfg config.BalanceSync,
) BalancingService {
	maxConcurrent := cfg.MaxConcurrentJobs
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	return &Service{
		accountRepository: accountRepository,
		meta:              meta,
		google:            google,
		maxConcurrent:     maxConcurrent,
		now:               time.Now,
	}
}

// SyncBalances atualiza saldo e gasto diário das contas ativas do tenant, ou de
// uma conta específica. Falhas de uma conta não afetam as demais.
func (s *Service) SyncBalances(ctx context.Context, tenantID int, accountID *string) (*domain.SyncResult, error) {
	accounts, err := s.loadAccounts(ctx, tenantID, accountID)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"tenant_id": tenantID,
		"accounts":  len(accounts),
	}).Info("Iniciando sincronização de saldos")

	results := make([]domain.SyncAccountResult, len(accounts))
	tokens := newGrantCache()

	semaphore := make(chan struct{}, s.maxConcurrent)
	var wg sync.WaitGroup

	for i, account := range accounts {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(index int, acc *domain.AdAccount) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			results[index] = s.syncAccount(ctx, acc, tokens)
		}(i, account)
	}

	wg.Wait()

	result := &domain.SyncResult{Results: results}

	logrus.WithFields(logrus.Fields{
		"tenant_id": tenantID,
		"accounts":  len(accounts),
		"succeeded": result.Succeeded(),
	}).Info("Sincronização de saldos concluída")

	return result, nil
}

func (s *Service) loadAccounts(ctx context.Context, tenantID int, accountID *string) ([]*domain.AdAccount, error) {
	if accountID != nil && *accountID != "" {
		account, err := s.accountRepository.GetAccountByID(ctx, tenantID, *accountID)
		if err != nil {
			logrus.WithField("account_id", *accountID).WithError(err).Error("Erro ao buscar conta")
			return nil, NewSyncErrorWithID(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, *accountID, err.Error())
		}
		if account == nil {
			return nil, NewSyncErrorWithID(ErrAccountNotFound, apiErrors.ErrResourceNotFound, *accountID, "")
		}
		return []*domain.AdAccount{account}, nil
	}

	accounts, err := s.accountRepository.ListAccounts(ctx, domain.AccountFilter{
		TenantID: tenantID,
		Status:   []domain.AdAccountStatus{domain.AdAccountStatusActive},
	})
	if err != nil {
		logrus.WithField("tenant_id", tenantID).WithError(err).Error("Erro ao listar contas ativas")
		return nil, NewSyncError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return accounts, nil
}

func (s *Service) syncAccount(ctx context.Context, account *domain.AdAccount, tokens *grantCache) domain.SyncAccountResult {
	result := domain.SyncAccountResult{
		AccountID:   account.ID,
		AccountName: account.Name,
	}

	log := logrus.WithFields(logrus.Fields{
		"account_id":  account.ID,
		"external_id": account.ExternalID,
		"platform":    account.Platform,
	})

	fail := func(err error, cause error) domain.SyncAccountResult {
		message := err.Error()
		if cause != nil {
			message = fmt.Sprintf("%s: %s", err.Error(), cause.Error())
		}
		log.WithField("error", message).Warn("Falha ao sincronizar saldo da conta")
		metrics.BalanceSyncs.WithLabelValues(string(account.Platform), metrics.Result(false)).Inc()
		result.Error = &message
		return result
	}

	if account.IsManager {
		return fail(ErrManagerAccount, nil)
	}

	platform := s.integratorFor(account.Platform)
	if platform == nil {
		return fail(ErrUnsupported, nil)
	}

	access, err := s.platformAccess(ctx, account, tokens)
	if err != nil {
		return fail(err, nil)
	}

	snapshot, err := platform.FetchBalance(ctx, access, account)
	if err != nil {
		return fail(ErrFetchBalance, err)
	}

	status := domain.AdAccountStatusActive
	if !snapshot.Active {
		status = domain.AdAccountStatusInactive
	}

	update := domain.BalanceUpdate{
		AccountID:  account.ID,
		Balance:    money.ToDecimal(snapshot.Balance),
		DailySpend: money.ToDecimal(snapshot.DailySpend),
		Status:     status,
		Currency:   snapshot.Currency,
		SyncedAt:   s.now(),
	}

	if err := s.accountRepository.UpdateBalance(ctx, update); err != nil {
		return fail(ErrUpdateBalance, err)
	}

	balance := money.FormatDecimal(update.Balance)
	dailySpend := update.DailySpend.InexactFloat64()

	result.Success = true
	result.Balance = &balance
	result.DailySpend = &dailySpend

	metrics.BalanceSyncs.WithLabelValues(string(account.Platform), metrics.Result(true)).Inc()

	log.WithFields(logrus.Fields{
		"balance":     balance,
		"daily_spend": dailySpend,
		"status":      status,
	}).Info("Saldo da conta sincronizado")

	return result
}

func (s *Service) integratorFor(platform domain.Platform) integrator.Integrator {
	switch platform {
	case domain.PlatformMeta:
		return s.meta
	case domain.PlatformGoogle:
		return s.google
	default:
		return nil
	}
}

// platformAccess garante um token válido. Tokens do Google vencidos ou perto
// de vencer são renovados e salvos antes da consulta de saldo.
func (s *Service) platformAccess(ctx context.Context, account *domain.AdAccount, tokens *grantCache) (domain.PlatformAccess, error) {
	access := domain.PlatformAccess{
		AccessToken: account.AccessToken,
		Credential:  account.Credential,
	}

	if account.Platform != domain.PlatformGoogle {
		if access.AccessToken == "" {
			return access, ErrMissingToken
		}
		return access, nil
	}

	if !s.google.Configured() {
		return access, domain.ErrPlatformNotConfigured
	}

	if access.AccessToken != "" && !account.TokenExpiresWithin(s.now(), tokenRefreshMargin) {
		return access, nil
	}

	if !account.Credential.IsComplete() {
		return access, ErrMissingCredential
	}

	grant, err := tokens.get(account.Credential.RefreshToken, func() (*domain.AccessGrant, error) {
		return s.google.RefreshAccessToken(ctx, account.Credential)
	})
	if err != nil {
		if errors.Is(err, domain.ErrTokenExpired) {
			s.markGrantRevoked(ctx, account)
		}
		return access, fmt.Errorf("%w: %s", ErrTokenRefresh, err.Error())
	}

	if err := s.accountRepository.UpdateAccessToken(ctx, account.ID, grant.AccessToken, grant.ExpiresAt); err != nil {
		return access, fmt.Errorf("%w: %s", ErrTokenRefresh, err.Error())
	}

	expiresAt := grant.ExpiresAt
	account.AccessToken = grant.AccessToken
	account.TokenExpiresAt = &expiresAt
	access.AccessToken = grant.AccessToken

	return access, nil
}

// markGrantRevoked limpa o token da conta para que a verificação de tokens
// peça a reconexão
func (s *Service) markGrantRevoked(ctx context.Context, account *domain.AdAccount) {
	now := s.now()
	if err := s.accountRepository.UpdateAccessToken(ctx, account.ID, "", now); err != nil {
		logrus.WithField("account_id", account.ID).WithError(err).Error("Erro ao marcar renovação de token revogada")
		return
	}

	account.AccessToken = ""
	account.TokenExpiresAt = &now
	logrus.WithField("account_id", account.ID).Warn("Renovação do token recusada pelo Google; conta precisa ser reconectada")
}

// grantCache evita renovar o mesmo refresh token várias vezes numa rodada.
// Renovações de credenciais diferentes seguem em paralelo.
type grantCache struct {
	mu     sync.Mutex
	grants map[string]*domain.AccessGrant
	group  singleflight.Group
}

func newGrantCache() *grantCache {
	return &grantCache{grants: make(map[string]*domain.AccessGrant)}
}

func (c *grantCache) lookup(key string) (*domain.AccessGrant, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	grant, ok := c.grants[key]
	return grant, ok
}

func (c *grantCache) get(key string, refresh func() (*domain.AccessGrant, error)) (*domain.AccessGrant, error) {
	if grant, ok := c.lookup(key); ok {
		return grant, nil
	}

	value, err, _ := c.group.Do(key, func() (any, error) {
		if grant, ok := c.lookup(key); ok {
			return grant, nil
		}

		grant, err := refresh()
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.grants[key] = grant
		c.mu.Unlock()
		return grant, nil
	})
	if err != nil {
		return nil, err
	}

	return value.(*domain.AccessGrant), nil
}
