package meta

import (
	"context"
	"regexp"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/traffic-balance-monitor/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/traffic-balance-monitor/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/traffic-balance-monitor/internal/config"
	"github.com/vfg2006/traffic-balance-monitor/internal/domain"
	"github.com/vfg2006/traffic-balance-monitor/pkg/money"
)

// displayAmountPattern captura o valor em reais de funding_source_details.display_string
var displayAmountPattern = regexp.MustCompile(`R\$\s*([\d.,]+)`)

type MetaIntegrator struct {
	cfg    config.Meta
	Client metaclient.Client
	now    func() time.Time
}

func New(cfg config.Meta, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
		now:    time.Now,
	}
}

func (s *MetaIntegrator) Platform() domain.Platform {
	return domain.PlatformMeta
}

func (s *MetaIntegrator) Configured() bool {
	return s.cfg.HasAppCredentials()
}

// DiscoverAccounts lista as contas do usuário e as contas de cada Business Manager.
// Cada business entra como conta gerenciadora e é expandido um único nível.
func (s *MetaIntegrator) DiscoverAccounts(ctx context.Context, access domain.PlatformAccess) (*domain.DiscoveryOutcome, error) {
	token := access.AccessToken

	rootAccounts, err := s.Client.ListAdAccounts(ctx, token)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar contas de anúncio do usuário no Meta")
		return nil, err
	}

	outcome := &domain.DiscoveryOutcome{}
	seen := make(map[string]bool)

	add := func(account metadomain.AdAccount, parent *string) {
		if account.ID == "" || seen[account.ID] {
			return
		}
		seen[account.ID] = true

		if parent == nil && account.Business != nil && account.Business.ID != "" {
			businessID := account.Business.ID
			parent = &businessID
		}

		outcome.Accounts = append(outcome.Accounts, domain.DiscoveredAccount{
			ExternalID:       account.ID,
			Name:             account.Name,
			ParentExternalID: parent,
			Currency:         account.Currency,
			Active:           account.IsActive(),
		})
	}

	for _, account := range rootAccounts {
		add(account, nil)
	}

	businesses, err := s.Client.ListBusinesses(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrTokenExpired) {
			return nil, err
		}
		logrus.WithError(err).Warn("Não foi possível listar os Business Managers, seguindo apenas com as contas do usuário")
		outcome.Errors = append(outcome.Errors, domain.DiscoveryError{ExternalID: "me/businesses", Error: err.Error()})
		return outcome, nil
	}

	for _, business := range businesses {
		if !seen[business.ID] {
			seen[business.ID] = true
			outcome.Accounts = append(outcome.Accounts, domain.DiscoveredAccount{
				ExternalID: business.ID,
				Name:       business.Name,
				IsManager:  true,
				Active:     true,
			})
		}

		owned, err := s.Client.ListOwnedAdAccounts(ctx, token, business.ID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"business_id": business.ID,
				"error":       err.Error(),
			}).Warn("Erro ao listar contas do Business Manager")
			outcome.Errors = append(outcome.Errors, domain.DiscoveryError{ExternalID: business.ID, Error: err.Error()})
			continue
		}

		businessID := business.ID
		for _, account := range owned {
			add(account, &businessID)
		}
	}

	logrus.WithFields(logrus.Fields{
		"accounts":   len(outcome.Accounts),
		"businesses": len(businesses),
		"errors":     len(outcome.Errors),
	}).Info("Descoberta de contas do Meta concluída")

	return outcome, nil
}

// FetchBalance busca o saldo disponível e o gasto do dia de uma conta.
// Token expirado é o único erro devolvido; demais falhas caem nos caminhos alternativos.
func (s *MetaIntegrator) FetchBalance(ctx context.Context, access domain.PlatformAccess, account *domain.AdAccount) (*domain.BalanceSnapshot, error) {
	token := access.AccessToken
	if token == "" {
		token = account.AccessToken
	}

	log := logrus.WithFields(logrus.Fields{
		"account_id":  account.ID,
		"external_id": account.ExternalID,
	})

	snapshot := &domain.BalanceSnapshot{
		Active:   account.Status != domain.AdAccountStatusInactive,
		Currency: account.Currency,
	}

	balance, found, err := s.fundingBalance(ctx, token, account.ExternalID, snapshot)
	if err != nil {
		return nil, err
	}

	if !found {
		log.Debug("Saldo não encontrado em funding_source_details, usando limites de gasto")
		balance, err = s.spendLimitBalance(ctx, token, account.ExternalID, snapshot)
		if err != nil {
			return nil, err
		}
	}

	spend, err := s.dailySpend(ctx, token, account.ExternalID)
	if err != nil {
		return nil, err
	}

	snapshot.Balance = money.Format(balance)
	snapshot.DailySpend = spend

	log.WithFields(logrus.Fields{
		"balance":     snapshot.Balance,
		"daily_spend": spend,
	}).Debug("Saldo obtido do Meta")

	return snapshot, nil
}

func (s *MetaIntegrator) fundingBalance(ctx context.Context, token, accountID string, snapshot *domain.BalanceSnapshot) (float64, bool, error) {
	funding, err := s.Client.GetFunding(ctx, token, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrTokenExpired) {
			return 0, false, err
		}
		logrus.WithField("account_id", accountID).WithError(err).Warn("Erro ao buscar fonte de pagamento")
		return 0, false, nil
	}

	snapshot.Active = metadomain.IsActiveStatus(funding.AccountStatus)
	if funding.Currency != "" {
		snapshot.Currency = funding.Currency
	}

	if funding.FundingSourceDetails == nil {
		return 0, false, nil
	}

	amount, ok := ParseDisplayBalance(funding.FundingSourceDetails.DisplayString)
	return amount, ok, nil
}

func (s *MetaIntegrator) spendLimitBalance(ctx context.Context, token, accountID string, snapshot *domain.BalanceSnapshot) (float64, error) {
	limits, err := s.Client.GetSpendLimits(ctx, token, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrTokenExpired) {
			return 0, err
		}
		logrus.WithField("account_id", accountID).WithError(err).Warn("Erro ao buscar limites de gasto, saldo considerado zero")
		return 0, nil
	}

	snapshot.Active = metadomain.IsActiveStatus(limits.AccountStatus)
	if limits.Currency != "" {
		snapshot.Currency = limits.Currency
	}

	return SpendLimitBalance(limits), nil
}

// dailySpend usa o gasto de hoje e, se a consulta falhar, o de ontem
func (s *MetaIntegrator) dailySpend(ctx context.Context, token, accountID string) (float64, error) {
	for _, preset := range []string{"today", "yesterday"} {
		spend, err := s.Client.GetSpend(ctx, token, accountID, preset)
		if err == nil {
			return spend, nil
		}
		if errors.Is(err, domain.ErrTokenExpired) {
			return 0, err
		}
		logrus.WithFields(logrus.Fields{
			"account_id":  accountID,
			"date_preset": preset,
			"error":       err.Error(),
		}).Warn("Erro ao buscar gasto da conta")
	}

	return 0, nil
}

// ParseDisplayBalance extrai o valor de textos como "Saldo disponível (R$3.890,75 BRL)"
func ParseDisplayBalance(display string) (float64, bool) {
	match := displayAmountPattern.FindStringSubmatch(display)
	if len(match) < 2 {
		return 0, false
	}
	return money.ParseNonNegative(match[1]), true
}

// SpendLimitBalance calcula o saldo restante a partir dos valores em centavos:
// spend_cap - amount_spent quando há limite, senão o campo balance.
func SpendLimitBalance(limits *metadomain.AdAccountSpendLimits) float64 {
	spendCap := money.ParseNonNegative(limits.SpendCap)
	if spendCap > 0 {
		remaining := spendCap - money.ParseNonNegative(limits.AmountSpent)
		if remaining < 0 {
			return 0
		}
		return remaining / 100
	}

	return money.ParseNonNegative(limits.Balance) / 100
}

// ExchangeToken obtém um token de longa duração. Se a troca falhar o token
// original é mantido com a validade padrão de 60 dias.
func (s *MetaIntegrator) ExchangeToken(ctx context.Context, accessToken string) (*domain.AccessGrant, error) {
	if !s.Configured() {
		return nil, errors.Wrap(domain.ErrPlatformNotConfigured, "META_APP_ID e META_APP_SECRET não configurados")
	}

	now := s.now()

	resp, err := s.Client.ExchangeToken(ctx, accessToken)
	if err != nil {
		logrus.WithError(err).Warn("Falha ao obter token de longa duração, mantendo o token informado")
		return &domain.AccessGrant{
			AccessToken: accessToken,
			ExpiresAt:   now.Add(metaclient.DefaultLongLivedTTL),
		}, nil
	}

	return &domain.AccessGrant{
		AccessToken: resp.AccessToken,
		ExpiresAt:   metaclient.CalculateTokenExpiration(now, resp.ExpiresIn),
	}, nil
}
