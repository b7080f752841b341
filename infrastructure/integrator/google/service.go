package google

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	googledomain "github.com/vfg2006/traffic-balance-monitor/infrastructure/integrator/google/domain"
	"github.com/vfg2006/traffic-balance-monitor/infrastructure/integrator/google/googleclient"
	"github.com/vfg2006/traffic-balance-monitor/internal/config"
	"github.com/vfg2006/traffic-balance-monitor/internal/domain"
	"github.com/vfg2006/traffic-balance-monitor/pkg/money"
)

const (
	customerQuery = `SELECT customer.id, customer.descriptive_name, customer.manager, customer.currency_code, customer.status FROM customer`

	customerClientQuery = `SELECT customer_client.client_customer, customer_client.id, customer_client.descriptive_name, ` +
		`customer_client.manager, customer_client.currency_code, customer_client.status, customer_client.level ` +
		`FROM customer_client WHERE customer_client.level = 1`

	accountBudgetQuery = `SELECT account_budget.id, account_budget.status, account_budget.approved_spending_limit_micros, ` +
		`account_budget.amount_served_micros, account_budget.approved_start_date_time FROM account_budget ` +
		`WHERE account_budget.status = 'APPROVED' ORDER BY account_budget.approved_start_date_time DESC LIMIT 1`

	todayCostQuery = `SELECT customer.status, metrics.cost_micros FROM customer WHERE segments.date DURING TODAY`

	campaignBudgetQuery = `SELECT campaign_budget.amount_micros, campaign_budget.status FROM campaign_budget ` +
		`WHERE campaign_budget.status = 'ENABLED'`
)

// defaultTokenTTL é usado quando a resposta de renovação não informa a expiração
const defaultTokenTTL = 3600 * time.Second

type GoogleIntegrator struct {
	cfg    config.Google
	Client googleclient.Client
	now    func() time.Time
}

func New(cfg config.Google, client googleclient.Client) *GoogleIntegrator {
	return &GoogleIntegrator{
		cfg:    cfg,
		Client: client,
		now:    time.Now,
	}
}

func (s *GoogleIntegrator) Platform() domain.Platform {
	return domain.PlatformGoogle
}

func (s *GoogleIntegrator) Configured() bool {
	return s.cfg.DeveloperToken != ""
}

func (s *GoogleIntegrator) RefreshAccessToken(ctx context.Context, credential *domain.Credential) (*domain.AccessGrant, error) {
	token, err := s.Client.RefreshAccessToken(ctx, credential)
	if err != nil {
		return nil, err
	}

	expiresAt := token.Expiry
	if expiresAt.IsZero() {
		expiresAt = s.now().Add(defaultTokenTTL)
	}

	return &domain.AccessGrant{
		AccessToken: token.AccessToken,
		ExpiresAt:   expiresAt,
	}, nil
}

// DiscoverAccounts lê cada cliente acessível e expande as contas MCC em um nível
func (s *GoogleIntegrator) DiscoverAccounts(ctx context.Context, access domain.PlatformAccess) (*domain.DiscoveryOutcome, error) {
	token := access.AccessToken

	customerIDs, err := s.Client.ListAccessibleCustomers(ctx, token)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar clientes acessíveis no Google Ads")
		return nil, err
	}

	outcome := &domain.DiscoveryOutcome{}
	index := make(map[string]int)

	add := func(account domain.DiscoveredAccount) {
		if position, ok := index[account.ExternalID]; ok {
			// a mesma conta pode aparecer como raiz e como filha de uma MCC
			if outcome.Accounts[position].ParentExternalID == nil && account.ParentExternalID != nil {
				outcome.Accounts[position].ParentExternalID = account.ParentExternalID
			}
			return
		}
		index[account.ExternalID] = len(outcome.Accounts)
		outcome.Accounts = append(outcome.Accounts, account)
	}

	for _, customerID := range customerIDs {
		rows, err := s.Client.Search(ctx, token, customerID, "", customerQuery)
		if err != nil {
			if errors.Is(err, domain.ErrTokenExpired) {
				return nil, err
			}
			logrus.WithFields(logrus.Fields{
				"customer_id": customerID,
				"error":       err.Error(),
			}).Warn("Erro ao consultar cliente do Google Ads")
			outcome.Errors = append(outcome.Errors, domain.DiscoveryError{ExternalID: customerID, Error: err.Error()})
			continue
		}

		if len(rows) == 0 || rows[0].Customer == nil {
			outcome.Errors = append(outcome.Errors, domain.DiscoveryError{ExternalID: customerID, Error: "cliente sem dados retornados"})
			continue
		}

		customer := rows[0].Customer
		add(domain.DiscoveredAccount{
			ExternalID: customerID,
			Name:       customer.DescriptiveName,
			IsManager:  customer.Manager,
			Currency:   customer.CurrencyCode,
			Active:     customer.Status == googledomain.StatusEnabled,
		})

		if !customer.Manager {
			continue
		}

		children, err := s.Client.Search(ctx, token, customerID, customerID, customerClientQuery)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"manager_id": customerID,
				"error":      err.Error(),
			}).Warn("Erro ao listar contas filhas da MCC")
			outcome.Errors = append(outcome.Errors, domain.DiscoveryError{ExternalID: customerID, Error: err.Error()})
			continue
		}

		managerID := customerID
		for _, row := range children {
			child := row.CustomerClient
			if child == nil || child.ID == "" || child.ID == customerID {
				continue
			}
			add(domain.DiscoveredAccount{
				ExternalID:       child.ID,
				Name:             child.DescriptiveName,
				IsManager:        child.Manager,
				ParentExternalID: &managerID,
				Currency:         child.CurrencyCode,
				Active:           child.Status == googledomain.StatusEnabled,
			})
		}
	}

	logrus.WithFields(logrus.Fields{
		"accounts": len(outcome.Accounts),
		"errors":   len(outcome.Errors),
	}).Info("Descoberta de contas do Google Ads concluída")

	return outcome, nil
}

// FetchBalance usa o orçamento de conta aprovado mais recente; sem ele o saldo
// fica zerado e o gasto diário é estimado pelos orçamentos de campanha ativos.
func (s *GoogleIntegrator) FetchBalance(ctx context.Context, access domain.PlatformAccess, account *domain.AdAccount) (*domain.BalanceSnapshot, error) {
	token := access.AccessToken
	if token == "" {
		token = account.AccessToken
	}
	login := loginCustomerID(account, access.Credential)

	log := logrus.WithFields(logrus.Fields{
		"account_id":  account.ID,
		"customer_id": account.ExternalID,
	})

	snapshot := &domain.BalanceSnapshot{
		Active:   account.Status != domain.AdAccountStatusInactive,
		Currency: account.Currency,
	}

	balance, found, err := s.accountBudgetBalance(ctx, token, account.ExternalID, login)
	if err != nil {
		return nil, err
	}

	spend, err := s.todayCost(ctx, token, account.ExternalID, login, snapshot)
	if err != nil {
		return nil, err
	}

	if !found {
		log.Debug("Conta sem orçamento aprovado, usando orçamentos de campanha")
		balance = 0
		if spend == 0 {
			spend, err = s.campaignBudgets(ctx, token, account.ExternalID, login)
			if err != nil {
				return nil, err
			}
		}
	}

	snapshot.Balance = money.Format(balance)
	snapshot.DailySpend = spend

	log.WithFields(logrus.Fields{
		"balance":     snapshot.Balance,
		"daily_spend": spend,
	}).Debug("Saldo obtido do Google Ads")

	return snapshot, nil
}

func (s *GoogleIntegrator) accountBudgetBalance(ctx context.Context, token, customerID, login string) (float64, bool, error) {
	rows, err := s.Client.Search(ctx, token, customerID, login, accountBudgetQuery)
	if err != nil {
		if errors.Is(err, domain.ErrTokenExpired) {
			return 0, false, err
		}
		logrus.WithField("customer_id", customerID).WithError(err).Warn("Erro ao buscar orçamento da conta")
		return 0, false, nil
	}

	for _, row := range rows {
		if row.AccountBudget == nil || row.AccountBudget.ApprovedSpendingLimitMicros == "" {
			continue
		}
		return AccountBudgetRemaining(row.AccountBudget), true, nil
	}

	return 0, false, nil
}

func (s *GoogleIntegrator) todayCost(ctx context.Context, token, customerID, login string, snapshot *domain.BalanceSnapshot) (float64, error) {
	rows, err := s.Client.Search(ctx, token, customerID, login, todayCostQuery)
	if err != nil {
		if errors.Is(err, domain.ErrTokenExpired) {
			return 0, err
		}
		logrus.WithField("customer_id", customerID).WithError(err).Warn("Erro ao buscar gasto do dia")
		return 0, nil
	}

	total := 0.0
	for _, row := range rows {
		if row.Customer != nil && row.Customer.Status != "" {
			snapshot.Active = row.Customer.Status == googledomain.StatusEnabled
		}
		if row.Metrics != nil {
			total += MicrosToUnits(row.Metrics.CostMicros)
		}
	}

	return total, nil
}

func (s *GoogleIntegrator) campaignBudgets(ctx context.Context, token, customerID, login string) (float64, error) {
	rows, err := s.Client.Search(ctx, token, customerID, login, campaignBudgetQuery)
	if err != nil {
		if errors.Is(err, domain.ErrTokenExpired) {
			return 0, err
		}
		logrus.WithField("customer_id", customerID).WithError(err).Warn("Erro ao buscar orçamentos de campanha")
		return 0, nil
	}

	total := 0.0
	for _, row := range rows {
		if row.CampaignBudget != nil {
			total += MicrosToUnits(row.CampaignBudget.AmountMicros)
		}
	}

	return total, nil
}

// AccountBudgetRemaining é o limite aprovado menos o valor já veiculado
func AccountBudgetRemaining(budget *googledomain.AccountBudget) float64 {
	remaining := MicrosToUnits(budget.ApprovedSpendingLimitMicros) - MicrosToUnits(budget.AmountServedMicros)
	if remaining < 0 {
		return 0
	}
	return remaining
}

func MicrosToUnits(micros string) float64 {
	return money.ParseNonNegative(micros) / 1_000_000
}

// loginCustomerID identifica a MCC pela qual a conta é acessada
func loginCustomerID(account *domain.AdAccount, credential *domain.Credential) string {
	if account.ParentExternalID != nil && *account.ParentExternalID != "" {
		return *account.ParentExternalID
	}
	if credential != nil && credential.ParentManagerID != nil {
		return *credential.ParentManagerID
	}
	return ""
}
