package alerting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/traffic-balance-monitor/infrastructure/repository"
	"github.com/vfg2006/traffic-balance-monitor/internal/config"
	"github.com/vfg2006/traffic-balance-monitor/internal/domain"
	"github.com/vfg2006/traffic-balance-monitor/internal/metrics"
	"github.com/vfg2006/traffic-balance-monitor/internal/notification"
	"github.com/vfg2006/traffic-balance-monitor/pkg/apiErrors"
	"github.com/vfg2006/traffic-balance-monitor/pkg/money"
	"github.com/vfg2006/traffic-balance-monitor/pkg/utils"
)

//go:generate mockgen -source=engine.go -destination=mocks/engine.go -package=mocks
type AlertingService interface {
	Evaluate(ctx context.Context, account *domain.AdAccount) (*domain.Alert, error)
	CheckBalanceAlerts(ctx context.Context, tenantID int) (*domain.CheckAlertsResult, error)
	CheckTokenExpiry(ctx context.Context, tenantID int) (*domain.CheckAlertsResult, error)
	ListAlerts(ctx context.Context, filter domain.AlertFilter) ([]*domain.Alert, error)
	MarkAsRead(ctx context.Context, tenantID int, alertID string) error
	DeleteAlert(ctx context.Context, tenantID int, alertID string) error
	DeleteAllAlerts(ctx context.Context, tenantID int) (int64, error)
}

type Service struct {
	accountRepository repository.AccountRepository
	alertRepository   repository.AlertRepository
	notifier          notification.Notifier
	tokenExpiryWindow time.Duration
	now               func() time.Time
}

func NewService(
	accountRepository repository.AccountRepository,
	alertRepository repository.AlertRepository,
	notifier notification.Notifier,
	cfg config.AlertCheck,
) AlertingService {
	return &Service{
		accountRepository: accountRepository,
		alertRepository:   alertRepository,
		notifier:          notifier,
		tokenExpiryWindow: cfg.TokenExpiryWindow(),
		now:               time.Now,
	}
}

// Evaluate cria um alerta de saldo baixo quando a conta está abaixo do limite,
// respeitando o opt-out da conta e do cliente e a janela de 24h
func (s *Service) Evaluate(ctx context.Context, account *domain.AdAccount) (*domain.Alert, error) {
	if !account.BalanceCheckEnabled() {
		return nil, nil
	}

	threshold := account.Threshold()
	if !account.Balance.LessThan(decimal.NewFromFloat(threshold)) {
		return nil, nil
	}

	title := fmt.Sprintf("Saldo baixo: %s", account.Name)
	message := fmt.Sprintf(
		"A conta %s (%s) está com saldo de %s, abaixo do limite de %s.",
		account.Name,
		account.Platform.DisplayName(),
		money.FormatBRL(account.Balance.InexactFloat64()),
		money.FormatBRL(threshold),
	)

	return s.raise(ctx, account, domain.AlertKindLowBalance, title, message, notification.NewLowBalanceEvent)
}

// EvaluateTokenExpiry alerta quando o token da conta vence dentro da janela
// configurada. Contas do Google com credencial completa se renovam sozinhas e
// só alertam quando o provedor revoga a renovação.
func (s *Service) EvaluateTokenExpiry(ctx context.Context, account *domain.AdAccount) (*domain.Alert, error) {
	if !account.AlertEnabled {
		return nil, nil
	}

	now := s.now()
	if !account.NeedsReconnect(now, s.tokenExpiryWindow) {
		return nil, nil
	}

	expiresAt := account.TokenExpiresAt.In(now.Location()).Format("02/01/2006 15:04")
	verb := "expira"
	if account.TokenExpiresAt.Before(now) {
		verb = "expirou"
	}

	title := fmt.Sprintf("Token expirando: %s", account.Name)
	message := fmt.Sprintf(
		"O token de acesso da conta %s (%s) %s em %s. Reconecte a conta para continuar monitorando o saldo.",
		account.Name,
		account.Platform.DisplayName(),
		verb,
		expiresAt,
	)

	return s.raise(ctx, account, domain.AlertKindTokenExpiry, title, message, notification.NewTokenExpiryEvent)
}

func (s *Service) raise(
	ctx context.Context,
	account *domain.AdAccount,
	kind domain.AlertKind,
	title, message string,
	event func(*domain.Alert, *domain.AdAccount) notification.Event,
) (*domain.Alert, error) {
	now := s.now()
	log := logrus.WithFields(logrus.Fields{
		"account_id": account.ID,
		"kind":       kind,
	})

	recent, err := s.alertRepository.HasRecentAlert(ctx, account.ID, kind, now.Add(-domain.AlertDedupWindow))
	if err != nil {
		return nil, err
	}

	if recent {
		log.Debug("Alerta já enviado nas últimas 24 horas")
		metrics.AlertsSuppressed.WithLabelValues(string(kind)).Inc()
		return nil, nil
	}

	accountName := account.Name
	alert := &domain.Alert{
		ID:          utils.NewUUID(),
		TenantID:    account.TenantID,
		AccountID:   account.ID,
		Kind:        kind,
		Title:       title,
		Message:     message,
		SentAt:      now,
		AccountName: &accountName,
	}

	if err := s.alertRepository.CreateAlert(ctx, alert); err != nil {
		if errors.Is(err, repository.ErrDuplicateAlert) {
			log.Debug("Alerta concorrente já registrado para o dia")
			metrics.AlertsSuppressed.WithLabelValues(string(kind)).Inc()
			return nil, nil
		}
		return nil, err
	}

	metrics.AlertsCreated.WithLabelValues(string(kind)).Inc()
	log.WithField("alert_id", alert.ID).Info("Alerta criado")

	s.notifier.DispatchAsync(ctx, account.TenantID, event(alert, account))

	return alert, nil
}

func (s *Service) CheckBalanceAlerts(ctx context.Context, tenantID int) (*domain.CheckAlertsResult, error) {
	return s.check(ctx, tenantID, "saldo", s.Evaluate)
}

func (s *Service) CheckTokenExpiry(ctx context.Context, tenantID int) (*domain.CheckAlertsResult, error) {
	return s.check(ctx, tenantID, "token", s.EvaluateTokenExpiry)
}

func (s *Service) check(
	ctx context.Context,
	tenantID int,
	label string,
	evaluate func(context.Context, *domain.AdAccount) (*domain.Alert, error),
) (*domain.CheckAlertsResult, error) {
	accounts, err := s.accountRepository.ListAccounts(ctx, domain.AccountFilter{
		TenantID: tenantID,
		Status:   []domain.AdAccountStatus{domain.AdAccountStatusActive},
	})
	if err != nil {
		logrus.WithField("tenant_id", tenantID).WithError(err).Error("Erro ao listar contas para verificação de alertas")
		return nil, NewAlertError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, "", err.Error())
	}

	result := &domain.CheckAlertsResult{AlertedAccounts: make([]string, 0)}
	for _, account := range accounts {
		result.AccountsChecked++

		alert, err := evaluate(ctx, account)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": account.ID,
				"error":      err.Error(),
			}).Error("Erro ao avaliar alerta da conta")
			continue
		}

		if alert != nil {
			result.AlertsCreated++
			result.AlertedAccounts = append(result.AlertedAccounts, account.Name)
		}
	}

	logrus.WithFields(logrus.Fields{
		"tenant_id":        tenantID,
		"check":            label,
		"accounts_checked": result.AccountsChecked,
		"alerts_created":   result.AlertsCreated,
	}).Info("Verificação de alertas concluída")

	return result, nil
}
