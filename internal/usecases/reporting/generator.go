package reporting

import (
	"context"
	"fmt"
	"strings"
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

const dateLayout = "02/01/2006"

//go:generate mockgen -source=generator.go -destination=mocks/generator.go -package=mocks
type ReportingService interface {
	GenerateReport(ctx context.Context, tenantID int, req domain.GenerateReportRequest) (*domain.GenerateReportResult, error)
	ListReports(ctx context.Context, filter domain.ReportFilter) ([]*domain.Report, error)
	MarkAsRead(ctx context.Context, tenantID int, reportID string) error
	DeleteReport(ctx context.Context, tenantID int, reportID string) error
	DeleteAllReports(ctx context.Context, tenantID int) (int64, error)
}

type Service struct {
	accountRepository repository.AccountRepository
	reportRepository  repository.ReportRepository
	notifier          notification.Notifier
	costPerMessage    decimal.Decimal
	now               func() time.Time
}

func NewService(
	accountRepository repository.AccountRepository,
	reportRepository repository.ReportRepository,
	notifier notification.Notifier,
	cfg config.Report,
) ReportingService {
	cost := cfg.CostPerMessage
	if cost <= 0 {
		cost = 5.0
	}

	return &Service{
		accountRepository: accountRepository,
		reportRepository:  reportRepository,
		notifier:          notifier,
		costPerMessage:    decimal.NewFromFloat(cost),
		now:               time.Now,
	}
}

// Estimate projeta investimento, mensagens e custo por mensagem a partir do gasto diário
type Estimate struct {
	TotalInvestment decimal.Decimal
	MessagesCount   int64
	CostPerMessage  decimal.Decimal
}

func EstimateReport(dailySpend decimal.Decimal, periodDays int, costPerMessage decimal.Decimal) Estimate {
	investment := dailySpend.Mul(decimal.NewFromInt(int64(periodDays))).Round(2)

	var messages int64
	if costPerMessage.IsPositive() {
		messages = investment.Div(costPerMessage).Floor().IntPart()
	}

	costPer := decimal.Zero
	if messages > 0 {
		costPer = investment.Div(decimal.NewFromInt(messages)).Round(2)
	}

	return Estimate{
		TotalInvestment: investment,
		MessagesCount:   messages,
		CostPerMessage:  costPer,
	}
}

// GenerateReport cria um relatório por conta. Falhas ficam registradas no
// resultado da conta sem interromper as demais.
func (s *Service) GenerateReport(ctx context.Context, tenantID int, req domain.GenerateReportRequest) (*domain.GenerateReportResult, error) {
	if req.PeriodDays <= 0 {
		return nil, NewReportError(ErrInvalidPeriod, apiErrors.ErrInvalidRequest, "", fmt.Sprintf("periodDays=%d", req.PeriodDays))
	}

	productName := strings.TrimSpace(req.ProductName)
	if productName == "" {
		productName = domain.DefaultReportProductName
	}

	accounts, missing, err := s.loadAccounts(ctx, tenantID, req.AccountIDs)
	if err != nil {
		return nil, err
	}

	now := s.now()
	periodStart := now.AddDate(0, 0, -req.PeriodDays)

	result := &domain.GenerateReportResult{Results: make([]domain.ReportResult, 0, len(accounts)+len(missing))}

	for _, account := range accounts {
		estimate := EstimateReport(account.DailySpend, req.PeriodDays, s.costPerMessage)

		report := &domain.Report{
			ID:              utils.NewUUID(),
			TenantID:        tenantID,
			AccountID:       account.ID,
			Title:           fmt.Sprintf("Relatório %s - %s", productName, account.Name),
			ProductName:     productName,
			PeriodStart:     periodStart,
			PeriodEnd:       now,
			TotalInvestment: estimate.TotalInvestment,
			MessagesCount:   estimate.MessagesCount,
			CostPerMessage:  estimate.CostPerMessage,
			CreatedAt:       now,
		}
		report.Message = renderMessage(account, report)

		entry := domain.ReportResult{
			AccountID:   account.ID,
			AccountName: account.Name,
		}

		if err := s.reportRepository.CreateReport(ctx, report); err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": account.ID,
				"error":      err.Error(),
			}).Error("Erro ao salvar relatório")

			message := err.Error()
			entry.Error = &message
			result.Results = append(result.Results, entry)
			metrics.ReportsGenerated.WithLabelValues(metrics.Result(false)).Inc()
			continue
		}

		reportID := report.ID
		entry.Success = true
		entry.ReportID = &reportID
		result.Results = append(result.Results, entry)
		metrics.ReportsGenerated.WithLabelValues(metrics.Result(true)).Inc()

		s.notifier.DispatchAsync(ctx, tenantID, notification.NewReportEvent(report))
	}

	for _, accountID := range missing {
		message := ErrAccountNotFound.Error()
		result.Results = append(result.Results, domain.ReportResult{
			AccountID: accountID,
			Error:     &message,
		})
	}

	for _, entry := range result.Results {
		if entry.Success {
			result.Summary.SuccessCount++
		} else {
			result.Summary.ErrorCount++
		}
	}
	result.Summary.TotalAccounts = len(result.Results)

	logrus.WithFields(logrus.Fields{
		"tenant_id": tenantID,
		"total":     result.Summary.TotalAccounts,
		"success":   result.Summary.SuccessCount,
		"errors":    result.Summary.ErrorCount,
	}).Info("Geração de relatórios concluída")

	return result, nil
}

// loadAccounts devolve as contas ativas do tenant ou as contas pedidas,
// junto com os ids que não foram encontrados
func (s *Service) loadAccounts(ctx context.Context, tenantID int, accountIDs []string) ([]*domain.AdAccount, []string, error) {
	filter := domain.AccountFilter{TenantID: tenantID}
	if len(accountIDs) == 0 {
		filter.Status = []domain.AdAccountStatus{domain.AdAccountStatusActive}
	}

	accounts, err := s.accountRepository.ListAccounts(ctx, filter)
	if err != nil {
		logrus.WithField("tenant_id", tenantID).WithError(err).Error("Erro ao listar contas para relatório")
		return nil, nil, NewReportError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, "", err.Error())
	}

	if len(accountIDs) == 0 {
		return accounts, nil, nil
	}

	byID := make(map[string]*domain.AdAccount, len(accounts))
	for _, account := range accounts {
		byID[account.ID] = account
	}

	selected := make([]*domain.AdAccount, 0, len(accountIDs))
	missing := make([]string, 0)
	for _, id := range accountIDs {
		account, ok := byID[id]
		if !ok {
			missing = append(missing, id)
			continue
		}
		selected = append(selected, account)
	}

	return selected, missing, nil
}

func renderMessage(account *domain.AdAccount, report *domain.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Relatório de %s - %s\n", report.ProductName, account.Name)
	fmt.Fprintf(&b, "Período: %s a %s\n", report.PeriodStart.Format(dateLayout), report.PeriodEnd.Format(dateLayout))
	fmt.Fprintf(&b, "Plataforma: %s\n", account.Platform.DisplayName())
	fmt.Fprintf(&b, "Investimento total: %s\n", money.FormatBRL(report.TotalInvestment.InexactFloat64()))
	fmt.Fprintf(&b, "Mensagens iniciadas: %d\n", report.MessagesCount)
	fmt.Fprintf(&b, "Custo por mensagem: %s", money.FormatBRL(report.CostPerMessage.InexactFloat64()))

	return b.String()
}
