package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/traffic-balance-monitor/infrastructure/repository"
	"github.com/vfg2006/traffic-balance-monitor/infrastructure/repository/mocks"
	"github.com/vfg2006/traffic-balance-monitor/internal/domain"
	"github.com/vfg2006/traffic-balance-monitor/internal/notification"
	notificationmocks "github.com/vfg2006/traffic-balance-monitor/internal/notification/mocks"
	"go.uber.org/mock/gomock"
)

func TestEstimateReport(t *testing.T) {
	five := decimal.NewFromInt(5)

	tests := []struct {
		name           string
		dailySpend     string
		periodDays     int
		wantInvestment string
		wantMessages   int64
		wantCostPer    string
	}{
		{"divisão exata", "150", 7, "1050", 210, "5"},
		{"arredonda mensagens para baixo", "33.33", 3, "99.99", 19, "5.26"},
		{"sem gasto", "0", 7, "0", 0, "0"},
		{"investimento menor que o custo", "1", 2, "2", 0, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateReport(decimal.RequireFromString(tt.dailySpend), tt.periodDays, five)

			assert.True(t, got.TotalInvestment.Equal(decimal.RequireFromString(tt.wantInvestment)), got.TotalInvestment.String())
			assert.Equal(t, tt.wantMessages, got.MessagesCount)
			assert.True(t, got.CostPerMessage.Equal(decimal.RequireFromString(tt.wantCostPer)), got.CostPerMessage.String())
		})
	}
}

type fixture struct {
	accounts *mocks.MockAccountRepository
	reports  *mocks.MockReportRepository
	notifier *notificationmocks.MockNotifier
	service  *Service
	now      time.Time
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		accounts: mocks.NewMockAccountRepository(ctrl),
		reports:  mocks.NewMockReportRepository(ctrl),
		notifier: notificationmocks.NewMockNotifier(ctrl),
		now:      time.Date(2024, 5, 8, 8, 0, 0, 0, time.UTC),
	}
	f.service = &Service{
		accountRepository: f.accounts,
		reportRepository:  f.reports,
		notifier:          f.notifier,
		costPerMessage:    decimal.NewFromInt(5),
		now:               func() time.Time { return f.now },
	}
	return f
}

func TestGenerateReport(t *testing.T) {
	f := newFixture(t)

	accounts := []*domain.AdAccount{
		{ID: "a1", Name: "Loja Centro", Platform: domain.PlatformMeta, DailySpend: decimal.NewFromInt(150)},
		{ID: "a2", Name: "Loja Norte", Platform: domain.PlatformGoogle, DailySpend: decimal.NewFromInt(40)},
	}

	f.accounts.EXPECT().ListAccounts(gomock.Any(), domain.AccountFilter{
		TenantID: 7,
		Status:   []domain.AdAccountStatus{domain.AdAccountStatusActive},
	}).Return(accounts, nil)

	var saved []*domain.Report
	f.reports.EXPECT().CreateReport(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, report *domain.Report) error {
		if report.AccountID == "a2" {
			return errors.New("database down")
		}
		saved = append(saved, report)
		return nil
	}).Times(2)

	f.notifier.EXPECT().DispatchAsync(gomock.Any(), 7, gomock.Any()).Do(func(_ context.Context, _ int, event notification.Event) {
		assert.Equal(t, domain.EventAccountReport, event.Type)
	})

	result, err := f.service.GenerateReport(context.Background(), 7, domain.GenerateReportRequest{PeriodDays: 7})
	require.NoError(t, err)

	assert.Equal(t, domain.ReportSummary{TotalAccounts: 2, SuccessCount: 1, ErrorCount: 1}, result.Summary)
	require.Len(t, result.Results, 2)
	assert.True(t, result.Results[0].Success)
	assert.NotNil(t, result.Results[0].ReportID)
	assert.False(t, result.Results[1].Success)
	assert.Equal(t, "database down", *result.Results[1].Error)

	require.Len(t, saved, 1)
	report := saved[0]
	assert.Equal(t, "Campanha", report.ProductName)
	assert.Equal(t, "Relatório Campanha - Loja Centro", report.Title)
	assert.Equal(t, int64(210), report.MessagesCount)
	assert.Equal(t, f.now.AddDate(0, 0, -7), report.PeriodStart)
	assert.Equal(t, f.now, report.PeriodEnd)
	assert.Equal(t, "Relatório de Campanha - Loja Centro\n"+
		"Período: 01/05/2024 a 08/05/2024\n"+
		"Plataforma: Meta\n"+
		"Investimento total: R$ 1.050,00\n"+
		"Mensagens iniciadas: 210\n"+
		"Custo por mensagem: R$ 5,00", report.Message)
}

func TestGenerateReportSelectedAccounts(t *testing.T) {
	f := newFixture(t)

	f.accounts.EXPECT().ListAccounts(gomock.Any(), domain.AccountFilter{TenantID: 7}).Return([]*domain.AdAccount{
		{ID: "a1", Name: "Loja Centro", DailySpend: decimal.NewFromInt(10)},
		{ID: "a2", Name: "Loja Norte", DailySpend: decimal.NewFromInt(10)},
	}, nil)
	f.reports.EXPECT().CreateReport(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, report *domain.Report) error {
		assert.Equal(t, "a2", report.AccountID)
		assert.Equal(t, "Óculos", report.ProductName)
		return nil
	})
	f.notifier.EXPECT().DispatchAsync(gomock.Any(), 7, gomock.Any())

	result, err := f.service.GenerateReport(context.Background(), 7, domain.GenerateReportRequest{
		ProductName: " Óculos ",
		PeriodDays:  3,
		AccountIDs:  []string{"a2", "ghost"},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.ReportSummary{TotalAccounts: 2, SuccessCount: 1, ErrorCount: 1}, result.Summary)
	assert.Equal(t, "ghost", result.Results[1].AccountID)
	assert.Equal(t, ErrAccountNotFound.Error(), *result.Results[1].Error)
}

func TestGenerateReportInvalidPeriod(t *testing.T) {
	f := newFixture(t)

	for _, days := range []int{0, -3} {
		result, err := f.service.GenerateReport(context.Background(), 7, domain.GenerateReportRequest{PeriodDays: days})
		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrInvalidPeriod)
	}
}

func TestDeleteReportNotFound(t *testing.T) {
	f := newFixture(t)
	f.reports.EXPECT().DeleteReport(gomock.Any(), 7, "r1").Return(repository.ErrNotFound)

	err := f.service.DeleteReport(context.Background(), 7, "r1")
	assert.ErrorIs(t, err, ErrReportNotFound)
}
