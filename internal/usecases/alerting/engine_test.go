package alerting

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/traffic-balance-monitor/infrastructure/repository"
	"github.com/vfg2006/traffic-balance-monitor/infrastructure/repository/mocks"
	"github.com/vfg2006/traffic-balance-monitor/internal/config"
	"github.com/vfg2006/traffic-balance-monitor/internal/domain"
	"github.com/vfg2006/traffic-balance-monitor/internal/notification"
	notificationmocks "github.com/vfg2006/traffic-balance-monitor/internal/notification/mocks"
	"go.uber.org/mock/gomock"
)

// memoryAlertRepository aplica a janela de deduplicação sobre os alertas em memória
type memoryAlertRepository struct {
	repository.AlertRepository
	mu     sync.Mutex
	alerts []*domain.Alert
}

func (r *memoryAlertRepository) HasRecentAlert(_ context.Context, accountID string, kind domain.AlertKind, since time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, alert := range r.alerts {
		if alert.AccountID == accountID && alert.Kind == kind && !alert.SentAt.Before(since) {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryAlertRepository) CreateAlert(_ context.Context, alert *domain.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.alerts = append(r.alerts, alert)
	return nil
}

func boolPtr(b bool) *bool { return &b }

func lowBalanceAccount() *domain.AdAccount {
	return &domain.AdAccount{
		ID:             "acc-1",
		TenantID:       7,
		Name:           "Loja Centro",
		Platform:       domain.PlatformMeta,
		Balance:        decimal.NewFromInt(120),
		AlertThreshold: decimal.NewFromInt(500),
		AlertEnabled:   true,
		Status:         domain.AdAccountStatusActive,
	}
}

func TestEvaluateDeduplicatesWithinWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := notificationmocks.NewMockNotifier(ctrl)
	repo := &memoryAlertRepository{}

	clock := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)
	service := &Service{
		alertRepository: repo,
		notifier:        notifier,
		now:             func() time.Time { return clock },
	}

	notifier.EXPECT().DispatchAsync(gomock.Any(), 7, gomock.Any()).Do(func(_ context.Context, _ int, event notification.Event) {
		assert.Equal(t, domain.EventLowBalance, event.Type)
	}).Times(2)

	steps := []struct {
		advance time.Duration
		created bool
	}{
		{0, true},
		{time.Hour, false},
		{22*time.Hour + 59*time.Minute, false},
		{2 * time.Minute, true},
		{time.Hour, false},
	}

	account := lowBalanceAccount()
	for _, step := range steps {
		clock = clock.Add(step.advance)

		alert, err := service.Evaluate(context.Background(), account)
		require.NoError(t, err)
		assert.Equal(t, step.created, alert != nil, "em %s", clock.Format(time.RFC3339))
	}

	require.Len(t, repo.alerts, 2)
	assert.Equal(t, 24*time.Hour+time.Minute, repo.alerts[1].SentAt.Sub(repo.alerts[0].SentAt))
	assert.Equal(t, "Saldo baixo: Loja Centro", repo.alerts[0].Title)
	assert.Equal(t, "A conta Loja Centro (Meta) está com saldo de R$ 120,00, abaixo do limite de R$ 500,00.", repo.alerts[0].Message)
}

func TestEvaluateClientOptOut(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(account *domain.AdAccount)
		wantCreated bool
	}{
		{"sem cliente vinculado", func(a *domain.AdAccount) {}, true},
		{"cliente com verificação ativa", func(a *domain.AdAccount) { a.ClientBalanceCheck = boolPtr(true) }, true},
		{"cliente com verificação desativada", func(a *domain.AdAccount) { a.ClientBalanceCheck = boolPtr(false) }, false},
		{"conta com alerta desativado", func(a *domain.AdAccount) { a.AlertEnabled = false }, false},
		{"desativado nos dois níveis", func(a *domain.AdAccount) {
			a.AlertEnabled = false
			a.ClientBalanceCheck = boolPtr(false)
		}, false},
		{"saldo acima do limite", func(a *domain.AdAccount) { a.Balance = decimal.NewFromInt(900) }, false},
		{"limite padrão quando zerado", func(a *domain.AdAccount) {
			a.AlertThreshold = decimal.Zero
			a.Balance = decimal.NewFromInt(499)
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			notifier := notificationmocks.NewMockNotifier(ctrl)
			repo := &memoryAlertRepository{}
			service := &Service{alertRepository: repo, notifier: notifier, now: time.Now}

			if tt.wantCreated {
				notifier.EXPECT().DispatchAsync(gomock.Any(), 7, gomock.Any())
			}

			account := lowBalanceAccount()
			tt.mutate(account)

			alert, err := service.Evaluate(context.Background(), account)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCreated, alert != nil)
			if tt.wantCreated {
				assert.Len(t, repo.alerts, 1)
			} else {
				assert.Empty(t, repo.alerts)
			}
		})
	}
}

func TestEvaluatePersistsAlertWhenWebhookFails(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer failing.Close()

	ctrl := gomock.NewController(t)
	webhooks := mocks.NewMockWebhookRepository(ctrl)
	webhooks.EXPECT().ListActiveWebhooks(gomock.Any(), 7, domain.EventLowBalance).Return([]*domain.WebhookIntegration{
		{ID: "wh-1", URL: failing.URL},
	}, nil)

	dispatcher := notification.NewDispatcher(webhooks, config.Webhook{Timeout: time.Second, MaxParallel: 1})
	repo := &memoryAlertRepository{}
	service := &Service{alertRepository: repo, notifier: dispatcher, now: time.Now}

	alert, err := service.Evaluate(context.Background(), lowBalanceAccount())
	dispatcher.Wait()

	require.NoError(t, err)
	require.NotNil(t, alert)
	assert.Len(t, repo.alerts, 1)
}

func TestEvaluateConcurrentDuplicateIsSuppressed(t *testing.T) {
	ctrl := gomock.NewController(t)
	alerts := mocks.NewMockAlertRepository(ctrl)
	notifier := notificationmocks.NewMockNotifier(ctrl)
	service := &Service{alertRepository: alerts, notifier: notifier, now: time.Now}

	alerts.EXPECT().HasRecentAlert(gomock.Any(), "acc-1", domain.AlertKindLowBalance, gomock.Any()).Return(false, nil)
	alerts.EXPECT().CreateAlert(gomock.Any(), gomock.Any()).Return(repository.ErrDuplicateAlert)

	alert, err := service.Evaluate(context.Background(), lowBalanceAccount())
	assert.NoError(t, err)
	assert.Nil(t, alert)
}

func TestCheckBalanceAlertsSkipsFailingAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	accounts := mocks.NewMockAccountRepository(ctrl)
	alerts := mocks.NewMockAlertRepository(ctrl)
	notifier := notificationmocks.NewMockNotifier(ctrl)
	service := &Service{accountRepository: accounts, alertRepository: alerts, notifier: notifier, now: time.Now}

	broken := lowBalanceAccount()
	broken.ID = "acc-broken"
	broken.Name = "Loja Quebrada"

	healthy := lowBalanceAccount()
	healthy.ID = "acc-2"
	healthy.Name = "Loja Norte"
	healthy.Balance = decimal.NewFromInt(2000)

	low := lowBalanceAccount()

	accounts.EXPECT().ListAccounts(gomock.Any(), domain.AccountFilter{
		TenantID: 7,
		Status:   []domain.AdAccountStatus{domain.AdAccountStatusActive},
	}).Return([]*domain.AdAccount{broken, healthy, low}, nil)

	alerts.EXPECT().HasRecentAlert(gomock.Any(), "acc-broken", domain.AlertKindLowBalance, gomock.Any()).Return(false, errors.New("database down"))
	alerts.EXPECT().HasRecentAlert(gomock.Any(), "acc-1", domain.AlertKindLowBalance, gomock.Any()).Return(false, nil)
	alerts.EXPECT().CreateAlert(gomock.Any(), gomock.Any()).Return(nil)
	notifier.EXPECT().DispatchAsync(gomock.Any(), 7, gomock.Any())

	result, err := service.CheckBalanceAlerts(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 3, result.AccountsChecked)
	assert.Equal(t, 1, result.AlertsCreated)
	assert.Equal(t, []string{"Loja Centro"}, result.AlertedAccounts)
}

func TestCheckTokenExpiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	accounts := mocks.NewMockAccountRepository(ctrl)
	notifier := notificationmocks.NewMockNotifier(ctrl)
	repo := &memoryAlertRepository{}

	now := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)
	service := &Service{
		accountRepository: accounts,
		alertRepository:   repo,
		notifier:          notifier,
		tokenExpiryWindow: config.AlertCheck{TokenExpiryDays: 7}.TokenExpiryWindow(),
		now:               func() time.Time { return now },
	}

	soon := now.Add(3 * 24 * time.Hour)
	later := now.Add(30 * 24 * time.Hour)
	past := now.Add(-time.Hour)

	expiring := lowBalanceAccount()
	expiring.TokenExpiresAt = &soon

	fine := lowBalanceAccount()
	fine.ID = "acc-2"
	fine.TokenExpiresAt = &later

	// sem credencial de renovação, a conta do Google depende do usuário
	expired := lowBalanceAccount()
	expired.ID = "acc-3"
	expired.Name = "Loja Sul"
	expired.Platform = domain.PlatformGoogle
	expired.TokenExpiresAt = &past

	noExpiry := lowBalanceAccount()
	noExpiry.ID = "acc-4"

	accounts.EXPECT().ListAccounts(gomock.Any(), gomock.Any()).Return([]*domain.AdAccount{expiring, fine, expired, noExpiry}, nil)
	notifier.EXPECT().DispatchAsync(gomock.Any(), 7, gomock.Any()).Do(func(_ context.Context, _ int, event notification.Event) {
		assert.Equal(t, domain.EventTokenExpiry, event.Type)
	}).Times(2)

	result, err := service.CheckTokenExpiry(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 4, result.AccountsChecked)
	assert.Equal(t, 2, result.AlertsCreated)

	require.Len(t, repo.alerts, 2)
	assert.Equal(t, domain.AlertKindTokenExpiry, repo.alerts[0].Kind)
	assert.Contains(t, repo.alerts[0].Message, "expira em 05/05/2024 09:00")
	assert.Contains(t, repo.alerts[1].Message, "Loja Sul (Google Ads) expirou em")
}

func TestCheckTokenExpirySkipsSelfRefreshingGoogleAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	accounts := mocks.NewMockAccountRepository(ctrl)
	notifier := notificationmocks.NewMockNotifier(ctrl)
	repo := &memoryAlertRepository{}

	now := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)
	service := &Service{
		accountRepository: accounts,
		alertRepository:   repo,
		notifier:          notifier,
		tokenExpiryWindow: config.AlertCheck{TokenExpiryDays: 7}.TokenExpiryWindow(),
		now:               func() time.Time { return now },
	}

	credential := &domain.Credential{RefreshToken: "refresh", ClientID: "client", ClientSecret: "secret"}
	inOneHour := now.Add(time.Hour)
	markedAt := now.Add(-time.Minute)

	refreshing := lowBalanceAccount()
	refreshing.Platform = domain.PlatformGoogle
	refreshing.AccessToken = "ya29.token"
	refreshing.TokenExpiresAt = &inOneHour
	refreshing.Credential = credential

	revoked := lowBalanceAccount()
	revoked.ID = "acc-2"
	revoked.Name = "Loja Norte"
	revoked.Platform = domain.PlatformGoogle
	revoked.TokenExpiresAt = &markedAt
	revoked.Credential = credential

	accounts.EXPECT().ListAccounts(gomock.Any(), gomock.Any()).Return([]*domain.AdAccount{refreshing, revoked}, nil)
	notifier.EXPECT().DispatchAsync(gomock.Any(), 7, gomock.Any()).Times(1)

	result, err := service.CheckTokenExpiry(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 2, result.AccountsChecked)
	assert.Equal(t, 1, result.AlertsCreated)
	assert.Equal(t, []string{"Loja Norte"}, result.AlertedAccounts)

	require.Len(t, repo.alerts, 1)
	assert.Equal(t, "acc-2", repo.alerts[0].AccountID)
	assert.Contains(t, repo.alerts[0].Message, "Loja Norte (Google Ads) expirou em")
}
