package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/traffic-balance-monitor/internal/api/handler/router"
	"github.com/vfg2006/traffic-balance-monitor/internal/domain"
	"github.com/vfg2006/traffic-balance-monitor/internal/scheduler"
	accountmocks "github.com/vfg2006/traffic-balance-monitor/internal/usecases/account/mocks"
	"github.com/vfg2006/traffic-balance-monitor/internal/usecases/alerting"
	alertingmocks "github.com/vfg2006/traffic-balance-monitor/internal/usecases/alerting/mocks"
	"github.com/vfg2006/traffic-balance-monitor/internal/usecases/authenticating"
	authmocks "github.com/vfg2006/traffic-balance-monitor/internal/usecases/authenticating/mocks"
	balancingmocks "github.com/vfg2006/traffic-balance-monitor/internal/usecases/balancing/mocks"
	"github.com/vfg2006/traffic-balance-monitor/internal/usecases/reporting"
	reportingmocks "github.com/vfg2006/traffic-balance-monitor/internal/usecases/reporting/mocks"
	webhookingmocks "github.com/vfg2006/traffic-balance-monitor/internal/usecases/webhooking/mocks"
	"github.com/vfg2006/traffic-balance-monitor/pkg/apiErrors"
	"github.com/vfg2006/traffic-balance-monitor/pkg/middleware"
	"go.uber.org/mock/gomock"
)

var operator = &domain.Claims{UserID: 7, UserRoleID: domain.RoleOperator}

// serve monta as rotas e injeta as claims como o AuthMiddleware faria
func serve(routes []router.Route, claims *domain.Claims, req *http.Request) *httptest.ResponseRecorder {
	rt := router.New(router.WithRoutes(routes...))

	if claims != nil {
		req = req.WithContext(middleware.WithClaims(req.Context(), claims))
	}

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestSyncBalancesHandler(t *testing.T) {
	t.Run("sem corpo sincroniza todas as contas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := balancingmocks.NewMockBalancingService(ctrl)

		balance := "1.050,00"
		service.EXPECT().SyncBalances(gomock.Any(), 7, gomock.Nil()).Return(&domain.SyncResult{
			Results: []domain.SyncAccountResult{{AccountID: "a1", AccountName: "Loja", Success: true, Balance: &balance}},
		}, nil)

		rec := serve(Balances(service), operator, httptest.NewRequest(http.MethodPost, "/v1/balances/sync", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"balance":"1.050,00"`)
	})

	t.Run("conta específica", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := balancingmocks.NewMockBalancingService(ctrl)

		accountID := "a1"
		service.EXPECT().SyncBalances(gomock.Any(), 7, &accountID).Return(&domain.SyncResult{}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/balances/sync", strings.NewReader(`{"account_id":"a1"}`))
		rec := serve(Balances(service), operator, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("chunked sem corpo sincroniza todas as contas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := balancingmocks.NewMockBalancingService(ctrl)
		service.EXPECT().SyncBalances(gomock.Any(), 7, gomock.Nil()).Return(&domain.SyncResult{}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/balances/sync", io.MultiReader())
		require.Equal(t, int64(-1), req.ContentLength)

		rec := serve(Balances(service), operator, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("corpo inválido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := balancingmocks.NewMockBalancingService(ctrl)

		req := httptest.NewRequest(http.MethodPost, "/v1/balances/sync", strings.NewReader(`{`))
		rec := serve(Balances(service), operator, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, decodeError(t, rec).Code)
	})

	t.Run("sem autenticação", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := balancingmocks.NewMockBalancingService(ctrl)

		rec := serve(Balances(service), nil, httptest.NewRequest(http.MethodPost, "/v1/balances/sync", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidToken, decodeError(t, rec).Code)
	})
}

func TestAlertHandlers(t *testing.T) {
	t.Run("filtros da listagem vêm da query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := alertingmocks.NewMockAlertingService(ctrl)

		kind := domain.AlertKindLowBalance
		service.EXPECT().ListAlerts(gomock.Any(), domain.AlertFilter{
			TenantID:   7,
			Kind:       &kind,
			UnreadOnly: true,
			Limit:      10,
		}).Return([]*domain.Alert{{ID: "al1", Kind: kind}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/alerts?unread=true&limit=10&kind=low_balance", nil)
		rec := serve(Alerts(service), operator, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":"al1"`)
	})

	t.Run("verificação de saldo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := alertingmocks.NewMockAlertingService(ctrl)

		service.EXPECT().CheckBalanceAlerts(gomock.Any(), 7).Return(&domain.CheckAlertsResult{
			AccountsChecked: 3,
			AlertsCreated:   1,
			AlertedAccounts: []string{"Loja Centro"},
		}, nil)

		rec := serve(Alerts(service), operator, httptest.NewRequest(http.MethodPost, "/v1/alerts/check", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"accountsChecked":3,"alertsCreated":1,"alertedAccounts":["Loja Centro"]}`, rec.Body.String())
	})

	t.Run("marcar como lido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := alertingmocks.NewMockAlertingService(ctrl)

		service.EXPECT().MarkAsRead(gomock.Any(), 7, "al1").Return(nil)

		rec := serve(Alerts(service), operator, httptest.NewRequest(http.MethodPut, "/v1/alerts/al1/read", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("alerta inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := alertingmocks.NewMockAlertingService(ctrl)

		service.EXPECT().DeleteAlert(gomock.Any(), 7, "ghost").
			Return(alerting.NewAlertError(alerting.ErrAlertNotFound, apiErrors.ErrResourceNotFound, "ghost", ""))

		rec := serve(Alerts(service), operator, httptest.NewRequest(http.MethodDelete, "/v1/alerts/ghost", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		apiErr := decodeError(t, rec)
		assert.Equal(t, apiErrors.ErrResourceNotFound, apiErr.Code)
		assert.Equal(t, "alerta não encontrado", apiErr.Message)
	})

	t.Run("remover todos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := alertingmocks.NewMockAlertingService(ctrl)

		service.EXPECT().DeleteAllAlerts(gomock.Any(), 7).Return(int64(4), nil)

		rec := serve(Alerts(service), operator, httptest.NewRequest(http.MethodDelete, "/v1/alerts", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"deleted":4}`, rec.Body.String())
	})
}

func TestGenerateReportHandler(t *testing.T) {
	t.Run("período inválido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := reportingmocks.NewMockReportingService(ctrl)

		service.EXPECT().GenerateReport(gomock.Any(), 7, domain.GenerateReportRequest{PeriodDays: 0}).
			Return(nil, reporting.NewReportError(reporting.ErrInvalidPeriod, apiErrors.ErrInvalidRequest, "", "periodDays=0"))

		req := httptest.NewRequest(http.MethodPost, "/v1/reports/generate", strings.NewReader(`{"periodDays":0}`))
		rec := serve(Reports(service), operator, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		apiErr := decodeError(t, rec)
		assert.Equal(t, apiErrors.ErrInvalidRequest, apiErr.Code)
		assert.Equal(t, "o período do relatório deve ser maior que zero: periodDays=0", apiErr.Message)
	})

	t.Run("sucesso", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := reportingmocks.NewMockReportingService(ctrl)

		reportID := "r1"
		service.EXPECT().GenerateReport(gomock.Any(), 7, domain.GenerateReportRequest{ProductName: "Óculos", PeriodDays: 7}).
			Return(&domain.GenerateReportResult{
				Summary: domain.ReportSummary{TotalAccounts: 1, SuccessCount: 1},
				Results: []domain.ReportResult{{AccountID: "a1", AccountName: "Loja", Success: true, ReportID: &reportID}},
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/reports/generate", strings.NewReader(`{"productName":"Óculos","periodDays":7}`))
		rec := serve(Reports(service), operator, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{
			"summary":{"totalAccounts":1,"successCount":1,"errorCount":0},
			"results":[{"accountId":"a1","accountName":"Loja","success":true,"reportId":"r1"}]
		}`, rec.Body.String())
	})

	t.Run("erro inesperado vira erro interno", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := reportingmocks.NewMockReportingService(ctrl)

		service.EXPECT().ListReports(gomock.Any(), domain.ReportFilter{TenantID: 7}).Return(nil, errors.New("boom"))

		rec := serve(Reports(service), operator, httptest.NewRequest(http.MethodGet, "/v1/reports", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, apiErrors.ErrInternalServer, decodeError(t, rec).Code)
	})
}

func TestAdAccountHandlers(t *testing.T) {
	t.Run("filtro por plataforma e status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := accountmocks.NewMockAccountService(ctrl)

		platform := domain.PlatformMeta
		service.EXPECT().ListAccounts(gomock.Any(), domain.AccountFilter{
			TenantID: 7,
			Platform: &platform,
			Status:   []domain.AdAccountStatus{domain.AdAccountStatusActive, domain.AdAccountStatusInactive},
		}).Return([]*domain.AdAccountResponse{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/accounts?platform=meta&status=active,%20inactive", nil)
		rec := serve(AdAccounts(service), operator, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("plataforma inválida", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := accountmocks.NewMockAccountService(ctrl)

		rec := serve(AdAccounts(service), operator, httptest.NewRequest(http.MethodGet, "/v1/accounts?platform=tiktok", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("atualização usa id da rota e tenant do token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := accountmocks.NewMockAccountService(ctrl)

		service.EXPECT().UpdateAccount(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req *domain.UpdateAdAccountRequest) (*domain.AdAccountResponse, error) {
				assert.Equal(t, "a1", req.ID)
				assert.Equal(t, 7, req.TenantID)
				return &domain.AdAccountResponse{}, nil
			})

		req := httptest.NewRequest(http.MethodPut, "/v1/accounts/a1", strings.NewReader(`{"id":"outra"}`))
		rec := serve(AdAccounts(service), operator, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("remoção", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := accountmocks.NewMockAccountService(ctrl)

		service.EXPECT().DeleteAccount(gomock.Any(), 7, "a1").Return(nil)

		rec := serve(AdAccounts(service), operator, httptest.NewRequest(http.MethodDelete, "/v1/accounts/a1", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestCreateWebhookHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := webhookingmocks.NewMockWebhookingService(ctrl)

	service.EXPECT().CreateWebhook(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, webhook *domain.WebhookIntegration) (*domain.WebhookIntegration, error) {
			assert.Equal(t, 7, webhook.TenantID)
			assert.True(t, webhook.IsActive)
			assert.True(t, webhook.TriggerLowBalance)
			webhook.ID = "w1"
			return webhook, nil
		})

	body := `{"name":"Slack","url":"https://hooks.example.com/x","trigger_low_balance":true}`
	rec := serve(Webhooks(service), operator, httptest.NewRequest(http.MethodPost, "/v1/webhooks", strings.NewReader(body)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"w1"`)
}

func TestLoginHandler(t *testing.T) {
	t.Run("credenciais inválidas não revelam o motivo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := authmocks.NewMockAuthenticator(ctrl)

		service.EXPECT().LoginUser(gomock.Any(), "ana@example.com", "errada").
			Return("", authenticating.NewAuthError(authenticating.ErrUserNotFound, apiErrors.ErrUserNotFound, ""))

		body := `{"email":"ana@example.com","password":"errada"}`
		rec := serve(Authentication(service), nil, httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(body)))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		apiErr := decodeError(t, rec)
		assert.Equal(t, apiErrors.ErrInvalidCredentials, apiErr.Code)
		assert.Equal(t, "Email ou senha inválidos", apiErr.Message)
	})

	t.Run("sucesso", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := authmocks.NewMockAuthenticator(ctrl)

		service.EXPECT().LoginUser(gomock.Any(), "ana@example.com", "Segura123").Return("token", nil)

		body := `{"email":"ana@example.com","password":"Segura123"}`
		rec := serve(Authentication(service), nil, httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(body)))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"token":"token"}`, rec.Body.String())
	})
}

type fakeJob struct {
	started bool
	calls   int
}

func (j *fakeJob) Start(context.Context) error { return nil }

func (j *fakeJob) TriggerManualSync() bool {
	j.calls++
	return j.started
}

func (j *fakeJob) GetStatus() map[string]any {
	return map[string]any{"running": !j.started}
}

func TestCronHandlers(t *testing.T) {
	balance := &fakeJob{started: true}
	report := &fakeJob{started: false}
	jobs := CronJobServices{
		scheduler.BalancePipelineJob: balance,
		scheduler.ReportScheduleJob:  report,
	}
	admin := &domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin}

	t.Run("operador não pode disparar", func(t *testing.T) {
		rec := serve(CronJobs(jobs), operator, httptest.NewRequest(http.MethodPost, "/v1/cron/balance/run", nil))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, 0, balance.calls)
	})

	t.Run("tipo desconhecido", func(t *testing.T) {
		rec := serve(CronJobs(jobs), admin, httptest.NewRequest(http.MethodPost, "/v1/cron/insights/run", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("job já em andamento", func(t *testing.T) {
		rec := serve(CronJobs(jobs), admin, httptest.NewRequest(http.MethodPost, "/v1/cron/report/run", nil))

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.JSONEq(t, `{"type":"report","started":false,"message":"Execução já em andamento"}`, rec.Body.String())
	})

	t.Run("todos", func(t *testing.T) {
		rec := serve(CronJobs(jobs), admin, httptest.NewRequest(http.MethodPost, "/v1/cron/all/run", nil))

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.JSONEq(t, `{"type":"all","started":{"balance":true,"report":false}}`, rec.Body.String())
	})

	t.Run("status", func(t *testing.T) {
		rec := serve(CronJobs(jobs), admin, httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"balance":{"running":false},"report":{"running":true}}`, rec.Body.String())
	})
}

type pingFunc func(context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthcheck(t *testing.T) {
	t.Run("banco respondendo", func(t *testing.T) {
		db := pingFunc(func(context.Context) error { return nil })

		rec := serve(Healthcheck(db), nil, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"ok"`)
		assert.Contains(t, rec.Body.String(), `"database":"ok"`)
	})

	t.Run("banco fora do ar", func(t *testing.T) {
		db := pingFunc(func(context.Context) error { return errors.New("connection refused") })

		rec := serve(Healthcheck(db), nil, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"degraded"`)
	})

	t.Run("sem banco", func(t *testing.T) {
		rec := serve(Healthcheck(nil), nil, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "database")
	})
}
