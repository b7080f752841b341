package notification

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/traffic-balance-monitor/infrastructure/repository/mocks"
	"github.com/vfg2006/traffic-balance-monitor/internal/config"
	"github.com/vfg2006/traffic-balance-monitor/internal/domain"
	"go.uber.org/mock/gomock"
)

func lowBalanceEvent() Event {
	alert := &domain.Alert{
		Title:   "Saldo baixo: Loja Centro",
		Message: "A conta Loja Centro está com saldo de R$ 120,00",
		SentAt:  time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC),
	}
	account := &domain.AdAccount{
		Name:           "Loja Centro",
		Platform:       domain.PlatformMeta,
		Balance:        decimal.NewFromInt(120),
		AlertThreshold: decimal.NewFromInt(500),
	}
	return NewLowBalanceEvent(alert, account)
}

func TestDispatchToleratesFailingWebhook(t *testing.T) {
	var received atomic.Int32
	var payload []byte

	ok := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received.Add(1)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		payload, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer ok.Close()

	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer failing.Close()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockWebhookRepository(ctrl)
	repo.EXPECT().ListActiveWebhooks(gomock.Any(), 7, domain.EventLowBalance).Return([]*domain.WebhookIntegration{
		{ID: "wh-ok", URL: ok.URL},
		{ID: "wh-fail", URL: failing.URL},
	}, nil)

	dispatcher := NewDispatcher(repo, config.Webhook{Timeout: 2 * time.Second, MaxParallel: 2})
	deliveries := dispatcher.Dispatch(context.Background(), 7, lowBalanceEvent())

	require.Len(t, deliveries, 2)
	assert.Equal(t, int32(2), received.Load())

	assert.Equal(t, "wh-ok", deliveries[0].WebhookID)
	assert.True(t, deliveries[0].Success)
	assert.Equal(t, http.StatusOK, deliveries[0].StatusCode)

	assert.Equal(t, "wh-fail", deliveries[1].WebhookID)
	assert.False(t, deliveries[1].Success)
	assert.Equal(t, http.StatusInternalServerError, deliveries[1].StatusCode)

	assert.JSONEq(t, `{
		"type": "low_balance",
		"alert": {"title": "Saldo baixo: Loja Centro", "message": "A conta Loja Centro está com saldo de R$ 120,00", "sent_at": "2024-05-02T10:00:00Z"},
		"account": {"name": "Loja Centro", "platform": "meta", "balance": "120,00", "min_balance": 500}
	}`, string(payload))
}

func TestDispatchUnreachableWebhook(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockWebhookRepository(ctrl)
	repo.EXPECT().ListActiveWebhooks(gomock.Any(), 7, domain.EventLowBalance).Return([]*domain.WebhookIntegration{
		{ID: "wh-down", URL: "http://127.0.0.1:1/hook"},
	}, nil)

	deliveries := NewDispatcher(repo, config.Webhook{Timeout: time.Second}).Dispatch(context.Background(), 7, lowBalanceEvent())

	require.Len(t, deliveries, 1)
	assert.False(t, deliveries[0].Success)
	assert.NotEmpty(t, deliveries[0].Error)
}

func TestDispatchRepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockWebhookRepository(ctrl)
	repo.EXPECT().ListActiveWebhooks(gomock.Any(), 7, domain.EventLowBalance).Return(nil, errors.New("database down"))

	deliveries := NewDispatcher(repo, config.Webhook{}).Dispatch(context.Background(), 7, lowBalanceEvent())
	assert.Empty(t, deliveries)
}

func TestDispatchAsyncSurvivesCanceledContext(t *testing.T) {
	var received atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received.Add(1)
	}))
	defer server.Close()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockWebhookRepository(ctrl)
	repo.EXPECT().ListActiveWebhooks(gomock.Any(), 7, domain.EventAccountReport).Return([]*domain.WebhookIntegration{
		{ID: "wh-1", URL: server.URL},
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	dispatcher := NewDispatcher(repo, config.Webhook{Timeout: 2 * time.Second})

	dispatcher.DispatchAsync(ctx, 7, NewReportEvent(&domain.Report{ID: "rep-1", Title: "Relatório"}))
	cancel()
	dispatcher.Wait()

	assert.Equal(t, int32(1), received.Load())
}
