package notification

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/traffic-balance-monitor/infrastructure/repository"
	"github.com/vfg2006/traffic-balance-monitor/internal/config"
	"github.com/vfg2006/traffic-balance-monitor/internal/metrics"
	"golang.org/x/sync/errgroup"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Notifier é usado pelos serviços que disparam eventos sem aguardar a entrega
//
//go:generate mockgen -source=dispatcher.go -destination=mocks/notifier.go -package=mocks
type Notifier interface {
	DispatchAsync(ctx context.Context, tenantID int, event Event)
}

// Delivery registra o resultado do envio para um webhook
type Delivery struct {
	WebhookID  string `json:"webhook_id"`
	URL        string `json:"url"`
	StatusCode int    `json:"status_code,omitempty"`
	Success    bool   `json:"success"`
	Error      string `json:"error,omitempty"`
}

type Dispatcher struct {
	repository  repository.WebhookRepository
	httpClient  *http.Client
	maxParallel int
	wg          sync.WaitGroup
}

func NewDispatcher(repo repository.WebhookRepository, cfg config.Webhook) *Dispatcher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	maxParallel := cfg.MaxParallel
	if maxParallel <= 0 {
		maxParallel = 1
	}

	return &Dispatcher{
		repository:  repo,
		httpClient:  &http.Client{Timeout: timeout},
		maxParallel: maxParallel,
	}
}

// Dispatch envia o evento a todos os webhooks ativos do tenant que aceitam o tipo.
// Falhas de entrega ficam só no log e no resultado; nunca viram erro.
func (d *Dispatcher) Dispatch(ctx context.Context, tenantID int, event Event) []Delivery {
	log := logrus.WithFields(logrus.Fields{
		"tenant_id": tenantID,
		"event":     event.Type,
	})

	webhooks, err := d.repository.ListActiveWebhooks(ctx, tenantID, event.Type)
	if err != nil {
		log.WithError(err).Error("Erro ao buscar webhooks ativos")
		return nil
	}

	if len(webhooks) == 0 {
		log.Debug("Nenhum webhook ativo para o evento")
		return nil
	}

	body, err := json.Marshal(event.Payload)
	if err != nil {
		log.WithError(err).Error("Erro ao serializar payload do webhook")
		return nil
	}

	deliveries := make([]Delivery, len(webhooks))

	var g errgroup.Group
	g.SetLimit(d.maxParallel)

	for i, webhook := range webhooks {
		g.Go(func() error {
			delivery := d.send(ctx, webhook.URL, body)
			delivery.WebhookID = webhook.ID
			deliveries[i] = delivery

			metrics.WebhookDeliveries.WithLabelValues(string(event.Type), metrics.Result(delivery.Success)).Inc()

			if !delivery.Success {
				log.WithFields(logrus.Fields{
					"webhook_id":  webhook.ID,
					"url":         webhook.URL,
					"status_code": delivery.StatusCode,
					"error":       delivery.Error,
				}).Warn("Falha ao entregar webhook")
			}
			return nil
		})
	}

	_ = g.Wait()

	log.WithField("webhooks", len(webhooks)).Info("Evento enviado aos webhooks")

	return deliveries
}

// DispatchAsync dispara o envio em background, desvinculado do contexto da requisição
func (d *Dispatcher) DispatchAsync(ctx context.Context, tenantID int, event Event) {
	detached := context.WithoutCancel(ctx)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				logrus.WithField("panic", r).Error("Panic no envio de webhooks")
			}
		}()

		d.Dispatch(detached, tenantID, event)
	}()
}

// Wait aguarda os envios em background terminarem
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) send(ctx context.Context, url string, body []byte) Delivery {
	delivery := Delivery{URL: url}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		delivery.Error = err.Error()
		return delivery
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "traffic-balance-monitor/1.0")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		delivery.Error = err.Error()
		return delivery
	}
	defer resp.Body.Close()

	delivery.StatusCode = resp.StatusCode
	delivery.Success = resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices
	if !delivery.Success {
		delivery.Error = fmt.Sprintf("status %d", resp.StatusCode)
	}

	return delivery
}
