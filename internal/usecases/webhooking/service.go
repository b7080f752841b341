package webhooking

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/traffic-balance-monitor/infrastructure/repository"
	"github.com/vfg2006/traffic-balance-monitor/internal/domain"
	"github.com/vfg2006/traffic-balance-monitor/pkg/apiErrors"
	"github.com/vfg2006/traffic-balance-monitor/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks
type WebhookingService interface {
	CreateWebhook(ctx context.Context, webhook *domain.WebhookIntegration) (*domain.WebhookIntegration, error)
	ListWebhooks(ctx context.Context, tenantID int) ([]*domain.WebhookIntegration, error)
	UpdateWebhook(ctx context.Context, req *domain.UpdateWebhookRequest) (*domain.WebhookIntegration, error)
	DeleteWebhook(ctx context.Context, tenantID int, webhookID string) error
}

type Service struct {
	webhookRepository repository.WebhookRepository
}

func NewService(webhookRepository repository.WebhookRepository) WebhookingService {
	return &Service{
		webhookRepository: webhookRepository,
	}
}

func (s *Service) CreateWebhook(ctx context.Context, webhook *domain.WebhookIntegration) (*domain.WebhookIntegration, error) {
	webhook.Name = strings.TrimSpace(webhook.Name)
	if webhook.Name == "" {
		return nil, NewWebhookError(ErrNameRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	webhook.URL = strings.TrimSpace(webhook.URL)
	if err := ValidateURL(webhook.URL); err != nil {
		return nil, NewWebhookError(ErrInvalidURL, apiErrors.ErrInvalidFormat, "", err.Error())
	}

	if !webhook.TriggerLowBalance && !webhook.TriggerTokenExpiry && !webhook.TriggerReport {
		return nil, NewWebhookError(ErrNoTrigger, apiErrors.ErrInvalidRequest, "", "")
	}

	webhook.ID = utils.NewUUID()

	if err := s.webhookRepository.CreateWebhook(ctx, webhook); err != nil {
		logrus.WithFields(logrus.Fields{
			"tenant_id": webhook.TenantID,
			"error":     err.Error(),
		}).Error("Erro ao criar webhook")
		return nil, NewWebhookError(ErrDatabase, apiErrors.ErrDatabaseOperation, webhook.ID, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"tenant_id":  webhook.TenantID,
		"webhook_id": webhook.ID,
	}).Info("Webhook criado")

	return s.getWebhook(ctx, webhook.TenantID, webhook.ID)
}

func (s *Service) ListWebhooks(ctx context.Context, tenantID int) ([]*domain.WebhookIntegration, error) {
	webhooks, err := s.webhookRepository.ListWebhooks(ctx, tenantID)
	if err != nil {
		logrus.WithField("tenant_id", tenantID).WithError(err).Error("Erro ao listar webhooks")
		return nil, NewWebhookError(ErrDatabase, apiErrors.ErrDatabaseOperation, "", err.Error())
	}
	return webhooks, nil
}

func (s *Service) UpdateWebhook(ctx context.Context, req *domain.UpdateWebhookRequest) (*domain.WebhookIntegration, error) {
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, NewWebhookError(ErrNameRequired, apiErrors.ErrMissingRequiredData, req.ID, "")
		}
		req.Name = &name
	}

	if req.URL != nil {
		target := strings.TrimSpace(*req.URL)
		if err := ValidateURL(target); err != nil {
			return nil, NewWebhookError(ErrInvalidURL, apiErrors.ErrInvalidFormat, req.ID, err.Error())
		}
		req.URL = &target
	}

	if err := s.webhookRepository.UpdateWebhook(ctx, req); err != nil {
		return nil, s.mapError(req.ID, err)
	}

	return s.getWebhook(ctx, req.TenantID, req.ID)
}

func (s *Service) DeleteWebhook(ctx context.Context, tenantID int, webhookID string) error {
	return s.mapError(webhookID, s.webhookRepository.DeleteWebhook(ctx, tenantID, webhookID))
}

func (s *Service) getWebhook(ctx context.Context, tenantID int, webhookID string) (*domain.WebhookIntegration, error) {
	webhook, err := s.webhookRepository.GetWebhookByID(ctx, tenantID, webhookID)
	if err != nil {
		return nil, s.mapError(webhookID, err)
	}

	if webhook == nil {
		return nil, NewWebhookError(ErrWebhookNotFound, apiErrors.ErrResourceNotFound, webhookID, "")
	}

	return webhook, nil
}

func (s *Service) mapError(webhookID string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, repository.ErrNotFound) {
		return NewWebhookError(ErrWebhookNotFound, apiErrors.ErrResourceNotFound, webhookID, "")
	}

	logrus.WithField("webhook_id", webhookID).WithError(err).Error("Erro ao atualizar webhook")
	return NewWebhookError(ErrDatabase, apiErrors.ErrDatabaseOperation, webhookID, err.Error())
}

// ValidateURL aceita apenas URLs absolutas http ou https
func ValidateURL(raw string) error {
	if raw == "" {
		return errors.New("URL vazia")
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return err
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.New("esquema deve ser http ou https")
	}

	if parsed.Host == "" {
		return errors.New("host ausente")
	}

	return nil
}
