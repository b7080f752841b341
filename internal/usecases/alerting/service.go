package alerting

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/traffic-balance-monitor/infrastructure/repository"
	"github.com/vfg2006/traffic-balance-monitor/internal/domain"
	"github.com/vfg2006/traffic-balance-monitor/pkg/apiErrors"
)

func (s *Service) ListAlerts(ctx context.Context, filter domain.AlertFilter) ([]*domain.Alert, error) {
	alerts, err := s.alertRepository.ListAlerts(ctx, filter)
	if err != nil {
		logrus.WithField("tenant_id", filter.TenantID).WithError(err).Error("Erro ao listar alertas")
		return nil, NewAlertError(ErrDatabase, apiErrors.ErrDatabaseOperation, "", err.Error())
	}
	return alerts, nil
}

func (s *Service) MarkAsRead(ctx context.Context, tenantID int, alertID string) error {
	return s.mapError(alertID, s.alertRepository.MarkAsRead(ctx, tenantID, alertID))
}

func (s *Service) DeleteAlert(ctx context.Context, tenantID int, alertID string) error {
	return s.mapError(alertID, s.alertRepository.DeleteAlert(ctx, tenantID, alertID))
}

func (s *Service) DeleteAllAlerts(ctx context.Context, tenantID int) (int64, error) {
	deleted, err := s.alertRepository.DeleteAllAlerts(ctx, tenantID)
	if err != nil {
		return 0, s.mapError("", err)
	}

	logrus.WithFields(logrus.Fields{
		"tenant_id": tenantID,
		"deleted":   deleted,
	}).Info("Alertas removidos")

	return deleted, nil
}

func (s *Service) mapError(alertID string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, repository.ErrNotFound) {
		return NewAlertError(ErrAlertNotFound, apiErrors.ErrResourceNotFound, alertID, "")
	}

	logrus.WithField("alert_id", alertID).WithError(err).Error("Erro ao atualizar alerta")
	return NewAlertError(ErrDatabase, apiErrors.ErrDatabaseOperation, alertID, err.Error())
}
