package reporting

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/traffic-balance-monitor/infrastructure/repository"
	"github.com/vfg2006/traffic-balance-monitor/internal/domain"
	"github.com/vfg2006/traffic-balance-monitor/pkg/apiErrors"
)

func (s *Service) ListReports(ctx context.Context, filter domain.ReportFilter) ([]*domain.Report, error) {
	reports, err := s.reportRepository.ListReports(ctx, filter)
	if err != nil {
		logrus.WithField("tenant_id", filter.TenantID).WithError(err).Error("Erro ao listar relatórios")
		return nil, NewReportError(ErrDatabase, apiErrors.ErrDatabaseOperation, "", err.Error())
	}
	return reports, nil
}

func (s *Service) MarkAsRead(ctx context.Context, tenantID int, reportID string) error {
	return s.mapError(reportID, s.reportRepository.MarkAsRead(ctx, tenantID, reportID))
}

func (s *Service) DeleteReport(ctx context.Context, tenantID int, reportID string) error {
	return s.mapError(reportID, s.reportRepository.DeleteReport(ctx, tenantID, reportID))
}

func (s *Service) DeleteAllReports(ctx context.Context, tenantID int) (int64, error) {
	deleted, err := s.reportRepository.DeleteAllReports(ctx, tenantID)
	if err != nil {
		return 0, s.mapError("", err)
	}
	return deleted, nil
}

func (s *Service) mapError(reportID string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, repository.ErrNotFound) {
		return NewReportError(ErrReportNotFound, apiErrors.ErrResourceNotFound, reportID, "")
	}

	logrus.WithField("report_id", reportID).WithError(err).Error("Erro ao atualizar relatório")
	return NewReportError(ErrDatabase, apiErrors.ErrDatabaseOperation, reportID, err.Error())
}
