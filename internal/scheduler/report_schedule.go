package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/traffic-balance-monitor/infrastructure/repository"
	"github.com/vfg2006/traffic-balance-monitor/internal/config"
	"github.com/vfg2006/traffic-balance-monitor/internal/domain"
	"github.com/vfg2006/traffic-balance-monitor/internal/usecases/reporting"
)

const ReportScheduleJob = "report"

// ReportScheduleService gera periodicamente os relatórios de todas as
// contas ativas de cada tenant
type ReportScheduleService struct {
	scheduler   *gocron.Scheduler
	config      config.ReportSchedule
	accountRepo repository.AccountRepository
	reporting   reporting.ReportingService
	state       runState
	now         func() time.Time
}

func NewReportScheduleService(
	accountRepo repository.AccountRepository,
	reportingService reporting.ReportingService,
	cfg config.ReportSchedule,
) *ReportScheduleService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule":  cfg.CronSchedule,
		"period_days":    cfg.PeriodDays,
		"report_enabled": cfg.Enabled,
	}).Info("Configuração do agendador de relatórios carregada")

	return &ReportScheduleService{
		scheduler:   gocron.NewScheduler(time.Local),
		config:      cfg,
		accountRepo: accountRepo,
		reporting:   reportingService,
		state:       runState{name: ReportScheduleJob},
		now:         time.Now,
	}
}

func (s *ReportScheduleService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Relatórios agendados desabilitados por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de relatórios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.Run(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar relatórios: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de relatórios")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *ReportScheduleService) Run(ctx context.Context) bool {
	if !s.state.begin(s.now()) {
		return false
	}
	defer func() { s.state.end(s.now()) }()

	tenants, err := s.accountRepo.ListTenantIDs(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar tenants para os relatórios agendados")
		return true
	}

	request := domain.GenerateReportRequest{PeriodDays: s.config.PeriodDays}
	for _, tenantID := range tenants {
		if ctx.Err() != nil {
			break
		}

		result, err := s.reporting.GenerateReport(ctx, tenantID, request)
		if err != nil {
			logrus.WithField("tenant_id", tenantID).WithError(err).Error("Erro ao gerar relatórios agendados")
			continue
		}

		logrus.WithFields(logrus.Fields{
			"tenant_id": tenantID,
			"success":   result.Summary.SuccessCount,
			"errors":    result.Summary.ErrorCount,
		}).Info("Relatórios agendados gerados")
	}

	return true
}

func (s *ReportScheduleService) TriggerManualSync() bool {
	if s.state.isRunning() {
		logrus.Info("Geração de relatórios já em andamento, ignorando solicitação manual")
		return false
	}

	go s.Run(context.Background())
	return true
}

func (s *ReportScheduleService) GetStatus() map[string]any {
	running, startedAt, completedAt := s.state.snapshot()

	return map[string]any{
		"report_enabled":        s.config.Enabled,
		"report_cron":           s.config.CronSchedule,
		"report_period_days":    s.config.PeriodDays,
		"running":               running,
		"last_run_started_at":   startedAt,
		"last_run_completed_at": completedAt,
	}
}
