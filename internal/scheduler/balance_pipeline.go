package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/traffic-balance-monitor/infrastructure/repository"
	"github.com/vfg2006/traffic-balance-monitor/internal/config"
	"github.com/vfg2006/traffic-balance-monitor/internal/usecases/alerting"
	"github.com/vfg2006/traffic-balance-monitor/internal/usecases/balancing"
)

const BalancePipelineJob = "balance"

// PipelineSummary resume a última execução do pipeline de saldo
type PipelineSummary struct {
	Tenants        int `json:"tenants"`
	AccountsSynced int `json:"accounts_synced"`
	SyncFailures   int `json:"sync_failures"`
	AlertsCreated  int `json:"alerts_created"`
	TenantFailures int `json:"tenant_failures"`
}

// BalancePipelineService sincroniza os saldos de todos os tenants e, em
// seguida, verifica os alertas de saldo baixo e de expiração de token
type BalancePipelineService struct {
	scheduler   *gocron.Scheduler
	config      config.BalanceSync
	accountRepo repository.AccountRepository
	balancing   balancing.BalancingService
	alerting    alerting.AlertingService
	state       runState
	now         func() time.Time

	summaryMutex sync.Mutex
	lastSummary  PipelineSummary
}

func NewBalancePipelineService(
	accountRepo repository.AccountRepository,
	balancingService balancing.BalancingService,
	alertingService alerting.AlertingService,
	cfg config.BalanceSync,
) *BalancePipelineService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule":       cfg.CronSchedule,
		"max_concurrent_jobs": cfg.MaxConcurrentJobs,
		"sync_enabled":        cfg.Enabled,
	}).Info("Configuração do pipeline de saldo carregada")

	return &BalancePipelineService{
		scheduler:   gocron.NewScheduler(time.Local),
		config:      cfg,
		accountRepo: accountRepo,
		balancing:   balancingService,
		alerting:    alertingService,
		state:       runState{name: BalancePipelineJob},
		now:         time.Now,
	}
}

// Start inicia o agendador
func (s *BalancePipelineService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Pipeline de saldo desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do pipeline de saldo")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.Run(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar pipeline de saldo: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do pipeline de saldo")
		s.scheduler.Stop()
	}()

	return nil
}

// Run executa o pipeline de forma síncrona. Devolve false quando outra
// execução já está em andamento.
func (s *BalancePipelineService) Run(ctx context.Context) bool {
	if !s.state.begin(s.now()) {
		return false
	}
	defer func() { s.state.end(s.now()) }()

	logrus.Info("Iniciando pipeline de saldo para todos os tenants")

	tenants, err := s.accountRepo.ListTenantIDs(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar tenants para o pipeline de saldo")
		return true
	}

	summary := PipelineSummary{Tenants: len(tenants)}
	for _, tenantID := range tenants {
		if ctx.Err() != nil {
			logrus.Warn("Pipeline de saldo interrompido pelo cancelamento do contexto")
			break
		}

		s.runTenant(ctx, tenantID, &summary)
	}

	s.summaryMutex.Lock()
	s.lastSummary = summary
	s.summaryMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"tenants":         summary.Tenants,
		"accounts_synced": summary.AccountsSynced,
		"sync_failures":   summary.SyncFailures,
		"alerts_created":  summary.AlertsCreated,
	}).Info("Pipeline de saldo concluído")

	return true
}

func (s *BalancePipelineService) runTenant(ctx context.Context, tenantID int, summary *PipelineSummary) {
	logger := logrus.WithField("tenant_id", tenantID)

	syncResult, err := s.balancing.SyncBalances(ctx, tenantID, nil)
	if err != nil {
		// Sem sincronização os saldos estão desatualizados; os alertas ficam para a próxima rodada
		logger.WithError(err).Error("Erro ao sincronizar saldos do tenant")
		summary.TenantFailures++
		return
	}

	succeeded := syncResult.Succeeded()
	summary.AccountsSynced += succeeded
	summary.SyncFailures += len(syncResult.Results) - succeeded

	balanceAlerts, err := s.alerting.CheckBalanceAlerts(ctx, tenantID)
	if err != nil {
		logger.WithError(err).Error("Erro ao verificar alertas de saldo do tenant")
		summary.TenantFailures++
	} else {
		summary.AlertsCreated += balanceAlerts.AlertsCreated
	}

	tokenAlerts, err := s.alerting.CheckTokenExpiry(ctx, tenantID)
	if err != nil {
		logger.WithError(err).Error("Erro ao verificar expiração de tokens do tenant")
		summary.TenantFailures++
	} else {
		summary.AlertsCreated += tokenAlerts.AlertsCreated
	}
}

// TriggerManualSync inicia manualmente o pipeline em segundo plano
func (s *BalancePipelineService) TriggerManualSync() bool {
	if s.state.isRunning() {
		logrus.Info("Pipeline de saldo já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando execução manual do pipeline de saldo")
	go s.Run(context.Background())
	return true
}

// GetStatus retorna o status atual do agendador
func (s *BalancePipelineService) GetStatus() map[string]any {
	running, startedAt, completedAt := s.state.snapshot()

	s.summaryMutex.Lock()
	summary := s.lastSummary
	s.summaryMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"running":                running,
		"last_sync_started_at":   startedAt,
		"last_sync_completed_at": completedAt,
		"last_summary":           summary,
	}
}
