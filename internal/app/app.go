package app

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/traffic-balance-monitor/infrastructure/database/postgres"
	"github.com/vfg2006/traffic-balance-monitor/infrastructure/integrator"
	"github.com/vfg2006/traffic-balance-monitor/infrastructure/integrator/google"
	"github.com/vfg2006/traffic-balance-monitor/infrastructure/integrator/google/googleclient"
	"github.com/vfg2006/traffic-balance-monitor/infrastructure/integrator/meta"
	"github.com/vfg2006/traffic-balance-monitor/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/traffic-balance-monitor/infrastructure/repository"
	"github.com/vfg2006/traffic-balance-monitor/internal/api"
	"github.com/vfg2006/traffic-balance-monitor/internal/config"
	"github.com/vfg2006/traffic-balance-monitor/internal/notification"
	"github.com/vfg2006/traffic-balance-monitor/internal/scheduler"
	"github.com/vfg2006/traffic-balance-monitor/internal/usecases/account"
	"github.com/vfg2006/traffic-balance-monitor/internal/usecases/alerting"
	"github.com/vfg2006/traffic-balance-monitor/internal/usecases/authenticating"
	"github.com/vfg2006/traffic-balance-monitor/internal/usecases/balancing"
	"github.com/vfg2006/traffic-balance-monitor/internal/usecases/discovering"
	"github.com/vfg2006/traffic-balance-monitor/internal/usecases/reporting"
	"github.com/vfg2006/traffic-balance-monitor/internal/usecases/webhooking"
)

// App reúne as dependências montadas a partir da configuração.
// É compartilhado pela API e pela CLI.
type App struct {
	Config     *config.Config
	Conn       *postgres.Connection
	Dispatcher *notification.Dispatcher

	Authenticator authenticating.Authenticator
	Discovering   discovering.DiscoveringService
	Balancing     balancing.BalancingService
	Alerting      alerting.AlertingService
	Reporting     reporting.ReportingService
	Accounts      account.AccountService
	Webhooks      webhooking.WebhookingService

	BalancePipeline *scheduler.BalancePipelineService
	ReportSchedule  *scheduler.ReportScheduleService
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao conectar ao PostgreSQL")
	}
	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")

	accountRepo := repository.NewAccountRepository(conn)
	clientRepo := repository.NewClientRepository(conn)
	alertRepo := repository.NewAlertRepository(conn)
	reportRepo := repository.NewReportRepository(conn)
	webhookRepo := repository.NewWebhookRepository(conn)
	userRepo := repository.NewUserRepository(conn)

	metaIntegrator := meta.New(cfg.Meta, metaclient.NewClient(cfg.Meta))
	googleIntegrator := google.New(cfg.Google, googleclient.NewClient(cfg.Google))

	warnUnconfigured(metaIntegrator, googleIntegrator)

	dispatcher := notification.NewDispatcher(webhookRepo, cfg.Webhook)

	balancingService := balancing.NewService(accountRepo, metaIntegrator, googleIntegrator, cfg.BalanceSync)
	alertingService := alerting.NewService(accountRepo, alertRepo, dispatcher, cfg.AlertCheck)
	reportingService := reporting.NewService(accountRepo, reportRepo, dispatcher, cfg.Report)

	return &App{
		Config:     cfg,
		Conn:       conn,
		Dispatcher: dispatcher,

		Authenticator: authenticating.NewService(userRepo, cfg.SecretKey),
		Discovering:   discovering.NewService(accountRepo, metaIntegrator, googleIntegrator),
		Balancing:     balancingService,
		Alerting:      alertingService,
		Reporting:     reportingService,
		Accounts:      account.NewService(accountRepo, clientRepo),
		Webhooks:      webhooking.NewService(webhookRepo),

		BalancePipeline: scheduler.NewBalancePipelineService(accountRepo, balancingService, alertingService, cfg.BalanceSync),
		ReportSchedule:  scheduler.NewReportScheduleService(accountRepo, reportingService, cfg.ReportSchedule),
	}, nil
}

// Jobs indexa os jobs agendados pelo tipo usado na rota de disparo manual
func (a *App) Jobs() map[string]scheduler.Job {
	return map[string]scheduler.Job{
		scheduler.BalancePipelineJob: a.BalancePipeline,
		scheduler.ReportScheduleJob:  a.ReportSchedule,
	}
}

// StartJobs inicia os agendadores habilitados; falhas são apenas registradas
func (a *App) StartJobs(ctx context.Context) {
	for name, job := range a.Jobs() {
		if err := job.Start(ctx); err != nil {
			logrus.WithError(err).WithField("job", name).Error("Erro ao iniciar agendador")
			continue
		}
		logrus.WithField("job", name).Info("Agendador iniciado")
	}
}

func (a *App) APIServices() api.Services {
	return api.Services{
		Authenticator: a.Authenticator,
		Discovering:   a.Discovering,
		Balancing:     a.Balancing,
		Alerting:      a.Alerting,
		Reporting:     a.Reporting,
		Accounts:      a.Accounts,
		Webhooks:      a.Webhooks,
		Jobs:          a.Jobs(),
		Database:      a.Conn,
	}
}

// Close aguarda os webhooks pendentes e fecha a conexão com o banco
func (a *App) Close() {
	a.Dispatcher.Wait()

	if err := a.Conn.Close(); err != nil {
		logrus.WithError(err).Warn("Erro ao fechar conexão com PostgreSQL")
	}
}

// warnUnconfigured avisa quais operações ficam indisponíveis sem as
// credenciais da aplicação em cada plataforma
func warnUnconfigured(metaPlatform, googlePlatform integrator.Integrator) {
	if !metaPlatform.Configured() {
		logrus.Warn("META_APP_ID/META_APP_SECRET ausentes: conexão de contas do Meta indisponível")
	}
	if !googlePlatform.Configured() {
		logrus.Warn("GOOGLE_ADS_DEVELOPER_TOKEN ausente: conexão e sincronização do Google Ads indisponíveis")
	}
}
