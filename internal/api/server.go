package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/traffic-balance-monitor/internal/api/handler"
	"github.com/vfg2006/traffic-balance-monitor/internal/api/handler/router"
	"github.com/vfg2006/traffic-balance-monitor/internal/config"
	"github.com/vfg2006/traffic-balance-monitor/internal/scheduler"
	"github.com/vfg2006/traffic-balance-monitor/internal/usecases/account"
	"github.com/vfg2006/traffic-balance-monitor/internal/usecases/alerting"
	"github.com/vfg2006/traffic-balance-monitor/internal/usecases/authenticating"
	"github.com/vfg2006/traffic-balance-monitor/internal/usecases/balancing"
	"github.com/vfg2006/traffic-balance-monitor/internal/usecases/discovering"
	"github.com/vfg2006/traffic-balance-monitor/internal/usecases/reporting"
	"github.com/vfg2006/traffic-balance-monitor/internal/usecases/webhooking"
	"github.com/vfg2006/traffic-balance-monitor/pkg/middleware"
)

// Services agrupa os casos de uso expostos pela API
type Services struct {
	Authenticator authenticating.Authenticator
	Discovering   discovering.DiscoveringService
	Balancing     balancing.BalancingService
	Alerting      alerting.AlertingService
	Reporting     reporting.ReportingService
	Accounts      account.AccountService
	Webhooks      webhooking.WebhookingService
	Jobs          map[string]scheduler.Job
	Database      handler.Pinger
}

// Drainer é implementado por quem mantém trabalho em segundo plano, como o despacho de webhooks
type Drainer interface {
	Wait()
}

type Server struct {
	httpServer *http.Server
	drainers   []Drainer
}

func NewHandler(cfg *config.Config, services Services) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.Database)...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.Connect(services.Discovering)...),
		router.WithRoutes(handler.Balances(services.Balancing)...),
		router.WithRoutes(handler.AdAccounts(services.Accounts)...),
		router.WithRoutes(handler.Clients(services.Accounts)...),
		router.WithRoutes(handler.Alerts(services.Alerting)...),
		router.WithRoutes(handler.Reports(services.Reporting)...),
		router.WithRoutes(handler.Webhooks(services.Webhooks)...),
		router.WithRoutes(handler.CronJobs(services.Jobs)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.App.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(cfg *config.Config, services Services, drainers ...Drainer) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
		drainers: drainers,
	}
}

func (s *Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

// Shutdown encerra o servidor HTTP e aguarda os webhooks ainda em voo
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	for _, drainer := range s.drainers {
		drainer.Wait()
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
