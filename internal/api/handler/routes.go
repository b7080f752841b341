package handler

import (
	"net/http"

	"github.com/vfg2006/traffic-balance-monitor/internal/api/handler/router"
	"github.com/vfg2006/traffic-balance-monitor/internal/metrics"
	"github.com/vfg2006/traffic-balance-monitor/internal/usecases/account"
	"github.com/vfg2006/traffic-balance-monitor/internal/usecases/alerting"
	"github.com/vfg2006/traffic-balance-monitor/internal/usecases/authenticating"
	"github.com/vfg2006/traffic-balance-monitor/internal/usecases/balancing"
	"github.com/vfg2006/traffic-balance-monitor/internal/usecases/discovering"
	"github.com/vfg2006/traffic-balance-monitor/internal/usecases/reporting"
	"github.com/vfg2006/traffic-balance-monitor/internal/usecases/webhooking"
	"github.com/vfg2006/traffic-balance-monitor/pkg/middleware"
)

type middlewares = []func(http.Handler) http.Handler

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Connect(service discovering.DiscoveringService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/connect/meta",
			Method:      http.MethodPost,
			Handler:     ConnectMeta(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/connect/google",
			Method:      http.MethodPost,
			Handler:     ConnectGoogle(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Balances(service balancing.BalancingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/balances/sync",
			Method:      http.MethodPost,
			Handler:     SyncBalances(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func AdAccounts(service account.AccountService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/accounts",
			Method:      http.MethodGet,
			Handler:     AdAccountList(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts/:id",
			Method:      http.MethodPut,
			Handler:     UpdateAdAccount(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteAdAccount(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Clients(service account.AccountService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/clients",
			Method:      http.MethodGet,
			Handler:     ListClients(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients",
			Method:      http.MethodPost,
			Handler:     CreateClient(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients/:id",
			Method:      http.MethodPut,
			Handler:     UpdateClient(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteClient(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Alerts(service alerting.AlertingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/alerts/check",
			Method:      http.MethodPost,
			Handler:     CheckAlerts(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/alerts",
			Method:      http.MethodGet,
			Handler:     ListAlerts(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/alerts",
			Method:      http.MethodDelete,
			Handler:     DeleteAllAlerts(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/alerts/:id/read",
			Method:      http.MethodPut,
			Handler:     MarkAlertAsRead(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/alerts/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteAlert(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Reports(service reporting.ReportingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports/generate",
			Method:      http.MethodPost,
			Handler:     GenerateReport(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports",
			Method:      http.MethodGet,
			Handler:     ListReports(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports",
			Method:      http.MethodDelete,
			Handler:     DeleteAllReports(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/:id/read",
			Method:      http.MethodPut,
			Handler:     MarkReportAsRead(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteReport(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Webhooks(service webhooking.WebhookingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/webhooks",
			Method:      http.MethodGet,
			Handler:     ListWebhooks(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/webhooks",
			Method:      http.MethodPost,
			Handler:     CreateWebhook(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/webhooks/:id",
			Method:      http.MethodPut,
			Handler:     UpdateWebhook(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/webhooks/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteWebhook(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
	}
}
