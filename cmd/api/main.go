package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/traffic-balance-monitor/internal/api"
	"github.com/vfg2006/traffic-balance-monitor/internal/app"
	"github.com/vfg2006/traffic-balance-monitor/internal/config"
	"github.com/vfg2006/traffic-balance-monitor/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application, err := app.New(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar a aplicação")
	}
	defer application.Close()

	application.StartJobs(ctx)

	server := api.New(cfg, application.APIServices(), application.Dispatcher)
	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
