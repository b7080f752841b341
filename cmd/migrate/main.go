package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/traffic-balance-monitor/infrastructure/database/postgres"
	"github.com/vfg2006/traffic-balance-monitor/infrastructure/migration"
	"github.com/vfg2006/traffic-balance-monitor/internal/config"
	"github.com/vfg2006/traffic-balance-monitor/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	applied, err := migration.New(conn).Up(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migrações")
	}

	logrus.WithField("applied", applied).Info("Migrações concluídas")
}
