package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"github.com/vfg2006/traffic-balance-monitor/internal/app"
	"github.com/vfg2006/traffic-balance-monitor/internal/config"
	"github.com/vfg2006/traffic-balance-monitor/internal/usecases/alerting"
	"github.com/vfg2006/traffic-balance-monitor/internal/usecases/balancing"
	"github.com/vfg2006/traffic-balance-monitor/internal/usecases/discovering"
	"github.com/vfg2006/traffic-balance-monitor/internal/usecases/reporting"
	"github.com/vfg2006/traffic-balance-monitor/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Services são os casos de uso acionados pela linha de comando
type Services struct {
	Discovering discovering.DiscoveringService
	Balancing   balancing.BalancingService
	Alerting    alerting.AlertingService
	Reporting   reporting.ReportingService
}

// Loader monta os serviços e devolve a função que libera os recursos
type Loader func(ctx context.Context) (*Services, func(), error)

type options struct {
	load     Loader
	tenantID int
	asJSON   bool
}

func NewRootCmd(load Loader) *cobra.Command {
	opts := &options{load: load}

	rootCmd := &cobra.Command{
		Use:   "balance-monitor",
		Short: "Monitor de saldo das contas de anúncio Meta e Google Ads",
		Long: `Conecta contas de anúncio, sincroniza saldos, verifica alertas de saldo baixo
e gera relatórios de estimativa de mensagens para um tenant.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().IntVar(&opts.tenantID, "tenant", 0, "ID do tenant (usuário dono das contas)")
	rootCmd.PersistentFlags().BoolVar(&opts.asJSON, "json", false, "Imprime o resultado em JSON")
	_ = rootCmd.MarkPersistentFlagRequired("tenant")

	rootCmd.AddCommand(
		newConnectCmd(opts),
		newSyncCmd(opts),
		newAlertsCmd(opts),
		newReportCmd(opts),
	)

	return rootCmd
}

// Execute roda a CLI com os serviços montados a partir do ambiente
func Execute() {
	if err := NewRootCmd(loadFromEnv).Execute(); err != nil {
		os.Exit(1)
	}
}

func loadFromEnv(ctx context.Context) (*Services, func(), error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, err
	}

	log.Configure(cfg.App.LogLevel)

	application, err := app.New(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	return &Services{
		Discovering: application.Discovering,
		Balancing:   application.Balancing,
		Alerting:    application.Alerting,
		Reporting:   application.Reporting,
	}, application.Close, nil
}

// run carrega os serviços, executa fn e garante a liberação dos recursos
func (o *options) run(cmd *cobra.Command, fn func(ctx context.Context, services *Services) (any, error), render func(io.Writer, any)) error {
	if o.tenantID <= 0 {
		return fmt.Errorf("--tenant deve ser um ID válido")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	services, release, err := o.load(ctx)
	if err != nil {
		return fmt.Errorf("erro ao inicializar: %w", err)
	}
	defer release()

	result, err := fn(ctx, services)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if o.asJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	render(out, result)
	return nil
}
