package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vfg2006/traffic-balance-monitor/internal/domain"
)

func newAlertsCmd(opts *options) *cobra.Command {
	alertsCmd := &cobra.Command{
		Use:   "alerts",
		Short: "Operações de alertas",
	}

	var tokenExpiry bool
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Verifica saldo baixo (ou expiração de token) e cria os alertas devidos",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.run(cmd, func(ctx context.Context, services *Services) (any, error) {
				if tokenExpiry {
					return services.Alerting.CheckTokenExpiry(ctx, opts.tenantID)
				}
				return services.Alerting.CheckBalanceAlerts(ctx, opts.tenantID)
			}, renderCheck)
		},
	}
	checkCmd.Flags().BoolVar(&tokenExpiry, "token-expiry", false, "Verifica tokens próximos de expirar em vez do saldo")

	alertsCmd.AddCommand(checkCmd)
	return alertsCmd
}

func renderCheck(out io.Writer, value any) {
	result := value.(*domain.CheckAlertsResult)

	fmt.Fprintf(out, "Contas verificadas: %d\n", result.AccountsChecked)
	fmt.Fprintf(out, "Alertas criados:    %d\n", result.AlertsCreated)
	if len(result.AlertedAccounts) > 0 {
		fmt.Fprintf(out, "Contas alertadas:   %s\n", strings.Join(result.AlertedAccounts, ", "))
	}
}
