package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/vfg2006/traffic-balance-monitor/internal/domain"
)

func newSyncCmd(opts *options) *cobra.Command {
	var accountID string

	syncCmd := &cobra.Command{
		Use:   "sync",
		Short: "Sincroniza o saldo das contas ativas do tenant",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.run(cmd, func(ctx context.Context, services *Services) (any, error) {
				var target *string
				if accountID != "" {
					target = &accountID
				}
				return services.Balancing.SyncBalances(ctx, opts.tenantID, target)
			}, renderSync)
		},
	}
	syncCmd.Flags().StringVar(&accountID, "account", "", "Sincroniza apenas a conta informada")

	return syncCmd
}

func renderSync(out io.Writer, value any) {
	result := value.(*domain.SyncResult)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  CONTA\tSALDO\tGASTO DIÁRIO\tRESULTADO\n")
	for _, item := range result.Results {
		balance, dailySpend, outcome := "-", "-", "ok"
		if item.Balance != nil {
			balance = *item.Balance
		}
		if item.DailySpend != nil {
			dailySpend = fmt.Sprintf("%.2f", *item.DailySpend)
		}
		if !item.Success && item.Error != nil {
			outcome = *item.Error
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", item.AccountName, balance, dailySpend, outcome)
	}
	w.Flush()

	fmt.Fprintf(out, "%d de %d contas sincronizadas\n", result.Succeeded(), len(result.Results))
}
