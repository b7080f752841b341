package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/vfg2006/traffic-balance-monitor/internal/domain"
)

func newReportCmd(opts *options) *cobra.Command {
	var req domain.GenerateReportRequest

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Gera relatórios de estimativa de mensagens para as contas ativas",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.run(cmd, func(ctx context.Context, services *Services) (any, error) {
				return services.Reporting.GenerateReport(ctx, opts.tenantID, req)
			}, renderReport)
		},
	}
	reportCmd.Flags().IntVar(&req.PeriodDays, "days", 7, "Período do relatório em dias")
	reportCmd.Flags().StringVar(&req.ProductName, "product", "", "Nome do produto divulgado (padrão: "+domain.DefaultReportProductName+")")
	reportCmd.Flags().StringSliceVar(&req.AccountIDs, "account", nil, "Restringe o relatório às contas informadas")

	return reportCmd
}

func renderReport(out io.Writer, value any) {
	result := value.(*domain.GenerateReportResult)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  CONTA\tRELATÓRIO\tRESULTADO\n")
	for _, item := range result.Results {
		reportID, outcome := "-", "ok"
		if item.ReportID != nil {
			reportID = *item.ReportID
		}
		if !item.Success && item.Error != nil {
			outcome = *item.Error
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\n", item.AccountName, reportID, outcome)
	}
	w.Flush()

	fmt.Fprintf(out, "Total: %d, sucesso: %d, erro: %d\n",
		result.Summary.TotalAccounts, result.Summary.SuccessCount, result.Summary.ErrorCount)
}
