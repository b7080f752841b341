package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/vfg2006/traffic-balance-monitor/internal/domain"
)

func newConnectCmd(opts *options) *cobra.Command {
	connectCmd := &cobra.Command{
		Use:   "connect",
		Short: "Conecta as contas de anúncio de uma plataforma ao tenant",
	}

	var token string
	metaCmd := &cobra.Command{
		Use:   "meta",
		Short: "Descobre e salva as contas do Meta acessíveis pelo token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.run(cmd, func(ctx context.Context, services *Services) (any, error) {
				return services.Discovering.ConnectMeta(ctx, opts.tenantID, token)
			}, renderConnect)
		},
	}
	metaCmd.Flags().StringVar(&token, "token", "", "Access token do usuário no Meta")
	_ = metaCmd.MarkFlagRequired("token")

	credential := &domain.Credential{}
	googleCmd := &cobra.Command{
		Use:   "google",
		Short: "Descobre e salva as contas do Google Ads acessíveis pela credencial",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.run(cmd, func(ctx context.Context, services *Services) (any, error) {
				return services.Discovering.ConnectGoogle(ctx, opts.tenantID, credential)
			}, renderConnect)
		},
	}
	googleCmd.Flags().StringVar(&credential.RefreshToken, "refresh-token", "", "Refresh token OAuth")
	googleCmd.Flags().StringVar(&credential.ClientID, "client-id", "", "Client ID OAuth")
	googleCmd.Flags().StringVar(&credential.ClientSecret, "client-secret", "", "Client secret OAuth")
	for _, flag := range []string{"refresh-token", "client-id", "client-secret"} {
		_ = googleCmd.MarkFlagRequired(flag)
	}

	connectCmd.AddCommand(metaCmd, googleCmd)
	return connectCmd
}

func renderConnect(out io.Writer, value any) {
	result := value.(*domain.ConnectResult)

	fmt.Fprintln(out, result.Message)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  ID\tPLATAFORMA\tNOME\tSTATUS\n")
	for _, account := range result.Accounts {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", account.ID, account.Platform, account.Name, account.Status)
	}
	w.Flush()

	for _, discoveryErr := range result.Errors {
		fmt.Fprintf(out, "  aviso: %s: %s\n", discoveryErr.ExternalID, discoveryErr.Error)
	}
}
