package metaclient

import (
	"context"
	"net/url"

	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/traffic-balance-monitor/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/traffic-balance-monitor/pkg/money"
)

func (c *MetaClient) GetFunding(ctx context.Context, accessToken, accountID string) (*metadomain.AdAccountFunding, error) {
	params := url.Values{}
	params.Add("fields", "id,account_status,currency,funding_source_details")
	params.Add("access_token", accessToken)

	var funding metadomain.AdAccountFunding
	if err := c.getJSON(ctx, c.endpoint(url.PathEscape(accountID), params), &funding); err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar fonte de pagamento da conta %s", accountID)
	}

	return &funding, nil
}

func (c *MetaClient) GetSpendLimits(ctx context.Context, accessToken, accountID string) (*metadomain.AdAccountSpendLimits, error) {
	params := url.Values{}
	params.Add("fields", "id,account_status,currency,spend_cap,amount_spent,balance")
	params.Add("access_token", accessToken)

	var limits metadomain.AdAccountSpendLimits
	if err := c.getJSON(ctx, c.endpoint(url.PathEscape(accountID), params), &limits); err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar limites de gasto da conta %s", accountID)
	}

	return &limits, nil
}

// GetSpend soma o gasto da conta no período (date_preset "today", "yesterday"...)
func (c *MetaClient) GetSpend(ctx context.Context, accessToken, accountID, datePreset string) (float64, error) {
	params := url.Values{}
	params.Add("fields", "spend")
	params.Add("date_preset", datePreset)
	params.Add("access_token", accessToken)

	insights, err := fetchAll[metadomain.Insight](ctx, c, c.endpoint(url.PathEscape(accountID)+"/insights", params))
	if err != nil {
		return 0, errors.Wrapf(err, "erro ao buscar gasto da conta %s", accountID)
	}

	total := 0.0
	for _, insight := range insights {
		total += money.ParseNonNegative(insight.Spend)
	}

	return total, nil
}
