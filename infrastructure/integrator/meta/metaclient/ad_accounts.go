package metaclient

import (
	"context"
	"net/url"

	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/traffic-balance-monitor/infrastructure/integrator/meta/domain"
)

const adAccountFields = "id,account_id,name,account_status,currency,business"

func (c *MetaClient) ListAdAccounts(ctx context.Context, accessToken string) ([]metadomain.AdAccount, error) {
	accounts, err := fetchAll[metadomain.AdAccount](ctx, c, c.endpoint("me/adaccounts", c.listParams(accessToken, adAccountFields)))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar contas de anúncio")
	}
	return accounts, nil
}

func (c *MetaClient) ListBusinesses(ctx context.Context, accessToken string) ([]metadomain.Business, error) {
	businesses, err := fetchAll[metadomain.Business](ctx, c, c.endpoint("me/businesses", c.listParams(accessToken, "id,name")))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar business managers")
	}
	return businesses, nil
}

func (c *MetaClient) ListOwnedAdAccounts(ctx context.Context, accessToken, businessID string) ([]metadomain.AdAccount, error) {
	path := url.PathEscape(businessID) + "/owned_ad_accounts"
	accounts, err := fetchAll[metadomain.AdAccount](ctx, c, c.endpoint(path, c.listParams(accessToken, adAccountFields)))
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao listar contas do business %s", businessID)
	}
	return accounts, nil
}
