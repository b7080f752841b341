package meta

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/traffic-balance-monitor/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/traffic-balance-monitor/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/traffic-balance-monitor/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/traffic-balance-monitor/internal/config"
	"github.com/vfg2006/traffic-balance-monitor/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestParseDisplayBalance(t *testing.T) {
	tests := []struct {
		display string
		want    float64
		found   bool
	}{
		{"Saldo disponível (R$3.890,75 BRL)", 3890.75, true},
		{"Saldo disponível (R$ 120,00 BRL)", 120, true},
		{"Visa *1234", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.display, func(t *testing.T) {
			got, found := ParseDisplayBalance(tt.display)
			assert.Equal(t, tt.found, found)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestSpendLimitBalance(t *testing.T) {
	assert.InDelta(t, 250.0, SpendLimitBalance(&metadomain.AdAccountSpendLimits{SpendCap: "100000", AmountSpent: "75000"}), 0.001)
	assert.InDelta(t, 0.0, SpendLimitBalance(&metadomain.AdAccountSpendLimits{SpendCap: "1000", AmountSpent: "5000"}), 0.001)
	assert.InDelta(t, 12.34, SpendLimitBalance(&metadomain.AdAccountSpendLimits{Balance: "1234"}), 0.001)
}

func TestFetchBalance(t *testing.T) {
	account := &domain.AdAccount{ID: "acc-1", ExternalID: "act_1", Status: domain.AdAccountStatusActive, Currency: "BRL"}
	access := domain.PlatformAccess{AccessToken: "token"}

	tests := []struct {
		name      string
		setup     func(client *mocks.MockClient)
		want      *domain.BalanceSnapshot
		wantErrIs error
	}{
		{
			name: "saldo de funding_source_details",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().GetFunding(gomock.Any(), "token", "act_1").Return(&metadomain.AdAccountFunding{
					AccountStatus:        metadomain.AccountStatusActive,
					Currency:             "BRL",
					FundingSourceDetails: &metadomain.FundingSourceDetails{DisplayString: "Saldo disponível (R$3.890,75 BRL)"},
				}, nil)
				client.EXPECT().GetSpend(gomock.Any(), "token", "act_1", "today").Return(150.0, nil)
			},
			want: &domain.BalanceSnapshot{Balance: "3.890,75", DailySpend: 150, Active: true, Currency: "BRL"},
		},
		{
			name: "fallback para limites e gasto de ontem",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().GetFunding(gomock.Any(), "token", "act_1").Return(nil, errors.New("boom"))
				client.EXPECT().GetSpendLimits(gomock.Any(), "token", "act_1").Return(&metadomain.AdAccountSpendLimits{
					AccountStatus: metadomain.AccountStatusDisabled,
					SpendCap:      "50000",
					AmountSpent:   "10000",
				}, nil)
				client.EXPECT().GetSpend(gomock.Any(), "token", "act_1", "today").Return(0.0, errors.New("boom"))
				client.EXPECT().GetSpend(gomock.Any(), "token", "act_1", "yesterday").Return(80.0, nil)
			},
			want: &domain.BalanceSnapshot{Balance: "400,00", DailySpend: 80, Active: false, Currency: "BRL"},
		},
		{
			name: "nenhum caminho disponível",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().GetFunding(gomock.Any(), "token", "act_1").Return(nil, errors.New("boom"))
				client.EXPECT().GetSpendLimits(gomock.Any(), "token", "act_1").Return(nil, errors.New("boom"))
				client.EXPECT().GetSpend(gomock.Any(), "token", "act_1", gomock.Any()).Return(0.0, errors.New("boom")).Times(2)
			},
			want: &domain.BalanceSnapshot{Balance: "0,00", DailySpend: 0, Active: true, Currency: "BRL"},
		},
		{
			name: "token expirado",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().GetFunding(gomock.Any(), "token", "act_1").Return(nil, errors.Wrap(domain.ErrTokenExpired, "code 190"))
			},
			wantErrIs: domain.ErrTokenExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mocks.NewMockClient(ctrl)
			tt.setup(client)

			got, err := New(config.Meta{}, client).FetchBalance(context.Background(), access, account)
			if tt.wantErrIs != nil {
				assert.ErrorIs(t, err, tt.wantErrIs)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDiscoverAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	client.EXPECT().ListAdAccounts(gomock.Any(), "token").Return([]metadomain.AdAccount{
		{ID: "act_1", Name: "Loja Centro", AccountStatus: 1},
		{ID: "act_2", Name: "", AccountStatus: 2, Business: &metadomain.Business{ID: "bm_1"}},
	}, nil)
	client.EXPECT().ListBusinesses(gomock.Any(), "token").Return([]metadomain.Business{
		{ID: "bm_1", Name: "Agência"},
		{ID: "bm_2", Name: "Parceiro"},
	}, nil)
	client.EXPECT().ListOwnedAdAccounts(gomock.Any(), "token", "bm_1").Return([]metadomain.AdAccount{
		{ID: "act_2", AccountStatus: 2},
		{ID: "act_3", Name: "Loja Norte", AccountStatus: 1},
	}, nil)
	client.EXPECT().ListOwnedAdAccounts(gomock.Any(), "token", "bm_2").Return(nil, errors.New("permissão negada"))

	outcome, err := New(config.Meta{}, client).DiscoverAccounts(context.Background(), domain.PlatformAccess{AccessToken: "token"})
	require.NoError(t, err)

	ids := make([]string, 0, len(outcome.Accounts))
	for _, account := range outcome.Accounts {
		ids = append(ids, account.ExternalID)
	}
	assert.Equal(t, []string{"act_1", "act_2", "bm_1", "act_3", "bm_2"}, ids)

	assert.False(t, outcome.Accounts[1].Active)
	require.NotNil(t, outcome.Accounts[1].ParentExternalID)
	assert.Equal(t, "bm_1", *outcome.Accounts[1].ParentExternalID)
	assert.True(t, outcome.Accounts[2].IsManager)

	require.Len(t, outcome.Errors, 1)
	assert.Equal(t, "bm_2", outcome.Errors[0].ExternalID)
}

func TestExchangeTokenFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	integrator := New(config.Meta{AppID: "app", AppSecret: "secret"}, client)
	integrator.now = func() time.Time { return now }

	client.EXPECT().ExchangeToken(gomock.Any(), "short").Return(nil, errors.New("boom"))
	grant, err := integrator.ExchangeToken(context.Background(), "short")
	require.NoError(t, err)
	assert.Equal(t, "short", grant.AccessToken)
	assert.Equal(t, now.Add(metaclient.DefaultLongLivedTTL), grant.ExpiresAt)

	client.EXPECT().ExchangeToken(gomock.Any(), "short").Return(&metaclient.TokenResponse{AccessToken: "long", ExpiresIn: 3600}, nil)
	grant, err = integrator.ExchangeToken(context.Background(), "short")
	require.NoError(t, err)
	assert.Equal(t, "long", grant.AccessToken)
	assert.Equal(t, now.Add(time.Hour), grant.ExpiresAt)
}

func TestExchangeTokenNotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)

	_, err := New(config.Meta{}, mocks.NewMockClient(ctrl)).ExchangeToken(context.Background(), "short")
	assert.ErrorIs(t, err, domain.ErrPlatformNotConfigured)
}
