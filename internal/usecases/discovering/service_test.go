package discovering

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	integratormocks "github.com/vfg2006/traffic-balance-monitor/infrastructure/integrator/mocks"
	"github.com/vfg2006/traffic-balance-monitor/infrastructure/repository/mocks"
	"github.com/vfg2006/traffic-balance-monitor/internal/domain"
	"github.com/vfg2006/traffic-balance-monitor/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo    *mocks.MockAccountRepository
	meta    *integratormocks.MockMetaIntegrator
	google  *integratormocks.MockGoogleIntegrator
	service *Service
	now     time.Time
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		repo:   mocks.NewMockAccountRepository(ctrl),
		meta:   integratormocks.NewMockMetaIntegrator(ctrl),
		google: integratormocks.NewMockGoogleIntegrator(ctrl),
		now:    time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC),
	}
	f.service = &Service{
		accountRepository: f.repo,
		meta:              f.meta,
		google:            f.google,
		now:               func() time.Time { return f.now },
	}
	return f
}

func strPtr(s string) *string { return &s }

func TestResolveName(t *testing.T) {
	tests := []struct {
		name       string
		platform   domain.Platform
		discovered domain.DiscoveredAccount
		want       string
	}{
		{"nome da plataforma", domain.PlatformMeta, domain.DiscoveredAccount{ExternalID: "act_1", Name: "Loja Centro"}, "Loja Centro"},
		{"sem nome meta", domain.PlatformMeta, domain.DiscoveredAccount{ExternalID: "act_1"}, "Meta - act_1"},
		{"sem nome google", domain.PlatformGoogle, domain.DiscoveredAccount{ExternalID: "123"}, "Google Ads - 123"},
		{"mcc", domain.PlatformGoogle, domain.DiscoveredAccount{ExternalID: "100", Name: "Agência", IsManager: true}, "Agência (MCC)"},
		{"mcc sem nome", domain.PlatformGoogle, domain.DiscoveredAccount{ExternalID: "100", IsManager: true}, "Google Ads - 100 (MCC)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveName(tt.platform, tt.discovered))
		})
	}
}

func TestConnectMeta(t *testing.T) {
	f := newFixture(t)
	expiresAt := f.now.Add(60 * 24 * time.Hour)

	f.meta.EXPECT().Configured().Return(true)
	f.meta.EXPECT().ExchangeToken(gomock.Any(), "short").Return(&domain.AccessGrant{AccessToken: "long", ExpiresAt: expiresAt}, nil)
	f.meta.EXPECT().DiscoverAccounts(gomock.Any(), domain.PlatformAccess{AccessToken: "long"}).Return(&domain.DiscoveryOutcome{
		Accounts: []domain.DiscoveredAccount{
			{ExternalID: "act_1", Name: "Loja Centro", Active: true, Currency: "BRL"},
			{ExternalID: "act_2", Active: false, ParentExternalID: strPtr("bm_1")},
		},
		Errors: []domain.DiscoveryError{{ExternalID: "bm_2", Error: "permissão negada"}},
	}, nil)

	f.repo.EXPECT().UpsertAccounts(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, accounts []*domain.AdAccount) error {
		require.Len(t, accounts, 2)
		for _, account := range accounts {
			assert.NotEmpty(t, account.ID)
			assert.Equal(t, 7, account.TenantID)
			assert.Equal(t, domain.PlatformMeta, account.Platform)
			assert.Equal(t, "long", account.AccessToken)
			assert.Equal(t, expiresAt, *account.TokenExpiresAt)
			assert.Nil(t, account.Credential)
			assert.True(t, account.AlertEnabled)
			assert.Equal(t, domain.DefaultAlertThreshold, account.Threshold())
			assert.Equal(t, f.now, *account.LastSyncAt)
		}
		assert.Equal(t, domain.AdAccountStatusActive, accounts[0].Status)
		assert.Equal(t, "Meta - act_2", accounts[1].Name)
		assert.Equal(t, domain.AdAccountStatusInactive, accounts[1].Status)
		return nil
	})

	result, err := f.service.ConnectMeta(context.Background(), 7, " short ")
	require.NoError(t, err)
	assert.Len(t, result.Accounts, 2)
	assert.Equal(t, "2 contas do Meta conectadas com sucesso", result.Message)
	assert.Len(t, result.Errors, 1)
}

func TestConnectMetaErrors(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		setup    func(f *fixture)
		wantErr  error
		wantCode string
	}{
		{
			name:     "token ausente",
			token:    "  ",
			setup:    func(f *fixture) {},
			wantErr:  ErrMissingCredential,
			wantCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:  "aplicação não configurada",
			token: "short",
			setup: func(f *fixture) {
				f.meta.EXPECT().Configured().Return(false)
			},
			wantErr:  domain.ErrPlatformNotConfigured,
			wantCode: apiErrors.ErrPlatformNotConfigured,
		},
		{
			name:  "token expirado na descoberta",
			token: "short",
			setup: func(f *fixture) {
				f.meta.EXPECT().Configured().Return(true)
				f.meta.EXPECT().ExchangeToken(gomock.Any(), "short").Return(&domain.AccessGrant{AccessToken: "short"}, nil)
				f.meta.EXPECT().DiscoverAccounts(gomock.Any(), gomock.Any()).Return(nil, domain.ErrTokenExpired)
			},
			wantErr:  domain.ErrTokenExpired,
			wantCode: apiErrors.ErrPlatformToken,
		},
		{
			name:  "nenhuma conta",
			token: "short",
			setup: func(f *fixture) {
				f.meta.EXPECT().Configured().Return(true)
				f.meta.EXPECT().ExchangeToken(gomock.Any(), "short").Return(&domain.AccessGrant{AccessToken: "short"}, nil)
				f.meta.EXPECT().DiscoverAccounts(gomock.Any(), gomock.Any()).Return(&domain.DiscoveryOutcome{}, nil)
			},
			wantErr:  ErrNoAccountsFound,
			wantCode: apiErrors.ErrNoAccountsFound,
		},
		{
			name:  "falha ao salvar",
			token: "short",
			setup: func(f *fixture) {
				f.meta.EXPECT().Configured().Return(true)
				f.meta.EXPECT().ExchangeToken(gomock.Any(), "short").Return(&domain.AccessGrant{AccessToken: "short"}, nil)
				f.meta.EXPECT().DiscoverAccounts(gomock.Any(), gomock.Any()).Return(&domain.DiscoveryOutcome{
					Accounts: []domain.DiscoveredAccount{{ExternalID: "act_1", Active: true}},
				}, nil)
				f.repo.EXPECT().UpsertAccounts(gomock.Any(), gomock.Any()).Return(errors.New("database down"))
			},
			wantErr:  ErrSaveAccounts,
			wantCode: apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			result, err := f.service.ConnectMeta(context.Background(), 7, tt.token)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.wantErr)

			var connectErr *ConnectError
			require.ErrorAs(t, err, &connectErr)
			assert.Equal(t, tt.wantCode, connectErr.Code)
		})
	}
}

func TestConnectGoogleStoresParentManagerOnCredential(t *testing.T) {
	f := newFixture(t)
	credential := &domain.Credential{RefreshToken: "refresh", ClientID: "client", ClientSecret: "secret"}

	f.google.EXPECT().Configured().Return(true)
	f.google.EXPECT().RefreshAccessToken(gomock.Any(), credential).Return(&domain.AccessGrant{AccessToken: "access", ExpiresAt: f.now.Add(time.Hour)}, nil)
	f.google.EXPECT().DiscoverAccounts(gomock.Any(), domain.PlatformAccess{AccessToken: "access", Credential: credential}).Return(&domain.DiscoveryOutcome{
		Accounts: []domain.DiscoveredAccount{
			{ExternalID: "100", Name: "Agência", IsManager: true, Active: true},
			{ExternalID: "200", Name: "Loja A", ParentExternalID: strPtr("100"), Active: true},
		},
	}, nil)

	f.repo.EXPECT().UpsertAccounts(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, accounts []*domain.AdAccount) error {
		require.Len(t, accounts, 2)
		assert.Equal(t, "Agência (MCC)", accounts[0].Name)
		assert.True(t, accounts[0].IsManager)
		assert.Nil(t, accounts[0].Credential.ParentManagerID)

		require.NotNil(t, accounts[1].Credential.ParentManagerID)
		assert.Equal(t, "100", *accounts[1].Credential.ParentManagerID)
		assert.Equal(t, "refresh", accounts[1].Credential.RefreshToken)
		return nil
	})

	result, err := f.service.ConnectGoogle(context.Background(), 7, credential)
	require.NoError(t, err)
	assert.Len(t, result.Accounts, 2)
	assert.Nil(t, credential.ParentManagerID)
}

func TestConnectGoogleMissingCredential(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.ConnectGoogle(context.Background(), 7, &domain.Credential{RefreshToken: "refresh"})
	assert.ErrorIs(t, err, ErrMissingCredential)
}
