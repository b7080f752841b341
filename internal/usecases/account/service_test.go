package account

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/traffic-balance-monitor/infrastructure/repository"
	"github.com/vfg2006/traffic-balance-monitor/infrastructure/repository/mocks"
	"github.com/vfg2006/traffic-balance-monitor/internal/domain"
	"github.com/vfg2006/traffic-balance-monitor/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*Service, *mocks.MockAccountRepository, *mocks.MockClientRepository) {
	ctrl := gomock.NewController(t)
	accounts := mocks.NewMockAccountRepository(ctrl)
	clients := mocks.NewMockClientRepository(ctrl)

	return &Service{accountRepository: accounts, clientRepository: clients}, accounts, clients
}

func apiCode(t *testing.T, err error) string {
	t.Helper()

	var accountErr *AccountError
	require.True(t, errors.As(err, &accountErr), "esperava AccountError, recebeu %v", err)
	return accountErr.APICode()
}

func TestListAccounts(t *testing.T) {
	service, accounts, _ := newTestService(t)

	filter := domain.AccountFilter{TenantID: 1}
	accounts.EXPECT().ListAccounts(gomock.Any(), filter).Return([]*domain.AdAccount{
		{ID: "a1", Name: "Loja", Balance: decimal.RequireFromString("3890.75"), AlertEnabled: true},
	}, nil)

	response, err := service.ListAccounts(context.Background(), filter)
	require.NoError(t, err)
	require.Len(t, response, 1)
	assert.Equal(t, "3.890,75", response[0].Balance)
	assert.Equal(t, domain.DefaultAlertThreshold, response[0].AlertThreshold)

	accounts.EXPECT().ListAccounts(gomock.Any(), filter).Return(nil, errors.New("timeout"))
	_, err = service.ListAccounts(context.Background(), filter)
	assert.ErrorIs(t, err, ErrFetchAccounts)
	assert.Equal(t, apiErrors.ErrDatabaseOperation, apiCode(t, err))
}

func TestUpdateAccountValidation(t *testing.T) {
	service, _, _ := newTestService(t)

	negative := -1.0
	unknown := domain.AdAccountStatus("paused")

	tests := []struct {
		name    string
		request *domain.UpdateAdAccountRequest
		wantErr error
	}{
		{"sem id", &domain.UpdateAdAccountRequest{}, ErrAccountIDRequired},
		{"limite negativo", &domain.UpdateAdAccountRequest{ID: "a1", AlertThreshold: &negative}, ErrInvalidThreshold},
		{"status desconhecido", &domain.UpdateAdAccountRequest{ID: "a1", Status: &unknown}, ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.UpdateAccount(context.Background(), tt.request)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUpdateAccountClientLink(t *testing.T) {
	t.Run("cliente de outro tenant", func(t *testing.T) {
		service, _, clients := newTestService(t)

		clientID := "c9"
		clients.EXPECT().GetClientByID(gomock.Any(), 1, "c9").Return(nil, nil)

		_, err := service.UpdateAccount(context.Background(), &domain.UpdateAdAccountRequest{ID: "a1", TenantID: 1, ClientID: &clientID})
		assert.ErrorIs(t, err, ErrClientNotFound)
		assert.Equal(t, apiErrors.ErrResourceNotFound, apiCode(t, err))
	})

	t.Run("desvincular não consulta cliente", func(t *testing.T) {
		service, accounts, _ := newTestService(t)

		empty := ""
		request := &domain.UpdateAdAccountRequest{ID: "a1", TenantID: 1, ClientID: &empty}
		accounts.EXPECT().UpdateAccount(gomock.Any(), request).Return(nil)
		accounts.EXPECT().GetAccountByID(gomock.Any(), 1, "a1").Return(&domain.AdAccount{ID: "a1", Name: "Loja"}, nil)

		response, err := service.UpdateAccount(context.Background(), request)
		require.NoError(t, err)
		assert.Nil(t, response.ClientID)
	})

	t.Run("vincula e devolve a conta atualizada", func(t *testing.T) {
		service, accounts, clients := newTestService(t)

		clientID := "c1"
		threshold := 250.0
		request := &domain.UpdateAdAccountRequest{ID: "a1", TenantID: 1, ClientID: &clientID, AlertThreshold: &threshold}

		clients.EXPECT().GetClientByID(gomock.Any(), 1, "c1").Return(&domain.Client{ID: "c1"}, nil)
		accounts.EXPECT().UpdateAccount(gomock.Any(), request).Return(nil)
		accounts.EXPECT().GetAccountByID(gomock.Any(), 1, "a1").Return(&domain.AdAccount{
			ID:             "a1",
			ClientID:       &clientID,
			AlertThreshold: decimal.NewFromInt(250),
		}, nil)

		response, err := service.UpdateAccount(context.Background(), request)
		require.NoError(t, err)
		assert.Equal(t, "c1", *response.ClientID)
		assert.Equal(t, 250.0, response.AlertThreshold)
	})
}

func TestDeleteAccount(t *testing.T) {
	service, accounts, _ := newTestService(t)

	accounts.EXPECT().DeleteAccount(gomock.Any(), 1, "a1").Return(nil)
	accounts.EXPECT().DeleteAccount(gomock.Any(), 1, "a2").Return(repository.ErrNotFound)

	assert.NoError(t, service.DeleteAccount(context.Background(), 1, "a1"))
	assert.ErrorIs(t, service.DeleteAccount(context.Background(), 1, "a2"), ErrAccountNotFound)
}

func TestClients(t *testing.T) {
	t.Run("cria com id gerado", func(t *testing.T) {
		service, _, clients := newTestService(t)

		clients.EXPECT().CreateClient(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, client *domain.Client) error {
			assert.Len(t, client.ID, 12)
			assert.Equal(t, "Ótica Centro", client.Name)
			return nil
		})

		client, err := service.CreateClient(context.Background(), &domain.Client{TenantID: 1, Name: "  Ótica Centro ", EnableBalanceCheck: true})
		require.NoError(t, err)
		assert.True(t, client.EnableBalanceCheck)
	})

	t.Run("nome obrigatório", func(t *testing.T) {
		service, _, _ := newTestService(t)

		_, err := service.CreateClient(context.Background(), &domain.Client{TenantID: 1, Name: " "})
		assert.ErrorIs(t, err, ErrClientNameRequired)
	})

	t.Run("atualiza opt-out", func(t *testing.T) {
		service, _, clients := newTestService(t)

		disabled := false
		request := &domain.UpdateClientRequest{ID: "c1", TenantID: 1, EnableBalanceCheck: &disabled}
		clients.EXPECT().UpdateClient(gomock.Any(), request).Return(nil)
		clients.EXPECT().GetClientByID(gomock.Any(), 1, "c1").Return(&domain.Client{ID: "c1", EnableBalanceCheck: false}, nil)

		client, err := service.UpdateClient(context.Background(), request)
		require.NoError(t, err)
		assert.False(t, client.EnableBalanceCheck)
	})

	t.Run("remove inexistente", func(t *testing.T) {
		service, _, clients := newTestService(t)

		clients.EXPECT().DeleteClient(gomock.Any(), 1, "c1").Return(repository.ErrNotFound)

		err := service.DeleteClient(context.Background(), 1, "c1")
		assert.ErrorIs(t, err, ErrClientNotFound)
		assert.Equal(t, apiErrors.ErrResourceNotFound, apiCode(t, err))
	})
}
