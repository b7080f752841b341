package account

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/traffic-balance-monitor/infrastructure/repository"
	"github.com/vfg2006/traffic-balance-monitor/internal/domain"
	"github.com/vfg2006/traffic-balance-monitor/pkg/apiErrors"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks
type AccountService interface {
	ListAccounts(ctx context.Context, filter domain.AccountFilter) ([]*domain.AdAccountResponse, error)
	UpdateAccount(ctx context.Context, request *domain.UpdateAdAccountRequest) (*domain.AdAccountResponse, error)
	DeleteAccount(ctx context.Context, tenantID int, accountID string) error

	CreateClient(ctx context.Context, client *domain.Client) (*domain.Client, error)
	ListClients(ctx context.Context, tenantID int) ([]*domain.Client, error)
	UpdateClient(ctx context.Context, request *domain.UpdateClientRequest) (*domain.Client, error)
	DeleteClient(ctx context.Context, tenantID int, clientID string) error
}

type Service struct {
	accountRepository repository.AccountRepository
	clientRepository  repository.ClientRepository
}

func NewService(
	accountRepository repository.AccountRepository,
	clientRepository repository.ClientRepository,
) AccountService {
	return &Service{
		accountRepository: accountRepository,
		clientRepository:  clientRepository,
	}
}

func (s *Service) ListAccounts(ctx context.Context, filter domain.AccountFilter) ([]*domain.AdAccountResponse, error) {
	accounts, err := s.accountRepository.ListAccounts(ctx, filter)
	if err != nil {
		logrus.WithField("tenant_id", filter.TenantID).WithError(err).Error("Erro ao listar contas")
		return nil, NewAccountError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, "Falha ao listar contas no banco de dados")
	}

	// Transforma os accounts para o formato de resposta da API
	response := make([]*domain.AdAccountResponse, 0, len(accounts))
	for _, account := range accounts {
		response = append(response, domain.NewAdAccountResponse(account))
	}

	return response, nil
}

func (s *Service) UpdateAccount(ctx context.Context, request *domain.UpdateAdAccountRequest) (*domain.AdAccountResponse, error) {
	if request.ID == "" {
		return nil, NewAccountError(ErrAccountIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	if request.AlertThreshold != nil && *request.AlertThreshold < 0 {
		return nil, NewAccountErrorWithID(ErrInvalidThreshold, apiErrors.ErrInvalidRequest, request.ID, "")
	}

	if request.Status != nil &&
		*request.Status != domain.AdAccountStatusActive &&
		*request.Status != domain.AdAccountStatusInactive {
		return nil, NewAccountErrorWithID(ErrInvalidStatus, apiErrors.ErrInvalidRequest, request.ID, string(*request.Status))
	}

	// Vincular a um cliente exige que ele pertença ao mesmo tenant
	if request.ClientID != nil && *request.ClientID != "" {
		client, err := s.clientRepository.GetClientByID(ctx, request.TenantID, *request.ClientID)
		if err != nil {
			logrus.WithField("client_id", *request.ClientID).WithError(err).Error("Erro ao buscar cliente")
			return nil, NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, request.ID, err.Error())
		}

		if client == nil {
			return nil, NewAccountErrorWithID(ErrClientNotFound, apiErrors.ErrResourceNotFound, request.ID, *request.ClientID)
		}
	}

	if err := s.accountRepository.UpdateAccount(ctx, request); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrResourceNotFound, request.ID, "Conta não encontrada")
		}

		logrus.WithField("account_id", request.ID).WithError(err).Error("Erro ao atualizar conta")
		return nil, NewAccountErrorWithID(ErrUpdateAccount, apiErrors.ErrDatabaseOperation, request.ID, "Falha ao atualizar conta no banco de dados")
	}

	account, err := s.accountRepository.GetAccountByID(ctx, request.TenantID, request.ID)
	if err != nil {
		return nil, NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, request.ID, err.Error())
	}

	if account == nil {
		return nil, NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrResourceNotFound, request.ID, "Conta não encontrada")
	}

	return domain.NewAdAccountResponse(account), nil
}

func (s *Service) DeleteAccount(ctx context.Context, tenantID int, accountID string) error {
	err := s.accountRepository.DeleteAccount(ctx, tenantID, accountID)
	if err == nil {
		logrus.WithFields(logrus.Fields{
			"tenant_id":  tenantID,
			"account_id": accountID,
		}).Info("Conta removida")
		return nil
	}

	if errors.Is(err, repository.ErrNotFound) {
		return NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrResourceNotFound, accountID, "")
	}

	logrus.WithField("account_id", accountID).WithError(err).Error("Erro ao remover conta")
	return NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, accountID, err.Error())
}
