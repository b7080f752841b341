package account

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/traffic-balance-monitor/infrastructure/repository"
	"github.com/vfg2006/traffic-balance-monitor/internal/domain"
	"github.com/vfg2006/traffic-balance-monitor/pkg/apiErrors"
	"github.com/vfg2006/traffic-balance-monitor/pkg/utils"
)

func (s *Service) CreateClient(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	client.Name = strings.TrimSpace(client.Name)
	if client.Name == "" {
		return nil, NewAccountError(ErrClientNameRequired, apiErrors.ErrMissingRequiredData, "")
	}

	clientID, err := utils.GenerateID()
	if err != nil {
		return nil, NewAccountError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para cliente")
	}
	client.ID = clientID

	if err := s.clientRepository.CreateClient(ctx, client); err != nil {
		logrus.WithField("tenant_id", client.TenantID).WithError(err).Error("Erro ao criar cliente")
		return nil, NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, client.ID, err.Error())
	}

	return client, nil
}

func (s *Service) ListClients(ctx context.Context, tenantID int) ([]*domain.Client, error) {
	clients, err := s.clientRepository.ListClients(ctx, tenantID)
	if err != nil {
		logrus.WithField("tenant_id", tenantID).WithError(err).Error("Erro ao listar clientes")
		return nil, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return clients, nil
}

func (s *Service) UpdateClient(ctx context.Context, request *domain.UpdateClientRequest) (*domain.Client, error) {
	if request.Name != nil {
		name := strings.TrimSpace(*request.Name)
		if name == "" {
			return nil, NewAccountErrorWithID(ErrClientNameRequired, apiErrors.ErrMissingRequiredData, request.ID, "")
		}
		request.Name = &name
	}

	if err := s.clientRepository.UpdateClient(ctx, request); err != nil {
		return nil, clientError(request.ID, err)
	}

	client, err := s.clientRepository.GetClientByID(ctx, request.TenantID, request.ID)
	if err != nil {
		return nil, clientError(request.ID, err)
	}

	if client == nil {
		return nil, NewAccountErrorWithID(ErrClientNotFound, apiErrors.ErrResourceNotFound, request.ID, "")
	}

	return client, nil
}

// DeleteClient remove o cliente; as contas vinculadas ficam sem cliente
func (s *Service) DeleteClient(ctx context.Context, tenantID int, clientID string) error {
	return clientError(clientID, s.clientRepository.DeleteClient(ctx, tenantID, clientID))
}

func clientError(clientID string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, repository.ErrNotFound) {
		return NewAccountErrorWithID(ErrClientNotFound, apiErrors.ErrResourceNotFound, clientID, "")
	}

	logrus.WithField("client_id", clientID).WithError(err).Error("Erro ao atualizar cliente")
	return NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, clientID, err.Error())
}
