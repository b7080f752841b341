package webhooking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/traffic-balance-monitor/infrastructure/repository"
	"github.com/vfg2006/traffic-balance-monitor/infrastructure/repository/mocks"
	"github.com/vfg2006/traffic-balance-monitor/internal/domain"
	"github.com/vfg2006/traffic-balance-monitor/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		url     string
		wantErr bool
	}{
		{"https://hooks.example.com/balance", false},
		{"http://localhost:8080/hook", false},
		{"", true},
		{"ftp://example.com", true},
		{"hooks.example.com/path", true},
		{"https://", true},
		{"://bad", true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			err := ValidateURL(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateWebhook(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockWebhookRepository(ctrl)
	service := NewService(repo)

	var createdID string
	repo.EXPECT().CreateWebhook(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, webhook *domain.WebhookIntegration) error {
		assert.NotEmpty(t, webhook.ID)
		assert.Equal(t, "Slack", webhook.Name)
		assert.Equal(t, "https://hooks.example.com/a", webhook.URL)
		createdID = webhook.ID
		return nil
	})
	repo.EXPECT().GetWebhookByID(gomock.Any(), 3, gomock.Any()).DoAndReturn(func(_ context.Context, _ int, id string) (*domain.WebhookIntegration, error) {
		assert.Equal(t, createdID, id)
		return &domain.WebhookIntegration{ID: id, TenantID: 3, Name: "Slack", IsActive: true}, nil
	})

	webhook, err := service.CreateWebhook(context.Background(), &domain.WebhookIntegration{
		TenantID:          3,
		Name:              " Slack ",
		URL:               " https://hooks.example.com/a ",
		IsActive:          true,
		TriggerLowBalance: true,
	})
	require.NoError(t, err)
	assert.Equal(t, createdID, webhook.ID)
}

func TestCreateWebhookValidation(t *testing.T) {
	service := NewService(mocks.NewMockWebhookRepository(gomock.NewController(t)))

	tests := []struct {
		name     string
		webhook  *domain.WebhookIntegration
		wantErr  error
		wantCode string
	}{
		{"sem nome", &domain.WebhookIntegration{URL: "https://a.com", TriggerReport: true}, ErrNameRequired, apiErrors.ErrMissingRequiredData},
		{"url inválida", &domain.WebhookIntegration{Name: "a", URL: "a.com", TriggerReport: true}, ErrInvalidURL, apiErrors.ErrInvalidFormat},
		{"sem eventos", &domain.WebhookIntegration{Name: "a", URL: "https://a.com"}, ErrNoTrigger, apiErrors.ErrInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateWebhook(context.Background(), tt.webhook)
			require.ErrorIs(t, err, tt.wantErr)

			var webhookErr *WebhookError
			require.True(t, errors.As(err, &webhookErr))
			assert.Equal(t, tt.wantCode, webhookErr.APICode())
		})
	}
}

func TestUpdateWebhook(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockWebhookRepository(ctrl)
	service := NewService(repo)

	t.Run("url inválida não chega ao banco", func(t *testing.T) {
		bad := "mailto:x@y.com"
		_, err := service.UpdateWebhook(context.Background(), &domain.UpdateWebhookRequest{ID: "w1", TenantID: 3, URL: &bad})
		assert.ErrorIs(t, err, ErrInvalidURL)
	})

	t.Run("não encontrado", func(t *testing.T) {
		active := false
		repo.EXPECT().UpdateWebhook(gomock.Any(), gomock.Any()).Return(repository.ErrNotFound)

		_, err := service.UpdateWebhook(context.Background(), &domain.UpdateWebhookRequest{ID: "w1", TenantID: 3, IsActive: &active})
		assert.ErrorIs(t, err, ErrWebhookNotFound)
	})

	t.Run("sucesso devolve o registro atualizado", func(t *testing.T) {
		active := false
		repo.EXPECT().UpdateWebhook(gomock.Any(), &domain.UpdateWebhookRequest{ID: "w1", TenantID: 3, IsActive: &active}).Return(nil)
		repo.EXPECT().GetWebhookByID(gomock.Any(), 3, "w1").Return(&domain.WebhookIntegration{ID: "w1", IsActive: false}, nil)

		webhook, err := service.UpdateWebhook(context.Background(), &domain.UpdateWebhookRequest{ID: "w1", TenantID: 3, IsActive: &active})
		require.NoError(t, err)
		assert.False(t, webhook.IsActive)
	})
}

func TestDeleteWebhook(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockWebhookRepository(ctrl)
	service := NewService(repo)

	repo.EXPECT().DeleteWebhook(gomock.Any(), 3, "w1").Return(nil)
	repo.EXPECT().DeleteWebhook(gomock.Any(), 3, "w2").Return(errors.New("connection reset"))

	assert.NoError(t, service.DeleteWebhook(context.Background(), 3, "w1"))

	err := service.DeleteWebhook(context.Background(), 3, "w2")
	assert.ErrorIs(t, err, ErrDatabase)
}
