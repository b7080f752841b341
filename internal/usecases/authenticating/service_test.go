package authenticating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/traffic-balance-monitor/infrastructure/repository/mocks"
	"github.com/vfg2006/traffic-balance-monitor/internal/domain"
	"github.com/vfg2006/traffic-balance-monitor/pkg/apiErrors"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T, now time.Time) (*Service, *mocks.MockUserRepository) {
	repo := mocks.NewMockUserRepository(gomock.NewController(t))
	return &Service{
		userRepo:  repo,
		secretKey: "test-secret",
		now:       func() time.Time { return now },
	}, repo
}

func hashed(t *testing.T, password string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestCreateUser(t *testing.T) {
	now := time.Now()

	t.Run("normaliza email e ativa usuário", func(t *testing.T) {
		service, repo := newTestService(t, now)

		repo.EXPECT().GetUserByEmail(gomock.Any(), "ana@agencia.com").Return(nil, nil)
		repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
			assert.True(t, user.Active)
			assert.Equal(t, domain.RoleOperator, user.RoleID)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Senha123")))
			user.ID = 10
			return user, nil
		})

		user, err := service.CreateUser(context.Background(), &domain.User{
			Name:         "Ana",
			Lastname:     "Souza",
			Email:        " Ana@Agencia.com ",
			PasswordHash: "Senha123",
		})
		require.NoError(t, err)
		assert.Equal(t, 10, user.ID)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("email já cadastrado", func(t *testing.T) {
		service, repo := newTestService(t, now)

		repo.EXPECT().GetUserByEmail(gomock.Any(), "ana@agencia.com").Return(&domain.User{ID: 1}, nil)

		_, err := service.CreateUser(context.Background(), &domain.User{Name: "Ana", Lastname: "Souza", Email: "ana@agencia.com", PasswordHash: "Senha123"})
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("senha fraca", func(t *testing.T) {
		service, _ := newTestService(t, now)

		_, err := service.CreateUser(context.Background(), &domain.User{Name: "Ana", Lastname: "Souza", Email: "ana@agencia.com", PasswordHash: "senha"})
		assert.ErrorIs(t, err, ErrWeakPassword)
	})
}

func TestLoginAndValidateToken(t *testing.T) {
	now := time.Date(2024, 5, 8, 12, 0, 0, 0, time.UTC)
	service, repo := newTestService(t, now)

	repo.EXPECT().GetUserByEmail(gomock.Any(), "ana@agencia.com").Return(&domain.User{
		ID:           42,
		Name:         "Ana",
		Email:        "ana@agencia.com",
		PasswordHash: hashed(t, "Senha123"),
		Active:       true,
		RoleID:       domain.RoleAdmin,
	}, nil)

	token, err := service.LoginUser(context.Background(), "ana@agencia.com", "Senha123")
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.TenantID())
	assert.Equal(t, domain.RoleAdmin, claims.UserRoleID)

	later := &Service{secretKey: "test-secret", now: func() time.Time { return now.Add(25 * time.Hour) }}
	_, err = later.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)

	other := &Service{secretKey: "outra-chave", now: func() time.Time { return now }}
	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLoginUserFailures(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		user     *domain.User
		repoErr  error
		wantErr  error
		wantCode string
	}{
		{"não encontrado", nil, nil, ErrUserNotFound, apiErrors.ErrUserNotFound},
		{"desativado", &domain.User{ID: 1, Active: false}, nil, ErrUserDisabled, apiErrors.ErrUserDisabled},
		{"senha incorreta", &domain.User{ID: 1, Active: true, PasswordHash: hashed(t, "Outra123")}, nil, ErrInvalidCredentials, apiErrors.ErrInvalidCredentials},
		{"erro de banco", nil, errors.New("down"), ErrDatabaseOperation, apiErrors.ErrDatabaseOperation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newTestService(t, now)
			repo.EXPECT().GetUserByEmail(gomock.Any(), "ana@agencia.com").Return(tt.user, tt.repoErr)

			_, err := service.LoginUser(context.Background(), "ana@agencia.com", "Senha123")
			require.ErrorIs(t, err, tt.wantErr)

			var authErr *AuthError
			require.True(t, errors.As(err, &authErr))
			assert.Equal(t, tt.wantCode, authErr.APICode())
		})
	}
}

func TestValidatePasswordStrength(t *testing.T) {
	service := &Service{}

	assert.NoError(t, service.ValidatePasswordStrength("Senha123"))
	assert.Error(t, service.ValidatePasswordStrength("Curta1"))
	assert.Error(t, service.ValidatePasswordStrength("semmaiuscula1"))
	assert.Error(t, service.ValidatePasswordStrength("SEMMINUSCULA1"))
	assert.Error(t, service.ValidatePasswordStrength("SemNumeros"))
}
