package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/traffic-balance-monitor/internal/domain"
)

func TestAlertRepository_HasRecentAlert(t *testing.T) {
	since := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		count    int
		expected bool
	}{
		{name: "sem alerta na janela", count: 0, expected: false},
		{name: "com alerta na janela", count: 1, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConn(t)
			repo := NewAlertRepository(conn)

			mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(1) FROM alerts WHERE account_id = $1 AND kind = $2 AND sent_at >= $3")).
				WithArgs("acc1", domain.AlertKindLowBalance, since).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.count))

			recent, err := repo.HasRecentAlert(context.Background(), "acc1", domain.AlertKindLowBalance, since)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, recent)
		})
	}
}

func TestAlertRepository_CreateAlert(t *testing.T) {
	sentAt := time.Date(2024, 5, 1, 23, 30, 0, 0, time.FixedZone("BRT", -3*3600))
	alert := &domain.Alert{
		ID:        "al1",
		TenantID:  2,
		AccountID: "acc1",
		Kind:      domain.AlertKindLowBalance,
		Title:     "Saldo baixo",
		Message:   "msg",
		SentAt:    sentAt,
	}

	t.Run("grava o alerta com o dia em UTC", func(t *testing.T) {
		conn, mock := newMockConn(t)
		repo := NewAlertRepository(conn)

		mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (account_id, kind, sent_day) DO NOTHING RETURNING id")).
			WithArgs("al1", 2, "acc1", domain.AlertKindLowBalance, "Saldo baixo", "msg", false, sentAt, "2024-05-02").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("al1"))

		assert.NoError(t, repo.CreateAlert(context.Background(), alert))
	})

	t.Run("conflito no índice diário vira ErrDuplicateAlert", func(t *testing.T) {
		conn, mock := newMockConn(t)
		repo := NewAlertRepository(conn)

		mock.ExpectQuery("INSERT INTO alerts").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		assert.ErrorIs(t, repo.CreateAlert(context.Background(), alert), ErrDuplicateAlert)
	})
}

func TestAlertRepository_ListAlerts(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewAlertRepository(conn)
	sentAt := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE al.tenant_id = $1 AND al.is_read = $2 ORDER BY al.sent_at DESC LIMIT 10")).
		WithArgs(4, false).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "account_id", "kind", "title", "message", "is_read", "sent_at", "name"}).
			AddRow("al1", 4, "acc1", "low_balance", "t", "m", false, sentAt, "Conta 1").
			AddRow("al2", 4, "acc2", "token_expiry", "t", "m", false, sentAt, nil))

	alerts, err := repo.ListAlerts(context.Background(), domain.AlertFilter{TenantID: 4, UnreadOnly: true, Limit: 10})
	require.NoError(t, err)
	require.Len(t, alerts, 2)
	assert.Equal(t, "Conta 1", *alerts[0].AccountName)
	assert.Nil(t, alerts[1].AccountName)
	assert.Equal(t, domain.AlertKindTokenExpiry, alerts[1].Kind)
}

func TestAlertRepository_MarkAsReadAndDelete(t *testing.T) {
	ctx := context.Background()
	conn, mock := newMockConn(t)
	repo := NewAlertRepository(conn)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE alerts SET is_read = $1 WHERE id = $2 AND tenant_id = $3")).
		WithArgs(true, "al1", 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM alerts WHERE id = $1 AND tenant_id = $2")).
		WithArgs("al404", 1).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM alerts WHERE tenant_id = $1")).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 5))

	assert.NoError(t, repo.MarkAsRead(ctx, 1, "al1"))
	assert.ErrorIs(t, repo.DeleteAlert(ctx, 1, "al404"), ErrNotFound)

	deleted, err := repo.DeleteAllAlerts(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(5), deleted)
}
