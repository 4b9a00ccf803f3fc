package permissionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/roomdesk/roomdesk/internal/domain"
	"github.com/roomdesk/roomdesk/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func TestRepository_GetChannelPermission(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		agentID   int
		channel   domain.Channel
		mockSetup func()
		expectErr bool
		result    *domain.ChannelPermission
	}{
		{
			name:    "Existing permission is returned",
			agentID: 7,
			channel: domain.ChannelPlatinum,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"agent_id", "channel", "allowed", "daily_limit", "quota_balance"}).
					AddRow(7, "PLATINUM", true, -1, 20)
				mock.ExpectQuery("SELECT agent_id, channel, allowed, daily_limit, quota_balance").
					WithArgs(7, "PLATINUM").
					WillReturnRows(rows)
			},
			result: &domain.ChannelPermission{
				AgentID:      7,
				Channel:      domain.ChannelPlatinum,
				Allowed:      true,
				DailyLimit:   domain.Unlimited,
				QuotaBalance: 20,
			},
		},
		{
			name:    "Missing permission returns nil",
			agentID: 99,
			channel: domain.ChannelNewUser,
			mockSetup: func() {
				mock.ExpectQuery("SELECT agent_id, channel, allowed, daily_limit, quota_balance").
					WithArgs(99, "NEW_USER").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:    "Database error",
			agentID: 7,
			channel: domain.ChannelPlatinum,
			mockSetup: func() {
				mock.ExpectQuery("SELECT agent_id, channel, allowed, daily_limit, quota_balance").
					WithArgs(7, "PLATINUM").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetChannelPermission(context.Background(), tt.agentID, tt.channel)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_DecrementChannelQuota(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		consumed  bool
	}{
		{
			name: "Positive balance decrements",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        UPDATE channel_permissions
        SET quota_balance = CASE WHEN quota_balance > 0 THEN quota_balance - 1 ELSE quota_balance END
        WHERE agent_id = $1 AND channel = $2 AND (quota_balance > 0 OR quota_balance = -1)
        RETURNING quota_balance`)).
					WithArgs(7, "PLATINUM").
					WillReturnRows(pgxmock.NewRows([]string{"quota_balance"}).AddRow(19))
			},
			consumed: true,
		},
		{
			name: "Unlimited balance is never exhausted",
			mockSetup: func() {
				mock.ExpectQuery("UPDATE channel_permissions").
					WithArgs(7, "PLATINUM").
					WillReturnRows(pgxmock.NewRows([]string{"quota_balance"}).AddRow(-1))
			},
			consumed: true,
		},
		{
			name: "Zero balance matches no row and spends nothing",
			mockSetup: func() {
				mock.ExpectQuery("UPDATE channel_permissions").
					WithArgs(7, "PLATINUM").
					WillReturnError(pgx.ErrNoRows)
			},
			consumed: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery("UPDATE channel_permissions").
					WithArgs(7, "PLATINUM").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			consumed, err := repo.DecrementChannelQuota(context.Background(), 7, domain.ChannelPlatinum)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.consumed, consumed)
		})
	}
}

func TestRepository_DecrementOverrideQuota(t *testing.T) {
	repo, mock, _ := NewMock(t)

	t.Run("Positive balance decrements", func(t *testing.T) {
		mock.ExpectQuery("UPDATE agreement_overrides").
			WithArgs(7, 3).
			WillReturnRows(pgxmock.NewRows([]string{"quota_balance"}).AddRow(9))

		consumed, err := repo.DecrementOverrideQuota(context.Background(), 7, 3)
		assert.NoError(t, err)
		assert.True(t, consumed)
	})

	t.Run("Exhausted balance spends nothing", func(t *testing.T) {
		mock.ExpectQuery("UPDATE agreement_overrides").
			WithArgs(7, 3).
			WillReturnError(pgx.ErrNoRows)

		consumed, err := repo.DecrementOverrideQuota(context.Background(), 7, 3)
		assert.NoError(t, err)
		assert.False(t, consumed)
	})
}

func TestRepository_CreditChannelQuota(t *testing.T) {
	repo, mock, _ := NewMock(t)

	t.Run("Credits a finite balance", func(t *testing.T) {
		mock.ExpectExec("UPDATE channel_permissions").
			WithArgs(7, "CORPORATE", 10).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.CreditChannelQuota(context.Background(), 7, domain.ChannelCorporate, 10)
		assert.NoError(t, err)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec("UPDATE channel_permissions").
			WithArgs(7, "CORPORATE", 10).
			WillReturnError(errors.New("database error"))

		err := repo.CreditChannelQuota(context.Background(), 7, domain.ChannelCorporate, 10)
		assert.Error(t, err)
	})
}

func TestRepository_UpsertChannelPermission(t *testing.T) {
	repo, mock, tx := NewMock(t)

	perm := &domain.ChannelPermission{
		AgentID:      7,
		Channel:      domain.ChannelNewUser,
		Allowed:      true,
		DailyLimit:   2,
		QuotaBalance: 5,
	}

	t.Run("Upserts inside a transaction", func(t *testing.T) {
		tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			mock.ExpectExec("INSERT INTO channel_permissions").
				WithArgs(7, "NEW_USER", true, 2, 5).
				WillReturnResult(pgxmock.NewResult("INSERT", 1))
			return fn(ctx)
		})

		err := repo.UpsertChannelPermission(context.Background(), perm)
		assert.NoError(t, err)
	})

	t.Run("Database error", func(t *testing.T) {
		tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			mock.ExpectExec("INSERT INTO channel_permissions").
				WithArgs(7, "NEW_USER", true, 2, 5).
				WillReturnError(errors.New("database error"))
			return fn(ctx)
		})

		err := repo.UpsertChannelPermission(context.Background(), perm)
		assert.Error(t, err)
	})
}

func TestRepository_UpsertOverride(t *testing.T) {
	repo, mock, tx := NewMock(t)

	limit := 2
	quota := 10
	override := &domain.AgreementOverride{
		AgentID:      7,
		AgreementID:  3,
		DailyLimit:   &limit,
		QuotaBalance: &quota,
	}

	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
		mock.ExpectExec("INSERT INTO agreement_overrides").
			WithArgs(7, 3, &limit, &quota).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		return fn(ctx)
	})

	err := repo.UpsertOverride(context.Background(), override)
	assert.NoError(t, err)
}
