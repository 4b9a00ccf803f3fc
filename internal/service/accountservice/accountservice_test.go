package accountservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/roomdesk/roomdesk/internal/domain"
)

type Mocks struct {
	accounts    *MockAccountRepo
	permissions *MockPermissionRepo
	agreements  *MockAgreementRepo
}

func NewMock(t *testing.T) (*Service, *Mocks) {
	ctrl := gomock.NewController(t)
	m := &Mocks{
		accounts:    NewMockAccountRepo(ctrl),
		permissions: NewMockPermissionRepo(ctrl),
		agreements:  NewMockAgreementRepo(ctrl),
	}
	return New(m.accounts, m.permissions, m.agreements), m
}

func intPtr(i int) *int { return &i }

func TestImportAccounts(t *testing.T) {
	ctx := context.Background()
	s, m := NewMock(t)
	batch := []domain.PoolAccount{
		{Phone: "13900000001", IsNewUser: true, DailyOrdersLeft: 2},
		{Phone: "13900000002", IsPlatinum: true, DailyOrdersLeft: 3},
	}
	m.accounts.EXPECT().Import(ctx, batch).Return(1, nil)

	imported, err := s.ImportAccounts(ctx, batch)
	require.NoError(t, err)
	assert.Equal(t, 1, imported)

	_, err = s.ImportAccounts(ctx, nil)
	assert.ErrorIs(t, err, ErrNoAccounts)
}

func TestSetAccountOnline(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		s, m := NewMock(t)
		m.accounts.EXPECT().FindByID(ctx, 42).Return(&domain.PoolAccount{ID: 42}, nil)
		m.accounts.EXPECT().SetOnline(ctx, 42, false).Return(nil)

		assert.NoError(t, s.SetAccountOnline(ctx, 42, false))
	})

	t.Run("unknown account", func(t *testing.T) {
		s, m := NewMock(t)
		m.accounts.EXPECT().FindByID(ctx, 42).Return(nil, nil)

		assert.ErrorIs(t, s.SetAccountOnline(ctx, 42, true), ErrAccountNotFound)
	})
}

func TestPutPermission(t *testing.T) {
	ctx := context.Background()
	s, m := NewMock(t)

	perm := &domain.ChannelPermission{
		AgentID: 7, Channel: domain.ChannelPlatinum,
		Allowed: true, DailyLimit: domain.Unlimited, QuotaBalance: 20,
	}
	m.permissions.EXPECT().UpsertChannelPermission(ctx, perm).Return(nil)
	require.NoError(t, s.PutPermission(ctx, perm))

	bad := &domain.ChannelPermission{AgentID: 7, Channel: domain.ChannelPlatinum, DailyLimit: -5}
	assert.ErrorIs(t, s.PutPermission(ctx, bad), ErrInvalidLimit)
}

func TestPutOverride(t *testing.T) {
	ctx := context.Background()
	override := &domain.AgreementOverride{AgentID: 7, AgreementID: 3, DailyLimit: intPtr(2)}

	t.Run("requires allow-listed agreement", func(t *testing.T) {
		s, m := NewMock(t)
		m.agreements.EXPECT().IsAllowedForAgent(ctx, 7, 3).Return(false, nil)

		assert.ErrorIs(t, s.PutOverride(ctx, override), ErrOverrideForbidden)
	})

	t.Run("success", func(t *testing.T) {
		s, m := NewMock(t)
		m.agreements.EXPECT().IsAllowedForAgent(ctx, 7, 3).Return(true, nil)
		m.permissions.EXPECT().UpsertOverride(ctx, override).Return(nil)

		assert.NoError(t, s.PutOverride(ctx, override))
	})

	t.Run("rejects garbage limits", func(t *testing.T) {
		s, _ := NewMock(t)
		bad := &domain.AgreementOverride{AgentID: 7, AgreementID: 3, QuotaBalance: intPtr(-2)}

		assert.ErrorIs(t, s.PutOverride(ctx, bad), ErrInvalidLimit)
	})
}

func TestCreditQuota(t *testing.T) {
	ctx := context.Background()
	s, m := NewMock(t)
	m.permissions.EXPECT().CreditChannelQuota(ctx, 7, domain.ChannelCorporate, 1).Return(nil)

	require.NoError(t, s.CreditQuota(ctx, 7, domain.ChannelCorporate, 1))
	assert.ErrorIs(t, s.CreditQuota(ctx, 7, domain.ChannelCorporate, 0), ErrInvalidLimit)
}
