package accountservice

import (
	"context"
	"errors"

	"github.com/roomdesk/roomdesk/internal/domain"
)

type AccountRepo interface {
	FindByID(ctx context.Context, id int) (*domain.PoolAccount, error)
	List(ctx context.Context) ([]domain.PoolAccount, error)
	Import(ctx context.Context, accounts []domain.PoolAccount) (int, error)
	SetOnline(ctx context.Context, id int, online bool) error
}

type PermissionRepo interface {
	ListPermissions(ctx context.Context, agentID int) ([]domain.ChannelPermission, error)
	UpsertChannelPermission(ctx context.Context, perm *domain.ChannelPermission) error
	UpsertOverride(ctx context.Context, override *domain.AgreementOverride) error
	CreditChannelQuota(ctx context.Context, agentID int, channel domain.Channel, units int) error
}

type AgreementRepo interface {
	IsAllowedForAgent(ctx context.Context, agentID, agreementID int) (bool, error)
	Create(ctx context.Context, agreement *domain.CorporateAgreement) (*domain.CorporateAgreement, error)
}

// Service is the admin surface over the account pool and per-agent
// channel entitlements.
type Service struct {
	accounts    AccountRepo
	permissions PermissionRepo
	agreements  AgreementRepo
}

func New(accounts AccountRepo, permissions PermissionRepo, agreements AgreementRepo) *Service {
	return &Service{
		accounts:    accounts,
		permissions: permissions,
		agreements:  agreements,
	}
}

var (
	ErrAccountNotFound   = errors.New("pool account not found")
	ErrNoAccounts        = errors.New("import payload has no accounts")
	ErrInvalidLimit      = errors.New("limit must be -1 (unlimited) or non-negative")
	ErrOverrideForbidden = errors.New("override requires the agreement to be on the agent's allow-list")
)

func (s *Service) ListAccounts(ctx context.Context) ([]domain.PoolAccount, error) {
	return s.accounts.List(ctx)
}

// ImportAccounts loads a batch into the pool; phones already present are
// skipped. Returns how many rows actually landed.
func (s *Service) ImportAccounts(ctx context.Context, accounts []domain.PoolAccount) (int, error) {
	if len(accounts) == 0 {
		return 0, ErrNoAccounts
	}
	return s.accounts.Import(ctx, accounts)
}

func (s *Service) SetAccountOnline(ctx context.Context, id int, online bool) error {
	account, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if account == nil {
		return ErrAccountNotFound
	}
	return s.accounts.SetOnline(ctx, id, online)
}

func (s *Service) GetPermissions(ctx context.Context, agentID int) ([]domain.ChannelPermission, error) {
	return s.permissions.ListPermissions(ctx, agentID)
}

func validLimit(v int) bool {
	return v >= 0 || v == domain.Unlimited
}

// PutPermission writes one agent/channel entitlement row.
func (s *Service) PutPermission(ctx context.Context, perm *domain.ChannelPermission) error {
	if !validLimit(perm.DailyLimit) || !validLimit(perm.QuotaBalance) {
		return ErrInvalidLimit
	}
	return s.permissions.UpsertChannelPermission(ctx, perm)
}

// PutOverride writes a per-agreement limit/quota override. The agreement
// must already be on the agent's allow-list; the override can't widen it.
func (s *Service) PutOverride(ctx context.Context, override *domain.AgreementOverride) error {
	if override.DailyLimit != nil && !validLimit(*override.DailyLimit) {
		return ErrInvalidLimit
	}
	if override.QuotaBalance != nil && !validLimit(*override.QuotaBalance) {
		return ErrInvalidLimit
	}
	allowed, err := s.agreements.IsAllowedForAgent(ctx, override.AgentID, override.AgreementID)
	if err != nil {
		return err
	}
	if !allowed {
		return ErrOverrideForbidden
	}
	return s.permissions.UpsertOverride(ctx, override)
}

// CreditQuota returns quota units to an agent's channel, e.g. after an
// admitted booking is cancelled before fulfillment.
func (s *Service) CreditQuota(ctx context.Context, agentID int, channel domain.Channel, units int) error {
	if units <= 0 {
		return ErrInvalidLimit
	}
	return s.permissions.CreditChannelQuota(ctx, agentID, channel, units)
}

func (s *Service) CreateAgreement(ctx context.Context, agreement *domain.CorporateAgreement) (*domain.CorporateAgreement, error) {
	return s.agreements.Create(ctx, agreement)
}
