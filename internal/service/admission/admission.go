package admission

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/roomdesk/roomdesk/internal/config"
	"github.com/roomdesk/roomdesk/internal/domain"
)

// RejectReason is a stable code, safe to show the agent verbatim.
type RejectReason string

const (
	ReasonChannelDisabled     RejectReason = "CHANNEL_DISABLED"
	ReasonChannelForbidden    RejectReason = "CHANNEL_FORBIDDEN"
	ReasonCorporateNotAllowed RejectReason = "CORPORATE_NOT_ALLOWED"
	ReasonDailyLimitExceeded  RejectReason = "DAILY_LIMIT_EXCEEDED"
	ReasonQuotaExhausted      RejectReason = "QUOTA_EXHAUSTED"
)

// RejectionError carries a typed admission rejection; never retried
// automatically.
type RejectionError struct {
	Reason RejectReason
}

func (e *RejectionError) Error() string {
	return "admission rejected: " + string(e.Reason)
}

// Result is an admission decision. AgreementID is resolved for corporate
// admissions so the booking records the strongly-typed association instead
// of a free-text company name.
type Result struct {
	Admitted    bool
	Reason      RejectReason
	AgreementID *int
}

type PermissionRepo interface {
	GetChannelPermission(ctx context.Context, agentID int, channel domain.Channel) (*domain.ChannelPermission, error)
	GetOverride(ctx context.Context, agentID, agreementID int) (*domain.AgreementOverride, error)
	DecrementChannelQuota(ctx context.Context, agentID int, channel domain.Channel) (bool, error)
	DecrementOverrideQuota(ctx context.Context, agentID, agreementID int) (bool, error)
}

type AgreementRegistry interface {
	FindByName(ctx context.Context, name string) (*domain.CorporateAgreement, error)
	CountForAgent(ctx context.Context, agentID int) (int, error)
	IsAllowedForAgent(ctx context.Context, agentID, agreementID int) (bool, error)
}

type DailyCounter interface {
	CountGroupsToday(ctx context.Context, agentID int, channel domain.Channel) (int, error)
	CountGroupsTodayForAgreement(ctx context.Context, agentID, agreementID int) (int, error)
}

// ConfigSource hands the gate one immutable switch snapshot per decision.
type ConfigSource interface {
	Snapshot() config.ChannelSnapshot
}

type Service struct {
	permissions PermissionRepo
	registry    AgreementRegistry
	counter     DailyCounter
	cfg         ConfigSource
}

func New(permissions PermissionRepo, registry AgreementRegistry, counter DailyCounter, cfg ConfigSource) *Service {
	return &Service{
		permissions: permissions,
		registry:    registry,
		counter:     counter,
		cfg:         cfg,
	}
}

func rejected(reason RejectReason) *Result {
	return &Result{Admitted: false, Reason: reason}
}

// TryAdmit runs the ordered admission checks and, on success, spends one
// quota unit. The caller must run it inside the same transaction that
// persists the booking: no admit without decrement, no decrement without a
// persisted group.
func (s *Service) TryAdmit(ctx context.Context, agentID int, channel domain.Channel, corporateName string, requestedAmount float64) (*Result, error) {
	snap := s.cfg.Snapshot()
	if !snap.Enabled[string(channel)] {
		return rejected(ReasonChannelDisabled), nil
	}

	perm, err := s.permissions.GetChannelPermission(ctx, agentID, channel)
	if err != nil {
		return nil, err
	}
	if perm == nil || !perm.Allowed {
		return rejected(ReasonChannelForbidden), nil
	}

	var agreement *domain.CorporateAgreement
	var override *domain.AgreementOverride
	if channel == domain.ChannelCorporate {
		agreement, err = s.resolveAgreement(ctx, agentID, corporateName, snap)
		if err != nil {
			return nil, err
		}
		if agreement == nil {
			return rejected(ReasonCorporateNotAllowed), nil
		}
		override, err = s.permissions.GetOverride(ctx, agentID, agreement.ID)
		if err != nil {
			return nil, err
		}
	}

	ok, err := s.checkDailyLimit(ctx, agentID, channel, perm, agreement, override)
	if err != nil {
		return nil, err
	}
	if !ok {
		return rejected(ReasonDailyLimitExceeded), nil
	}

	var spent bool
	if override != nil && override.QuotaBalance != nil {
		spent, err = s.permissions.DecrementOverrideQuota(ctx, agentID, agreement.ID)
	} else {
		spent, err = s.permissions.DecrementChannelQuota(ctx, agentID, channel)
	}
	if err != nil {
		return nil, err
	}
	if !spent {
		return rejected(ReasonQuotaExhausted), nil
	}

	result := &Result{Admitted: true}
	if agreement != nil {
		id := agreement.ID
		result.AgreementID = &id
	}
	zap.L().Info("booking admitted",
		zap.Int("agentID", agentID),
		zap.String("channel", string(channel)),
		zap.Float64("amount", requestedAmount),
	)
	return result, nil
}

func (s *Service) resolveAgreement(ctx context.Context, agentID int, corporateName string, snap config.ChannelSnapshot) (*domain.CorporateAgreement, error) {
	if corporateName == "" {
		return nil, nil
	}
	if snap.Banned[corporateName] {
		return nil, nil
	}

	agreement, err := s.registry.FindByName(ctx, corporateName)
	if err != nil {
		return nil, err
	}
	if agreement == nil || !agreement.Active {
		return nil, nil
	}

	listed, err := s.registry.CountForAgent(ctx, agentID)
	if err != nil {
		return nil, err
	}
	if listed > 0 {
		allowed, err := s.registry.IsAllowedForAgent(ctx, agentID, agreement.ID)
		if err != nil {
			return nil, err
		}
		if !allowed {
			return nil, nil
		}
	}
	return agreement, nil
}

func (s *Service) checkDailyLimit(ctx context.Context, agentID int, channel domain.Channel, perm *domain.ChannelPermission, agreement *domain.CorporateAgreement, override *domain.AgreementOverride) (bool, error) {
	limit := perm.DailyLimit
	perAgreement := false
	if override != nil && override.DailyLimit != nil {
		limit = *override.DailyLimit
		perAgreement = true
	}
	if limit == domain.Unlimited {
		return true, nil
	}

	var count int
	var err error
	if perAgreement {
		count, err = s.counter.CountGroupsTodayForAgreement(ctx, agentID, agreement.ID)
	} else {
		count, err = s.counter.CountGroupsToday(ctx, agentID, channel)
	}
	if err != nil {
		return false, fmt.Errorf("can't count today's bookings: %w", err)
	}
	return count < limit, nil
}
