package permissionrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/roomdesk/roomdesk/internal/domain"
	"github.com/roomdesk/roomdesk/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) GetChannelPermission(ctx context.Context, agentID int, channel domain.Channel) (*domain.ChannelPermission, error) {
	query := `
        SELECT agent_id, channel, allowed, daily_limit, quota_balance
        FROM channel_permissions
        WHERE agent_id = $1 AND channel = $2
    `
	row := r.db.QueryRow(ctx, query, agentID, string(channel))
	var perm domain.ChannelPermission
	err := row.Scan(&perm.AgentID, &perm.Channel, &perm.Allowed, &perm.DailyLimit, &perm.QuotaBalance)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get channel permission", zap.Error(err))
		return nil, err
	}
	return &perm, nil
}

func (r *Repository) ListPermissions(ctx context.Context, agentID int) ([]domain.ChannelPermission, error) {
	query := `
        SELECT agent_id, channel, allowed, daily_limit, quota_balance
        FROM channel_permissions
        WHERE agent_id = $1
        ORDER BY channel
    `
	rows, err := r.db.Query(ctx, query, agentID)
	if err != nil {
		zap.L().Error("can't list permissions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var perms []domain.ChannelPermission
	for rows.Next() {
		var perm domain.ChannelPermission
		if err := rows.Scan(&perm.AgentID, &perm.Channel, &perm.Allowed, &perm.DailyLimit, &perm.QuotaBalance); err != nil {
			zap.L().Error("can't scan permission row", zap.Error(err))
			return nil, err
		}
		perms = append(perms, perm)
	}
	return perms, nil
}

func (r *Repository) GetOverride(ctx context.Context, agentID, agreementID int) (*domain.AgreementOverride, error) {
	query := `
        SELECT agent_id, agreement_id, daily_limit, quota_balance
        FROM agreement_overrides
        WHERE agent_id = $1 AND agreement_id = $2
    `
	row := r.db.QueryRow(ctx, query, agentID, agreementID)
	var override domain.AgreementOverride
	err := row.Scan(&override.AgentID, &override.AgreementID, &override.DailyLimit, &override.QuotaBalance)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get agreement override", zap.Error(err))
		return nil, err
	}
	return &override, nil
}

// DecrementChannelQuota spends one unit of the channel-level quota. The
// WHERE clause is the check: no row matches when the finite balance is
// already zero, so check and decrement are one statement.
func (r *Repository) DecrementChannelQuota(ctx context.Context, agentID int, channel domain.Channel) (bool, error) {
	query := `
        UPDATE channel_permissions
        SET quota_balance = CASE WHEN quota_balance > 0 THEN quota_balance - 1 ELSE quota_balance END
        WHERE agent_id = $1 AND channel = $2 AND (quota_balance > 0 OR quota_balance = -1)
        RETURNING quota_balance
    `
	var remaining int
	err := r.db.QueryRow(ctx, query, agentID, string(channel)).Scan(&remaining)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		zap.L().Error("can't decrement channel quota", zap.Error(err))
		return false, err
	}
	return true, nil
}

// DecrementOverrideQuota spends one unit of a per-agreement quota override.
func (r *Repository) DecrementOverrideQuota(ctx context.Context, agentID, agreementID int) (bool, error) {
	query := `
        UPDATE agreement_overrides
        SET quota_balance = CASE WHEN quota_balance > 0 THEN quota_balance - 1 ELSE quota_balance END
        WHERE agent_id = $1 AND agreement_id = $2 AND (quota_balance > 0 OR quota_balance = -1)
        RETURNING quota_balance
    `
	var remaining int
	err := r.db.QueryRow(ctx, query, agentID, agreementID).Scan(&remaining)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		zap.L().Error("can't decrement override quota", zap.Error(err))
		return false, err
	}
	return true, nil
}

// CreditChannelQuota returns units to a finite channel quota (explicit
// admin credit; unlimited balances are left untouched).
func (r *Repository) CreditChannelQuota(ctx context.Context, agentID int, channel domain.Channel, units int) error {
	query := `
        UPDATE channel_permissions
        SET quota_balance = quota_balance + $3
        WHERE agent_id = $1 AND channel = $2 AND quota_balance >= 0
    `
	if _, err := r.db.Exec(ctx, query, agentID, string(channel), units); err != nil {
		zap.L().Error("can't credit channel quota", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpsertChannelPermission(ctx context.Context, perm *domain.ChannelPermission) error {
	query := `
        INSERT INTO channel_permissions (agent_id, channel, allowed, daily_limit, quota_balance)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (agent_id, channel)
        DO UPDATE SET allowed = $3, daily_limit = $4, quota_balance = $5
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, perm.AgentID, string(perm.Channel), perm.Allowed, perm.DailyLimit, perm.QuotaBalance)
		if err != nil {
			zap.L().Error("can't upsert channel permission", zap.Error(err))
			return err
		}
		return nil
	})
	return err
}

func (r *Repository) UpsertOverride(ctx context.Context, override *domain.AgreementOverride) error {
	query := `
        INSERT INTO agreement_overrides (agent_id, agreement_id, daily_limit, quota_balance)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (agent_id, agreement_id)
        DO UPDATE SET daily_limit = $3, quota_balance = $4
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, override.AgentID, override.AgreementID, override.DailyLimit, override.QuotaBalance)
		if err != nil {
			zap.L().Error("can't upsert agreement override", zap.Error(err))
			return err
		}
		return nil
	})
	return err
}
