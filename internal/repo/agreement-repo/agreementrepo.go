package agreementrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/roomdesk/roomdesk/internal/domain"
	"github.com/roomdesk/roomdesk/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindByName(ctx context.Context, name string) (*domain.CorporateAgreement, error) {
	query := `
        SELECT id, name, active
        FROM corporate_agreements
        WHERE name = $1
    `
	row := r.db.QueryRow(ctx, query, name)
	var agreement domain.CorporateAgreement
	err := row.Scan(&agreement.ID, &agreement.Name, &agreement.Active)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find agreement by name", zap.Error(err))
		return nil, err
	}
	return &agreement, nil
}

func (r *Repository) ListForAgent(ctx context.Context, agentID int) ([]domain.CorporateAgreement, error) {
	query := `
        SELECT a.id, a.name, a.active
        FROM corporate_agreements a
        JOIN agent_agreements aa ON aa.agreement_id = a.id
        WHERE aa.agent_id = $1
        ORDER BY a.name
    `
	rows, err := r.db.Query(ctx, query, agentID)
	if err != nil {
		zap.L().Error("can't list agent agreements", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var agreements []domain.CorporateAgreement
	for rows.Next() {
		var agreement domain.CorporateAgreement
		if err := rows.Scan(&agreement.ID, &agreement.Name, &agreement.Active); err != nil {
			zap.L().Error("can't scan agreement row", zap.Error(err))
			return nil, err
		}
		agreements = append(agreements, agreement)
	}
	return agreements, nil
}

// CountForAgent reports the size of the agent's allow-list. Zero means the
// list is empty, which reads as "all agreements allowed".
func (r *Repository) CountForAgent(ctx context.Context, agentID int) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM agent_agreements
        WHERE agent_id = $1
    `
	var count int
	if err := r.db.QueryRow(ctx, query, agentID).Scan(&count); err != nil {
		zap.L().Error("can't count agent agreements", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) IsAllowedForAgent(ctx context.Context, agentID, agreementID int) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM agent_agreements
            WHERE agent_id = $1 AND agreement_id = $2
        )
    `
	var allowed bool
	if err := r.db.QueryRow(ctx, query, agentID, agreementID).Scan(&allowed); err != nil {
		zap.L().Error("can't check agent agreement", zap.Error(err))
		return false, err
	}
	return allowed, nil
}

func (r *Repository) Create(ctx context.Context, agreement *domain.CorporateAgreement) (*domain.CorporateAgreement, error) {
	query := `
        INSERT INTO corporate_agreements (name, active)
        VALUES ($1, $2)
        RETURNING id, name, active
    `
	row := r.db.QueryRow(ctx, query, agreement.Name, agreement.Active)
	var created domain.CorporateAgreement
	if err := row.Scan(&created.ID, &created.Name, &created.Active); err != nil {
		zap.L().Error("can't create agreement", zap.Error(err))
		return nil, err
	}
	return &created, nil
}
