package orderrepo

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

const groupColumns = `id, order_no, channel, agreement_id, hotel_id, hotel_name,
        customer_name, customer_phone, check_in, check_out, total_nights, total_amount,
        status, payment_status, created_by, split_count, created_at`

const itemColumns = `id, group_id, split_index, split_total, room_type, room_count,
        check_in, check_out, amount, status, payment_status, execution_status,
        account_id, account_phone, provider_order_id, fail_reason,
        payment_link, detail_link, updated_at`

func scanGroup(row pgx.Row) (*domain.OrderGroup, error) {
	var g domain.OrderGroup
	err := row.Scan(&g.ID, &g.OrderNo, &g.Channel, &g.AgreementID, &g.HotelID, &g.HotelName,
		&g.CustomerName, &g.CustomerPhone, &g.CheckIn, &g.CheckOut, &g.TotalNights, &g.TotalAmount,
		&g.Status, &g.PaymentStatus, &g.CreatedBy, &g.SplitCount, &g.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func scanItem(row pgx.Row) (*domain.OrderSplitItem, error) {
	var it domain.OrderSplitItem
	err := row.Scan(&it.ID, &it.GroupID, &it.SplitIndex, &it.SplitTotal, &it.RoomType, &it.RoomCount,
		&it.CheckIn, &it.CheckOut, &it.Amount, &it.Status, &it.PaymentStatus, &it.ExecutionStatus,
		&it.AccountID, &it.AccountPhone, &it.ProviderOrderID, &it.FailReason,
		&it.PaymentLink, &it.DetailLink, &it.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// CreateGroup persists the group and all of its items in one transaction;
// a booking is never visible half-written.
func (r *Repository) CreateGroup(ctx context.Context, group *domain.OrderGroup) error {
	groupQuery := `
        INSERT INTO order_groups (` + groupColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
    `
	itemQuery := `
        INSERT INTO order_split_items (` + itemColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, groupQuery,
			group.ID, group.OrderNo, string(group.Channel), group.AgreementID, group.HotelID, group.HotelName,
			group.CustomerName, group.CustomerPhone, group.CheckIn, group.CheckOut, group.TotalNights, group.TotalAmount,
			string(group.Status), string(group.PaymentStatus), group.CreatedBy, group.SplitCount, group.CreatedAt)
		if err != nil {
			zap.L().Error("can't save order group", zap.Error(err))
			return err
		}
		for _, item := range group.Items {
			_, err := r.db.Exec(ctx, itemQuery,
				item.ID, item.GroupID, item.SplitIndex, item.SplitTotal, item.RoomType, item.RoomCount,
				item.CheckIn, item.CheckOut, item.Amount, string(item.Status), string(item.PaymentStatus), string(item.ExecutionStatus),
				item.AccountID, item.AccountPhone, item.ProviderOrderID, item.FailReason,
				item.PaymentLink, item.DetailLink, item.UpdatedAt)
			if err != nil {
				zap.L().Error("can't save split item", zap.Error(err))
				return err
			}
		}
		return nil
	})
	return err
}

func (r *Repository) FindGroupByID(ctx context.Context, id string) (*domain.OrderGroup, error) {
	query := `
        SELECT ` + groupColumns + `
        FROM order_groups
        WHERE id = $1
    `
	group, err := scanGroup(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order group", zap.Error(err))
		return nil, err
	}

	items, err := r.FindItemsByGroup(ctx, id)
	if err != nil {
		return nil, err
	}
	group.Items = items
	return group, nil
}

func (r *Repository) FindGroupsByAgent(ctx context.Context, agentID int) ([]domain.OrderGroup, error) {
	query := `
        SELECT ` + groupColumns + `
        FROM order_groups
        WHERE created_by = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, agentID)
	if err != nil {
		zap.L().Error("can't get order groups", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var groups []domain.OrderGroup
	for rows.Next() {
		group, err := scanGroup(rows)
		if err != nil {
			zap.L().Error("can't scan group row", zap.Error(err))
			return nil, err
		}
		groups = append(groups, *group)
	}
	return groups, nil
}

func (r *Repository) FindItemsByGroup(ctx context.Context, groupID string) ([]domain.OrderSplitItem, error) {
	query := `
        SELECT ` + itemColumns + `
        FROM order_split_items
        WHERE group_id = $1
        ORDER BY split_index ASC
    `
	rows, err := r.db.Query(ctx, query, groupID)
	if err != nil {
		zap.L().Error("can't get split items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderSplitItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			zap.L().Error("can't scan item row", zap.Error(err))
			return nil, err
		}
		items = append(items, *item)
	}
	return items, nil
}

func (r *Repository) FindItemByID(ctx context.Context, id string) (*domain.OrderSplitItem, error) {
	query := `
        SELECT ` + itemColumns + `
        FROM order_split_items
        WHERE id = $1
    `
	item, err := scanItem(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find split item", zap.Error(err))
		return nil, err
	}
	return item, nil
}

// CountGroupsToday backs the admission daily-limit check. The day boundary
// rolls over on read; there is no reset job.
func (r *Repository) CountGroupsToday(ctx context.Context, agentID int, channel domain.Channel) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM order_groups
        WHERE created_by = $1 AND channel = $2 AND created_at::date = CURRENT_DATE
    `
	var count int
	if err := r.db.QueryRow(ctx, query, agentID, string(channel)).Scan(&count); err != nil {
		zap.L().Error("can't count today's groups", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) CountGroupsTodayForAgreement(ctx context.Context, agentID, agreementID int) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM order_groups
        WHERE created_by = $1 AND agreement_id = $2 AND created_at::date = CURRENT_DATE
    `
	var count int
	if err := r.db.QueryRow(ctx, query, agentID, agreementID).Scan(&count); err != nil {
		zap.L().Error("can't count today's agreement groups", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// TransitionItem moves an item between execution states with a single-row
// compare-and-swap: it succeeds only when the current state is one of from,
// so two concurrent actors cannot both win the same transition.
func (r *Repository) TransitionItem(ctx context.Context, itemID string, from []domain.ExecStatus, to domain.ExecStatus) (bool, error) {
	states := make([]string, 0, len(from))
	for _, s := range from {
		states = append(states, string(s))
	}
	query := `
        UPDATE order_split_items
        SET execution_status = $2, updated_at = now()
        WHERE id = $1 AND execution_status = ANY($3)
    `
	tag, err := r.db.Exec(ctx, query, itemID, string(to), states)
	if err != nil {
		zap.L().Error("can't transition split item", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// UpdateItem writes the mutable execution fields back after a provider call.
func (r *Repository) UpdateItem(ctx context.Context, item *domain.OrderSplitItem) error {
	query := `
        UPDATE order_split_items
        SET status = $2, payment_status = $3, execution_status = $4,
            account_id = $5, account_phone = $6, provider_order_id = $7,
            fail_reason = $8, payment_link = $9, detail_link = $10, updated_at = now()
        WHERE id = $1
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, item.ID,
			string(item.Status), string(item.PaymentStatus), string(item.ExecutionStatus),
			item.AccountID, item.AccountPhone, item.ProviderOrderID,
			item.FailReason, item.PaymentLink, item.DetailLink)
		if err != nil {
			zap.L().Error("can't update split item", zap.Error(err))
			return err
		}
		return nil
	})
	return err
}

func (r *Repository) UpdateGroupStatus(ctx context.Context, groupID string, status domain.GroupStatus) error {
	query := `
        UPDATE order_groups
        SET status = $2
        WHERE id = $1
    `
	if _, err := r.db.Exec(ctx, query, groupID, string(status)); err != nil {
		zap.L().Error("can't update group status", zap.Error(err))
		return err
	}
	return nil
}

// FindItemsByExecution feeds the fulfillment driver: QUEUED items waiting
// for pickup and WAIT_CONFIRM items waiting for a confirmation poll.
func (r *Repository) FindItemsByExecution(ctx context.Context, statuses []domain.ExecStatus, limit uint32) ([]domain.OrderSplitItem, error) {
	states := make([]string, 0, len(statuses))
	for _, s := range statuses {
		states = append(states, string(s))
	}
	query := `
        SELECT ` + itemColumns + `
        FROM order_split_items
        WHERE execution_status = ANY($1)
        ORDER BY updated_at ASC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, states, int(limit))
	if err != nil {
		zap.L().Error("can't get items for processing", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderSplitItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			zap.L().Error("can't scan item row for processing", zap.Error(err))
			return nil, err
		}
		items = append(items, *item)
	}
	return items, nil
}
