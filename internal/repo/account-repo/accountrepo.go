package accountrepo

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

const accountColumns = `id, phone, is_new_user, is_platinum, online, points, daily_orders_left,
        breakfast_coupons, upgrade_coupons, late_checkout_coupons, slipper_coupons,
        last_checkin_at, last_checkin_result, last_lottery_at, last_lottery_result,
        last_scan_at, last_scan_result, created_at`

func scanAccount(row pgx.Row) (*domain.PoolAccount, error) {
	var a domain.PoolAccount
	err := row.Scan(&a.ID, &a.Phone, &a.IsNewUser, &a.IsPlatinum, &a.Online, &a.Points, &a.DailyOrdersLeft,
		&a.BreakfastCoupons, &a.UpgradeCoupons, &a.LateCheckoutCoupons, &a.SlipperCoupons,
		&a.LastCheckinAt, &a.LastCheckinResult, &a.LastLotteryAt, &a.LastLotteryResult,
		&a.LastScanAt, &a.LastScanResult, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// PickEligible selects one account fit to execute an item on the given
// channel: online, tier-eligible, with daily headroom. SKIP LOCKED keeps
// concurrent submissions from fighting over the same row.
func (r *Repository) PickEligible(ctx context.Context, channel domain.Channel, agreementID *int) (*domain.PoolAccount, error) {
	var query string
	var args []interface{}

	switch channel {
	case domain.ChannelNewUser:
		query = `
            SELECT ` + accountColumns + `
            FROM pool_accounts
            WHERE online AND is_new_user AND daily_orders_left > 0
            ORDER BY daily_orders_left DESC
            LIMIT 1
            FOR UPDATE SKIP LOCKED
        `
	case domain.ChannelPlatinum:
		query = `
            SELECT ` + accountColumns + `
            FROM pool_accounts
            WHERE online AND is_platinum AND daily_orders_left > 0
            ORDER BY daily_orders_left DESC
            LIMIT 1
            FOR UPDATE SKIP LOCKED
        `
	case domain.ChannelCorporate:
		if agreementID == nil {
			return nil, errors.New("corporate account selection requires an agreement")
		}
		query = `
            SELECT ` + accountColumns + `
            FROM pool_accounts p
            JOIN account_agreements aa ON aa.account_id = p.id
            WHERE p.online AND aa.agreement_id = $1 AND p.daily_orders_left > 0
            ORDER BY p.daily_orders_left DESC
            LIMIT 1
            FOR UPDATE SKIP LOCKED
        `
		args = append(args, *agreementID)
	default:
		return nil, errors.New("unknown channel")
	}

	account, err := scanAccount(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't pick eligible account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

// ConsumeDailyOrder burns one daily slot after a successful execution.
func (r *Repository) ConsumeDailyOrder(ctx context.Context, accountID int) (bool, error) {
	query := `
        UPDATE pool_accounts
        SET daily_orders_left = daily_orders_left - 1
        WHERE id = $1 AND daily_orders_left > 0
    `
	tag, err := r.db.Exec(ctx, query, accountID)
	if err != nil {
		zap.L().Error("can't consume daily order", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.PoolAccount, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM pool_accounts
        WHERE id = $1
    `
	account, err := scanAccount(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.PoolAccount, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM pool_accounts
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list accounts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.PoolAccount
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			zap.L().Error("can't scan account row", zap.Error(err))
			return nil, err
		}
		accounts = append(accounts, *account)
	}
	return accounts, nil
}

// Import inserts admin-provided accounts, skipping phones already present.
func (r *Repository) Import(ctx context.Context, accounts []domain.PoolAccount) (int, error) {
	query := `
        INSERT INTO pool_accounts (phone, is_new_user, is_platinum, online, points, daily_orders_left)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (phone) DO NOTHING
    `
	imported := 0
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		for _, a := range accounts {
			tag, err := r.db.Exec(ctx, query, a.Phone, a.IsNewUser, a.IsPlatinum, a.Online, a.Points, a.DailyOrdersLeft)
			if err != nil {
				zap.L().Error("can't import account", zap.Error(err))
				return err
			}
			imported += int(tag.RowsAffected())
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return imported, nil
}

func (r *Repository) SetOnline(ctx context.Context, id int, online bool) error {
	query := `
        UPDATE pool_accounts
        SET online = $2
        WHERE id = $1
    `
	if _, err := r.db.Exec(ctx, query, id, online); err != nil {
		zap.L().Error("can't set account online flag", zap.Error(err))
		return err
	}
	return nil
}
