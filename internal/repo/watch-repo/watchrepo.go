package watchrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

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

const taskColumns = `id, agent_id, hotel_id, hotel_name, room_type, check_in, check_out,
        target_price, current_price, has_inventory, status, candles, intraday, note, updated_at`

func scanTask(row pgx.Row) (*domain.PriceMonitorTask, error) {
	var t domain.PriceMonitorTask
	var candles, intraday []byte
	err := row.Scan(&t.ID, &t.AgentID, &t.HotelID, &t.HotelName, &t.RoomType, &t.CheckIn, &t.CheckOut,
		&t.TargetPrice, &t.CurrentPrice, &t.HasInventory, &t.Status, &candles, &intraday, &t.Note, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(candles, &t.Candles); err != nil {
		return nil, fmt.Errorf("can't decode candles: %w", err)
	}
	if err := json.Unmarshal(intraday, &t.Intraday); err != nil {
		return nil, fmt.Errorf("can't decode intraday points: %w", err)
	}
	return &t, nil
}

func encodeSeries(t *domain.PriceMonitorTask) (candles, intraday []byte, err error) {
	if t.Candles == nil {
		t.Candles = []domain.Candle{}
	}
	if t.Intraday == nil {
		t.Intraday = []domain.PricePoint{}
	}
	candles, err = json.Marshal(t.Candles)
	if err != nil {
		return nil, nil, fmt.Errorf("can't encode candles: %w", err)
	}
	intraday, err = json.Marshal(t.Intraday)
	if err != nil {
		return nil, nil, fmt.Errorf("can't encode intraday points: %w", err)
	}
	return candles, intraday, nil
}

func (r *Repository) Create(ctx context.Context, task *domain.PriceMonitorTask) error {
	candles, intraday, err := encodeSeries(task)
	if err != nil {
		return err
	}
	query := `
        INSERT INTO price_monitor_tasks (` + taskColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
    `
	_, err = r.db.Exec(ctx, query, task.ID, task.AgentID, task.HotelID, task.HotelName, task.RoomType,
		task.CheckIn, task.CheckOut, task.TargetPrice, task.CurrentPrice, task.HasInventory,
		string(task.Status), candles, intraday, task.Note, task.UpdatedAt)
	if err != nil {
		zap.L().Error("can't create monitor task", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.PriceMonitorTask, error) {
	query := `
        SELECT ` + taskColumns + `
        FROM price_monitor_tasks
        WHERE id = $1
    `
	task, err := scanTask(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find monitor task", zap.Error(err))
		return nil, err
	}
	return task, nil
}

func (r *Repository) FindByAgent(ctx context.Context, agentID int) ([]domain.PriceMonitorTask, error) {
	query := `
        SELECT ` + taskColumns + `
        FROM price_monitor_tasks
        WHERE agent_id = $1
        ORDER BY updated_at DESC
    `
	rows, err := r.db.Query(ctx, query, agentID)
	if err != nil {
		zap.L().Error("can't list monitor tasks", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.PriceMonitorTask
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			zap.L().Error("can't scan monitor task row", zap.Error(err))
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, nil
}

// FindForEvaluation returns every task the watch loop should poll. PAUSED
// tasks are included: history keeps accumulating while status is pinned.
func (r *Repository) FindForEvaluation(ctx context.Context, limit uint32) ([]domain.PriceMonitorTask, error) {
	query := `
        SELECT ` + taskColumns + `
        FROM price_monitor_tasks
        WHERE check_in >= CURRENT_DATE
        ORDER BY updated_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get tasks for evaluation", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.PriceMonitorTask
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			zap.L().Error("can't scan monitor task row", zap.Error(err))
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, nil
}

func (r *Repository) Update(ctx context.Context, task *domain.PriceMonitorTask) error {
	candles, intraday, err := encodeSeries(task)
	if err != nil {
		return err
	}
	query := `
        UPDATE price_monitor_tasks
        SET target_price = $2, current_price = $3, has_inventory = $4, status = $5,
            candles = $6, intraday = $7, note = $8, updated_at = $9
        WHERE id = $1
    `
	_, err = r.db.Exec(ctx, query, task.ID, task.TargetPrice, task.CurrentPrice, task.HasInventory,
		string(task.Status), candles, intraday, task.Note, task.UpdatedAt)
	if err != nil {
		zap.L().Error("can't update monitor task", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	query := `
        DELETE FROM price_monitor_tasks
        WHERE id = $1
    `
	if _, err := r.db.Exec(ctx, query, id); err != nil {
		zap.L().Error("can't delete monitor task", zap.Error(err))
		return err
	}
	return nil
}
