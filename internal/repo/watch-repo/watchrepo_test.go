package watchrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/roomdesk/roomdesk/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var taskColumnNames = []string{
	"id", "agent_id", "hotel_id", "hotel_name", "room_type", "check_in", "check_out",
	"target_price", "current_price", "has_inventory", "status", "candles", "intraday", "note", "updated_at",
}

func testTask() *domain.PriceMonitorTask {
	return &domain.PriceMonitorTask{
		ID:           "task-1",
		AgentID:      7,
		HotelID:      "H-88",
		HotelName:    "Harbor View Hotel",
		RoomType:     "king",
		CheckIn:      time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC),
		CheckOut:     time.Date(2025, 11, 22, 0, 0, 0, 0, time.UTC),
		TargetPrice:  2800,
		CurrentPrice: 3100,
		HasInventory: true,
		Status:       domain.WatchMonitoring,
		Candles:      []domain.Candle{{Date: "2025-11-09", Open: 3100, Close: 3000, High: 3300, Low: 2900}},
		Intraday:     []domain.PricePoint{{Time: time.Date(2025, 11, 10, 8, 0, 0, 0, time.UTC), Price: 3100}},
		Note:         "prefer high floor",
		UpdatedAt:    time.Date(2025, 11, 10, 8, 0, 0, 0, time.UTC),
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	task := testTask()

	t.Run("Series is stored as JSON", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO price_monitor_tasks").
			WithArgs(task.ID, task.AgentID, task.HotelID, task.HotelName, task.RoomType,
				task.CheckIn, task.CheckOut, task.TargetPrice, task.CurrentPrice, task.HasInventory,
				"MONITORING", pgxmock.AnyArg(), pgxmock.AnyArg(), task.Note, task.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := repo.Create(context.Background(), task)
		assert.NoError(t, err)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO price_monitor_tasks").
			WithArgs(task.ID, task.AgentID, task.HotelID, task.HotelName, task.RoomType,
				task.CheckIn, task.CheckOut, task.TargetPrice, task.CurrentPrice, task.HasInventory,
				"MONITORING", pgxmock.AnyArg(), pgxmock.AnyArg(), task.Note, task.UpdatedAt).
			WillReturnError(errors.New("database error"))

		err := repo.Create(context.Background(), task)
		assert.Error(t, err)
	})
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	task := testTask()

	t.Run("Series round-trips through JSON", func(t *testing.T) {
		rows := pgxmock.NewRows(taskColumnNames).
			AddRow(task.ID, task.AgentID, task.HotelID, task.HotelName, task.RoomType, task.CheckIn, task.CheckOut,
				task.TargetPrice, task.CurrentPrice, task.HasInventory, "MONITORING",
				[]byte(`[{"date":"2025-11-09","open":3100,"close":3000,"high":3300,"low":2900}]`),
				[]byte(`[{"time":"2025-11-10T08:00:00Z","price":3100}]`),
				task.Note, task.UpdatedAt)
		mock.ExpectQuery("SELECT (.+) FROM price_monitor_tasks").
			WithArgs("task-1").
			WillReturnRows(rows)

		found, err := repo.FindByID(context.Background(), "task-1")
		assert.NoError(t, err)
		assert.Equal(t, task, found)
	})

	t.Run("Missing task returns nil", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM price_monitor_tasks").
			WithArgs("no-such-task").
			WillReturnError(pgx.ErrNoRows)

		found, err := repo.FindByID(context.Background(), "no-such-task")
		assert.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("Corrupt series payload fails the scan", func(t *testing.T) {
		rows := pgxmock.NewRows(taskColumnNames).
			AddRow(task.ID, task.AgentID, task.HotelID, task.HotelName, task.RoomType, task.CheckIn, task.CheckOut,
				task.TargetPrice, task.CurrentPrice, task.HasInventory, "MONITORING",
				[]byte(`not-json`), []byte(`[]`), task.Note, task.UpdatedAt)
		mock.ExpectQuery("SELECT (.+) FROM price_monitor_tasks").
			WithArgs("task-1").
			WillReturnRows(rows)

		found, err := repo.FindByID(context.Background(), "task-1")
		assert.Error(t, err)
		assert.Nil(t, found)
	})
}

func TestRepository_FindForEvaluation(t *testing.T) {
	repo, mock := NewMock(t)
	task := testTask()

	rows := pgxmock.NewRows(taskColumnNames).
		AddRow(task.ID, task.AgentID, task.HotelID, task.HotelName, task.RoomType, task.CheckIn, task.CheckOut,
			task.TargetPrice, task.CurrentPrice, task.HasInventory, "MONITORING",
			[]byte(`[]`), []byte(`[]`), task.Note, task.UpdatedAt)
	mock.ExpectQuery("SELECT (.+) FROM price_monitor_tasks").
		WithArgs(500).
		WillReturnRows(rows)

	tasks, err := repo.FindForEvaluation(context.Background(), 500)
	assert.NoError(t, err)
	assert.Len(t, tasks, 1)
	assert.Equal(t, "task-1", tasks[0].ID)
	assert.Empty(t, tasks[0].Candles)
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)
	task := testTask()

	mock.ExpectExec("UPDATE price_monitor_tasks").
		WithArgs(task.ID, task.TargetPrice, task.CurrentPrice, task.HasInventory,
			"MONITORING", pgxmock.AnyArg(), pgxmock.AnyArg(), task.Note, task.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.Update(context.Background(), task)
	assert.NoError(t, err)
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec("DELETE FROM price_monitor_tasks").
		WithArgs("task-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := repo.Delete(context.Background(), "task-1")
	assert.NoError(t, err)
}
