package orderrepo

import (
	"context"
	"errors"
	"testing"
	"time"

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

var itemColumnNames = []string{
	"id", "group_id", "split_index", "split_total", "room_type", "room_count",
	"check_in", "check_out", "amount", "status", "payment_status", "execution_status",
	"account_id", "account_phone", "provider_order_id", "fail_reason",
	"payment_link", "detail_link", "updated_at",
}

func testGroup() *domain.OrderGroup {
	now := time.Date(2025, 11, 10, 12, 0, 0, 0, time.UTC)
	checkIn := time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, 11, 22, 0, 0, 0, 0, time.UTC)
	return &domain.OrderGroup{
		ID:            "group-1",
		OrderNo:       "17321960001234",
		Channel:       domain.ChannelPlatinum,
		HotelID:       "H-88",
		HotelName:     "Harbor View Hotel",
		CustomerName:  "Li Wei",
		CustomerPhone: "13900001234",
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		TotalNights:   2,
		TotalAmount:   1280,
		Status:        domain.GroupProcessing,
		PaymentStatus: domain.PaymentUnpaid,
		CreatedBy:     7,
		SplitCount:    2,
		CreatedAt:     now,
		Items: []domain.OrderSplitItem{
			{
				ID: "item-1", GroupID: "group-1", SplitIndex: 1, SplitTotal: 2,
				RoomType: "king", RoomCount: 1, CheckIn: checkIn, CheckOut: checkOut, Amount: 640,
				Status: domain.GroupProcessing, PaymentStatus: domain.PaymentUnpaid,
				ExecutionStatus: domain.ExecQueued, UpdatedAt: now,
			},
			{
				ID: "item-2", GroupID: "group-1", SplitIndex: 2, SplitTotal: 2,
				RoomType: "king", RoomCount: 1, CheckIn: checkIn, CheckOut: checkOut, Amount: 640,
				Status: domain.GroupProcessing, PaymentStatus: domain.PaymentUnpaid,
				ExecutionStatus: domain.ExecPlanPending, UpdatedAt: now,
			},
		},
	}
}

func TestRepository_CreateGroup(t *testing.T) {
	repo, mock, tx := NewMock(t)
	group := testGroup()

	t.Run("Group and items land in one transaction", func(t *testing.T) {
		tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			mock.ExpectExec("INSERT INTO order_groups").
				WithArgs(group.ID, group.OrderNo, "PLATINUM", group.AgreementID, group.HotelID, group.HotelName,
					group.CustomerName, group.CustomerPhone, group.CheckIn, group.CheckOut, group.TotalNights, group.TotalAmount,
					"PROCESSING", "UNPAID", group.CreatedBy, group.SplitCount, group.CreatedAt).
				WillReturnResult(pgxmock.NewResult("INSERT", 1))
			for _, item := range group.Items {
				mock.ExpectExec("INSERT INTO order_split_items").
					WithArgs(item.ID, item.GroupID, item.SplitIndex, item.SplitTotal, item.RoomType, item.RoomCount,
						item.CheckIn, item.CheckOut, item.Amount, "PROCESSING", "UNPAID", string(item.ExecutionStatus),
						item.AccountID, item.AccountPhone, item.ProviderOrderID, item.FailReason,
						item.PaymentLink, item.DetailLink, item.UpdatedAt).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			}
			return fn(ctx)
		})

		err := repo.CreateGroup(context.Background(), group)
		assert.NoError(t, err)
	})

	t.Run("Item insert failure aborts the transaction", func(t *testing.T) {
		tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			mock.ExpectExec("INSERT INTO order_groups").
				WithArgs(group.ID, group.OrderNo, "PLATINUM", group.AgreementID, group.HotelID, group.HotelName,
					group.CustomerName, group.CustomerPhone, group.CheckIn, group.CheckOut, group.TotalNights, group.TotalAmount,
					"PROCESSING", "UNPAID", group.CreatedBy, group.SplitCount, group.CreatedAt).
				WillReturnResult(pgxmock.NewResult("INSERT", 1))
			item := group.Items[0]
			mock.ExpectExec("INSERT INTO order_split_items").
				WithArgs(item.ID, item.GroupID, item.SplitIndex, item.SplitTotal, item.RoomType, item.RoomCount,
					item.CheckIn, item.CheckOut, item.Amount, "PROCESSING", "UNPAID", string(item.ExecutionStatus),
					item.AccountID, item.AccountPhone, item.ProviderOrderID, item.FailReason,
					item.PaymentLink, item.DetailLink, item.UpdatedAt).
				WillReturnError(errors.New("database error"))
			return fn(ctx)
		})

		err := repo.CreateGroup(context.Background(), group)
		assert.Error(t, err)
	})
}

func TestRepository_FindItemByID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	item := testGroup().Items[0]

	tests := []struct {
		name      string
		itemID    string
		mockSetup func()
		expectErr bool
		result    *domain.OrderSplitItem
	}{
		{
			name:   "Existing item is returned",
			itemID: "item-1",
			mockSetup: func() {
				rows := pgxmock.NewRows(itemColumnNames).
					AddRow(item.ID, item.GroupID, item.SplitIndex, item.SplitTotal, item.RoomType, item.RoomCount,
						item.CheckIn, item.CheckOut, item.Amount, "PROCESSING", "UNPAID", "QUEUED",
						nil, nil, nil, nil, nil, nil, item.UpdatedAt)
				mock.ExpectQuery("SELECT (.+) FROM order_split_items").
					WithArgs("item-1").
					WillReturnRows(rows)
			},
			result: &item,
		},
		{
			name:   "Missing item returns nil",
			itemID: "no-such-item",
			mockSetup: func() {
				mock.ExpectQuery("SELECT (.+) FROM order_split_items").
					WithArgs("no-such-item").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:   "Database error",
			itemID: "item-1",
			mockSetup: func() {
				mock.ExpectQuery("SELECT (.+) FROM order_split_items").
					WithArgs("item-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindItemByID(context.Background(), tt.itemID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_TransitionItem(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		won       bool
	}{
		{
			name: "Matching state wins the swap",
			mockSetup: func() {
				mock.ExpectExec("UPDATE order_split_items").
					WithArgs("item-1", "SUBMITTING", []string{"QUEUED"}).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			won: true,
		},
		{
			name: "Stale state loses the swap",
			mockSetup: func() {
				mock.ExpectExec("UPDATE order_split_items").
					WithArgs("item-1", "SUBMITTING", []string{"QUEUED"}).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			won: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec("UPDATE order_split_items").
					WithArgs("item-1", "SUBMITTING", []string{"QUEUED"}).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			won, err := repo.TransitionItem(context.Background(), "item-1", []domain.ExecStatus{domain.ExecQueued}, domain.ExecSubmitting)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.won, won)
		})
	}
}

func TestRepository_FindItemsByExecution(t *testing.T) {
	repo, mock, _ := NewMock(t)
	item := testGroup().Items[0]

	t.Run("Returns matching items oldest first", func(t *testing.T) {
		rows := pgxmock.NewRows(itemColumnNames).
			AddRow(item.ID, item.GroupID, item.SplitIndex, item.SplitTotal, item.RoomType, item.RoomCount,
				item.CheckIn, item.CheckOut, item.Amount, "PROCESSING", "UNPAID", "QUEUED",
				nil, nil, nil, nil, nil, nil, item.UpdatedAt)
		mock.ExpectQuery("SELECT (.+) FROM order_split_items").
			WithArgs([]string{"QUEUED", "WAIT_CONFIRM"}, 100).
			WillReturnRows(rows)

		items, err := repo.FindItemsByExecution(context.Background(), []domain.ExecStatus{domain.ExecQueued, domain.ExecWaitConfirm}, 100)
		assert.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, item, items[0])
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM order_split_items").
			WithArgs([]string{"QUEUED"}, 100).
			WillReturnError(errors.New("database error"))

		items, err := repo.FindItemsByExecution(context.Background(), []domain.ExecStatus{domain.ExecQueued}, 100)
		assert.Error(t, err)
		assert.Nil(t, items)
	})
}

func TestRepository_CountGroupsToday(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(7, "PLATINUM").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountGroupsToday(context.Background(), 7, domain.ChannelPlatinum)
	assert.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRepository_UpdateGroupStatus(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectExec("UPDATE order_groups").
		WithArgs("group-1", "CONFIRMED").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateGroupStatus(context.Background(), "group-1", domain.GroupConfirmed)
	assert.NoError(t, err)
}
