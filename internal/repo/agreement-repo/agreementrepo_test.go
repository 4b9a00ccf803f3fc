package agreementrepo

import (
	"context"
	"errors"
	"testing"

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

func TestRepository_FindByName(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name          string
		agreementName string
		mockSetup     func()
		expectErr     bool
		result        *domain.CorporateAgreement
	}{
		{
			name:          "Existing agreement is returned",
			agreementName: "Acme Travel Ltd",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "name", "active"}).
					AddRow(3, "Acme Travel Ltd", true)
				mock.ExpectQuery("SELECT id, name, active").
					WithArgs("Acme Travel Ltd").
					WillReturnRows(rows)
			},
			result: &domain.CorporateAgreement{ID: 3, Name: "Acme Travel Ltd", Active: true},
		},
		{
			name:          "Unknown name returns nil",
			agreementName: "Nowhere Inc",
			mockSetup: func() {
				mock.ExpectQuery("SELECT id, name, active").
					WithArgs("Nowhere Inc").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:          "Database error",
			agreementName: "Acme Travel Ltd",
			mockSetup: func() {
				mock.ExpectQuery("SELECT id, name, active").
					WithArgs("Acme Travel Ltd").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByName(context.Background(), tt.agreementName)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_CountForAgent(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Counts allow-list entries", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT").
			WithArgs(7).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))

		count, err := repo.CountForAgent(context.Background(), 7)
		assert.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("Empty allow-list counts zero", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT").
			WithArgs(8).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))

		count, err := repo.CountForAgent(context.Background(), 8)
		assert.NoError(t, err)
		assert.Equal(t, 0, count)
	})
}

func TestRepository_IsAllowedForAgent(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		allowed   bool
	}{
		{
			name: "Listed agreement is allowed",
			mockSetup: func() {
				mock.ExpectQuery("SELECT EXISTS").
					WithArgs(7, 3).
					WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
			},
			allowed: true,
		},
		{
			name: "Unlisted agreement is not",
			mockSetup: func() {
				mock.ExpectQuery("SELECT EXISTS").
					WithArgs(7, 3).
					WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
			},
			allowed: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery("SELECT EXISTS").
					WithArgs(7, 3).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			allowed, err := repo.IsAllowedForAgent(context.Background(), 7, 3)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.allowed, allowed)
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery("INSERT INTO corporate_agreements").
		WithArgs("Acme Travel Ltd", true).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "active"}).AddRow(3, "Acme Travel Ltd", true))

	created, err := repo.Create(context.Background(), &domain.CorporateAgreement{Name: "Acme Travel Ltd", Active: true})
	assert.NoError(t, err)
	assert.Equal(t, &domain.CorporateAgreement{ID: 3, Name: "Acme Travel Ltd", Active: true}, created)
}
