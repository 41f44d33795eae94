package repository

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/zuchi/dashboard-api/infrastructure/database/postgres"
)

func newRevenueRepoWithMock(t *testing.T) (RevenueRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("erro ao criar o mock de banco: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return NewRevenueRepository(&postgres.Connection{DB: db}), mock
}

func TestRevenueRepositoryListAll(t *testing.T) {
	repo, mock := newRevenueRepoWithMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT r.id, r.store_id, r.amount FROM revenues r ORDER BY r.store_id ASC")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "store_id", "amount"}).
			AddRow(1, "S001", 31000).
			AddRow(2, "S002", 0))

	revenues, err := repo.ListAll()
	assert.NoError(t, err)
	assert.Len(t, revenues, 2)
	assert.Equal(t, 31000, revenues[0].Amount)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRevenueRepositoryGetByIDInexistente(t *testing.T) {
	repo, mock := newRevenueRepoWithMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT r.id, r.store_id, r.amount FROM revenues r WHERE r.id = $1")).
		WithArgs(404).
		WillReturnRows(sqlmock.NewRows([]string{"id", "store_id", "amount"}))

	revenue, err := repo.GetByID(404)
	assert.NoError(t, err)
	assert.Nil(t, revenue)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRevenueRepositoryUpdateAmount(t *testing.T) {
	repo, mock := newRevenueRepoWithMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE revenues SET amount = $1 WHERE id = $2")).
		WithArgs(50000, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateAmount(1, 50000)
	assert.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
