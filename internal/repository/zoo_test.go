package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/deppfellow/zoos-api/internal/model/zoo"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepository(t *testing.T) (*ZooRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return NewZooRepository(mock), mock
}

func ptr(s string) *string { return &s }

func TestCreateZoo(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO zoos (name) VALUES ($1) RETURNING id, name")).
		WithArgs("Bronx Zoo").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).AddRow(int64(1), "Bronx Zoo"))

	created, err := repo.CreateZoo(context.Background(), ptr("Bronx Zoo"))
	require.NoError(t, err)
	assert.Equal(t, &zoo.Zoo{ID: 1, Name: "Bronx Zoo"}, created)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateZooWithoutName(t *testing.T) {
	repo, mock := newMockRepository(t)

	notNull := &pgconn.PgError{Code: "23502", TableName: "zoos", ColumnName: "name"}
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO zoos (name) VALUES ($1) RETURNING id, name")).
		WithArgs(pgxmock.AnyArg()).
		WillReturnError(notNull)

	_, err := repo.CreateZoo(context.Background(), nil)

	var pgErr *pgconn.PgError
	require.True(t, errors.As(err, &pgErr))
	assert.Equal(t, "23502", pgErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListZoos(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name FROM zoos ORDER BY id")).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).
			AddRow(int64(1), "Bronx Zoo").
			AddRow(int64(2), "San Diego Zoo"))

	zoos, err := repo.ListZoos(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []zoo.Zoo{{ID: 1, Name: "Bronx Zoo"}, {ID: 2, Name: "San Diego Zoo"}}, zoos)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListZoosEmpty(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name FROM zoos ORDER BY id")).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}))

	zoos, err := repo.ListZoos(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, zoos)
	assert.Empty(t, zoos)
}

func TestGetZooByIDMissing(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name FROM zoos WHERE id = $1")).
		WithArgs(int64(99)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}))

	_, err := repo.GetZooByID(context.Background(), 99)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateZoo(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE zoos SET name = $1 WHERE id = $2 RETURNING id, name")).
		WithArgs("Berlin Zoo", int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).AddRow(int64(3), "Berlin Zoo"))

	updated, err := repo.UpdateZoo(context.Background(), 3, ptr("Berlin Zoo"))
	require.NoError(t, err)
	assert.Equal(t, &zoo.Zoo{ID: 3, Name: "Berlin Zoo"}, updated)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateZooNothingToSet(t *testing.T) {
	repo, mock := newMockRepository(t)

	_, err := repo.UpdateZoo(context.Background(), 3, nil)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, pgx.ErrNoRows)

	// No statement reaches the database.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteZoo(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM zoos WHERE id = $1")).
		WithArgs(int64(5)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM zoos WHERE id = $1")).
		WithArgs(int64(5)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	require.NoError(t, repo.DeleteZoo(context.Background(), 5))
	assert.ErrorIs(t, repo.DeleteZoo(context.Background(), 5), pgx.ErrNoRows)

	assert.NoError(t, mock.ExpectationsWereMet())
}
