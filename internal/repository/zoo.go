package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/deppfellow/zoos-api/internal/model/zoo"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
)

// DBTX is the slice of the pgx API the repositories use. *pgxpool.Pool,
// *pgx.Conn and pgx.Tx all satisfy it.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const zoosTable = "zoos"

var zooColumns = []string{"id", "name"}

// returning is appended to writes so the stored row comes back in one round trip.
const returning = "RETURNING id, name"

// ZooRepository runs the SQL for the zoos table.
type ZooRepository struct {
	db   DBTX
	psql sq.StatementBuilderType
}

func NewZooRepository(db DBTX) *ZooRepository {
	return &ZooRepository{
		db:   db,
		psql: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreateZoo inserts a zoo and returns the stored row. A nil name is written
// as NULL and rejected by the table's NOT NULL constraint.
func (r *ZooRepository) CreateZoo(ctx context.Context, name *string) (*zoo.Zoo, error) {
	var value any
	if name != nil {
		value = *name
	}

	query, args, err := r.psql.
		Insert(zoosTable).
		Columns("name").
		Values(value).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building insert zoo query")
	}

	created, err := scanZoo(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, errors.Wrap(err, "insert zoo")
	}

	return created, nil
}

// ListZoos returns every zoo ordered by id. An empty table yields an empty slice.
func (r *ZooRepository) ListZoos(ctx context.Context) ([]zoo.Zoo, error) {
	query, args, err := r.psql.
		Select(zooColumns...).
		From(zoosTable).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building list zoos query")
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "list zoos")
	}
	defer rows.Close()

	zoos := []zoo.Zoo{}
	for rows.Next() {
		var z zoo.Zoo
		if err := rows.Scan(&z.ID, &z.Name); err != nil {
			return nil, errors.Wrap(err, "scan zoo")
		}
		zoos = append(zoos, z)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate zoos")
	}

	return zoos, nil
}

// GetZooByID returns the zoo with id, or an error wrapping pgx.ErrNoRows.
func (r *ZooRepository) GetZooByID(ctx context.Context, id int64) (*zoo.Zoo, error) {
	query, args, err := r.psql.
		Select(zooColumns...).
		From(zoosTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building get zoo query")
	}

	found, err := scanZoo(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, errors.Wrapf(err, "get zoo %d", id)
	}

	return found, nil
}

// UpdateZoo sets the zoo's name and returns the stored row, or an error
// wrapping pgx.ErrNoRows when no zoo has id.
func (r *ZooRepository) UpdateZoo(ctx context.Context, id int64, name *string) (*zoo.Zoo, error) {
	builder := r.psql.
		Update(zoosTable).
		Where(sq.Eq{"id": id}).
		Suffix(returning)
	if name != nil {
		builder = builder.Set("name", *name)
	}

	// An update with nothing to set fails here.
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building update zoo query")
	}

	updated, err := scanZoo(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, errors.Wrapf(err, "update zoo %d", id)
	}

	return updated, nil
}

// DeleteZoo removes the zoo with id. It returns an error wrapping
// pgx.ErrNoRows when nothing was deleted.
func (r *ZooRepository) DeleteZoo(ctx context.Context, id int64) error {
	query, args, err := r.psql.
		Delete(zoosTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "building delete zoo query")
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return errors.Wrapf(err, "delete zoo %d", id)
	}

	if tag.RowsAffected() == 0 {
		return errors.Wrapf(pgx.ErrNoRows, "delete zoo %d", id)
	}

	return nil
}

func scanZoo(row pgx.Row) (*zoo.Zoo, error) {
	var z zoo.Zoo
	if err := row.Scan(&z.ID, &z.Name); err != nil {
		return nil, err
	}
	return &z, nil
}
