package service

import (
	"context"
	"strconv"

	"github.com/deppfellow/zoos-api/internal/errs"
	"github.com/deppfellow/zoos-api/internal/model/zoo"
	"github.com/deppfellow/zoos-api/internal/server"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

// zooStore is the persistence the zoo service needs; *repository.ZooRepository
// implements it.
type zooStore interface {
	CreateZoo(ctx context.Context, name *string) (*zoo.Zoo, error)
	ListZoos(ctx context.Context) ([]zoo.Zoo, error)
	GetZooByID(ctx context.Context, id int64) (*zoo.Zoo, error)
	UpdateZoo(ctx context.Context, id int64, name *string) (*zoo.Zoo, error)
	DeleteZoo(ctx context.Context, id int64) error
}

type ZooService struct {
	server *server.Server
	store  zooStore
}

func NewZooService(s *server.Server, store zooStore) *ZooService {
	return &ZooService{
		server: s,
		store:  store,
	}
}

func (s *ZooService) CreateZoo(ctx context.Context, payload *zoo.CreateZooPayload) (*zoo.Zoo, error) {
	created, err := s.store.CreateZoo(ctx, payload.Name)
	if err != nil {
		return nil, err
	}

	s.server.Logger.Info().Int64("zoo_id", created.ID).Msg("zoo created")
	return created, nil
}

func (s *ZooService) ListZoos(ctx context.Context) ([]zoo.Zoo, error) {
	return s.store.ListZoos(ctx)
}

func (s *ZooService) GetZoo(ctx context.Context, rawID string) (*zoo.Zoo, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}

	found, err := s.store.GetZooByID(ctx, id)
	if err != nil {
		return nil, notFound(err, rawID)
	}

	return found, nil
}

func (s *ZooService) UpdateZoo(ctx context.Context, payload *zoo.UpdateZooPayload) (*zoo.Zoo, error) {
	id, err := parseID(payload.ID)
	if err != nil {
		return nil, err
	}

	updated, err := s.store.UpdateZoo(ctx, id, payload.Name)
	if err != nil {
		return nil, notFound(err, payload.ID)
	}

	s.server.Logger.Info().Int64("zoo_id", updated.ID).Msg("zoo updated")
	return updated, nil
}

func (s *ZooService) DeleteZoo(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}

	if err := s.store.DeleteZoo(ctx, id); err != nil {
		return notFound(err, rawID)
	}

	s.server.Logger.Info().Int64("zoo_id", id).Msg("zoo deleted")
	return nil
}

// parseID reads a path id. No row can have an id that is not an integer, so
// a malformed one is answered exactly like an absent one.
func parseID(rawID string) (int64, error) {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return 0, errs.NewNotFoundError(zoo.NotFoundMessage(rawID), true, nil)
	}
	return id, nil
}

// notFound maps a missing row onto the zoo 404 and passes anything else through.
func notFound(err error, rawID string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.NewNotFoundError(zoo.NotFoundMessage(rawID), true, nil)
	}
	return err
}
