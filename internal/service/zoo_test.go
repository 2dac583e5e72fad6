package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/deppfellow/zoos-api/internal/config"
	"github.com/deppfellow/zoos-api/internal/errs"
	"github.com/deppfellow/zoos-api/internal/model/zoo"
	"github.com/deppfellow/zoos-api/internal/server"
	"github.com/jackc/pgx/v5"
	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) CreateZoo(ctx context.Context, name *string) (*zoo.Zoo, error) {
	args := m.Called(ctx, name)
	created, _ := args.Get(0).(*zoo.Zoo)
	return created, args.Error(1)
}

func (m *MockStore) ListZoos(ctx context.Context) ([]zoo.Zoo, error) {
	args := m.Called(ctx)
	zoos, _ := args.Get(0).([]zoo.Zoo)
	return zoos, args.Error(1)
}

func (m *MockStore) GetZooByID(ctx context.Context, id int64) (*zoo.Zoo, error) {
	args := m.Called(ctx, id)
	found, _ := args.Get(0).(*zoo.Zoo)
	return found, args.Error(1)
}

func (m *MockStore) UpdateZoo(ctx context.Context, id int64, name *string) (*zoo.Zoo, error) {
	args := m.Called(ctx, id, name)
	updated, _ := args.Get(0).(*zoo.Zoo)
	return updated, args.Error(1)
}

func (m *MockStore) DeleteZoo(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func newService(store zooStore) *ZooService {
	logger := zerolog.Nop()
	return NewZooService(&server.Server{Config: config.DefaultConfig(), Logger: &logger}, store)
}

func name(s string) *string { return &s }

func requireNotFound(t *testing.T, err error, message string) {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %v", err)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, message, httpErr.Message)
}

func TestCreateZoo(t *testing.T) {
	store := new(MockStore)
	ctx := context.Background()
	payload := &zoo.CreateZooPayload{Fields: zoo.Fields{Keys: []string{"name"}, Name: name("Bronx Zoo")}}

	store.On("CreateZoo", ctx, payload.Name).Return(&zoo.Zoo{ID: 1, Name: "Bronx Zoo"}, nil)

	created, err := newService(store).CreateZoo(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	store.AssertExpectations(t)
}

func TestCreateZooPassesStoreErrorsThrough(t *testing.T) {
	store := new(MockStore)
	ctx := context.Background()
	boom := errors.New("connection refused")

	store.On("CreateZoo", ctx, (*string)(nil)).Return(nil, boom)

	_, err := newService(store).CreateZoo(ctx, &zoo.CreateZooPayload{})
	assert.ErrorIs(t, err, boom)
}

func TestGetZoo(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		store := new(MockStore)
		store.On("GetZooByID", ctx, int64(2)).Return(&zoo.Zoo{ID: 2, Name: "Berlin Zoo"}, nil)

		found, err := newService(store).GetZoo(ctx, "2")
		require.NoError(t, err)
		assert.Equal(t, "Berlin Zoo", found.Name)
		store.AssertExpectations(t)
	})

	t.Run("missing row", func(t *testing.T) {
		store := new(MockStore)
		store.On("GetZooByID", ctx, int64(8)).Return(nil, pkgerrors.Wrap(pgx.ErrNoRows, "get zoo 8"))

		_, err := newService(store).GetZoo(ctx, "8")
		requireNotFound(t, err, "Zoo with ID of 8 not found.")
	})

	t.Run("malformed id never reaches the store", func(t *testing.T) {
		store := new(MockStore)

		_, err := newService(store).GetZoo(ctx, "abc")
		requireNotFound(t, err, "Zoo with ID of abc not found.")
		store.AssertNotCalled(t, "GetZooByID", mock.Anything, mock.Anything)
	})
}

func TestUpdateZoo(t *testing.T) {
	ctx := context.Background()

	t.Run("updated", func(t *testing.T) {
		store := new(MockStore)
		payload := &zoo.UpdateZooPayload{ID: "3", Fields: zoo.Fields{Keys: []string{"name"}, Name: name("Renamed")}}
		store.On("UpdateZoo", ctx, int64(3), payload.Name).Return(&zoo.Zoo{ID: 3, Name: "Renamed"}, nil)

		updated, err := newService(store).UpdateZoo(ctx, payload)
		require.NoError(t, err)
		assert.Equal(t, &zoo.Zoo{ID: 3, Name: "Renamed"}, updated)
	})

	t.Run("missing row", func(t *testing.T) {
		store := new(MockStore)
		payload := &zoo.UpdateZooPayload{ID: "404", Fields: zoo.Fields{Name: name("x")}}
		store.On("UpdateZoo", ctx, int64(404), payload.Name).Return(nil, pgx.ErrNoRows)

		_, err := newService(store).UpdateZoo(ctx, payload)
		requireNotFound(t, err, "Zoo with ID of 404 not found.")
	})
}

func TestDeleteZoo(t *testing.T) {
	ctx := context.Background()
	store := new(MockStore)
	store.On("DeleteZoo", ctx, int64(5)).Return(nil).Once()
	store.On("DeleteZoo", ctx, int64(5)).Return(pkgerrors.Wrap(pgx.ErrNoRows, "delete zoo 5")).Once()

	svc := newService(store)
	require.NoError(t, svc.DeleteZoo(ctx, "5"))
	requireNotFound(t, svc.DeleteZoo(ctx, "5"), "Zoo with ID of 5 not found.")
	store.AssertExpectations(t)
}

func TestListZoos(t *testing.T) {
	ctx := context.Background()
	store := new(MockStore)
	store.On("ListZoos", ctx).Return([]zoo.Zoo{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}, nil)

	zoos, err := newService(store).ListZoos(ctx)
	require.NoError(t, err)
	assert.Len(t, zoos, 2)
}
