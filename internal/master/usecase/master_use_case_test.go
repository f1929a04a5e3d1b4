package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"servicecenter/internal/domain"
	"servicecenter/internal/seed"
)

type mockMasterRepository struct {
	ListFunc func(ctx context.Context) ([]domain.Master, error)
}

func (m *mockMasterRepository) List(ctx context.Context) ([]domain.Master, error) {
	return m.ListFunc(ctx)
}

type mockOrderSource struct {
	ListFunc func(ctx context.Context) ([]domain.Order, error)
}

func (m *mockOrderSource) List(ctx context.Context) ([]domain.Order, error) {
	return m.ListFunc(ctx)
}

func seededUseCase() *MasterUseCase {
	masters := &mockMasterRepository{
		ListFunc: func(ctx context.Context) ([]domain.Master, error) {
			return seed.Roster().Masters, nil
		},
	}
	orders := &mockOrderSource{
		ListFunc: func(ctx context.Context) ([]domain.Order, error) {
			return seed.Orders(), nil
		},
	}
	return NewMasterUseCase(masters, orders, zap.NewNop())
}

func TestGetMasters(t *testing.T) {
	uc := seededUseCase()

	resp, err := uc.GetMasters(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Masters, 4)
	assert.Equal(t, "Иван Петров", resp.Masters[0].Name)
}

func TestGetStats_SeedOrders(t *testing.T) {
	uc := seededUseCase()

	resp, err := uc.GetStats(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Masters, 4)

	first := resp.Masters[0]
	assert.Equal(t, "1", first.ID)
	assert.Equal(t, 2, first.Stats.Total)
	assert.Equal(t, 1, first.Stats.Completed)
	assert.Equal(t, 1, first.Stats.InProgress)
	assert.Equal(t, 0, first.Stats.Pending)

	second := resp.Masters[1]
	assert.Equal(t, 1, second.Stats.Total)
	assert.Equal(t, 1, second.Stats.Pending)

	assert.Equal(t, 0, resp.Masters[2].Stats.Total)
}

func TestGetStats_OrderSourceError(t *testing.T) {
	uc := NewMasterUseCase(
		&mockMasterRepository{ListFunc: func(ctx context.Context) ([]domain.Master, error) { return nil, nil }},
		&mockOrderSource{ListFunc: func(ctx context.Context) ([]domain.Order, error) {
			return nil, errors.New("connection refused")
		}},
		zap.NewNop(),
	)

	_, err := uc.GetStats(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestListMasters_RepositoryError(t *testing.T) {
	uc := NewMasterUseCase(
		&mockMasterRepository{ListFunc: func(ctx context.Context) ([]domain.Master, error) {
			return nil, errors.New("boom")
		}},
		nil,
		zap.NewNop(),
	)

	_, err := uc.ListMasters(context.Background())

	assert.Error(t, err)
}
