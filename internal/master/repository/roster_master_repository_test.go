package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servicecenter/internal/seed"
)

func TestRosterMasterRepository_List(t *testing.T) {
	repo := NewRosterMasterRepository(seed.Roster().Masters)

	masters, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, masters, 4)
	assert.Equal(t, "1", masters[0].ID)
	assert.Equal(t, "master4", masters[3].Login)
}

func TestRosterMasterRepository_ListReturnsCopy(t *testing.T) {
	repo := NewRosterMasterRepository(seed.Roster().Masters)

	first, _ := repo.List(context.Background())
	first[0].Name = "changed"

	second, _ := repo.List(context.Background())
	assert.NotEqual(t, "changed", second[0].Name)
}
