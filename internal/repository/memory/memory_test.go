package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcity/trafficmap/internal/domain"
)

func TestMemoryRepository(t *testing.T) {
	repo := NewMemoryRepository(domain.Report{ID: 1, Type: "accident"})
	ctx := context.Background()

	r := &domain.Report{Type: "festival"}
	require.NoError(t, repo.SaveReport(ctx, r))
	assert.Equal(t, 2, r.ID)

	reports, err := repo.ListReports(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "festival", reports[1].Type)

	// callers get a copy
	reports[0].Type = "changed"
	again, _ := repo.ListReports(ctx)
	assert.Equal(t, "accident", again[0].Type)
}

func TestMemoryRepositoryCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, NewMemoryRepository().SaveReport(ctx, &domain.Report{}), context.Canceled)
}
