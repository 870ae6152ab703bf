package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcity/trafficmap/internal/domain"
)

func TestListMissingFile(t *testing.T) {
	repo := NewRepository(filepath.Join(t.TempDir(), "reports.json"))

	reports, err := repo.ListReports(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, reports)
	assert.Empty(t, reports)
	assert.NoError(t, repo.Health(context.Background()))
}

func TestSaveAssignsSequentialIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "reports.json")
	repo := NewRepository(path)
	ctx := context.Background()

	first := &domain.Report{Type: "accident", Location: "AVS Junction", Timestamp: time.Now()}
	second := &domain.Report{Type: "flooding", Location: "Market Zone", Timestamp: time.Now()}
	require.NoError(t, repo.SaveReport(ctx, first))
	require.NoError(t, repo.SaveReport(ctx, second))
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)

	// a fresh repository over the same file sees both
	reports, err := NewRepository(path).ListReports(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "accident", reports[0].Type)
	assert.Equal(t, "Market Zone", reports[1].Location)
}

func TestSaveAfterExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id": 7, "type": "roadwork"}]`), 0o644))

	report := &domain.Report{Type: "congestion"}
	require.NoError(t, NewRepository(path).SaveReport(context.Background(), report))
	assert.Equal(t, 2, report.ID)
}

func TestCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o644))
	repo := NewRepository(path)

	_, err := repo.ListReports(context.Background())
	assert.Error(t, err)
	assert.Error(t, repo.Health(context.Background()))
	assert.Error(t, repo.SaveReport(context.Background(), &domain.Report{Type: "other"}))
}
