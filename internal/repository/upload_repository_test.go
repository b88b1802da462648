package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	apperrors "github.com/axellelanca/fileprocessor/internal/errors"
	"github.com/axellelanca/fileprocessor/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

func newSQLiteRepository(t *testing.T) UploadRepository {
	t.Helper()

	repo, closeFn, err := Open(DriverSQLite, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeFn() })

	return repo
}

func repositories(t *testing.T) map[string]UploadRepository {
	return map[string]UploadRepository{
		"sqlite": newSQLiteRepository(t),
		"memory": NewInMemoryUploadRepository(),
	}
}

func seed(t *testing.T, repo UploadRepository, records ...models.UploadRecord) []models.UploadRecord {
	t.Helper()

	created := make([]models.UploadRecord, 0, len(records))
	for _, rec := range records {
		rec := rec
		require.NoError(t, repo.Create(context.Background(), &rec))
		created = append(created, rec)
	}
	return created
}

func TestUploadRepository_CreateAssignsDistinctIDs(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			created := seed(t, repo,
				models.UploadRecord{FileName: "a.txt", LineCount: 1, WordCount: 2, UploadedAt: base},
				models.UploadRecord{FileName: "a.txt", LineCount: 1, WordCount: 2, UploadedAt: base},
			)

			assert.NotZero(t, created[0].ID)
			assert.NotZero(t, created[1].ID)
			assert.NotEqual(t, created[0].ID, created[1].ID)

			count, err := repo.Count(context.Background())
			require.NoError(t, err)
			assert.Equal(t, int64(2), count)
		})
	}
}

func TestUploadRepository_FindByID(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			created := seed(t, repo, models.UploadRecord{FileName: "notes.csv", LineCount: 4, WordCount: 9, UploadedAt: base})

			found, err := repo.FindByID(context.Background(), created[0].ID)
			require.NoError(t, err)
			assert.Equal(t, "notes.csv", found.FileName)
			assert.Equal(t, int64(4), found.LineCount)
			assert.Equal(t, int64(9), found.WordCount)
			assert.True(t, base.Equal(found.UploadedAt), "uploadedAt = %v", found.UploadedAt)

			_, err = repo.FindByID(context.Background(), created[0].ID+100)
			assert.ErrorIs(t, err, apperrors.ErrRecordNotFound)
		})
	}
}

func TestUploadRepository_FindByID_BeyondSignedRange(t *testing.T) {
	var huge uint64 = 1 << 63

	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			seed(t, repo, models.UploadRecord{FileName: "notes.csv", UploadedAt: base})

			for _, id := range []uint{uint(huge), uint(huge + 1), ^uint(0)} {
				_, err := repo.FindByID(context.Background(), id)
				assert.ErrorIs(t, err, apperrors.ErrRecordNotFound, "id %d", id)
			}
		})
	}
}

func TestUploadRepository_ListOrdering(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			seed(t, repo,
				models.UploadRecord{FileName: "old.txt", UploadedAt: base},
				models.UploadRecord{FileName: "tie-1.txt", UploadedAt: base.Add(time.Hour)},
				models.UploadRecord{FileName: "tie-2.txt", UploadedAt: base.Add(time.Hour)},
				models.UploadRecord{FileName: "new.txt", UploadedAt: base.Add(2 * time.Hour)},
			)

			all, err := repo.ListAll(context.Background())
			require.NoError(t, err)
			assert.Equal(t, []string{"new.txt", "tie-2.txt", "tie-1.txt", "old.txt"}, names(all))

			page, err := repo.List(context.Background(), 1, 2)
			require.NoError(t, err)
			assert.Equal(t, []string{"tie-2.txt", "tie-1.txt"}, names(page))

			tail, err := repo.List(context.Background(), 3, 2)
			require.NoError(t, err)
			assert.Equal(t, []string{"old.txt"}, names(tail))

			beyond, err := repo.List(context.Background(), 10, 2)
			require.NoError(t, err)
			assert.Empty(t, beyond)
		})
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, _, err := Open("postgres", "irrelevant")
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestOpen_MemoryDriver(t *testing.T) {
	repo, closeFn, err := Open(DriverMemory, "")
	require.NoError(t, err)

	assert.IsType(t, &InMemoryUploadRepository{}, repo)
	assert.NoError(t, closeFn())
}

func names(records []models.UploadRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.FileName)
	}
	return out
}
