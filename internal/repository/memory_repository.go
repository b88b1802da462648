package repository

import (
	"context"
	"sort"
	"sync"

	apperrors "github.com/axellelanca/fileprocessor/internal/errors"
	"github.com/axellelanca/fileprocessor/internal/models"
)

// InMemoryUploadRepository keeps records in a map. IDs increase monotonically
// and are never reused.
type InMemoryUploadRepository struct {
	mu      sync.RWMutex
	records map[uint]models.UploadRecord
	lastID  uint
}

func NewInMemoryUploadRepository() *InMemoryUploadRepository {
	return &InMemoryUploadRepository{
		records: make(map[uint]models.UploadRecord),
	}
}

func (r *InMemoryUploadRepository) Create(_ context.Context, record *models.UploadRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	record.ID = r.lastID
	r.records[record.ID] = *record

	return nil
}

func (r *InMemoryUploadRepository) FindByID(_ context.Context, id uint) (*models.UploadRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[id]
	if !ok {
		return nil, apperrors.ErrRecordNotFound
	}
	return &record, nil
}

func (r *InMemoryUploadRepository) List(ctx context.Context, offset, limit int) ([]models.UploadRecord, error) {
	all, _ := r.ListAll(ctx)
	if offset >= len(all) {
		return []models.UploadRecord{}, nil
	}

	end := len(all)
	if limit < end-offset {
		end = offset + limit
	}
	return all[offset:end], nil
}

func (r *InMemoryUploadRepository) ListAll(_ context.Context) ([]models.UploadRecord, error) {
	r.mu.RLock()
	all := make([]models.UploadRecord, 0, len(r.records))
	for _, record := range r.records {
		all = append(all, record)
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if !all[i].UploadedAt.Equal(all[j].UploadedAt) {
			return all[i].UploadedAt.After(all[j].UploadedAt)
		}
		return all[i].ID > all[j].ID
	})

	return all, nil
}

func (r *InMemoryUploadRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.records)), nil
}
