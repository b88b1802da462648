package repository

import (
	"context"
	"errors"
	"fmt"
	"math"

	apperrors "github.com/axellelanca/fileprocessor/internal/errors"
	"github.com/axellelanca/fileprocessor/internal/models"
	"gorm.io/gorm"
)

// UploadRepository is the narrow insert/find/list contract over upload metadata.
// Listings are ordered by upload time descending, newest id first on ties.
type UploadRepository interface {
	Create(ctx context.Context, record *models.UploadRecord) error
	FindByID(ctx context.Context, id uint) (*models.UploadRecord, error)
	List(ctx context.Context, offset, limit int) ([]models.UploadRecord, error)
	ListAll(ctx context.Context) ([]models.UploadRecord, error)
	Count(ctx context.Context) (int64, error)
}

// GormUploadRepository implements UploadRepository using GORM.
type GormUploadRepository struct {
	db *gorm.DB
}

// NewUploadRepository creates a new GormUploadRepository.
func NewUploadRepository(db *gorm.DB) *GormUploadRepository {
	return &GormUploadRepository{db: db}
}

// Create inserts the record; the database assigns its ID.
func (r *GormUploadRepository) Create(ctx context.Context, record *models.UploadRecord) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create upload record: %w", err)
	}
	return nil
}

// FindByID returns apperrors.ErrRecordNotFound when no row has the given id.
func (r *GormUploadRepository) FindByID(ctx context.Context, id uint) (*models.UploadRecord, error) {
	// SQLite ids are signed 64-bit and the driver rejects larger values.
	if uint64(id) > math.MaxInt64 {
		return nil, apperrors.ErrRecordNotFound
	}

	var record models.UploadRecord
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to find upload record %d: %w", id, err)
	}
	return &record, nil
}

// List returns at most limit records starting at offset.
func (r *GormUploadRepository) List(ctx context.Context, offset, limit int) ([]models.UploadRecord, error) {
	var records []models.UploadRecord
	err := r.ordered(ctx).Offset(offset).Limit(limit).Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list upload records: %w", err)
	}
	return records, nil
}

// ListAll returns every record.
func (r *GormUploadRepository) ListAll(ctx context.Context) ([]models.UploadRecord, error) {
	var records []models.UploadRecord
	if err := r.ordered(ctx).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve all upload records: %w", err)
	}
	return records, nil
}

// Count returns the total number of records.
func (r *GormUploadRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.UploadRecord{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count upload records: %w", err)
	}
	return count, nil
}

func (r *GormUploadRepository) ordered(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Order("uploaded_at DESC").Order("id DESC")
}
