// Package services contains the business logic layer of the file processor.
package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	apperrors "github.com/axellelanca/fileprocessor/internal/errors"
	"github.com/axellelanca/fileprocessor/internal/models"
	"github.com/axellelanca/fileprocessor/internal/repository"
)

// DefaultMaxPageSize caps the size of a listing page when none is configured.
const DefaultMaxPageSize = 100

// UploadedFile is a file handed to the pipeline: a client-supplied name, the
// declared byte size and a way to open its content.
type UploadedFile interface {
	Name() string
	Size() int64
	Open() (io.ReadCloser, error)
}

// Clock returns the current time. Tests substitute a fixed clock.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

// Dependency groups what FileService needs. Zero values fall back to defaults.
type Dependency struct {
	Repo        repository.UploadRepository
	Clock       Clock
	MaxFileSize int64
	MaxPageSize int
}

// FileService validates, counts and persists uploads, and serves their metadata.
type FileService struct {
	repo        repository.UploadRepository
	clock       Clock
	maxFileSize int64
	maxPageSize int
}

// NewFileService creates a FileService.
func NewFileService(dep Dependency) *FileService {
	svc := &FileService{
		repo:        dep.Repo,
		clock:       dep.Clock,
		maxFileSize: dep.MaxFileSize,
		maxPageSize: dep.MaxPageSize,
	}
	if svc.clock == nil {
		svc.clock = realClock{}
	}
	if svc.maxFileSize <= 0 {
		svc.maxFileSize = DefaultMaxFileSize
	}
	if svc.maxPageSize <= 0 {
		svc.maxPageSize = DefaultMaxPageSize
	}
	return svc
}

// MaxFileSize returns the upload size limit in bytes.
func (s *FileService) MaxFileSize() int64 {
	return s.maxFileSize
}

// ProcessAndSave validates file, counts its lines and words and stores a new
// record. Validation runs before the content is opened, and nothing is stored
// unless the whole content was read. Every call creates a new record.
func (s *FileService) ProcessAndSave(ctx context.Context, file UploadedFile) (*models.UploadRecord, error) {
	if file == nil {
		return nil, errors.New("file must not be nil")
	}

	name := file.Name()
	if !IsAllowedFile(name) {
		return nil, apperrors.NewUnsupportedMediaType()
	}
	if file.Size() > s.maxFileSize {
		return nil, apperrors.NewPayloadTooLarge(s.maxFileSize)
	}

	slog.InfoContext(ctx, "starting file processing", "file_name", name, "size", file.Size())

	counts, err := s.count(file)
	if err != nil {
		slog.ErrorContext(ctx, "error while processing file", "file_name", name, "error", err)
		return nil, apperrors.NewProcessingFailure(err)
	}

	record := &models.UploadRecord{
		FileName:   name,
		LineCount:  counts.Lines,
		WordCount:  counts.Words,
		UploadedAt: s.clock.Now().UTC(),
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save metadata for %s: %w", name, err)
	}

	slog.InfoContext(ctx, "completed file processing",
		"file_name", name, "lines", record.LineCount, "words", record.WordCount, "id", record.ID)

	return record, nil
}

func (s *FileService) count(file UploadedFile) (Counts, error) {
	rc, err := file.Open()
	if err != nil {
		return Counts{}, fmt.Errorf("open: %w", err)
	}
	defer rc.Close()

	return CountLinesAndWords(rc)
}

// ListPaginated returns the zero-based page of records, newest first.
// Pages past the end are empty rather than an error.
func (s *FileService) ListPaginated(ctx context.Context, page, size int) (models.Page, error) {
	if page < 0 {
		return models.Page{}, apperrors.NewInvalidArgument("page must not be negative")
	}
	if size < 1 {
		return models.Page{}, apperrors.NewInvalidArgument("size must be greater than zero")
	}
	if size > s.maxPageSize {
		size = s.maxPageSize
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return models.Page{}, err
	}

	var content []models.UploadRecord
	// Comparing against the page count keeps page*size from overflowing.
	totalPages := (total + int64(size) - 1) / int64(size)
	if int64(page) < totalPages {
		content, err = s.repo.List(ctx, page*size, size)
		if err != nil {
			return models.Page{}, err
		}
	}

	return models.NewPage(content, page, size, total), nil
}

// ListAll returns every record, newest first.
func (s *FileService) ListAll(ctx context.Context) ([]models.UploadRecord, error) {
	return s.repo.ListAll(ctx)
}

// FindByID reports found=false, with a nil error, when no record has the id.
func (s *FileService) FindByID(ctx context.Context, id uint) (*models.UploadRecord, bool, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return record, true, nil
}

// LocalFile is an UploadedFile backed by a file on disk.
type LocalFile struct {
	path string
	size int64
}

// NewLocalFile stats path so that its size can be validated before opening.
func NewLocalFile(path string) (*LocalFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	return &LocalFile{path: path, size: info.Size()}, nil
}

func (f *LocalFile) Name() string { return filepath.Base(f.path) }

func (f *LocalFile) Size() int64 { return f.size }

func (f *LocalFile) Open() (io.ReadCloser, error) { return os.Open(f.path) }
