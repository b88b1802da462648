package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	apperrors "github.com/axellelanca/fileprocessor/internal/errors"
	"github.com/axellelanca/fileprocessor/internal/models"
	"github.com/axellelanca/fileprocessor/internal/services"
	"github.com/gin-gonic/gin"
)

// multipartOverhead is the room left above the file size limit for multipart
// boundaries, part headers and other form fields.
const multipartOverhead = 1 << 20

// FileService is the part of services.FileService the handlers depend on.
type FileService interface {
	MaxFileSize() int64
	ProcessAndSave(ctx context.Context, file services.UploadedFile) (*models.UploadRecord, error)
	ListPaginated(ctx context.Context, page, size int) (models.Page, error)
	FindByID(ctx context.Context, id uint) (*models.UploadRecord, bool, error)
}

// SetupRoutes configures all Gin API routes and injects the file service.
// defaultPageSize is used when the list endpoint receives no size parameter.
func SetupRoutes(router *gin.Engine, fileService FileService, defaultPageSize int) {
	// Health Check Route - used for monitoring service availability
	router.GET("/health", HealthCheckHandler)

	files := router.Group("/api/files")
	{
		files.POST("/upload", UploadFileHandler(fileService))
		files.GET("/list", ListFilesHandler(fileService, defaultPageSize))
		files.GET("/:id", GetFileHandler(fileService))
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
}

// HealthCheckHandler handles the /health route to verify service status
func HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// multipartFile adapts an uploaded multipart part to services.UploadedFile.
type multipartFile struct {
	header *multipart.FileHeader
}

func (f multipartFile) Name() string { return f.header.Filename }

func (f multipartFile) Size() int64 { return f.header.Size }

func (f multipartFile) Open() (io.ReadCloser, error) { return f.header.Open() }

// UploadFileHandler accepts a multipart upload in the "file" field, counts its
// lines and words and responds with the stored record. The request body is
// capped so oversized uploads are refused without being read to the end.
func UploadFileHandler(fileService FileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := fileService.MaxFileSize()
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit+multipartOverhead)

		header, err := c.FormFile("file")
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				respondError(c, apperrors.NewPayloadTooLarge(limit))
				return
			}
			slog.DebugContext(c.Request.Context(), "no file in upload request", "error", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.MsgNoFileUploaded})
			return
		}

		record, err := fileService.ProcessAndSave(c.Request.Context(), multipartFile{header: header})
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, record)
	}
}

// ListFilesHandler returns a page of records ordered by upload time, newest first.
// Query parameters: page (zero-based, default 0) and size (default defaultPageSize).
func ListFilesHandler(fileService FileService, defaultPageSize int) gin.HandlerFunc {
	defaultSize := strconv.Itoa(defaultPageSize)

	return func(c *gin.Context) {
		page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
		if err != nil {
			respondError(c, apperrors.NewInvalidArgument("Invalid page parameter"))
			return
		}

		size, err := strconv.Atoi(c.DefaultQuery("size", defaultSize))
		if err != nil {
			respondError(c, apperrors.NewInvalidArgument("Invalid size parameter"))
			return
		}

		result, err := fileService.ListPaginated(c.Request.Context(), page, size)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// GetFileHandler returns one record by id, or 404 when it does not exist.
func GetFileHandler(fileService FileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 0)
		if err != nil {
			respondError(c, apperrors.NewInvalidArgument("Invalid record id"))
			return
		}

		record, found, err := fileService.FindByID(c.Request.Context(), uint(id))
		if err != nil {
			respondError(c, err)
			return
		}
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": apperrors.MsgRecordNotFound})
			return
		}

		c.JSON(http.StatusOK, record)
	}
}

// respondError writes the {"error": ...} body for err. Pipeline errors carry a
// client-safe message; anything else becomes a generic 500.
func respondError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var fileErr *apperrors.FileError
	if errors.As(err, &fileErr) {
		status := fileErr.StatusCode()
		if status >= http.StatusInternalServerError {
			slog.ErrorContext(ctx, "request failed", "kind", fileErr.Kind.String(), "error", err)
		} else {
			slog.WarnContext(ctx, "validation error", "kind", fileErr.Kind.String(), "error", fileErr.Message)
		}
		c.JSON(status, gin.H{"error": fileErr.Message})
		return
	}

	slog.ErrorContext(ctx, "unhandled error", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": apperrors.MsgInternal})
}
