package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Custom errors for the file processor application

// ErrRecordNotFound is returned by repositories when no upload record matches the lookup.
var ErrRecordNotFound = errors.New("record not found")

// Stable, client-facing messages.
const (
	MsgUnsupportedMediaType = "Unsupported file type. Only .txt and .csv are allowed."
	MsgPayloadTooLarge      = "File size exceeds the payload size limit: "
	MsgProcessingFailure    = "Failed to process file"
	MsgInternal             = "Internal server error"
	MsgRecordNotFound       = "Record not found"
	MsgNoFileUploaded       = "No file uploaded"
)

// Kind classifies a FileError.
type Kind int

const (
	KindUnsupportedMediaType Kind = iota + 1
	KindPayloadTooLarge
	KindProcessingFailure
	KindInvalidArgument
)

func (k Kind) String() string {
	switch k {
	case KindUnsupportedMediaType:
		return "UNSUPPORTED_MEDIA_TYPE"
	case KindPayloadTooLarge:
		return "PAYLOAD_TOO_LARGE"
	case KindProcessingFailure:
		return "PROCESSING_FAILURE"
	case KindInvalidArgument:
		return "INVALID_ARGUMENT"
	default:
		return "UNKNOWN"
	}
}

// FileError is the single error type returned by the upload pipeline.
// Message is safe to show to clients; Err keeps the underlying cause for logs.
type FileError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *FileError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// StatusCode maps the error kind to the HTTP status returned at the boundary.
func (e *FileError) StatusCode() int {
	switch e.Kind {
	case KindUnsupportedMediaType:
		return http.StatusUnsupportedMediaType
	case KindPayloadTooLarge:
		return http.StatusRequestEntityTooLarge
	case KindInvalidArgument:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// NewUnsupportedMediaType is returned when the file name is blank or its extension is not allowed.
func NewUnsupportedMediaType() *FileError {
	return &FileError{Kind: KindUnsupportedMediaType, Message: MsgUnsupportedMediaType}
}

// NewPayloadTooLarge is returned when the declared size exceeds limit bytes.
func NewPayloadTooLarge(limit int64) *FileError {
	return &FileError{Kind: KindPayloadTooLarge, Message: fmt.Sprintf("%s%db", MsgPayloadTooLarge, limit)}
}

// NewProcessingFailure wraps an I/O failure while reading file content.
func NewProcessingFailure(cause error) *FileError {
	return &FileError{Kind: KindProcessingFailure, Message: MsgProcessingFailure, Err: cause}
}

// NewInvalidArgument reports a malformed request parameter.
func NewInvalidArgument(msg string) *FileError {
	return &FileError{Kind: KindInvalidArgument, Message: msg}
}

// IsKind reports whether any error in err's chain is a FileError of the given kind.
func IsKind(err error, kind Kind) bool {
	var fe *FileError
	if errors.As(err, &fe) {
		return fe.Kind == kind
	}
	return false
}
