package services

import "strings"

// DefaultMaxFileSize is the upload size limit in bytes (5 MiB).
const DefaultMaxFileSize int64 = 5 * 1024 * 1024

var allowedExtensions = []string{".txt", ".csv"}

// IsAllowedFile reports whether name is non-blank and ends with an allowed
// extension, ignoring case.
func IsAllowedFile(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}

	lower := strings.ToLower(name)
	for _, ext := range allowedExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
