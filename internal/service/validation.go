package service

import (
	"fmt"
	"slices"
	"strings"

	"github.com/andriskumpel/combate-desinformacao/internal/domain"
)

var allowedExtensions = map[domain.ContentType][]string{
	domain.ContentImage: {"jpg", "jpeg", "png", "gif"},
	domain.ContentVideo: {"mp4", "avi", "mov"},
}

// ValidateFile checks an uploaded file's declared kind and extension.
// Everything after the last dot counts as the extension; a name without a
// dot is compared as a whole.
func ValidateFile(kind domain.ContentType, filename string) error {
	allowed, ok := allowedExtensions[kind]
	if !ok {
		return fmt.Errorf("%w: %s. Must be 'image' or 'video'", domain.ErrInvalidContentType, kind)
	}

	ext := strings.ToLower(filename[strings.LastIndex(filename, ".")+1:])
	if !slices.Contains(allowed, ext) {
		return fmt.Errorf("%w: invalid %s format: %s. Supported formats: %s",
			domain.ErrInvalidFileFormat, kind, ext, strings.Join(allowed, ", "))
	}
	return nil
}
