// internal/domain/upload/service.go
package upload

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/your-org/storefront-backend/internal/config"
)

// Service converts uploaded images into embeddable references. The rest of
// the system only ever stores and reads an opaque string for image fields, so
// the output is a base64 data URI rather than a file on disk.
type Service struct {
	config *config.Config
}

// NewService creates a new upload service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
	}
}

// ImageReference represents an uploaded image as an embeddable string
type ImageReference struct {
	DataURI     string `json:"data_uri"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// EncodeImage validates the uploaded file and returns its data-URI reference
func (s *Service) EncodeImage(file multipart.File, header *multipart.FileHeader) (*ImageReference, error) {
	if header.Size > s.config.Upload.MaxSize {
		return nil, fmt.Errorf("file too large: %d bytes exceeds limit of %d", header.Size, s.config.Upload.MaxSize)
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(header.Filename)), ".")
	if !s.isAllowedExtension(ext) {
		return nil, fmt.Errorf("file extension %q is not allowed", ext)
	}

	contentType := mime.TypeByExtension("." + ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	data, err := io.ReadAll(io.LimitReader(file, s.config.Upload.MaxSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	if int64(len(data)) > s.config.Upload.MaxSize {
		return nil, fmt.Errorf("file too large: exceeds limit of %d bytes", s.config.Upload.MaxSize)
	}

	encoded := base64.StdEncoding.EncodeToString(data)

	return &ImageReference{
		DataURI:     fmt.Sprintf("data:%s;base64,%s", contentType, encoded),
		Filename:    header.Filename,
		ContentType: contentType,
		Size:        int64(len(data)),
	}, nil
}

func (s *Service) isAllowedExtension(ext string) bool {
	for _, allowed := range s.config.Upload.AllowedExtensions {
		if strings.EqualFold(allowed, ext) {
			return true
		}
	}
	return false
}
