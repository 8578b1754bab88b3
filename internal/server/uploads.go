package server

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"devconnect/internal/models"

	// Registered so image.DecodeConfig can sniff the allowed formats.
	_ "image/jpeg"
	_ "image/png"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp"
)

// maxUploadBytes caps post image uploads at 5MB.
const maxUploadBytes = 5 << 20

// saveUploadedImage validates and stores an uploaded post image, returning
// the public URL it is served at. The format check decodes the actual bytes;
// the client-supplied Content-Type header is not trusted.
func (s *Server) saveUploadedImage(c *fiber.Ctx, file *multipart.FileHeader) (string, error) {
	if file.Size > maxUploadBytes {
		return "", models.NewValidationError("Image too large (max 5MB)")
	}

	src, err := file.Open()
	if err != nil {
		return "", models.NewValidationError("Unable to read uploaded file")
	}
	defer func() { _ = src.Close() }()

	content, err := io.ReadAll(io.LimitReader(src, maxUploadBytes+1))
	if err != nil {
		return "", models.NewValidationError("Unable to read uploaded file")
	}
	if len(content) > maxUploadBytes {
		return "", models.NewValidationError("Image too large (max 5MB)")
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(content))
	if err != nil {
		return "", models.NewValidationError("Unsupported image format (jpeg, png, webp)")
	}
	switch format {
	case "jpeg", "png", "webp":
	default:
		return "", models.NewValidationError("Unsupported image format (jpeg, png, webp)")
	}

	ext := "." + format
	if format == "jpeg" {
		ext = ".jpg"
	}
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), uuid.NewString(), ext)

	dir := s.config.UploadDir
	if dir == "" {
		dir = "uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", models.NewInternalError(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), content, 0o644); err != nil {
		return "", models.NewInternalError(err)
	}

	base := strings.TrimSuffix(s.config.PublicBaseURL, "/")
	if base == "" {
		base = c.BaseURL()
	}
	return base + "/uploads/" + name, nil
}
