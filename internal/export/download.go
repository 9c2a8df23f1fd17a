package export

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/vincentbai/watss-forms/internal/models"
)

// Downloader hands generated CSV text to the user as a named file.
type Downloader interface {
	Download(ctx context.Context, filename, csv string) error
}

// Download serializes the list and passes it to d. An empty list is rejected.
func Download(ctx context.Context, d Downloader, list []models.Submission, filename string) error {
	if len(list) == 0 {
		return ErrNothingToDownload
	}
	return d.Download(ctx, SanitizeFilename(filename), Serialize(list))
}

// SanitizeFilename strips any directory part and falls back to DefaultFilename.
func SanitizeFilename(filename string) string {
	filename = strings.TrimSpace(filename)
	filename = filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	if filename == "" || filename == "." || filename == "/" || filename == ".." {
		return DefaultFilename
	}
	return filename
}

// HTTPDownloader writes the CSV as an attachment response.
type HTTPDownloader struct {
	W http.ResponseWriter
}

func (h HTTPDownloader) Download(_ context.Context, filename, csv string) error {
	header := h.W.Header()
	header.Set("Content-Type", ContentType)
	header.Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	header.Set("Cache-Control", "no-store")
	h.W.WriteHeader(http.StatusOK)
	if _, err := h.W.Write([]byte(csv)); err != nil {
		return fmt.Errorf("failed to write csv response: %w", err)
	}
	return nil
}

// FileDownloader saves the CSV into Dir, replacing any previous export of the same name.
type FileDownloader struct {
	Dir string

	// Path of the last written file.
	Path string
}

func (f *FileDownloader) Download(_ context.Context, filename, csv string) error {
	if err := os.MkdirAll(f.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	path := filepath.Join(f.Dir, filename)
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	f.Path = path
	return nil
}
