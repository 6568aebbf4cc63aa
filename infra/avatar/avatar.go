package avatar

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"
)

// maxFileSize caps avatar files at 2 MiB; the reference is held in memory
// for the whole session.
const maxFileSize = 2 << 20

// FileSource reads a user-picked image file and yields a displayable
// data-URI reference. It does NOT validate the reference beyond sniffing a
// MIME type — the store treats it as an opaque string.
type FileSource struct{}

// NewFileSource creates a FileSource.
func NewFileSource() *FileSource {
	return &FileSource{}
}

// Load reads the file at path and returns a data URI. The context is checked
// before the read so a cancelled load never reaches the store.
func (f *FileSource) Load(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("reading avatar: %w", err)
	}
	if info.Size() > maxFileSize {
		return "", fmt.Errorf("avatar file too large: %d bytes", info.Size())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading avatar: %w", err)
	}

	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("not an image: %s", mime)
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
