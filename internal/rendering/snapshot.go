package rendering

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
)

// WritePNG encodes the framebuffer as a PNG image.
func WritePNG(w io.Writer, fb *Framebuffer) error {
	return png.Encode(w, fb.Image())
}

// SaveSnapshot writes fb to dir as frame-<checksum>.png and returns the path.
// Identical frames map to the same file name.
func SaveSnapshot(dir string, fb *Framebuffer) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create snapshot dir: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("frame-%016x.png", fb.Checksum()))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create snapshot: %w", err)
	}
	defer file.Close()

	if err := WritePNG(file, fb); err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return path, file.Close()
}
