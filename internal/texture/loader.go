package texture

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
)

// Decode reads an encoded PNG, JPEG, GIF or BMP image and converts it to a texture.
func Decode(r io.Reader) (*Texture, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	t, err := FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("invalid %s texture: %w", format, err)
	}
	return t, nil
}

// LoadFile decodes the texture stored at path.
func LoadFile(path string) (*Texture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture file %s: %w", path, err)
	}
	defer file.Close()

	t, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
