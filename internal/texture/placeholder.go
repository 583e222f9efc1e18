package texture

import "image/color"

// Placeholder colours used when a scene does not specify any.
var (
	DefaultPlaceholderA = color.RGBA{R: 150, G: 70, B: 40, A: 255}
	DefaultPlaceholderB = color.RGBA{R: 90, G: 40, B: 25, A: 255}
)

// Placeholder builds a size x size checkerboard with cells squares per side.
// It stands in for textures whose files are missing.
func Placeholder(size, cells int, a, b color.RGBA) (*Texture, error) {
	t, err := New(size, size)
	if err != nil {
		return nil, err
	}
	if cells <= 0 {
		cells = 1
	}
	cell := size / cells
	if cell == 0 {
		cell = 1
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/cell+y/cell)%2 == 0 {
				t.set(x, y, a)
			} else {
				t.set(x, y, b)
			}
		}
	}
	return t, nil
}
