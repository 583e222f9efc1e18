package texture

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Spec describes where a named texture comes from.
type Spec struct {
	File        string           `yaml:"file"`
	Placeholder *PlaceholderSpec `yaml:"placeholder"`
}

// PlaceholderSpec configures a generated checkerboard texture.
type PlaceholderSpec struct {
	Size   int    `yaml:"size"`
	Cells  int    `yaml:"cells"`
	ColorA [3]int `yaml:"color_a"`
	ColorB [3]int `yaml:"color_b"`
}

const (
	defaultPlaceholderSize  = 64
	defaultPlaceholderCells = 8
)

// Library holds textures by name. It is read-only once loaded and safe for
// concurrent sampling.
type Library struct {
	textures map[string]*Texture
}

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	return &Library{textures: make(map[string]*Texture)}
}

// Add registers t under name, replacing any previous entry.
func (l *Library) Add(name string, t *Texture) {
	l.textures[name] = t
}

func (l *Library) Get(name string) (*Texture, bool) {
	t, ok := l.textures[name]
	return t, ok
}

func (l *Library) Len() int {
	return len(l.textures)
}

// Names returns the texture names in sorted order.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.textures))
	for name := range l.textures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadLibrary loads every spec concurrently. Relative file paths are resolved
// against baseDir. A missing file is replaced by a placeholder; any other
// failure, including non-power-of-two dimensions, aborts the load.
func LoadLibrary(ctx context.Context, baseDir string, specs map[string]Spec, logger *zap.Logger) (*Library, error) {
	lib := NewLibrary()
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for name, spec := range specs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t, err := loadSpec(baseDir, name, spec, logger)
			if err != nil {
				return fmt.Errorf("texture %q: %w", name, err)
			}
			mu.Lock()
			lib.Add(name, t)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	logger.Info("textures loaded", zap.Int("count", lib.Len()))
	return lib, nil
}

func loadSpec(baseDir, name string, spec Spec, logger *zap.Logger) (*Texture, error) {
	if spec.File == "" {
		return placeholderFromSpec(spec.Placeholder)
	}

	path := spec.File
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}

	t, err := LoadFile(path)
	if err == nil {
		logger.Debug("texture decoded",
			zap.String("name", name),
			zap.String("path", path),
			zap.Int("width", t.Width()),
			zap.Int("height", t.Height()))
		return t, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	logger.Warn("texture file missing, using placeholder",
		zap.String("name", name),
		zap.String("path", path))
	return placeholderFromSpec(spec.Placeholder)
}

func placeholderFromSpec(ps *PlaceholderSpec) (*Texture, error) {
	if ps == nil {
		return Placeholder(defaultPlaceholderSize, defaultPlaceholderCells, DefaultPlaceholderA, DefaultPlaceholderB)
	}

	size := ps.Size
	if size == 0 {
		size = defaultPlaceholderSize
	}
	cells := ps.Cells
	if cells == 0 {
		cells = defaultPlaceholderCells
	}
	a, b := DefaultPlaceholderA, DefaultPlaceholderB
	if ps.ColorA != [3]int{} {
		a = rgb(ps.ColorA)
	}
	if ps.ColorB != [3]int{} {
		b = rgb(ps.ColorB)
	}
	return Placeholder(size, cells, a, b)
}

func rgb(c [3]int) color.RGBA {
	return color.RGBA{R: uint8(c[0]), G: uint8(c[1]), B: uint8(c[2]), A: 255}
}
