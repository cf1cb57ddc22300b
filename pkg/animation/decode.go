package animation

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DecodeConfig reads only the image header from r and returns the atlas
// state for its dimensions.
func DecodeConfig(r io.Reader) (*Texture, error) {
	cfg, format, err := image.DecodeConfig(r)
	if err != nil {
		return nil, fmt.Errorf("could not decode image header: %w", err)
	}
	t, err := NewTexture(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("%s atlas: %w", format, err)
	}
	return t, nil
}

// Load opens an image file and returns its atlas state.
func Load(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open texture: %w", err)
	}
	defer f.Close()

	return DecodeConfig(f)
}

// TextureFile maps a texture path such as "minecraft:block/stone" to its
// image file under the assets directory root.
func TextureFile(root, path string) string {
	path = strings.TrimPrefix(path, "minecraft:")
	return filepath.Join(root, "textures", filepath.FromSlash(path)+".png")
}

// DirResolver reads atlas headers from an assets directory and hands out one
// shared Texture per path. It is not safe for concurrent use.
type DirResolver struct {
	root      string
	frameTime time.Duration
	cache     map[string]*Texture
}

func NewDirResolver(root string, frameTime time.Duration) *DirResolver {
	return &DirResolver{root: root, frameTime: frameTime, cache: make(map[string]*Texture)}
}

// Resolve returns the atlas state for a texture path.
func (d *DirResolver) Resolve(path string) (*Texture, error) {
	if t, ok := d.cache[path]; ok {
		return t, nil
	}
	t, err := Load(TextureFile(d.root, path))
	if err != nil {
		return nil, err
	}
	t.SetFrameTime(d.frameTime)
	d.cache[path] = t
	return t, nil
}
