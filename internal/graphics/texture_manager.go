package graphics

import (
	"image"
	"sync"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"mcmodel/pkg/animation"
)

// Texture is an uploaded atlas together with its animation state.
type Texture struct {
	ID    uint32
	State *animation.Texture
}

// TextureManager loads textures from <root>/textures/<path>.png, uploads
// them once and hands out their shared animation state.
type TextureManager struct {
	root      string
	frameTime time.Duration
	log       *zap.Logger
	upload    func(*image.RGBA) uint32

	mu      sync.RWMutex
	cache   map[string]*Texture
	missing *Texture
}

// NewTextureManager creates a manager for the assets directory root. Every
// texture it loads switches frames after frameTime.
func NewTextureManager(root string, frameTime time.Duration, log *zap.Logger) *TextureManager {
	if log == nil {
		log = zap.NewNop()
	}
	return &TextureManager{
		root:      root,
		frameTime: frameTime,
		log:       log,
		upload:    UploadTexture,
		cache:     make(map[string]*Texture),
	}
}

// Resolve returns the animation state of the texture at path, loading and
// uploading it on first use. Its signature matches mesh.TextureResolver.
func (m *TextureManager) Resolve(path string) (*animation.Texture, error) {
	tex, err := m.Get(path)
	if err != nil {
		return nil, err
	}
	return tex.State, nil
}

// Get returns the cached texture for path, loading it if needed.
func (m *TextureManager) Get(path string) (*Texture, error) {
	m.mu.RLock()
	if tex, ok := m.cache[path]; ok {
		m.mu.RUnlock()
		return tex, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double check locking
	if tex, ok := m.cache[path]; ok {
		return tex, nil
	}

	img, err := LoadImage(animation.TextureFile(m.root, path))
	if err != nil {
		return nil, err
	}
	state, err := animation.NewTexture(img.Rect.Dx(), img.Rect.Dy())
	if err != nil {
		return nil, err
	}
	state.SetFrameTime(m.frameTime)

	tex := &Texture{ID: m.upload(img), State: state}
	m.cache[path] = tex
	m.log.Debug("texture loaded",
		zap.String("path", path),
		zap.Int("frames", state.NumFrames()))
	return tex, nil
}

// Missing returns the checkerboard texture used for unbound faces.
func (m *TextureManager) Missing() *Texture {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.missing == nil {
		m.missing = &Texture{ID: m.upload(MissingImage()), State: animation.Static()}
	}
	return m.missing
}

// Lookup returns a texture that was already loaded, or the missing texture.
func (m *TextureManager) Lookup(path string) *Texture {
	m.mu.RLock()
	tex, ok := m.cache[path]
	m.mu.RUnlock()
	if ok {
		return tex
	}
	return m.Missing()
}

// Delete releases every uploaded texture.
func (m *TextureManager) Delete() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for path, tex := range m.cache {
		gl.DeleteTextures(1, &tex.ID)
		delete(m.cache, path)
	}
	if m.missing != nil {
		gl.DeleteTextures(1, &m.missing.ID)
		m.missing = nil
	}
}
