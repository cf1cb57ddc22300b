package blockmodel

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Loader reads model files from an assets directory laid out as
// <assets>/models/<namespace path>.json and caches them by name.
// Cached models are shared and never modified. A Loader is not safe for
// concurrent use.
type Loader struct {
	assetsPath string
	modelCache map[string]*Model
	log        *zap.Logger
}

func NewLoader(assetsPath string, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{
		assetsPath: assetsPath,
		modelCache: make(map[string]*Model),
		log:        log,
	}
}

// ModelName normalizes a model reference: the "minecraft:" namespace is
// dropped and bare names are looked up under "block/".
func ModelName(name string) string {
	name = strings.TrimPrefix(name, "minecraft:")
	if !strings.Contains(name, "/") {
		name = "block/" + name
	}
	return name
}

// LoadModel reads and validates a single model without applying inheritance.
func (l *Loader) LoadModel(name string) (*Model, error) {
	name = ModelName(name)

	if model, ok := l.modelCache[name]; ok {
		return model, nil
	}

	path := filepath.Join(l.assetsPath, "models", filepath.FromSlash(name)+".json")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read model file: %w", err)
	}

	model, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("could not parse model %q: %w", name, err)
	}

	l.modelCache[name] = model
	l.log.Debug("model loaded", zap.String("name", name), zap.Int("elements", len(model.Elements)))
	return model, nil
}

// LoadAncestors loads m's parent chain into a table keyed by the parent
// references exactly as they appear in the models, ready for NewResolver.
// Loading is best effort: builtin parents and parents that fail to load end
// the chain and are only logged.
func (l *Loader) LoadAncestors(m *Model) map[string]*Model {
	ancestors := make(map[string]*Model)
	for cur := m; cur.Parent != ""; {
		ref := cur.Parent
		if _, seen := ancestors[ref]; seen {
			break
		}
		if strings.HasPrefix(ModelName(ref), "builtin/") {
			break
		}
		parent, err := l.LoadModel(ref)
		if err != nil {
			l.log.Warn("parent model unavailable, truncating chain",
				zap.String("parent", ref), zap.Error(err))
			break
		}
		ancestors[ref] = parent
		cur = parent
	}
	return ancestors
}

// Resolve loads the named model and its ancestors and returns its resolver.
func (l *Loader) Resolve(name string) (*Resolver, error) {
	model, err := l.LoadModel(name)
	if err != nil {
		return nil, err
	}
	return NewResolver(model, l.LoadAncestors(model)), nil
}
