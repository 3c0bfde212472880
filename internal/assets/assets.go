// Package assets keeps track of the model and terrain assets of a project.
package assets

import "fmt"

// Kind is the type of an asset.
type Kind int

const (
	KindModel Kind = iota
	KindTerrain
	KindSkybox
)

func (k Kind) String() string {
	switch k {
	case KindModel:
		return "model"
	case KindTerrain:
		return "terrain"
	case KindSkybox:
		return "skybox"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) IsValid() bool {
	return k >= KindModel && k <= KindSkybox
}

func (k Kind) MarshalText() ([]byte, error) {
	if k.IsValid() {
		return []byte(k.String()), nil
	}
	return nil, fmt.Errorf("invalid asset kind %d", int(k))
}

func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "model":
		*k = KindModel
	case "terrain":
		*k = KindTerrain
	case "skybox":
		*k = KindSkybox
	default:
		return fmt.Errorf("unknown asset kind %q", text)
	}
	return nil
}

// Asset is a file in the project which scenes can place instances of.
type Asset struct {
	ID   int64  `toml:"id"`
	Kind Kind   `toml:"kind"`
	Path string `toml:"path"`
}

// Registry maps asset ids to assets.
// A zero Registry is not usable; create one with NewRegistry.
type Registry struct {
	models   map[int64]Asset
	terrains map[int64]Asset
	skyboxes map[int64]Asset
}

func NewRegistry() *Registry {
	return &Registry{
		models:   make(map[int64]Asset),
		terrains: make(map[int64]Asset),
		skyboxes: make(map[int64]Asset),
	}
}

// Register adds the asset or replaces the one with the same id and kind.
func (r *Registry) Register(a Asset) {
	switch a.Kind {
	case KindModel:
		r.models[a.ID] = a
	case KindTerrain:
		r.terrains[a.ID] = a
	case KindSkybox:
		r.skyboxes[a.ID] = a
	}
}

func (r *Registry) Model(id int64) (Asset, bool) {
	a, ok := r.models[id]
	return a, ok
}

func (r *Registry) Terrain(id int64) (Asset, bool) {
	a, ok := r.terrains[id]
	return a, ok
}

func (r *Registry) Skybox(id int64) (Asset, bool) {
	a, ok := r.skyboxes[id]
	return a, ok
}

func (r *Registry) Len() int {
	return len(r.models) + len(r.terrains) + len(r.skyboxes)
}
