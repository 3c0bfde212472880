package dto

// Transform is the placement of an instance in a scene.
type Transform struct {
	Position [3]float32 `json:"position" yaml:"position" toml:"position"`
	Rotation [3]float32 `json:"rotation" yaml:"rotation" toml:"rotation"` // Euler angles in degrees
	Scale    [3]float32 `json:"scale" yaml:"scale" toml:"scale"`
}

// IdentityTransform returns a transform at the origin with unit scale.
func IdentityTransform() Transform {
	return Transform{Scale: [3]float32{1, 1, 1}}
}

// ModelInstance describes one placed occurrence of a model asset.
type ModelInstance struct {
	ID        int64     `json:"id" yaml:"id" toml:"id"`
	Name      string    `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	ModelID   int64     `json:"modelId" yaml:"modelId" toml:"modelId"`
	Tags      []string  `json:"tags,omitempty" yaml:"tags,omitempty" toml:"tags,omitempty"`
	Transform Transform `json:"transform" yaml:"transform" toml:"transform"`
}

func NewModelInstance(id, modelID int64) *ModelInstance {
	return &ModelInstance{
		ID:        id,
		ModelID:   modelID,
		Transform: IdentityTransform(),
	}
}

// TerrainInstance describes one placed occurrence of a terrain asset.
type TerrainInstance struct {
	ID        int64     `json:"id" yaml:"id" toml:"id"`
	Name      string    `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	TerrainID int64     `json:"terrainId" yaml:"terrainId" toml:"terrainId"`
	Transform Transform `json:"transform" yaml:"transform" toml:"transform"`
}

func NewTerrainInstance(id, terrainID int64) *TerrainInstance {
	return &TerrainInstance{
		ID:        id,
		TerrainID: terrainID,
		Transform: IdentityTransform(),
	}
}
