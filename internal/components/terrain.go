package components

import "sceneforge/internal/engine"

// Terrain places an instance of a terrain asset on its GameObject.
type Terrain struct {
	engine.BaseComponent
	TerrainID  int64
	InstanceID int64 // persistent id, 0 until the instance is first saved
}

func NewTerrain(terrainID int64) *Terrain {
	return &Terrain{TerrainID: terrainID}
}
