// Package dto defines the records a scene is persisted as.
//
// A Scene owns its entity and terrain records. Records never point back to
// the scene, so the whole graph can be written out as a tree.
package dto

import "errors"

var (
	ErrNilCollection = errors.New("collection must not be nil")
	ErrNilRecord     = errors.New("collection must not contain nil records")
)

// Scene is the unit written to and read from a project file.
//
// Both collections keep insertion order and are never nil.
// A Scene is not safe for concurrent use.
type Scene struct {
	name     string
	id       int64
	entities []*ModelInstance
	terrains []*TerrainInstance
}

// NewScene returns an empty scene.
func NewScene() *Scene {
	return &Scene{
		entities: make([]*ModelInstance, 0),
		terrains: make([]*TerrainInstance, 0),
	}
}

func (s *Scene) Name() string {
	return s.name
}

func (s *Scene) SetName(name string) {
	s.name = name
}

func (s *Scene) ID() int64 {
	return s.id
}

func (s *Scene) SetID(id int64) {
	s.id = id
}

// Entities returns the backing slice of entity records.
// Changes to the returned records are visible in the scene.
func (s *Scene) Entities() []*ModelInstance {
	return s.entities
}

// SetEntities replaces all entity records.
// The scene is left unchanged when an error is returned.
func (s *Scene) SetEntities(entities []*ModelInstance) error {
	if entities == nil {
		return ErrNilCollection
	}
	for _, e := range entities {
		if e == nil {
			return ErrNilRecord
		}
	}
	s.entities = entities
	return nil
}

// AddEntity appends an entity record. Nil records are ignored.
func (s *Scene) AddEntity(e *ModelInstance) {
	if e == nil {
		return
	}
	s.entities = append(s.entities, e)
}

func (s *Scene) EntityCount() int {
	return len(s.entities)
}

// Terrains returns the backing slice of terrain records.
// Changes to the returned records are visible in the scene.
func (s *Scene) Terrains() []*TerrainInstance {
	return s.terrains
}

// SetTerrains replaces all terrain records.
// The scene is left unchanged when an error is returned.
func (s *Scene) SetTerrains(terrains []*TerrainInstance) error {
	if terrains == nil {
		return ErrNilCollection
	}
	for _, t := range terrains {
		if t == nil {
			return ErrNilRecord
		}
	}
	s.terrains = terrains
	return nil
}

// AddTerrain appends a terrain record. Nil records are ignored.
func (s *Scene) AddTerrain(t *TerrainInstance) {
	if t == nil {
		return
	}
	s.terrains = append(s.terrains, t)
}

func (s *Scene) TerrainCount() int {
	return len(s.terrains)
}
