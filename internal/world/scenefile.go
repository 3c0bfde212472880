// Package world converts between the live scene graph and scene records.
package world

import (
	"log/slog"
	"slices"

	"github.com/ErikKalkoken/go-set"
	rl "github.com/gen2brain/raylib-go/raylib"

	"sceneforge/internal/assets"
	"sceneforge/internal/components"
	"sceneforge/internal/dto"
	"sceneforge/internal/engine"
)

// Stats summarizes one export or import.
type Stats struct {
	Entities int
	Terrains int
	Skipped  int
	Missing  int // references to assets absent from the registry
}

// ExportScene builds a scene record from scene.
//
// Objects are visited in scene order. Each object with a ModelRenderer
// yields an entity record and each object with a Terrain yields a terrain
// record. Transforms are written in world space, so the hierarchy is
// flattened.
//
// Instances without a persistent id, or whose id was already used earlier in
// the scene, are given a new id above all stored ones. The new id is written
// back to the component so later exports keep it.
func ExportScene(scene *engine.Scene, name string, id int64) (*dto.Scene, Stats) {
	rec := dto.NewScene()
	rec.SetName(name)
	rec.SetID(id)
	ids := newIDAllocator(scene)
	var stats Stats
	for _, g := range scene.GameObjects {
		exported := false
		if mr := engine.GetComponent[*components.ModelRenderer](g); mr != nil {
			rec.AddEntity(&dto.ModelInstance{
				ID:        ids.claim(&mr.InstanceID),
				Name:      g.Name,
				ModelID:   mr.ModelID,
				Tags:      slices.Clone(g.Tags),
				Transform: worldTransform(g),
			})
			stats.Entities++
			exported = true
		}
		if tc := engine.GetComponent[*components.Terrain](g); tc != nil {
			rec.AddTerrain(&dto.TerrainInstance{
				ID:        ids.claim(&tc.InstanceID),
				Name:      g.Name,
				TerrainID: tc.TerrainID,
				Transform: worldTransform(g),
			})
			stats.Terrains++
			exported = true
		}
		if !exported {
			stats.Skipped++
		}
	}
	slog.Info("Scene exported", "name", name, "id", id, "entities", stats.Entities, "terrains", stats.Terrains, "skipped", stats.Skipped)
	return rec, stats
}

// idAllocator hands out instance ids that are unique within one export.
type idAllocator struct {
	used set.Set[int64]
	next int64
}

func newIDAllocator(scene *engine.Scene) *idAllocator {
	var max int64
	for _, g := range scene.GameObjects {
		if mr := engine.GetComponent[*components.ModelRenderer](g); mr != nil && mr.InstanceID > max {
			max = mr.InstanceID
		}
		if tc := engine.GetComponent[*components.Terrain](g); tc != nil && tc.InstanceID > max {
			max = tc.InstanceID
		}
	}
	return &idAllocator{next: max + 1}
}

// claim returns the id stored at p, or assigns a fresh one to p when it is
// unset or taken.
func (a *idAllocator) claim(p *int64) int64 {
	if *p <= 0 || a.used.Contains(*p) {
		*p = a.next
		a.next++
	}
	a.used.Add(*p)
	return *p
}

func worldTransform(g *engine.GameObject) dto.Transform {
	return dto.Transform{
		Position: fromVector(g.WorldPosition()),
		Rotation: fromVector(g.WorldRotation()),
		Scale:    fromVector(g.WorldScale()),
	}
}

// Importer rebuilds live scenes from scene records.
type Importer struct {
	// Assets is used to check asset references. May be nil.
	Assets *assets.Registry
}

// ImportScene creates one root GameObject per record, entities first and
// terrains after, each in record order.
// References to assets missing from the registry are logged and kept.
func (im Importer) ImportScene(rec *dto.Scene) (*engine.Scene, Stats) {
	scene := engine.NewScene(rec.Name())
	var stats Stats
	for _, e := range rec.Entities() {
		if im.Assets != nil {
			if _, ok := im.Assets.Model(e.ModelID); !ok {
				slog.Warn("Scene references unknown model", "scene", rec.Name(), "instance", e.ID, "model", e.ModelID)
				stats.Missing++
			}
		}
		g := engine.NewGameObject(e.Name)
		g.Tags = slices.Clone(e.Tags)
		applyTransform(g, e.Transform)
		mr := components.NewModelRenderer(e.ModelID)
		mr.InstanceID = e.ID
		g.AddComponent(mr)
		scene.AddGameObject(g)
		stats.Entities++
	}
	for _, t := range rec.Terrains() {
		if im.Assets != nil {
			if _, ok := im.Assets.Terrain(t.TerrainID); !ok {
				slog.Warn("Scene references unknown terrain", "scene", rec.Name(), "instance", t.ID, "terrain", t.TerrainID)
				stats.Missing++
			}
		}
		g := engine.NewGameObject(t.Name)
		applyTransform(g, t.Transform)
		tc := components.NewTerrain(t.TerrainID)
		tc.InstanceID = t.ID
		g.AddComponent(tc)
		scene.AddGameObject(g)
		stats.Terrains++
	}
	slog.Info("Scene imported", "name", rec.Name(), "id", rec.ID(), "entities", stats.Entities, "terrains", stats.Terrains)
	return scene, stats
}

// ImportScene is Importer.ImportScene without asset checks.
func ImportScene(rec *dto.Scene) (*engine.Scene, Stats) {
	return Importer{}.ImportScene(rec)
}

func applyTransform(g *engine.GameObject, t dto.Transform) {
	g.Transform.Position = toVector(t.Position)
	g.Transform.Rotation = toVector(t.Rotation)

	// Default scale to 1 if zero
	if t.Scale == [3]float32{} {
		g.Transform.Scale = rl.Vector3{X: 1, Y: 1, Z: 1}
	} else {
		g.Transform.Scale = toVector(t.Scale)
	}
}

func toVector(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

func fromVector(v rl.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}
