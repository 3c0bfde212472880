// Package project manages the scenes and assets of an editor project.
//
// A project is a directory holding a project.toml manifest and a scenes
// folder. The manifest is the authority on scene ids: no two registered
// scenes share an id.
package project

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode"

	"github.com/ErikKalkoken/go-set"
	"github.com/pelletier/go-toml/v2"

	"sceneforge/internal/assets"
	"sceneforge/internal/dto"
	"sceneforge/internal/exporter"
)

const (
	ManifestFile = "project.toml"
	ScenesDir    = "scenes"
)

var (
	ErrProjectExists    = errors.New("project already exists")
	ErrDuplicateSceneID = errors.New("duplicate scene id")
	ErrSceneNotFound    = errors.New("scene not found")
	ErrInvalidAsset     = errors.New("invalid asset")
	ErrAssetNotFound    = errors.New("asset not found")
)

// SceneEntry is a scene registered in the manifest.
type SceneEntry struct {
	ID   int64  `toml:"id"`
	Name string `toml:"name"`
	File string `toml:"file"` // relative to the project directory

	// SkyboxID is the skybox asset shown behind the scene, 0 for none.
	SkyboxID int64 `toml:"skybox,omitempty"`
}

type manifest struct {
	Name   string         `toml:"name"`
	Assets []assets.Asset `toml:"assets"`
	Scenes []SceneEntry   `toml:"scenes"`
}

func (m manifest) clone() manifest {
	return manifest{
		Name:   m.Name,
		Assets: slices.Clone(m.Assets),
		Scenes: slices.Clone(m.Scenes),
	}
}

// Project is an open project. It is not safe for concurrent use.
type Project struct {
	Assets *assets.Registry

	dir      string
	manifest manifest
	sceneIDs set.Set[int64]
}

// Create initializes a new project in dir. The directory is created if needed.
func Create(dir, name string) (*Project, error) {
	if _, err := os.Stat(filepath.Join(dir, ManifestFile)); err == nil {
		return nil, fmt.Errorf("create project %s: %w", dir, ErrProjectExists)
	}
	if err := os.MkdirAll(filepath.Join(dir, ScenesDir), 0755); err != nil {
		return nil, fmt.Errorf("create project %s: %w", dir, err)
	}
	p := &Project{
		Assets: assets.NewRegistry(),
		dir:    dir,
		manifest: manifest{
			Name:   name,
			Assets: make([]assets.Asset, 0),
			Scenes: make([]SceneEntry, 0),
		},
	}
	if err := p.Save(); err != nil {
		return nil, err
	}
	slog.Info("Project created", "dir", dir, "name", name)
	return p, nil
}

// Open loads the project in dir.
func Open(dir string) (*Project, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		return nil, fmt.Errorf("open project: %w", err)
	}
	var m manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("open project %s: %w", dir, err)
	}
	p := &Project{
		Assets:   assets.NewRegistry(),
		dir:      dir,
		manifest: m,
	}
	for _, a := range m.Assets {
		p.Assets.Register(a)
	}
	for _, e := range m.Scenes {
		if p.sceneIDs.Contains(e.ID) {
			return nil, fmt.Errorf("open project %s: scene %d: %w", dir, e.ID, ErrDuplicateSceneID)
		}
		p.sceneIDs.Add(e.ID)
	}
	slog.Debug("Project opened", "dir", dir, "scenes", len(m.Scenes), "assets", len(m.Assets))
	return p, nil
}

func (p *Project) Name() string {
	return p.manifest.Name
}

func (p *Project) Dir() string {
	return p.dir
}

// Scenes returns the registered scenes in registration order.
func (p *Project) Scenes() []SceneEntry {
	return append([]SceneEntry(nil), p.manifest.Scenes...)
}

// Save writes the manifest.
func (p *Project) Save() error {
	data, err := toml.Marshal(p.manifest)
	if err != nil {
		return fmt.Errorf("save project %s: %w", p.dir, err)
	}
	if err := os.WriteFile(filepath.Join(p.dir, ManifestFile), data, 0644); err != nil {
		return fmt.Errorf("save project %s: %w", p.dir, err)
	}
	return nil
}

// commit saves the manifest. When saving fails the manifest is reset to
// prev, so the in-memory project never holds a state that cannot be saved.
func (p *Project) commit(prev manifest) error {
	if err := p.Save(); err != nil {
		p.manifest = prev
		p.sceneIDs = set.Of(p.sceneIDList()...)
		return err
	}
	return nil
}

// AddAsset registers an asset and saves the manifest.
// An asset with the same id and kind is replaced.
func (p *Project) AddAsset(a assets.Asset) error {
	if !a.Kind.IsValid() || a.Path == "" {
		return fmt.Errorf("add asset %d: %w", a.ID, ErrInvalidAsset)
	}
	prev := p.manifest.clone()
	i := slices.IndexFunc(p.manifest.Assets, func(x assets.Asset) bool {
		return x.ID == a.ID && x.Kind == a.Kind
	})
	if i >= 0 {
		p.manifest.Assets[i] = a
	} else {
		p.manifest.Assets = append(p.manifest.Assets, a)
	}
	if err := p.commit(prev); err != nil {
		return err
	}
	p.Assets.Register(a)
	slog.Info("Asset added", "project", p.manifest.Name, "id", a.ID, "kind", a.Kind, "path", a.Path)
	return nil
}

// AddScene registers s, writes its file and saves the manifest.
// A scene with id 0 is given the next free id.
// On error s and the project are left as they were.
func (p *Project) AddScene(s *dto.Scene) (err error) {
	id := s.ID()
	if id == 0 {
		id = p.nextSceneID()
	}
	if p.sceneIDs.Contains(id) {
		return fmt.Errorf("add scene %q: id %d: %w", s.Name(), id, ErrDuplicateSceneID)
	}
	e := SceneEntry{
		ID:   id,
		Name: s.Name(),
		File: filepath.ToSlash(filepath.Join(ScenesDir, fmt.Sprintf("%s-%d.json", slug(s.Name()), id))),
	}
	oldID := s.ID()
	s.SetID(id)
	defer func() {
		if err != nil {
			s.SetID(oldID)
		}
	}()
	if err := exporter.SaveScene(p.path(e), s); err != nil {
		return err
	}
	prev := p.manifest.clone()
	p.manifest.Scenes = append(p.manifest.Scenes, e)
	p.sceneIDs.Add(e.ID)
	if err := p.commit(prev); err != nil {
		os.Remove(p.path(e))
		return err
	}
	slog.Info("Scene added", "project", p.manifest.Name, "id", e.ID, "name", e.Name)
	return nil
}

// WriteScene writes an already registered scene to its file.
func (p *Project) WriteScene(s *dto.Scene) error {
	i, ok := p.find(s.ID())
	if !ok {
		return fmt.Errorf("write scene %d: %w", s.ID(), ErrSceneNotFound)
	}
	e := p.manifest.Scenes[i]
	if err := exporter.SaveScene(p.path(e), s); err != nil {
		return err
	}
	if e.Name != s.Name() {
		prev := p.manifest.clone()
		p.manifest.Scenes[i].Name = s.Name()
		return p.commit(prev)
	}
	return nil
}

// SetSkybox sets the skybox of a scene. Pass 0 to remove it.
func (p *Project) SetSkybox(sceneID, skyboxID int64) error {
	i, ok := p.find(sceneID)
	if !ok {
		return fmt.Errorf("set skybox of scene %d: %w", sceneID, ErrSceneNotFound)
	}
	if skyboxID != 0 {
		if _, ok := p.Assets.Skybox(skyboxID); !ok {
			return fmt.Errorf("set skybox of scene %d: skybox %d: %w", sceneID, skyboxID, ErrAssetNotFound)
		}
	}
	prev := p.manifest.clone()
	p.manifest.Scenes[i].SkyboxID = skyboxID
	return p.commit(prev)
}

// ReadScene loads the scene with the given id.
func (p *Project) ReadScene(id int64) (*dto.Scene, error) {
	i, ok := p.find(id)
	if !ok {
		return nil, fmt.Errorf("read scene %d: %w", id, ErrSceneNotFound)
	}
	return exporter.LoadScene(p.path(p.manifest.Scenes[i]))
}

// RemoveScene unregisters the scene with the given id and deletes its file.
func (p *Project) RemoveScene(id int64) error {
	i, ok := p.find(id)
	if !ok {
		return fmt.Errorf("remove scene %d: %w", id, ErrSceneNotFound)
	}
	e := p.manifest.Scenes[i]
	prev := p.manifest.clone()
	p.manifest.Scenes = slices.Delete(p.manifest.Scenes, i, i+1)
	p.sceneIDs = set.Of(p.sceneIDList()...)
	if err := p.commit(prev); err != nil {
		return err
	}
	if err := os.Remove(p.path(e)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove scene %d: %w", id, err)
	}
	slog.Info("Scene removed", "project", p.manifest.Name, "id", id)
	return nil
}

func (p *Project) find(id int64) (int, bool) {
	for i, e := range p.manifest.Scenes {
		if e.ID == id {
			return i, true
		}
	}
	return 0, false
}

func (p *Project) sceneIDList() []int64 {
	ids := make([]int64, 0, len(p.manifest.Scenes))
	for _, e := range p.manifest.Scenes {
		ids = append(ids, e.ID)
	}
	return ids
}

func (p *Project) nextSceneID() int64 {
	var max int64
	for _, e := range p.manifest.Scenes {
		if e.ID > max {
			max = e.ID
		}
	}
	return max + 1
}

func (p *Project) path(e SceneEntry) string {
	return filepath.Join(p.dir, filepath.FromSlash(e.File))
}

// slug turns a scene name into a file name stem.
func slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
		} else if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	s := strings.TrimSuffix(b.String(), "-")
	if s == "" {
		return "scene"
	}
	return s
}
