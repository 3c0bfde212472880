// Package exporter reads and writes scene files.
//
// Scenes can be stored as JSON, YAML or TOML. All three share one document
// layout, which adds a schema version on top of the scene record.
package exporter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"

	"sceneforge/internal/dto"
)

// SchemaVersion is the version written into new scene files.
const SchemaVersion = 1

var (
	ErrUnknownFormat      = errors.New("unknown scene format")
	ErrUnsupportedVersion = errors.New("unsupported scene file version")
	ErrMalformedScene     = errors.New("malformed scene")

	errTrailingData = fmt.Errorf("%w: data after end of document", ErrMalformedScene)
)

// sceneDoc is the file layout of a scene.
type sceneDoc struct {
	Version  int                    `json:"version" yaml:"version" toml:"version"`
	Name     string                 `json:"name" yaml:"name" toml:"name"`
	ID       int64                  `json:"id" yaml:"id" toml:"id"`
	Entities []*dto.ModelInstance   `json:"entities" yaml:"entities" toml:"entities"`
	Terrains []*dto.TerrainInstance `json:"terrains" yaml:"terrains" toml:"terrains"`
}

func newSceneDoc(s *dto.Scene) sceneDoc {
	return sceneDoc{
		Version:  SchemaVersion,
		Name:     s.Name(),
		ID:       s.ID(),
		Entities: s.Entities(),
		Terrains: s.Terrains(),
	}
}

func (d sceneDoc) scene() (*dto.Scene, error) {
	if d.Version < 0 {
		return nil, fmt.Errorf("version %d: %w", d.Version, ErrMalformedScene)
	}
	if d.Version > SchemaVersion {
		return nil, fmt.Errorf("version %d: %w", d.Version, ErrUnsupportedVersion)
	}
	s := dto.NewScene()
	s.SetName(d.Name)
	s.SetID(d.ID)
	if d.Entities != nil {
		if err := s.SetEntities(d.Entities); err != nil {
			return nil, fmt.Errorf("entities: %w: %w", ErrMalformedScene, err)
		}
	}
	if d.Terrains != nil {
		if err := s.SetTerrains(d.Terrains); err != nil {
			return nil, fmt.Errorf("terrains: %w: %w", ErrMalformedScene, err)
		}
	}
	return s, nil
}

// Encode writes s to w in format f.
func Encode(w io.Writer, s *dto.Scene, f Format) error {
	doc := newSceneDoc(s)
	var err error
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(doc)
	case FormatYAML:
		err = yaml.NewEncoder(w).Encode(doc)
	case FormatTOML:
		err = toml.NewEncoder(w).Encode(doc)
	default:
		return fmt.Errorf("encode %s: %w", f, ErrUnknownFormat)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", f, err)
	}
	return nil
}

// Decode reads a scene in format f from r.
// Absent collections decode as empty ones. The input must hold exactly one
// document.
func Decode(r io.Reader, f Format) (*dto.Scene, error) {
	var doc sceneDoc
	var err error
	switch f {
	case FormatJSON:
		dec := json.NewDecoder(r)
		if err = dec.Decode(&doc); err == nil {
			if _, tokErr := dec.Token(); tokErr != io.EOF {
				err = errTrailingData
			}
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		if err = dec.Decode(&doc); err == nil {
			var extra any
			if extraErr := dec.Decode(&extra); extraErr != io.EOF {
				err = errTrailingData
			}
		}
	case FormatTOML:
		err = toml.NewDecoder(r).Decode(&doc)
	default:
		return nil, fmt.Errorf("decode %s: %w", f, ErrUnknownFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", f, err)
	}
	return doc.scene()
}
