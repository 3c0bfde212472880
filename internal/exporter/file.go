package exporter

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"sceneforge/internal/dto"
)

// SaveScene writes s to path. The format is chosen by the file extension.
// The file is replaced atomically, so readers never see a partial scene.
func SaveScene(path string, s *dto.Scene) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return fmt.Errorf("save scene: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("save scene: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	w := bufio.NewWriter(tmp)
	if err := Encode(w, s, f); err != nil {
		tmp.Close()
		return fmt.Errorf("save scene %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("save scene %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save scene %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("save scene %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("save scene %s: %w", path, err)
	}
	slog.Debug("Scene saved", "path", path, "format", f, "entities", s.EntityCount(), "terrains", s.TerrainCount())
	return nil
}

// LoadScene reads the scene stored at path.
func LoadScene(path string) (*dto.Scene, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("load scene: %w", err)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load scene: %w", err)
	}
	defer file.Close()

	s, err := Decode(bufio.NewReader(file), f)
	if err != nil {
		return nil, fmt.Errorf("load scene %s: %w", path, err)
	}
	slog.Debug("Scene loaded", "path", path, "format", f, "entities", s.EntityCount(), "terrains", s.TerrainCount())
	return s, nil
}
