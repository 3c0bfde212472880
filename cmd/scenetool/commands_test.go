package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sceneforge/internal/dto"
	"sceneforge/internal/exporter"
)

func writeScene(t *testing.T, path string) {
	t.Helper()
	s := dto.NewScene()
	s.SetName("Level1")
	s.SetID(42)
	s.AddEntity(dto.NewModelInstance(1, 7))
	s.AddEntity(dto.NewModelInstance(2, 7))
	s.AddTerrain(dto.NewTerrainInstance(10, 3))
	require.NoError(t, exporter.SaveScene(path, s))
}

func TestRunUsage(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, run(&buf, nil), errUsage)
	assert.ErrorIs(t, run(&buf, []string{"info"}), errUsage)
	assert.ErrorIs(t, run(&buf, []string{"explode"}), errUsage)
}

func TestRunInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.yaml")
	writeScene(t, path)
	var buf bytes.Buffer

	err := run(&buf, []string{"info", path})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Name:     Level1")
	assert.Contains(t, buf.String(), "ID:       42")
	assert.Contains(t, buf.String(), "Entities: 2")
	assert.Contains(t, buf.String(), "Format:   yaml")
}

func TestRunFind(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.json")
	s := dto.NewScene()
	rock := dto.NewModelInstance(1, 7)
	rock.Name = "Rock"
	rock.Tags = []string{"prop"}
	rock.Transform.Position = [3]float32{1, 2, 3}
	s.AddEntity(rock)
	crate := dto.NewModelInstance(2, 8)
	crate.Name = "Crate"
	crate.Tags = []string{"prop"}
	s.AddEntity(crate)
	ground := dto.NewTerrainInstance(10, 3)
	ground.Name = "Ground"
	s.AddTerrain(ground)
	require.NoError(t, exporter.SaveScene(path, s))

	t.Run("by tag", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, run(&buf, []string{"find", path, "prop"}))
		assert.Equal(t, "1 \"Rock\" at (1, 2, 3)\n2 \"Crate\" at (0, 0, 0)\n", buf.String())
	})
	t.Run("by name", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, run(&buf, []string{"find", path, "Ground"}))
		assert.Equal(t, "10 \"Ground\" at (0, 0, 0)\n", buf.String())
	})
	t.Run("no match", func(t *testing.T) {
		var buf bytes.Buffer
		assert.ErrorContains(t, run(&buf, []string{"find", path, "tree"}), "no object")
	})
}

func TestRunConvert(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "level.json")
	out := filepath.Join(dir, "level.toml")
	writeScene(t, in)
	var buf bytes.Buffer

	err := run(&buf, []string{"convert", in, out})

	require.NoError(t, err)
	s, err := exporter.LoadScene(out)
	require.NoError(t, err)
	assert.Equal(t, "Level1", s.Name())
	assert.Len(t, s.Entities(), 2)
}

func TestRunProjectCommands(t *testing.T) {
	dir := t.TempDir()
	projectDir := filepath.Join(dir, "demo")
	scene := filepath.Join(dir, "level.json")
	writeScene(t, scene)
	var buf bytes.Buffer

	require.NoError(t, run(&buf, []string{"init", projectDir, "Demo"}))
	require.NoError(t, run(&buf, []string{"add", projectDir, scene}))
	assert.ErrorContains(t, run(&buf, []string{"add", projectDir, scene}), "duplicate scene id")
	require.NoError(t, run(&buf, []string{"asset", projectDir, "model", "7", "models/rock.glb"}))
	require.NoError(t, run(&buf, []string{"asset", projectDir, "terrain", "3", "terrain/island.ter"}))
	require.NoError(t, run(&buf, []string{"asset", projectDir, "skybox", "5", "skybox/day.png"}))
	require.NoError(t, run(&buf, []string{"skybox", projectDir, "42", "5"}))
	buf.Reset()
	require.NoError(t, run(&buf, []string{"list", projectDir}))
	assert.Contains(t, buf.String(), "scenes/level1-42.json")
	assert.Regexp(t, `42\s+Level1\s+scenes/level1-42.json\s+5`, buf.String())
	buf.Reset()
	require.NoError(t, run(&buf, []string{"check", projectDir}))
	assert.Equal(t, "42 Level1: 2 entities, 1 terrains\n", buf.String())
}

func TestRunAssetArguments(t *testing.T) {
	projectDir := filepath.Join(t.TempDir(), "demo")
	var buf bytes.Buffer
	require.NoError(t, run(&buf, []string{"init", projectDir, "Demo"}))

	assert.ErrorContains(t, run(&buf, []string{"asset", projectDir, "texture", "1", "a.png"}), "unknown asset kind")
	assert.ErrorContains(t, run(&buf, []string{"asset", projectDir, "model", "x", "a.glb"}), "invalid asset id")
	assert.ErrorIs(t, run(&buf, []string{"asset", projectDir, "model", "1"}), errUsage)
	assert.ErrorContains(t, run(&buf, []string{"skybox", projectDir, "1", "2"}), "scene not found")
}

func TestRunCheckReportsMissingAssets(t *testing.T) {
	dir := t.TempDir()
	projectDir := filepath.Join(dir, "demo")
	scene := filepath.Join(dir, "level.json")
	writeScene(t, scene)
	var buf bytes.Buffer
	require.NoError(t, run(&buf, []string{"init", projectDir, "Demo"}))
	require.NoError(t, run(&buf, []string{"add", projectDir, scene}))
	require.NoError(t, run(&buf, []string{"asset", projectDir, "model", "7", "models/rock.glb"}))
	buf.Reset()

	err := run(&buf, []string{"check", projectDir})

	assert.ErrorContains(t, err, "1 of 1 scenes have problems")
	assert.Contains(t, buf.String(), "42 Level1: 2 entities, 1 terrains, 1 missing assets")
}
