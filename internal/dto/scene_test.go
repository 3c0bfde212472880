package dto_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sceneforge/internal/dto"
)

func TestNewScene(t *testing.T) {
	s := dto.NewScene()

	assert.Equal(t, "", s.Name())
	assert.Equal(t, int64(0), s.ID())
	assert.NotNil(t, s.Entities())
	assert.NotNil(t, s.Terrains())
	assert.Empty(t, s.Entities())
	assert.Empty(t, s.Terrains())
}

func TestSceneSetters(t *testing.T) {
	cases := []struct {
		name string
		id   int64
	}{
		{"Level1", 42},
		{"", 0},
		{"negative", -7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := dto.NewScene()
			s.SetName(tc.name)
			s.SetID(tc.id)
			assert.Equal(t, tc.name, s.Name())
			assert.Equal(t, tc.id, s.ID())
		})
	}
}

func TestSceneKeepsInsertionOrder(t *testing.T) {
	s := dto.NewScene()
	for i := int64(1); i <= 5; i++ {
		s.AddEntity(dto.NewModelInstance(i, 100+i))
	}
	for i := int64(10); i <= 12; i++ {
		s.AddTerrain(dto.NewTerrainInstance(i, 200+i))
	}

	var entityIDs, terrainIDs []int64
	for _, e := range s.Entities() {
		entityIDs = append(entityIDs, e.ID)
	}
	for _, tr := range s.Terrains() {
		terrainIDs = append(terrainIDs, tr.ID)
	}
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, entityIDs)
	assert.Equal(t, []int64{10, 11, 12}, terrainIDs)
	assert.Equal(t, 5, s.EntityCount())
	assert.Equal(t, 3, s.TerrainCount())
}

func TestSceneIgnoresNilAppends(t *testing.T) {
	s := dto.NewScene()
	s.AddEntity(nil)
	s.AddTerrain(nil)
	assert.Empty(t, s.Entities())
	assert.Empty(t, s.Terrains())
}

func TestSceneEntitiesAreLive(t *testing.T) {
	s := dto.NewScene()
	s.AddEntity(dto.NewModelInstance(1, 5))

	s.Entities()[0].Name = "Tree"

	assert.Equal(t, "Tree", s.Entities()[0].Name)
}

func TestSceneSetEntities(t *testing.T) {
	t.Run("replaces previous contents", func(t *testing.T) {
		s := dto.NewScene()
		s.AddEntity(dto.NewModelInstance(1, 1))
		s.AddEntity(dto.NewModelInstance(2, 1))

		err := s.SetEntities([]*dto.ModelInstance{dto.NewModelInstance(9, 3)})

		require.NoError(t, err)
		require.Len(t, s.Entities(), 1)
		assert.Equal(t, int64(9), s.Entities()[0].ID)
	})
	t.Run("accepts empty slice", func(t *testing.T) {
		s := dto.NewScene()
		s.AddEntity(dto.NewModelInstance(1, 1))

		err := s.SetEntities([]*dto.ModelInstance{})

		require.NoError(t, err)
		assert.NotNil(t, s.Entities())
		assert.Empty(t, s.Entities())
	})
	t.Run("rejects nil collection", func(t *testing.T) {
		s := dto.NewScene()
		s.AddEntity(dto.NewModelInstance(1, 1))

		err := s.SetEntities(nil)

		assert.ErrorIs(t, err, dto.ErrNilCollection)
		assert.Len(t, s.Entities(), 1)
	})
	t.Run("rejects nil record", func(t *testing.T) {
		s := dto.NewScene()

		err := s.SetEntities([]*dto.ModelInstance{dto.NewModelInstance(1, 1), nil})

		assert.ErrorIs(t, err, dto.ErrNilRecord)
		assert.Empty(t, s.Entities())
	})
}

func TestSceneSetTerrains(t *testing.T) {
	t.Run("replaces previous contents", func(t *testing.T) {
		s := dto.NewScene()
		s.AddTerrain(dto.NewTerrainInstance(1, 1))

		err := s.SetTerrains([]*dto.TerrainInstance{dto.NewTerrainInstance(2, 4), dto.NewTerrainInstance(3, 4)})

		require.NoError(t, err)
		require.Len(t, s.Terrains(), 2)
		assert.Equal(t, int64(2), s.Terrains()[0].ID)
		assert.Equal(t, int64(3), s.Terrains()[1].ID)
	})
	t.Run("rejects nil collection", func(t *testing.T) {
		s := dto.NewScene()
		assert.ErrorIs(t, s.SetTerrains(nil), dto.ErrNilCollection)
		assert.NotNil(t, s.Terrains())
	})
	t.Run("rejects nil record", func(t *testing.T) {
		s := dto.NewScene()
		assert.ErrorIs(t, s.SetTerrains([]*dto.TerrainInstance{nil}), dto.ErrNilRecord)
	})
}

// Scenes carry no equality contract: identical contents still mean two records.
func TestSceneHasNoEqualityContract(t *testing.T) {
	typ := reflect.TypeOf(dto.NewScene())
	for _, name := range []string{"Equal", "Equals", "Compare", "Hash"} {
		_, ok := typ.MethodByName(name)
		assert.False(t, ok, "unexpected method %s", name)
	}

	a := dto.NewScene()
	a.SetName("Level1")
	a.SetID(42)
	a.AddEntity(dto.NewModelInstance(1, 7))
	b := dto.NewScene()
	b.SetName("Level1")
	b.SetID(42)
	b.AddEntity(dto.NewModelInstance(1, 7))
	a.SetName("Renamed")
	a.Entities()[0].Name = "Rock"

	assert.Equal(t, "Level1", b.Name())
	assert.Empty(t, b.Entities()[0].Name)
}

func TestSceneExample(t *testing.T) {
	s := dto.NewScene()
	s.SetName("Level1")
	s.SetID(42)
	s.AddEntity(dto.NewModelInstance(1, 7))
	s.AddEntity(dto.NewModelInstance(2, 7))
	s.AddTerrain(dto.NewTerrainInstance(10, 3))

	require.Len(t, s.Entities(), 2)
	assert.Equal(t, int64(1), s.Entities()[0].ID)
	assert.Equal(t, int64(2), s.Entities()[1].ID)
	require.Len(t, s.Terrains(), 1)
	assert.Equal(t, int64(10), s.Terrains()[0].ID)
	assert.Equal(t, "Level1", s.Name())
	assert.Equal(t, int64(42), s.ID())
}
