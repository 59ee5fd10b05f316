package defs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnemyDefinitions_RoundTripDefaults(t *testing.T) {
	data, err := json.Marshal(DefaultEnemyDefinitions)
	require.NoError(t, err)

	parsed, err := ParseEnemyDefinitions(data)
	require.NoError(t, err)
	assert.Equal(t, DefaultEnemyDefinitions, parsed)
}

func TestParseEnemyDefinitions_ReordersByID(t *testing.T) {
	reversed := make([]EnemyDefinition, len(DefaultEnemyDefinitions))
	for i, def := range DefaultEnemyDefinitions {
		reversed[len(reversed)-1-i] = def
	}
	data, err := json.Marshal(reversed)
	require.NoError(t, err)

	parsed, err := ParseEnemyDefinitions(data)
	require.NoError(t, err)
	for i, def := range parsed {
		assert.Equal(t, ArchetypeID(i), def.ID)
	}
}

func TestParseEnemyDefinitions_Rejects(t *testing.T) {
	t.Run("missing archetype", func(t *testing.T) {
		data, _ := json.Marshal(DefaultEnemyDefinitions[:4])
		_, err := ParseEnemyDefinitions(data)
		assert.ErrorIs(t, err, ErrInvalidDefinition)
	})

	t.Run("duplicate archetype", func(t *testing.T) {
		dup := append([]EnemyDefinition{}, DefaultEnemyDefinitions...)
		dup[1].ID = ArchetypeGrunt
		data, _ := json.Marshal(dup)
		_, err := ParseEnemyDefinitions(data)
		assert.ErrorIs(t, err, ErrInvalidDefinition)
	})

	t.Run("unknown id", func(t *testing.T) {
		bad := append([]EnemyDefinition{}, DefaultEnemyDefinitions...)
		bad[4].ID = 9
		data, _ := json.Marshal(bad)
		_, err := ParseEnemyDefinitions(data)
		assert.ErrorIs(t, err, ErrInvalidDefinition)
	})

	t.Run("zero radius", func(t *testing.T) {
		bad := append([]EnemyDefinition{}, DefaultEnemyDefinitions...)
		bad[0].Radius = 0
		data, _ := json.Marshal(bad)
		_, err := ParseEnemyDefinitions(data)
		assert.ErrorIs(t, err, ErrInvalidDefinition)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := ParseEnemyDefinitions([]byte("{"))
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidDefinition)
	})
}

func TestLoadEnemyDefinitions(t *testing.T) {
	t.Cleanup(func() { EnemyLibrary = cloneDefinitions(DefaultEnemyDefinitions) })

	tuned := cloneDefinitions(DefaultEnemyDefinitions)
	tuned[ArchetypeTank].Health = 999
	data, err := json.Marshal(tuned)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "enemies.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	require.NoError(t, LoadEnemyDefinitions(path))
	assert.Equal(t, 999.0, Enemy(ArchetypeTank).Health)

	assert.Error(t, LoadEnemyDefinitions(filepath.Join(t.TempDir(), "missing.json")))
}

func TestArchetypeTraits(t *testing.T) {
	assert.True(t, DefaultEnemyDefinitions[ArchetypeKamikaze].Kamikaze())
	assert.False(t, DefaultEnemyDefinitions[ArchetypeKamikaze].Fires())
	assert.True(t, DefaultEnemyDefinitions[ArchetypeSniper].Stationary())
	assert.True(t, DefaultEnemyDefinitions[ArchetypeSniper].Fires())
	assert.NotEqual(t, ArchetypeSplitter, SplitInto)
}

func TestWeaponNames(t *testing.T) {
	assert.Equal(t, "Shockwave", WeaponShockwave.String())
	assert.Equal(t, "Unknown", WeaponType(7).String())
}
