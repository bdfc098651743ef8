package gamedata

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/beaconcave/internal/rng"
)

func TestLoadEnemies(t *testing.T) {
	enemies, err := LoadEnemies()
	require.NoError(t, err)
	require.Len(t, enemies, 3)

	ids := make([]string, 0, len(enemies))
	for _, e := range enemies {
		ids = append(ids, e.ID)
		assert.Positive(t, e.SpawnWeight, "%s weight", e.ID)
		assert.NotEqual(t, '?', e.GlyphRune(), "%s glyph", e.ID)
	}
	assert.ElementsMatch(t, []string{"crawler", "brute", "wraith"}, ids)
}

func TestGlyphRune(t *testing.T) {
	tests := []struct {
		glyph string
		want  rune
	}{
		{"c", 'c'},
		{"☠", '☠'},
		{"ßx", 'ß'},
		{"", '?'},
		{"\xff", '?'},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, (&EnemyDef{Glyph: tt.glyph}).GlyphRune(), "glyph %q", tt.glyph)
	}
}

func TestEnemyRegistry(t *testing.T) {
	registry, err := LoadEnemyRegistry()
	require.NoError(t, err)
	assert.Equal(t, 3, registry.Count())

	crawler := registry.GetByID("crawler")
	require.NotNil(t, crawler)
	assert.Equal(t, "Crawler", crawler.Name)
	assert.Nil(t, registry.GetByID("goblin"))

	var seed rng.Seed
	s1, s2 := rng.NewStream(seed), rng.NewStream(seed)
	for i := 0; i < 10; i++ {
		assert.Equal(t, registry.SpawnRandom(s1).ID, registry.SpawnRandom(s2).ID, "spawn %d", i)
	}
}

func TestMustLoadEnemyRegistry(t *testing.T) {
	var registry *EnemyRegistry
	require.NotPanics(t, func() { registry = MustLoadEnemyRegistry() })
	assert.Equal(t, 3, registry.Count())
}

func TestSpawnRandomWeights(t *testing.T) {
	registry := NewEnemyRegistry([]EnemyDef{
		{ID: "a", SpawnWeight: 2},
		{ID: "b", SpawnWeight: 0},
		{ID: "c", SpawnWeight: 3},
	})

	// Rolls 0-1 land on a, 2-4 on c; b can never be chosen.
	tests := []struct {
		draw uint32
		want string
	}{
		{0, "a"},
		{1, "a"},
		{2, "c"},
		{4, "c"},
		{5, "a"},
		{7, "c"},
	}
	for _, tt := range tests {
		got := registry.SpawnRandom(rng.NewSequence(tt.draw))
		assert.Equal(t, tt.want, got.ID, "draw %d", tt.draw)
	}
}

func TestSpawnRandomEmpty(t *testing.T) {
	assert.Nil(t, NewEnemyRegistry(nil).SpawnRandom(rng.NewSequence(1)))
	assert.Nil(t, NewEnemyRegistry([]EnemyDef{{ID: "x"}}).SpawnRandom(rng.NewSequence(1)))
}

func TestFindPreset(t *testing.T) {
	p, err := FindPreset(DefaultPreset)
	require.NoError(t, err)
	assert.Equal(t, LevelPreset{Name: "default", Width: 50, Height: 50, Iterations: 5, SpawnerOdds: 50, EnemyOdds: 10}, p)

	presets, err := LoadPresets()
	require.NoError(t, err)
	for _, p := range presets {
		assert.NoError(t, p.Validate(), p.Name)
	}

	_, err = FindPreset("enormous")
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func TestPresetValidate(t *testing.T) {
	tests := []struct {
		name   string
		preset LevelPreset
		valid  bool
	}{
		{"ok", LevelPreset{Width: 10, Height: 10, Iterations: 0, SpawnerOdds: 1, EnemyOdds: 1}, true},
		{"zero width", LevelPreset{Width: 0, Height: 10, SpawnerOdds: 1, EnemyOdds: 1}, false},
		{"negative iterations", LevelPreset{Width: 10, Height: 10, Iterations: -1, SpawnerOdds: 1, EnemyOdds: 1}, false},
		{"zero odds", LevelPreset{Width: 10, Height: 10, SpawnerOdds: 0, EnemyOdds: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.preset.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"good.json": {Data: []byte(`{"presets":[{"name":"tiny","width":4,"height":4}]}`)},
		"bad.json":  {Data: []byte(`{"presets":`)},
	}

	file, err := LoadFS[PresetsFile](fsys, "good.json")
	require.NoError(t, err)
	require.Len(t, file.Presets, 1)
	assert.Equal(t, "tiny", file.Presets[0].Name)

	_, err = LoadFS[PresetsFile](fsys, "bad.json")
	assert.ErrorContains(t, err, "failed to parse JSON")

	_, err = LoadFS[PresetsFile](fsys, "missing.json")
	assert.ErrorContains(t, err, "failed to read data file")
}
