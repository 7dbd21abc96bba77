package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArenaNames(t *testing.T) {
	assert.Equal(t, []string{"arena", "dojo", "temple", "volcano"}, ArenaNames())
}

func TestLoadArenaPresets(t *testing.T) {
	tests := []struct {
		name      string
		platforms [][2]float64 // center x, y
	}{
		{"dojo", [][2]float64{{0, 2}}},
		{"temple", [][2]float64{{-5, 3}, {5, 3}, {0, 5}}},
		{"arena", [][2]float64{{-6, 2}, {6, 2}, {0, 3.5}}},
		{"volcano", [][2]float64{{-4, 2.5}, {4, 2.5}, {0, 4}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arena, err := LoadArena(tt.name)
			require.NoError(t, err)
			require.Len(t, arena.Platforms, len(tt.platforms))
			assert.Equal(t, 9.0, arena.WallExtent)
			assert.Equal(t, 1.0, arena.GroundLevel)
			for i, p := range arena.Platforms {
				assert.InDelta(t, tt.platforms[i][0], p.Position.X, 1e-9, "platform %d x", i)
				assert.InDelta(t, tt.platforms[i][1], p.Position.Y, 1e-9, "platform %d y", i)
				assert.InDelta(t, -1, p.Position.Z, 1e-9)
				assert.InDelta(t, 0.5, p.Size.Y, 1e-9)
			}
		})
	}
}

func TestLoadArenaDefaultAndUnknown(t *testing.T) {
	arena, err := LoadArena("")
	require.NoError(t, err)
	assert.Equal(t, DefaultArena, arena.Name)

	_, err = LoadArena("moon")
	assert.Error(t, err)
}
