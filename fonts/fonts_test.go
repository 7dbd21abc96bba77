package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults())

	for _, name := range []FontName{Mono, MonoSmall, MonoTitle} {
		assert.True(t, Loaded(name), name)
		assert.NotNil(t, name.Get())
	}
	assert.Greater(t, MonoTitle.Get().Metrics().Height, Mono.Get().Metrics().Height)
}

func TestGetUnknownFontPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("missing").Get() })
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	assert.Error(t, LoadFontWithSize("bad", []byte("not a font"), 10))
	assert.False(t, Loaded("bad"))
}
