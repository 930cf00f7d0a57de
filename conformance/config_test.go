package conformance_test

import (
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talklittle/servo/conformance"
)

func TestDefaultConfig(t *testing.T) {
	cfg := conformance.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "../../../resources/blue-1x1.jpg", cfg.ImagePath)
	assert.Equal(t, image.Pt(512, 512), cfg.Size)
	assert.Equal(t, 2, cfg.Tolerance)
	assert.Equal(t, 2, cfg.Renders)
}

func TestConfig_Validate(t *testing.T) {
	for name, mod := range map[string]func(*conformance.Config){
		"no image":       func(cfg *conformance.Config) { cfg.ImagePath = "" },
		"empty size":     func(cfg *conformance.Config) { cfg.Size = image.Pt(0, 512) },
		"tolerance low":  func(cfg *conformance.Config) { cfg.Tolerance = -1 },
		"tolerance high": func(cfg *conformance.Config) { cfg.Tolerance = 256 },
		"no renders":     func(cfg *conformance.Config) { cfg.Renders = 0 },
		"no timeout":     func(cfg *conformance.Config) { cfg.LoadTimeout = 0 },
	} {
		cfg := conformance.DefaultConfig()
		mod(&cfg)
		assert.Error(t, cfg.Validate(), name)
	}
}

func lookupMap(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestConfig_ApplyEnv(t *testing.T) {
	cfg := conformance.DefaultConfig()
	require.NoError(t, cfg.ApplyEnv(lookupMap(map[string]string{
		"image":     "resources/blue-1x1.png",
		"timeout":   "3s",
		"tolerance": "0",
		"renders":   "5",
	})))
	assert.Equal(t, "resources/blue-1x1.png", cfg.ImagePath)
	assert.Equal(t, 3*time.Second, cfg.LoadTimeout)
	assert.Equal(t, 0, cfg.Tolerance)
	assert.Equal(t, 5, cfg.Renders)

	cfg = conformance.DefaultConfig()
	require.NoError(t, cfg.ApplyEnv(lookupMap(nil)))
	assert.Equal(t, conformance.DefaultConfig(), cfg)

	for _, env := range []map[string]string{
		{"timeout": "soon"},
		{"tolerance": "two"},
		{"renders": "0"},
	} {
		cfg := conformance.DefaultConfig()
		assert.Error(t, cfg.ApplyEnv(lookupMap(env)), "%v", env)
	}
}
