package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "696000", cfg.ScreenOffMaxFreq)
	assert.Equal(t, "1008000", cfg.ScalingMaxFreq)
	assert.Len(t, cfg.Tuning.Governors[GovInteractive], 5)
	assert.Len(t, cfg.Tuning.Governors[GovOndemand], 3)
	assert.Len(t, cfg.Tuning.GPU, 2)
	assert.Equal(t, "/sys/devices/system/cpu/cpufreq/interactive/boostpulse", cfg.Paths.Boostpulse[GovInteractive])
	assert.Equal(t, "/sys/devices/platform/mali_dev.0/boostpulse", cfg.Paths.GPUBoostpulse)
}

func TestLoadWithoutManifestUsesDefaults(t *testing.T) {
	cfg, manifest, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Empty(t, manifest)
	assert.Equal(t, Default(), cfg)
}

func TestLoadSkipsEmptyManifest(t *testing.T) {
	empty := writeManifest(t, "empty.yaml", "")
	second := writeManifest(t, "second.yaml", "screen_off_max_freq: \"480000\"\n")

	cfg, manifest, err := Load(empty, second)
	require.NoError(t, err)
	assert.Equal(t, second, manifest)
	assert.Equal(t, "480000", cfg.ScreenOffMaxFreq)
}

func TestLoadYAMLOverlaysDefaults(t *testing.T) {
	path := writeManifest(t, "powerhal.yaml", `
paths:
  boostpulse:
    schedutil: /sys/devices/system/cpu/cpufreq/schedutil/boostpulse
tuning:
  governors:
    ondemand:
      - path: /sys/devices/system/cpu/cpufreq/ondemand/up_threshold
        value: "80"
`)

	cfg, _, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Paths.Boostpulse, 3)
	assert.Equal(t, "/sys/devices/system/cpu/cpufreq/interactive/boostpulse", cfg.Paths.Boostpulse[GovInteractive])
	assert.Equal(t, []Param{{Path: "/sys/devices/system/cpu/cpufreq/ondemand/up_threshold", Value: "80"}}, cfg.Tuning.Governors[GovOndemand])
	assert.Len(t, cfg.Tuning.Governors[GovInteractive], 5)
	assert.Equal(t, "/sys/devices/system/cpu/cpu0/cpufreq/scaling_governor", cfg.Paths.ScalingGovernor)
}

func TestLoadJSONManifest(t *testing.T) {
	path := writeManifest(t, "powerhal.json", `{"screen_off_max_freq": "600000", "paths": {"gpu_boostpulse": "/tmp/gpu"}}`)

	cfg, _, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "600000", cfg.ScreenOffMaxFreq)
	assert.Equal(t, "/tmp/gpu", cfg.Paths.GPUBoostpulse)
}

func TestLoadRejectsInvalidManifest(t *testing.T) {
	for name, content := range map[string]string{
		"syntax":         "paths: [",
		"ceiling":        "screen_off_max_freq: \"fast\"\n",
		"governor path":  "paths:\n  scaling_governor: \"\"\n",
		"gpu boostpulse": "paths:\n  gpu_boostpulse: \"\"\n",
		"tuning path":    "tuning:\n  gpu:\n    - value: \"1\"\n",
	} {
		t.Run(name, func(t *testing.T) {
			path := writeManifest(t, "bad.yaml", content)
			cfg, manifest, err := Load(path)
			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Equal(t, path, manifest)
		})
	}
}

func TestMissing(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "scaling_governor")
	require.NoError(t, os.WriteFile(present, []byte("ondemand\n"), 0644))

	cfg := &Config{
		Paths: Paths{
			ScalingMaxFreq:  filepath.Join(dir, "scaling_max_freq"),
			ScalingGovernor: present,
			Boostpulse:      map[string]string{GovOndemand: filepath.Join(dir, "boostpulse")},
		},
		Tuning: Tuning{GPU: []Param{{Path: present, Value: "1"}}},
	}
	assert.Equal(t, []string{filepath.Join(dir, "boostpulse"), filepath.Join(dir, "scaling_max_freq")}, cfg.Missing())
}
