// Package config holds the control-file paths and tuning constants of the
// power HAL, loaded from a device manifest over built-in sun4i defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/AndroidPlusProject/PowerHAL/internal/logging"
	"github.com/AndroidPlusProject/PowerHAL/internal/sysfs"
)

// Manifests is the default search order, first readable non-empty file wins.
var Manifests = []string{
	"./powerhal.yaml",
	"/data/local/tmp/powerhal.yaml",
	"/vendor/etc/powerhal.yaml",
	"/system/vendor/etc/powerhal.yaml",
	"/system/etc/powerhal.yaml",
	"/etc/powerhal.yaml",
}

type Config struct {
	Paths  Paths  `yaml:"paths"`
	Tuning Tuning `yaml:"tuning"`
	// Ceiling written to scaling_max_freq while the screen is off.
	ScreenOffMaxFreq string `yaml:"screen_off_max_freq"`
	// Ceiling restored on screen-on until one has been read from the kernel.
	ScalingMaxFreq string `yaml:"scaling_max_freq"`
}

type Paths struct {
	ScalingMaxFreq  string            `yaml:"scaling_max_freq"`
	ScalingGovernor string            `yaml:"scaling_governor"`
	Boostpulse      map[string]string `yaml:"boostpulse"` //governor name -> boostpulse file
	GPUBoostpulse   string            `yaml:"gpu_boostpulse"`
}

type Tuning struct {
	Governors map[string][]Param `yaml:"governors"`
	GPU       []Param            `yaml:"gpu"`
}

// Param is a single control-file write, applied in list order.
type Param struct {
	Path  string `yaml:"path"`
	Value string `yaml:"value"`
}

// Load decodes the first non-empty manifest over Default. The returned path
// is empty when no manifest was found.
func Load(manifests ...string) (*Config, string, error) {
	if len(manifests) == 0 {
		manifests = Manifests
	}
	cfg := Default()
	for _, manifest := range manifests {
		data, err := os.ReadFile(manifest)
		if err != nil || len(data) == 0 {
			continue
		}
		logging.Info("Found manifest at %s", manifest)
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, manifest, fmt.Errorf("parsing manifest %s: %w", manifest, err)
		}
		if err := cfg.Validate(); err != nil {
			return nil, manifest, fmt.Errorf("manifest %s: %w", manifest, err)
		}
		return cfg, manifest, nil
	}
	logging.Debug("No manifest found, using stock sun4i values")
	return cfg, "", nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Paths.ScalingMaxFreq == "" {
		errs = append(errs, pathErrorDefinition("scaling_max_freq"))
	}
	if c.Paths.ScalingGovernor == "" {
		errs = append(errs, pathErrorDefinition("scaling_governor"))
	}
	if c.Paths.GPUBoostpulse == "" {
		errs = append(errs, pathErrorDefinition("gpu_boostpulse"))
	}
	for governor, path := range c.Paths.Boostpulse {
		if governor == "" {
			errs = append(errs, fmt.Errorf("boostpulse path %s has no governor name", path))
		} else if path == "" {
			errs = append(errs, pathErrorDefinition("boostpulse/%s", governor))
		}
	}
	for governor, params := range c.Tuning.Governors {
		for i, p := range params {
			if p.Path == "" {
				errs = append(errs, pathErrorDefinition("tuning/governors/%s[%d]", governor, i))
			}
		}
	}
	for i, p := range c.Tuning.GPU {
		if p.Path == "" {
			errs = append(errs, pathErrorDefinition("tuning/gpu[%d]", i))
		}
	}
	if _, err := strconv.ParseUint(c.ScreenOffMaxFreq, 10, 64); err != nil {
		errs = append(errs, fmt.Errorf("invalid screen_off_max_freq %q: %w", c.ScreenOffMaxFreq, err))
	}
	if _, err := strconv.ParseUint(c.ScalingMaxFreq, 10, 64); err != nil {
		errs = append(errs, fmt.Errorf("invalid scaling_max_freq %q: %w", c.ScalingMaxFreq, err))
	}
	return errors.Join(errs...)
}

// Missing lists configured control files that are not present, sorted.
func (c *Config) Missing() []string {
	paths := []string{c.Paths.ScalingMaxFreq, c.Paths.ScalingGovernor, c.Paths.GPUBoostpulse}
	for _, path := range c.Paths.Boostpulse {
		paths = append(paths, path)
	}
	for _, params := range c.Tuning.Governors {
		for _, p := range params {
			paths = append(paths, p.Path)
		}
	}
	for _, p := range c.Tuning.GPU {
		paths = append(paths, p.Path)
	}

	missing := make([]string, 0)
	seen := make(map[string]bool)
	for _, path := range paths {
		if path == "" || seen[path] {
			continue
		}
		seen[path] = true
		if !sysfs.Exists(path) {
			missing = append(missing, path)
		}
	}
	sort.Strings(missing)
	return missing
}

func pathErrorDefinition(nameFormat string, formats ...any) error {
	name := fmt.Sprintf(nameFormat, formats...)
	return fmt.Errorf("please define path for %s, or remove it from manifest", name)
}
