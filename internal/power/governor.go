package power

import (
	"strings"

	"github.com/AndroidPlusProject/PowerHAL/internal/logging"
)

const governorBufSize = 80

func (c *Coordinator) currentGovernor() (string, error) {
	data, err := c.fs.Read(c.cfg.Paths.ScalingGovernor, governorBufSize)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

// applyTuningLocked writes the parameter set of governor, then the GPU boost
// rate and duration, and records governor as the cached one. A boost handle
// opened for another governor is dropped so it never outlives its tuning.
func (c *Coordinator) applyTuningLocked(governor string) {
	if c.boost != nil && governor != c.governor {
		c.closeLocked()
	}

	params, ok := c.cfg.Tuning.Governors[governor]
	if !ok {
		logging.Debug("No tuning for governor %s", governor)
	}
	for _, p := range params {
		logging.Debug("> %s > %s = %s", governor, p.Path, p.Value)
		c.fs.Write(p.Path, p.Value)
	}
	for _, p := range c.cfg.Tuning.GPU {
		logging.Debug("> GPU > %s = %s", p.Path, p.Value)
		c.fs.Write(p.Path, p.Value)
	}

	c.governor = governor
	c.metrics.tuningApplies.Inc()
}
