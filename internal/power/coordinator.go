// Package power drives the sun4i cpufreq governors and the Mali GPU from
// Android power hints.
//
// A Coordinator owns the cached boostpulse handle of the active governor.
// Every hint re-reads scaling_governor; when the governor has changed the
// tuning for the new one is applied before its boostpulse file is opened.
// A failed write drops the handle so the next hint opens it fresh.
package power

import (
	"errors"
	"strconv"
	"sync"

	"github.com/AndroidPlusProject/PowerHAL/internal/config"
	"github.com/AndroidPlusProject/PowerHAL/internal/logging"
	"github.com/AndroidPlusProject/PowerHAL/internal/sysfs"
)

// ErrGovernorUnrecognized is returned when no boostpulse file is configured
// for the running governor. It is a normal outcome, not a failure.
var ErrGovernorUnrecognized = errors.New("governor has no boostpulse file")

// ErrClosed is returned by boost requests that reach a closed coordinator.
var ErrClosed = errors.New("power coordinator closed")

// Coordinator boost state: open while boost is set, warned while an open
// or governor read failed since the last successful open, closed otherwise.
type Coordinator struct {
	fs      sysfs.FS
	cfg     *config.Config
	metrics *Metrics

	//Guards everything below. Held across boost writes so a handle is never
	//used after another caller invalidated it.
	mu          sync.Mutex
	boost       sysfs.Handle //nil while closed
	governor    string       //governor the tuning and boost handle belong to
	warned      bool
	closed      bool //set by Close, no boostpulse is opened afterwards
	lastMaxFreq string
}

// New returns a coordinator over fs. A nil metrics gets an unregistered set.
func New(fs sysfs.FS, cfg *config.Config, metrics *Metrics) *Coordinator {
	if metrics == nil {
		metrics = NewMetrics(nil)
	}
	return &Coordinator{
		fs:          fs,
		cfg:         cfg,
		metrics:     metrics,
		lastMaxFreq: cfg.ScalingMaxFreq,
	}
}

// Init applies the tuning of the running governor.
func (c *Coordinator) Init() {
	c.mu.Lock()
	defer c.mu.Unlock()

	governor, err := c.currentGovernor()
	if err != nil {
		//The accessor already logged the cause
		logging.Error("Can't read scaling governor")
		c.warned = true
		return
	}
	logging.Info("Scaling governor is %s", governor)
	c.applyTuningLocked(governor)
}

// PowerHint boosts the CPU governor and the GPU for interaction and CPU
// boost hints. Everything else is ignored.
func (c *Coordinator) PowerHint(hint Hint) {
	switch hint.Kind {
	case HintInteraction, HintCPUBoost:
		c.boostPulse(hint.durationOrDefault())
	}
}

func (c *Coordinator) boostPulse(duration int) {
	value := strconv.Itoa(duration)

	c.mu.Lock()
	h, err := c.acquireLocked()
	if err != nil {
		c.mu.Unlock()
		return
	}
	if err := h.WriteString(value); err != nil {
		logging.Error("Error writing to boostpulse: %v", err)
		c.metrics.writeFailures.Inc()
		c.invalidateLocked()
	} else {
		c.metrics.pulses.WithLabelValues("cpu").Inc()
	}
	c.mu.Unlock()

	//The GPU pulse does not depend on the CPU write succeeding, only on a
	//governor boostpulse being available.
	if c.fs.Write(c.cfg.Paths.GPUBoostpulse, value) {
		c.metrics.pulses.WithLabelValues("gpu").Inc()
	}
}

// acquireLocked returns the boostpulse handle of the running governor,
// opening it when needed. A nil handle always comes with an error.
func (c *Coordinator) acquireLocked() (sysfs.Handle, error) {
	if c.closed {
		return nil, ErrClosed
	}
	governor, err := c.currentGovernor()
	if err != nil {
		c.closeLocked()
		if !c.warned {
			logging.Error("Can't read scaling governor")
			c.warned = true
		}
		return nil, err
	}

	if c.boost != nil && governor == c.governor {
		return c.boost, nil
	}

	if governor != c.governor {
		logging.Info("Scaling governor changed from '%s' to '%s', reapplying tuning", c.governor, governor)
		c.metrics.governorChanges.Inc()
		c.warned = false
		c.applyTuningLocked(governor)
	}

	path, ok := c.cfg.Paths.Boostpulse[governor]
	if !ok {
		logging.Verbose("No boostpulse for governor %s", governor)
		return nil, ErrGovernorUnrecognized
	}
	h, err := c.fs.OpenWriter(path)
	if err != nil {
		if !c.warned {
			logging.Error("Error opening boostpulse: %v", err)
			c.warned = true
		}
		return nil, err
	}

	logging.Debug("Opened boostpulse %s", path)
	c.boost = h
	c.warned = false
	c.metrics.handleOpens.Inc()
	return h, nil
}

// invalidateLocked drops the boost handle after a failed write.
func (c *Coordinator) invalidateLocked() {
	c.closeLocked()
	c.warned = false
}

func (c *Coordinator) closeLocked() {
	if c.boost == nil {
		return
	}
	if err := c.boost.Close(); err != nil {
		logging.Warn("Error closing boostpulse: %v", err)
	}
	c.boost = nil
}

// Close releases the boost handle. Hints that arrive afterwards, such as
// ones racing a config reload, are dropped instead of reopening it.
func (c *Coordinator) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.closeLocked()
}
