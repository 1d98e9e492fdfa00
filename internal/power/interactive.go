package power

import (
	"strings"

	"github.com/AndroidPlusProject/PowerHAL/internal/logging"
)

const maxFreqBufSize = 20

// SetInteractive lowers scaling_max_freq to the screen-off ceiling when the
// display turns off and restores the previous ceiling when it turns back on.
//
// The host serializes setInteractive but not against powerHint, so the
// cached ceiling lives under the coordinator mutex.
func (c *Coordinator) SetInteractive(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	path := c.cfg.Paths.ScalingMaxFreq
	if on {
		logging.Debug("Screen on, restoring max freq %s", c.lastMaxFreq)
		c.fs.Write(path, c.lastMaxFreq)
		c.metrics.interactive.Set(1)
		return
	}

	//A skipped screen-on call leaves the screen-off ceiling in place, never
	//remember that one.
	if data, err := c.fs.Read(path, maxFreqBufSize); err == nil {
		current := strings.TrimRight(string(data), "\r\n")
		if current != "" && current != c.cfg.ScreenOffMaxFreq {
			c.lastMaxFreq = current
		}
	}
	logging.Debug("Screen off, capping max freq at %s", c.cfg.ScreenOffMaxFreq)
	c.fs.Write(path, c.cfg.ScreenOffMaxFreq)
	c.metrics.interactive.Set(0)
}
