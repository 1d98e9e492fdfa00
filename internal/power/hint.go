package power

import (
	"fmt"
	"strings"
)

type HintKind int

const (
	HintOther HintKind = iota
	HintVsync
	HintInteraction
	HintCPUBoost
)

// Raw power_hint_t ids handed over by the host.
const (
	RawHintVsync       int32 = 0x00000001
	RawHintInteraction int32 = 0x00000002
	RawHintCPUBoost    int32 = 0x00000010
)

const defaultBoostDuration = 1

func (k HintKind) String() string {
	switch k {
	case HintVsync:
		return "vsync"
	case HintInteraction:
		return "interaction"
	case HintCPUBoost:
		return "cpu_boost"
	}
	return "other"
}

// Hint is a power hint with an optional boost duration.
type Hint struct {
	Kind        HintKind
	duration    int
	hasDuration bool
}

func NewHint(kind HintKind) Hint {
	return Hint{Kind: kind}
}

// WithDuration attaches a boost duration. Non-positive durations are
// treated as absent.
func (h Hint) WithDuration(d int) Hint {
	if d > 0 {
		h.duration, h.hasDuration = d, true
	}
	return h
}

func (h Hint) Duration() (int, bool) {
	return h.duration, h.hasDuration
}

func (h Hint) durationOrDefault() int {
	if h.hasDuration {
		return h.duration
	}
	return defaultBoostDuration
}

func (h Hint) String() string {
	if h.hasDuration {
		return fmt.Sprintf("%s(%d)", h.Kind, h.duration)
	}
	return h.Kind.String()
}

// HintFromRaw decodes a host hint id. A zero payload means no data was
// supplied.
func HintFromRaw(id, data int32) Hint {
	var kind HintKind
	switch id {
	case RawHintVsync:
		kind = HintVsync
	case RawHintInteraction:
		kind = HintInteraction
	case RawHintCPUBoost:
		kind = HintCPUBoost
	default:
		kind = HintOther
	}
	return NewHint(kind).WithDuration(int(data))
}

// ParseHintKind maps a hint name as written on the command line.
func ParseHintKind(name string) (HintKind, error) {
	switch strings.ToLower(strings.ReplaceAll(name, "-", "_")) {
	case "vsync":
		return HintVsync, nil
	case "interaction":
		return HintInteraction, nil
	case "cpu_boost", "boost":
		return HintCPUBoost, nil
	}
	return HintOther, fmt.Errorf("unknown power hint %q", name)
}
