package main

import (
	"C"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"

	"github.com/AndroidPlusProject/PowerHAL/internal/config"
	"github.com/AndroidPlusProject/PowerHAL/internal/logging"
	"github.com/AndroidPlusProject/PowerHAL/internal/power"
	"github.com/AndroidPlusProject/PowerHAL/internal/sysfs"
)

var (
	//The host calls in through C, so the coordinator lives here for the
	//life of the process.
	hal       *power.Coordinator = nil
	halMu     sync.RWMutex
	bootOnce  sync.Once
	manifests = config.Manifests
	registry  = prometheus.NewRegistry()
	metrics   = power.NewMetrics(registry)
)

func coordinator() *power.Coordinator {
	PowerHAL_Init()
	halMu.RLock()
	defer halMu.RUnlock()
	return hal
}

//export PowerHAL_Init
func PowerHAL_Init() {
	bootOnce.Do(func() {
		startTime := time.Now()
		PowerHAL_ReloadConfig()
		logging.Info("PowerHAL finished init in %dms", time.Since(startTime).Milliseconds())
	})
}

//export PowerHAL_ReloadConfig
func PowerHAL_ReloadConfig() {
	cfg, manifest, err := config.Load(manifests...)
	if err != nil {
		logging.Error("Error reading manifest %s, falling back to stock values: %v", manifest, err)
		cfg = config.Default()
	}
	if missing := cfg.Missing(); len(missing) > 0 {
		logging.Debug("Control files not present: %s", strings.Join(missing, ", "))
	}

	next := power.New(sysfs.Accessor{}, cfg, metrics)
	next.Init()

	halMu.Lock()
	prev := hal
	hal = next
	halMu.Unlock()
	if prev != nil {
		prev.Close()
	}
}

//export PowerHAL_SetInteractive
func PowerHAL_SetInteractive(interactive bool) {
	logging.Debug("Interactive: %t", interactive)
	coordinator().SetInteractive(interactive)
}

//export PowerHAL_PowerHint
func PowerHAL_PowerHint(hint, data int32) {
	h := power.HintFromRaw(hint, data)
	logging.Verbose("PowerHint: %s", h)
	coordinator().PowerHint(h)
}

func parseSwitch(arg string) (bool, error) {
	switch strings.ToLower(arg) {
	case "1", "t", "true", "y", "yes", "on", "enabled":
		return true, nil
	case "0", "f", "false", "n", "no", "off", "disabled":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", arg)
}

func run(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing command")
	}

	switch args[0] {
	case "init":
		if len(args) != 1 {
			return fmt.Errorf("init takes no arguments")
		}
		PowerHAL_Init()
	case "interactive":
		if len(args) != 2 {
			return fmt.Errorf("usage: interactive on|off")
		}
		on, err := parseSwitch(args[1])
		if err != nil {
			return err
		}
		PowerHAL_SetInteractive(on)
	case "hint":
		if len(args) < 2 || len(args) > 3 {
			return fmt.Errorf("usage: hint interaction|cpu_boost|vsync [duration]")
		}
		kind, err := power.ParseHintKind(args[1])
		if err != nil {
			return err
		}
		hint := power.NewHint(kind)
		if len(args) == 3 {
			duration, err := strconv.Atoi(args[2])
			if err != nil || duration <= 0 {
				return fmt.Errorf("invalid duration %q", args[2])
			}
			hint = hint.WithDuration(duration)
		}
		logging.Info("Sending power hint %s", hint)
		coordinator().PowerHint(hint)
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
	return nil
}

func main() {
	debug := false
	verbose := false
	metricsTextfile := ""
	pflag.StringArrayVarP(&manifests, "manifest", "m", manifests, "path to device manifest(s), first one found wins")
	pflag.BoolVarP(&debug, "debug", "d", debug, "debug mode")
	pflag.BoolVarP(&verbose, "verbose", "v", verbose, "verbose mode")
	pflag.StringVar(&metricsTextfile, "metrics-textfile", metricsTextfile, "write metrics to this file for the node exporter textfile collector")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] init | interactive on|off | hint interaction|cpu_boost|vsync [duration]\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()
	logging.SetDebug(debug)
	logging.SetVerbose(verbose)

	err := run(pflag.Args())
	if err == nil && metricsTextfile != "" {
		err = prometheus.WriteToTextfile(metricsTextfile, registry)
	}
	halMu.RLock()
	if hal != nil {
		hal.Close()
	}
	halMu.RUnlock()
	if err != nil {
		logging.Error("%v", err)
		logging.Sync()
		pflag.Usage()
		os.Exit(2)
	}
	logging.Sync()
}
