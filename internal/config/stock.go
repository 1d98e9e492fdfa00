package config

// Stock sun4i (Allwinner A10) control files and tuning values.
const (
	cpufreqPath     = "/sys/devices/system/cpu/cpu0/cpufreq"
	governorsPath   = "/sys/devices/system/cpu/cpufreq"
	maliParamsPath  = "/sys/module/mali/parameters"
	maliDevicePath  = "/sys/devices/platform/mali_dev.0"
	GovInteractive  = "interactive"
	GovOndemand     = "ondemand"
	stockScreenOff  = "696000"
	stockScalingMax = "1008000"
)

func Default() *Config {
	return &Config{
		Paths: Paths{
			ScalingMaxFreq:  cpufreqPath + "/scaling_max_freq",
			ScalingGovernor: cpufreqPath + "/scaling_governor",
			Boostpulse: map[string]string{
				GovInteractive: governorsPath + "/interactive/boostpulse",
				GovOndemand:    governorsPath + "/ondemand/boostpulse",
			},
			GPUBoostpulse: maliDevicePath + "/boostpulse",
		},
		Tuning: Tuning{
			Governors: map[string][]Param{
				//timer 20ms, min sample 60ms, hispeed 696MHz at load 50%
				GovInteractive: {
					{Path: governorsPath + "/interactive/timer_rate", Value: "20000"},
					{Path: governorsPath + "/interactive/min_sample_time", Value: "60000"},
					{Path: governorsPath + "/interactive/hispeed_freq", Value: "696000"},
					{Path: governorsPath + "/interactive/go_hispeed_load", Value: "50"},
					{Path: governorsPath + "/interactive/above_hispeed_delay", Value: "100000"},
				},
				//boostfreq 696MHz, up threshold 70%, sampling rate 50ms
				GovOndemand: {
					{Path: governorsPath + "/ondemand/boostfreq", Value: "696000"},
					{Path: governorsPath + "/ondemand/up_threshold", Value: "70"},
					{Path: governorsPath + "/ondemand/sampling_rate", Value: "50000"},
				},
			},
			//1200MHz PLL / 400MHz Mali, 500ms
			GPU: []Param{
				{Path: maliParamsPath + "/mali_boost_rate", Value: "1200"},
				{Path: maliParamsPath + "/mali_boost_duration", Value: "500"},
			},
		},
		ScreenOffMaxFreq: stockScreenOff,
		ScalingMaxFreq:   stockScalingMax,
	}
}
