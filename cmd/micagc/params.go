package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/algo-agc/dsp/effects/agc"
)

// ParamsCmd lists the engine key/value parameters.
type ParamsCmd struct{}

var paramHelp = map[string]string{
	"phaserotate": "phase rotator on (1) or off (0)",
	"gain":        "maximum amplification, dB",
	"limit":       "output ceiling, dB (6 dB per doubling)",
	"ngthresh":    "noise gate threshold, dB",
	"nggain":      "gain while gated, dB",
	"duckenable":  "ducker on (1) or off (0)",
	"duckrelease": "ducker release time, ms",
	"duckhold":    "ducker hold time, ms",
	"deessbias":   "high band weight in the de-esser comparison",
	"deessgain":   "gain while de-essing, dB",
	"hpcutoff":    "subsonic highpass cutoff, Hz",
	"hpstages":    "subsonic highpass stages, 0-4",
	"hfmulti":     "high frequency detail amount",
	"hfcutoff":    "high frequency detail cutoff, Hz",
	"lfmulti":     "low frequency detail amount",
	"lfcutoff":    "low frequency detail cutoff, Hz",
}

// Run implements the command.
func (c *ParamsCmd) Run(_ *Globals) error {
	defaults := paramDefaults()

	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tDEFAULT\tDESCRIPTION")

	for _, k := range agc.ParamKeys() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", k, defaults[k], paramHelp[k])
	}

	return tw.Flush()
}

func paramDefaults() map[string]string {
	f := agc.DefaultFilterConfig()
	d := agc.DefaultDynamicsConfig()
	k := agc.DefaultDuckerConfig()

	num := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	flag := func(v bool) string {
		if v {
			return "1"
		}

		return "0"
	}

	return map[string]string{
		"phaserotate": flag(f.PhaseRotate),
		"gain":        num(d.GainDB),
		"limit":       num(d.LimitDB),
		"ngthresh":    num(d.GateThresholdDB),
		"nggain":      num(d.GateGainDB),
		"duckenable":  flag(k.Enabled),
		"duckrelease": num(k.ReleaseMs),
		"duckhold":    num(k.HoldMs),
		"deessbias":   num(d.DeEssBias),
		"deessgain":   num(d.DeEssGainDB),
		"hpcutoff":    num(f.SubsonicCutoffHz),
		"hpstages":    strconv.Itoa(f.SubsonicStages),
		"hfmulti":     num(f.HFDetail),
		"hfcutoff":    num(f.HFCutoffHz),
		"lfmulti":     num(f.LFDetail),
		"lfcutoff":    num(f.LFCutoffHz),
	}
}
