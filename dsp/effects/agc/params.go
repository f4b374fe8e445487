package agc

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

type paramSetter func(c *Channel, key, value string) error

var params = map[string]paramSetter{
	"phaserotate": setFilterBool(func(f *FilterConfig, v bool) { f.PhaseRotate = v }),
	"hpcutoff":    setFilterNum(func(f *FilterConfig, v float64) { f.SubsonicCutoffHz = v }),
	"hpstages":    setFilterNum(func(f *FilterConfig, v float64) { f.SubsonicStages = int(v + 0.5) }),
	"hfmulti":     setFilterNum(func(f *FilterConfig, v float64) { f.HFDetail = v }),
	"hfcutoff":    setFilterNum(func(f *FilterConfig, v float64) { f.HFCutoffHz = v }),
	"lfmulti":     setFilterNum(func(f *FilterConfig, v float64) { f.LFDetail = v }),
	"lfcutoff":    setFilterNum(func(f *FilterConfig, v float64) { f.LFCutoffHz = v }),

	"gain":      setDynamicsNum(func(d *DynamicsConfig, v float64) { d.GainDB = v }),
	"limit":     setDynamicsNum(func(d *DynamicsConfig, v float64) { d.LimitDB = v }),
	"ngthresh":  setDynamicsNum(func(d *DynamicsConfig, v float64) { d.GateThresholdDB = v }),
	"nggain":    setDynamicsNum(func(d *DynamicsConfig, v float64) { d.GateGainDB = v }),
	"deessbias": setDynamicsNum(func(d *DynamicsConfig, v float64) { d.DeEssBias = v }),
	"deessgain": setDynamicsNum(func(d *DynamicsConfig, v float64) { d.DeEssGainDB = v }),

	"duckenable":  setDuckerBool(func(d *DuckerConfig, v bool) { d.Enabled = v }),
	"duckrelease": setDuckerNum(func(d *DuckerConfig, v float64) { d.ReleaseMs = v }),
	"duckhold":    setDuckerNum(func(d *DuckerConfig, v float64) { d.HoldMs = math.Trunc(v) }),
}

// Set applies a textual parameter. Numeric values are decimal; booleans are
// true when the value starts with '1'. Unknown keys are ignored. A value
// that does not parse as a finite number returns an error wrapping
// ErrMalformedValue and leaves the parameter unchanged.
//
// Keys: phaserotate, gain, limit, ngthresh, nggain, duckenable,
// duckrelease, duckhold, deessbias, deessgain, hpcutoff, hpstages,
// hfmulti, hfcutoff, lfmulti, lfcutoff.
func (c *Channel) Set(key, value string) error {
	set, ok := params[key]
	if !ok {
		return nil
	}

	return set(c, key, value)
}

// ParamKeys returns the keys accepted by Set in sorted order.
func ParamKeys() []string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}

func parseNumber(key, value string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("agc: %s=%q: %w", key, value, ErrMalformedValue)
	}

	return v, nil
}

func parseFlag(value string) bool {
	return len(value) > 0 && value[0] == '1'
}

func setFilterNum(apply func(*FilterConfig, float64)) paramSetter {
	return func(c *Channel, key, value string) error {
		v, err := parseNumber(key, value)
		if err != nil {
			return err
		}

		cfg := c.filters
		apply(&cfg, v)
		c.SetFilters(cfg)

		return nil
	}
}

func setFilterBool(apply func(*FilterConfig, bool)) paramSetter {
	return func(c *Channel, _, value string) error {
		cfg := c.filters
		apply(&cfg, parseFlag(value))
		c.SetFilters(cfg)

		return nil
	}
}

func setDynamicsNum(apply func(*DynamicsConfig, float64)) paramSetter {
	return func(c *Channel, key, value string) error {
		v, err := parseNumber(key, value)
		if err != nil {
			return err
		}

		cfg := c.dynamics
		apply(&cfg, v)
		c.SetDynamics(cfg)

		return nil
	}
}

func setDuckerNum(apply func(*DuckerConfig, float64)) paramSetter {
	return func(c *Channel, key, value string) error {
		v, err := parseNumber(key, value)
		if err != nil {
			return err
		}

		cfg := c.ducking
		apply(&cfg, v)
		c.SetDucker(cfg)

		return nil
	}
}

func setDuckerBool(apply func(*DuckerConfig, bool)) paramSetter {
	return func(c *Channel, _, value string) error {
		cfg := c.ducking
		apply(&cfg, parseFlag(value))
		c.SetDucker(cfg)

		return nil
	}
}
