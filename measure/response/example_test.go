package response_test

import (
	"fmt"

	"github.com/cwbudde/algo-agc/dsp/effects/agc"
	"github.com/cwbudde/algo-agc/measure/response"
)

func ExampleMeasure() {
	cfg := agc.DefaultFilterConfig()
	cfg.HFDetail = 0
	cfg.LFDetail = 0
	cfg.PhaseRotate = false

	r, err := response.Measure(agc.NewPrefilter(48000, cfg), 48000, 8192)
	if err != nil {
		panic(err)
	}

	fmt.Printf("20 Hz below -40 dB: %v\n", r.AtDB(20) < -40)
	// Output:
	// 20 Hz below -40 dB: true
}
