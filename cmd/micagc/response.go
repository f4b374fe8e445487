package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/cwbudde/algo-agc/dsp/effects/agc"
	"github.com/cwbudde/algo-agc/measure/response"
)

var octaves = []float64{20, 31.5, 63, 125, 250, 500, 1000, 2000, 4000, 8000, 16000}

// ResponseCmd prints the stage-1 filter response for the current settings.
type ResponseCmd struct {
	SampleRate int `default:"48000" help:"Sample rate in Hz."`
	Size       int `default:"8192" help:"Analysis length in samples, a power of two."`
}

// Run implements the command.
func (c *ResponseCmd) Run(g *Globals) error {
	ch, err := agc.New(c.SampleRate, g.processorConfig(c.SampleRate).Lookahead)
	if err != nil {
		return fmt.Errorf("response: %w", err)
	}
	defer ch.Free()

	if err := g.applyParams(ch.Set); err != nil {
		return fmt.Errorf("response: %w", err)
	}

	r, err := response.Measure(ch.Prefilter(), float64(c.SampleRate), c.Size)
	if err != nil {
		return fmt.Errorf("response: %w", err)
	}

	fmt.Fprintln(stdout, titleStyle.Render("micagc response"))
	fmt.Fprintln(stdout, renderResponseTable(r))

	return nil
}

func renderResponseTable(r *response.Response) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(mutedColor)).
		Headers("Hz", "dB")

	for _, hz := range octaves {
		if hz >= r.SampleRate/2 {
			break
		}

		t.Row(fmt.Sprintf("%g", hz), fmt.Sprintf("%+.2f", r.AtDB(hz)))
	}

	return t.String()
}
