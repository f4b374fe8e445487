package main

import (
	"fmt"
	"os"
	"time"

	"github.com/cwbudde/algo-agc/dsp/core"
	"github.com/cwbudde/algo-agc/stream"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/sirupsen/logrus"
)

// resampleQuality is passed to beep.Resample when the bed rate differs.
const resampleQuality = 4

// ProcessCmd renders a WAV file through the AGC.
type ProcessCmd struct {
	Input     string `arg:"" type:"existingfile" help:"Input WAV file."`
	Output    string `arg:"" type:"path" help:"Output WAV file."`
	Bed       string `type:"existingfile" help:"WAV file mixed under the voice and ducked by it."`
	Mute      bool   `help:"Treat the microphone as muted so the ducker stays released."`
	BlockSize int    `default:"512" help:"Frames processed per block."`
}

// Run implements the command.
func (c *ProcessCmd) Run(g *Globals) error {
	start := time.Now()

	in, err := os.Open(c.Input)
	if err != nil {
		return fmt.Errorf("process: open %s: %w", c.Input, err)
	}

	voice, format, err := wav.Decode(in)
	if err != nil {
		_ = in.Close()
		return fmt.Errorf("process: decode %s: %w", c.Input, err)
	}
	defer voice.Close()

	opts := []stream.Option{
		stream.WithLookahead(g.Lookahead),
		stream.WithBlockSize(c.BlockSize),
		stream.WithParams(g.Set),
	}

	if c.Bed != "" {
		bed, closeBed, err := openBed(c.Bed, format.SampleRate)
		if err != nil {
			return err
		}
		defer closeBed()

		opts = append(opts, stream.WithBed(bed))
	}

	if c.Mute {
		opts = append(opts, stream.WithMute(func() bool { return true }))
	}

	a, err := stream.New(voice, format.SampleRate, opts...)
	if err != nil {
		return fmt.Errorf("process: %w", err)
	}
	defer a.Close()

	out, err := os.Create(c.Output)
	if err != nil {
		return fmt.Errorf("process: create %s: %w", c.Output, err)
	}
	defer out.Close()

	if err := wav.Encode(out, a, format); err != nil {
		return fmt.Errorf("process: encode %s: %w", c.Output, err)
	}

	if err := a.Err(); err != nil {
		return fmt.Errorf("process: %w", err)
	}

	st := a.Stats()
	elapsed := time.Since(start)

	logrus.WithFields(logrus.Fields{
		"input":    c.Input,
		"output":   c.Output,
		"frames":   st.Frames,
		"peak_in":  st.PeakIn,
		"peak_out": st.PeakOut,
		"elapsed":  elapsed,
	}).Info("Processed file")

	printSummary(stdout, "micagc process", [][2]string{
		{"Input:", c.Input},
		{"Output:", c.Output},
		{"Duration:", format.SampleRate.D(st.Frames).Round(time.Millisecond).String()},
		{"Peak in:", fmt.Sprintf("%.1f dBFS", core.LinearToDB(st.PeakIn))},
		{"Peak out:", fmt.Sprintf("%.1f dBFS", core.LinearToDB(st.PeakOut))},
		{"Max reduction:", fmt.Sprintf("%.1f dB", st.MaxReductionDB)},
		{"Min duck:", fmt.Sprintf("%.2f", st.MinDuck)},
	})

	return nil
}

func openBed(path string, rate beep.SampleRate) (beep.Streamer, func(), error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("process: open bed %s: %w", path, err)
	}

	bed, format, err := wav.Decode(f)
	if err != nil {
		_ = f.Close()
		return nil, nil, fmt.Errorf("process: decode bed %s: %w", path, err)
	}

	closeBed := func() { _ = bed.Close() }

	if format.SampleRate == rate {
		return bed, closeBed, nil
	}

	logrus.WithFields(logrus.Fields{
		"bed_rate":   format.SampleRate,
		"voice_rate": rate,
	}).Info("Resampling bed")

	return beep.Resample(resampleQuality, format.SampleRate, rate, bed), closeBed, nil
}
