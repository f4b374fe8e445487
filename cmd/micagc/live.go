package main

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cwbudde/algo-agc/dsp/effects/agc"
	"github.com/cwbudde/algo-agc/internal/meterui"
	"github.com/gen2brain/malgo"
	"github.com/sirupsen/logrus"
)

const (
	liveChannels = 2
	frameBytes   = liveChannels * 4
	paramQueue   = 16
)

// LiveCmd runs the AGC on a duplex audio device.
type LiveCmd struct {
	SampleRate int  `default:"48000" help:"Device sample rate in Hz."`
	Ducker     bool `help:"Start with the ducker enabled."`
	NoUI       bool `name:"no-ui" help:"Run without the meter view until interrupted."`
}

type paramChange struct {
	key   string
	value string
}

// liveEngine is driven by the device callback. Parameter changes are queued
// and applied at the start of the next callback.
type liveEngine struct {
	pair   *agc.Pair
	meter  *meterui.Meter
	muted  atomic.Bool
	params chan paramChange
}

func newLiveEngine(pair *agc.Pair) *liveEngine {
	return &liveEngine{
		pair:   pair,
		meter:  meterui.NewMeter(),
		params: make(chan paramChange, paramQueue),
	}
}

// process handles one block of interleaved stereo float32 frames.
func (e *liveEngine) process(out, in []byte, frameCount uint32) {
	e.applyPending()

	n := min(int(frameCount), len(in)/frameBytes, len(out)/frameBytes)
	muted := e.muted.Load()

	for i := range n {
		off := i * frameBytes
		l := float64(math.Float32frombits(binary.LittleEndian.Uint32(in[off:])))
		r := float64(math.Float32frombits(binary.LittleEndian.Uint32(in[off+4:])))

		l, r = e.pair.ProcessSample(l, r, muted)

		binary.LittleEndian.PutUint32(out[off:], math.Float32bits(float32(l)))
		binary.LittleEndian.PutUint32(out[off+4:], math.Float32bits(float32(r)))
	}

	clear(out[n*frameBytes:])

	red, yellow, green := e.pair.MeterLevels()
	e.meter.Publish(meterui.Levels{
		RedDB:    red,
		YellowDB: yellow,
		GreenDB:  green,
		Duck:     e.pair.DuckingFactor(),
	})
}

func (e *liveEngine) setParam(key, value string) {
	select {
	case e.params <- paramChange{key: key, value: value}:
	default:
		logrus.WithFields(logrus.Fields{"key": key, "value": value}).Warn("Parameter queue full, change dropped")
	}
}

func (e *liveEngine) setDucker(enabled bool) {
	v := "0"
	if enabled {
		v = "1"
	}

	e.setParam("duckenable", v)
}

func (e *liveEngine) applyPending() {
	for {
		select {
		case p := <-e.params:
			// Queued values come from the UI and are always well formed.
			_ = e.pair.Set(p.key, p.value)
		default:
			return
		}
	}
}

// Run implements the command.
func (c *LiveCmd) Run(g *Globals) error {
	pair, err := g.newPair(c.SampleRate)
	if err != nil {
		return fmt.Errorf("live: %w", err)
	}
	defer pair.Free()

	engine := newLiveEngine(pair)
	if c.Ducker {
		engine.setDucker(true)
	}

	mctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, func(message string) {
		logrus.WithField("source", "malgo").Debug(strings.TrimSpace(message))
	})
	if err != nil {
		return fmt.Errorf("live: audio context: %w", err)
	}
	defer func() {
		_ = mctx.Uninit()
		mctx.Free()
	}()

	cfg := malgo.DefaultDeviceConfig(malgo.Duplex)
	cfg.Capture.Format = malgo.FormatF32
	cfg.Capture.Channels = liveChannels
	cfg.Playback.Format = malgo.FormatF32
	cfg.Playback.Channels = liveChannels
	cfg.SampleRate = uint32(c.SampleRate)

	dev, err := malgo.InitDevice(mctx.Context, cfg, malgo.DeviceCallbacks{Data: engine.process})
	if err != nil {
		return fmt.Errorf("live: init device: %w", err)
	}
	defer dev.Uninit()

	if err := dev.Start(); err != nil {
		return fmt.Errorf("live: start device: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"sample_rate": c.SampleRate,
		"lookahead":   pair.Left.BufferLength(),
		"ducker":      c.Ducker,
	}).Info("Live processing started")

	if c.NoUI {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		<-ctx.Done()
	} else {
		model := meterui.NewModel(engine.meter, meterui.Actions{
			Mute:   engine.muted.Store,
			Ducker: engine.setDucker,
		}, c.Ducker)

		if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
			return fmt.Errorf("live: ui: %w", err)
		}
	}

	if err := dev.Stop(); err != nil {
		return fmt.Errorf("live: stop device: %w", err)
	}

	logrus.Info("Live processing stopped")

	return nil
}
