// Package meterui renders live AGC meters in the terminal with Bubbletea.
package meterui

import (
	"math"
	"sync/atomic"
)

// Levels is one meter reading.
type Levels struct {
	// RedDB, YellowDB and GreenDB are attenuation readings in dB; zero means
	// no reduction.
	RedDB    float64
	YellowDB float64
	GreenDB  float64
	// Duck is the ducking factor in [0, 1].
	Duck float64
}

// Meter hands Levels from the audio callback to the UI without locking.
// Each field is published independently, so a reader may see values from
// adjacent blocks.
type Meter struct {
	red    atomic.Uint64
	yellow atomic.Uint64
	green  atomic.Uint64
	duck   atomic.Uint64
}

// NewMeter returns a meter showing no reduction and no ducking.
func NewMeter() *Meter {
	m := &Meter{}
	m.Publish(Levels{Duck: 1})

	return m
}

// Publish stores l.
func (m *Meter) Publish(l Levels) {
	m.red.Store(math.Float64bits(l.RedDB))
	m.yellow.Store(math.Float64bits(l.YellowDB))
	m.green.Store(math.Float64bits(l.GreenDB))
	m.duck.Store(math.Float64bits(l.Duck))
}

// Load returns the latest published levels.
func (m *Meter) Load() Levels {
	return Levels{
		RedDB:    math.Float64frombits(m.red.Load()),
		YellowDB: math.Float64frombits(m.yellow.Load()),
		GreenDB:  math.Float64frombits(m.green.Load()),
		Duck:     math.Float64frombits(m.duck.Load()),
	}
}
