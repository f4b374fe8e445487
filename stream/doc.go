// Package stream adapts a linked AGC pair to beep streamers.
//
// An [AGC] pulls stereo frames from a voice streamer, runs them through an
// [agc.Pair] and optionally mixes in a bed (music or any secondary source)
// scaled by the pair's ducking factor. Once the voice is drained the
// lookahead tail is flushed with silence so no audio is lost.
package stream
