// Package agc implements a lookahead microphone gain controller.
//
// A [Channel] processes one audio channel one sample at a time in three
// stages:
//   - Stage 1 filters the input (subsonic highpass cascade, HF and LF detail
//     enhancement, optional phase rotation) and pushes it into the
//     lookahead ring.
//   - Stage 2 runs on the gain authority only. It follows the envelope of
//     the filtered signal with a round-robin quad peak follower, derives a
//     target gain clamped by ratio and limit, applies the noise gate and
//     de-esser, slews the applied gain and updates the ducker and meters.
//   - Stage 3 returns the delayed sample multiplied by the authority gain.
//
// Two channels can be linked with [SetAsPartners]. A channel switched to
// partnered mode defers to its partner for gain computation; the authority
// then derives its gain from the average of both filtered inputs. For a
// linked pair, stage 1 must run on both channels before stage 2 runs on the
// authority. [Pair] wraps that ordering.
//
// Parameters are held in typed groups ([FilterConfig], [DynamicsConfig],
// [DuckerConfig]) and can also be set from textual key/value pairs with
// [Channel.Set].
//
// Processing never allocates, blocks or fails once a channel exists. A
// channel is not safe for concurrent use; parameter changes must happen
// between sample calls.
package agc
