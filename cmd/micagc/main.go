// Command micagc runs the lookahead microphone AGC on files, on a live
// audio device, or prints the response of its input filters.
//
// Usage:
//
//	micagc [flags] <command> [args]
//
// Examples:
//
//	micagc process voice.wav out.wav
//	micagc process --bed music.wav -s duckenable=1 voice.wav mix.wav
//	micagc live --ducker
//	micagc response -s hpstages=2 -s phaserotate=0
//	micagc --config micagc.json params
package main

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/alecthomas/kong"
	"github.com/cwbudde/algo-agc/dsp/core"
	"github.com/cwbudde/algo-agc/dsp/effects/agc"
	"github.com/sirupsen/logrus"
)

var version = "0.1.0"

// Globals are flags shared by every command.
type Globals struct {
	Config    kong.ConfigFlag   `short:"c" help:"Load flags from a JSON file."`
	LogLevel  string            `help:"Log level." enum:"debug,info,warn,error" default:"info"`
	LogFile   string            `type:"path" help:"Write logs to this file instead of stderr."`
	Lookahead float64           `default:"0.01" help:"Lookahead window in seconds."`
	Set       map[string]string `short:"s" help:"Engine parameter as key=value (repeatable, see 'params')."`
}

// CLI defines the command-line interface.
type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version information."`
	Process  ProcessCmd       `cmd:"" help:"Run a WAV file through the AGC."`
	Live     LiveCmd          `cmd:"" help:"Run the AGC between the default capture and playback devices."`
	Response ResponseCmd      `cmd:"" help:"Print the magnitude response of the input filters."`
	Params   ParamsCmd        `cmd:"" help:"List engine parameters and their defaults."`
}

func main() {
	var cli CLI

	ctx := kong.Parse(&cli,
		kong.Name("micagc"),
		kong.Description("Lookahead microphone gain control"),
		kong.UsageOnError(),
		kong.Configuration(kong.JSON),
		kong.Vars{"version": version},
	)

	closeLog, err := setupLogging(cli.LogLevel, cli.LogFile)
	if err != nil {
		printError(err.Error())
		os.Exit(1)
	}
	defer closeLog()

	if err := ctx.Run(&cli.Globals); err != nil {
		logrus.WithFields(logrus.Fields{
			"command": ctx.Command(),
			"error":   err,
		}).Error("Command failed")
		printError(err.Error())
		os.Exit(1)
	}
}

func setupLogging(level, file string) (func(), error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	logrus.SetLevel(lvl)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if file == "" {
		logrus.SetOutput(os.Stderr)
		return func() {}, nil
	}

	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("log file: %w", err)
	}

	logrus.SetOutput(f)

	return func() { _ = f.Close() }, nil
}

// processorConfig returns the host settings for sampleRate.
func (g *Globals) processorConfig(sampleRate int) core.ProcessorConfig {
	return core.ApplyProcessorOptions(
		core.WithSampleRate(float64(sampleRate)),
		core.WithLookahead(g.Lookahead),
	)
}

// applyParams calls set for every --set pair in key order.
func (g *Globals) applyParams(set func(key, value string) error) error {
	keys := make([]string, 0, len(g.Set))
	for k := range g.Set {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	for _, k := range keys {
		if err := set(k, g.Set[k]); err != nil {
			return err
		}

		logrus.WithFields(logrus.Fields{"key": k, "value": g.Set[k]}).Debug("Applied engine parameter")
	}

	return nil
}

// newPair builds a linked pair with the global lookahead and parameters.
func (g *Globals) newPair(sampleRate int) (*agc.Pair, error) {
	cfg := g.processorConfig(sampleRate)

	pair, err := agc.NewPair(sampleRate, cfg.Lookahead)
	if err != nil {
		return nil, err
	}

	if err := g.applyParams(pair.Set); err != nil {
		pair.Free()
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"sample_rate": sampleRate,
		"lookahead":   cfg.LookaheadSamples(),
	}).Info("AGC pair ready")

	return pair, nil
}

var stdout io.Writer = os.Stdout
