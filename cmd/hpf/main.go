// Command hpf runs the one-pole high-pass stage over WAV files and prints
// filter properties.
//
// Usage:
//
//	hpf process [flags] IN.wav OUT.wav
//	hpf info [flags] CUTOFF...
//
// Examples:
//
//	hpf process --cutoff 80 voice.wav voice-hp.wav
//	hpf process --rounding nearest --log-level debug in.wav out.wav
//	hpf info 20 60 120
//	hpf info --sample-rate 48000 --fft-size 131072 60
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
)

// CLI defines the command-line interface.
type CLI struct {
	LogLevel string `default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)"`

	Process ProcessCmd `cmd:"" help:"Filter the first channel of a 16-bit WAV file into a two-channel WAV file"`
	Info    InfoCmd    `cmd:"" help:"Print coefficient and response of one or more cutoffs"`
}

// Globals are passed to every command's Run method.
type Globals struct {
	Ctx      context.Context
	LogLevel string
}

func main() {
	cli := &CLI{}
	kctx := kong.Parse(cli,
		kong.Name("hpf"),
		kong.Description("One-pole high-pass filter for 16-bit block audio"),
		kong.UsageOnError(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := kctx.Run(&Globals{Ctx: ctx, LogLevel: cli.LogLevel})
	stop()
	kctx.FatalIfErrorf(err)
}
