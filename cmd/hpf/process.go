package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-hpf/dsp/buffer"
	"github.com/cwbudde/algo-hpf/dsp/core"
	"github.com/cwbudde/algo-hpf/dsp/hpf"
	"github.com/cwbudde/algo-hpf/dsp/pcm"
	"github.com/cwbudde/algo-hpf/dsp/stream"
	"github.com/cwbudde/algo-hpf/stats/level"
)

// minPoolBlocks covers one queued input, one input in flight and one output.
const minPoolBlocks = 3

// ProcessCmd filters a WAV file.
type ProcessCmd struct {
	Cutoff     float64 `default:"60" help:"Cutoff frequency in Hz (values below 1 are raised to 1)"`
	Rounding   string  `default:"truncate" enum:"truncate,nearest,floor" help:"Float to int16 rounding (truncate, nearest, floor)"`
	PoolBlocks int     `default:"8" help:"Number of blocks in the pool"`
	BlockSize  int     `default:"128" help:"Samples per block"`
	Input      string  `arg:"" type:"existingfile" help:"16-bit PCM WAV input"`
	Output     string  `arg:"" type:"path" help:"Two-channel WAV output"`
}

// Run implements the process command.
func (c *ProcessCmd) Run(g *Globals) error {
	logger, err := newLogger(g.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if err := c.run(g.Ctx, logger, os.Stdout); err != nil {
		logger.Error("processing failed", zap.String("input", c.Input), zap.Error(err))
		return err
	}

	return nil
}

func (c *ProcessCmd) run(ctx context.Context, logger *zap.Logger, w io.Writer) error {
	if c.PoolBlocks < minPoolBlocks {
		return fmt.Errorf("pool-blocks must be at least %d, got %d", minPoolBlocks, c.PoolBlocks)
	}

	rounding, err := pcm.ParseRounding(c.Rounding)
	if err != nil {
		return err
	}

	signal, sampleRate, err := readMono(c.Input)
	if err != nil {
		return err
	}

	logger.Info("input loaded",
		zap.String("path", c.Input),
		zap.Int("samples", len(signal)),
		zap.Int("sample_rate", sampleRate),
	)

	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(float64(sampleRate)),
		core.WithBlockSize(c.BlockSize),
	)

	res, err := filterSignal(ctx, logger, signal, cfg, c.Cutoff, rounding, c.PoolBlocks)
	if err != nil {
		return err
	}

	if err := writeStereo(c.Output, sampleRate, res.left, res.right); err != nil {
		return err
	}

	logger.Info("output written", zap.String("path", c.Output))

	in, out := level.NewMeter(), level.NewMeter()
	in.Update(signal)
	out.Update(res.left)

	return printSummary(w, res, in.Result(), out.Result())
}

type filterResult struct {
	left, right []int16
	cutoffHz    float64
	coefficient float64
	counters    hpf.Counters
	dropped     uint64
}

// filterSignal runs signal through feeder -> queue -> processor -> fanout
// into two collectors and trims the zero-padded tail.
func filterSignal(
	ctx context.Context,
	logger *zap.Logger,
	signal []int16,
	cfg core.ProcessorConfig,
	cutoffHz float64,
	rounding pcm.Rounding,
	poolBlocks int,
) (filterResult, error) {
	pool, err := buffer.NewPool(poolBlocks, cfg.BlockSize)
	if err != nil {
		return filterResult{}, err
	}

	queue, err := stream.NewQueue(poolBlocks-2, pool)
	if err != nil {
		return filterResult{}, err
	}

	proc, err := hpf.New(queue, pool,
		hpf.WithCutoffHz(cutoffHz),
		hpf.WithSampleRate(cfg.SampleRate),
		hpf.WithRounding(rounding),
	)
	if err != nil {
		return filterResult{}, err
	}

	logger.Debug("filter configured",
		zap.Float64("cutoff_hz", proc.CutoffHz()),
		zap.Float64("sample_rate", proc.SampleRate()),
		zap.Int("block_size", pool.BlockSize()),
		zap.Float64("coefficient", proc.Coefficient()),
		zap.Stringer("rounding", proc.Rounding()),
	)

	left, right := stream.NewCollector(pool), stream.NewCollector(pool)

	fan, err := stream.NewFanout(pool, left, right)
	if err != nil {
		return filterResult{}, err
	}

	runner, err := stream.NewRunner(proc, fan, stream.WithLogger(logger), stream.WithInput(queue))
	if err != nil {
		return filterResult{}, err
	}

	feeder := stream.NewSliceFeeder(signal, pool, queue)
	if err := runner.Run(ctx, feeder.Feed); err != nil {
		return filterResult{}, err
	}

	if left.Blocks() != right.Blocks() {
		return filterResult{}, errors.New("outputs received different block counts")
	}

	counters := proc.Counters()
	logger.Debug("pipeline counters",
		zap.Uint64("processed", counters.Processed),
		zap.Uint64("missing_input", counters.MissingInput),
		zap.Uint64("alloc_failed", counters.AllocFailed),
		zap.Uint64("clipped", counters.Clipped),
		zap.Uint64("dropped", queue.Dropped()),
		zap.Uint64("fanout_missed", fan.Missed()),
		zap.Uint64("feeder_stalls", feeder.Stalled()),
		zap.Int("pool_high_water", pool.MaxInUse()),
	)

	n := min(len(signal), len(left.Samples()))

	return filterResult{
		left:        left.Samples()[:n],
		right:       right.Samples()[:n],
		cutoffHz:    proc.CutoffHz(),
		coefficient: proc.Coefficient(),
		counters:    counters,
		dropped:     queue.Dropped(),
	}, nil
}

func printSummary(w io.Writer, res filterResult, in, out level.Stats) error {
	if _, err := fmt.Fprintf(w, "cutoff %.2f Hz, coefficient %.6f, %d blocks, %d samples clipped\n\n",
		res.cutoffHz, res.coefficient, res.counters.Processed, res.counters.Clipped); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Signal\tSamples\tDC\tDC [dBFS]\tRMS [dBFS]\tPeak [dBFS]\tFull scale\n")
	fmt.Fprintf(tw, "------\t-------\t--\t---------\t----------\t-----------\t----------\n")

	for _, row := range []struct {
		name string
		s    level.Stats
	}{{"input", in}, {"output", out}} {
		fmt.Fprintf(tw, "%s\t%d\t%.2f\t%.2f\t%.2f\t%.2f\t%d\n",
			row.name, row.s.Length, row.s.DC, row.s.DC_dB, row.s.RMS_dB, row.s.Peak_dB, row.s.FullScale)
	}

	return tw.Flush()
}
