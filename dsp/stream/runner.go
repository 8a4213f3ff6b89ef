package stream

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// ErrStalled is returned by Run when neither the feeder nor the stage makes
// progress for too many consecutive cycles.
var ErrStalled = errors.New("stream: pipeline stalled")

const defaultMaxIdleCycles = 1024

// RunStats summarizes the cycles driven by a Runner.
type RunStats struct {
	Cycles   uint64
	Produced uint64
	Skipped  uint64
	Elapsed  time.Duration
}

// Runner is the block-rate scheduler: each Tick runs one stage cycle and
// forwards the produced block to the sink.
type Runner struct {
	stage         Stage
	sink          Sink
	logger        *zap.Logger
	input         Drainer
	maxIdleCycles int
	stats         RunStats
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) RunnerOption {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithInput names the stage's input queue. Run keeps cycling while it
// holds blocks and clears it when the run is cancelled or stalls. Without
// it, blocks left queued after Run are the caller's to drain.
func WithInput(input Drainer) RunnerOption {
	return func(r *Runner) {
		if input != nil {
			r.input = input
		}
	}
}

// WithMaxIdleCycles sets how many consecutive unproductive cycles Run
// tolerates while the feeder still has data.
func WithMaxIdleCycles(n int) RunnerOption {
	return func(r *Runner) {
		if n > 0 {
			r.maxIdleCycles = n
		}
	}
}

// NewRunner returns a Runner driving stage into sink.
func NewRunner(stage Stage, sink Sink, opts ...RunnerOption) (*Runner, error) {
	if stage == nil {
		return nil, errors.New("stream: runner stage is nil")
	}

	if sink == nil {
		return nil, errors.New("stream: runner sink is nil")
	}

	r := &Runner{
		stage:         stage,
		sink:          sink,
		logger:        zap.NewNop(),
		maxIdleCycles: defaultMaxIdleCycles,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}

	return r, nil
}

// Tick runs one cycle and reports whether a block was forwarded.
func (r *Runner) Tick() bool {
	r.stats.Cycles++

	out, ok := r.stage.Process()
	if !ok {
		r.stats.Skipped++
		return false
	}

	r.stats.Produced++
	r.sink.Transmit(out)

	return true
}

// Run alternates feed and Tick until feed reports no more data, the input
// set by WithInput is empty and a cycle produces nothing. feed may be nil
// when the stage's source is filled elsewhere. The context is checked
// between cycles only.
func (r *Runner) Run(ctx context.Context, feed func() bool) error {
	start := time.Now()
	before := r.stats

	r.logger.Debug("pipeline run started", zap.Int("max_idle_cycles", r.maxIdleCycles))

	idle := 0

	for {
		if err := ctx.Err(); err != nil {
			r.finish(start, before)
			r.logger.Warn("pipeline run cancelled", zap.Error(err), zap.Int("discarded", r.drain()))

			return fmt.Errorf("stream: run: %w", err)
		}

		more := feed != nil && feed()

		if r.Tick() {
			idle = 0
			continue
		}

		if !more && r.pending() == 0 {
			break
		}

		idle++
		if idle >= r.maxIdleCycles {
			r.finish(start, before)
			r.logger.Error("pipeline stalled", zap.Int("idle_cycles", idle), zap.Int("discarded", r.drain()))

			return ErrStalled
		}
	}

	run := r.finish(start, before)
	r.logger.Info("pipeline run finished",
		zap.Uint64("cycles", run.Cycles),
		zap.Uint64("produced", run.Produced),
		zap.Uint64("skipped", run.Skipped),
		zap.Duration("elapsed", run.Elapsed),
	)

	return nil
}

// Stats returns the totals over every Tick so far.
func (r *Runner) Stats() RunStats { return r.stats }

func (r *Runner) pending() int {
	if r.input == nil {
		return 0
	}

	return r.input.Len()
}

// drain releases whatever is left in the input and returns the count.
func (r *Runner) drain() int {
	n := r.pending()
	if n > 0 {
		r.input.Clear()
	}

	return n
}

// finish records elapsed time and returns the stats of the current run.
func (r *Runner) finish(start time.Time, before RunStats) RunStats {
	elapsed := time.Since(start)
	r.stats.Elapsed += elapsed

	return RunStats{
		Cycles:   r.stats.Cycles - before.Cycles,
		Produced: r.stats.Produced - before.Produced,
		Skipped:  r.stats.Skipped - before.Skipped,
		Elapsed:  elapsed,
	}
}
