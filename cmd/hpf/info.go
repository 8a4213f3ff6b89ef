package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-hpf/dsp/filter/onepole"
	"github.com/cwbudde/algo-hpf/measure/response"
)

// Reference frequencies for the attenuation columns.
var infoFrequencies = []float64{20, 50, 100, 1000}

// halfPowerDB is the -3 dB level, 20*log10(1/sqrt(2)).
var halfPowerDB = 20 * math.Log10(math.Sqrt2/2)

// InfoCmd prints filter properties.
type InfoCmd struct {
	SampleRate float64   `default:"44100" help:"Sample rate in Hz (values below 1000 fall back to 44100)"`
	FFTSize    int       `name:"fft-size" default:"65536" help:"FFT length for the measured response"`
	Cutoffs    []float64 `arg:"" name:"cutoff" help:"Cutoff frequencies in Hz"`
}

// Run implements the info command.
func (c *InfoCmd) Run(_ *Globals) error {
	return c.print(os.Stdout)
}

func (c *InfoCmd) print(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := "Cutoff [Hz]\tRate [Hz]\tCoefficient\t-3 dB [Hz]\tMeasured [Hz]"
	rule := "-----------\t---------\t-----------\t----------\t-------------"

	for _, f := range infoFrequencies {
		label := fmt.Sprintf("%g Hz [dB]", f)
		header += "\t" + label
		rule += "\t" + strings.Repeat("-", len(label))
	}

	if _, err := fmt.Fprintln(tw, header); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	if _, err := fmt.Fprintln(tw, rule); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for _, cutoff := range c.Cutoffs {
		f := onepole.New(cutoff, c.SampleRate)
		ir := response.ImpulseResponse(f, c.FFTSize)

		r, err := response.Measure(ir, f.SampleRate(), c.FFTSize)
		if err != nil {
			return err
		}

		row := fmt.Sprintf("%.2f\t%.0f\t%.6f\t%.3f\t%.3f",
			f.CutoffHz(), f.SampleRate(), f.Coefficient(), f.CutoffFrequency(), r.CutoffHz(halfPowerDB))

		for _, freq := range infoFrequencies {
			row += fmt.Sprintf("\t%.2f", 20*math.Log10(f.Response(freq)))
		}

		if _, err := fmt.Fprintln(tw, row); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}

	return tw.Flush()
}
