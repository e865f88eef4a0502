// Command curvestat analyzes tables of frequency-response curves.
//
// Usage:
//
//	curvestat -op <operation> [flags] [file]
//
// The input table is delimited text read from the file argument or
// stdin. The header row lists frequencies in Hz; every following row
// holds a curve name and its amplitudes in dB. Empty cells mark
// frequencies a curve does not define.
//
// Examples:
//
//	curvestat -op stats curves.csv
//	curvestat -op outliers -fence 1.5 curves.csv
//	curvestat -op bestfit -ref "unit 3" -ppo 48 curves.csv
//	curvestat -op bestfit -ref "unit 3" -band 2000:5000:3 curves.csv
//	curvestat -op smooth -type gaussian -bandwidth 0.1667 -ppo 48 curves.csv
//	curvestat -op interpolate -ppo 96 curves.csv
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-curve/curve"
	"github.com/cwbudde/algo-curve/curve/resample"
	"github.com/cwbudde/algo-curve/curve/smooth"
	"github.com/cwbudde/algo-curve/stats/bestfit"
	"github.com/cwbudde/algo-curve/stats/ensemble"
)

var smoothTypes = map[string]smooth.Type{
	"butterworth8": smooth.Butterworth8,
	"butterworth4": smooth.Butterworth4,
	"rectangular":  smooth.Rectangular,
	"gaussian":     smooth.Gaussian,
}

func main() {
	op := flag.String("op", "stats", "operation: stats, outliers, bestfit, smooth, interpolate")
	sep := flag.String("sep", ",", "field separator of the input table")
	fence := flag.Float64("fence", 1.5, "IQR fence multiplier for -op outliers")
	ppo := flag.Int("ppo", 48, "points per octave for resampling-based operations")
	pin := flag.Float64("pin", resample.DefaultPinnedHz, "pinned grid frequency in Hz")
	bandwidth := flag.Float64("bandwidth", 1.0/6, "smoothing bandwidth in octaves")
	typeName := flag.String("type", "butterworth8", "smoothing algorithm: butterworth8, butterworth4, rectangular, gaussian")
	ref := flag.String("ref", "", "reference curve name for -op bestfit (default: first row)")
	bandSpec := flag.String("band", "", "critical band start:end:weight for -op bestfit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: curvestat -op <operation> [flags] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Analyzes a delimited table of frequency-response curves.\n")
		fmt.Fprintf(os.Stderr, "Header row: frequencies in Hz; data rows: name plus amplitudes in dB.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  curvestat -op stats curves.csv\n")
		fmt.Fprintf(os.Stderr, "  curvestat -op outliers -fence 1.5 curves.csv\n")
		fmt.Fprintf(os.Stderr, "  curvestat -op bestfit -ref \"unit 3\" -band 2000:5000:3 curves.csv\n")
	}
	flag.Parse()

	in := os.Stdin
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			fatalf("%v", err)
		}
		defer f.Close()
		in = f
	}

	comma, err := separatorRune(*sep)
	if err != nil {
		fatalf("%v", err)
	}
	curves, err := readTable(in, comma)
	if err != nil {
		fatalf("%v", err)
	}
	if len(curves) == 0 {
		fatalf("no curves in input")
	}

	switch *op {
	case "stats":
		err = runStats(curves)
	case "outliers":
		err = runOutliers(curves, *fence)
	case "bestfit":
		err = runBestFit(curves, *ref, *ppo, *bandSpec)
	case "smooth":
		typ, ok := smoothTypes[strings.ToLower(*typeName)]
		if !ok {
			fatalf("unknown smoothing type %q", *typeName)
		}
		err = runSmooth(curves, typ, smooth.Params{Bandwidth: *bandwidth, Resolution: *ppo, PinnedHz: *pin})
	case "interpolate":
		err = runInterpolate(curves, *ppo, *pin)
	default:
		fatalf("unknown operation %q", *op)
	}
	if err != nil {
		fatalf("%v", err)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "curvestat: "+format+"\n", args...)
	os.Exit(1)
}

func separatorRune(s string) (rune, error) {
	switch s {
	case "\\t", "tab":
		return '\t', nil
	}
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("separator must be a single character, got %q", s)
	}
	return runes[0], nil
}

type namedCurve struct {
	name string
	c    *curve.Curve
}

// readTable parses the delimited table: header row of frequencies
// (first cell ignored), then one row per curve with its name in the
// first cell. Empty cells are absent points.
func readTable(r io.Reader, comma rune) ([]namedCurve, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("need a header row and at least one curve row")
	}

	header := records[0]
	if len(header) < 2 {
		return nil, fmt.Errorf("header row has no frequency columns")
	}
	freqs := make([]float64, len(header)-1)
	for i, cell := range header[1:] {
		f, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		if err != nil {
			return nil, fmt.Errorf("header column %d: %w", i+2, err)
		}
		freqs[i] = f
	}

	var curves []namedCurve
	for row, rec := range records[1:] {
		if len(rec) == 0 {
			continue
		}
		name := strings.TrimSpace(rec[0])
		if name == "" {
			name = fmt.Sprintf("row %d", row+2)
		}

		var cf, ca []float64
		for i, cell := range rec[1:] {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			if i >= len(freqs) {
				return nil, fmt.Errorf("row %d: more values than frequency columns", row+2)
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d, column %d: %w", row+2, i+2, err)
			}
			cf = append(cf, freqs[i])
			ca = append(ca, v)
		}

		c, err := curve.New(cf, ca)
		if err != nil {
			return nil, fmt.Errorf("row %d (%s): %w", row+2, name, err)
		}
		c.SetNameBase(name)
		curves = append(curves, namedCurve{name: name, c: c})
	}
	return curves, nil
}

func byName(curves []namedCurve) map[string]*curve.Curve {
	m := make(map[string]*curve.Curve, len(curves))
	for _, nc := range curves {
		m[nc.name] = nc.c
	}
	return m
}

func runStats(curves []namedCurve) error {
	mean, median, err := ensemble.MeanMedian(byName(curves))
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Frequency [Hz]\tMean [dB]\tMedian [dB]\n")
	freqs, meanAmps := mean.XY()
	medianAmps := median.Amplitudes()
	for i, f := range freqs {
		fmt.Fprintf(tw, "%.2f\t%.3f\t%.3f\n", f, meanAmps[i], medianAmps[i])
	}
	return tw.Flush()
}

func runOutliers(curves []namedCurve, fence float64) error {
	res, err := ensemble.IQR(byName(curves), fence)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Frequency [Hz]\tLower fence [dB]\tMedian [dB]\tUpper fence [dB]\n")
	freqs, lower := res.Lower.XY()
	med := res.Median.Amplitudes()
	upper := res.Upper.Amplitudes()
	for i, f := range freqs {
		fmt.Fprintf(tw, "%.2f\t%.3f\t%.3f\t%.3f\n", f, lower[i], med[i], upper[i])
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(res.Outliers) == 0 {
		fmt.Println("\nNo outliers.")
		return nil
	}
	fmt.Printf("\nOutliers: %s\n", strings.Join(res.Outliers, ", "))
	return nil
}

func runBestFit(curves []namedCurve, refName string, ppo int, bandSpec string) error {
	if refName == "" {
		refName = curves[0].name
	}
	all := byName(curves)
	ref, ok := all[refName]
	if !ok {
		return fmt.Errorf("reference curve %q not found", refName)
	}

	band, err := parseBand(bandSpec)
	if err != nil {
		return err
	}

	rep, err := bestfit.Rank(ref, all, ppo, band)
	if err != nil {
		return err
	}
	if rep.BandEmpty {
		fmt.Fprintln(os.Stderr, "warning: no grid points inside the critical band; weighting skipped")
	}

	fmt.Printf("Reference: %s (%d points)\n\n", rep.RefLabel, rep.Points)
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Rank\tCurve\tStd dev [dB]\n")
	for i, e := range rep.Ranking {
		fmt.Fprintf(tw, "%d\t%s\t%.4f\n", i+1, e.ID, e.StdDev)
	}
	return tw.Flush()
}

// parseBand parses "start:end:weight", e.g. "2000:5000:3".
func parseBand(spec string) (*bestfit.Band, error) {
	if spec == "" {
		return nil, nil
	}
	parts := strings.Split(spec, ":")
	if len(parts) != 3 {
		return nil, fmt.Errorf("band must be start:end:weight, got %q", spec)
	}
	vals := make([]float64, 3)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("band component %d: %w", i+1, err)
		}
		vals[i] = v
	}
	return &bestfit.Band{StartHz: vals[0], EndHz: vals[1], Weight: vals[2]}, nil
}

func runSmooth(curves []namedCurve, typ smooth.Type, p smooth.Params) error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Curve\tFrequency [Hz]\tAmplitude [dB]\n")
	for _, nc := range curves {
		out, err := smooth.Apply(nc.c, typ, p)
		if err != nil {
			return fmt.Errorf("%s: %w", nc.name, err)
		}
		out.AddNameSuffix(fmt.Sprintf("smoothed 1/%.0f", 1/p.Bandwidth))
		writeLong(tw, out)
	}
	return tw.Flush()
}

func runInterpolate(curves []namedCurve, ppo int, pin float64) error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Curve\tFrequency [Hz]\tAmplitude [dB]\n")
	for _, nc := range curves {
		out, err := resample.Apply(nc.c, ppo, pin)
		if err != nil {
			return fmt.Errorf("%s: %w", nc.name, err)
		}
		out.AddNameSuffix(fmt.Sprintf("interpolated to %d ppo", ppo))
		writeLong(tw, out)
	}
	return tw.Flush()
}

func writeLong(w io.Writer, c *curve.Curve) {
	freqs, amps := c.XY()
	for i, f := range freqs {
		fmt.Fprintf(w, "%s\t%.2f\t%.3f\n", c.FullName(), f, amps[i])
	}
}
