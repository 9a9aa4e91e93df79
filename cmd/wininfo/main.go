// Command wininfo prints spectral properties of DSP window functions.
//
// Usage:
//
//	wininfo [flags] [window-name ...]
//
// Without arguments it prints info for all known window types.
//
// Examples:
//
//	wininfo hann
//	wininfo -size 1024 blackman welch
//	wininfo -size 16 -coeffs flattop
//	wininfo -buffered hann
//	wininfo -list
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/cwbudde/algo-window/dsp/window"
)

func main() {
	size := flag.Int("size", 1024, "window length in samples")
	list := flag.Bool("list", false, "list available window names")
	coeffs := flag.Bool("coeffs", false, "print the coefficient sequence instead of the analysis table")
	buffered := flag.Bool("buffered", false, "route coefficients through the buffered cache decorator")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: wininfo [flags] [window-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints spectral properties of DSP window functions.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints info for all windows.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  wininfo hann blackman\n")
		fmt.Fprintf(os.Stderr, "  wininfo -size 16 -coeffs welch\n")
		fmt.Fprintf(os.Stderr, "  wininfo -buffered hann\n")
		fmt.Fprintf(os.Stderr, "  wininfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	types := resolveTypes(flag.Args())
	if len(types) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching window types\n")
		os.Exit(1)
	}

	wins := make([]window.Function, 0, len(types))
	for _, t := range types {
		var w window.Function = window.New(t)
		if *buffered {
			w = window.NewBuffered(w)
		}
		wins = append(wins, w)
	}

	if *coeffs {
		printCoefficients(wins, *size)
		return
	}

	printAnalysis(wins, *size)
}

func printList() {
	names := make([]string, 0, len(window.Types()))
	for _, t := range window.Types() {
		names = append(names, window.Info(t).Name)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func resolveTypes(names []string) []window.Type {
	if len(names) == 0 {
		return window.Types()
	}

	var result []window.Type
	for _, name := range names {
		t, err := window.TypeByName(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v (use -list to see available)\n", err)
			continue
		}
		result = append(result, t)
	}
	return result
}

func printCoefficients(wins []window.Function, size int) {
	for _, w := range wins {
		if err := w.Configure(size); err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", w.Name(), err)
			os.Exit(1)
		}

		fmt.Printf("%s (%d samples):\n", w.Name(), size)
		for i := 0; i < w.Length(); i++ {
			fmt.Printf("  [%d] %.8f\n", i, w.Coefficient(i))
		}
	}
}

func printAnalysis(wins []window.Function, size int) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Window\tSize\tCoherent Gain\tENBW [bins]\tBW 3dB [bins]\tSidelobe [dB]\t1st Min [bins]\tScallop [dB]\n"); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "------\t----\t-------------\t----------\t-------------\t-------------\t--------------\t-----------\n"); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for _, w := range wins {
		if err := w.Configure(size); err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", w.Name(), err)
			os.Exit(1)
		}

		coeffs := make([]float64, w.Length())
		for i := range coeffs {
			coeffs[i] = w.Coefficient(i)
		}
		a := window.Analyze(coeffs)

		if _, err := fmt.Fprintf(tw, "%s\t%d\t%.6f\t%.4f\t%.4f\t%.2f\t%.4f\t%.4f\n",
			w.Name(),
			size,
			a.CoherentGain,
			a.ENBW,
			a.Bandwidth3dB,
			a.HighestSidelobedB,
			a.FirstMinimumBins,
			a.ScallopLossdB,
		); err != nil {
			fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
