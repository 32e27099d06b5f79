package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/decibelcooper/mnvplot"
	"github.com/decibelcooper/mnvplot/rootfile"
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] <file> <migration-matrix>

Plots the percentage of events passing a reconstructed cut that also pass
the same cut on the true quantity, for every bin edge of the truth axis.

options:
`,
	)
	flag.PrintDefaults()
}

var (
	style  = flag.String("style", "", "YAML style file")
	doProf = flag.Bool("profile", false, "write a CPU profile")
)

func main() {
	log.SetPrefix("smearing_fraction: ")
	log.SetFlags(0)

	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() != 2 {
		printUsage()
		log.Fatal("Invalid arguments")
	}

	err := run(flag.Arg(0), flag.Arg(1))
	if err != nil {
		log.Print(err)
	}
	os.Exit(mnvplot.ExitCode(err))
}

// lookupCode attaches the exit code for a failed matrix lookup.
func lookupCode(err error) error {
	var missing *mnvplot.MissingError
	var wrongKind *mnvplot.TypeError
	switch {
	case errors.As(err, &missing):
		return mnvplot.WithCode(err, 2)
	case errors.As(err, &wrongKind):
		return mnvplot.WithCode(errors.Wrap(err, "cannot project it"), 3)
	}
	return err
}

// yRange zooms in on the percentages, never going above 100%.
func yRange(points []mnvplot.SmearPoint) (min, max float64) {
	min, max = 100, 0
	for _, pt := range points {
		min = math.Min(min, pt.Percent)
		max = math.Max(max, pt.Percent)
	}
	return min - 5, math.Min(max+5, 100)
}

func run(fname, histName string) error {
	if *doProf {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	st, err := mnvplot.LoadStyle(*style)
	if err != nil {
		return err
	}

	f, err := rootfile.Open(fname)
	if err != nil {
		return err
	}
	defer f.Close()

	m, err := f.Hist2D(histName)
	if err != nil {
		return lookupCode(err)
	}

	xIsTrue, found := mnvplot.TruthOnX(m.XTitle, m.YTitle)
	if !found {
		log.Printf("failed to find \"True\" in either axis title of %s, assuming the x axis is the true quantity", histName)
	}
	truthTitle := m.XTitle
	if !xIsTrue {
		truthTitle = m.YTitle
	}

	points, err := mnvplot.SmearingFractions(m, xIsTrue)
	if err != nil {
		return err
	}
	if len(points) == 0 {
		return errors.Errorf("%s in %s has no entries", histName, fname)
	}

	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i].X, xys[i].Y = pt.Cut, pt.Percent
	}
	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return errors.Wrap(err, "could not create scatter")
	}
	sc.GlyphStyle.Shape = draw.CircleGlyph{}
	sc.GlyphStyle.Radius = vg.Points(3)

	st.Title = "Smearing Fraction Study"
	p := st.NewPlot()
	p.Add(sc)
	p.X.Label.Text = mnvplot.CutLabel(truthTitle)
	p.Y.Label.Text = "% of Reco Events that Pass Reco and True Cuts"
	p.Y.Min, p.Y.Max = yRange(points)

	return st.Save(p, histName+"_smearingFractionStudy.png")
}
