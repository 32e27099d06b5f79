package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"golang.org/x/image/colornames"

	"github.com/decibelcooper/mnvplot"
	"github.com/decibelcooper/mnvplot/rootfile"
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] [efficiency-file] [process-file]

options:
`,
	)
	flag.PrintDefaults()
}

var (
	style  = flag.String("style", "", "YAML style file")
	doProf = flag.Bool("profile", false, "write a CPU profile")
)

const (
	oneDFileName = "MuonPT_manyCandsMC.root"
	twoDFileName = "MuonEfficiencyStudyMC.root"

	effNumName = "Tracker_MuonPTSignal_EfficiencyNumerator"
	effDenName = "Tracker_MuonPTSignal_EfficiencyDenominator"

	mecName = "Tracker_Efficiency_Numerator_2p2h"
)

var (
	bkgNames = []string{
		"Tracker_Efficiency_Numerator_RES",
		"Tracker_Efficiency_Numerator_QE",
		"Tracker_Efficiency_Numerator_DIS",
		"Tracker_Efficiency_Numerator_Other",
	}

	processPalette = mnvplot.Palette{
		color.Black,
		colornames.Blue,
		colornames.Red,
		colornames.Green,
		colornames.Magenta,
	}
)

func main() {
	log.SetPrefix("eff_processes: ")
	log.SetFlags(0)

	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() > 2 {
		printUsage()
		log.Fatal("Invalid arguments")
	}

	oneD, twoD := oneDFileName, twoDFileName
	if flag.NArg() > 0 {
		oneD = flag.Arg(0)
	}
	if flag.NArg() > 1 {
		twoD = flag.Arg(1)
	}

	err := run(oneD, twoD)
	if err != nil {
		log.Print(err)
	}
	os.Exit(mnvplot.ExitCode(err))
}

func run(oneDName, twoDName string) error {
	if *doProf {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	st, err := mnvplot.LoadStyle(*style)
	if err != nil {
		return err
	}

	oneDFile, err := rootfile.Open(oneDName)
	if err != nil {
		return mnvplot.WithCode(err, 1)
	}
	defer oneDFile.Close()
	if err := plotEfficiency(st, oneDFile); err != nil {
		return err
	}

	twoDFile, err := rootfile.Open(twoDName)
	if err != nil {
		return mnvplot.WithCode(err, 2)
	}
	defer twoDFile.Close()
	return plotProcesses(st, twoDFile)
}

func plotEfficiency(st mnvplot.Style, f mnvplot.Store) error {
	num, err := f.Hist1D(effNumName)
	if err != nil {
		return err
	}
	den, err := f.Hist1D(effDenName)
	if err != nil {
		return err
	}
	eff, err := efficiency(num, den)
	if err != nil {
		return err
	}

	p := st.NewPlot()
	p.X.Label.Text = num.XTitle
	p.Y.Label.Text = "efficiency"
	if err := st.AddHists(p, processPalette, eff); err != nil {
		return err
	}
	p.Y.Min = 0
	return st.Save(p, "efficiency.png")
}

// efficiency divides num by den bin by bin. Bins with nothing in the
// denominator come out empty.
func efficiency(num, den *mnvplot.Hist) (*mnvplot.Hist, error) {
	eff, err := mnvplot.Divide(num, den)
	if err != nil {
		return nil, errors.Wrap(err, "could not compute the efficiency")
	}
	eff.Title = "Efficiency"
	return eff.ZeroNonFinite(), nil
}

// processName labels a process histogram by the part of its key after the
// last underscore, unless it carries a title of its own.
func processName(name, title string) string {
	if title != "" && title != name {
		return title
	}
	return name[strings.LastIndex(name, "_")+1:]
}

// projectY collapses a process histogram onto its y axis.
func projectY(h *mnvplot.Hist2D) *mnvplot.Hist {
	nx, _ := h.Dims()
	proj := h.ProjectionY(h.Name+"_py", 0, nx-1)
	proj.Title = processName(h.Name, h.Title)
	return proj
}

func plotProcesses(st mnvplot.Style, f mnvplot.Store) error {
	mec, err := f.Hist2D(mecName)
	if err != nil {
		return err
	}

	var sum *mnvplot.Hist2D
	projs := []*mnvplot.Hist{projectY(mec)}
	for _, name := range bkgNames {
		bkg, err := f.Hist2D(name)
		if err != nil {
			return err
		}
		projs = append(projs, projectY(bkg))
		if sum == nil {
			sum = bkg.Clone()
			continue
		}
		if err := sum.Add(bkg); err != nil {
			return errors.Wrapf(err, "could not add %s to the other processes", name)
		}
	}

	p := st.NewPlot()
	p.X.Label.Text = mec.YTitle
	if err := st.AddHists(p, processPalette, projs...); err != nil {
		return err
	}
	p.Y.Min = 0
	if err := st.Save(p, "processBreakdown.png"); err != nil {
		return err
	}

	others := projectY(sum)
	others.Title = "All Others Stacked"
	p = st.NewPlot()
	p.X.Label.Text = mec.YTitle
	if err := st.AddHists(p, mnvplot.Palette{color.Black, colornames.Red}, projs[0], others); err != nil {
		return err
	}
	p.Y.Min = 0
	return st.Save(p, "processBreakdownStacked.png")
}
