package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"gonum.org/v1/plot/vg"

	"github.com/decibelcooper/mnvplot"
	"github.com/decibelcooper/mnvplot/rootfile"
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] <file>

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
	signalName  = "Neutron_Multiplicity_SelectedMCEvents"
	bkgBaseName = "Neutron_Multiplicity_Background_"
)

var errorGroups = mnvplot.ErrorGroups{
	"CCQE Model":      {"genie_CCQEPauliSupViaKF", "genie_NormCCQE", "genie_VecFFCCQEshape", "genie_MaCCQEshape"},
	"Nucleon FSI":     {"genie_FrAbs_N", "genie_FrCEx_N", "genie_FrElas_N", "genie_FrInel_N", "genie_MFP_N"},
	"Pion FSI":        {"genie_FrAbs_pi", "genie_FrCEx_pi", "genie_FrElas_pi", "genie_FrPiProd_pi", "genie_MFP_pi"},
	"genie_NormCCRES": {"genie_NormCCRES"},
	"Flux":            {"Flux"},
	"RPA_LowQ2":       {"RPA_LowQ2"},
	"2p2h":            {"2p2h"},
}

func main() {
	log.SetPrefix("uncertainty_summary: ")
	log.SetFlags(0)

	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() != 1 {
		printUsage()
		log.Fatal("Invalid arguments")
	}

	err := run(flag.Arg(0))
	if err != nil {
		log.Print(err)
	}
	os.Exit(mnvplot.ExitCode(err))
}

// baseName is fname cut at its ".root" extension.
func baseName(fname string) string {
	if i := strings.Index(fname, ".root"); i >= 0 {
		return fname[:i]
	}
	return fname
}

// outputName returns the file a group summary is written to.
func outputName(base, group string) string {
	return base + "_" + strings.ReplaceAll(group, " ", "_") + ".png"
}

func run(fname string) error {
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
	base := baseName(fname)

	signal, err := f.Hist1D(signalName)
	if err != nil {
		return mnvplot.WithCode(err, 2)
	}
	signal.Title = "Signal"

	bkgs, err := mnvplot.SelectStrict(f, `.*`+bkgBaseName+`.*`)
	if err != nil {
		var typeErr *mnvplot.TypeError
		if errors.As(err, &typeErr) {
			return mnvplot.WithCode(errors.Wrap(err, "background results are unusable"), 3)
		}
		return err
	}

	stack, err := mnvplot.BuildStack(append([]*mnvplot.Hist{signal.Clone()}, bkgs...))
	if err != nil {
		return err
	}
	for _, bkg := range bkgs {
		if err := signal.Add(bkg); err != nil {
			return errors.Wrapf(err, "could not add %s to the signal", bkg.Name)
		}
	}
	groups := errorGroups.WithOther(signal.BandNames())

	st.Title = "Error Band Summary"
	p := st.NewPlot()
	p.X.Label.Text = signal.XTitle
	if err := st.AddErrorCurves(p, signal, mnvplot.ErrorSummary(signal, groups), true); err != nil {
		return err
	}
	if err := st.Save(p, base+"_errors.png"); err != nil {
		return err
	}

	st.Title = "Total Signal"
	p = st.NewPlot()
	p.X.Label.Text = signal.XTitle
	p.Y.Label.Text = signal.YTitle
	pts, yerr, err := mnvplot.NewPoints(signal, signal.Errors(mnvplot.StatAndSys), vg.Points(st.LineWidth))
	if err != nil {
		return err
	}
	p.Add(pts, yerr)
	p.Y.Min = 0
	if err := st.Save(p, base+"_totalSignal.png"); err != nil {
		return err
	}

	st.Title = "Background Breakdown"
	p = st.NewPlot()
	p.X.Label.Text = signal.XTitle
	p.Y.Label.Text = signal.YTitle
	if err := st.AddStack(p, stack); err != nil {
		return err
	}
	p.Y.Min = 0
	if err := st.Save(p, base+"_breakdown.png"); err != nil {
		return err
	}

	for _, group := range groups.Names() {
		st.Title = group
		p = st.NewPlot()
		p.X.Label.Text = signal.XTitle
		curves := mnvplot.GroupSummary(signal, groups, group)
		if len(curves) == 0 {
			log.Printf("no error bands of group %q in %s", group, fname)
			continue
		}
		if err := st.AddErrorCurves(p, signal, curves, false); err != nil {
			return errors.Wrapf(err, "could not draw group %q", group)
		}
		if err := st.Save(p, outputName(base, group)); err != nil {
			return err
		}
	}
	return nil
}
