package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pkg/profile"

	"github.com/decibelcooper/mnvplot"
	"github.com/decibelcooper/mnvplot/rootfile"
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] <data-file> <mc-file> <sideband>

options:
`,
	)
	flag.PrintDefaults()
}

var (
	selected = flag.Bool("selected", false, "compare selected events instead of the sideband")
	fiducial = flag.String("fiducial", "Tracker", "fiducial volume name")
	style    = flag.String("style", "", "YAML style file")
	ratioMin = flag.Float64("ratiomin", 0, "bottom of the ratio panel (0 with -ratiomax 0 fits the data)")
	ratioMax = flag.Float64("ratiomax", 0, "top of the ratio panel (0 with -ratiomin 0 fits the data)")
	doProf   = flag.Bool("profile", false, "write a CPU profile")
)

func main() {
	log.SetPrefix("bkg_breakdown: ")
	log.SetFlags(0)

	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() != 3 {
		printUsage()
		log.Fatal("Invalid arguments")
	}

	err := run(flag.Arg(0), flag.Arg(1), flag.Arg(2))
	if err != nil {
		log.Print(err)
	}
	os.Exit(mnvplot.ExitCode(err))
}

// names returns the keys of the data and MC signal histograms.
func names(fiducial, sideband string, selected bool) (data, signal string) {
	prefix := fiducial + "_" + sideband + "_"
	if selected {
		return prefix + "Signal", prefix + "SelectedMCEvents"
	}
	return prefix + "Data", prefix + "TruthSignal"
}

func run(dataName, mcName, sidebandName string) error {
	if *doProf {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	st, err := mnvplot.LoadStyle(*style)
	if err != nil {
		return err
	}
	st.Title = *fiducial
	st.RatioMin, st.RatioMax = *ratioMin, *ratioMax

	dataFile, err := rootfile.Open(dataName)
	if err != nil {
		return err
	}
	defer dataFile.Close()
	mcFile, err := rootfile.Open(mcName)
	if err != nil {
		return err
	}
	defer mcFile.Close()

	potRatio, err := mnvplot.ReadExposureRatio(dataFile, mcFile)
	if err != nil {
		return err
	}

	dataKey, signalKey := names(*fiducial, sidebandName, *selected)
	mc, err := mnvplot.SelectScaled(mcFile, *fiducial+"_"+sidebandName+`_Background_(.*)`, potRatio)
	if err != nil {
		return err
	}

	signal, err := mcFile.Hist1D(signalKey)
	if err != nil {
		return err
	}
	signal.Title = "Signal"
	signal.Scale(potRatio)
	mc = append(mc, signal)

	data, err := dataFile.Hist1D(dataKey)
	if err != nil {
		return err
	}
	data.Title = "Data"
	if err := mnvplot.AddMissingBandsWithCV(data, signal); err != nil {
		return err
	}

	cmp, err := mnvplot.CompareDataMC(data, mc, mnvplot.SysOnly)
	if err != nil {
		return err
	}
	cmp.Stacked = true
	cmp.MCLabel = "MnvTunev1"
	cmp.YMax = 2 * cmp.Stack.Total().Max()

	return mnvplot.Renderer{Style: st}.Save(cmp, *fiducial+sidebandName+"DataMCRatio.png")
}
