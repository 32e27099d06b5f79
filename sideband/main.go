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
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] <data-file> <mc-file>

options:
`,
	)
	flag.PrintDefaults()
}

var (
	fiducial = flag.String("fiducial", "Tracker", "fiducial volume name")
	sideband = flag.String("sideband", "EAvailable", "sideband name")
	style    = flag.String("style", "", "YAML style file")
	maxMC    = flag.Float64("maxmc", 5e4, "top of the overlay panel")
	ratioMin = flag.Float64("ratiomin", 0.6, "bottom of the ratio panel")
	ratioMax = flag.Float64("ratiomax", 1.2, "top of the ratio panel")
	doProf   = flag.Bool("profile", false, "write a CPU profile")
)

func main() {
	log.SetPrefix("sideband: ")
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

func run(dataName, mcName string) error {
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

	prefix := *fiducial + "_" + *sideband + "_"
	potRatio, err := mnvplot.ReadExposureRatio(dataFile, mcFile)
	if err != nil {
		return err
	}

	mc, err := mnvplot.SelectScaled(mcFile, prefix+`(.*)`, potRatio)
	if err != nil {
		return err
	}
	data, err := dataFile.Hist1D(prefix + "Data")
	if err != nil {
		return err
	}
	data.Title = "Data"

	template, err := mcFile.Hist1D(prefix + "TruthSignal")
	if err != nil {
		return err
	}
	if err := mnvplot.AddMissingBandsWithCV(data, template); err != nil {
		return err
	}

	cmp, err := mnvplot.CompareDataMC(data, mc, mnvplot.StatOnly)
	if err != nil {
		return err
	}
	cmp.Stacked = true
	cmp.MCLabel = "MnvGENIEv1"
	cmp.YMax = *maxMC

	return mnvplot.Renderer{Style: st}.Save(cmp, *fiducial+*sideband+"DataMCRatio.png")
}
