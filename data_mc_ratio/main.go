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
	output   = flag.String("output", "EDepsDataMCRatio.png", "output file")
	style    = flag.String("style", "", "YAML style file")
	maxMC    = flag.Float64("maxmc", 2, "top of the overlay panel")
	ratioMin = flag.Float64("ratiomin", 0.5, "bottom of the ratio panel")
	ratioMax = flag.Float64("ratiomax", 1.9, "top of the ratio panel")
	doProf   = flag.Bool("profile", false, "write a CPU profile")
)

const (
	variable = "EDeps"
	anaName  = "Neutron_Detection"
)

func main() {
	log.SetPrefix("data_mc_ratio: ")
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

	mc, err := mnvplot.Select(mcFile, anaName+`__(.*)`+variable)
	if err != nil {
		return err
	}
	data, err := dataFile.Hist1D(anaName + "_Data" + variable)
	if err != nil {
		return err
	}
	data.Title = "Data"

	cmp, err := mnvplot.CompareDataMC(data, mc, mnvplot.StatOnly)
	if err != nil {
		return err
	}
	cmp.MCLabel = "MnvGENIEv1"
	cmp.YTitle = "candidates / event"
	cmp.XTitle = "energy deposits [MeV]"
	cmp.YMax = *maxMC

	return mnvplot.Renderer{Style: st}.Save(cmp, *output)
}
