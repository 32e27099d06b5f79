package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/profile"

	"github.com/decibelcooper/mnvplot"
	"github.com/decibelcooper/mnvplot/rootfile"
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] <data-file> <mc-file> [other-mc-files]...

Draws data over the reference MC and compares every other MC prediction to
the reference MC in the ratio panel.

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
	anaName  = "Tracker_Neutron_Detection"
)

func main() {
	log.SetPrefix("edeps_ratio: ")
	log.SetFlags(0)

	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() < 2 {
		printUsage()
		log.Fatal("Invalid arguments")
	}

	err := run(flag.Arg(0), flag.Arg(1), flag.Args()[2:])
	if err != nil {
		log.Print(err)
	}
	os.Exit(mnvplot.ExitCode(err))
}

func run(dataName, mcName string, otherNames []string) error {
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

	pattern := anaName + `__(.*)` + variable
	mc, err := mnvplot.Select(mcFile, pattern)
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

	for _, name := range otherNames {
		f, err := rootfile.Open(name)
		if err != nil {
			return err
		}
		model, err := mnvplot.Select(f, pattern)
		f.Close()
		if err != nil {
			return err
		}
		if err := cmp.AddModel(modelLabel(mcName, name), model); err != nil {
			return err
		}
	}

	return mnvplot.Renderer{Style: st}.Save(cmp, *output)
}

// modelLabel names another MC file after what its name adds to the
// reference file's name: ref.root and ref_noFSI.root give "noFSI".
func modelLabel(refName, name string) string {
	base := strings.TrimSuffix(filepath.Base(refName), ".root")
	label := strings.TrimSuffix(filepath.Base(name), ".root")
	if i := strings.Index(label, base); i >= 0 {
		label = strings.TrimPrefix(label[i+len(base):], "_")
	}
	if label == "" {
		label = filepath.Base(name)
	}
	return label
}
