package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"golang.org/x/image/colornames"

	"github.com/decibelcooper/mnvplot"
	"github.com/decibelcooper/mnvplot/rootfile"
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] <file>

Writes the convergence of a warping study as one CSV line,
name,minimum,minimumBin[,crossing...], to <name>.csv and standard output.

options:
`,
	)
	flag.PrintDefaults()
}

const chi2Name = "Chi2_Iteration_Dists/m_avg_chi2_modelData_trueData_iter_chi2_truncated"

var (
	thresholds mnvplot.FloatArrayFlags
	style      = flag.String("style", "", "YAML style file")
	doProf     = flag.Bool("profile", false, "write a CPU profile")
)

func init() {
	flag.Var(&thresholds, "threshold", "chi2 value to report the first iteration at or below (repeatable, or comma separated)")
}

func main() {
	log.SetPrefix("warping_table: ")
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

// outName is the file's base name cut at its first dot.
func outName(fname string) string {
	base := filepath.Base(fname)
	if i := strings.Index(base, "."); i >= 0 {
		return base[:i]
	}
	return base
}

func writeRecord(w io.Writer, rec []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(rec); err != nil {
		return errors.Wrap(err, "could not write record")
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "could not flush record")
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

	chi2, err := f.Hist1D(chi2Name)
	if err != nil {
		return err
	}
	name := outName(fname)

	out, err := os.Create(name + ".csv")
	if err != nil {
		return errors.Wrap(err, "could not create table")
	}
	defer out.Close()
	if err := writeRecord(io.MultiWriter(out, os.Stdout), mnvplot.WarpingRecord(name, chi2, thresholds.Array)); err != nil {
		return err
	}
	if err := out.Close(); err != nil {
		return errors.Wrapf(err, "could not close %s.csv", name)
	}

	st.Title = name
	p := st.NewPlot()
	p.X.Label.Text = chi2.XTitle
	p.Y.Label.Text = chi2.YTitle
	line, err := mnvplot.NewStepLine(chi2, colornames.Black, 2)
	if err != nil {
		return err
	}
	p.Add(line)
	return st.Save(p, name+".png")
}
