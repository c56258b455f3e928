// Command dplls decides satisfiability of a DIMACS CNF formula via DPLL.
// See spec.md §6 for the external interface this command implements.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/urfave/cli"

	"github.com/kmarius/dplls/config"
	"github.com/kmarius/dplls/encoding"
	"github.com/kmarius/dplls/heuristic"
	"github.com/kmarius/dplls/internal/report"
	"github.com/kmarius/dplls/solver"
)

// heuristicFlags maps each exclusive heuristic flag to the menu name
// heuristic.Select expects.
var heuristicFlags = []struct {
	flag string
	name string
}{
	{"slis", heuristic.SLIS},
	{"slcs", heuristic.SLCS},
	{"dlis", heuristic.DLIS},
	{"dlcs", heuristic.DLCS},
	{"bc", heuristic.BacktrackCount},
	{"mom", heuristic.MOM},
	{"boehm", heuristic.Boehm},
	{"jw", heuristic.JW},
}

func main() {
	app := cli.NewApp()
	app.Name = "dplls"
	app.Usage = "decide satisfiability of a DIMACS CNF formula"
	app.ArgsUsage = "INPUT.cnf"
	app.Writer = os.Stdout
	app.Flags = flags()
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}

func flags() []cli.Flag {
	fs := make([]cli.Flag, 0, len(heuristicFlags)+2)
	for _, h := range heuristicFlags {
		fs = append(fs, cli.BoolFlag{Name: h.flag, Usage: h.name + " branching heuristic"})
	}
	fs = append(fs,
		cli.BoolFlag{Name: "p", Usage: "enable pure-literal elimination"},
		cli.BoolFlag{Name: "v", Usage: "verbose tracing to standard output"},
	)
	return fs
}

// selectedHeuristic returns the heuristic menu name chosen on the command
// line, or an error if more than one heuristic flag was given (spec.md §6:
// "exclusive within the heuristic group").
func selectedHeuristic(c *cli.Context) (string, error) {
	chosenFlag, chosenName := "", heuristic.None
	for _, h := range heuristicFlags {
		if !c.Bool(h.flag) {
			continue
		}
		if chosenFlag != "" {
			return "", fmt.Errorf("flags -%s and -%s are mutually exclusive", chosenFlag, h.flag)
		}
		chosenFlag, chosenName = h.flag, h.name
	}
	return chosenName, nil
}

// usageExit prints err to standard output followed by the usage banner,
// then exits with status 1, matching spec.md §7's class-1/2 handling of
// usage and format errors.
func usageExit(c *cli.Context, err error) error {
	fmt.Fprintln(os.Stdout, err)
	cli.ShowAppHelpAndExit(c, 1)
	return nil // unreachable, ShowAppHelpAndExit exits the process
}

func run(c *cli.Context) error {
	heuristicName, err := selectedHeuristic(c)
	if err != nil {
		return usageExit(c, err)
	}
	if c.NArg() != 1 {
		return usageExit(c, fmt.Errorf("expected exactly one input file"))
	}

	path := c.Args().First()
	f, err := os.Open(path)
	if err != nil {
		return usageExit(c, err)
	}
	defer f.Close()

	conf := config.New()
	conf.Heuristic = heuristicName
	conf.PureLiteral = c.Bool("p")
	conf.Verbose = c.Bool("v")
	if conf.Verbose {
		conf.Logger = log.New(os.Stdout, "", 0)
	}

	formula, err := encoding.Parse(f)
	if err != nil {
		return usageExit(c, err)
	}

	sat, err := solver.New(conf)
	if err != nil {
		return usageExit(c, err)
	}
	for _, clause := range formula.Clauses {
		sat.AddClause(clause)
	}

	start := time.Now()
	satisfiable := sat.Solve()
	elapsed := time.Since(start)

	if conf.Verbose {
		report.Summary(os.Stdout, sat, elapsed)
	}

	if !satisfiable {
		fmt.Println("s UNSATISFIABLE")
		return nil
	}
	fmt.Println("s SATISFIABLE")
	report.Model(os.Stdout, sat.Answer())
	return nil
}
