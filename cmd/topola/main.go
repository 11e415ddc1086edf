// Command topola is a minimal demo driver, not the CLI/GUI front-end
// spec.md's Non-goals exclude: it exists only so the module has a
// runnable entry point, the same role the teacher's examples/*.go
// programs play for lvlath. It builds a small hard-coded board and
// command stream in memory (DSN/SES parsing and command-stream file I/O
// stay external collaborators per spec.md §1/§6), runs it through the
// Invoker, and reports the exit code spec.md §6 defines:
//
//	0 full success (undone empty)
//	1 partial routing (some ratlines undone)
//	2 input/parse failure
//	3 internal invariant violation
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/katalvlaran/topola/autorouter"
	"github.com/katalvlaran/topola/boardadapter"
	"github.com/katalvlaran/topola/cmdstream"
	"github.com/katalvlaran/topola/geom"
	"github.com/katalvlaran/topola/invoker"
	"github.com/katalvlaran/topola/layout"
)

const (
	exitSuccess          = 0
	exitPartialRouting   = 1
	exitInputFailure     = 2
	exitInvariantFailure = 3
)

func main() {
	os.Exit(run())
}

func run() int {
	desc := boardadapter.BoardDescription{
		Layers: []layout.Layer{0},
		Pads: []boardadapter.Pad{
			{Pin: "U1-1", Layer: 0, At: geom.Point{X: 0, Y: 0}, Radius: 0.3},
			{Pin: "U2-1", Layer: 0, At: geom.Point{X: 15, Y: 0}, Radius: 0.3},
		},
		Nets: []boardadapter.Net{
			{Name: "NET1", Pins: []string{"U1-1", "U2-1"}, Width: 0.2, Clearance: 0.2},
		},
		DefaultClearance:  0.15,
		DefaultBendOffset: 0.15,
	}

	g, table, err := boardadapter.Load(desc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "topola: board load failed: %v\n", err)
		return exitInputFailure
	}

	stream := cmdstream.Command{
		Kind: cmdstream.KindAutoroute,
		Autoroute: &cmdstream.AutorouteSpec{
			Selectors: []cmdstream.Selector{
				{Pin: "U1-1", Layer: 0},
				{Pin: "U2-1", Layer: 0},
			},
		},
	}

	decoded, isAbort, err := cmdstream.Translate(stream, table, desc.Nets)
	if err != nil {
		fmt.Fprintf(os.Stderr, "topola: command decode failed: %v\n", err)
		return exitInputFailure
	}
	if isAbort {
		return exitSuccess
	}

	cmd, ok := decoded.(invoker.Autoroute)
	if !ok {
		fmt.Fprintf(os.Stderr, "topola: expected an Autoroute command\n")
		return exitInputFailure
	}
	var report autorouter.Report
	cmd.Report = &report

	inv := invoker.New(g)
	if err := inv.Execute(context.Background(), cmd); err != nil {
		fmt.Fprintf(os.Stderr, "topola: autoroute aborted: %v\n", err)
		return exitPartialRouting
	}

	if invErr := g.CheckInvariants(); invErr != nil {
		fmt.Fprintf(os.Stderr, "topola: invariant violation after autoroute: %v\n", invErr)
		return exitInvariantFailure
	}

	fmt.Printf("topola: autoroute complete, done=%d undone=%d\n", len(report.Done), len(report.Undone))
	if len(report.Undone) > 0 {
		return exitPartialRouting
	}
	return exitSuccess
}
