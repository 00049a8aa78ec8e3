// Package script implements lvtopoctl's line-oriented build script: one
// command per line, driving a topo.Topology through its public mutations
// and printing a summary of the result.
package script

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtopo/geomcore"
	"github.com/katalvlaran/lvtopo/topo"
	"github.com/katalvlaran/lvtopo/tracing"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "lvtopoctl <script>",
	Short: "Build and inspect an lvtopo planar topology from a script file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args[0], cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "trace every mutation to stderr")
}

// Execute runs the lvtopoctl root command.
func Execute() error {
	return rootCmd.Execute()
}

func run(path string, out interface{ Write([]byte) (int, error) }) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var opts []topo.Option
	if verbose {
		opts = append(opts, topo.WithTracer(tracing.NewSlog(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))))
	}
	top := topo.New(opts...)

	ids := map[string]int{} // script-local label -> node id
	eventCounts := map[topo.Event]int{}
	top.On(topo.EventAddNode, countingHandler(eventCounts))
	top.On(topo.EventAddEdge, countingHandler(eventCounts))
	top.On(topo.EventModEdge, countingHandler(eventCounts))
	top.On(topo.EventSplitEdge, countingHandler(eventCounts))
	top.On(topo.EventRemoveEdge, countingHandler(eventCounts))
	top.On(topo.EventAddFace, countingHandler(eventCounts))
	top.On(topo.EventRemoveFace, countingHandler(eventCounts))

	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := execLine(top, ids, line); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}

	report(out, eventCounts)
	return nil
}

func execLine(top *topo.Topology, ids map[string]int, line string) error {
	fields := strings.Fields(line)
	switch fields[0] {
	case "node":
		// node <label> <x> <y>
		x, y, err := xy(fields[2], fields[3])
		if err != nil {
			return err
		}
		id, err := top.AddIsoNode(geomcore.XY{X: x, Y: y}, top.Universe())
		if err != nil {
			return err
		}
		ids[fields[1]] = int(id)
	case "isoedge", "edge", "edgemod":
		// isoedge <startLabel> <endLabel> <x1> <y1> <x2> <y2> [<x3> <y3> ...]
		start, ok1 := ids[fields[1]]
		end, ok2 := ids[fields[2]]
		if !ok1 || !ok2 {
			return fmt.Errorf("unknown node label in %q", line)
		}
		coords, err := coordsFrom(fields[3:])
		if err != nil {
			return err
		}
		switch fields[0] {
		case "isoedge":
			_, err = top.AddIsoEdge(topo.NodeID(start), topo.NodeID(end), coords)
		case "edge":
			_, err = top.AddEdgeNewFaces(topo.NodeID(start), topo.NodeID(end), coords)
		default:
			_, err = top.AddEdgeModFace(topo.NodeID(start), topo.NodeID(end), coords)
		}
		return err
	default:
		return fmt.Errorf("unknown command %q", fields[0])
	}
	return nil
}

func coordsFrom(fields []string) ([]geomcore.XY, error) {
	if len(fields)%2 != 0 || len(fields) < 4 {
		return nil, fmt.Errorf("expected an even count of >=4 coordinate fields, got %d", len(fields))
	}
	out := make([]geomcore.XY, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, y, err := xy(fields[i], fields[i+1])
		if err != nil {
			return nil, err
		}
		out = append(out, geomcore.XY{X: x, Y: y})
	}
	return out, nil
}

func xy(xs, ys string) (float64, float64, error) {
	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return 0, 0, err
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func countingHandler(counts map[topo.Event]int) topo.Handler {
	return func(ev topo.Event, _ topo.Payload) error {
		counts[ev]++
		return nil
	}
}

func report(out interface{ Write([]byte) (int, error) }, counts map[topo.Event]int) {
	fmt.Fprintln(out, "lvtopoctl summary:")
	for _, ev := range []topo.Event{
		topo.EventAddNode, topo.EventAddEdge, topo.EventModEdge,
		topo.EventSplitEdge, topo.EventRemoveEdge, topo.EventAddFace, topo.EventRemoveFace,
	} {
		fmt.Fprintf(out, "  %-11s %d\n", ev, counts[ev])
	}
}
