package main

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/discochess/maxsized"
	promstats "github.com/discochess/maxsized/internal/stats/prometheus"
	"github.com/discochess/maxsized/internal/trace"
)

var replayCmd = &cobra.Command{
	Use:   "replay [TRACE]",
	Short: "Replay a trace of map operations",
	Long: `Replay a trace of operations against a fresh map and print each result.

A trace has one operation per line; blank lines and '#' comments are skipped:
  put <key> <value>
  replace <key> <value>
  get <key>
  contains <key>
  recent
  keys
  size

Files ending in .zst or .gz are decompressed. Use "-" to read stdin.

Examples:
  maxsized replay ops.txt --policy write
  echo "put a 1" | maxsized replay - --metrics`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

var showMetrics bool

func init() {
	replayCmd.Flags().BoolVar(&showMetrics, "metrics", false, "print Prometheus metrics after replaying")
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	ops, err := readTrace(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	m, err := newMap(maxsized.WithStats(promstats.New(reg).WithLogger(log.Named("metrics"))))
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	trace.Replay(m, ops, func(r trace.Result) {
		fmt.Fprintln(w, r)
	})

	if showMetrics {
		return writeMetrics(w, reg)
	}
	return nil
}

func readTrace(path string, stdin io.Reader) ([]trace.Op, error) {
	if path == "-" {
		return trace.Parse(stdin)
	}
	return trace.ReadFile(path)
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	fmt.Fprintln(w)
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}
	return nil
}
