package main

import (
	"fmt"
	"math/rand"

	"github.com/klauspost/compress/zstd"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/discochess/maxsized"
	"github.com/discochess/maxsized/benchmark/analysis"
	"github.com/discochess/maxsized/benchmark/simulation"
	"github.com/discochess/maxsized/internal/stats/logger"
	"github.com/discochess/maxsized/internal/trace"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Compare recency policies on a synthetic workload",
	Long: `Generate Zipf-distributed workloads and replay each one under both
recency policies. A read miss is filled with a put, as a read-through
cache would do. Hit rates across trials are compared with a Mann-Whitney
U test.

The --policy flag is ignored; every policy is simulated.

Examples:
  maxsized simulate --max-size 100 --keys 1000 --trials 20
  maxsized simulate --read-ratio 0.5 --skew 1.5 --write-trace ops.zst --trace-level best`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

var (
	simKeys       int
	simOps        int
	simReadRatio  float64
	simSkew       float64
	simTrials     int
	simSeed       int64
	simWriteTrace string
	simTraceLevel string
)

func init() {
	w := simulation.DefaultWorkload()
	simulateCmd.Flags().IntVar(&simKeys, "keys", w.Keys, "number of distinct keys")
	simulateCmd.Flags().IntVar(&simOps, "ops", w.Ops, "operations per trial")
	simulateCmd.Flags().Float64Var(&simReadRatio, "read-ratio", w.ReadRatio, "fraction of operations that are reads")
	simulateCmd.Flags().Float64Var(&simSkew, "skew", w.Skew, "Zipf exponent, greater than 1")
	simulateCmd.Flags().IntVar(&simTrials, "trials", 10, "number of independent trials")
	simulateCmd.Flags().Int64Var(&simSeed, "seed", 1, "seed of the first trial")
	simulateCmd.Flags().StringVar(&simWriteTrace, "write-trace", "", "write the first trial's ops to this file")
	simulateCmd.Flags().StringVar(&simTraceLevel, "trace-level", "default", "zstd level for .zst traces: fastest, default, better, best")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if simTrials < 1 {
		return fmt.Errorf("trials must be positive, got %d", simTrials)
	}
	w := simulation.Workload{
		Keys:      simKeys,
		Ops:       simOps,
		ReadRatio: simReadRatio,
		Skew:      simSkew,
	}
	if err := w.Validate(); err != nil {
		return err
	}
	if _, err := maxsized.New[string, string](maxSize); err != nil {
		return err
	}

	if simWriteTrace != "" {
		ok, level := zstd.EncoderLevelFromString(simTraceLevel)
		if !ok {
			return fmt.Errorf("unknown trace level %q", simTraceLevel)
		}
		ops, err := w.Generate(rand.New(rand.NewSource(simSeed)))
		if err != nil {
			return err
		}
		if err := trace.WriteFileLevel(simWriteTrace, ops, level); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
		log.Info("wrote trace", zap.String("path", simWriteTrace), zap.Int("ops", len(ops)))
	}

	sim := simulation.NewSimulator(maxSize).
		WithCollector(logger.New(log.Named("simulate")))
	rates, err := sim.RunTrials(w, simTrials, simSeed)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Max size: %d\n", maxSize)
	fmt.Fprintf(out, "Workload: %d keys, %d ops, %.0f%% reads, skew %.2f\n",
		w.Keys, w.Ops, w.ReadRatio*100, w.Skew)
	fmt.Fprintf(out, "Trials:   %d (seed %d)\n\n", simTrials, simSeed)

	policies := sim.Policies()
	for _, p := range policies {
		s := analysis.Describe(rates[p])
		fmt.Fprintf(out, "%-8s hit rate mean=%.2f%% min=%.2f%% max=%.2f%%\n",
			p, s.Mean*100, s.Min*100, s.Max*100)
	}

	if len(policies) >= 2 {
		a, b := policies[0], policies[1]
		fmt.Fprintf(out, "\n%s\n", analysis.ComparePolicies(a, b, rates[a], rates[b]))
	}
	return nil
}
