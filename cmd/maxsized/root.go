package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/discochess/maxsized"
)

var (
	// Global flags.
	maxSize    int
	policyName string
	verbose    bool

	// Set by PersistentPreRunE.
	policy maxsized.Policy
	log    *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "maxsized",
	Short: "Explore fixed-capacity maps ordered by recency",
	Long: `maxsized drives a bounded key-value map that evicts its eldest entry
when a new key would exceed the capacity.

Two recency policies are available:
  access  every get, put and replace moves the key to the tail
  write   only put and replace move the key; get is a pure lookup

Examples:
  # Walk through the reference scenario
  maxsized demo --policy write

  # Replay a trace of operations
  maxsized replay ops.txt --max-size 3

  # Compare the policies on a skewed workload
  maxsized simulate --max-size 100 --trials 10`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		p, err := maxsized.ParsePolicy(policyName)
		if err != nil {
			return err
		}
		policy = p

		if verbose {
			log, err = zap.NewDevelopment()
		} else {
			log, err = zap.NewProduction()
		}
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&maxSize, "max-size", "n", 5, "maximum number of entries")
	rootCmd.PersistentFlags().StringVarP(&policyName, "policy", "p", "access", "recency policy: access or write")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// newMap creates a string map from the global flags.
func newMap(opts ...maxsized.Option) (*maxsized.Map[string, string], error) {
	opts = append([]maxsized.Option{
		maxsized.WithPolicy(policy),
		maxsized.WithLogger(log.Named("maxsized")),
	}, opts...)

	m, err := maxsized.New[string, string](maxSize, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating map: %w", err)
	}
	return m, nil
}
