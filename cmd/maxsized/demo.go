package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/discochess/maxsized"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through the reference scenario for a policy",
	Long: `Fill a map of the configured size with keys 1..N, then read key 3,
replace key 1, and insert a new key, printing the recency sequence and the
most recent value after every step.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	m, err := newMap()
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "Policy:   %s\n", m.Policy())
	fmt.Fprintf(w, "Max size: %d\n\n", m.MaxSize())

	for i := 1; i <= m.MaxSize(); i++ {
		k := strconv.Itoa(i)
		m.Put(k, k)
	}
	printStep(w, m, fmt.Sprintf("put 1..%d", m.MaxSize()))

	m.Get("3")
	printStep(w, m, "get 3")

	m.Replace("1", "one")
	printStep(w, m, "replace 1 one")

	next := strconv.Itoa(m.MaxSize() + 1)
	m.Put(next, next)
	printStep(w, m, "put "+next+" "+next)

	return nil
}

func printStep(w io.Writer, m *maxsized.Map[string, string], step string) {
	recent, ok := m.GetMostRecent()
	if !ok {
		recent = "(none)"
	}
	fmt.Fprintf(w, "%-16s keys=%v recent=%s\n", step, m.KeysInOrder(), recent)
}
