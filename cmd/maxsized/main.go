// Package main provides the maxsized CLI for exploring bounded recency maps:
// replaying operation traces and comparing recency policies.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
