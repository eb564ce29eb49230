// Package main provides the boundcache-bench CLI: synthetic workloads and
// hit-rate comparisons for the four bounded cache variants.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
