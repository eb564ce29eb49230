package main

import (
	"github.com/phuslu/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags.
	verbose bool

	logger log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "boundcache-bench",
	Short: "Workload driver for the boundcache eviction engine",
	Long: `boundcache-bench drives synthetic Zipf workloads against the four
bounded cache variants (size/count x LRU/LFU) and compares their hit
rates against a plain LRU baseline.

Examples:
  # 1M ops against a count-bounded LFU cache across 4 workers
  boundcache-bench run --variant count-lfu --limit 50000 --workers 4 --ops 1000000

  # Hit-rate comparison on a shared trace
  boundcache-bench compare --limit 10000 --keys 100000 --ops 500000`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := log.InfoLevel
		if verbose {
			level = log.DebugLevel
		}
		logger = log.Logger{
			Level:  level,
			Caller: 0,
			Writer: &log.ConsoleWriter{
				ColorOutput:    false,
				EndWithMessage: true,
			},
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}
