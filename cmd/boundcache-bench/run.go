package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/IvanBrykalov/boundcache/cache"
	"github.com/IvanBrykalov/boundcache/metrics/prom"
	"github.com/IvanBrykalov/boundcache/policy/lfu"
	"github.com/IvanBrykalov/boundcache/summary"
)

var runFlags struct {
	variant     string
	limit       int64
	decay       time.Duration
	workers     int
	ops         int
	keys        int
	zipfS       float64
	zipfV       float64
	readPct     int
	valueSize   int
	seed        int64
	metricsAddr string
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Drive a Zipf-distributed get/put workload",
	Long: `Run spawns one cache instance per worker (the engine is single-caller,
so workers never share an instance) and drives a Zipf-distributed
read/write mix against each.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWorkload()
	},
}

func init() {
	f := runCmd.Flags()
	f.StringVar(&runFlags.variant, "variant", "count-lru", "cache variant: size-lru | size-lfu | count-lru | count-lfu")
	f.Int64Var(&runFlags.limit, "limit", 50_000, "cost budget (bytes or entries, by variant)")
	f.DurationVar(&runFlags.decay, "decay", time.Minute, "LFU decay interval (negative disables)")
	f.IntVar(&runFlags.workers, "workers", 1, "independent cache instances, one goroutine each")
	f.IntVar(&runFlags.ops, "ops", 1_000_000, "operations per worker")
	f.IntVar(&runFlags.keys, "keys", 1_000_000, "keyspace size")
	f.Float64Var(&runFlags.zipfS, "zipf-s", 1.1, "Zipf s > 1 (skew)")
	f.Float64Var(&runFlags.zipfV, "zipf-v", 1.0, "Zipf v")
	f.IntVar(&runFlags.readPct, "reads", 80, "read percentage [0..100]")
	f.IntVar(&runFlags.valueSize, "value-size", 64, "payload size in bytes")
	f.Int64Var(&runFlags.seed, "seed", 0, "random seed (0 = time-based)")
	f.StringVar(&runFlags.metricsAddr, "http", "", "serve Prometheus metrics at addr (e.g. :8080); empty = disabled")
	rootCmd.AddCommand(runCmd)
}

// newVariant builds a cache for the requested variant, wiring the given
// metrics sink (nil = none).
func newVariant(variant string, limit int64, decay time.Duration, m cache.Metrics) (cache.Cache[string, []byte], error) {
	opt := cache.Options[string, []byte]{MaxCost: limit, Metrics: m}
	switch variant {
	case "size-lru":
		opt.Model = cache.SizeBounded
	case "count-lru":
		opt.Model = cache.CountBounded
	case "size-lfu":
		opt.Model = cache.SizeBounded
		opt.Policy = lfu.New[string, []byte](decay)
	case "count-lfu":
		opt.Model = cache.CountBounded
		opt.Policy = lfu.New[string, []byte](decay)
	default:
		return nil, fmt.Errorf("unknown variant %q", variant)
	}
	return cache.New(opt), nil
}

func runWorkload() error {
	seed := runFlags.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var reg *prometheus.Registry
	if runFlags.metricsAddr != "" {
		reg = prometheus.NewRegistry()
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		go func() {
			logger.Info().Str("addr", runFlags.metricsAddr).Msg("serving Prometheus metrics")
			if err := http.ListenAndServe(runFlags.metricsAddr, mux); err != nil {
				logger.Error().Err(err).Msg("metrics server stopped")
			}
		}()
	}

	payload := make([]byte, runFlags.valueSize)
	start := time.Now()

	var g errgroup.Group
	stats := make([]cache.Stats, runFlags.workers)
	for w := 0; w < runFlags.workers; w++ {
		var m cache.Metrics
		if reg != nil {
			m = prom.New(reg, "boundcache", "bench",
				prometheus.Labels{"worker": strconv.Itoa(w)})
		}
		c, err := newVariant(runFlags.variant, runFlags.limit, runFlags.decay, m)
		if err != nil {
			return err
		}

		r := rand.New(rand.NewSource(seed + int64(w)))
		zipf := rand.NewZipf(r, runFlags.zipfS, runFlags.zipfV, uint64(runFlags.keys-1))
		slot := w
		g.Go(func() error {
			for i := 0; i < runFlags.ops; i++ {
				k := "k:" + strconv.FormatUint(zipf.Uint64(), 10)
				if r.Intn(100) < runFlags.readPct {
					if _, ok := c.Get(k); !ok {
						// Read-through on miss, like a cache in front of a store.
						if _, err := c.Put(k, payload); err != nil {
							return err
						}
					}
				} else {
					if _, err := c.Put(k, payload); err != nil {
						return err
					}
				}
			}
			stats[slot] = c.Stats()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	elapsed := time.Since(start)

	totalOps := runFlags.workers * runFlags.ops
	for w, s := range stats {
		hitRate := 0.0
		if s.Hits+s.Misses > 0 {
			hitRate = float64(s.Hits) / float64(s.Hits+s.Misses)
		}
		logger.Info().
			Int("worker", w).
			Float64("hit_rate", hitRate).
			Str("cache", summary.Format(s)).
			Msg("worker finished")
	}
	logger.Info().
		Str("variant", runFlags.variant).
		Int("ops", totalOps).
		Dur("elapsed", elapsed).
		Float64("ops_per_sec", float64(totalOps)/elapsed.Seconds()).
		Msg("run complete")
	return nil
}
